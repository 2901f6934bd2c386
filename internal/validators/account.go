// Package validators holds the pure account-field validation rules shared by
// the registration and profile-editing flows. All rules trim their input
// before checking and never mutate it; failures are reported as the sentinel
// display errors defined in errors.go.
package validators

import "strings"

// Field length limits enforced by the account rules.
const (
	// MinNameLength is the minimum trimmed length of a display name.
	MinNameLength = 2
	// MinPasswordLength is the minimum trimmed length of a password.
	MinPasswordLength = 4
)

// IsValidEmail reports whether s looks like an email address. The check is
// deliberately permissive: any string containing both "@" and "." passes,
// regardless of position. Not RFC-compliant.
func IsValidEmail(s string) bool {
	s = strings.TrimSpace(s)
	return strings.Contains(s, "@") && strings.Contains(s, ".")
}

// ValidateName checks that the trimmed name is at least [MinNameLength]
// characters long.
func ValidateName(name string) error {
	if len(strings.TrimSpace(name)) < MinNameLength {
		return ErrNameTooShort
	}
	return nil
}

// ValidateEmail checks the permissive email shape via [IsValidEmail].
func ValidateEmail(email string) error {
	if !IsValidEmail(email) {
		return ErrInvalidEmail
	}
	return nil
}

// ValidatePassword checks that the trimmed password is at least
// [MinPasswordLength] characters long.
func ValidatePassword(password string) error {
	if len(strings.TrimSpace(password)) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}

// ValidateConfirmation checks that the trimmed confirmation equals the
// trimmed password.
func ValidateConfirmation(password, confirm string) error {
	if strings.TrimSpace(password) != strings.TrimSpace(confirm) {
		return ErrPasswordMismatch
	}
	return nil
}

// ValidateRegistration applies the registration rules in order
// (name, email, password, confirmation) and returns the first failure.
// Email uniqueness is checked separately by the service layer, which owns
// the user collection.
func ValidateRegistration(name, email, password, confirm string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if err := ValidateEmail(email); err != nil {
		return err
	}
	if err := ValidatePassword(password); err != nil {
		return err
	}
	return ValidateConfirmation(password, confirm)
}
