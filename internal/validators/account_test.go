package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{name: "plain address", input: "jane@x.com", valid: true},
		{name: "dot before at", input: "first.last@host", valid: true},
		{name: "at and dot adjacent", input: "@.", valid: true},
		{name: "leading whitespace", input: "  jane@x.com  ", valid: true},
		{name: "missing at", input: "jane.x.com", valid: false},
		{name: "missing dot", input: "jane@com", valid: false},
		{name: "empty string", input: "", valid: false},
		{name: "only at", input: "@", valid: false},
		{name: "only dot", input: ".", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidEmail(tt.input))
		})
	}
}

func TestValidateName(t *testing.T) {
	assert.NoError(t, ValidateName("Jo"))
	assert.NoError(t, ValidateName("  Jo  "))
	require.ErrorIs(t, ValidateName("J"), ErrNameTooShort)
	require.ErrorIs(t, ValidateName("   J   "), ErrNameTooShort)
	require.ErrorIs(t, ValidateName(""), ErrNameTooShort)
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("abcd"))
	assert.NoError(t, ValidatePassword(" abcd "))
	require.ErrorIs(t, ValidatePassword("abc"), ErrPasswordTooShort)
	require.ErrorIs(t, ValidatePassword("  abc  "), ErrPasswordTooShort)
	require.ErrorIs(t, ValidatePassword(""), ErrPasswordTooShort)
}

func TestValidateConfirmation(t *testing.T) {
	assert.NoError(t, ValidateConfirmation("abcd", "abcd"))
	assert.NoError(t, ValidateConfirmation("abcd", " abcd "))
	require.ErrorIs(t, ValidateConfirmation("abcd", "abce"), ErrPasswordMismatch)
	require.ErrorIs(t, ValidateConfirmation("abcd", ""), ErrPasswordMismatch)
}

// TestValidateRegistration_Order verifies that the first failing rule wins,
// in the order name, email, password, confirmation.
func TestValidateRegistration_Order(t *testing.T) {
	tests := []struct {
		name                          string
		uname, email, pass, confirm   string
		wantErr                       error
	}{
		{name: "all invalid reports name first", uname: "J", email: "bad", pass: "x", confirm: "y", wantErr: ErrNameTooShort},
		{name: "bad email before bad password", uname: "Jane", email: "bad", pass: "x", confirm: "y", wantErr: ErrInvalidEmail},
		{name: "bad password before mismatch", uname: "Jane", email: "jane@x.com", pass: "x", confirm: "y", wantErr: ErrPasswordTooShort},
		{name: "mismatch last", uname: "Jane", email: "jane@x.com", pass: "abcd", confirm: "abce", wantErr: ErrPasswordMismatch},
		{name: "all valid", uname: "Jane", email: "jane@x.com", pass: "abcd", confirm: "abcd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRegistration(tt.uname, tt.email, tt.pass, tt.confirm)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
