// Package router owns the navigation state of the application: a single
// location-fragment string and its mapping onto the named routes. Pages never
// look at the fragment directly; they navigate through [Router] and react to
// the resolved [Route].
package router

import "sync"

// Route is the logical page identifier derived from the location fragment.
type Route int

const (
	// RouteLogin is the login form page and the default route.
	RouteLogin Route = iota
	// RouteRegister is the registration form page.
	RouteRegister
	// RouteAccount is the profile-editing page.
	RouteAccount
	// RouteNotFound is rendered for any unrecognized fragment.
	RouteNotFound
)

// Fragment constants for the three known routes. Anything else resolves to
// [RouteNotFound]; the empty fragment resolves to [RouteLogin].
const (
	FragmentLogin    = "#/login"
	FragmentRegister = "#/register"
	FragmentAccount  = "#/account"
)

func (r Route) String() string {
	switch r {
	case RouteLogin:
		return "login"
	case RouteRegister:
		return "register"
	case RouteAccount:
		return "account"
	default:
		return "not-found"
	}
}

// Resolve maps a location fragment to a [Route] by exact string match.
// The empty fragment defaults to login; unknown fragments map to not-found.
func Resolve(fragment string) Route {
	switch fragment {
	case "", FragmentLogin:
		return RouteLogin
	case FragmentRegister:
		return RouteRegister
	case FragmentAccount:
		return RouteAccount
	default:
		return RouteNotFound
	}
}

// Router holds the current location fragment and notifies subscribers when
// it changes. It plays the role the location bar plays for a browser app:
// the single writable navigation cell everything else observes.
type Router struct {
	mu       sync.Mutex
	fragment string
	subs     []func(Route)
}

// New creates a Router positioned at initial. An empty initial fragment is
// normalized to the login fragment, mutating the router's own location — the
// first-run redirect.
func New(initial string) *Router {
	if initial == "" {
		initial = FragmentLogin
	}
	return &Router{fragment: initial}
}

// Current returns the route resolved from the current fragment.
func (r *Router) Current() Route {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Resolve(r.fragment)
}

// Fragment returns the current raw fragment string.
func (r *Router) Fragment() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.fragment
}

// Subscribe registers fn to be called with the resolved route after every
// fragment change. Subscribers are invoked synchronously from [Navigate],
// outside the router's lock.
func (r *Router) Subscribe(fn func(Route)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subs = append(r.subs, fn)
}

// Navigate sets the location fragment and notifies subscribers with the
// resolved route. An empty fragment is normalized to the login default.
// Navigating to the fragment already current is a no-op.
func (r *Router) Navigate(fragment string) {
	if fragment == "" {
		fragment = FragmentLogin
	}

	r.mu.Lock()
	if fragment == r.fragment {
		r.mu.Unlock()
		return
	}
	r.fragment = fragment
	subs := make([]func(Route), len(r.subs))
	copy(subs, r.subs)
	r.mu.Unlock()

	route := Resolve(fragment)
	for _, fn := range subs {
		fn(route)
	}
}
