// Package routing decides which view a navigation request may reach.
package routing

import (
	"net/url"
	"strings"
)

// View is a navigable page of the front-end, named by its path.
type View string

const (
	ViewLogin    View = "/login"
	ViewRegister View = "/register"
	ViewHome     View = "/"
	ViewDetails  View = "/details"
)

// Access is who may see a view.
type Access int

const (
	// AccessProtected views need an authenticated session.
	AccessProtected Access = iota + 1
	// AccessAuthOnly views are for logged-out users only.
	AccessAuthOnly
)

var views = map[View]Access{
	ViewLogin:    AccessAuthOnly,
	ViewRegister: AccessAuthOnly,
	ViewHome:     AccessProtected,
	ViewDetails:  AccessProtected,
}

// Decision is the outcome of a guard evaluation. Redirect is empty when View may be
// rendered.
type Decision struct {
	View     View
	Redirect string
}

func (d Decision) Allowed() bool {
	return d.Redirect == ""
}

// Lookup returns the view served at path.
func Lookup(path string) (View, bool) {
	view := View(normalize(path))
	_, ok := views[view]
	return view, ok
}

// Resolve evaluates path for a user whose authentication state is authenticated.
// Unknown paths fall back to home; the guard then runs again on the next request.
func Resolve(path string, authenticated bool) Decision {
	view, ok := Lookup(path)
	if !ok {
		return Decision{View: ViewHome, Redirect: string(ViewHome)}
	}

	switch views[view] {
	case AccessProtected:
		if !authenticated {
			return Decision{View: ViewLogin, Redirect: string(ViewLogin)}
		}
	case AccessAuthOnly:
		if authenticated {
			return Decision{View: ViewHome, Redirect: string(ViewHome)}
		}
	}
	return Decision{View: view}
}

// DetailsPath is the navigation path of the details view for one transaction.
func DetailsPath(transactionID string) string {
	return string(ViewDetails) + "?" + url.Values{"transaction_id": {transactionID}}.Encode()
}

func normalize(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if path == "" {
		return "/"
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
		if path == "" {
			return "/"
		}
	}
	return path
}
