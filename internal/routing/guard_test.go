package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name          string
		path          string
		authenticated bool
		want          Decision
	}{
		{"home logged out", "/", false, Decision{View: ViewLogin, Redirect: "/login"}},
		{"home logged in", "/", true, Decision{View: ViewHome}},
		{"details logged out", "/details", false, Decision{View: ViewLogin, Redirect: "/login"}},
		{"details logged in", "/details?transaction_id=42", true, Decision{View: ViewDetails}},
		{"login logged out", "/login", false, Decision{View: ViewLogin}},
		{"login logged in", "/login", true, Decision{View: ViewHome, Redirect: "/"}},
		{"register logged out", "/register/", false, Decision{View: ViewRegister}},
		{"register logged in", "/register", true, Decision{View: ViewHome, Redirect: "/"}},
		{"unknown logged out", "/reports", false, Decision{View: ViewHome, Redirect: "/"}},
		{"unknown logged in", "/reports/2025", true, Decision{View: ViewHome, Redirect: "/"}},
		{"empty path", "", true, Decision{View: ViewHome}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.path, tt.authenticated))
		})
	}
}

func TestResolve_UnknownPathSettlesAfterSecondPass(t *testing.T) {
	first := Resolve("/nowhere", false)
	assert.False(t, first.Allowed())

	second := Resolve(first.Redirect, false)
	assert.Equal(t, Decision{View: ViewLogin, Redirect: "/login"}, second)

	third := Resolve(second.Redirect, false)
	assert.True(t, third.Allowed())
}

func TestDetailsPath(t *testing.T) {
	assert.Equal(t, "/details?transaction_id=42", DetailsPath("42"))
}
