// Package routepath stores canonical HTTP paths for the dashboard.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root   = "/"
	Health = "/up"
	Static = "/static/"

	SignIn              = "/sign-in"
	SignUp              = "/sign-up"
	SignOut             = "/sign-out"
	OAuthCallbackPrefix = "/oauth/callback/"
	OAuthCallbackGoogle = OAuthCallbackPrefix + ProviderGoogle

	Dashboard  = "/dashboard"
	Users      = "/users"
	Products   = "/products"
	Typography = "/typography"
	Icons      = "/icons"
	Account    = "/account"
	Settings   = "/settings"
	NotFound   = "/not-found"

	ProviderGoogle = "google"
)

// Default landing routes for each side of the session gate.
const (
	AuthenticatedHome = Dashboard
	AnonymousHome     = SignIn
)

// API paths on the remote authentication/registration service.
const (
	APIAuthorize           = "/authentication/authorize"
	APISignIn              = "/authentication/sign-in"
	APISignOut             = "/authentication/sign-out"
	APIGoogleSignIn        = "/authentication/google"
	APIOAuthCallbackPrefix = "/authentication/callback/"
	APISignUp              = "/registration/sign-up"
)

// APIOAuthCallback returns the API token-exchange path for an OAuth provider.
func APIOAuthCallback(provider string) string {
	return APIOAuthCallbackPrefix + escapeSegment(provider)
}

// OAuthCallback returns the browser-facing callback route for a provider.
func OAuthCallback(provider string) string {
	return OAuthCallbackPrefix + escapeSegment(provider)
}

// JoinAPI joins an API base URL with a path, tolerating trailing slashes.
func JoinAPI(baseURL string, path string) string {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	path = strings.TrimSpace(path)
	if path == "" {
		return base
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return base + path
}

func escapeSegment(value string) string {
	return url.PathEscape(strings.TrimSpace(value))
}
