// Package publicauth provides the anonymous sign-in, sign-up and OAuth
// callback routes.
package publicauth

import (
	"context"
	"net/http"
	"strings"

	"github.com/Jnavarr56/ifhelper-web/internal/services/web/integration/authapi"
	"github.com/Jnavarr56/ifhelper-web/internal/services/web/module"
	"github.com/Jnavarr56/ifhelper-web/internal/services/web/platform/requestmeta"
	"github.com/Jnavarr56/ifhelper-web/internal/services/web/routepath"
)

// AuthClient is the API surface used by public auth routes.
type AuthClient interface {
	SignIn(ctx context.Context, email string, password string) (authapi.AuthResult, error)
	SignUp(ctx context.Context, registration authapi.Registration) (authapi.NewUser, error)
	ExchangeOAuthCallback(ctx context.Context, provider string, rawQuery string, cookies []*http.Cookie) (authapi.AuthResult, error)
}

// Config wires a Module.
type Config struct {
	Client AuthClient
	// GoogleSignInURL starts the Google OAuth flow on the API.
	GoogleSignInURL string
	Scheme          requestmeta.SchemePolicy
}

// Module provides public auth routes.
type Module struct {
	client    AuthClient
	googleURL string
	scheme    requestmeta.SchemePolicy
}

// New returns a public auth module.
func New(cfg Config) Module {
	return Module{
		client:    cfg.Client,
		googleURL: strings.TrimSpace(cfg.GoogleSignInURL),
		scheme:    cfg.Scheme,
	}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "publicauth" }

// Routes returns the anonymous tree routes.
func (m Module) Routes() []module.Route {
	return []module.Route{
		{Path: routepath.SignIn, Layout: module.LayoutMinimal, Page: m.signInForm},
		{Method: http.MethodPost, Path: routepath.SignIn, Layout: module.LayoutMinimal, Page: m.signIn},
		{Path: routepath.SignUp, Layout: module.LayoutMinimal, Page: m.signUpForm},
		{Method: http.MethodPost, Path: routepath.SignUp, Layout: module.LayoutMinimal, Page: m.signUp},
		{Path: routepath.OAuthCallbackGoogle, Layout: module.LayoutMinimal, Page: m.oauthCallback},
	}
}
