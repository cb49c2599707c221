package modules

import (
	"github.com/Jnavarr56/ifhelper-web/internal/services/web/modules/dashboard"
	"github.com/Jnavarr56/ifhelper-web/internal/services/web/modules/publicauth"
)

// DefaultAuthenticatedModules returns the modules of the signed-in tree.
func DefaultAuthenticatedModules(deps Dependencies) []Module {
	return []Module{
		dashboard.New(deps.RequestSchemePolicy),
	}
}

// DefaultAnonymousModules returns the modules of the signed-out tree.
func DefaultAnonymousModules(deps Dependencies) []Module {
	return []Module{
		publicauth.New(publicauth.Config{
			Client:          deps.AuthClient,
			GoogleSignInURL: deps.GoogleSignInURL,
			Scheme:          deps.RequestSchemePolicy,
		}),
	}
}
