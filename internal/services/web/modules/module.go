// Package modules assembles the feature modules of both route trees.
package modules

import (
	module "github.com/Jnavarr56/ifhelper-web/internal/services/web/module"
	"github.com/Jnavarr56/ifhelper-web/internal/services/web/modules/publicauth"
	"github.com/Jnavarr56/ifhelper-web/internal/services/web/platform/requestmeta"
)

// Module aliases the module interface contract.
type Module = module.Module

// Dependencies carries what the feature modules need. Each client is typed
// as the narrow interface defined by the consuming module.
type Dependencies struct {
	AuthClient          publicauth.AuthClient
	GoogleSignInURL     string
	RequestSchemePolicy requestmeta.SchemePolicy
}
