package app

import (
	"github.com/Jnavarr56/ifhelper-web/internal/services/web/module"
	"github.com/Jnavarr56/ifhelper-web/internal/services/web/platform/pagerender"
	"github.com/Jnavarr56/ifhelper-web/internal/services/web/platform/requestmeta"
)

// Config captures the composition inputs for the gated root handler.
type Config struct {
	AuthenticatedModules []module.Module
	AnonymousModules     []module.Module
	Renderer             pagerender.Renderer
	RequestSchemePolicy  requestmeta.SchemePolicy
}
