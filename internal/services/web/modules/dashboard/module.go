// Package dashboard provides the authenticated placeholder sections and the
// sign-out action.
package dashboard

import (
	"net/http"

	"github.com/Jnavarr56/ifhelper-web/internal/services/web/module"
	"github.com/Jnavarr56/ifhelper-web/internal/services/web/platform/requestmeta"
	"github.com/Jnavarr56/ifhelper-web/internal/services/web/routepath"
)

// Module provides authenticated dashboard routes.
type Module struct {
	scheme requestmeta.SchemePolicy
}

// New returns a dashboard module.
func New(scheme requestmeta.SchemePolicy) Module {
	return Module{scheme: scheme}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "dashboard" }

type section struct {
	path     string
	titleKey string
}

var sections = []section{
	{path: routepath.Dashboard, titleKey: "title.dashboard"},
	{path: routepath.Users, titleKey: "title.users"},
	{path: routepath.Products, titleKey: "title.products"},
	{path: routepath.Typography, titleKey: "title.typography"},
	{path: routepath.Icons, titleKey: "title.icons"},
	{path: routepath.Account, titleKey: "title.account"},
	{path: routepath.Settings, titleKey: "title.settings"},
}

// Routes returns the dashboard sections, the not-found page and sign-out.
func (m Module) Routes() []module.Route {
	routes := make([]module.Route, 0, len(sections)+2)
	for _, s := range sections {
		routes = append(routes, module.Route{
			Path:   s.path,
			Layout: module.LayoutMain,
			Page:   sectionPage(s.titleKey),
		})
	}
	routes = append(routes,
		module.Route{Path: routepath.NotFound, Layout: module.LayoutMinimal, Page: notFoundPage},
		module.Route{Method: http.MethodPost, Path: routepath.SignOut, Layout: module.LayoutMinimal, Page: m.signOut},
	)
	return routes
}
