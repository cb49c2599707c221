// Package module defines the feature contract used by the route gate.
package module

import (
	"net/http"

	"github.com/a-h/templ"
)

// Layout names the chrome a route renders inside.
type Layout string

const (
	// LayoutMain is the signed-in chrome with navigation.
	LayoutMain Layout = "main"
	// LayoutMinimal is the bare chrome used by public and error pages.
	LayoutMinimal Layout = "minimal"
)

// Page is a handler result rendered inside the route layout.
type Page struct {
	Title      string
	StatusCode int
	Body       templ.Component
}

// PageFunc handles a request. It returns nil when it already wrote the
// response, for example a redirect.
type PageFunc func(w http.ResponseWriter, r *http.Request) (*Page, error)

// Route binds one method and path to a page. An empty Method means GET,
// which ServeMux also serves for HEAD.
type Route struct {
	Method string
	Path   string
	Layout Layout
	Page   PageFunc
}

// Pattern returns the ServeMux pattern for the route.
func (r Route) Pattern() string {
	if r.Method == "" {
		return http.MethodGet + " " + r.Path
	}
	return r.Method + " " + r.Path
}

// Module declares the routes a feature contributes to one route tree.
type Module interface {
	ID() string
	Routes() []Route
}
