package app

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/Jnavarr56/ifhelper-web/internal/services/web/module"
	"github.com/Jnavarr56/ifhelper-web/internal/services/web/platform/httpx"
	"github.com/Jnavarr56/ifhelper-web/internal/services/web/platform/pagerender"
	"github.com/Jnavarr56/ifhelper-web/internal/services/web/platform/requestmeta"
	"github.com/Jnavarr56/ifhelper-web/internal/services/web/routepath"
)

// ComposeInput carries the module groups of both route trees.
type ComposeInput struct {
	AuthenticatedModules []module.Module
	AnonymousModules     []module.Module
	Renderer             pagerender.Renderer
	RequestSchemePolicy  requestmeta.SchemePolicy
}

// Trees holds the two precomposed route trees.
type Trees struct {
	Authenticated http.Handler
	Anonymous     http.Handler
}

// Compose builds both route trees. Each tree ends in a catch-all redirect to
// its home route.
func Compose(input ComposeInput) (Trees, error) {
	authenticated, err := composeTree(TreeAuthenticated, input.AuthenticatedModules, routepath.AuthenticatedHome, input)
	if err != nil {
		return Trees{}, err
	}
	anonymous, err := composeTree(TreeAnonymous, input.AnonymousModules, routepath.AnonymousHome, input)
	if err != nil {
		return Trees{}, err
	}
	return Trees{Authenticated: authenticated, Anonymous: anonymous}, nil
}

func composeTree(tree Tree, modules []module.Module, home string, input ComposeInput) (http.Handler, error) {
	root := http.NewServeMux()
	seen := make(map[string]string)

	for _, feature := range modules {
		if feature == nil {
			return nil, fmt.Errorf("%s tree: module is nil", tree)
		}
		for _, route := range feature.Routes() {
			if err := validateRoute(route); err != nil {
				return nil, fmt.Errorf("%s tree: module %q: %w", tree, feature.ID(), err)
			}
			pattern := route.Pattern()
			if previous, ok := seen[pattern]; ok {
				return nil, fmt.Errorf("%s tree: module %q duplicates route %q owned by module %q", tree, feature.ID(), pattern, previous)
			}
			seen[pattern] = feature.ID()
			root.Handle(pattern, routeHandler(route, input.Renderer))
		}
	}

	root.Handle("/", redirectTo(home))
	return requireSameOrigin(input.RequestSchemePolicy)(root), nil
}

func validateRoute(route module.Route) error {
	path := route.Path
	if path == "" {
		return fmt.Errorf("route path is required")
	}
	if strings.TrimSpace(path) != path {
		return fmt.Errorf("route %q must not include surrounding whitespace", path)
	}
	if !strings.HasPrefix(path, "/") {
		return fmt.Errorf("route %q must begin with /", path)
	}
	if path == "/" {
		return fmt.Errorf("route / is reserved for the catch-all redirect")
	}
	if strings.Contains(route.Method, " ") {
		return fmt.Errorf("route %q has invalid method %q", path, route.Method)
	}
	switch route.Layout {
	case module.LayoutMain, module.LayoutMinimal:
	default:
		return fmt.Errorf("route %q has unknown layout %q", path, route.Layout)
	}
	if route.Page == nil {
		return fmt.Errorf("route %q: page is required", path)
	}
	return nil
}

func routeHandler(route module.Route, renderer pagerender.Renderer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page, err := route.Page(w, r)
		if err != nil {
			renderer.WriteError(w, r, err)
			return
		}
		if page == nil {
			return
		}
		if err := renderer.Write(w, r, route.Layout, *page); err != nil {
			log.Printf("web: render failed path=%s request_id=%s err=%v", r.URL.Path, httpx.RequestIDFromContext(r.Context()), err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
	})
}

func redirectTo(location string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteRedirect(w, r, location)
	})
}

// requireSameOrigin rejects cross-site form posts. Every mutation in either
// tree either uses or establishes the credential cookie.
func requireSameOrigin(policy requestmeta.SchemePolicy) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !isMutationMethod(r) {
				next.ServeHTTP(w, r)
				return
			}
			if !requestmeta.HasSameOriginProofWithPolicy(r, policy) {
				http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func isMutationMethod(r *http.Request) bool {
	if r == nil {
		return false
	}
	switch r.Method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	default:
		return false
	}
}
