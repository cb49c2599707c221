// Package app composes the authenticated and anonymous route trees and
// selects one per request from the session.
package app

import (
	"net/http"

	"github.com/Jnavarr56/ifhelper-web/internal/services/web/platform/pagerender"
	"github.com/Jnavarr56/ifhelper-web/internal/services/web/session"
)

// Tree names one route table.
type Tree string

const (
	TreeAuthenticated Tree = "authenticated"
	TreeAnonymous     Tree = "anonymous"
)

// Select maps the session to a tree. It holds no state.
func Select(state *session.State) Tree {
	if _, ok := state.Current(); ok {
		return TreeAuthenticated
	}
	return TreeAnonymous
}

// Gate dispatches each request to the tree selected for its session.
type Gate struct {
	trees    Trees
	renderer pagerender.Renderer
}

// NewGate builds a gate over precomposed trees.
func NewGate(trees Trees, renderer pagerender.Renderer) *Gate {
	if trees.Authenticated == nil {
		trees.Authenticated = http.NotFoundHandler()
	}
	if trees.Anonymous == nil {
		trees.Anonymous = http.NotFoundHandler()
	}
	return &Gate{trees: trees, renderer: renderer}
}

func (g *Gate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	state := session.FromContext(r.Context())
	if state.Fetching() {
		g.renderer.WriteLoading(w, r)
		return
	}
	switch Select(state) {
	case TreeAuthenticated:
		g.trees.Authenticated.ServeHTTP(w, r)
	default:
		g.trees.Anonymous.ServeHTTP(w, r)
	}
}
