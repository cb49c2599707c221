package app

import "net/http"

// BuildRootHandler composes both trees and returns the gate over them.
func BuildRootHandler(cfg Config) (http.Handler, error) {
	trees, err := Compose(ComposeInput{
		AuthenticatedModules: cfg.AuthenticatedModules,
		AnonymousModules:     cfg.AnonymousModules,
		Renderer:             cfg.Renderer,
		RequestSchemePolicy:  cfg.RequestSchemePolicy,
	})
	if err != nil {
		return nil, err
	}
	return NewGate(trees, cfg.Renderer), nil
}
