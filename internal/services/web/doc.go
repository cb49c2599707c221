// Package web serves the browser-facing dashboard.
//
// Each request resolves the session from the credential cookie, then the
// gate picks the signed-in or the signed-out route tree. Static assets and
// the health probe bypass both.
package web
