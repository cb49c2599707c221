package templates

import (
	"context"
	"io"

	"github.com/Jnavarr56/ifhelper-web/internal/services/web/routepath"
	"github.com/a-h/templ"
)

// Alert is an inline error message shown above a form.
type Alert struct {
	Title string
	Text  string
}

// LoadingPage renders the indicator shown while a session is still resolving.
func LoadingPage(loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := newHTML(w)
		h.open("div", "class", "loading", "role", "progressbar", "aria-busy", "true")
		h.raw(`<span class="spinner"></span>`)
		h.element("p", T(loc, "shell.loading"))
		h.close("div")
		return h.err
	})
}

// ContentPage renders a placeholder dashboard section.
func ContentPage(heading string, text string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := newHTML(w)
		h.open("section", "class", "card")
		h.element("h1", heading)
		if text != "" {
			h.element("p", text)
		}
		h.close("section")
		return h.err
	})
}

// NotFoundPage renders the 404 body.
func NotFoundPage(loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := newHTML(w)
		h.open("section", "class", "not-found")
		h.element("h1", T(loc, "notfound.heading"))
		h.element("p", T(loc, "notfound.text"))
		h.element("a", T(loc, "notfound.back"), "href", routepath.AuthenticatedHome)
		h.close("section")
		return h.err
	})
}

// AlertBanner renders an error alert, or nothing when alert is nil.
func AlertBanner(alert *Alert) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if alert == nil {
			return nil
		}
		h := newHTML(w)
		writeAlert(h, alert)
		return h.err
	})
}

func writeAlert(h *html, alert *Alert) {
	if alert == nil {
		return
	}
	h.open("div", "class", "alert alert-error", "role", "alert")
	h.element("strong", alert.Title, "class", "alert-title")
	h.element("p", alert.Text, "class", "alert-text")
	h.close("div")
}
