package templates

import (
	"context"
	"io"
	"strings"

	"github.com/Jnavarr56/ifhelper-web/internal/services/web/routepath"
	"github.com/a-h/templ"
)

// Viewer is the signed-in user shown in the main layout chrome.
type Viewer struct {
	FirstName string
	Email     string
}

// Notice is a one-time message rendered above page content.
type Notice struct {
	Kind  string
	Title string
	Text  string
}

// LayoutOptions carries shared chrome data for both layouts.
type LayoutOptions struct {
	Title       string
	Lang        string
	AppName     string
	Loc         Localizer
	CurrentPath string
	Viewer      *Viewer
	Notice      *Notice
}

// Layout wraps the children component carried on the render context.
type Layout func(LayoutOptions) templ.Component

type navItem struct {
	path string
	key  string
}

var mainNav = []navItem{
	{path: routepath.Dashboard, key: "nav.dashboard"},
	{path: routepath.Users, key: "nav.users"},
	{path: routepath.Products, key: "nav.products"},
	{path: routepath.Typography, key: "nav.typography"},
	{path: routepath.Icons, key: "nav.icons"},
	{path: routepath.Account, key: "nav.account"},
	{path: routepath.Settings, key: "nav.settings"},
}

// MainLayout renders the signed-in chrome: top bar, sidebar navigation and
// the sign-out action.
func MainLayout(opts LayoutOptions) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTML(w)
		writeHead(h, opts)
		h.raw(`<body class="layout-main">`)
		h.open("header", "class", "topbar")
		h.element("a", appName(opts), "class", "brand", "href", routepath.AuthenticatedHome)
		if opts.Viewer != nil {
			h.open("span", "class", "viewer")
			h.text(T(opts.Loc, "nav.greeting", opts.Viewer.FirstName))
			h.close("span")
		}
		h.open("form", "method", "post", "action", routepath.SignOut, "class", "sign-out")
		h.element("button", T(opts.Loc, "nav.sign_out"), "type", "submit")
		h.close("form")
		h.close("header")
		h.open("nav", "class", "sidebar")
		h.raw("<ul>")
		for _, item := range mainNav {
			h.raw("<li>")
			h.raw("<a").attr("href", item.path)
			if item.path == opts.CurrentPath {
				h.attr("class", "active").attr("aria-current", "page")
			}
			h.raw(">").text(T(opts.Loc, item.key)).raw("</a>")
			h.raw("</li>")
		}
		h.raw("</ul>")
		h.close("nav")
		writeNotice(h, opts.Notice, opts.Loc)
		h.open("main", "class", "content")
		if err := renderChildren(ctx, h); err != nil {
			return err
		}
		h.close("main")
		h.raw("</body></html>")
		return h.err
	})
}

// MinimalLayout renders the anonymous chrome: a bare top bar and content.
func MinimalLayout(opts LayoutOptions) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTML(w)
		writeHead(h, opts)
		h.raw(`<body class="layout-minimal">`)
		h.open("header", "class", "topbar")
		h.element("a", appName(opts), "class", "brand", "href", routepath.Root)
		h.close("header")
		writeNotice(h, opts.Notice, opts.Loc)
		h.open("main", "class", "content")
		if err := renderChildren(ctx, h); err != nil {
			return err
		}
		h.close("main")
		h.raw("</body></html>")
		return h.err
	})
}

func writeHead(h *html, opts LayoutOptions) {
	lang := strings.TrimSpace(opts.Lang)
	if lang == "" {
		lang = "en"
	}
	h.raw("<!DOCTYPE html>")
	h.open("html", "lang", lang)
	h.raw("<head>")
	h.raw(`<meta charset="utf-8">`)
	h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
	h.element("title", pageTitle(opts))
	h.raw(`<link rel="stylesheet" href="` + routepath.Static + `app.css">`)
	h.raw("</head>")
}

func writeNotice(h *html, notice *Notice, loc Localizer) {
	if notice == nil {
		return
	}
	if notice.Kind == "success" {
		h.open("dialog", "open", "", "class", "notice-dialog")
		h.element("h2", notice.Title)
		h.raw("<hr>")
		h.element("p", notice.Text)
		h.open("form", "method", "dialog")
		h.element("button", T(loc, "dialog.ok"), "type", "submit", "class", "button-primary")
		h.close("form")
		h.close("dialog")
		return
	}
	h.open("div", "class", "alert alert-"+notice.Kind, "role", "status")
	h.element("strong", notice.Title)
	h.raw(" ").text(notice.Text)
	h.close("div")
}

func renderChildren(ctx context.Context, h *html) error {
	if h.err != nil {
		return h.err
	}
	children := templ.GetChildren(ctx)
	return children.Render(templ.ClearChildren(ctx), h.w)
}

func appName(opts LayoutOptions) string {
	if name := strings.TrimSpace(opts.AppName); name != "" {
		return name
	}
	return "ifhelper"
}

func pageTitle(opts LayoutOptions) string {
	title := strings.TrimSpace(opts.Title)
	if title == "" {
		return appName(opts)
	}
	return title + " | " + appName(opts)
}
