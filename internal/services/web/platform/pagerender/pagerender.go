// Package pagerender renders module pages inside their layout with the
// shared chrome: language, viewer and one-time notices.
package pagerender

import (
	"bytes"
	"log"
	"net/http"
	"strings"

	"github.com/Jnavarr56/ifhelper-web/internal/services/web/i18n"
	"github.com/Jnavarr56/ifhelper-web/internal/services/web/module"
	apperrors "github.com/Jnavarr56/ifhelper-web/internal/services/web/platform/errors"
	"github.com/Jnavarr56/ifhelper-web/internal/services/web/platform/flash"
	"github.com/Jnavarr56/ifhelper-web/internal/services/web/platform/httpx"
	"github.com/Jnavarr56/ifhelper-web/internal/services/web/platform/requestmeta"
	"github.com/Jnavarr56/ifhelper-web/internal/services/web/session"
	"github.com/Jnavarr56/ifhelper-web/internal/services/web/templates"
	"github.com/a-h/templ"
	"golang.org/x/text/message"
)

// Renderer writes full HTML pages.
type Renderer struct {
	AppName string
	Scheme  requestmeta.SchemePolicy
}

// Localizer returns the printer for the request language.
func Localizer(r *http.Request) *message.Printer {
	tag, _ := i18n.ResolveTag(r)
	return i18n.Printer(tag)
}

// Write renders page inside layout.
func (rd Renderer) Write(w http.ResponseWriter, r *http.Request, layout module.Layout, page module.Page) error {
	if w == nil {
		return nil
	}
	status := page.StatusCode
	if status <= 0 {
		status = http.StatusOK
	}
	body := page.Body
	if body == nil {
		body = templ.NopComponent
	}

	tag, persist := i18n.ResolveTag(r)
	if persist {
		i18n.SetLanguageCookie(w, tag)
	}
	loc := i18n.Printer(tag)

	opts := templates.LayoutOptions{
		Title:       page.Title,
		Lang:        tag.String(),
		AppName:     rd.AppName,
		Loc:         loc,
		CurrentPath: path(r),
		Notice:      rd.readNotice(w, r, loc),
	}
	if user, ok := session.FromContext(httpx.RequestContext(r)).Current(); ok {
		opts.Viewer = &templates.Viewer{FirstName: user.DisplayName(), Email: user.Email}
	}

	var chrome templ.Component
	switch layout {
	case module.LayoutMain:
		chrome = templates.MainLayout(opts)
	default:
		chrome = templates.MinimalLayout(opts)
	}

	var buf bytes.Buffer
	if err := chrome.Render(templ.WithChildren(httpx.RequestContext(r), body), &buf); err != nil {
		return err
	}
	return httpx.WriteHTML(w, status, buf.String())
}

// WriteError logs err and renders the generic alert page with the mapped
// status.
func (rd Renderer) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	if w == nil {
		return
	}
	log.Printf("web: page error method=%s path=%s request_id=%s err=%v",
		method(r), path(r), httpx.RequestIDFromContext(httpx.RequestContext(r)), err)

	loc := Localizer(r)
	page := module.Page{
		Title:      loc.Sprintf("alert.generic.title"),
		StatusCode: apperrors.HTTPStatus(err),
		Body: templates.AlertBanner(&templates.Alert{
			Title: loc.Sprintf("alert.generic.title"),
			Text:  loc.Sprintf("alert.generic.text"),
		}),
	}
	if renderErr := rd.Write(w, r, module.LayoutMinimal, page); renderErr != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// WriteLoading renders the session loading indicator.
func (rd Renderer) WriteLoading(w http.ResponseWriter, r *http.Request) {
	loc := Localizer(r)
	page := module.Page{
		Title: loc.Sprintf("title.loading"),
		Body:  templates.LoadingPage(loc),
	}
	if err := rd.Write(w, r, module.LayoutMinimal, page); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func (rd Renderer) readNotice(w http.ResponseWriter, r *http.Request, loc *message.Printer) *templates.Notice {
	notice, ok := flash.ReadAndClear(w, r, rd.Scheme)
	if !ok {
		return nil
	}
	args := notice.Arguments()
	title := strings.TrimSpace(loc.Sprintf(notice.Key+".title", args...))
	text := strings.TrimSpace(loc.Sprintf(notice.Key+".text", args...))
	if title == "" && text == "" {
		return nil
	}
	return &templates.Notice{Kind: string(notice.Kind), Title: title, Text: text}
}

func method(r *http.Request) string {
	if r == nil {
		return "-"
	}
	return r.Method
}

func path(r *http.Request) string {
	if r == nil || r.URL == nil {
		return ""
	}
	return r.URL.Path
}
