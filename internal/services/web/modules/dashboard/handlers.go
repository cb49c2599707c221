package dashboard

import (
	"net/http"

	"github.com/Jnavarr56/ifhelper-web/internal/services/web/module"
	"github.com/Jnavarr56/ifhelper-web/internal/services/web/platform/flash"
	"github.com/Jnavarr56/ifhelper-web/internal/services/web/platform/httpx"
	"github.com/Jnavarr56/ifhelper-web/internal/services/web/platform/pagerender"
	"github.com/Jnavarr56/ifhelper-web/internal/services/web/routepath"
	"github.com/Jnavarr56/ifhelper-web/internal/services/web/session"
	"github.com/Jnavarr56/ifhelper-web/internal/services/web/templates"
)

func sectionPage(titleKey string) module.PageFunc {
	return func(_ http.ResponseWriter, r *http.Request) (*module.Page, error) {
		loc := pagerender.Localizer(r)
		title := loc.Sprintf(titleKey)
		return &module.Page{
			Title: title,
			Body:  templates.ContentPage(title, loc.Sprintf("dashboard.placeholder")),
		}, nil
	}
}

func notFoundPage(_ http.ResponseWriter, r *http.Request) (*module.Page, error) {
	loc := pagerender.Localizer(r)
	return &module.Page{
		Title:      loc.Sprintf("title.not_found"),
		StatusCode: http.StatusNotFound,
		Body:       templates.NotFoundPage(loc),
	}, nil
}

// signOut logs the browser out locally and leaves the remote notification to
// the session's dispatcher.
func (m Module) signOut(w http.ResponseWriter, r *http.Request) (*module.Page, error) {
	session.FromContext(r.Context()).SignOut()
	flash.Write(w, r, flash.NoticeInfo("signout.done"), m.scheme)
	httpx.WriteRedirect(w, r, routepath.SignIn)
	return nil, nil
}
