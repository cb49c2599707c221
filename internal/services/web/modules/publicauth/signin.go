package publicauth

import (
	"log"
	"net/http"
	"strings"

	"github.com/Jnavarr56/ifhelper-web/internal/services/web/module"
	apperrors "github.com/Jnavarr56/ifhelper-web/internal/services/web/platform/errors"
	"github.com/Jnavarr56/ifhelper-web/internal/services/web/platform/httpx"
	"github.com/Jnavarr56/ifhelper-web/internal/services/web/platform/pagerender"
	"github.com/Jnavarr56/ifhelper-web/internal/services/web/routepath"
	"github.com/Jnavarr56/ifhelper-web/internal/services/web/session"
	"github.com/Jnavarr56/ifhelper-web/internal/services/web/templates"
)

func (m Module) signInForm(_ http.ResponseWriter, r *http.Request) (*module.Page, error) {
	return m.signInPage(r, "", nil, http.StatusOK), nil
}

func (m Module) signIn(w http.ResponseWriter, r *http.Request) (*module.Page, error) {
	if err := r.ParseForm(); err != nil {
		return nil, apperrors.Wrap(apperrors.KindInvalidInput, alertGeneric, err)
	}
	email := strings.TrimSpace(r.PostForm.Get("email"))
	password := r.PostForm.Get("password")
	loc := pagerender.Localizer(r)

	if errs := validateSignIn(email, password, loc); len(errs) > 0 {
		invalid := apperrors.EK(apperrors.KindInvalidInput, alertInvalidCredentials, "sign-in form is incomplete")
		return m.signInPage(r, email, invalid, 0), nil
	}
	if m.client == nil {
		return m.signInPage(r, email, apperrors.E(apperrors.KindUnavailable, "auth client is not configured"), 0), nil
	}

	result, err := m.client.SignIn(r.Context(), email, password)
	if err != nil {
		classified := classifySignIn(err)
		log.Printf("publicauth: sign-in failed request_id=%s kind=%s err=%v", httpx.RequestIDFromContext(r.Context()), apperrors.KindOf(classified), err)
		return m.signInPage(r, email, classified, 0), nil
	}

	session.FromContext(r.Context()).SignIn(result.AccessToken, result.User)
	httpx.WriteRedirect(w, r, routepath.AuthenticatedHome)
	return nil, nil
}

// signInPage renders the form. A non-nil failure becomes the alert and, when
// status is zero, picks the response status.
func (m Module) signInPage(r *http.Request, email string, failure error, status int) *module.Page {
	loc := pagerender.Localizer(r)
	view := templates.SignInView{Loc: loc, Email: email, GoogleURL: m.googleURL}
	if failure != nil {
		view.Alert = alertFor(loc, failure)
		if status == 0 {
			status = apperrors.HTTPStatus(failure)
		}
	}
	return &module.Page{
		Title:      loc.Sprintf("title.sign_in"),
		StatusCode: status,
		Body:       templates.SignInForm(view),
	}
}
