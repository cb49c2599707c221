package publicauth

import (
	"log"
	"net/http"
	"strings"

	"github.com/Jnavarr56/ifhelper-web/internal/services/web/integration/authapi"
	"github.com/Jnavarr56/ifhelper-web/internal/services/web/module"
	apperrors "github.com/Jnavarr56/ifhelper-web/internal/services/web/platform/errors"
	"github.com/Jnavarr56/ifhelper-web/internal/services/web/platform/flash"
	"github.com/Jnavarr56/ifhelper-web/internal/services/web/platform/httpx"
	"github.com/Jnavarr56/ifhelper-web/internal/services/web/platform/pagerender"
	"github.com/Jnavarr56/ifhelper-web/internal/services/web/routepath"
	"github.com/Jnavarr56/ifhelper-web/internal/services/web/templates"
)

const noticeWelcome = "signup.welcome"

func (m Module) signUpForm(_ http.ResponseWriter, r *http.Request) (*module.Page, error) {
	return signUpPage(r, templates.SignUpView{}, http.StatusOK), nil
}

func (m Module) signUp(w http.ResponseWriter, r *http.Request) (*module.Page, error) {
	if err := r.ParseForm(); err != nil {
		return nil, apperrors.Wrap(apperrors.KindInvalidInput, alertGeneric, err)
	}
	form := signUpForm{
		FirstName: strings.TrimSpace(r.PostForm.Get("first_name")),
		LastName:  strings.TrimSpace(r.PostForm.Get("last_name")),
		Email:     strings.TrimSpace(r.PostForm.Get("email")),
		Password:  r.PostForm.Get("password"),
		Policy:    isChecked(r.PostForm.Get("policy")),
	}
	loc := pagerender.Localizer(r)

	if errs := validateSignUp(form, loc); len(errs) > 0 {
		return signUpPage(r, templates.SignUpView{Values: form.values(), Errors: errs}, http.StatusBadRequest), nil
	}
	if m.client == nil {
		failure := apperrors.E(apperrors.KindUnavailable, "auth client is not configured")
		return signUpPage(r, templates.SignUpView{Values: form.values(), Alert: alertFor(loc, failure)}, apperrors.HTTPStatus(failure)), nil
	}

	created, err := m.client.SignUp(r.Context(), authapi.Registration{
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Email:     form.Email,
		Password:  form.Password,
		Policy:    form.Policy,
	})
	if err != nil {
		classified := classifySignUp(err)
		log.Printf("publicauth: sign-up failed request_id=%s kind=%s err=%v", httpx.RequestIDFromContext(r.Context()), apperrors.KindOf(classified), err)
		view := templates.SignUpView{Values: form.values(), Alert: alertFor(loc, classified)}
		return signUpPage(r, view, apperrors.HTTPStatus(classified)), nil
	}

	firstName := fallback(created.FirstName, form.FirstName)
	email := fallback(created.Email, form.Email)
	flash.Write(w, r, flash.NoticeSuccess(noticeWelcome, firstName, email), m.scheme)
	httpx.WriteRedirect(w, r, routepath.SignUp)
	return nil, nil
}

func signUpPage(r *http.Request, view templates.SignUpView, status int) *module.Page {
	loc := pagerender.Localizer(r)
	view.Loc = loc
	return &module.Page{
		Title:      loc.Sprintf("title.sign_up"),
		StatusCode: status,
		Body:       templates.SignUpForm(view),
	}
}

func isChecked(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "on", "1", "yes":
		return true
	default:
		return false
	}
}

func fallback(value string, alt string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return alt
}
