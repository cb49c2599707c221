package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/Jnavarr56/ifhelper-web/internal/services/web/routepath"
	"github.com/a-h/templ"
)

// SignInView is the data rendered by SignInForm.
type SignInView struct {
	Loc       Localizer
	Email     string
	GoogleURL string
	Alert     *Alert
}

// SignInForm renders the email/password form and the Google entry point.
func SignInForm(view SignInView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := newHTML(w)
		loc := view.Loc
		h.open("section", "class", "auth-card")
		h.element("h1", T(loc, "signin.heading"))
		h.element("p", T(loc, "signin.subheading"), "class", "subheading")
		if view.GoogleURL != "" {
			h.element("a", T(loc, "signin.google"), "class", "button button-google", "href", view.GoogleURL)
			h.element("p", T(loc, "signin.divider"), "class", "divider")
		}
		writeAlert(h, view.Alert)
		h.open("form", "method", "post", "action", routepath.SignIn, "novalidate", "")
		writeInput(h, inputField{
			name: "email", kind: "email", label: T(loc, "signin.email"),
			value: view.Email, autocomplete: "email",
		})
		writeInput(h, inputField{
			name: "password", kind: "password", label: T(loc, "signin.password"),
			autocomplete: "current-password",
		})
		h.element("button", T(loc, "signin.submit"), "type", "submit", "class", "button-primary")
		h.close("form")
		h.open("p", "class", "switch")
		h.text(T(loc, "signin.no_account")).raw(" ")
		h.element("a", T(loc, "signin.sign_up_link"), "href", routepath.SignUp)
		h.close("p")
		h.close("section")
		return h.err
	})
}

// SignUpValues holds the submitted sign-up fields so the form can be
// re-rendered after a failed attempt. Password is never echoed back.
type SignUpValues struct {
	FirstName string
	LastName  string
	Email     string
	Policy    bool
}

// SignUpView is the data rendered by SignUpForm.
type SignUpView struct {
	Loc    Localizer
	Values SignUpValues
	// Errors maps field names to a localized message.
	Errors map[string]string
	Alert  *Alert
}

// SignUpForm renders the registration form.
func SignUpForm(view SignUpView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := newHTML(w)
		loc := view.Loc
		h.open("section", "class", "auth-card")
		h.element("h1", T(loc, "signup.heading"))
		h.element("p", T(loc, "signup.subheading"), "class", "subheading")
		writeAlert(h, view.Alert)
		h.open("form", "method", "post", "action", routepath.SignUp, "novalidate", "")
		writeInput(h, inputField{
			name: "first_name", kind: "text", label: T(loc, "signup.first_name"),
			value: view.Values.FirstName, errText: view.Errors["first_name"], maxLength: 32,
		})
		writeInput(h, inputField{
			name: "last_name", kind: "text", label: T(loc, "signup.last_name"),
			value: view.Values.LastName, errText: view.Errors["last_name"], maxLength: 32,
		})
		writeInput(h, inputField{
			name: "email", kind: "email", label: T(loc, "signup.email"),
			value: view.Values.Email, errText: view.Errors["email"], maxLength: 64, autocomplete: "email",
		})
		writeInput(h, inputField{
			name: "password", kind: "password", label: T(loc, "signup.password"),
			errText: view.Errors["password"], maxLength: 128, autocomplete: "new-password",
		})

		h.open("label", "class", "checkbox")
		h.raw(`<input type="checkbox" name="policy" value="true"`).boolAttr("checked", view.Values.Policy).raw(">")
		h.raw(" ").text(T(loc, "signup.policy"))
		h.close("label")
		if msg := view.Errors["policy"]; msg != "" {
			h.element("p", msg, "class", "field-error", "id", "policy-error")
		}

		h.element("button", T(loc, "signup.submit"), "type", "submit", "class", "button-primary")
		h.close("form")
		h.open("p", "class", "switch")
		h.text(T(loc, "signup.have_account")).raw(" ")
		h.element("a", T(loc, "signup.sign_in_link"), "href", routepath.SignIn)
		h.close("p")
		h.close("section")
		return h.err
	})
}

type inputField struct {
	name         string
	kind         string
	label        string
	value        string
	errText      string
	autocomplete string
	maxLength    int
}

func writeInput(h *html, field inputField) {
	id := "field-" + field.name
	class := "field"
	if field.errText != "" {
		class += " field-invalid"
	}
	h.open("div", "class", class)
	h.element("label", field.label, "for", id)
	h.raw("<input").
		attr("id", id).
		attr("name", field.name).
		attr("type", field.kind)
	if field.value != "" {
		h.attr("value", field.value)
	}
	if field.autocomplete != "" {
		h.attr("autocomplete", field.autocomplete)
	}
	if field.maxLength > 0 {
		h.attr("maxlength", strconv.Itoa(field.maxLength))
	}
	if field.errText != "" {
		h.attr("aria-invalid", "true").attr("aria-describedby", id+"-error")
	}
	h.raw(">")
	if field.errText != "" {
		h.element("p", field.errText, "class", "field-error", "id", id+"-error")
	}
	h.close("div")
}
