package publicauth

import (
	"strconv"
	"strings"

	"github.com/Jnavarr56/ifhelper-web/internal/services/web/templates"
	"github.com/asaskevich/govalidator"
)

const (
	maxNameLength     = 32
	maxEmailLength    = 64
	maxPasswordLength = 128
)

type signUpForm struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Policy    bool
}

func (f signUpForm) values() templates.SignUpValues {
	return templates.SignUpValues{
		FirstName: f.FirstName,
		LastName:  f.LastName,
		Email:     f.Email,
		Policy:    f.Policy,
	}
}

type fieldErrors map[string]string

// validateSignUp returns localized messages keyed by field name.
func validateSignUp(form signUpForm, loc templates.Localizer) fieldErrors {
	errs := fieldErrors{}
	requireText(errs, loc, "first_name", form.FirstName, maxNameLength)
	requireText(errs, loc, "last_name", form.LastName, maxNameLength)
	if requireText(errs, loc, "email", form.Email, maxEmailLength) && !govalidator.IsEmail(form.Email) {
		errs["email"] = templates.T(loc, "validation.email")
	}
	requireText(errs, loc, "password", form.Password, maxPasswordLength)
	if !form.Policy {
		errs["policy"] = templates.T(loc, "validation.policy")
	}
	return errs
}

func validateSignIn(email string, password string, loc templates.Localizer) fieldErrors {
	errs := fieldErrors{}
	if requireText(errs, loc, "email", email, maxEmailLength) && !govalidator.IsEmail(email) {
		errs["email"] = templates.T(loc, "validation.email")
	}
	requireText(errs, loc, "password", password, maxPasswordLength)
	return errs
}

// requireText reports whether value passed the presence and length checks.
func requireText(errs fieldErrors, loc templates.Localizer, field string, value string, maxLength int) bool {
	if govalidator.IsNull(strings.TrimSpace(value)) {
		errs[field] = templates.T(loc, "validation.required")
		return false
	}
	if !govalidator.StringLength(value, "0", strconv.Itoa(maxLength)) {
		errs[field] = templates.T(loc, "validation.too_long", maxLength)
		return false
	}
	return true
}
