package publicauth

import (
	"errors"

	"github.com/Jnavarr56/ifhelper-web/internal/services/web/integration/authapi"
	apperrors "github.com/Jnavarr56/ifhelper-web/internal/services/web/platform/errors"
	"github.com/Jnavarr56/ifhelper-web/internal/services/web/templates"
)

const (
	alertGeneric            = "alert.generic"
	alertEmailUnavailable   = "alert.email_unavailable"
	alertInvalidCredentials = "alert.invalid_credentials"
)

// classifySignUp maps a registration failure onto an alert. Only a 400 with
// the email-taken code gets the specific message.
func classifySignUp(err error) error {
	switch {
	case authapi.IsEmailTaken(err):
		return apperrors.Wrap(apperrors.KindConflict, alertEmailUnavailable, err)
	case errors.Is(err, authapi.ErrUnavailable):
		return apperrors.Wrap(apperrors.KindUnavailable, alertGeneric, err)
	default:
		return apperrors.Wrap(apperrors.KindUnknown, alertGeneric, err)
	}
}

func classifySignIn(err error) error {
	switch {
	case authapi.IsUnauthorized(err):
		return apperrors.Wrap(apperrors.KindUnauthorized, alertInvalidCredentials, err)
	case errors.Is(err, authapi.ErrUnavailable):
		return apperrors.Wrap(apperrors.KindUnavailable, alertGeneric, err)
	default:
		return apperrors.Wrap(apperrors.KindUnknown, alertGeneric, err)
	}
}

func alertFor(loc templates.Localizer, err error) *templates.Alert {
	key := apperrors.LocalizationKey(err)
	if key == "" {
		key = alertGeneric
	}
	return &templates.Alert{
		Title: templates.T(loc, key+".title"),
		Text:  templates.T(loc, key+".text"),
	}
}
