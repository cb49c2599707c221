package publicauth

import (
	"log"
	"net/http"

	"github.com/Jnavarr56/ifhelper-web/internal/services/web/module"
	"github.com/Jnavarr56/ifhelper-web/internal/services/web/platform/credential"
	"github.com/Jnavarr56/ifhelper-web/internal/services/web/platform/httpx"
	"github.com/Jnavarr56/ifhelper-web/internal/services/web/routepath"
	"github.com/Jnavarr56/ifhelper-web/internal/services/web/session"
)

// oauthCallback reconciles the provider redirect into the session. The
// exchange is bound to the request; a result arriving after the client went
// away is dropped without touching cookies or the session.
func (m Module) oauthCallback(w http.ResponseWriter, r *http.Request) (*module.Page, error) {
	ctx := r.Context()
	requestID := httpx.RequestIDFromContext(ctx)
	if m.client == nil {
		log.Printf("publicauth: oauth callback without client request_id=%s", requestID)
		httpx.WriteRedirect(w, r, routepath.SignIn)
		return nil, nil
	}

	result, err := m.client.ExchangeOAuthCallback(ctx, routepath.ProviderGoogle, r.URL.RawQuery, credential.StripFrom(r.Cookies()))
	if ctx.Err() != nil {
		log.Printf("publicauth: oauth callback abandoned request_id=%s err=%v", requestID, ctx.Err())
		return nil, nil
	}
	if err != nil {
		log.Printf("publicauth: oauth exchange failed request_id=%s err=%v", requestID, err)
		httpx.WriteRedirect(w, r, routepath.SignIn)
		return nil, nil
	}

	state := session.FromContext(ctx)
	if state == nil {
		log.Printf("publicauth: oauth callback without session request_id=%s", requestID)
		httpx.WriteRedirect(w, r, routepath.SignIn)
		return nil, nil
	}
	state.SignIn(result.AccessToken, result.User)
	httpx.WriteRedirect(w, r, routepath.AuthenticatedHome)
	return nil, nil
}
