package session

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/Jnavarr56/ifhelper-web/internal/services/web/integration/authapi"
	"github.com/Jnavarr56/ifhelper-web/internal/services/web/platform/credential"
	"github.com/Jnavarr56/ifhelper-web/internal/services/web/platform/httpx"
)

// Authorizer exchanges a credential for the current user's profile.
type Authorizer interface {
	Authorize(ctx context.Context, token string) (authapi.AuthResult, error)
}

// Resolver settles the request session from the credential cookie before
// any route is selected.
type Resolver struct {
	authorizer Authorizer
	policy     credential.Policy
	dispatcher Dispatcher
}

// NewResolver builds a resolver. dispatcher may be nil.
func NewResolver(authorizer Authorizer, policy credential.Policy, dispatcher Dispatcher) *Resolver {
	return &Resolver{authorizer: authorizer, policy: policy, dispatcher: dispatcher}
}

// Middleware injects the resolved State into the request context. A request
// already carrying a State passes through untouched.
func (res *Resolver) Middleware() httpx.Middleware {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if FromContext(r.Context()) != nil {
				next.ServeHTTP(w, r)
				return
			}
			state := res.Resolve(w, r)
			next.ServeHTTP(w, r.WithContext(WithState(r.Context(), state)))
		})
	}
}

// Resolve builds and settles the State for one request. Failures are logged
// and leave the session as none with the credential expired.
func (res *Resolver) Resolve(w http.ResponseWriter, r *http.Request) *State {
	state := NewState(w, r, res.policy, res.dispatcher)

	token, ok := credential.Read(r)
	if !ok {
		state.settle("", authapi.User{}, false)
		return state
	}
	if res.authorizer == nil {
		credential.Clear(w, r, res.policy)
		state.settle("", authapi.User{}, false)
		return state
	}

	result, err := res.authorizer.Authorize(httpx.RequestContext(r), token)
	if err != nil {
		log.Printf("session: authorize failed request_id=%s reason=%s err=%v", requestID(r), failureReason(err), err)
		credential.Clear(w, r, res.policy)
		state.settle("", authapi.User{}, false)
		return state
	}
	if !result.User.Recognizable() {
		log.Printf("session: authorize returned unrecognizable profile request_id=%s", requestID(r))
		credential.Clear(w, r, res.policy)
		state.settle("", authapi.User{}, false)
		return state
	}

	if result.AccessToken != "" {
		credential.Write(w, r, result.AccessToken, res.policy)
		token = result.AccessToken
	}
	state.settle(token, result.User, true)
	return state
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, authapi.ErrUnavailable):
		return "unavailable"
	case errors.Is(err, authapi.ErrInvalidResponse):
		return "invalid_response"
	case authapi.IsUnauthorized(err):
		return "rejected"
	default:
		return "error"
	}
}
