// Package session holds the per-request session cell shared by every
// dashboard handler, the middleware that resolves it from the credential
// cookie, and the background sign-out notifier.
package session

import (
	"context"
	"log"
	"net/http"
	"strings"
	"sync"

	"github.com/Jnavarr56/ifhelper-web/internal/services/web/integration/authapi"
	"github.com/Jnavarr56/ifhelper-web/internal/services/web/platform/credential"
	"github.com/Jnavarr56/ifhelper-web/internal/services/web/platform/httpx"
)

// Dispatcher receives discarded credentials for remote invalidation.
// Dispatch must not block.
type Dispatcher interface {
	Dispatch(token string)
}

// State is the session for one browser request. It starts as none with
// Fetching true; the resolver settles it exactly once.
type State struct {
	mu sync.Mutex

	w          http.ResponseWriter
	r          *http.Request
	policy     credential.Policy
	dispatcher Dispatcher

	user     authapi.User
	token    string
	signedIn bool
	fetching bool
}

type stateKey struct{}

// NewState builds an unresolved session bound to one request/response pair.
func NewState(w http.ResponseWriter, r *http.Request, policy credential.Policy, dispatcher Dispatcher) *State {
	return &State{
		w:          w,
		r:          r,
		policy:     policy,
		dispatcher: dispatcher,
		fetching:   true,
	}
}

// WithState stores state on ctx.
func WithState(ctx context.Context, state *State) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, stateKey{}, state)
}

// FromContext returns the request session, or nil outside the resolver.
func FromContext(ctx context.Context) *State {
	if ctx == nil {
		return nil
	}
	state, _ := ctx.Value(stateKey{}).(*State)
	return state
}

// Current returns the signed-in user.
func (s *State) Current() (authapi.User, bool) {
	if s == nil {
		return authapi.User{}, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.signedIn {
		return authapi.User{}, false
	}
	return s.user, true
}

// Token returns the credential held by the session.
func (s *State) Token() string {
	if s == nil {
		return ""
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Fetching reports whether the session is still being resolved.
func (s *State) Fetching() bool {
	if s == nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fetching
}

// SignIn persists token as the credential and makes user current. It does
// not verify either value.
func (s *State) SignIn(token string, user authapi.User) {
	if s == nil {
		return
	}
	token = strings.TrimSpace(token)
	if token == "" {
		log.Printf("session: sign-in ignored, empty token request_id=%s", requestID(s.r))
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	credential.Write(s.w, s.r, token, s.policy)
	s.token = token
	s.user = user
	s.signedIn = true
}

// SignOut discards the credential locally, then hands it to the dispatcher
// for remote invalidation. The local logout never waits on the network.
func (s *State) SignOut() {
	if s == nil {
		return
	}
	s.mu.Lock()
	token := s.token
	credential.Clear(s.w, s.r, s.policy)
	s.token = ""
	s.user = authapi.User{}
	s.signedIn = false
	s.mu.Unlock()

	if token != "" && s.dispatcher != nil {
		s.dispatcher.Dispatch(token)
	}
}

// settle records the resolver outcome and ends fetching. Later calls are
// ignored.
func (s *State) settle(token string, user authapi.User, signedIn bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.fetching {
		return
	}
	s.fetching = false
	if !signedIn {
		return
	}
	s.token = token
	s.user = user
	s.signedIn = true
}

func requestID(r *http.Request) string {
	if r == nil {
		return "-"
	}
	if id := httpx.RequestIDFromContext(r.Context()); id != "" {
		return id
	}
	return "-"
}
