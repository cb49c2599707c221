package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Jnavarr56/ifhelper-web/internal/services/web/integration/authapi"
	"github.com/Jnavarr56/ifhelper-web/internal/services/web/platform/credential"
)

type recordingDispatcher struct {
	tokens []string
}

func (d *recordingDispatcher) Dispatch(token string) {
	d.tokens = append(d.tokens, token)
}

func credentialCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	var found *http.Cookie
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == credential.Name {
			found = cookie
		}
	}
	return found
}

func TestSignInIsVisibleImmediately(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "http://example.com/oauth/callback/google", nil)
	state := NewState(rec, req, credential.Policy{}, nil)
	state.settle("", authapi.User{}, false)

	user := authapi.User{ID: "u-1", FirstName: "Ada"}
	state.SignIn("tok-1", user)

	got, ok := state.Current()
	if !ok || got.ID != "u-1" {
		t.Fatalf("Current() = %+v, %v, want u-1", got, ok)
	}
	if state.Token() != "tok-1" {
		t.Fatalf("Token() = %q, want %q", state.Token(), "tok-1")
	}
	cookie := credentialCookie(t, rec)
	if cookie == nil || cookie.Value != "tok-1" {
		t.Fatalf("credential cookie = %+v, want tok-1", cookie)
	}
	if cookie.MaxAge != int(credential.DefaultTTL.Seconds()) || cookie.Path != "/" {
		t.Fatalf("credential cookie scope = max-age %d path %q", cookie.MaxAge, cookie.Path)
	}
}

func TestSignInEmptyTokenIgnored(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	state := NewState(rec, httptest.NewRequest(http.MethodGet, "/", nil), credential.Policy{}, nil)
	state.SignIn("  ", authapi.User{ID: "u-1"})

	if _, ok := state.Current(); ok {
		t.Fatal("expected no session without a token")
	}
	if cookie := credentialCookie(t, rec); cookie != nil {
		t.Fatalf("unexpected cookie %+v", cookie)
	}
}

func TestSignOutClearsAndDispatches(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	dispatcher := &recordingDispatcher{}
	state := NewState(rec, httptest.NewRequest(http.MethodPost, "/sign-out", nil), credential.Policy{}, dispatcher)
	state.settle("tok-1", authapi.User{ID: "u-1"}, true)

	state.SignOut()

	if _, ok := state.Current(); ok {
		t.Fatal("expected session none after SignOut")
	}
	if state.Token() != "" {
		t.Fatalf("Token() = %q, want empty", state.Token())
	}
	cookie := credentialCookie(t, rec)
	if cookie == nil || cookie.MaxAge >= 0 {
		t.Fatalf("credential cookie = %+v, want expired", cookie)
	}
	if len(dispatcher.tokens) != 1 || dispatcher.tokens[0] != "tok-1" {
		t.Fatalf("dispatched = %v, want [tok-1]", dispatcher.tokens)
	}
}

func TestSignOutWhileAPIHangs(t *testing.T) {
	t.Parallel()

	client := &blockingSignOut{started: make(chan string, 1), release: make(chan struct{})}
	notifier := NewNotifier(client, NotifierConfig{Workers: 1, Logf: discardLogf})
	t.Cleanup(func() {
		close(client.release)
		_ = notifier.Close()
	})

	rec := httptest.NewRecorder()
	state := NewState(rec, httptest.NewRequest(http.MethodPost, "/sign-out", nil), credential.Policy{}, notifier)
	state.settle("tok-1", authapi.User{ID: "u-1"}, true)

	state.SignOut()
	if _, ok := state.Current(); ok {
		t.Fatal("expected session none immediately after SignOut")
	}

	if token := <-client.started; token != "tok-1" {
		t.Fatalf("notified token = %q, want tok-1", token)
	}
	if _, ok := state.Current(); ok {
		t.Fatal("expected session none while the API call is in flight")
	}
}

func TestSettleOnlyOnce(t *testing.T) {
	t.Parallel()

	state := NewState(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil), credential.Policy{}, nil)
	if !state.Fetching() {
		t.Fatal("expected Fetching() before settle")
	}
	state.settle("", authapi.User{}, false)
	state.settle("tok", authapi.User{ID: "u-1"}, true)

	if state.Fetching() {
		t.Fatal("expected Fetching() false after settle")
	}
	if _, ok := state.Current(); ok {
		t.Fatal("second settle must be ignored")
	}
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	if FromContext(context.Background()) != nil {
		t.Fatal("expected nil state on bare context")
	}
	state := NewState(nil, nil, credential.Policy{}, nil)
	if got := FromContext(WithState(context.Background(), state)); got != state {
		t.Fatalf("FromContext() = %p, want %p", got, state)
	}
}

func TestNilStateIsNone(t *testing.T) {
	t.Parallel()

	var state *State
	if _, ok := state.Current(); ok {
		t.Fatal("nil state must report none")
	}
	state.SignOut()
	state.SignIn("tok", authapi.User{ID: "x"})
}
