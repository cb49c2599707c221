package authapi

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Jnavarr56/ifhelper-web/internal/services/web/platform/httpx"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return New(server.URL+"/", time.Second, WithHTTPClient(server.Client()))
}

func TestAuthorizeSendsBearerAndDecodesProfile(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/authentication/authorize" {
			t.Errorf("request = %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok-1" {
			t.Errorf("Authorization = %q, want %q", got, "Bearer tok-1")
		}
		if got := r.Header.Get("Accept"); got != "application/json" {
			t.Errorf("Accept = %q", got)
		}
		if got := r.Header.Get(httpx.RequestIDHeader); got != "req-7" {
			t.Errorf("request id = %q, want %q", got, "req-7")
		}
		_, _ = io.WriteString(w, `{"authenticated_user":{"id":42,"first_name":"Ada","email":"ada@example.com","role":"admin"}}`)
	})

	ctx := httpx.WithRequestID(context.Background(), "req-7")
	result, err := client.Authorize(ctx, "tok-1")
	if err != nil {
		t.Fatalf("Authorize() error = %v", err)
	}
	if result.AccessToken != "" {
		t.Fatalf("AccessToken = %q, want empty", result.AccessToken)
	}
	if result.User.ID != "42" || result.User.FirstName != "Ada" {
		t.Fatalf("User = %+v", result.User)
	}
	if !strings.Contains(string(result.User.Raw), `"role":"admin"`) {
		t.Fatalf("Raw = %s, want full profile retained", result.User.Raw)
	}
}

func TestAuthorizeRefreshedToken(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"access_token":"tok-2","authenticated_user":{"id":"u-1"}}`)
	})

	result, err := client.Authorize(context.Background(), "tok-1")
	if err != nil {
		t.Fatalf("Authorize() error = %v", err)
	}
	if result.AccessToken != "tok-2" {
		t.Fatalf("AccessToken = %q, want %q", result.AccessToken, "tok-2")
	}
}

func TestAuthorizeUnrecognizableProfiles(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{name: "missing user", body: `{}`},
		{name: "null user", body: `{"authenticated_user":null}`},
		{name: "string user", body: `{"authenticated_user":"ada"}`},
		{name: "user without id", body: `{"authenticated_user":{"first_name":"Ada"}}`},
		{name: "bool id", body: `{"authenticated_user":{"id":true}}`},
		{name: "not json", body: `<html>`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				_, _ = io.WriteString(w, tc.body)
			})
			_, err := client.Authorize(context.Background(), "tok")
			if !errors.Is(err, ErrInvalidResponse) {
				t.Fatalf("Authorize() error = %v, want ErrInvalidResponse", err)
			}
		})
	}
}

func TestAuthorizeRejected(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	_, err := client.Authorize(context.Background(), "expired")
	statusErr, ok := AsStatusError(err)
	if !ok {
		t.Fatalf("Authorize() error = %v, want *StatusError", err)
	}
	if statusErr.StatusCode != http.StatusUnauthorized || statusErr.Op != "authorize" {
		t.Fatalf("StatusError = %+v", statusErr)
	}
	if !IsUnauthorized(err) {
		t.Fatal("expected IsUnauthorized")
	}
}

func TestTransportFailureIsUnavailable(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	client := New(url, time.Second)
	_, err := client.SignIn(context.Background(), "ada@example.com", "secret")
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("SignIn() error = %v, want ErrUnavailable", err)
	}
	if _, ok := AsStatusError(err); ok {
		t.Fatal("transport failure must not be a StatusError")
	}
}

func TestTimeoutIsUnavailable(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(func() {
		close(release)
		server.Close()
	})

	client := New(server.URL, 50*time.Millisecond)
	_, err := client.SignUp(context.Background(), Registration{Email: "ada@example.com"})
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("SignUp() error = %v, want ErrUnavailable", err)
	}
}

func TestSignInPostsCredentials(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/authentication/sign-in" {
			t.Errorf("request = %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("Content-Type = %q", got)
		}
		body, _ := io.ReadAll(r.Body)
		if string(body) != `{"email":"ada@example.com","password":"secret"}` {
			t.Errorf("body = %s", body)
		}
		_, _ = io.WriteString(w, `{"access_token":"tok","authenticated_user":{"id":"u-1"}}`)
	})

	result, err := client.SignIn(context.Background(), "ada@example.com", "secret")
	if err != nil {
		t.Fatalf("SignIn() error = %v", err)
	}
	if result.AccessToken != "tok" || result.User.ID != "u-1" {
		t.Fatalf("result = %+v", result)
	}
}

func TestSignInRequiresAccessToken(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"authenticated_user":{"id":"u-1"}}`)
	})
	if _, err := client.SignIn(context.Background(), "a@b.c", "x"); !errors.Is(err, ErrInvalidResponse) {
		t.Fatalf("SignIn() error = %v, want ErrInvalidResponse", err)
	}
}

func TestExchangeOAuthCallbackForwardsQueryAndCookies(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/authentication/callback/google" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if r.URL.RawQuery != "code=abc&state=xyz" {
			t.Errorf("query = %q", r.URL.RawQuery)
		}
		if cookie, err := r.Cookie("oauth_state"); err != nil || cookie.Value != "s1" {
			t.Errorf("oauth_state cookie = %v, %v", cookie, err)
		}
		_, _ = io.WriteString(w, `{"access_token":"tok","authenticated_user":{"id":"u-1"}}`)
	})

	result, err := client.ExchangeOAuthCallback(context.Background(), "google", "?code=abc&state=xyz", []*http.Cookie{
		{Name: "oauth_state", Value: "s1"},
		nil,
	})
	if err != nil {
		t.Fatalf("ExchangeOAuthCallback() error = %v", err)
	}
	if result.AccessToken != "tok" {
		t.Fatalf("AccessToken = %q", result.AccessToken)
	}
}

func TestSignOutIgnoresBody(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/authentication/sign-out" {
			t.Errorf("request = %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Errorf("Authorization = %q", got)
		}
		_, _ = io.WriteString(w, `not json`)
	})
	if err := client.SignOut(context.Background(), "tok"); err != nil {
		t.Fatalf("SignOut() error = %v", err)
	}
}

func TestSignUpEmailTaken(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/registration/sign-up" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"error_code":"USER WITH EMAIL ALREADY EXISTS"}`)
	})

	_, err := client.SignUp(context.Background(), Registration{Email: "ada@example.com"})
	if !IsEmailTaken(err) {
		t.Fatalf("SignUp() error = %v, want email taken", err)
	}
}

func TestSignUpOtherBadRequestIsNotEmailTaken(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = io.WriteString(w, `{"error_code":"USER WITH EMAIL ALREADY EXISTS"}`)
	})

	_, err := client.SignUp(context.Background(), Registration{})
	if IsEmailTaken(err) {
		t.Fatal("only a 400 carries the email-taken meaning")
	}
}

func TestSignUpSuccess(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"new_user":{"first_name":"Ada","email":"ada@example.com"}}`)
	})

	user, err := client.SignUp(context.Background(), Registration{FirstName: "Ada"})
	if err != nil {
		t.Fatalf("SignUp() error = %v", err)
	}
	if user.FirstName != "Ada" || user.Email != "ada@example.com" {
		t.Fatalf("user = %+v", user)
	}
}

func TestWithTracerProviderRecordsClientSpan(t *testing.T) {
	t.Parallel()

	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	t.Cleanup(server.Close)
	client := New(server.URL, time.Second, WithHTTPClient(server.Client()), WithTracerProvider(provider))

	if _, err := client.Authorize(context.Background(), "tok"); err == nil {
		t.Fatal("expected error for 401")
	}

	spans := recorder.Ended()
	if len(spans) != 1 {
		t.Fatalf("spans = %d, want 1", len(spans))
	}
	span := spans[0]
	if span.Name() != "authapi.authorize" {
		t.Fatalf("span name = %q, want %q", span.Name(), "authapi.authorize")
	}
	if span.SpanKind() != trace.SpanKindClient {
		t.Fatalf("span kind = %v, want client", span.SpanKind())
	}
	if span.Status().Code != codes.Error {
		t.Fatalf("span status = %v, want %v", span.Status().Code, codes.Error)
	}
}
