package credential

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Jnavarr56/ifhelper-web/internal/services/web/platform/requestmeta"
)

func TestRead(t *testing.T) {
	t.Parallel()

	if _, ok := Read(nil); ok {
		t.Fatalf("expected nil request to have no credential")
	}

	req := httptest.NewRequest(http.MethodGet, "http://dash.example.test", nil)
	if _, ok := Read(req); ok {
		t.Fatalf("expected missing cookie")
	}

	req.AddCookie(&http.Cookie{Name: Name, Value: "  tok-1  "})
	value, ok := Read(req)
	if !ok {
		t.Fatalf("expected cookie to be present")
	}
	if value != "tok-1" {
		t.Fatalf("value = %q, want %q", value, "tok-1")
	}

	blank := httptest.NewRequest(http.MethodGet, "http://dash.example.test", nil)
	blank.AddCookie(&http.Cookie{Name: Name, Value: "   "})
	if _, ok := Read(blank); ok {
		t.Fatalf("expected blank cookie to count as missing")
	}
}

func TestWriteUsesDefaultTTLAndRootPath(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "http://dash.example.test", nil)
	rr := httptest.NewRecorder()
	Write(rr, req, "tok-1", Policy{})

	cookie, err := http.ParseSetCookie(rr.Header().Get("Set-Cookie"))
	if err != nil {
		t.Fatalf("ParseSetCookie() error = %v", err)
	}
	if cookie.Name != Name {
		t.Fatalf("cookie name = %q, want %q", cookie.Name, Name)
	}
	if cookie.Value != "tok-1" {
		t.Fatalf("cookie value = %q, want %q", cookie.Value, "tok-1")
	}
	if cookie.Path != "/" {
		t.Fatalf("cookie path = %q, want /", cookie.Path)
	}
	if cookie.MaxAge != int(DefaultTTL/time.Second) {
		t.Fatalf("cookie max-age = %d, want %d", cookie.MaxAge, int(DefaultTTL/time.Second))
	}
	if cookie.Secure {
		t.Fatalf("expected non-secure cookie for http request")
	}
	if cookie.SameSite != http.SameSiteLaxMode {
		t.Fatalf("cookie samesite = %v, want lax", cookie.SameSite)
	}
}

func TestWriteHonoursPolicy(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-Proto", "https")
	rr := httptest.NewRecorder()
	Write(rr, req, "tok-2", Policy{TTL: time.Hour, Scheme: requestmeta.SchemePolicy{TrustForwardedProto: true}})

	cookie, err := http.ParseSetCookie(rr.Header().Get("Set-Cookie"))
	if err != nil {
		t.Fatalf("ParseSetCookie() error = %v", err)
	}
	if cookie.MaxAge != 3600 {
		t.Fatalf("cookie max-age = %d, want 3600", cookie.MaxAge)
	}
	if !cookie.Secure {
		t.Fatalf("expected secure cookie when trusted policy is enabled")
	}
}

func TestClear(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "https://dash.example.test", nil)
	rr := httptest.NewRecorder()
	Clear(rr, req, Policy{})
	cookie, err := http.ParseSetCookie(rr.Header().Get("Set-Cookie"))
	if err != nil {
		t.Fatalf("ParseSetCookie() error = %v", err)
	}
	if cookie.Name != Name {
		t.Fatalf("cookie name = %q, want %q", cookie.Name, Name)
	}
	if cookie.MaxAge >= 0 {
		t.Fatalf("cookie max-age = %d, want < 0", cookie.MaxAge)
	}
}

func TestStripFrom(t *testing.T) {
	t.Parallel()

	got := StripFrom([]*http.Cookie{
		{Name: Name, Value: "secret"},
		nil,
		{Name: "oauth_state", Value: "abc"},
	})
	if len(got) != 1 || got[0].Name != "oauth_state" {
		t.Fatalf("StripFrom() = %v, want only oauth_state", got)
	}
}
