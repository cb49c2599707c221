// Package credential stores the bearer credential cookie shared by every
// dashboard request.
package credential

import (
	"net/http"
	"strings"
	"time"

	"github.com/Jnavarr56/ifhelper-web/internal/services/web/platform/requestmeta"
)

// Name is the cookie holding the API bearer token.
const Name = "_ifhelper_at"

// DefaultTTL is how long a persisted credential survives without a new sign-in.
const DefaultTTL = 14 * 24 * time.Hour

// Policy controls how the credential cookie is written.
type Policy struct {
	TTL    time.Duration
	Scheme requestmeta.SchemePolicy
}

func (p Policy) maxAge() int {
	ttl := p.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return int(ttl / time.Second)
}

// Read returns the trimmed credential when the cookie is present.
func Read(r *http.Request) (string, bool) {
	if r == nil {
		return "", false
	}
	cookie, err := r.Cookie(Name)
	if err != nil || cookie == nil {
		return "", false
	}
	value := strings.TrimSpace(cookie.Value)
	if value == "" {
		return "", false
	}
	return value, true
}

// Write persists token as the credential, root scoped, for the policy TTL.
// The cookie is Lax so it survives top-level navigations that start on
// another site, such as the OAuth return leg and its redirect.
func Write(w http.ResponseWriter, r *http.Request, token string, policy Policy) {
	if w == nil {
		return
	}
	ttl := policy.maxAge()
	http.SetCookie(w, &http.Cookie{
		Name:     Name,
		Value:    strings.TrimSpace(token),
		Path:     "/",
		MaxAge:   ttl,
		Expires:  time.Now().Add(time.Duration(ttl) * time.Second),
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPSWithPolicy(r, policy.Scheme),
		SameSite: http.SameSiteLaxMode,
	})
}

// Clear expires the credential cookie.
func Clear(w http.ResponseWriter, r *http.Request, policy Policy) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPSWithPolicy(r, policy.Scheme),
		SameSite: http.SameSiteLaxMode,
	})
}

// StripFrom returns the request cookies without the credential, for
// forwarding to third parties that must never see the bearer token.
func StripFrom(cookies []*http.Cookie) []*http.Cookie {
	out := make([]*http.Cookie, 0, len(cookies))
	for _, cookie := range cookies {
		if cookie == nil || cookie.Name == Name {
			continue
		}
		out = append(out, cookie)
	}
	return out
}
