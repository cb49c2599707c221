// Package authapi is the HTTP/JSON client for the remote authentication and
// registration API.
package authapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Jnavarr56/ifhelper-web/internal/platform/timeouts"
	"github.com/Jnavarr56/ifhelper-web/internal/services/web/platform/httpx"
	"github.com/Jnavarr56/ifhelper-web/internal/services/web/routepath"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const (
	tracerName   = "github.com/Jnavarr56/ifhelper-web/authapi"
	maxBodyBytes = 1 << 20
)

// AuthResult is the payload of authorize, sign-in and OAuth exchange calls.
// AccessToken is optional on authorize.
type AuthResult struct {
	AccessToken string
	User        User
}

// Registration is the sign-up request body.
type Registration struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Policy    bool   `json:"policy"`
}

// NewUser is the account created by SignUp.
type NewUser struct {
	FirstName string `json:"first_name"`
	Email     string `json:"email"`
}

type authPayload struct {
	AccessToken       string          `json:"access_token"`
	AuthenticatedUser json.RawMessage `json:"authenticated_user"`
}

type signUpPayload struct {
	NewUser *NewUser `json:"new_user"`
}

type errorPayload struct {
	ErrorCode string `json:"error_code"`
}

// Client calls the remote API. It is safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
	tracer  trace.Tracer
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.http = client
		}
	}
}

// WithTracerProvider replaces the global tracer provider for client spans.
func WithTracerProvider(provider trace.TracerProvider) Option {
	return func(c *Client) {
		if provider != nil {
			c.tracer = provider.Tracer(tracerName)
		}
	}
}

// New builds a client for baseURL. A non-positive timeout uses
// timeouts.APIRequest.
func New(baseURL string, timeout time.Duration, opts ...Option) *Client {
	if timeout <= 0 {
		timeout = timeouts.APIRequest
	}
	c := &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http:    &http.Client{Timeout: timeout},
		tracer:  otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// Authorize exchanges a stored credential for the current user's profile.
func (c *Client) Authorize(ctx context.Context, token string) (AuthResult, error) {
	var payload authPayload
	err := c.do(ctx, call{
		op:     "authorize",
		method: http.MethodGet,
		path:   routepath.APIAuthorize,
		token:  token,
	}, &payload)
	if err != nil {
		return AuthResult{}, err
	}
	return authResult(payload, false)
}

// SignIn authenticates with email and password.
func (c *Client) SignIn(ctx context.Context, email string, password string) (AuthResult, error) {
	var payload authPayload
	err := c.do(ctx, call{
		op:     "sign_in",
		method: http.MethodPost,
		path:   routepath.APISignIn,
		body: map[string]string{
			"email":    email,
			"password": password,
		},
	}, &payload)
	if err != nil {
		return AuthResult{}, err
	}
	return authResult(payload, true)
}

// ExchangeOAuthCallback forwards the provider redirect query and browser
// cookies to the API and returns the issued credential.
func (c *Client) ExchangeOAuthCallback(ctx context.Context, provider string, rawQuery string, cookies []*http.Cookie) (AuthResult, error) {
	path := routepath.APIOAuthCallback(provider)
	if rawQuery = strings.TrimPrefix(rawQuery, "?"); rawQuery != "" {
		path += "?" + rawQuery
	}
	var payload authPayload
	err := c.do(ctx, call{
		op:      "oauth_callback",
		method:  http.MethodGet,
		path:    path,
		cookies: cookies,
		attrs:   []attribute.KeyValue{attribute.String("oauth.provider", provider)},
	}, &payload)
	if err != nil {
		return AuthResult{}, err
	}
	return authResult(payload, true)
}

// SignOut tells the API the credential was discarded. The response body is
// ignored.
func (c *Client) SignOut(ctx context.Context, token string) error {
	return c.do(ctx, call{
		op:     "sign_out",
		method: http.MethodPost,
		path:   routepath.APISignOut,
		token:  token,
	}, nil)
}

// SignUp registers a new account.
func (c *Client) SignUp(ctx context.Context, registration Registration) (NewUser, error) {
	var payload signUpPayload
	err := c.do(ctx, call{
		op:     "sign_up",
		method: http.MethodPost,
		path:   routepath.APISignUp,
		body:   registration,
	}, &payload)
	if err != nil {
		return NewUser{}, err
	}
	if payload.NewUser == nil {
		return NewUser{}, fmt.Errorf("sign_up: new_user is missing: %w", ErrInvalidResponse)
	}
	return *payload.NewUser, nil
}

func authResult(payload authPayload, requireToken bool) (AuthResult, error) {
	token := strings.TrimSpace(payload.AccessToken)
	if requireToken && token == "" {
		return AuthResult{}, fmt.Errorf("access_token is missing: %w", ErrInvalidResponse)
	}
	user, err := profile(payload.AuthenticatedUser)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{AccessToken: token, User: user}, nil
}

type call struct {
	op      string
	method  string
	path    string
	token   string
	body    any
	cookies []*http.Cookie
	attrs   []attribute.KeyValue
}

func (c *Client) do(ctx context.Context, in call, out any) (err error) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, span := c.tracer.Start(ctx, "authapi."+in.op, trace.WithSpanKind(trace.SpanKindClient))
	span.SetAttributes(append([]attribute.KeyValue{
		attribute.String("http.request.method", in.method),
		attribute.String("authapi.operation", in.op),
	}, in.attrs...)...)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	var body io.Reader
	if in.body != nil {
		encoded, err := json.Marshal(in.body)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", in.op, err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, in.method, routepath.JoinAPI(c.baseURL, in.path), body)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", in.op, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := strings.TrimSpace(in.token); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for _, cookie := range in.cookies {
		if cookie != nil {
			req.AddCookie(cookie)
		}
	}
	if requestID := httpx.RequestIDFromContext(ctx); requestID != "" {
		req.Header.Set(httpx.RequestIDHeader, requestID)
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w: %w", in.op, ErrUnavailable, err)
	}
	defer resp.Body.Close()
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("%s: read response: %w: %w", in.op, ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var payload errorPayload
		_ = json.Unmarshal(data, &payload)
		return &StatusError{
			Op:         in.op,
			StatusCode: resp.StatusCode,
			Code:       strings.TrimSpace(payload.ErrorCode),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s: decode response: %w: %w", in.op, ErrInvalidResponse, err)
	}
	return nil
}
