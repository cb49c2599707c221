package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/Jnavarr56/ifhelper-web/internal/platform/timeouts"
	"github.com/Jnavarr56/ifhelper-web/internal/services/web/app"
	"github.com/Jnavarr56/ifhelper-web/internal/services/web/integration/authapi"
	"github.com/Jnavarr56/ifhelper-web/internal/services/web/modules"
	"github.com/Jnavarr56/ifhelper-web/internal/services/web/modules/publicauth"
	"github.com/Jnavarr56/ifhelper-web/internal/services/web/platform/credential"
	"github.com/Jnavarr56/ifhelper-web/internal/services/web/platform/httpx"
	"github.com/Jnavarr56/ifhelper-web/internal/services/web/platform/pagerender"
	"github.com/Jnavarr56/ifhelper-web/internal/services/web/platform/requestmeta"
	"github.com/Jnavarr56/ifhelper-web/internal/services/web/routepath"
	"github.com/Jnavarr56/ifhelper-web/internal/services/web/session"
	"github.com/Jnavarr56/ifhelper-web/internal/services/web/static"
	"github.com/Jnavarr56/ifhelper-web/internal/services/web/transport/httpmux"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

const defaultSignOutWorkers = 2

// Config defines the inputs for the dashboard server.
type Config struct {
	HTTPAddr string
	// APIURL is the base URL of the remote authentication/registration API.
	APIURL string
	// GoogleSignInURL starts the Google OAuth flow. Defaults to the API's
	// Google endpoint.
	GoogleSignInURL string
	CredentialTTL   time.Duration
	APITimeout      time.Duration
	SignOutWorkers  int
	// TrustForwardedProto honours X-Forwarded-Proto when deciding whether
	// cookies are Secure and which origin mutations must come from.
	TrustForwardedProto bool
	AppName             string
	// TracerProvider records API client spans. Nil uses the global provider.
	TracerProvider trace.TracerProvider
}

// Server hosts the dashboard HTTP server.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	notifier   *session.Notifier
}

// handlerDependencies are the remote collaborators behind the handler.
type handlerDependencies struct {
	authorizer session.Authorizer
	authClient publicauth.AuthClient
	dispatcher session.Dispatcher
}

// NewServer builds a configured dashboard server. Close must be called to
// stop the sign-out workers.
func NewServer(config Config) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	apiURL := strings.TrimSpace(config.APIURL)
	if apiURL == "" {
		return nil, errors.New("api url is required")
	}
	if config.APITimeout <= 0 {
		config.APITimeout = timeouts.APIRequest
	}

	var clientOpts []authapi.Option
	if config.TracerProvider != nil {
		clientOpts = append(clientOpts, authapi.WithTracerProvider(config.TracerProvider))
	}
	client := authapi.New(apiURL, config.APITimeout, clientOpts...)
	workers := config.SignOutWorkers
	if workers <= 0 {
		workers = defaultSignOutWorkers
	}
	notifier := session.NewNotifier(client, session.NotifierConfig{
		Workers: workers,
		Timeout: timeouts.SignOutNotify,
	})

	handler, err := newHandler(config, handlerDependencies{
		authorizer: client,
		authClient: client,
		dispatcher: notifier,
	})
	if err != nil {
		_ = notifier.Close()
		return nil, fmt.Errorf("build handler: %w", err)
	}

	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
		notifier: notifier,
	}, nil
}

// newHandler assembles the root mux: static assets and health outside the
// gate, everything else through request id, panic recovery and session
// resolution before the gate selects a tree.
func newHandler(config Config, deps handlerDependencies) (http.Handler, error) {
	scheme := requestmeta.SchemePolicy{TrustForwardedProto: config.TrustForwardedProto}
	renderer := pagerender.Renderer{
		AppName: strings.TrimSpace(config.AppName),
		Scheme:  scheme,
	}

	moduleDeps := modules.Dependencies{
		AuthClient:          deps.authClient,
		GoogleSignInURL:     googleSignInURL(config),
		RequestSchemePolicy: scheme,
	}
	gate, err := app.BuildRootHandler(app.Config{
		AuthenticatedModules: modules.DefaultAuthenticatedModules(moduleDeps),
		AnonymousModules:     modules.DefaultAnonymousModules(moduleDeps),
		Renderer:             renderer,
		RequestSchemePolicy:  scheme,
	})
	if err != nil {
		return nil, err
	}

	resolver := session.NewResolver(deps.authorizer, credential.Policy{
		TTL:    config.CredentialTTL,
		Scheme: scheme,
	}, deps.dispatcher)

	rootMux := http.NewServeMux()
	httpmux.MountStatic(rootMux, static.FS)
	httpmux.MountHealth(rootMux)
	httpmux.MountGate(rootMux, httpx.Chain(gate,
		httpx.RequestID(),
		httpx.RecoverPanic(),
		resolver.Middleware(),
	))
	return rootMux, nil
}

func googleSignInURL(config Config) string {
	if url := strings.TrimSpace(config.GoogleSignInURL); url != "" {
		return url
	}
	return routepath.JoinAPI(config.APIURL, routepath.APIGoogleSignIn)
}

// ListenAndServe runs the HTTP server until the context ends.
//
// On cancellation, it performs a bounded shutdown so in-flight requests
// are drained before hard close.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	group, groupCtx := errgroup.WithContext(ctx)
	log.Printf("web listening addr=%s", s.httpAddr)
	group.Go(func() error {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve http: %w", err)
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	})
	return group.Wait()
}

// Close stops the sign-out workers. Notifications still queued are dropped.
func (s *Server) Close() {
	if s == nil || s.notifier == nil {
		return
	}
	if err := s.notifier.Close(); err != nil {
		log.Printf("close sign-out notifier: %v", err)
	}
}
