// Package web parses dashboard command flags and launches the web server.
package web

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"time"

	entrypoint "github.com/Jnavarr56/ifhelper-web/internal/platform/cmd"
	"github.com/Jnavarr56/ifhelper-web/internal/services/web"
	"go.opentelemetry.io/otel"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr            string        `env:"IFHELPER_WEB_HTTP_ADDR" envDefault:"localhost:3000"`
	APIURL              string        `env:"IFHELPER_API_URL" envDefault:"http://localhost:8000"`
	GoogleSignInURL     string        `env:"IFHELPER_GOOGLE_SIGN_IN_URL"`
	CredentialTTL       time.Duration `env:"IFHELPER_CREDENTIAL_TTL" envDefault:"336h"`
	APITimeout          time.Duration `env:"IFHELPER_API_TIMEOUT" envDefault:"10s"`
	SignOutWorkers      int           `env:"IFHELPER_SIGN_OUT_WORKERS" envDefault:"2"`
	TrustForwardedProto bool          `env:"IFHELPER_TRUST_FORWARDED_PROTO" envDefault:"false"`
	AppName             string        `env:"IFHELPER_APP_NAME" envDefault:"ifhelper"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.APIURL, "api-url", cfg.APIURL, "Authentication API base URL")
	fs.StringVar(&cfg.GoogleSignInURL, "google-sign-in-url", cfg.GoogleSignInURL, "Google sign-in start URL (defaults to the API endpoint)")
	fs.DurationVar(&cfg.CredentialTTL, "credential-ttl", cfg.CredentialTTL, "Credential cookie lifetime")
	fs.DurationVar(&cfg.APITimeout, "api-timeout", cfg.APITimeout, "Per-request API timeout")
	fs.IntVar(&cfg.SignOutWorkers, "sign-out-workers", cfg.SignOutWorkers, "Background sign-out notification workers")
	fs.BoolVar(&cfg.TrustForwardedProto, "trust-forwarded-proto", cfg.TrustForwardedProto, "Honour X-Forwarded-Proto for cookie and origin checks")
	fs.StringVar(&cfg.AppName, "app-name", cfg.AppName, "Application name shown in page titles")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if strings.TrimSpace(cfg.APIURL) == "" {
		return Config{}, fmt.Errorf("api url is required")
	}
	if cfg.SignOutWorkers < 1 {
		return Config{}, fmt.Errorf("sign-out workers must be at least 1, got %d", cfg.SignOutWorkers)
	}
	return cfg, nil
}

// Run starts the dashboard server.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWeb, func(ctx context.Context) error {
		server, err := web.NewServer(web.Config{
			HTTPAddr:            cfg.HTTPAddr,
			APIURL:              cfg.APIURL,
			GoogleSignInURL:     cfg.GoogleSignInURL,
			CredentialTTL:       cfg.CredentialTTL,
			APITimeout:          cfg.APITimeout,
			SignOutWorkers:      cfg.SignOutWorkers,
			TrustForwardedProto: cfg.TrustForwardedProto,
			AppName:             cfg.AppName,
			TracerProvider:      otel.GetTracerProvider(),
		})
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}
