// Package sentry reports unexpected failures. When no DSN is configured the
// reporter is a no-op, so handlers can call it unconditionally.
package sentry

import (
	"log"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/mritunjay-thakur/clothify/internal/config"
)

type Reporter struct {
	enabled bool
}

func NewReporter(cfg config.SentryConfig) *Reporter {
	if cfg.DSN == "" {
		return &Reporter{}
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: cfg.Environment,
	})
	if err != nil {
		log.Printf("sentry initialization failed: %v", err)
		return &Reporter{}
	}

	return &Reporter{enabled: true}
}

// CaptureHandlerError records an error with the handler and failure site
// tagged, so 500s can be traced without leaking detail to the client.
func (r *Reporter) CaptureHandlerError(handler, site string, err error) {
	if !r.enabled {
		return
	}
	sentry.WithScope(func(scope *sentry.Scope) {
		scope.SetTag("handler", handler)
		scope.SetExtra("error_type", site)
		sentry.CaptureException(err)
	})
}

// Close flushes buffered events before shutdown.
func (r *Reporter) Close() {
	if !r.enabled {
		return
	}
	sentry.Flush(2 * time.Second)
}
