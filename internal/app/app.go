package app

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mritunjay-thakur/clothify/internal/config"
	"github.com/mritunjay-thakur/clothify/internal/sdk/sqldb"
	"github.com/mritunjay-thakur/clothify/internal/services/avatar"
	"github.com/mritunjay-thakur/clothify/internal/services/hash"
	"github.com/mritunjay-thakur/clothify/internal/services/oauth"
	"github.com/mritunjay-thakur/clothify/internal/services/sentry"
	"github.com/mritunjay-thakur/clothify/internal/services/session"
	"github.com/mritunjay-thakur/clothify/internal/services/token"
)

type App struct {
	cfg     *config.Config
	logger  *slog.Logger
	db      sqldb.Service
	hash    *hash.HashService
	tokens  *token.TokenService
	cookies *session.Manager
	avatars *avatar.Service
	google  *oauth.Google
	sentry  *sentry.Reporter
	metrics *prometheus.Registry
}

func NewApp(
	cfg *config.Config,
	logger *slog.Logger,
	db sqldb.Service,
	hashService *hash.HashService,
	tokens *token.TokenService,
	cookies *session.Manager,
	avatars *avatar.Service,
	google *oauth.Google,
	reporter *sentry.Reporter,
) *App {
	return &App{
		cfg:     cfg,
		logger:  logger,
		db:      db,
		hash:    hashService,
		tokens:  tokens,
		cookies: cookies,
		avatars: avatars,
		google:  google,
		sentry:  reporter,
		metrics: prometheus.NewRegistry(),
	}
}
