package app

import (
	"fmt"
	"net/http"

	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/jasonjesuraja06/ucl-tracker-project/internal/config"
	"github.com/jasonjesuraja06/ucl-tracker-project/internal/domain/player"
	"github.com/jasonjesuraja06/ucl-tracker-project/internal/domain/user"
	"github.com/jasonjesuraja06/ucl-tracker-project/internal/infrastructure/account/oidc"
	"github.com/jasonjesuraja06/ucl-tracker-project/internal/infrastructure/repository/memory"
	"github.com/jasonjesuraja06/ucl-tracker-project/internal/infrastructure/repository/postgres"
	"github.com/jasonjesuraja06/ucl-tracker-project/internal/interfaces/httpapi"
	"github.com/jasonjesuraja06/ucl-tracker-project/internal/platform/logging"
	"github.com/jasonjesuraja06/ucl-tracker-project/internal/usecase"
)

// NewHTTPServer wires repositories, services and the HTTP router into
// a ready-to-run server. With no DB_URL configured it falls back to a
// seeded in-memory store for local development.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	store, closeStore, err := newPlayerStore(cfg, logger)
	if err != nil {
		return nil, err
	}

	querySvc := usecase.NewQueryService(store)
	adminSvc := usecase.NewAdminService(store)
	adminGuard := user.NewAdminGuard(cfg.AdminEmails)

	oidcClient := oidc.NewClient(
		&http.Client{Timeout: cfg.OIDCTimeout},
		cfg.OIDCIssuerURL,
		cfg.OIDCUserinfoPath,
		logger,
	)

	handler := httpapi.NewHandler(querySvc, adminSvc, adminGuard, logger)
	router := httpapi.NewRouter(handler, oidcClient, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	if closeStore != nil {
		server.RegisterOnShutdown(func() { _ = closeStore() })
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}

func newPlayerStore(cfg config.Config, logger *logging.Logger) (player.Store, func() error, error) {
	if cfg.DBURL == "" {
		logger.Info("using in-memory player store", "reason", "DB_URL empty")
		return memory.NewPlayerRepository(memory.SeedPlayers()), nil, nil
	}

	db, err := otelsqlx.Connect("postgres", normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary))
	if err != nil {
		return nil, nil, fmt.Errorf("connect postgres: %w", err)
	}

	logger.Info("using postgres player store", "db_name", dbNameFromURL(cfg.DBURL))

	return postgres.NewPlayerRepository(db), db.Close, nil
}
