// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	airlinesfeature "github.com/dalemusser/groupflight/internal/app/features/airlines"
	"github.com/dalemusser/groupflight/internal/app/features/apidata"
	auditlogfeature "github.com/dalemusser/groupflight/internal/app/features/auditlog"
	errorsfeature "github.com/dalemusser/groupflight/internal/app/features/errors"
	eventsfeature "github.com/dalemusser/groupflight/internal/app/features/events"
	healthfeature "github.com/dalemusser/groupflight/internal/app/features/health"
	homefeature "github.com/dalemusser/groupflight/internal/app/features/home"
	loginfeature "github.com/dalemusser/groupflight/internal/app/features/login"
	logoutfeature "github.com/dalemusser/groupflight/internal/app/features/logout"
	"github.com/dalemusser/groupflight/internal/app/store/audit"
	userstore "github.com/dalemusser/groupflight/internal/app/store/users"
	"github.com/dalemusser/groupflight/internal/app/system/apiclient"
	"github.com/dalemusser/groupflight/internal/app/system/auth"
	"github.com/dalemusser/groupflight/internal/app/system/metrics"
	"github.com/dalemusser/groupflight/internal/app/system/ratelimit"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// the Startup hook have completed. It boots the template engine and mounts
// the data API under /api, the Airline and Event pages, sign-in/out, the
// ops endpoints and the admin audit log.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	return buildRouter(coreCfg, appCfg, deps, logger)
}

// buildRouter wires every feature onto a chi router. It does not touch the
// template engine, so tests can drive it directly.
func buildRouter(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (chi.Router, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, appCfg.SessionMaxAge, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	// Refresh the session user from the database on each request so role
	// changes and deleted accounts take effect immediately.
	sessionMgr.SetUserFetcher(userstore.NewFetcher(deps.DB))

	m := metrics.New()
	auditLog := newAuditLogger(appCfg, deps, logger)
	errLog := errorsfeature.NewErrorLogger(logger)

	// The MVC pages call the data API over HTTP, forwarding the session cookie.
	api, err := apiclient.New(appCfg.APIBaseURL, appCfg.SessionName, m, logger)
	if err != nil {
		logger.Error("api client init failed", zap.Error(err))
		return nil, err
	}

	r := chi.NewRouter()
	r.Use(m.Middleware)

	// Global auth middleware: loads SessionUser into context if logged in.
	r.Use(sessionMgr.LoadSessionUser)

	// Ops
	healthHandler := healthfeature.NewHandler(deps.DB, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))
	if appCfg.MetricsEnabled {
		r.Handle("/metrics", m.Handler())
	}

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// JSON data API
	apiHandler := apidata.NewHandler(deps.DB, auditLog, logger)
	r.Mount("/api", apidata.Routes(apiHandler, sessionMgr))

	// Public pages
	homeHandler := homefeature.NewHandler(logger)
	r.Mount("/", homefeature.Routes(homeHandler))

	airlinesHandler := airlinesfeature.NewHandler(api, errLog, logger)
	r.Mount("/Airline", airlinesfeature.Routes(airlinesHandler, sessionMgr))

	eventsHandler := eventsfeature.NewHandler(api, errLog, logger)
	r.Mount("/Event", eventsfeature.Routes(eventsHandler, sessionMgr))

	// Authentication
	loginHandler := loginfeature.NewHandler(
		userstore.New(deps.DB),
		sessionMgr,
		ratelimit.NewLoginLimiter(appCfg.LoginRateLimit),
		auditLog,
		errLog,
		logger,
	)
	r.Mount("/login", loginfeature.Routes(loginHandler))

	logoutHandler := logoutfeature.NewHandler(sessionMgr, auditLog, logger)
	r.Mount("/logout", logoutfeature.Routes(logoutHandler, sessionMgr))

	// Admin
	auditHandler := auditlogfeature.NewHandler(audit.New(deps.DB), userstore.New(deps.DB), errLog, logger)
	r.Mount("/audit", auditlogfeature.Routes(auditHandler, sessionMgr))

	// Error pages
	errorsHandler := errorsfeature.NewHandler()
	r.Get("/forbidden", errorsHandler.Forbidden)
	r.Get("/unauthorized", errorsHandler.Unauthorized)

	return r, nil
}
