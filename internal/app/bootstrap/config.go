// internal/app/bootstrap/config.go
package bootstrap

import (
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/dalemusser/groupflight/internal/app/system/authutil"
	"github.com/dalemusser/groupflight/internal/app/system/dbutil"
	"github.com/dalemusser/groupflight/internal/app/system/inputval"
	"github.com/dalemusser/waffle/config"
	"github.com/gorilla/securecookie"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// devSessionKey is the shipped default. It is fine on a laptop and refused
// in production.
const devSessionKey = "dev-only-change-me-please-0123456789ABCDEF"

// appConfigKeys defines the configuration keys for the flight planner.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: db_dsn, session_name, etc.
//   - Environment variables: GROUPFLIGHT_DB_DSN, GROUPFLIGHT_SESSION_NAME, etc.
//   - Command-line flags: --db_dsn, --session_name, etc.
var appConfigKeys = []config.AppKey{
	{Name: "db_driver", Default: "sqlite", Desc: "Database driver: 'postgres' or 'sqlite'"},
	{Name: "db_dsn", Default: "groupflight.db", Desc: "Database DSN (postgres URL/keyword string, or SQLite file path)"},
	{Name: "db_max_open_conns", Default: 25, Desc: "Max open database connections (0 = unlimited)"},
	{Name: "db_max_idle_conns", Default: 5, Desc: "Max idle database connections"},
	{Name: "db_conn_max_lifetime", Default: "30m", Desc: "Max lifetime of a pooled connection (e.g., 30m, 1h)"},

	{Name: "session_key", Default: devSessionKey, Desc: "Session signing key (must be strong in production; blank generates a random one outside prod)"},
	{Name: "session_name", Default: "groupflight-session", Desc: "Session cookie name"},
	{Name: "session_domain", Default: "", Desc: "Session cookie domain (blank means current host)"},
	{Name: "session_max_age", Default: "24h", Desc: "Session cookie lifetime"},

	{Name: "api_base_url", Default: "http://localhost:8080/api/", Desc: "Absolute URL the MVC pages use to reach the data API"},

	// Admin bootstrap
	{Name: "admin_email", Default: "", Desc: "Email of the admin user (created or promoted on startup)"},
	{Name: "admin_password", Default: "", Desc: "Password for a newly created admin user"},
	{Name: "admin_name", Default: "Administrator", Desc: "Display name for a newly created admin user"},

	// Audit logging settings
	{Name: "audit_log_auth", Default: "all", Desc: "Auth event logging: 'all' (db+log), 'db', 'log', or 'off'"},
	{Name: "audit_log_admin", Default: "all", Desc: "Admin event logging: 'all' (db+log), 'db', 'log', or 'off'"},

	{Name: "login_rate_limit", Default: 10, Desc: "Login attempts per client IP per minute"},
	{Name: "metrics_enabled", Default: true, Desc: "Serve Prometheus metrics at /metrics"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles .env files, config files,
// environment variables (WAFFLE_* for core, GROUPFLIGHT_* for the app) and
// flags, merged with precedence flags > env > files > defaults.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "GROUPFLIGHT", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		DBDriver:          strings.ToLower(strings.TrimSpace(appValues.String("db_driver"))),
		DBDSN:             appValues.String("db_dsn"),
		DBMaxOpenConns:    appValues.Int("db_max_open_conns"),
		DBMaxIdleConns:    appValues.Int("db_max_idle_conns"),
		DBConnMaxLifetime: appValues.Duration("db_conn_max_lifetime", 30*time.Minute),

		SessionKey:    appValues.String("session_key"),
		SessionName:   appValues.String("session_name"),
		SessionDomain: appValues.String("session_domain"),
		SessionMaxAge: appValues.Duration("session_max_age", 24*time.Hour),

		APIBaseURL: appValues.String("api_base_url"),

		AdminEmail:    strings.TrimSpace(appValues.String("admin_email")),
		AdminPassword: appValues.String("admin_password"),
		AdminName:     appValues.String("admin_name"),

		AuditLogAuth:  appValues.String("audit_log_auth"),
		AuditLogAdmin: appValues.String("audit_log_admin"),

		LoginRateLimit: appValues.Int("login_rate_limit"),
		MetricsEnabled: appValues.Bool("metrics_enabled"),
	}

	// A blank key outside production gets a random one. Sessions then do not
	// survive a restart, which is acceptable in dev.
	if strings.TrimSpace(appCfg.SessionKey) == "" && coreCfg.Env != "prod" {
		appCfg.SessionKey = hex.EncodeToString(securecookie.GenerateRandomKey(32))
		logger.Warn("session_key not set; generated a random key for this run")
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// Everything that can be checked without touching the network is checked
// here, before ConnectDB.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := validateDB(appCfg); err != nil {
		logger.Error("invalid database configuration", zap.Error(err))
		return err
	}

	if !inputval.IsValidHTTPURL(appCfg.APIBaseURL) {
		return fmt.Errorf("api_base_url must be an absolute http or https URL, got %q", appCfg.APIBaseURL)
	}

	if strings.TrimSpace(appCfg.SessionKey) == "" {
		return fmt.Errorf("session_key is required")
	}
	if coreCfg.Env == "prod" && appCfg.SessionKey == devSessionKey {
		return fmt.Errorf("session_key must be changed from the development default in production")
	}

	for name, v := range map[string]string{
		"audit_log_auth":  appCfg.AuditLogAuth,
		"audit_log_admin": appCfg.AuditLogAdmin,
	} {
		switch v {
		case "all", "db", "log", "off":
		default:
			return fmt.Errorf("%s must be one of all, db, log, off (got %q)", name, v)
		}
	}

	if appCfg.LoginRateLimit <= 0 {
		return fmt.Errorf("login_rate_limit must be positive")
	}

	if appCfg.AdminEmail != "" {
		if res := inputval.Validate(adminInput{Email: appCfg.AdminEmail}); res.HasErrors() {
			return fmt.Errorf("admin_email: %s", res.First())
		}
		if err := authutil.ValidatePassword(appCfg.AdminPassword); err != nil {
			return fmt.Errorf("admin_password: %w", err)
		}
	}

	return nil
}

type adminInput struct {
	Email string `validate:"required,email" label:"Admin email"`
}

func validateDB(appCfg AppConfig) error {
	if strings.TrimSpace(appCfg.DBDSN) == "" {
		return fmt.Errorf("db_dsn is required")
	}
	switch appCfg.DBDriver {
	case dbutil.DriverPostgres:
		if _, err := pgx.ParseConfig(appCfg.DBDSN); err != nil {
			return fmt.Errorf("invalid postgres DSN: %w", err)
		}
	case dbutil.DriverSQLite:
	default:
		return fmt.Errorf("db_driver must be %q or %q, got %q", dbutil.DriverPostgres, dbutil.DriverSQLite, appCfg.DBDriver)
	}
	return nil
}
