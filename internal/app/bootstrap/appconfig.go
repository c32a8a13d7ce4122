// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables (GROUPFLIGHT_*), config
// files, or command-line flags, loaded in LoadConfig. WAFFLE's CoreConfig
// keeps the framework-level settings (ports, TLS, log level, CORS); this
// struct holds what is specific to the flight planner.
type AppConfig struct {
	// Relational database
	DBDriver          string        // "postgres" or "sqlite"
	DBDSN             string        // pgx DSN/URL, or a SQLite file path
	DBMaxOpenConns    int           // 0 keeps the database/sql default
	DBMaxIdleConns    int           // 0 keeps the database/sql default
	DBConnMaxLifetime time.Duration // 0 means connections are reused forever

	// Session management
	SessionKey    string        // Secret key for signing session cookies (must be strong in production)
	SessionName   string        // Cookie name for sessions (default: groupflight-session)
	SessionDomain string        // Cookie domain (blank means current host)
	SessionMaxAge time.Duration // Cookie lifetime

	// Where the MVC pages reach the data API, e.g. "http://localhost:8080/api/".
	APIBaseURL string

	// Admin bootstrap: created or promoted at Startup when AdminEmail is set.
	AdminEmail    string
	AdminPassword string
	AdminName     string

	// Audit logging: "all", "db", "log" or "off" per category.
	AuditLogAuth  string
	AuditLogAdmin string

	// Login attempts allowed per client IP per minute.
	LoginRateLimit int

	// Serve Prometheus metrics at /metrics.
	MetricsEnabled bool
}
