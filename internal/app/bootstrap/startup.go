// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"
	"fmt"

	"github.com/dalemusser/groupflight/internal/app/resources"
	"github.com/dalemusser/groupflight/internal/app/store/audit"
	userstore "github.com/dalemusser/groupflight/internal/app/store/users"
	"github.com/dalemusser/groupflight/internal/app/system/auditlog"
	"github.com/dalemusser/groupflight/internal/app/system/authutil"
	"github.com/dalemusser/groupflight/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if changed := timeouts.ConfigureFromEnv(logger); len(changed) > 0 {
		logger.Info("timeout overrides applied", zap.Any("timeouts", timeouts.Current()))
	}

	resources.LoadSharedTemplates()

	ctx, cancel := context.WithTimeout(ctx, timeouts.Medium())
	defer cancel()
	return ensureAdmin(ctx, deps, appCfg, newAuditLogger(appCfg, deps, logger), logger)
}

// newAuditLogger routes audit events per the audit_log_* settings.
func newAuditLogger(appCfg AppConfig, deps DBDeps, logger *zap.Logger) *auditlog.Logger {
	return auditlog.New(audit.New(deps.DB), logger, auditlog.Config{
		Auth:  appCfg.AuditLogAuth,
		Admin: appCfg.AuditLogAdmin,
	})
}

// ensureAdmin creates the configured admin account, or promotes an existing
// account with that email. An existing password is left alone.
func ensureAdmin(ctx context.Context, deps DBDeps, appCfg AppConfig, auditLog *auditlog.Logger, logger *zap.Logger) error {
	if appCfg.AdminEmail == "" {
		return nil
	}

	hash, err := authutil.HashPassword(appCfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	u, created, err := userstore.New(deps.DB).EnsureAdmin(ctx, appCfg.AdminEmail, appCfg.AdminName, hash)
	if err != nil {
		logger.Error("admin bootstrap failed", zap.Error(err), zap.String("email", appCfg.AdminEmail))
		return fmt.Errorf("ensure admin: %w", err)
	}

	auditLog.AdminBootstrapped(ctx, u.UserID, u.Email, created)
	logger.Info("admin account ready",
		zap.Uint("user_id", u.UserID),
		zap.String("email", u.Email),
		zap.Bool("created", created))
	return nil
}
