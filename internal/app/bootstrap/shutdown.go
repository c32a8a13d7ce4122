// internal/app/bootstrap/shutdown.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/groupflight/internal/app/system/dbutil"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Shutdown cleanly tears down DB connections and other resources.
func Shutdown(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if deps.DB == nil {
		return nil
	}
	logger.Info("closing database pool")
	if err := dbutil.Close(deps.DB); err != nil {
		logger.Error("database close failed", zap.Error(err))
		return err
	}
	return nil
}
