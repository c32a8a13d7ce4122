// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"

	"github.com/dalemusser/groupflight/internal/app/system/dbutil"
	"github.com/dalemusser/groupflight/internal/app/system/schema"
	"github.com/dalemusser/groupflight/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// ConnectDB opens the GORM pool and proves it with a ping.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	dsn := appCfg.DBDSN
	if appCfg.DBDriver == dbutil.DriverSQLite {
		dsn = dbutil.SQLiteDSN(dsn)
	}

	db, err := dbutil.Open(appCfg.DBDriver, dsn, dbutil.PoolConfig{
		MaxOpenConns:    appCfg.DBMaxOpenConns,
		MaxIdleConns:    appCfg.DBMaxIdleConns,
		ConnMaxLifetime: appCfg.DBConnMaxLifetime,
	}, logger)
	if err != nil {
		return DBDeps{}, fmt.Errorf("open %s database: %w", appCfg.DBDriver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return DBDeps{}, err
	}
	pingCtx, cancel := context.WithTimeout(ctx, timeouts.Ping())
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		_ = dbutil.Close(db)
		return DBDeps{}, fmt.Errorf("ping %s database: %w", appCfg.DBDriver, err)
	}

	logger.Info("database connected", zap.String("driver", appCfg.DBDriver))
	return DBDeps{DB: db}, nil
}

// EnsureSchema migrates every table and the junction indexes.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	ctx, cancel := context.WithTimeout(ctx, timeouts.Long())
	defer cancel()

	if err := schema.EnsureAll(ctx, deps.DB); err != nil {
		logger.Error("schema migration failed", zap.Error(err))
		return err
	}
	logger.Info("schema up to date")
	return nil
}
