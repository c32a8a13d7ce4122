// internal/app/features/auditlog/handler.go
package auditlog

import (
	uierrors "github.com/dalemusser/groupflight/internal/app/features/errors"
	"github.com/dalemusser/groupflight/internal/app/store/audit"
	userstore "github.com/dalemusser/groupflight/internal/app/store/users"
	"go.uber.org/zap"
)

type Handler struct {
	Audit  *audit.Store
	Users  *userstore.Store
	Log    *zap.Logger
	ErrLog *uierrors.ErrorLogger
}

// NewHandler constructs an Audit Log feature handler over the audit and
// user stores.
func NewHandler(auditStore *audit.Store, users *userstore.Store, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Audit:  auditStore,
		Users:  users,
		Log:    logger,
		ErrLog: errLog,
	}
}
