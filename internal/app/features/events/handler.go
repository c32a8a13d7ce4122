// internal/app/features/events/handler.go
package events

import (
	uierrors "github.com/dalemusser/groupflight/internal/app/features/errors"
	"github.com/dalemusser/groupflight/internal/app/system/apiclient"
	"go.uber.org/zap"
)

// Handler serves the Event pages through the data API.
type Handler struct {
	API    *apiclient.Client
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

func NewHandler(api *apiclient.Client, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		API:    api,
		ErrLog: errLog,
		Log:    logger,
	}
}
