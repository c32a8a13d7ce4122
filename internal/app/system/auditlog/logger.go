// internal/app/system/auditlog/logger.go
package auditlog

import (
	"context"
	"net/http"
	"strconv"

	"github.com/dalemusser/groupflight/internal/app/store/audit"
	"github.com/dalemusser/groupflight/internal/app/system/auth"
	"github.com/dalemusser/groupflight/internal/app/system/ratelimit"
	"go.uber.org/zap"
)

// Config holds audit logging configuration.
//
// Each setting is one of "all" (database + zap), "db", "log" (zap only) or
// "off".
type Config struct {
	// Auth covers sign-in attempts and sign-outs.
	Auth string
	// Admin covers API writes and association changes.
	Admin string
}

// Logger provides convenience methods for logging audit events.
// A nil *Logger is valid and does nothing.
type Logger struct {
	store  *audit.Store
	zapLog *zap.Logger
	config Config
}

// New creates a new audit Logger. store may be nil when neither setting
// writes to the database.
func New(store *audit.Store, zapLog *zap.Logger, config Config) *Logger {
	return &Logger{store: store, zapLog: zapLog, config: config}
}

func (l *Logger) logToZap(e audit.Event) {
	fields := []zap.Field{
		zap.Bool("audit", true),
		zap.String("category", e.Category),
		zap.String("event_type", e.EventType),
		zap.Bool("success", e.Success),
		zap.String("ip", e.IP),
	}
	if e.ActorID != nil {
		fields = append(fields, zap.Uint("actor_id", *e.ActorID))
	}
	if e.Entity != "" {
		fields = append(fields, zap.String("entity", e.Entity))
	}
	if e.EntityID != nil {
		fields = append(fields, zap.Uint("entity_id", *e.EntityID))
	}
	if e.FailureReason != "" {
		fields = append(fields, zap.String("failure_reason", e.FailureReason))
	}
	for k, v := range e.Details {
		fields = append(fields, zap.String("detail_"+k, v))
	}

	if e.Success {
		l.zapLog.Info("audit event", fields...)
	} else {
		l.zapLog.Warn("audit event", fields...)
	}
}

// Log records e according to the setting for its category.
func (l *Logger) Log(ctx context.Context, e audit.Event) {
	if l == nil {
		return
	}

	setting := "all"
	switch e.Category {
	case audit.CategoryAuth:
		setting = l.config.Auth
	case audit.CategoryAdmin:
		setting = l.config.Admin
	}

	if setting == "off" || setting == "" {
		return
	}
	if (setting == "all" || setting == "log") && l.zapLog != nil {
		l.logToZap(e)
	}
	if (setting == "all" || setting == "db") && l.store != nil {
		if err := l.store.Log(ctx, e); err != nil && l.zapLog != nil {
			l.zapLog.Error("failed to store audit event", zap.Error(err), zap.String("event_type", e.EventType))
		}
	}
}

// fromRequest fills the request-derived fields.
func fromRequest(r *http.Request, e audit.Event) audit.Event {
	e.IP = ratelimit.ClientIP(r)
	e.UserAgent = r.UserAgent()
	if e.ActorID == nil {
		if u, ok := auth.CurrentUser(r); ok && u.ID != 0 {
			id := u.ID
			e.ActorID = &id
		}
	}
	return e
}

/*─────────────────────────────────────────────────────────────────────────────*
| Authentication events                                                         |
*─────────────────────────────────────────────────────────────────────────────*/

// LoginSuccess logs a successful sign-in.
func (l *Logger) LoginSuccess(ctx context.Context, r *http.Request, userID uint, email string) {
	l.Log(ctx, fromRequest(r, audit.Event{
		Category:  audit.CategoryAuth,
		EventType: audit.EventLoginSuccess,
		ActorID:   &userID,
		Success:   true,
		Details:   map[string]string{"email": email},
	}))
}

// LoginFailed logs a rejected sign-in. eventType is one of the
// audit.EventLoginFailed* constants.
func (l *Logger) LoginFailed(ctx context.Context, r *http.Request, eventType, email, reason string) {
	l.Log(ctx, fromRequest(r, audit.Event{
		Category:      audit.CategoryAuth,
		EventType:     eventType,
		Success:       false,
		FailureReason: reason,
		Details:       map[string]string{"email": email},
	}))
}

// Logout logs a sign-out.
func (l *Logger) Logout(ctx context.Context, r *http.Request, userID uint) {
	e := audit.Event{Category: audit.CategoryAuth, EventType: audit.EventLogout, Success: true}
	if userID != 0 {
		e.ActorID = &userID
	}
	l.Log(ctx, fromRequest(r, e))
}

/*─────────────────────────────────────────────────────────────────────────────*
| Admin events                                                                  |
*─────────────────────────────────────────────────────────────────────────────*/

func (l *Logger) entity(ctx context.Context, r *http.Request, eventType, entity string, id uint, name string) {
	e := audit.Event{
		Category:  audit.CategoryAdmin,
		EventType: eventType,
		Entity:    entity,
		EntityID:  &id,
		Success:   true,
	}
	if name != "" {
		e.Details = map[string]string{"name": name}
	}
	l.Log(ctx, fromRequest(r, e))
}

// Created logs a new row of kind entity ("airline", "event", ...).
func (l *Logger) Created(ctx context.Context, r *http.Request, entity string, id uint, name string) {
	l.entity(ctx, r, audit.EventEntityCreated, entity, id, name)
}

// Updated logs a changed row.
func (l *Logger) Updated(ctx context.Context, r *http.Request, entity string, id uint, name string) {
	l.entity(ctx, r, audit.EventEntityUpdated, entity, id, name)
}

// Deleted logs a removed row.
func (l *Logger) Deleted(ctx context.Context, r *http.Request, entity string, id uint) {
	l.entity(ctx, r, audit.EventEntityDeleted, entity, id, "")
}

// GroupLinked logs a group being added to (linked) or removed from an event.
func (l *Logger) GroupLinked(ctx context.Context, r *http.Request, eventID, groupID uint, linked bool) {
	et := audit.EventGroupAddedToEvent
	if !linked {
		et = audit.EventGroupRemovedFromEvent
	}
	l.Log(ctx, fromRequest(r, audit.Event{
		Category:  audit.CategoryAdmin,
		EventType: et,
		Entity:    "event",
		EntityID:  &eventID,
		Success:   true,
		Details:   map[string]string{"group_id": uintString(groupID)},
	}))
}

// AdminBootstrapped logs the startup admin account being created or promoted.
func (l *Logger) AdminBootstrapped(ctx context.Context, userID uint, email string, created bool) {
	action := "promoted"
	if created {
		action = "created"
	}
	l.Log(ctx, audit.Event{
		Category:  audit.CategoryAdmin,
		EventType: audit.EventAdminBootstrapped,
		Entity:    "user",
		EntityID:  &userID,
		Success:   true,
		Details:   map[string]string{"email": email, "action": action},
	})
}

func uintString(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}
