// internal/app/features/login/handler.go
package login

import (
	"context"
	"net/http"
	"strings"

	uierrors "github.com/dalemusser/groupflight/internal/app/features/errors"
	"github.com/dalemusser/groupflight/internal/app/store/audit"
	userstore "github.com/dalemusser/groupflight/internal/app/store/users"
	"github.com/dalemusser/groupflight/internal/app/system/auditlog"
	"github.com/dalemusser/groupflight/internal/app/system/auth"
	"github.com/dalemusser/groupflight/internal/app/system/authutil"
	"github.com/dalemusser/groupflight/internal/app/system/dbutil"
	"github.com/dalemusser/groupflight/internal/app/system/ratelimit"
	"github.com/dalemusser/groupflight/internal/app/system/timeouts"
	"github.com/dalemusser/groupflight/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/dalemusser/waffle/pantry/urlutil"
	"go.uber.org/zap"
)

type Handler struct {
	Users      *userstore.Store
	SessionMgr *auth.SessionManager
	Limiter    *ratelimit.LoginLimiter
	AuditLog   *auditlog.Logger
	ErrLog     *uierrors.ErrorLogger
	Log        *zap.Logger
}

func NewHandler(
	users *userstore.Store,
	sessionMgr *auth.SessionManager,
	limiter *ratelimit.LoginLimiter,
	audit *auditlog.Logger,
	errLog *uierrors.ErrorLogger,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		Users:      users,
		SessionMgr: sessionMgr,
		Limiter:    limiter,
		AuditLog:   audit,
		ErrLog:     errLog,
		Log:        logger,
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| Template-data                                                               |
*─────────────────────────────────────────────────────────────────────────────*/

type loginFormData struct {
	viewdata.BaseVM
	Error     string
	Email     string // what the user typed
	ReturnURL string
}

// Shown for an unknown email and for a wrong password alike.
const badCredentials = "Invalid email or password."

/*─────────────────────────────────────────────────────────────────────────────*
| GET /login                                                                  |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeLogin(w http.ResponseWriter, r *http.Request) {
	templates.Render(w, r, "login", loginFormData{
		BaseVM:    viewdata.NewBaseVM(r, "Sign in", "/"),
		ReturnURL: query.Get(r, "return"),
	})
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /login                                                                 |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleLoginPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/login")
		return
	}

	email := strings.TrimSpace(r.PostForm.Get("email"))
	password := r.PostForm.Get("password")
	ret := r.PostForm.Get("return")

	if email == "" || password == "" {
		h.renderFormWithError(w, r, http.StatusOK, "Please enter your email and password.", email, ret)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if ok, msg := h.Limiter.Check(r, email); !ok {
		h.AuditLog.LoginFailed(ctx, r, audit.EventLoginFailedRateLimit, email, "rate limited")
		h.renderFormWithError(w, r, http.StatusTooManyRequests, msg, email, ret)
		return
	}

	u, err := h.Users.GetByEmail(ctx, email)
	switch {
	case dbutil.IsNotFound(err):
		h.AuditLog.LoginFailed(ctx, r, audit.EventLoginFailedUserNotFound, email, "no such user")
		h.renderFormWithError(w, r, http.StatusOK, badCredentials, email, ret)
		return
	case err != nil:
		h.ErrLog.LogServerError(w, r, "DB find user", err, "A server error occurred.", "/login")
		return
	}

	if !authutil.CheckPassword(password, u.PasswordHash) {
		h.AuditLog.LoginFailed(ctx, r, audit.EventLoginFailedWrongPassword, email, "wrong password")
		h.renderFormWithError(w, r, http.StatusOK, badCredentials, email, ret)
		return
	}

	err = h.SessionMgr.SignIn(w, r, auth.SessionUser{
		ID:    u.UserID,
		Name:  u.FullName,
		Email: u.Email,
		Role:  u.Role,
	})
	if err != nil {
		h.ErrLog.LogServerError(w, r, "save session failed", err, "Could not sign you in.", "/login")
		return
	}

	h.Limiter.ResetEmail(email)
	h.AuditLog.LoginSuccess(ctx, r, u.UserID, u.Email)
	h.Log.Info("user signed in", zap.Uint("user_id", u.UserID))

	http.Redirect(w, r, urlutil.SafeReturn(ret, "", "/"), http.StatusSeeOther)
}

func (h *Handler) renderFormWithError(w http.ResponseWriter, r *http.Request, status int, msg, email, ret string) {
	if status != http.StatusOK {
		w.WriteHeader(status)
	}
	templates.Render(w, r, "login", loginFormData{
		BaseVM:    viewdata.NewBaseVM(r, "Sign in", "/"),
		Error:     msg,
		Email:     email,
		ReturnURL: ret,
	})
}
