package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/umakantv/go-utils/errs"
	"go.uber.org/zap"

	cachepackage "wardrobe-service/cache"
	"wardrobe-service/models"
	"wardrobe-service/store"
)

const (
	sessionKeyPrefix  = "session:"
	sessionCookieName = "session_id"
)

// AuthHandler signs users and designers in. Sessions live in the cache under
// a random id handed out as an httpOnly cookie.
type AuthHandler struct {
	store      *store.Store
	sessions   *cachepackage.Responses
	sessionTTL time.Duration
}

// NewAuthHandler creates a new session handler
func NewAuthHandler(s *store.Store, sessions *cachepackage.Responses, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{store: s, sessions: sessions, sessionTTL: sessionTTL}
}

// Login handles POST /login for users
func (h *AuthHandler) Login(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	logRequest(ctx, "info", "Login request")

	var req models.LoginRequest
	if err := decodeRequest(r, &req); err != nil {
		respondError(ctx, w, err, "Invalid login body")
		return
	}

	if !h.store.ValidateUser(ctx, req.Email, req.Password) {
		logRequest(ctx, "info", "Invalid credentials", zap.String("email", req.Email))
		writeJSON(w, http.StatusUnauthorized, errs.NewAuthenticationError("Invalid credentials"))
		return
	}

	user, err := h.store.GetUserByEmail(ctx, req.Email)
	if err != nil || user == nil {
		respondError(ctx, w, store.ErrFailed, "Failed to load user", zap.String("email", req.Email))
		return
	}

	h.startSession(ctx, w, models.MeResponse{ID: user.ID, Kind: "user", Name: user.Username, Email: user.Email})
}

// DesignerLogin handles POST /designers/login
func (h *AuthHandler) DesignerLogin(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	logRequest(ctx, "info", "Designer login request")

	var req models.LoginRequest
	if err := decodeRequest(r, &req); err != nil {
		respondError(ctx, w, err, "Invalid login body")
		return
	}

	if !h.store.ValidateDesigner(ctx, req.Email, req.Password) {
		logRequest(ctx, "info", "Invalid credentials", zap.String("email", req.Email))
		writeJSON(w, http.StatusUnauthorized, errs.NewAuthenticationError("Invalid credentials"))
		return
	}

	designer, err := h.store.GetDesignerByEmail(ctx, req.Email)
	if err != nil || designer == nil {
		respondError(ctx, w, store.ErrFailed, "Failed to load designer", zap.String("email", req.Email))
		return
	}

	h.startSession(ctx, w, models.MeResponse{ID: designer.ID, Kind: "designer", Name: designer.Name, Email: designer.Email})
}

// Me handles GET /me - the owner of the session cookie
func (h *AuthHandler) Me(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		logRequest(ctx, "info", "No session cookie")
		writeJSON(w, http.StatusUnauthorized, errs.NewAuthenticationError("Not authenticated"))
		return
	}

	cached, ok := h.sessions.Get(sessionKeyPrefix + cookie.Value)
	if !ok {
		logRequest(ctx, "info", "Session not found or expired")
		writeJSON(w, http.StatusUnauthorized, errs.NewAuthenticationError("Session invalid"))
		return
	}

	var me models.MeResponse
	if err := json.Unmarshal(cached, &me); err != nil {
		logRequest(ctx, "error", "Invalid session data", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errs.NewInternalServerError("Session error"))
		return
	}

	writeJSON(w, http.StatusOK, me)
}

func (h *AuthHandler) startSession(ctx context.Context, w http.ResponseWriter, me models.MeResponse) {
	sessionID := uuid.New().String()
	data, _ := json.Marshal(me)
	h.sessions.Set(sessionKeyPrefix+sessionID, data, h.sessionTTL)

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		MaxAge:   int(h.sessionTTL.Seconds()),
	})

	logRequest(ctx, "info", "Login successful", zap.String("kind", me.Kind), zap.Int64("id", me.ID))

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Logged in",
		"user":    me,
	})
}
