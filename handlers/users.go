package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/umakantv/go-utils/errs"
	"go.uber.org/zap"

	"wardrobe-service/models"
	"wardrobe-service/store"
)

// UserHandler handles user account operations
type UserHandler struct {
	store *store.Store
}

// NewUserHandler creates a new user handler
func NewUserHandler(s *store.Store) *UserHandler {
	return &UserHandler{store: s}
}

// GetUsers handles GET /users - list all users
func (h *UserHandler) GetUsers(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	logRequest(ctx, "info", "Listing users")

	users, err := h.store.ListUsers(ctx)
	if err != nil {
		respondError(ctx, w, err, "Failed to list users")
		return
	}

	logRequest(ctx, "info", "Users retrieved successfully", zap.Int("count", len(users)))
	writeJSON(w, http.StatusOK, users)
}

// CreateUser handles POST /users - register a user
func (h *UserHandler) CreateUser(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest
	if err := decodeRequest(r, &req); err != nil {
		respondError(ctx, w, err, "Invalid request body")
		return
	}

	logRequest(ctx, "info", "Creating user", zap.String("email", req.Email))

	id, err := h.store.InsertUser(ctx, req.Username, req.Email, req.Password)
	if err != nil {
		respondError(ctx, w, err, "Failed to create user", zap.String("email", req.Email))
		return
	}

	logRequest(ctx, "info", "User created successfully", zap.Int64("user_id", id))
	writeJSON(w, http.StatusCreated, models.User{ID: id, Username: req.Username, Email: req.Email})
}

// LookupUserID handles GET /users/lookup?email= - id by case and whitespace insensitive email
func (h *UserHandler) LookupUserID(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if strings.TrimSpace(email) == "" {
		respondError(ctx, w, fmt.Errorf("%w: email is required", errBadRequest), "Invalid lookup")
		return
	}

	id, ok := h.store.GetUserIDByEmail(ctx, email)
	if !ok {
		logRequest(ctx, "info", "User not found", zap.String("email", email))
		writeJSON(w, http.StatusNotFound, errs.NewNotFoundError("User not found"))
		return
	}

	writeJSON(w, http.StatusOK, map[string]int64{"id": id})
}

// GetUserByEmail handles GET /users/by-email?email=
func (h *UserHandler) GetUserByEmail(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	email, err := queryEmail(r)
	if err != nil {
		respondError(ctx, w, err, "Invalid email")
		return
	}

	user, err := h.store.GetUserByEmail(ctx, email)
	if err != nil {
		respondError(ctx, w, err, "Failed to get user", zap.String("email", email))
		return
	}
	if user == nil {
		logRequest(ctx, "info", "User not found", zap.String("email", email))
		writeJSON(w, http.StatusNotFound, errs.NewNotFoundError("User not found"))
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// UpdateUsername handles PUT /users/username
func (h *UserHandler) UpdateUsername(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	var req models.UpdateUsernameRequest
	if err := decodeRequest(r, &req); err != nil {
		respondError(ctx, w, err, "Invalid request body")
		return
	}

	n, err := h.store.UpdateUsername(ctx, req.Email, req.Username)
	if err != nil {
		respondError(ctx, w, err, "Failed to update username", zap.String("email", req.Email))
		return
	}
	if n == 0 {
		writeJSON(w, http.StatusNotFound, errs.NewNotFoundError("User not found"))
		return
	}

	logRequest(ctx, "info", "Username updated", zap.String("email", req.Email))
	writeJSON(w, http.StatusOK, map[string]string{"email": req.Email, "username": req.Username})
}

// ChangePassword handles PUT /users/password
func (h *UserHandler) ChangePassword(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	var req models.ChangePasswordRequest
	if err := decodeRequest(r, &req); err != nil {
		respondError(ctx, w, err, "Invalid request body")
		return
	}

	if !h.store.ChangePassword(ctx, req.Email, req.OldPassword, req.NewPassword) {
		logRequest(ctx, "info", "Password change rejected", zap.String("email", req.Email))
		writeJSON(w, http.StatusUnauthorized, errs.NewAuthenticationError("Current password is incorrect"))
		return
	}

	logRequest(ctx, "info", "Password changed", zap.String("email", req.Email))
	w.WriteHeader(http.StatusNoContent)
}

// DeleteUser handles DELETE /users/{id} - removes the user row only
func (h *UserHandler) DeleteUser(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(ctx, w, err, "Invalid user ID")
		return
	}

	n, err := h.store.DeleteUser(ctx, id)
	if err != nil {
		respondError(ctx, w, err, "Failed to delete user", zap.Int64("user_id", id))
		return
	}
	if n == 0 {
		writeJSON(w, http.StatusNotFound, errs.NewNotFoundError("User not found"))
		return
	}

	logRequest(ctx, "info", "User deleted successfully", zap.Int64("user_id", id))
	w.WriteHeader(http.StatusNoContent)
}

// DeleteAccount handles DELETE /users/{id}/account?email= - removes the user
// and every favourite recorded under the email in one transaction
func (h *UserHandler) DeleteAccount(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(ctx, w, err, "Invalid user ID")
		return
	}
	email, err := queryEmail(r)
	if err != nil {
		respondError(ctx, w, err, "Invalid email")
		return
	}

	if !h.store.DeleteUserCompletely(ctx, id, email) {
		logRequest(ctx, "info", "Account deletion failed", zap.Int64("user_id", id), zap.String("email", email))
		writeJSON(w, http.StatusNotFound, errs.NewNotFoundError("User not found"))
		return
	}

	logRequest(ctx, "info", "Account deleted", zap.Int64("user_id", id))
	w.WriteHeader(http.StatusNoContent)
}
