package handlers

import (
	"context"
	"net/http"

	"github.com/umakantv/go-utils/errs"
	"go.uber.org/zap"

	cachepackage "wardrobe-service/cache"
	"wardrobe-service/models"
	"wardrobe-service/store"
)

// DesignerHandler handles designer accounts
type DesignerHandler struct {
	store *store.Store
	cache *cachepackage.Responses
}

// NewDesignerHandler creates a new designer handler
func NewDesignerHandler(s *store.Store, cache *cachepackage.Responses) *DesignerHandler {
	return &DesignerHandler{store: s, cache: cache}
}

// GetDesigners handles GET /designers
func (h *DesignerHandler) GetDesigners(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	logRequest(ctx, "info", "Listing designers")

	designers, err := h.store.ListDesigners(ctx)
	if err != nil {
		respondError(ctx, w, err, "Failed to list designers")
		return
	}

	writeJSON(w, http.StatusOK, designers)
}

// CreateDesigner handles POST /designers
func (h *DesignerHandler) CreateDesigner(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	var req models.CreateDesignerRequest
	if err := decodeRequest(r, &req); err != nil {
		respondError(ctx, w, err, "Invalid request body")
		return
	}

	logRequest(ctx, "info", "Creating designer", zap.String("email", req.Email), zap.String("unique_id", req.UniqueID))

	id, err := h.store.InsertDesigner(ctx, req.Name, req.Email, req.Password, req.UniqueID)
	if err != nil {
		respondError(ctx, w, err, "Failed to create designer", zap.String("email", req.Email))
		return
	}

	logRequest(ctx, "info", "Designer created successfully", zap.Int64("designer_id", id))
	writeJSON(w, http.StatusCreated, models.Designer{ID: id, Name: req.Name, Email: req.Email, UniqueID: req.UniqueID})
}

// GetDesigner handles GET /designers/{id}
func (h *DesignerHandler) GetDesigner(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(ctx, w, err, "Invalid designer ID")
		return
	}

	designer, err := h.store.GetDesignerByID(ctx, id)
	if err != nil {
		respondError(ctx, w, err, "Failed to get designer", zap.Int64("designer_id", id))
		return
	}
	if designer == nil {
		logRequest(ctx, "info", "Designer not found", zap.Int64("designer_id", id))
		writeJSON(w, http.StatusNotFound, errs.NewNotFoundError("Designer not found"))
		return
	}

	writeJSON(w, http.StatusOK, designer)
}

// GetDesignerByEmail handles GET /designers/by-email?email=
func (h *DesignerHandler) GetDesignerByEmail(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	email, err := queryEmail(r)
	if err != nil {
		respondError(ctx, w, err, "Invalid email")
		return
	}

	designer, err := h.store.GetDesignerByEmail(ctx, email)
	if err != nil {
		respondError(ctx, w, err, "Failed to get designer", zap.String("email", email))
		return
	}
	if designer == nil {
		writeJSON(w, http.StatusNotFound, errs.NewNotFoundError("Designer not found"))
		return
	}

	writeJSON(w, http.StatusOK, designer)
}

// UpdateDesigner handles PUT /designers/{id}. The password is replaced only
// when the request carries one.
func (h *DesignerHandler) UpdateDesigner(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(ctx, w, err, "Invalid designer ID")
		return
	}

	var req models.UpdateDesignerRequest
	if err := decodeRequest(r, &req); err != nil {
		respondError(ctx, w, err, "Invalid request body")
		return
	}

	logRequest(ctx, "info", "Updating designer", zap.Int64("designer_id", id), zap.Bool("password", req.Password != ""))

	var n int64
	if req.Password != "" {
		n, err = h.store.UpdateDesignerWithPassword(ctx, id, req.Name, req.Email, req.UniqueID, req.Password)
	} else {
		n, err = h.store.UpdateDesigner(ctx, id, req.Name, req.Email, req.UniqueID)
	}
	if err != nil {
		respondError(ctx, w, err, "Failed to update designer", zap.Int64("designer_id", id))
		return
	}
	if n == 0 {
		writeJSON(w, http.StatusNotFound, errs.NewNotFoundError("Designer not found"))
		return
	}

	logRequest(ctx, "info", "Designer updated successfully", zap.Int64("designer_id", id))
	writeJSON(w, http.StatusOK, models.Designer{ID: id, Name: req.Name, Email: req.Email, UniqueID: req.UniqueID})
}

// DeleteDesigner handles DELETE /designers/{id}; the designer's designs go with it
func (h *DesignerHandler) DeleteDesigner(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(ctx, w, err, "Invalid designer ID")
		return
	}

	n, err := h.store.DeleteDesigner(ctx, id)
	if err != nil {
		respondError(ctx, w, err, "Failed to delete designer", zap.Int64("designer_id", id))
		return
	}
	if n == 0 {
		writeJSON(w, http.StatusNotFound, errs.NewNotFoundError("Designer not found"))
		return
	}

	h.cache.Delete(cachepackage.DesignsListKey)

	logRequest(ctx, "info", "Designer deleted successfully", zap.Int64("designer_id", id))
	w.WriteHeader(http.StatusNoContent)
}
