package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/umakantv/go-utils/errs"
	"go.uber.org/zap"

	cachepackage "wardrobe-service/cache"
	"wardrobe-service/models"
	"wardrobe-service/store"
)

// DesignHandler handles the designs published by designers
type DesignHandler struct {
	store    *store.Store
	cache    *cachepackage.Responses
	cacheTTL time.Duration
}

// NewDesignHandler creates a new design handler
func NewDesignHandler(s *store.Store, cache *cachepackage.Responses, cacheTTL time.Duration) *DesignHandler {
	return &DesignHandler{store: s, cache: cache, cacheTTL: cacheTTL}
}

// GetDesigns handles GET /designs - the gallery of every design
func (h *DesignHandler) GetDesigns(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	logRequest(ctx, "info", "Listing designs")

	if cached, ok := h.cache.Get(cachepackage.DesignsListKey); ok {
		logRequest(ctx, "debug", "Serving from cache")
		writeRaw(w, cached)
		return
	}

	designs, err := h.store.ListAllDesigns(ctx)
	if err != nil {
		respondError(ctx, w, err, "Failed to list designs")
		return
	}

	response, _ := json.Marshal(designs)
	h.cache.Set(cachepackage.DesignsListKey, response, h.cacheTTL)

	logRequest(ctx, "info", "Designs retrieved successfully", zap.Int("count", len(designs)))
	writeRaw(w, response)
}

// GetDesignerDesigns handles GET /designers/{id}/designs
func (h *DesignHandler) GetDesignerDesigns(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	designerID, err := pathID(r, "id")
	if err != nil {
		respondError(ctx, w, err, "Invalid designer ID")
		return
	}

	designs, err := h.store.GetDesignsByDesigner(ctx, designerID)
	if err != nil {
		respondError(ctx, w, err, "Failed to list designs", zap.Int64("designer_id", designerID))
		return
	}

	writeJSON(w, http.StatusOK, designs)
}

// CreateDesign handles POST /designers/{id}/designs
func (h *DesignHandler) CreateDesign(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	designerID, err := pathID(r, "id")
	if err != nil {
		respondError(ctx, w, err, "Invalid designer ID")
		return
	}

	var req models.CreateDesignRequest
	if err := decodeRequest(r, &req); err != nil {
		respondError(ctx, w, err, "Invalid request body")
		return
	}

	design := models.Design{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		ImageFile:   req.ImageFile,
		DesignerID:  designerID,
	}

	logRequest(ctx, "info", "Creating design", zap.Int64("designer_id", designerID), zap.String("title", req.Title))

	design.ID, err = h.store.AddDesign(ctx, design)
	if err != nil {
		respondError(ctx, w, err, "Failed to create design", zap.Int64("designer_id", designerID))
		return
	}

	h.cache.Delete(cachepackage.DesignsListKey)

	logRequest(ctx, "info", "Design created successfully", zap.Int64("design_id", design.ID))
	writeJSON(w, http.StatusCreated, design)
}

// DeleteDesign handles DELETE /designs/{id}
func (h *DesignHandler) DeleteDesign(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(ctx, w, err, "Invalid design ID")
		return
	}

	n, err := h.store.DeleteDesign(ctx, id)
	if err != nil {
		respondError(ctx, w, err, "Failed to delete design", zap.Int64("design_id", id))
		return
	}
	if n == 0 {
		writeJSON(w, http.StatusNotFound, errs.NewNotFoundError("Design not found"))
		return
	}

	h.cache.Delete(cachepackage.DesignsListKey)

	logRequest(ctx, "info", "Design deleted successfully", zap.Int64("design_id", id))
	w.WriteHeader(http.StatusNoContent)
}
