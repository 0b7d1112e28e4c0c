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

// OutfitHandler handles outfits and their clothing items
type OutfitHandler struct {
	store    *store.Store
	cache    *cachepackage.Responses
	cacheTTL time.Duration
}

// NewOutfitHandler creates a new outfit handler
func NewOutfitHandler(s *store.Store, cache *cachepackage.Responses, cacheTTL time.Duration) *OutfitHandler {
	return &OutfitHandler{store: s, cache: cache, cacheTTL: cacheTTL}
}

// GetOutfits handles GET /outfits
func (h *OutfitHandler) GetOutfits(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	logRequest(ctx, "info", "Listing outfits")

	if cached, ok := h.cache.Get(cachepackage.OutfitsListKey); ok {
		logRequest(ctx, "debug", "Serving from cache")
		writeRaw(w, cached)
		return
	}

	outfits, err := h.store.ListAllOutfits(ctx)
	if err != nil {
		respondError(ctx, w, err, "Failed to list outfits")
		return
	}

	response, _ := json.Marshal(outfits)
	h.cache.Set(cachepackage.OutfitsListKey, response, h.cacheTTL)

	logRequest(ctx, "info", "Outfits retrieved successfully", zap.Int("count", len(outfits)))
	writeRaw(w, response)
}

// GetOutfit handles GET /outfits/{id}
func (h *OutfitHandler) GetOutfit(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(ctx, w, err, "Invalid outfit ID")
		return
	}

	outfit, err := h.store.GetOutfit(ctx, id)
	if err != nil {
		respondError(ctx, w, err, "Failed to get outfit", zap.Int64("outfit_id", id))
		return
	}
	if outfit == nil {
		logRequest(ctx, "info", "Outfit not found", zap.Int64("outfit_id", id))
		writeJSON(w, http.StatusNotFound, errs.NewNotFoundError("Outfit not found"))
		return
	}

	writeJSON(w, http.StatusOK, outfit)
}

// CreateOutfit handles POST /outfits. Unknown clothing ids reject the whole outfit.
func (h *OutfitHandler) CreateOutfit(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	var req models.CreateOutfitRequest
	if err := decodeRequest(r, &req); err != nil {
		respondError(ctx, w, err, "Invalid request body")
		return
	}

	logRequest(ctx, "info", "Creating outfit", zap.String("season", req.Season), zap.Int64s("clothing_ids", req.ClothingItems))

	id, err := h.store.CreateOutfit(ctx, req.Season, req.Description, req.ClothingItems)
	if err != nil {
		respondError(ctx, w, err, "Failed to create outfit")
		return
	}

	h.cache.Delete(cachepackage.OutfitsListKey)

	outfit, err := h.store.GetOutfit(ctx, id)
	if err != nil || outfit == nil {
		// Created but not readable back; answer with the id only
		writeJSON(w, http.StatusCreated, models.Outfit{ID: id, Season: req.Season, Description: req.Description})
		return
	}

	logRequest(ctx, "info", "Outfit created successfully", zap.Int64("outfit_id", id))
	writeJSON(w, http.StatusCreated, outfit)
}

// DeleteOutfit handles DELETE /outfits/{id}
func (h *OutfitHandler) DeleteOutfit(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(ctx, w, err, "Invalid outfit ID")
		return
	}

	n, err := h.store.DeleteOutfit(ctx, id)
	if err != nil {
		respondError(ctx, w, err, "Failed to delete outfit", zap.Int64("outfit_id", id))
		return
	}
	if n == 0 {
		writeJSON(w, http.StatusNotFound, errs.NewNotFoundError("Outfit not found"))
		return
	}

	h.cache.Delete(cachepackage.OutfitsListKey)

	logRequest(ctx, "info", "Outfit deleted successfully", zap.Int64("outfit_id", id))
	w.WriteHeader(http.StatusNoContent)
}
