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

// ClothingHandler handles the shared clothing item pool
type ClothingHandler struct {
	store    *store.Store
	cache    *cachepackage.Responses
	cacheTTL time.Duration
}

// NewClothingHandler creates a new clothing handler
func NewClothingHandler(s *store.Store, cache *cachepackage.Responses, cacheTTL time.Duration) *ClothingHandler {
	return &ClothingHandler{store: s, cache: cache, cacheTTL: cacheTTL}
}

// GetClothing handles GET /clothing
func (h *ClothingHandler) GetClothing(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	logRequest(ctx, "info", "Listing clothing items")

	if cached, ok := h.cache.Get(cachepackage.ClothingListKey); ok {
		logRequest(ctx, "debug", "Serving from cache")
		writeRaw(w, cached)
		return
	}

	items, err := h.store.ListAllClothingItems(ctx)
	if err != nil {
		respondError(ctx, w, err, "Failed to list clothing items")
		return
	}

	response, _ := json.Marshal(items)
	h.cache.Set(cachepackage.ClothingListKey, response, h.cacheTTL)

	logRequest(ctx, "info", "Clothing items retrieved successfully", zap.Int("count", len(items)))
	writeRaw(w, response)
}

// CreateClothingItem handles POST /clothing
func (h *ClothingHandler) CreateClothingItem(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	var req models.CreateClothingItemRequest
	if err := decodeRequest(r, &req); err != nil {
		respondError(ctx, w, err, "Invalid request body")
		return
	}

	id, err := h.store.InsertClothingItem(ctx, req.Color, req.Category, req.ImagePath)
	if err != nil {
		respondError(ctx, w, err, "Failed to create clothing item")
		return
	}

	h.cache.Delete(cachepackage.ClothingListKey)

	item := models.ClothingItem{ID: id, Color: req.Color, Category: req.Category, ImagePath: req.ImagePath}
	logRequest(ctx, "info", "Clothing item created", zap.Int64("clothing_id", id), zap.Stringer("item", item))
	writeJSON(w, http.StatusCreated, item)
}

// DeleteClothingItem handles DELETE /clothing/{id}. The item also leaves
// every outfit and favourite list.
func (h *ClothingHandler) DeleteClothingItem(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(ctx, w, err, "Invalid clothing ID")
		return
	}

	n, err := h.store.DeleteClothingItem(ctx, id)
	if err != nil {
		respondError(ctx, w, err, "Failed to delete clothing item", zap.Int64("clothing_id", id))
		return
	}
	if n == 0 {
		writeJSON(w, http.StatusNotFound, errs.NewNotFoundError("Clothing item not found"))
		return
	}

	h.cache.Delete(cachepackage.ClothingListKey, cachepackage.OutfitsListKey)

	logRequest(ctx, "info", "Clothing item deleted", zap.Int64("clothing_id", id))
	w.WriteHeader(http.StatusNoContent)
}
