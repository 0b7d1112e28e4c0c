package handlers

import (
	"context"
	"net/http"

	"github.com/umakantv/go-utils/errs"
	"go.uber.org/zap"

	"wardrobe-service/models"
	"wardrobe-service/store"
)

// FavoriteHandler handles the favourite clothing items and outfits of a user,
// addressed by the email query parameter
type FavoriteHandler struct {
	store *store.Store
}

// NewFavoriteHandler creates a new favourites handler
func NewFavoriteHandler(s *store.Store) *FavoriteHandler {
	return &FavoriteHandler{store: s}
}

// GetFavoriteItems handles GET /favorites/items?email=
func (h *FavoriteHandler) GetFavoriteItems(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	email, err := queryEmail(r)
	if err != nil {
		respondError(ctx, w, err, "Invalid email")
		return
	}

	items, err := h.store.ListFavoriteItems(ctx, email)
	if err != nil {
		respondError(ctx, w, err, "Failed to list favourite items", zap.String("email", email))
		return
	}

	logRequest(ctx, "info", "Favourite items retrieved", zap.Int("count", len(items)))
	writeJSON(w, http.StatusOK, items)
}

// AddFavoriteItem handles POST /favorites/items
func (h *FavoriteHandler) AddFavoriteItem(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	var req models.FavoriteRequest
	if err := decodeRequest(r, &req); err != nil {
		respondError(ctx, w, err, "Invalid request body")
		return
	}

	if _, err := h.store.AddToFavorites(ctx, req.TargetID, req.Email); err != nil {
		respondError(ctx, w, err, "Failed to add favourite item", zap.Int64("clothing_id", req.TargetID))
		return
	}

	logRequest(ctx, "info", "Favourite item added", zap.Int64("clothing_id", req.TargetID), zap.String("email", req.Email))
	writeJSON(w, http.StatusCreated, models.FavoriteStatus{ID: req.TargetID, Email: req.Email, Favorited: true})
}

// GetFavoriteItem handles GET /favorites/items/{id}?email=
func (h *FavoriteHandler) GetFavoriteItem(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	id, email, err := favoriteTarget(r)
	if err != nil {
		respondError(ctx, w, err, "Invalid favourite lookup")
		return
	}

	writeJSON(w, http.StatusOK, models.FavoriteStatus{
		ID:        id,
		Email:     email,
		Favorited: h.store.IsItemFavorited(ctx, id, email),
	})
}

// RemoveFavoriteItem handles DELETE /favorites/items/{id}?email=
func (h *FavoriteHandler) RemoveFavoriteItem(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	id, email, err := favoriteTarget(r)
	if err != nil {
		respondError(ctx, w, err, "Invalid favourite")
		return
	}

	n, err := h.store.RemoveFromFavorites(ctx, id, email)
	if err != nil {
		respondError(ctx, w, err, "Failed to remove favourite item", zap.Int64("clothing_id", id))
		return
	}
	if n == 0 {
		writeJSON(w, http.StatusNotFound, errs.NewNotFoundError("Favourite not found"))
		return
	}

	logRequest(ctx, "info", "Favourite item removed", zap.Int64("clothing_id", id), zap.String("email", email))
	w.WriteHeader(http.StatusNoContent)
}

// GetFavoriteOutfits handles GET /favorites/outfits?email=
func (h *FavoriteHandler) GetFavoriteOutfits(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	email, err := queryEmail(r)
	if err != nil {
		respondError(ctx, w, err, "Invalid email")
		return
	}

	outfits, err := h.store.ListFavoriteOutfits(ctx, email)
	if err != nil {
		respondError(ctx, w, err, "Failed to list favourite outfits", zap.String("email", email))
		return
	}

	logRequest(ctx, "info", "Favourite outfits retrieved", zap.Int("count", len(outfits)))
	writeJSON(w, http.StatusOK, outfits)
}

// AddFavoriteOutfit handles POST /favorites/outfits
func (h *FavoriteHandler) AddFavoriteOutfit(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	var req models.FavoriteRequest
	if err := decodeRequest(r, &req); err != nil {
		respondError(ctx, w, err, "Invalid request body")
		return
	}

	if _, err := h.store.AddFavoriteOutfit(ctx, req.TargetID, req.Email); err != nil {
		respondError(ctx, w, err, "Failed to add favourite outfit", zap.Int64("outfit_id", req.TargetID))
		return
	}

	logRequest(ctx, "info", "Favourite outfit added", zap.Int64("outfit_id", req.TargetID), zap.String("email", req.Email))
	writeJSON(w, http.StatusCreated, models.FavoriteStatus{ID: req.TargetID, Email: req.Email, Favorited: true})
}

// GetFavoriteOutfit handles GET /favorites/outfits/{id}?email=
func (h *FavoriteHandler) GetFavoriteOutfit(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	id, email, err := favoriteTarget(r)
	if err != nil {
		respondError(ctx, w, err, "Invalid favourite lookup")
		return
	}

	writeJSON(w, http.StatusOK, models.FavoriteStatus{
		ID:        id,
		Email:     email,
		Favorited: h.store.IsOutfitFavorited(ctx, id, email),
	})
}

// RemoveFavoriteOutfit handles DELETE /favorites/outfits/{id}?email=
func (h *FavoriteHandler) RemoveFavoriteOutfit(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	id, email, err := favoriteTarget(r)
	if err != nil {
		respondError(ctx, w, err, "Invalid favourite")
		return
	}

	n, err := h.store.RemoveFavoriteOutfit(ctx, id, email)
	if err != nil {
		respondError(ctx, w, err, "Failed to remove favourite outfit", zap.Int64("outfit_id", id))
		return
	}
	if n == 0 {
		writeJSON(w, http.StatusNotFound, errs.NewNotFoundError("Favourite not found"))
		return
	}

	logRequest(ctx, "info", "Favourite outfit removed", zap.Int64("outfit_id", id), zap.String("email", email))
	w.WriteHeader(http.StatusNoContent)
}

// favoriteTarget reads the {id} route variable and the email query parameter
func favoriteTarget(r *http.Request) (int64, string, error) {
	id, err := pathID(r, "id")
	if err != nil {
		return 0, "", err
	}
	email, err := queryEmail(r)
	if err != nil {
		return 0, "", err
	}
	return id, email, nil
}
