package models

import "time"

// Outfit groups clothing items for a season
// ClothingItems keeps the order the items were given at creation
type Outfit struct {
	ID            int64          `json:"id" db:"id"`
	Season        string         `json:"season" db:"season"`
	Description   string         `json:"description" db:"description"`
	ClothingItems []ClothingItem `json:"clothing_items" db:"-"`
}

// CreateOutfitRequest represents the try-on "save outfit" action
type CreateOutfitRequest struct {
	Season        string  `json:"season" validate:"required"`
	Description   string  `json:"description" validate:"required"`
	ClothingItems []int64 `json:"clothing_item_ids" validate:"required,min=1,dive,gt=0"`
}

// FavoriteOutfit is an outfit in a user's favourites with the time it was added
type FavoriteOutfit struct {
	Outfit      Outfit    `json:"outfit"`
	FavoritedAt time.Time `json:"favorited_at"`
}
