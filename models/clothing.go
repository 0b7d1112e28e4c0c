package models

// ClothingItem is a captured piece of clothing in the shared item pool
type ClothingItem struct {
	ID        int64  `json:"id" db:"id"`
	Color     string `json:"color" db:"color"`
	Category  string `json:"category" db:"category"`
	ImagePath string `json:"image_path" db:"image_path"`
}

// String renders the item the way the closet lists it, e.g. "red shirt"
func (c ClothingItem) String() string {
	return c.Color + " " + c.Category
}

// CreateClothingItemRequest represents a newly saved item
type CreateClothingItemRequest struct {
	Color     string `json:"color" validate:"required"`
	Category  string `json:"category" validate:"required"`
	ImagePath string `json:"image_path" validate:"required"`
}
