package models

// Design is a priced piece uploaded by a designer.
// Designs are never edited; they are removed on delete or with their designer.
type Design struct {
	ID          int64   `json:"id" db:"id"`
	Title       string  `json:"title" db:"title"`
	Description string  `json:"description" db:"description"`
	Price       float64 `json:"price" db:"price"`
	Category    string  `json:"category" db:"category"`
	ImageFile   string  `json:"image_file" db:"image_file"`
	DesignerID  int64   `json:"designer_id" db:"designer_id"`
}

// CreateDesignRequest is the upload form of a designer
type CreateDesignRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Price       float64 `json:"price" validate:"gte=0"`
	Category    string  `json:"category" validate:"required"`
	ImageFile   string  `json:"image_file" validate:"required"`
}
