package models

// FavoriteRequest adds a clothing item or an outfit to the favourites of Email
type FavoriteRequest struct {
	Email    string `json:"email" validate:"required,email"`
	TargetID int64  `json:"id" validate:"required,gt=0"`
}

// FavoriteStatus answers "is this favourited" lookups
type FavoriteStatus struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	Favorited bool   `json:"favorited"`
}
