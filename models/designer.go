package models

// Designer represents a designer account that publishes designs
type Designer struct {
	ID       int64  `json:"id" db:"id"`
	Name     string `json:"name" db:"name"`
	Email    string `json:"email" db:"email"`
	Password string `json:"-" db:"password"` // bcrypt hash
	UniqueID string `json:"unique_id" db:"unique_id"`
}

// CreateDesignerRequest represents designer registration
type CreateDesignerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	UniqueID string `json:"unique_id" validate:"required"`
}

// UpdateDesignerRequest is the profile edit; Password is optional
type UpdateDesignerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	UniqueID string `json:"unique_id" validate:"required"`
	Password string `json:"password,omitempty" validate:"omitempty,min=6"`
}
