package models

// User represents a wardrobe enthusiast account
// Password holds the bcrypt hash; never returned in JSON responses
type User struct {
	ID       int64  `json:"id" db:"id"`
	Username string `json:"username" db:"username"`
	Email    string `json:"email" db:"email"`
	Password string `json:"-" db:"password"`
}

// CreateUserRequest represents the registration request for a user
type CreateUserRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"` // Plaintext; hashed by the store
}

// UpdateUsernameRequest changes the display name of the account identified by email
type UpdateUsernameRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required"`
}

// ChangePasswordRequest requires the current password to match before the new one is stored
type ChangePasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=6,nefield=OldPassword"`
}

// LoginRequest for the /login and /designers/login APIs (cookie session)
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// MeResponse is the session owner returned by /me
type MeResponse struct {
	ID    int64  `json:"id"`
	Kind  string `json:"kind"` // "user" or "designer"
	Name  string `json:"name"`
	Email string `json:"email"`
}
