package types

// SearchRequest is the body of a search submission. Ingredients is the raw
// comma-separated list as typed by the user.
type SearchRequest struct {
	Ingredients string `json:"ingredients" binding:"required"`
	Diet        string `json:"diet"`
	Page        int    `json:"page"`
}

// NavigateRequest moves the active search one page forward or back.
type NavigateRequest struct {
	Direction string `json:"direction" binding:"required,oneof=next prev"`
}

// CaloriesRequest is the body of a static calorie-dataset lookup.
type CaloriesRequest struct {
	Ingredients string `json:"ingredients" binding:"required"`
}

// RegisterRequest starts a pending registration.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// VerifyRequest completes a pending registration with the emailed code.
type VerifyRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required"`
}

// LoginRequest authenticates an existing user.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// FavoriteRequest carries the display fields stored alongside a favorited
// upstream recipe.
type FavoriteRequest struct {
	Title    string `json:"title" binding:"required"`
	ImageURL string `json:"image_url"`
}
