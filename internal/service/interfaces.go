package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/smartrecipes/backend/internal/models"
	"github.com/smartrecipes/backend/internal/types"
)

// RecipeAPI is the upstream recipe-search collaborator consumed by the
// search service.
type RecipeAPI interface {
	Search(ctx context.Context, ingredients []string, diet string, number, offset int) (*SearchResponse, error)
	Detail(ctx context.Context, id int64) (*RecipeRecord, error)
}

// ISessionStore holds per-session search state and the recent-search list.
type ISessionStore interface {
	SaveState(ctx context.Context, sessionID string, state *types.SearchState) error
	State(ctx context.Context, sessionID string) (*types.SearchState, error)
	RecordSearch(ctx context.Context, sessionID, term string) error
	RecentSearches(ctx context.Context, sessionID string) ([]string, error)
}

// IPendingStore is the time-bounded store for registrations awaiting email
// verification.
type IPendingStore interface {
	Put(ctx context.Context, reg *PendingRegistration) error
	Get(ctx context.Context, email string) (*PendingRegistration, error)
	Delete(ctx context.Context, email string) error
}

// ISearchService defines the interface for search operations
type ISearchService interface {
	Search(ctx context.Context, sessionID, rawIngredients, diet string, page int) (*types.SearchPage, error)
	Navigate(ctx context.Context, sessionID, direction string) (*types.SearchPage, error)
	RecipeByID(ctx context.Context, sessionID string, id int64) (*types.RecipeCard, error)
	RecentSearches(ctx context.Context, sessionID string) ([]string, error)
}

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Register(ctx context.Context, name, email, password string) error
	Verify(ctx context.Context, email, code string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
}

// IFavoriteService defines the interface for favorite operations
type IFavoriteService interface {
	Favorite(ctx context.Context, userID uuid.UUID, recipeID int64, title, imageURL string) error
	Unfavorite(ctx context.Context, userID uuid.UUID, recipeID int64) error
	List(ctx context.Context, userID uuid.UUID) ([]models.Favorite, error)
}

// IEmailService defines the interface for email operations
type IEmailService interface {
	SendVerificationEmail(name, to, code string) error
}
