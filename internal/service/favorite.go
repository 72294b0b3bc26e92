package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/smartrecipes/backend/internal/models"
)

// FavoriteService handles favoriting of upstream recipes.
type FavoriteService struct {
	db *gorm.DB
}

// NewFavoriteService creates a new FavoriteService instance
func NewFavoriteService(db *gorm.DB) *FavoriteService {
	return &FavoriteService{db: db}
}

// Favorite pins a recipe for the user. Favoriting the same recipe twice is
// a no-op.
func (s *FavoriteService) Favorite(ctx context.Context, userID uuid.UUID, recipeID int64, title, imageURL string) error {
	favorite := models.Favorite{
		UserID:   userID,
		RecipeID: recipeID,
		Title:    title,
		ImageURL: imageURL,
	}
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		FirstOrCreate(&favorite).Error
	if err != nil {
		return fmt.Errorf("create favorite: %w", err)
	}
	return nil
}

// Unfavorite removes a pinned recipe.
func (s *FavoriteService) Unfavorite(ctx context.Context, userID uuid.UUID, recipeID int64) error {
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&models.Favorite{})
	if result.Error != nil {
		return fmt.Errorf("delete favorite: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRecipeNotFound
	}
	return nil
}

// List returns the user's favorites, newest first.
func (s *FavoriteService) List(ctx context.Context, userID uuid.UUID) ([]models.Favorite, error) {
	var favorites []models.Favorite
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favorites).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	return favorites, nil
}
