package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Favorite pins an upstream recipe to a user by its upstream identifier.
// Title and image are stored so the favorites list renders without another
// upstream round trip.
type Favorite struct {
	ID        uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	UserID    uuid.UUID `gorm:"type:varchar(36);not null;index:idx_fav_user_recipe,unique" json:"user_id"`
	RecipeID  int64     `gorm:"not null;index:idx_fav_user_recipe,unique" json:"recipe_id"`
	Title     string    `gorm:"not null" json:"title"`
	ImageURL  string    `json:"image_url"`
}

func (Favorite) TableName() string {
	return "favorites"
}

func (f *Favorite) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
