package models

import (
	"time"
)

// CachedRecipe stores the last fetched upstream detail payload so recipe
// pages keep working when the upstream is unreachable. Keyed by the
// upstream recipe ID; pruned to the most recently accessed entries.
type CachedRecipe struct {
	ID           int64     `gorm:"primarykey" json:"id"`
	Title        string    `gorm:"not null" json:"title"`
	ImageURL     string    `json:"image_url"`
	Payload      string    `gorm:"type:text;not null" json:"-"`
	CachedAt     time.Time `json:"cached_at"`
	LastAccessed time.Time `gorm:"index" json:"last_accessed"`
}

func (CachedRecipe) TableName() string {
	return "cached_recipes"
}
