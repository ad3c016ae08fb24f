package models

import (
	"time"

	"gorm.io/gorm"
)

// Exhibition represents a gallery exhibition with a display period.
type Exhibition struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Title       string    `json:"title" validate:"required,min=1,max=200"`
	Description string    `json:"description" validate:"omitempty,max=2000"`
	Location    string    `json:"location" validate:"omitempty,max=200"`
	ImageURL    string    `json:"image_url" validate:"omitempty,url"`
	StartDate   time.Time `json:"start_date" validate:"required"`
	EndDate     time.Time `json:"end_date" validate:"required"`
	Featured    bool      `json:"featured"`
	gorm.Model            // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
