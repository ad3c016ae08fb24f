package models

import "gorm.io/gorm"

// Artwork availability values.
const (
	ArtworkAvailable = "available"
	ArtworkSold      = "sold"
)

// Artwork represents a piece offered by the gallery. Price is carried as a
// decimal-formatted string end-to-end; arithmetic happens in
// shopspring/decimal, never in binary floats.
type Artwork struct {
	ID           string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Title        string `json:"title" validate:"required,min=1,max=200"`
	Description  string `json:"description" validate:"omitempty,max=2000"`
	Price        string `json:"price" gorm:"type:numeric(12,2)" validate:"required"`
	ImageURL     string `json:"image_url" validate:"omitempty,url"`
	ArtistID     string `json:"artist_id" validate:"required"`
	Medium       string `json:"medium" validate:"omitempty,max=100"`
	Dimensions   string `json:"dimensions" validate:"omitempty,max=100"`
	Year         int    `json:"year" validate:"omitempty,gte=0"`
	Availability string `json:"availability" validate:"omitempty,oneof=available sold"`
	Featured     bool   `json:"featured"`
	gorm.Model          // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
