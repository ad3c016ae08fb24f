package models

import "gorm.io/gorm"

// Artist approval statuses. New artist profiles start as pending and only
// appear in public listings once an admin approves them.
const (
	ArtistStatusPending  = "pending"
	ArtistStatusApproved = "approved"
)

// Artist represents an artist exhibited by the gallery.
type Artist struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name       string `json:"name" validate:"required,min=2,max=100"`
	Bio        string `json:"bio" validate:"omitempty,max=2000"`
	ImageURL   string `json:"image_url" validate:"omitempty,url"`
	Country    string `json:"country" validate:"omitempty,max=100"`
	Featured   bool   `json:"featured"`
	Status     string `json:"status" validate:"omitempty,oneof=pending approved"`
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
