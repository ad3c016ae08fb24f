package repositories

import (
	"github.com/kefahamis/ArtisticShowcase-sub001/internal/models"
)

// ArtworkRepository defines the interface for artwork data access.
type ArtworkRepository interface {
	GetAll() ([]models.Artwork, error)
	GetByID(id string) (*models.Artwork, error)
	GetByArtist(artistID string) ([]models.Artwork, error)
	Create(artwork *models.Artwork) error
	Update(artwork *models.Artwork) error
	UpdateAvailability(id string, availability string) error
	Delete(id string) error
}
