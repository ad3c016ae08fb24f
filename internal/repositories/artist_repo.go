package repositories

import (
	"github.com/kefahamis/ArtisticShowcase-sub001/internal/models"
)

// ArtistRepository defines the interface for artist data access.
type ArtistRepository interface {
	GetAll() ([]models.Artist, error)
	GetByStatus(status string) ([]models.Artist, error)
	GetByID(id string) (*models.Artist, error)
	Create(artist *models.Artist) error
	Update(artist *models.Artist) error
	UpdateStatus(id string, status string) error
	Delete(id string) error
}
