package repositories

import (
	"time"

	"github.com/kefahamis/ArtisticShowcase-sub001/internal/models"
)

// ExhibitionRepository defines the interface for exhibition data access.
type ExhibitionRepository interface {
	GetAll() ([]models.Exhibition, error)
	GetCurrent(now time.Time) ([]models.Exhibition, error)
	GetByID(id string) (*models.Exhibition, error)
	Create(exhibition *models.Exhibition) error
	Update(exhibition *models.Exhibition) error
	Delete(id string) error
}
