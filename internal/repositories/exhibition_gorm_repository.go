package repositories

import (
	"fmt"
	"time"

	"github.com/kefahamis/ArtisticShowcase-sub001/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMExhibitionRepository is a GORM implementation of ExhibitionRepository.
type GORMExhibitionRepository struct {
	db *gorm.DB
}

// NewGORMExhibitionRepository creates a new instance of GORMExhibitionRepository.
func NewGORMExhibitionRepository(db *gorm.DB) *GORMExhibitionRepository {
	return &GORMExhibitionRepository{
		db: db,
	}
}

// GetAll retrieves all exhibitions from the database.
func (r *GORMExhibitionRepository) GetAll() ([]models.Exhibition, error) {
	var exhibitions []models.Exhibition
	if err := r.db.Order("start_date").Find(&exhibitions).Error; err != nil {
		return nil, fmt.Errorf("failed to get all exhibitions: %w", err)
	}
	return exhibitions, nil
}

// GetCurrent retrieves exhibitions that are running or upcoming relative to now.
func (r *GORMExhibitionRepository) GetCurrent(now time.Time) ([]models.Exhibition, error) {
	var exhibitions []models.Exhibition
	if err := r.db.Order("start_date").Find(&exhibitions, "end_date >= ?", now).Error; err != nil {
		return nil, fmt.Errorf("failed to get current exhibitions: %w", err)
	}
	return exhibitions, nil
}

// GetByID retrieves a single exhibition by its ID from the database.
func (r *GORMExhibitionRepository) GetByID(id string) (*models.Exhibition, error) {
	var exhibition models.Exhibition
	if err := r.db.First(&exhibition, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("exhibition with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get exhibition by ID %s: %w", id, err)
	}
	return &exhibition, nil
}

// Create creates a new exhibition in the database.
func (r *GORMExhibitionRepository) Create(exhibition *models.Exhibition) error {
	if exhibition.ID == "" {
		exhibition.ID = uuid.New().String()
	}
	if err := r.db.Create(exhibition).Error; err != nil {
		return fmt.Errorf("failed to create exhibition: %w", err)
	}
	return nil
}

// Update updates an existing exhibition in the database.
func (r *GORMExhibitionRepository) Update(exhibition *models.Exhibition) error {
	res := r.db.Save(exhibition)
	if res.Error != nil {
		return fmt.Errorf("failed to update exhibition: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("exhibition with ID %s not found for update", exhibition.ID)
	}
	return nil
}

// Delete deletes an exhibition by its ID from the database.
func (r *GORMExhibitionRepository) Delete(id string) error {
	res := r.db.Delete(&models.Exhibition{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete exhibition: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("exhibition with ID %s not found for deletion", id)
	}
	return nil
}
