package repositories

import (
	"fmt"

	"github.com/kefahamis/ArtisticShowcase-sub001/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMArtistRepository is a GORM implementation of ArtistRepository.
type GORMArtistRepository struct {
	db *gorm.DB
}

// NewGORMArtistRepository creates a new instance of GORMArtistRepository.
func NewGORMArtistRepository(db *gorm.DB) *GORMArtistRepository {
	return &GORMArtistRepository{
		db: db,
	}
}

// GetAll retrieves all artists from the database.
func (r *GORMArtistRepository) GetAll() ([]models.Artist, error) {
	var artists []models.Artist
	if err := r.db.Find(&artists).Error; err != nil {
		return nil, fmt.Errorf("failed to get all artists: %w", err)
	}
	return artists, nil
}

// GetByStatus retrieves all artists with the given approval status.
func (r *GORMArtistRepository) GetByStatus(status string) ([]models.Artist, error) {
	var artists []models.Artist
	if err := r.db.Find(&artists, "status = ?", status).Error; err != nil {
		return nil, fmt.Errorf("failed to get artists with status %s: %w", status, err)
	}
	return artists, nil
}

// GetByID retrieves a single artist by its ID from the database.
func (r *GORMArtistRepository) GetByID(id string) (*models.Artist, error) {
	var artist models.Artist
	if err := r.db.First(&artist, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("artist with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get artist by ID %s: %w", id, err)
	}
	return &artist, nil
}

// Create creates a new artist in the database.
func (r *GORMArtistRepository) Create(artist *models.Artist) error {
	if artist.ID == "" {
		artist.ID = uuid.New().String()
	}
	if artist.Status == "" {
		artist.Status = models.ArtistStatusPending
	}
	if err := r.db.Create(artist).Error; err != nil {
		return fmt.Errorf("failed to create artist: %w", err)
	}
	return nil
}

// Update updates an existing artist in the database.
func (r *GORMArtistRepository) Update(artist *models.Artist) error {
	res := r.db.Save(artist)
	if res.Error != nil {
		return fmt.Errorf("failed to update artist: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("artist with ID %s not found for update", artist.ID)
	}
	return nil
}

// UpdateStatus sets only the approval status of an artist.
func (r *GORMArtistRepository) UpdateStatus(id string, status string) error {
	res := r.db.Model(&models.Artist{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("failed to update status for artist %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("artist with ID %s not found for status update", id)
	}
	return nil
}

// Delete deletes an artist by its ID from the database.
func (r *GORMArtistRepository) Delete(id string) error {
	res := r.db.Delete(&models.Artist{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete artist: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("artist with ID %s not found for deletion", id)
	}
	return nil
}
