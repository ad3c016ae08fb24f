package repositories

import (
	"fmt"

	"github.com/kefahamis/ArtisticShowcase-sub001/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMArtworkRepository is a GORM implementation of ArtworkRepository.
type GORMArtworkRepository struct {
	db *gorm.DB
}

// NewGORMArtworkRepository creates a new instance of GORMArtworkRepository.
func NewGORMArtworkRepository(db *gorm.DB) *GORMArtworkRepository {
	return &GORMArtworkRepository{
		db: db,
	}
}

// GetAll retrieves all artworks from the database.
func (r *GORMArtworkRepository) GetAll() ([]models.Artwork, error) {
	var artworks []models.Artwork
	if err := r.db.Find(&artworks).Error; err != nil {
		return nil, fmt.Errorf("failed to get all artworks: %w", err)
	}
	return artworks, nil
}

// GetByID retrieves a single artwork by its ID from the database.
func (r *GORMArtworkRepository) GetByID(id string) (*models.Artwork, error) {
	var artwork models.Artwork
	if err := r.db.First(&artwork, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("artwork with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get artwork by ID %s: %w", id, err)
	}
	return &artwork, nil
}

// GetByArtist retrieves all artworks belonging to an artist.
func (r *GORMArtworkRepository) GetByArtist(artistID string) ([]models.Artwork, error) {
	var artworks []models.Artwork
	if err := r.db.Find(&artworks, "artist_id = ?", artistID).Error; err != nil {
		return nil, fmt.Errorf("failed to get artworks for artist %s: %w", artistID, err)
	}
	return artworks, nil
}

// Create creates a new artwork in the database.
func (r *GORMArtworkRepository) Create(artwork *models.Artwork) error {
	if artwork.ID == "" {
		artwork.ID = uuid.New().String()
	}
	if artwork.Availability == "" {
		artwork.Availability = models.ArtworkAvailable
	}
	if err := r.db.Create(artwork).Error; err != nil {
		return fmt.Errorf("failed to create artwork: %w", err)
	}
	return nil
}

// Update updates an existing artwork in the database.
func (r *GORMArtworkRepository) Update(artwork *models.Artwork) error {
	res := r.db.Save(artwork) // Save will update all fields, including zero values
	if res.Error != nil {
		return fmt.Errorf("failed to update artwork: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("artwork with ID %s not found for update", artwork.ID)
	}
	return nil
}

// UpdateAvailability sets only the availability column of an artwork.
func (r *GORMArtworkRepository) UpdateAvailability(id string, availability string) error {
	res := r.db.Model(&models.Artwork{}).Where("id = ?", id).Update("availability", availability)
	if res.Error != nil {
		return fmt.Errorf("failed to update availability for artwork %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("artwork with ID %s not found for availability update", id)
	}
	return nil
}

// Delete deletes an artwork by its ID from the database.
func (r *GORMArtworkRepository) Delete(id string) error {
	res := r.db.Delete(&models.Artwork{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete artwork: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("artwork with ID %s not found for deletion", id)
	}
	return nil
}
