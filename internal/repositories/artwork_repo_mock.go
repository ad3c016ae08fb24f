package repositories

import (
	"fmt"
	"sync"

	"github.com/kefahamis/ArtisticShowcase-sub001/internal/models"

	"github.com/google/uuid"
)

// MockArtworkRepository is an in-memory implementation of ArtworkRepository.
type MockArtworkRepository struct {
	artworks map[string]models.Artwork
	mu       sync.RWMutex
}

// NewMockArtworkRepository creates a new instance of MockArtworkRepository.
func NewMockArtworkRepository() *MockArtworkRepository {
	return &MockArtworkRepository{
		artworks: make(map[string]models.Artwork),
	}
}

// GetAll returns all artworks.
func (r *MockArtworkRepository) GetAll() ([]models.Artwork, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	artworkList := make([]models.Artwork, 0, len(r.artworks))
	for _, a := range r.artworks {
		artworkList = append(artworkList, a)
	}
	return artworkList, nil
}

// GetByID returns an artwork by its ID.
func (r *MockArtworkRepository) GetByID(id string) (*models.Artwork, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	artwork, ok := r.artworks[id]
	if !ok {
		return nil, fmt.Errorf("artwork with ID %s not found", id)
	}
	return &artwork, nil
}

// GetByArtist returns all artworks belonging to an artist.
func (r *MockArtworkRepository) GetByArtist(artistID string) ([]models.Artwork, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	artworkList := make([]models.Artwork, 0)
	for _, a := range r.artworks {
		if a.ArtistID == artistID {
			artworkList = append(artworkList, a)
		}
	}
	return artworkList, nil
}

// Create adds a new artwork.
func (r *MockArtworkRepository) Create(artwork *models.Artwork) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if artwork.ID == "" {
		artwork.ID = uuid.New().String()
	}
	if artwork.Availability == "" {
		artwork.Availability = models.ArtworkAvailable
	}
	r.artworks[artwork.ID] = *artwork
	return nil
}

// Update modifies an existing artwork.
func (r *MockArtworkRepository) Update(artwork *models.Artwork) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.artworks[artwork.ID]
	if !ok {
		return fmt.Errorf("artwork with ID %s not found for update", artwork.ID)
	}
	r.artworks[artwork.ID] = *artwork
	return nil
}

// UpdateAvailability sets the availability of an artwork.
func (r *MockArtworkRepository) UpdateAvailability(id string, availability string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	artwork, ok := r.artworks[id]
	if !ok {
		return fmt.Errorf("artwork with ID %s not found for availability update", id)
	}
	artwork.Availability = availability
	r.artworks[id] = artwork
	return nil
}

// Delete removes an artwork by its ID.
func (r *MockArtworkRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.artworks[id]
	if !ok {
		return fmt.Errorf("artwork with ID %s not found for deletion", id)
	}
	delete(r.artworks, id)
	return nil
}
