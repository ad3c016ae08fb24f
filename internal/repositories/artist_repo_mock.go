package repositories

import (
	"fmt"
	"sync"

	"github.com/kefahamis/ArtisticShowcase-sub001/internal/models"

	"github.com/google/uuid"
)

// MockArtistRepository is an in-memory implementation of ArtistRepository.
type MockArtistRepository struct {
	artists map[string]models.Artist
	mu      sync.RWMutex
}

// NewMockArtistRepository creates a new instance of MockArtistRepository.
func NewMockArtistRepository() *MockArtistRepository {
	return &MockArtistRepository{
		artists: make(map[string]models.Artist),
	}
}

// GetAll returns all artists.
func (r *MockArtistRepository) GetAll() ([]models.Artist, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	artistList := make([]models.Artist, 0, len(r.artists))
	for _, a := range r.artists {
		artistList = append(artistList, a)
	}
	return artistList, nil
}

// GetByStatus returns all artists with the given approval status.
func (r *MockArtistRepository) GetByStatus(status string) ([]models.Artist, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	artistList := make([]models.Artist, 0)
	for _, a := range r.artists {
		if a.Status == status {
			artistList = append(artistList, a)
		}
	}
	return artistList, nil
}

// GetByID returns an artist by its ID.
func (r *MockArtistRepository) GetByID(id string) (*models.Artist, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	artist, ok := r.artists[id]
	if !ok {
		return nil, fmt.Errorf("artist with ID %s not found", id)
	}
	return &artist, nil
}

// Create adds a new artist.
func (r *MockArtistRepository) Create(artist *models.Artist) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if artist.ID == "" {
		artist.ID = uuid.New().String()
	}
	if artist.Status == "" {
		artist.Status = models.ArtistStatusPending
	}
	r.artists[artist.ID] = *artist
	return nil
}

// Update modifies an existing artist.
func (r *MockArtistRepository) Update(artist *models.Artist) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.artists[artist.ID]
	if !ok {
		return fmt.Errorf("artist with ID %s not found for update", artist.ID)
	}
	r.artists[artist.ID] = *artist
	return nil
}

// UpdateStatus sets the approval status of an artist.
func (r *MockArtistRepository) UpdateStatus(id string, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	artist, ok := r.artists[id]
	if !ok {
		return fmt.Errorf("artist with ID %s not found for status update", id)
	}
	artist.Status = status
	r.artists[id] = artist
	return nil
}

// Delete removes an artist by its ID.
func (r *MockArtistRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.artists[id]
	if !ok {
		return fmt.Errorf("artist with ID %s not found for deletion", id)
	}
	delete(r.artists, id)
	return nil
}
