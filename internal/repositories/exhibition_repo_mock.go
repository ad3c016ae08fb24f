package repositories

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/kefahamis/ArtisticShowcase-sub001/internal/models"

	"github.com/google/uuid"
)

// MockExhibitionRepository is an in-memory implementation of ExhibitionRepository.
type MockExhibitionRepository struct {
	exhibitions map[string]models.Exhibition
	mu          sync.RWMutex
}

// NewMockExhibitionRepository creates a new instance of MockExhibitionRepository.
func NewMockExhibitionRepository() *MockExhibitionRepository {
	return &MockExhibitionRepository{
		exhibitions: make(map[string]models.Exhibition),
	}
}

// GetAll returns all exhibitions ordered by start date.
func (r *MockExhibitionRepository) GetAll() ([]models.Exhibition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]models.Exhibition, 0, len(r.exhibitions))
	for _, e := range r.exhibitions {
		list = append(list, e)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].StartDate.Before(list[j].StartDate) })
	return list, nil
}

// GetCurrent returns exhibitions running or upcoming relative to now.
func (r *MockExhibitionRepository) GetCurrent(now time.Time) ([]models.Exhibition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]models.Exhibition, 0)
	for _, e := range r.exhibitions {
		if !e.EndDate.Before(now) {
			list = append(list, e)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].StartDate.Before(list[j].StartDate) })
	return list, nil
}

// GetByID returns an exhibition by its ID.
func (r *MockExhibitionRepository) GetByID(id string) (*models.Exhibition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	exhibition, ok := r.exhibitions[id]
	if !ok {
		return nil, fmt.Errorf("exhibition with ID %s not found", id)
	}
	return &exhibition, nil
}

// Create adds a new exhibition.
func (r *MockExhibitionRepository) Create(exhibition *models.Exhibition) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if exhibition.ID == "" {
		exhibition.ID = uuid.New().String()
	}
	r.exhibitions[exhibition.ID] = *exhibition
	return nil
}

// Update modifies an existing exhibition.
func (r *MockExhibitionRepository) Update(exhibition *models.Exhibition) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.exhibitions[exhibition.ID]
	if !ok {
		return fmt.Errorf("exhibition with ID %s not found for update", exhibition.ID)
	}
	r.exhibitions[exhibition.ID] = *exhibition
	return nil
}

// Delete removes an exhibition by its ID.
func (r *MockExhibitionRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.exhibitions[id]
	if !ok {
		return fmt.Errorf("exhibition with ID %s not found for deletion", id)
	}
	delete(r.exhibitions, id)
	return nil
}
