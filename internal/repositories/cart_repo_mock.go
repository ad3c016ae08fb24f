package repositories

import (
	"sync"

	"github.com/kefahamis/ArtisticShowcase-sub001/internal/models"
)

// MockCartRepository is an in-memory implementation of CartRepository.
type MockCartRepository struct {
	carts map[string]models.Cart
	mu    sync.RWMutex
}

// NewMockCartRepository creates a new instance of MockCartRepository.
func NewMockCartRepository() *MockCartRepository {
	return &MockCartRepository{
		carts: make(map[string]models.Cart),
	}
}

// Load returns the stored cart for a user, or an empty cart if none exists.
func (r *MockCartRepository) Load(userID string) (*models.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cart, ok := r.carts[userID]
	if !ok {
		return &models.Cart{Items: []models.CartItem{}}, nil
	}
	// Copy items so callers cannot mutate the stored cart in place.
	items := make([]models.CartItem, len(cart.Items))
	copy(items, cart.Items)
	cart.Items = items
	return &cart, nil
}

// Save stores the cart for a user.
func (r *MockCartRepository) Save(userID string, cart *models.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := make([]models.CartItem, len(cart.Items))
	copy(items, cart.Items)
	r.carts[userID] = models.Cart{Items: items}
	return nil
}

// Delete removes the stored cart for a user.
func (r *MockCartRepository) Delete(userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.carts, userID)
	return nil
}
