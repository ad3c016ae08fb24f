package services

import (
	"fmt"
	"sync"

	"github.com/kefahamis/ArtisticShowcase-sub001/internal/models"
	"github.com/kefahamis/ArtisticShowcase-sub001/internal/repositories"
)

// CartService is the single source of truth for what a shopper intends to
// buy. Every mutation is persisted through the CartRepository so carts
// survive restarts; the panel-open flag is presentational only and lives in
// memory. Mutations are synchronous and serialized.
type CartService struct {
	repo repositories.CartRepository
	mu   sync.Mutex
	open map[string]bool
}

// NewCartService creates a new CartService.
func NewCartService(repo repositories.CartRepository) *CartService {
	return &CartService{
		repo: repo,
		open: make(map[string]bool),
	}
}

// GetCart returns the shopper's current cart.
func (s *CartService) GetCart(userID string) (*models.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked(userID)
}

func (s *CartService) loadLocked(userID string) (*models.Cart, error) {
	cart, err := s.repo.Load(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart for user %s: %w", userID, err)
	}
	cart.IsOpen = s.open[userID]
	return cart, nil
}

// AddToCart adds an artwork snapshot to the cart. If a line with the same
// artwork ID already exists its quantity is incremented; a cart never holds
// two lines for the same artwork. Availability is not checked here; callers
// guard against adding sold pieces.
func (s *CartService) AddToCart(userID string, snapshot models.ArtworkSnapshot) (*models.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.loadLocked(userID)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range cart.Items {
		if cart.Items[i].Artwork.ID == snapshot.ID {
			cart.Items[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		cart.Items = append(cart.Items, models.CartItem{Artwork: snapshot, Quantity: 1})
	}

	if err := s.repo.Save(userID, cart); err != nil {
		return nil, fmt.Errorf("failed to persist cart for user %s: %w", userID, err)
	}
	return cart, nil
}

// RemoveFromCart deletes the line for the given artwork ID. Removing an
// artwork that is not in the cart is a no-op, not an error.
func (s *CartService) RemoveFromCart(userID string, artworkID string) (*models.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.loadLocked(userID)
	if err != nil {
		return nil, err
	}

	for i := range cart.Items {
		if cart.Items[i].Artwork.ID == artworkID {
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
			if err := s.repo.Save(userID, cart); err != nil {
				return nil, fmt.Errorf("failed to persist cart for user %s: %w", userID, err)
			}
			break
		}
	}
	return cart, nil
}

// UpdateQuantity sets the quantity of an existing line. Quantities below 1
// are clamped to a no-op; callers remove lines explicitly via RemoveFromCart.
func (s *CartService) UpdateQuantity(userID string, artworkID string, quantity int) (*models.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.loadLocked(userID)
	if err != nil {
		return nil, err
	}
	if quantity < 1 {
		return cart, nil
	}

	for i := range cart.Items {
		if cart.Items[i].Artwork.ID == artworkID {
			cart.Items[i].Quantity = quantity
			if err := s.repo.Save(userID, cart); err != nil {
				return nil, fmt.Errorf("failed to persist cart for user %s: %w", userID, err)
			}
			break
		}
	}
	return cart, nil
}

// TotalItems returns the sum of quantities across the cart.
func (s *CartService) TotalItems(userID string) (int, error) {
	cart, err := s.GetCart(userID)
	if err != nil {
		return 0, err
	}
	return cart.TotalItems(), nil
}

// TotalPrice returns the cart total as a fixed 2-decimal string.
func (s *CartService) TotalPrice(userID string) (string, error) {
	cart, err := s.GetCart(userID)
	if err != nil {
		return "", err
	}
	return cart.TotalPrice().StringFixed(2), nil
}

// ToggleCart flips the presentational panel-open flag and returns the new
// value. The flag is never persisted.
func (s *CartService) ToggleCart(userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.open[userID] = !s.open[userID]
	return s.open[userID]
}

// ClearCart empties the cart. During checkout this runs exactly once, after
// payment reconciliation succeeds, never before.
func (s *CartService) ClearCart(userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Save(userID, &models.Cart{Items: []models.CartItem{}}); err != nil {
		return fmt.Errorf("failed to clear cart for user %s: %w", userID, err)
	}
	return nil
}
