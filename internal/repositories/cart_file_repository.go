package repositories

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/kefahamis/ArtisticShowcase-sub001/internal/models"
)

// FileCartRepository persists each shopper's cart as a JSON snapshot under a
// fixed per-user key in a data directory. It is the server-side analogue of
// browser local storage: carts survive restarts, and malformed or missing
// snapshots degrade to an empty cart instead of failing.
type FileCartRepository struct {
	dir string
}

// NewFileCartRepository creates the data directory if needed and returns a
// repository rooted at it.
func NewFileCartRepository(dir string) (*FileCartRepository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cart data directory %s: %w", dir, err)
	}
	return &FileCartRepository{dir: dir}, nil
}

func (r *FileCartRepository) path(userID string) string {
	return filepath.Join(r.dir, fmt.Sprintf("cart-%s.json", userID))
}

// Load reads a cart snapshot. A missing file or undecodable content yields an
// empty cart, never an error.
func (r *FileCartRepository) Load(userID string) (*models.Cart, error) {
	data, err := os.ReadFile(r.path(userID))
	if err != nil {
		if os.IsNotExist(err) {
			return &models.Cart{Items: []models.CartItem{}}, nil
		}
		return nil, fmt.Errorf("failed to read cart snapshot for user %s: %w", userID, err)
	}

	var cart models.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		log.Printf("Discarding malformed cart snapshot for user %s: %v", userID, err)
		return &models.Cart{Items: []models.CartItem{}}, nil
	}
	if cart.Items == nil {
		cart.Items = []models.CartItem{}
	}
	return &cart, nil
}

// Save writes the cart snapshot for a user. Saving is idempotent: writing the
// same cart twice leaves the same snapshot on disk. The snapshot is written to
// a temp file and renamed into place, so a crash mid-write can never leave a
// truncated snapshot behind.
func (r *FileCartRepository) Save(userID string, cart *models.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("failed to marshal cart for user %s: %w", userID, err)
	}

	path := r.path(userID)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write cart snapshot for user %s: %w", userID, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to write cart snapshot for user %s: %w", userID, err)
	}
	return nil
}

// Delete removes a user's cart snapshot. Absence is not an error.
func (r *FileCartRepository) Delete(userID string) error {
	if err := os.Remove(r.path(userID)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete cart snapshot for user %s: %w", userID, err)
	}
	return nil
}
