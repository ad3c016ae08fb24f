package repositories

import (
	"github.com/kefahamis/ArtisticShowcase-sub001/internal/models"
)

// CartRepository defines the persistence boundary for shopper carts. Load
// must degrade to an empty cart when no snapshot exists or the stored data is
// malformed; a shopper never loses the ability to shop because of a corrupt
// snapshot.
type CartRepository interface {
	Load(userID string) (*models.Cart, error)
	Save(userID string, cart *models.Cart) error
	Delete(userID string) error
}
