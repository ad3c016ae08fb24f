package repositories

import (
	"github.com/kefahamis/ArtisticShowcase-sub001/internal/models"
)

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	GetAll() ([]models.Order, error)
	GetByUser(userID string) ([]models.Order, error)
	GetByID(id string) (*models.Order, error)
	Create(order *models.Order) error
	UpdateStatus(id string, status string) error
	// UpdatePayment attaches the provider payment reference to an order and
	// moves it to the given status in one write. Used by checkout
	// reconciliation after a successful capture.
	UpdatePayment(id string, paymentID string, paymentMethod string, status string) error
}
