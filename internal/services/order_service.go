package services

import (
	"fmt"

	"github.com/kefahamis/ArtisticShowcase-sub001/internal/models"
	"github.com/kefahamis/ArtisticShowcase-sub001/internal/repositories"

	"github.com/shopspring/decimal"
)

// OrderService handles reads and back-office management of orders. Order
// creation happens in CheckoutService, which owns the checkout state machine.
type OrderService struct {
	orderRepo   repositories.OrderRepository
	artworkRepo repositories.ArtworkRepository
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository, artworkRepo repositories.ArtworkRepository) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		artworkRepo: artworkRepo,
	}
}

// GetAllOrders retrieves all orders (admin view).
func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// GetOrdersByUser retrieves the orders placed by one shopper.
func (s *OrderService) GetOrdersByUser(userID string) ([]models.Order, error) {
	return s.orderRepo.GetByUser(userID)
}

// GetOrderByID retrieves a single order by its ID.
func (s *OrderService) GetOrderByID(id string) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

// UpdateOrderStatus updates the status of an existing order.
func (s *OrderService) UpdateOrderStatus(id string, status string) error {
	validStatuses := map[string]bool{
		models.OrderStatusPending:    true,
		models.OrderStatusCompleted:  true,
		models.OrderStatusProcessing: true,
		models.OrderStatusShipped:    true,
		models.OrderStatusDelivered:  true,
		models.OrderStatusCancelled:  true,
	}
	if _, ok := validStatuses[status]; !ok {
		return fmt.Errorf("invalid order status: %s", status)
	}

	if err := s.orderRepo.UpdateStatus(id, status); err != nil {
		return fmt.Errorf("failed to update order status for order %s: %w", id, err)
	}
	return nil
}

// DashboardStats aggregates the numbers shown on the admin dashboard.
type DashboardStats struct {
	TotalOrders     int    `json:"total_orders"`
	PendingOrders   int    `json:"pending_orders"`
	CompletedOrders int    `json:"completed_orders"`
	Revenue         string `json:"revenue"` // decimal string over completed orders
	TotalArtworks   int    `json:"total_artworks"`
	AvailableWorks  int    `json:"available_artworks"`
}

// GetDashboardStats computes order counts, decimal revenue over completed
// orders and artwork availability counts.
func (s *OrderService) GetDashboardStats() (*DashboardStats, error) {
	orders, err := s.orderRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load orders for stats: %w", err)
	}

	stats := &DashboardStats{TotalOrders: len(orders)}
	revenue := decimal.Zero
	for _, order := range orders {
		switch order.Status {
		case models.OrderStatusPending:
			stats.PendingOrders++
		case models.OrderStatusCompleted, models.OrderStatusProcessing,
			models.OrderStatusShipped, models.OrderStatusDelivered:
			stats.CompletedOrders++
			amount, aerr := decimal.NewFromString(order.TotalAmount)
			if aerr != nil {
				continue
			}
			revenue = revenue.Add(amount)
		}
	}
	stats.Revenue = revenue.StringFixed(2)

	artworks, err := s.artworkRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load artworks for stats: %w", err)
	}
	stats.TotalArtworks = len(artworks)
	for _, a := range artworks {
		if a.Availability == models.ArtworkAvailable {
			stats.AvailableWorks++
		}
	}
	return stats, nil
}
