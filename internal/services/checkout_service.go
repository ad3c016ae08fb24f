package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/kefahamis/ArtisticShowcase-sub001/internal/models"
	"github.com/kefahamis/ArtisticShowcase-sub001/internal/repositories"
	"github.com/kefahamis/ArtisticShowcase-sub001/pkg/paypal"
	"github.com/kefahamis/ArtisticShowcase-sub001/pkg/rabbitmq"

	"github.com/shopspring/decimal"
)

// CheckoutState is the explicit tagged state of a shopper's checkout. Legal
// transitions:
//
//	Filling            -> OrderCreated          (order submission succeeds)
//	OrderCreated       -> PaymentInProgress     (button session mounted)
//	PaymentInProgress  -> PaymentReconciled     (capture COMPLETED and order patched)
//	PaymentInProgress  -> OrderCreated          (capture failed or cancelled; retry allowed)
//	PaymentInProgress  -> ReconciliationFailed  (capture COMPLETED but order patch failed)
//
// ReconciliationFailed is terminal for the session: funds moved, so no
// submission, retry or capture may run again; resolution happens through
// support. The cart is cleared only on entering PaymentReconciled, never
// earlier.
type CheckoutState string

const (
	StateFilling              CheckoutState = "filling"
	StateOrderCreated         CheckoutState = "order_created"
	StatePaymentInProgress    CheckoutState = "payment_in_progress"
	StatePaymentReconciled    CheckoutState = "payment_reconciled"
	StateReconciliationFailed CheckoutState = "reconciliation_failed"
)

// Checkout error taxonomy. ErrReconciliationFailed is the severe case: funds
// moved but the order record was not patched. It is never retried
// automatically and never treated as success.
var (
	ErrEmptyCart            = errors.New("cart is empty")
	ErrInvalidCartItems     = errors.New("cart items are invalid")
	ErrSubmissionInFlight   = errors.New("a checkout submission is already in progress")
	ErrNoActiveCheckout     = errors.New("no active checkout session")
	ErrPaymentNotInProgress = errors.New("no payment in progress for this checkout")
	ErrReconciliationFailed = errors.New("payment succeeded but order confirmation failed")
)

// PaymentSession is one mounted payment button scoped to a fixed amount.
type PaymentSession interface {
	CreateOrder(ctx context.Context) (string, error)
	Capture(ctx context.Context) (*paypal.Capture, error)
	Close() error
}

// PaymentGateway mounts payment sessions. Mounting again with the same or
// different parameters tears down the previous session first.
type PaymentGateway interface {
	Mount(ctx context.Context, amount string, currency string) (PaymentSession, error)
}

// CheckoutForm carries the customer and shipping fields collected while the
// checkout is in the Filling state.
type CheckoutForm struct {
	CustomerName    string `json:"customer_name" validate:"required,min=2,max=200"`
	CustomerEmail   string `json:"customer_email" validate:"required,email"`
	CustomerAddress string `json:"customer_address" validate:"required,min=5,max=500"`
	ShippingNotes   string `json:"shipping_notes" validate:"omitempty,max=500"`
}

// CheckoutSession is the orchestrator's view of one shopper's checkout.
type CheckoutSession struct {
	State           CheckoutState `json:"state"`
	OrderID         string        `json:"order_id,omitempty"`
	Amount          string        `json:"amount,omitempty"`
	Currency        string        `json:"currency,omitempty"`
	ProviderOrderID string        `json:"provider_order_id,omitempty"`
	PaymentID       string        `json:"payment_id,omitempty"`

	payment    PaymentSession
	submitting bool
}

// CheckoutService orchestrates order creation, payment collection and
// reconciliation. One session per shopper; transitions never overlap because
// a submission in flight blocks further submissions for the same shopper.
type CheckoutService struct {
	orderRepo repositories.OrderRepository
	cart      *CartService
	payments  PaymentGateway
	mq        rabbitmq.Publisher
	currency  string

	mu       sync.Mutex
	sessions map[string]*CheckoutSession
}

// NewCheckoutService creates a new CheckoutService. mq may be nil, in which
// case event publication is skipped.
func NewCheckoutService(orderRepo repositories.OrderRepository, cart *CartService, payments PaymentGateway, mq rabbitmq.Publisher, currency string) *CheckoutService {
	if currency == "" {
		currency = "USD"
	}
	return &CheckoutService{
		orderRepo: orderRepo,
		cart:      cart,
		payments:  payments,
		mq:        mq,
		currency:  currency,
		sessions:  make(map[string]*CheckoutSession),
	}
}

// GetSession returns the shopper's current checkout session, or a fresh
// Filling session if none exists.
func (s *CheckoutService) GetSession(userID string) *CheckoutSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessionLocked(userID)
}

func (s *CheckoutService) sessionLocked(userID string) *CheckoutSession {
	sess, ok := s.sessions[userID]
	if !ok {
		sess = &CheckoutSession{State: StateFilling}
		s.sessions[userID] = sess
	}
	return sess
}

// beginTransition marks the session busy so a second submission cannot start
// while the first is in flight. Callers must pair it with endTransition.
func (s *CheckoutService) beginTransition(userID string) (*CheckoutSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.sessionLocked(userID)
	if sess.submitting {
		return nil, ErrSubmissionInFlight
	}
	sess.submitting = true
	return sess, nil
}

func (s *CheckoutService) endTransition(sess *CheckoutSession) {
	s.mu.Lock()
	sess.submitting = false
	s.mu.Unlock()
}

// SubmitOrder drives the Filling -> OrderCreated -> PaymentInProgress
// transitions. The order's items and total are frozen from the cart at this
// moment; the cart itself is untouched until reconciliation. A previously
// created, still-unpaid order is returned as-is so resubmission never
// duplicates an order.
func (s *CheckoutService) SubmitOrder(ctx context.Context, userID string, form CheckoutForm) (*CheckoutSession, error) {
	sess, err := s.beginTransition(userID)
	if err != nil {
		return nil, err
	}
	defer s.endTransition(sess)

	switch sess.State {
	case StateOrderCreated, StatePaymentInProgress:
		// An unpaid order already exists; the payment step handles retries.
		return sess, nil
	case StateReconciliationFailed:
		// Funds moved for the previous order. Nothing may run until support
		// resolves it; a fresh submission would sell the cart twice.
		return nil, fmt.Errorf("%w (payment id %s)", ErrReconciliationFailed, sess.PaymentID)
	case StatePaymentReconciled:
		// Previous checkout finished; start over.
		sess.State = StateFilling
		sess.OrderID = ""
		sess.Amount = ""
		sess.ProviderOrderID = ""
		sess.PaymentID = ""
		sess.payment = nil
	}

	cart, err := s.cart.GetCart(userID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	// Fail-fast structural check over the whole cart: one bad line rejects
	// the submission and no order is created.
	items := make([]models.OrderItem, 0, len(cart.Items))
	for _, line := range cart.Items {
		price, perr := decimal.NewFromString(line.Artwork.Price)
		if line.Artwork.ID == "" || line.Quantity < 1 || perr != nil || !price.IsPositive() {
			return nil, ErrInvalidCartItems
		}
		items = append(items, models.OrderItem{
			ArtworkID: line.Artwork.ID,
			Title:     line.Artwork.Title,
			Quantity:  line.Quantity,
			Price:     price.StringFixed(2),
		})
	}

	// The amount is fixed here, from the cart as it stands at submission
	// time, and never re-read afterward.
	total := cart.TotalPrice().StringFixed(2)

	order := &models.Order{
		UserID:          userID,
		CustomerName:    form.CustomerName,
		CustomerEmail:   form.CustomerEmail,
		CustomerAddress: form.CustomerAddress,
		ShippingNotes:   form.ShippingNotes,
		Items:           items,
		TotalAmount:     total,
		Currency:        s.currency,
		Status:          models.OrderStatusPending,
	}
	if err := s.orderRepo.Create(order); err != nil {
		// No order id was stored, so resubmission is safe.
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	sess.State = StateOrderCreated
	sess.OrderID = order.ID
	sess.Amount = total
	sess.Currency = s.currency

	s.publishEvent(rabbitmq.RoutingKeyOrderCreated, order)

	if err := s.mountPayment(ctx, sess); err != nil {
		// The order exists; payment can be mounted again without
		// recreating it.
		return sess, err
	}
	return sess, nil
}

// mountPayment moves an OrderCreated session into PaymentInProgress by
// mounting a button session scoped to the frozen amount and creating the
// provider-side order that echoes it.
func (s *CheckoutService) mountPayment(ctx context.Context, sess *CheckoutSession) error {
	payment, err := s.payments.Mount(ctx, sess.Amount, sess.Currency)
	if err != nil {
		return fmt.Errorf("failed to mount payment: %w", err)
	}
	providerOrderID, err := payment.CreateOrder(ctx)
	if err != nil {
		payment.Close()
		return fmt.Errorf("failed to create provider order: %w", err)
	}

	sess.payment = payment
	sess.ProviderOrderID = providerOrderID
	sess.State = StatePaymentInProgress
	return nil
}

// RetryPayment re-mounts the payment button for an order whose previous
// payment attempt failed or was cancelled. The existing order is reused; the
// form is not resubmitted.
func (s *CheckoutService) RetryPayment(ctx context.Context, userID string) (*CheckoutSession, error) {
	sess, err := s.beginTransition(userID)
	if err != nil {
		return nil, err
	}
	defer s.endTransition(sess)

	if sess.State != StateOrderCreated && sess.State != StatePaymentInProgress {
		return nil, ErrNoActiveCheckout
	}
	if err := s.mountPayment(ctx, sess); err != nil {
		return sess, err
	}
	return sess, nil
}

// CapturePayment drives PaymentInProgress -> PaymentReconciled. Only a
// capture with status COMPLETED proceeds to reconciliation; on any other
// outcome the session drops back to OrderCreated with the order intact. The
// cart is cleared only after the order patch succeeds. A patch failure after
// a successful capture returns ErrReconciliationFailed carrying the captured
// payment id, leaves the cart untouched and is never retried automatically.
func (s *CheckoutService) CapturePayment(ctx context.Context, userID string) (*CheckoutSession, error) {
	sess, err := s.beginTransition(userID)
	if err != nil {
		return nil, err
	}
	defer s.endTransition(sess)

	if sess.State != StatePaymentInProgress || sess.payment == nil {
		return nil, ErrPaymentNotInProgress
	}

	// Work with the session captured here; sess.payment is only ever
	// replaced under the in-flight guard, and the guard holds until
	// endTransition.
	payment := sess.payment

	capture, err := payment.Capture(ctx)
	if err != nil {
		sess.State = StateOrderCreated
		return sess, fmt.Errorf("payment was not completed: %w", err)
	}

	if err := s.orderRepo.UpdatePayment(sess.OrderID, capture.ID, "paypal", models.OrderStatusCompleted); err != nil {
		// Funds moved but the order record was not patched. Park the
		// session so no further submission or capture can run, keep the
		// cart, and surface the payment id for support.
		sess.PaymentID = capture.ID
		sess.State = StateReconciliationFailed
		payment.Close()
		sess.payment = nil
		return sess, fmt.Errorf("%w (payment id %s): %v", ErrReconciliationFailed, capture.ID, err)
	}

	if err := s.cart.ClearCart(userID); err != nil {
		log.Printf("Warning: order %s reconciled but cart for user %s was not cleared: %v", sess.OrderID, userID, err)
	}

	sess.PaymentID = capture.ID
	sess.State = StatePaymentReconciled
	payment.Close()
	sess.payment = nil

	if s.mq != nil {
		if order, gerr := s.orderRepo.GetByID(sess.OrderID); gerr == nil {
			s.publishEvent(rabbitmq.RoutingKeyOrderCompleted, order)
		}
	}
	return sess, nil
}

// CancelPayment records a buyer cancellation or non-completed widget outcome.
// The session returns to OrderCreated and the button may be mounted again
// without recreating the order. It runs under the same in-flight guard as the
// other transitions, so a cancel arriving while a capture is running is
// rejected instead of tearing the session down underneath it.
func (s *CheckoutService) CancelPayment(userID string) (*CheckoutSession, error) {
	sess, err := s.beginTransition(userID)
	if err != nil {
		return nil, err
	}
	defer s.endTransition(sess)

	if sess.State != StatePaymentInProgress {
		return nil, ErrPaymentNotInProgress
	}
	if sess.payment != nil {
		sess.payment.Close()
		sess.payment = nil
	}
	sess.State = StateOrderCreated
	return sess, nil
}

func (s *CheckoutService) publishEvent(routingKey string, order *models.Order) {
	if s.mq == nil {
		log.Println("RabbitMQ client is not initialized. Skipping message publication.")
		return
	}

	event := map[string]interface{}{
		"orderID": order.ID,
		"userID":  order.UserID,
		"status":  order.Status,
		"total":   order.TotalAmount,
		"items":   order.Items,
	}
	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal order event to JSON: %v", err)
		return
	}
	if err := s.mq.Publish(rabbitmq.OrdersExchange, routingKey, body); err != nil {
		log.Printf("Warning: Failed to publish %s event for order %s: %v", routingKey, order.ID, err)
	} else {
		log.Printf("Successfully published %s event for order %s", routingKey, order.ID)
	}
}
