package handlers

import (
	"errors"
	"fmt"
	"log"

	"github.com/kefahamis/ArtisticShowcase-sub001/internal/services"
	"github.com/kefahamis/ArtisticShowcase-sub001/pkg/paypal"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CheckoutHandler drives the checkout state machine over HTTP. Each shopper
// has one session; the handler maps the orchestrator's error taxonomy onto
// distinct responses so the UI can tell a retryable payment failure from the
// support-contact reconciliation case.
type CheckoutHandler struct {
	service  *services.CheckoutService
	validate *validator.Validate
}

// NewCheckoutHandler creates a new CheckoutHandler.
func NewCheckoutHandler(service *services.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the checkout routes. All of them require an
// authenticated shopper.
func (h *CheckoutHandler) RegisterRoutes(router fiber.Router) {
	checkoutRoutes := router.Group("/checkout")
	checkoutRoutes.Get("/", h.HandleGetSession)
	checkoutRoutes.Post("/", h.HandleSubmit)
	checkoutRoutes.Post("/payment/retry", h.HandleRetryPayment)
	checkoutRoutes.Post("/payment/capture", h.HandleCapturePayment)
	checkoutRoutes.Post("/payment/cancel", h.HandleCancelPayment)
}

// HandleGetSession returns the shopper's current checkout session.
func (h *CheckoutHandler) HandleGetSession(c *fiber.Ctx) error {
	return c.JSON(h.service.GetSession(currentUserID(c)))
}

// HandleSubmit validates the checkout form and submits the order. Validation
// failures never reach the order backend.
func (h *CheckoutHandler) HandleSubmit(c *fiber.Ctx) error {
	var form services.CheckoutForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(form); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errorMessages,
		})
	}

	sess, err := h.service.SubmitOrder(c.Context(), currentUserID(c), form)
	if err != nil {
		log.Printf("Error submitting checkout: %v", err)
		switch {
		case errors.Is(err, services.ErrSubmissionInFlight):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "A submission is already in progress",
			})
		case errors.Is(err, services.ErrEmptyCart):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Cart is empty",
			})
		case errors.Is(err, services.ErrInvalidCartItems):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Cart items are invalid",
			})
		case errors.Is(err, services.ErrReconciliationFailed):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "A previous payment succeeded but confirmation failed. Please contact support.",
				"error":   err.Error(),
			})
		case sess != nil:
			// The order exists but payment could not be mounted; the shopper
			// can retry the payment step without resubmitting the form.
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"message": "Order created but payment could not be started",
				"error":   err.Error(),
				"session": sess,
			})
		default:
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"message": "Could not create order",
				"error":   err.Error(),
			})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(sess)
}

// HandleRetryPayment re-mounts the payment button for the existing order.
func (h *CheckoutHandler) HandleRetryPayment(c *fiber.Ctx) error {
	sess, err := h.service.RetryPayment(c.Context(), currentUserID(c))
	if err != nil {
		log.Printf("Error retrying payment: %v", err)
		switch {
		case errors.Is(err, services.ErrSubmissionInFlight):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "A submission is already in progress",
			})
		case errors.Is(err, services.ErrNoActiveCheckout):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "No checkout in progress",
			})
		case errors.Is(err, paypal.ErrNotEligible):
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"message": "Payment method not available",
			})
		default:
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"message": "Could not start payment",
				"error":   err.Error(),
				"session": sess,
			})
		}
	}
	return c.JSON(sess)
}

// HandleCapturePayment captures the in-progress payment and reconciles the
// order. The reconciliation-failure case is answered distinctly: the payment
// went through but the order record is stale, so the shopper is directed to
// support instead of retrying.
func (h *CheckoutHandler) HandleCapturePayment(c *fiber.Ctx) error {
	sess, err := h.service.CapturePayment(c.Context(), currentUserID(c))
	if err != nil {
		log.Printf("Error capturing payment: %v", err)
		switch {
		case errors.Is(err, services.ErrSubmissionInFlight):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "A submission is already in progress",
			})
		case errors.Is(err, services.ErrPaymentNotInProgress):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "No payment in progress",
			})
		case errors.Is(err, services.ErrReconciliationFailed):
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"message":    "Payment succeeded but confirmation failed. Please contact support.",
				"payment_id": sess.PaymentID,
				"error":      err.Error(),
				"session":    sess,
			})
		default:
			// Payment failed or was not completed; the order is kept for a retry.
			return c.Status(fiber.StatusPaymentRequired).JSON(fiber.Map{
				"message": "Payment was not completed. You can retry the payment.",
				"error":   err.Error(),
				"session": sess,
			})
		}
	}
	return c.JSON(sess)
}

// HandleCancelPayment records a buyer cancellation and keeps the order for a
// later retry.
func (h *CheckoutHandler) HandleCancelPayment(c *fiber.Ctx) error {
	sess, err := h.service.CancelPayment(currentUserID(c))
	if err != nil {
		if errors.Is(err, services.ErrSubmissionInFlight) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "A submission is already in progress",
			})
		}
		if errors.Is(err, services.ErrPaymentNotInProgress) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "No payment in progress",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not cancel payment",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Payment cancelled. Your order is kept and payment can be retried.",
		"session": sess,
	})
}
