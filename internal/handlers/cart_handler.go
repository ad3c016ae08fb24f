package handlers

import (
	"fmt"
	"log"
	"strings"

	"github.com/kefahamis/ArtisticShowcase-sub001/internal/models"
	"github.com/kefahamis/ArtisticShowcase-sub001/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for the shopper's cart.
type CartHandler struct {
	cartService    *services.CartService
	artworkService *services.ArtworkService
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(cartService *services.CartService, artworkService *services.ArtworkService) *CartHandler {
	return &CartHandler{
		cartService:    cartService,
		artworkService: artworkService,
	}
}

// RegisterRoutes registers the cart routes. All of them require an
// authenticated shopper.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/cart")
	cartRoutes.Get("/", h.HandleGetCart)
	cartRoutes.Post("/items", h.HandleAddItem)
	cartRoutes.Patch("/items/:artworkID", h.HandleUpdateQuantity)
	cartRoutes.Delete("/items/:artworkID", h.HandleRemoveItem)
	cartRoutes.Post("/toggle", h.HandleToggle)
	cartRoutes.Delete("/", h.HandleClear)
}

func currentUserID(c *fiber.Ctx) string {
	userID, _ := c.Locals("user_id").(string)
	return userID
}

// cartResponse serializes a cart with its derived totals.
func cartResponse(cart *models.Cart) fiber.Map {
	return fiber.Map{
		"items":       cart.Items,
		"is_open":     cart.IsOpen,
		"total_items": cart.TotalItems(),
		"total_price": cart.TotalPrice().StringFixed(2),
	}
}

// HandleGetCart returns the shopper's cart with derived totals.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	cart, err := h.cartService.GetCart(currentUserID(c))
	if err != nil {
		log.Printf("Error loading cart: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve cart",
			"error":   err.Error(),
		})
	}
	return c.JSON(cartResponse(cart))
}

// AddItemRequest represents the request body for adding an artwork to the cart.
type AddItemRequest struct {
	ArtworkID string `json:"artwork_id"`
}

// HandleAddItem resolves an artwork and adds its snapshot to the cart. The
// sold guard lives here, at the caller of the cart store: sold pieces are
// rejected before they ever reach a cart line.
func (h *CartHandler) HandleAddItem(c *fiber.Ctx) error {
	var req AddItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if req.ArtworkID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "artwork_id is required",
		})
	}

	artwork, err := h.artworkService.GetArtworkByID(req.ArtworkID)
	if err != nil {
		log.Printf("Error resolving artwork %s for cart: %v", req.ArtworkID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Artwork with ID %s not found", req.ArtworkID),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not resolve artwork",
			"error":   err.Error(),
		})
	}
	if artwork.Availability == models.ArtworkSold {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": fmt.Sprintf("Artwork %q has been sold", artwork.Title),
		})
	}

	cart, err := h.cartService.AddToCart(currentUserID(c), h.artworkService.Snapshot(artwork))
	if err != nil {
		log.Printf("Error adding artwork %s to cart: %v", req.ArtworkID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not add artwork to cart",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(cartResponse(cart))
}

// UpdateQuantityRequest represents the request body for a quantity change.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// HandleUpdateQuantity sets the quantity of a cart line. Quantities below 1
// leave the cart unchanged; lines are removed via the delete route.
func (h *CartHandler) HandleUpdateQuantity(c *fiber.Ctx) error {
	var req UpdateQuantityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	cart, err := h.cartService.UpdateQuantity(currentUserID(c), c.Params("artworkID"), req.Quantity)
	if err != nil {
		log.Printf("Error updating cart quantity: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update cart",
			"error":   err.Error(),
		})
	}
	return c.JSON(cartResponse(cart))
}

// HandleRemoveItem deletes a cart line. Removing an absent line succeeds.
func (h *CartHandler) HandleRemoveItem(c *fiber.Ctx) error {
	cart, err := h.cartService.RemoveFromCart(currentUserID(c), c.Params("artworkID"))
	if err != nil {
		log.Printf("Error removing cart item: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update cart",
			"error":   err.Error(),
		})
	}
	return c.JSON(cartResponse(cart))
}

// HandleToggle flips the cart panel visibility flag.
func (h *CartHandler) HandleToggle(c *fiber.Ctx) error {
	open := h.cartService.ToggleCart(currentUserID(c))
	return c.JSON(fiber.Map{"is_open": open})
}

// HandleClear empties the cart on explicit shopper request.
func (h *CartHandler) HandleClear(c *fiber.Ctx) error {
	if err := h.cartService.ClearCart(currentUserID(c)); err != nil {
		log.Printf("Error clearing cart: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not clear cart",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"message": "Cart cleared"})
}
