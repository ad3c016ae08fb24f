package handlers

import (
	"fmt"
	"log"
	"strings"

	"github.com/kefahamis/ArtisticShowcase-sub001/internal/models"
	"github.com/kefahamis/ArtisticShowcase-sub001/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// ArtworkHandler handles HTTP requests for artworks.
type ArtworkHandler struct {
	service  *services.ArtworkService
	validate *validator.Validate
}

// NewArtworkHandler creates a new ArtworkHandler.
func NewArtworkHandler(service *services.ArtworkService) *ArtworkHandler {
	return &ArtworkHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterPublicRoutes registers the storefront read routes.
func (h *ArtworkHandler) RegisterPublicRoutes(router fiber.Router) {
	router.Get("/artworks", h.HandleGetArtworks)
	router.Get("/artworks/:id", h.HandleGetArtworkByID)
	router.Get("/artists/:id/artworks", h.HandleGetArtworksByArtist)
}

// RegisterAdminRoutes registers the back-office management routes.
func (h *ArtworkHandler) RegisterAdminRoutes(router fiber.Router) {
	artworkRoutes := router.Group("/artworks")
	artworkRoutes.Get("/", h.HandleGetAllArtworks)
	artworkRoutes.Post("/", h.HandleCreateArtwork)
	artworkRoutes.Put("/:id", h.HandleUpdateArtwork)
	artworkRoutes.Delete("/:id", h.HandleDeleteArtwork)
}

// HandleGetArtworks retrieves the public listing: available works of
// approved artists.
func (h *ArtworkHandler) HandleGetArtworks(c *fiber.Ctx) error {
	artworks, err := h.service.GetAvailableArtworks()
	if err != nil {
		log.Printf("Error getting artworks: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve artworks",
			"error":   err.Error(),
		})
	}
	return c.JSON(artworks)
}

// HandleGetAllArtworks retrieves every artwork including sold pieces (admin).
func (h *ArtworkHandler) HandleGetAllArtworks(c *fiber.Ctx) error {
	artworks, err := h.service.GetAllArtworks()
	if err != nil {
		log.Printf("Error getting all artworks: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve artworks",
			"error":   err.Error(),
		})
	}
	return c.JSON(artworks)
}

// HandleGetArtworkByID retrieves a single artwork by its ID.
func (h *ArtworkHandler) HandleGetArtworkByID(c *fiber.Ctx) error {
	artworkID := c.Params("id")
	artwork, err := h.service.GetArtworkByID(artworkID)
	if err != nil {
		log.Printf("Error getting artwork by ID %s: %v", artworkID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Artwork with ID %s not found", artworkID),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve artwork",
			"error":   err.Error(),
		})
	}
	return c.JSON(artwork)
}

// HandleGetArtworksByArtist retrieves all artworks for one artist.
func (h *ArtworkHandler) HandleGetArtworksByArtist(c *fiber.Ctx) error {
	artistID := c.Params("id")
	artworks, err := h.service.GetArtworksByArtist(artistID)
	if err != nil {
		log.Printf("Error getting artworks for artist %s: %v", artistID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve artworks",
			"error":   err.Error(),
		})
	}
	return c.JSON(artworks)
}

// HandleCreateArtwork creates a new artwork.
func (h *ArtworkHandler) HandleCreateArtwork(c *fiber.Ctx) error {
	var artwork models.Artwork
	if err := c.BodyParser(&artwork); err != nil {
		log.Printf("Error parsing artwork request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(artwork); err != nil {
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

	// The price must be a positive decimal string; it crosses every boundary
	// as text and is only parsed for arithmetic.
	price, err := decimal.NewFromString(artwork.Price)
	if err != nil || !price.IsPositive() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Price must be a positive decimal string",
		})
	}
	artwork.Price = price.StringFixed(2)

	if err := h.service.CreateArtwork(&artwork); err != nil {
		log.Printf("Error creating artwork: %v", err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Artwork creation failed",
				"error":   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create artwork",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(artwork)
}

// HandleUpdateArtwork updates an existing artwork.
func (h *ArtworkHandler) HandleUpdateArtwork(c *fiber.Ctx) error {
	var artwork models.Artwork
	if err := c.BodyParser(&artwork); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	artwork.ID = c.Params("id")

	if err := h.service.UpdateArtwork(&artwork); err != nil {
		log.Printf("Error updating artwork %s: %v", artwork.ID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Artwork with ID %s not found", artwork.ID),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update artwork",
			"error":   err.Error(),
		})
	}
	return c.JSON(artwork)
}

// HandleDeleteArtwork deletes an artwork by its ID.
func (h *ArtworkHandler) HandleDeleteArtwork(c *fiber.Ctx) error {
	artworkID := c.Params("id")
	if err := h.service.DeleteArtwork(artworkID); err != nil {
		log.Printf("Error deleting artwork %s: %v", artworkID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Artwork with ID %s not found", artworkID),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete artwork",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Artwork %s deleted successfully", artworkID),
	})
}
