package handlers

import (
	"fmt"
	"log"
	"strings"

	"github.com/kefahamis/ArtisticShowcase-sub001/internal/models"
	"github.com/kefahamis/ArtisticShowcase-sub001/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ArtistHandler handles HTTP requests for artists.
type ArtistHandler struct {
	service  *services.ArtistService
	validate *validator.Validate
}

// NewArtistHandler creates a new ArtistHandler.
func NewArtistHandler(service *services.ArtistService) *ArtistHandler {
	return &ArtistHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterPublicRoutes registers the storefront read routes. Only approved
// artists are listed publicly.
func (h *ArtistHandler) RegisterPublicRoutes(router fiber.Router) {
	router.Get("/artists", h.HandleGetApprovedArtists)
	router.Get("/artists/:id", h.HandleGetArtistByID)
}

// RegisterAdminRoutes registers the back-office approval and management routes.
func (h *ArtistHandler) RegisterAdminRoutes(router fiber.Router) {
	artistRoutes := router.Group("/artists")
	artistRoutes.Get("/", h.HandleGetAllArtists)
	artistRoutes.Get("/pending", h.HandleGetPendingArtists)
	artistRoutes.Post("/", h.HandleCreateArtist)
	artistRoutes.Patch("/:id/approve", h.HandleApproveArtist)
	artistRoutes.Put("/:id", h.HandleUpdateArtist)
	artistRoutes.Delete("/:id", h.HandleDeleteArtist)
}

// HandleGetApprovedArtists retrieves the public artist listing.
func (h *ArtistHandler) HandleGetApprovedArtists(c *fiber.Ctx) error {
	artists, err := h.service.GetApprovedArtists()
	if err != nil {
		log.Printf("Error getting approved artists: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve artists",
			"error":   err.Error(),
		})
	}
	return c.JSON(artists)
}

// HandleGetAllArtists retrieves every artist regardless of status (admin).
func (h *ArtistHandler) HandleGetAllArtists(c *fiber.Ctx) error {
	artists, err := h.service.GetAllArtists()
	if err != nil {
		log.Printf("Error getting all artists: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve artists",
			"error":   err.Error(),
		})
	}
	return c.JSON(artists)
}

// HandleGetPendingArtists retrieves artists awaiting approval (admin).
func (h *ArtistHandler) HandleGetPendingArtists(c *fiber.Ctx) error {
	artists, err := h.service.GetPendingArtists()
	if err != nil {
		log.Printf("Error getting pending artists: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve artists",
			"error":   err.Error(),
		})
	}
	return c.JSON(artists)
}

// HandleGetArtistByID retrieves a single artist by its ID.
func (h *ArtistHandler) HandleGetArtistByID(c *fiber.Ctx) error {
	artistID := c.Params("id")
	artist, err := h.service.GetArtistByID(artistID)
	if err != nil {
		log.Printf("Error getting artist by ID %s: %v", artistID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Artist with ID %s not found", artistID),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve artist",
			"error":   err.Error(),
		})
	}
	return c.JSON(artist)
}

// HandleCreateArtist creates a new artist profile.
func (h *ArtistHandler) HandleCreateArtist(c *fiber.Ctx) error {
	var artist models.Artist
	if err := c.BodyParser(&artist); err != nil {
		log.Printf("Error parsing artist request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(artist); err != nil {
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

	if err := h.service.CreateArtist(&artist); err != nil {
		log.Printf("Error creating artist: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create artist",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(artist)
}

// HandleApproveArtist moves a pending artist into the public listing.
func (h *ArtistHandler) HandleApproveArtist(c *fiber.Ctx) error {
	artistID := c.Params("id")
	if err := h.service.ApproveArtist(artistID); err != nil {
		log.Printf("Error approving artist %s: %v", artistID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Artist with ID %s not found", artistID),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not approve artist",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Artist %s approved", artistID),
	})
}

// HandleUpdateArtist updates an existing artist.
func (h *ArtistHandler) HandleUpdateArtist(c *fiber.Ctx) error {
	var artist models.Artist
	if err := c.BodyParser(&artist); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	artist.ID = c.Params("id")

	if err := h.service.UpdateArtist(&artist); err != nil {
		log.Printf("Error updating artist %s: %v", artist.ID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Artist with ID %s not found", artist.ID),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update artist",
			"error":   err.Error(),
		})
	}
	return c.JSON(artist)
}

// HandleDeleteArtist deletes an artist by its ID.
func (h *ArtistHandler) HandleDeleteArtist(c *fiber.Ctx) error {
	artistID := c.Params("id")
	if err := h.service.DeleteArtist(artistID); err != nil {
		log.Printf("Error deleting artist %s: %v", artistID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Artist with ID %s not found", artistID),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete artist",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Artist %s deleted successfully", artistID),
	})
}
