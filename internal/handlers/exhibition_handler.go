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

// ExhibitionHandler handles HTTP requests for exhibitions.
type ExhibitionHandler struct {
	service  *services.ExhibitionService
	validate *validator.Validate
}

// NewExhibitionHandler creates a new ExhibitionHandler.
func NewExhibitionHandler(service *services.ExhibitionService) *ExhibitionHandler {
	return &ExhibitionHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterPublicRoutes registers the storefront read routes.
func (h *ExhibitionHandler) RegisterPublicRoutes(router fiber.Router) {
	router.Get("/exhibitions", h.HandleGetCurrentExhibitions)
	router.Get("/exhibitions/:id", h.HandleGetExhibitionByID)
}

// RegisterAdminRoutes registers the back-office management routes.
func (h *ExhibitionHandler) RegisterAdminRoutes(router fiber.Router) {
	exhibitionRoutes := router.Group("/exhibitions")
	exhibitionRoutes.Get("/", h.HandleGetAllExhibitions)
	exhibitionRoutes.Post("/", h.HandleCreateExhibition)
	exhibitionRoutes.Put("/:id", h.HandleUpdateExhibition)
	exhibitionRoutes.Delete("/:id", h.HandleDeleteExhibition)
}

// HandleGetCurrentExhibitions retrieves running and upcoming exhibitions.
func (h *ExhibitionHandler) HandleGetCurrentExhibitions(c *fiber.Ctx) error {
	exhibitions, err := h.service.GetCurrentExhibitions()
	if err != nil {
		log.Printf("Error getting current exhibitions: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve exhibitions",
			"error":   err.Error(),
		})
	}
	return c.JSON(exhibitions)
}

// HandleGetAllExhibitions retrieves all exhibitions including past ones (admin).
func (h *ExhibitionHandler) HandleGetAllExhibitions(c *fiber.Ctx) error {
	exhibitions, err := h.service.GetAllExhibitions()
	if err != nil {
		log.Printf("Error getting all exhibitions: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve exhibitions",
			"error":   err.Error(),
		})
	}
	return c.JSON(exhibitions)
}

// HandleGetExhibitionByID retrieves a single exhibition by its ID.
func (h *ExhibitionHandler) HandleGetExhibitionByID(c *fiber.Ctx) error {
	exhibitionID := c.Params("id")
	exhibition, err := h.service.GetExhibitionByID(exhibitionID)
	if err != nil {
		log.Printf("Error getting exhibition by ID %s: %v", exhibitionID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Exhibition with ID %s not found", exhibitionID),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve exhibition",
			"error":   err.Error(),
		})
	}
	return c.JSON(exhibition)
}

// HandleCreateExhibition creates a new exhibition.
func (h *ExhibitionHandler) HandleCreateExhibition(c *fiber.Ctx) error {
	var exhibition models.Exhibition
	if err := c.BodyParser(&exhibition); err != nil {
		log.Printf("Error parsing exhibition request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(exhibition); err != nil {
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

	if err := h.service.CreateExhibition(&exhibition); err != nil {
		log.Printf("Error creating exhibition: %v", err)
		if strings.Contains(err.Error(), "before start date") {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Exhibition creation failed",
				"error":   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create exhibition",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(exhibition)
}

// HandleUpdateExhibition updates an existing exhibition.
func (h *ExhibitionHandler) HandleUpdateExhibition(c *fiber.Ctx) error {
	var exhibition models.Exhibition
	if err := c.BodyParser(&exhibition); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	exhibition.ID = c.Params("id")

	if err := h.service.UpdateExhibition(&exhibition); err != nil {
		log.Printf("Error updating exhibition %s: %v", exhibition.ID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Exhibition with ID %s not found", exhibition.ID),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update exhibition",
			"error":   err.Error(),
		})
	}
	return c.JSON(exhibition)
}

// HandleDeleteExhibition deletes an exhibition by its ID.
func (h *ExhibitionHandler) HandleDeleteExhibition(c *fiber.Ctx) error {
	exhibitionID := c.Params("id")
	if err := h.service.DeleteExhibition(exhibitionID); err != nil {
		log.Printf("Error deleting exhibition %s: %v", exhibitionID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Exhibition with ID %s not found", exhibitionID),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete exhibition",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Exhibition %s deleted successfully", exhibitionID),
	})
}
