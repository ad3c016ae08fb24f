package services

import (
	"fmt"
	"time"

	"github.com/kefahamis/ArtisticShowcase-sub001/internal/models"
	"github.com/kefahamis/ArtisticShowcase-sub001/internal/repositories"
)

// ExhibitionService handles business logic related to exhibitions.
type ExhibitionService struct {
	repo repositories.ExhibitionRepository
}

// NewExhibitionService creates a new ExhibitionService.
func NewExhibitionService(repo repositories.ExhibitionRepository) *ExhibitionService {
	return &ExhibitionService{
		repo: repo,
	}
}

// GetAllExhibitions retrieves all exhibitions.
func (s *ExhibitionService) GetAllExhibitions() ([]models.Exhibition, error) {
	return s.repo.GetAll()
}

// GetCurrentExhibitions retrieves running and upcoming exhibitions.
func (s *ExhibitionService) GetCurrentExhibitions() ([]models.Exhibition, error) {
	return s.repo.GetCurrent(time.Now())
}

// GetExhibitionByID retrieves a single exhibition by its ID.
func (s *ExhibitionService) GetExhibitionByID(id string) (*models.Exhibition, error) {
	return s.repo.GetByID(id)
}

// CreateExhibition creates a new exhibition after checking its date range.
func (s *ExhibitionService) CreateExhibition(exhibition *models.Exhibition) error {
	if exhibition.EndDate.Before(exhibition.StartDate) {
		return fmt.Errorf("exhibition end date %s is before start date %s",
			exhibition.EndDate.Format(time.DateOnly), exhibition.StartDate.Format(time.DateOnly))
	}
	return s.repo.Create(exhibition)
}

// UpdateExhibition updates an existing exhibition.
func (s *ExhibitionService) UpdateExhibition(exhibition *models.Exhibition) error {
	if exhibition.EndDate.Before(exhibition.StartDate) {
		return fmt.Errorf("exhibition end date %s is before start date %s",
			exhibition.EndDate.Format(time.DateOnly), exhibition.StartDate.Format(time.DateOnly))
	}
	return s.repo.Update(exhibition)
}

// DeleteExhibition deletes an exhibition by its ID.
func (s *ExhibitionService) DeleteExhibition(id string) error {
	return s.repo.Delete(id)
}
