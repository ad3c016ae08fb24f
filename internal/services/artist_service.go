package services

import (
	"fmt"

	"github.com/kefahamis/ArtisticShowcase-sub001/internal/models"
	"github.com/kefahamis/ArtisticShowcase-sub001/internal/repositories"
)

// ArtistService handles business logic related to artists, including the
// admin approval flow for artist self-service profiles.
type ArtistService struct {
	repo repositories.ArtistRepository
}

// NewArtistService creates a new ArtistService.
func NewArtistService(repo repositories.ArtistRepository) *ArtistService {
	return &ArtistService{
		repo: repo,
	}
}

// GetAllArtists retrieves every artist regardless of status (admin view).
func (s *ArtistService) GetAllArtists() ([]models.Artist, error) {
	return s.repo.GetAll()
}

// GetApprovedArtists retrieves the artists shown on the public site.
func (s *ArtistService) GetApprovedArtists() ([]models.Artist, error) {
	return s.repo.GetByStatus(models.ArtistStatusApproved)
}

// GetPendingArtists retrieves artists awaiting approval.
func (s *ArtistService) GetPendingArtists() ([]models.Artist, error) {
	return s.repo.GetByStatus(models.ArtistStatusPending)
}

// GetArtistByID retrieves a single artist by its ID.
func (s *ArtistService) GetArtistByID(id string) (*models.Artist, error) {
	return s.repo.GetByID(id)
}

// CreateArtist creates a new artist profile. New profiles start pending.
func (s *ArtistService) CreateArtist(artist *models.Artist) error {
	if artist.Status == "" {
		artist.Status = models.ArtistStatusPending
	}
	return s.repo.Create(artist)
}

// ApproveArtist moves a pending artist into the public listing.
func (s *ArtistService) ApproveArtist(id string) error {
	if err := s.repo.UpdateStatus(id, models.ArtistStatusApproved); err != nil {
		return fmt.Errorf("failed to approve artist %s: %w", id, err)
	}
	return nil
}

// UpdateArtist updates an existing artist.
func (s *ArtistService) UpdateArtist(artist *models.Artist) error {
	return s.repo.Update(artist)
}

// DeleteArtist deletes an artist by its ID.
func (s *ArtistService) DeleteArtist(id string) error {
	return s.repo.Delete(id)
}
