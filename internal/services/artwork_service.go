package services

import (
	"fmt"

	"github.com/kefahamis/ArtisticShowcase-sub001/internal/models"
	"github.com/kefahamis/ArtisticShowcase-sub001/internal/repositories"
)

// ArtworkService handles business logic related to artworks.
type ArtworkService struct {
	artworkRepo repositories.ArtworkRepository
	artistRepo  repositories.ArtistRepository
}

// NewArtworkService creates a new ArtworkService.
func NewArtworkService(artworkRepo repositories.ArtworkRepository, artistRepo repositories.ArtistRepository) *ArtworkService {
	return &ArtworkService{
		artworkRepo: artworkRepo,
		artistRepo:  artistRepo,
	}
}

// GetAllArtworks retrieves all artworks, including sold pieces and works of
// unapproved artists (admin view).
func (s *ArtworkService) GetAllArtworks() ([]models.Artwork, error) {
	return s.artworkRepo.GetAll()
}

// GetAvailableArtworks retrieves the public storefront listing: available
// works whose artist has been approved.
func (s *ArtworkService) GetAvailableArtworks() ([]models.Artwork, error) {
	artworks, err := s.artworkRepo.GetAll()
	if err != nil {
		return nil, err
	}

	approved := make(map[string]bool)
	artists, err := s.artistRepo.GetByStatus(models.ArtistStatusApproved)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve approved artists: %w", err)
	}
	for _, a := range artists {
		approved[a.ID] = true
	}

	listing := make([]models.Artwork, 0, len(artworks))
	for _, artwork := range artworks {
		if artwork.Availability == models.ArtworkAvailable && approved[artwork.ArtistID] {
			listing = append(listing, artwork)
		}
	}
	return listing, nil
}

// GetArtworkByID retrieves a single artwork by its ID.
func (s *ArtworkService) GetArtworkByID(id string) (*models.Artwork, error) {
	return s.artworkRepo.GetByID(id)
}

// GetArtworksByArtist retrieves all artworks belonging to an artist.
func (s *ArtworkService) GetArtworksByArtist(artistID string) ([]models.Artwork, error) {
	return s.artworkRepo.GetByArtist(artistID)
}

// CreateArtwork creates a new artwork after checking its artist exists.
func (s *ArtworkService) CreateArtwork(artwork *models.Artwork) error {
	if _, err := s.artistRepo.GetByID(artwork.ArtistID); err != nil {
		return fmt.Errorf("artist %s not found for artwork: %w", artwork.ArtistID, err)
	}
	return s.artworkRepo.Create(artwork)
}

// UpdateArtwork updates an existing artwork.
func (s *ArtworkService) UpdateArtwork(artwork *models.Artwork) error {
	return s.artworkRepo.Update(artwork)
}

// MarkSold flips an artwork to sold. Called when an order containing it is
// reconciled.
func (s *ArtworkService) MarkSold(id string) error {
	return s.artworkRepo.UpdateAvailability(id, models.ArtworkSold)
}

// DeleteArtwork deletes an artwork by its ID.
func (s *ArtworkService) DeleteArtwork(id string) error {
	return s.artworkRepo.Delete(id)
}

// Snapshot builds the value copy of an artwork that cart lines carry. The
// snapshot is never re-fetched once taken.
func (s *ArtworkService) Snapshot(artwork *models.Artwork) models.ArtworkSnapshot {
	return models.ArtworkSnapshot{
		ID:       artwork.ID,
		Title:    artwork.Title,
		Price:    artwork.Price,
		ImageURL: artwork.ImageURL,
		ArtistID: artwork.ArtistID,
	}
}
