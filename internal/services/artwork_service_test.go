package services_test

import (
	"testing"

	"github.com/kefahamis/ArtisticShowcase-sub001/internal/models"
	"github.com/kefahamis/ArtisticShowcase-sub001/internal/repositories"
	"github.com/kefahamis/ArtisticShowcase-sub001/internal/services"

	"github.com/stretchr/testify/assert"
)

func seedArtworkFixtures(t *testing.T) (*repositories.MockArtworkRepository, *repositories.MockArtistRepository, *services.ArtworkService) {
	t.Helper()
	artworkRepo := repositories.NewMockArtworkRepository()
	artistRepo := repositories.NewMockArtistRepository()
	service := services.NewArtworkService(artworkRepo, artistRepo)

	approved := &models.Artist{ID: "artist-approved", Name: "Mara Ellis", Status: models.ArtistStatusApproved}
	pending := &models.Artist{ID: "artist-pending", Name: "Theo Brandt", Status: models.ArtistStatusPending}
	assert.NoError(t, artistRepo.Create(approved))
	assert.NoError(t, artistRepo.Create(pending))

	fixtures := []*models.Artwork{
		{ID: "art-1", Title: "Blue Study", Price: "450.00", ArtistID: "artist-approved", Availability: models.ArtworkAvailable},
		{ID: "art-2", Title: "Red Field", Price: "900.00", ArtistID: "artist-approved", Availability: models.ArtworkSold},
		{ID: "art-3", Title: "Quiet Harbor", Price: "600.00", ArtistID: "artist-pending", Availability: models.ArtworkAvailable},
	}
	for _, artwork := range fixtures {
		assert.NoError(t, artworkRepo.Create(artwork))
	}
	return artworkRepo, artistRepo, service
}

func TestArtworkService_GetAvailableArtworks(t *testing.T) {
	_, _, service := seedArtworkFixtures(t)

	// Sold pieces and works of unapproved artists stay out of the public
	// listing.
	listing, err := service.GetAvailableArtworks()
	assert.NoError(t, err)
	assert.Len(t, listing, 1)
	assert.Equal(t, "art-1", listing[0].ID)
}

func TestArtworkService_GetAllArtworks_IncludesEverything(t *testing.T) {
	_, _, service := seedArtworkFixtures(t)

	artworks, err := service.GetAllArtworks()
	assert.NoError(t, err)
	assert.Len(t, artworks, 3)
}

func TestArtworkService_CreateArtwork_RequiresExistingArtist(t *testing.T) {
	_, _, service := seedArtworkFixtures(t)

	err := service.CreateArtwork(&models.Artwork{
		Title:    "Orphan Piece",
		Price:    "100.00",
		ArtistID: "artist-unknown",
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestArtworkService_MarkSold(t *testing.T) {
	artworkRepo, _, service := seedArtworkFixtures(t)

	assert.NoError(t, service.MarkSold("art-1"))

	artwork, err := artworkRepo.GetByID("art-1")
	assert.NoError(t, err)
	assert.Equal(t, models.ArtworkSold, artwork.Availability)

	// The piece disappears from the public listing.
	listing, err := service.GetAvailableArtworks()
	assert.NoError(t, err)
	assert.Empty(t, listing)
}

func TestArtworkService_Snapshot(t *testing.T) {
	_, _, service := seedArtworkFixtures(t)

	artwork, err := service.GetArtworkByID("art-1")
	assert.NoError(t, err)

	snap := service.Snapshot(artwork)
	assert.Equal(t, "art-1", snap.ID)
	assert.Equal(t, "Blue Study", snap.Title)
	assert.Equal(t, "450.00", snap.Price)
	assert.Equal(t, "artist-approved", snap.ArtistID)
}

func TestArtworkService_GetArtworksByArtist(t *testing.T) {
	_, _, service := seedArtworkFixtures(t)

	artworks, err := service.GetArtworksByArtist("artist-approved")
	assert.NoError(t, err)
	assert.Len(t, artworks, 2)
}
