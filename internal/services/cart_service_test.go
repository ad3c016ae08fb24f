package services_test

import (
	"testing"

	"github.com/kefahamis/ArtisticShowcase-sub001/internal/models"
	"github.com/kefahamis/ArtisticShowcase-sub001/internal/repositories"
	"github.com/kefahamis/ArtisticShowcase-sub001/internal/services"

	"github.com/stretchr/testify/assert"
)

const cartUser = "user-1"

func snapshot(id, price string) models.ArtworkSnapshot {
	return models.ArtworkSnapshot{
		ID:       id,
		Title:    "Artwork " + id,
		Price:    price,
		ArtistID: "artist-1",
	}
}

func TestCartService_AddToCart_NoDuplicateLines(t *testing.T) {
	service := services.NewCartService(repositories.NewMockCartRepository())

	// Adding the same artwork twice increments quantity instead of
	// appending a second line.
	_, err := service.AddToCart(cartUser, snapshot("art-5", "300.00"))
	assert.NoError(t, err)
	cart, err := service.AddToCart(cartUser, snapshot("art-5", "300.00"))
	assert.NoError(t, err)

	assert.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, "art-5", cart.Items[0].Artwork.ID)
}

func TestCartService_Totals(t *testing.T) {
	service := services.NewCartService(repositories.NewMockCartRepository())

	_, err := service.AddToCart(cartUser, snapshot("art-1", "100.00"))
	assert.NoError(t, err)
	_, err = service.AddToCart(cartUser, snapshot("art-1", "100.00"))
	assert.NoError(t, err)
	_, err = service.AddToCart(cartUser, snapshot("art-2", "50.00"))
	assert.NoError(t, err)

	totalItems, err := service.TotalItems(cartUser)
	assert.NoError(t, err)
	assert.Equal(t, 3, totalItems)

	totalPrice, err := service.TotalPrice(cartUser)
	assert.NoError(t, err)
	assert.Equal(t, "250.00", totalPrice)
}

func TestCartService_TotalsTrackMutations(t *testing.T) {
	service := services.NewCartService(repositories.NewMockCartRepository())

	_, err := service.AddToCart(cartUser, snapshot("art-1", "10.00"))
	assert.NoError(t, err)
	_, err = service.AddToCart(cartUser, snapshot("art-2", "20.00"))
	assert.NoError(t, err)

	_, err = service.UpdateQuantity(cartUser, "art-1", 4)
	assert.NoError(t, err)

	totalItems, _ := service.TotalItems(cartUser)
	totalPrice, _ := service.TotalPrice(cartUser)
	assert.Equal(t, 5, totalItems)
	assert.Equal(t, "60.00", totalPrice)

	_, err = service.RemoveFromCart(cartUser, "art-1")
	assert.NoError(t, err)

	totalItems, _ = service.TotalItems(cartUser)
	totalPrice, _ = service.TotalPrice(cartUser)
	assert.Equal(t, 1, totalItems)
	assert.Equal(t, "20.00", totalPrice)
}

func TestCartService_UpdateQuantityBelowOneIsNoOp(t *testing.T) {
	service := services.NewCartService(repositories.NewMockCartRepository())

	_, err := service.AddToCart(cartUser, snapshot("art-1", "10.00"))
	assert.NoError(t, err)

	cart, err := service.UpdateQuantity(cartUser, "art-1", 0)
	assert.NoError(t, err)
	assert.Equal(t, 1, cart.Items[0].Quantity)

	cart, err = service.UpdateQuantity(cartUser, "art-1", -3)
	assert.NoError(t, err)
	assert.Equal(t, 1, cart.Items[0].Quantity)
}

func TestCartService_RemoveAbsentIsNoOp(t *testing.T) {
	service := services.NewCartService(repositories.NewMockCartRepository())

	_, err := service.AddToCart(cartUser, snapshot("art-1", "10.00"))
	assert.NoError(t, err)

	cart, err := service.RemoveFromCart(cartUser, "art-99")
	assert.NoError(t, err)
	assert.Len(t, cart.Items, 1)
}

func TestCartService_ClearCart(t *testing.T) {
	service := services.NewCartService(repositories.NewMockCartRepository())

	_, err := service.AddToCart(cartUser, snapshot("art-1", "10.00"))
	assert.NoError(t, err)
	_, err = service.AddToCart(cartUser, snapshot("art-2", "20.00"))
	assert.NoError(t, err)

	assert.NoError(t, service.ClearCart(cartUser))

	cart, err := service.GetCart(cartUser)
	assert.NoError(t, err)
	assert.Empty(t, cart.Items)

	totalItems, err := service.TotalItems(cartUser)
	assert.NoError(t, err)
	assert.Equal(t, 0, totalItems)
}

func TestCartService_InsertionOrderPreserved(t *testing.T) {
	service := services.NewCartService(repositories.NewMockCartRepository())

	for _, id := range []string{"art-3", "art-1", "art-2"} {
		_, err := service.AddToCart(cartUser, snapshot(id, "10.00"))
		assert.NoError(t, err)
	}

	cart, err := service.GetCart(cartUser)
	assert.NoError(t, err)
	assert.Equal(t, "art-3", cart.Items[0].Artwork.ID)
	assert.Equal(t, "art-1", cart.Items[1].Artwork.ID)
	assert.Equal(t, "art-2", cart.Items[2].Artwork.ID)
}

func TestCartService_SurvivesServiceRestart(t *testing.T) {
	repo := repositories.NewMockCartRepository()

	service := services.NewCartService(repo)
	_, err := service.AddToCart(cartUser, snapshot("art-1", "10.00"))
	assert.NoError(t, err)

	// A new service over the same repository sees the persisted items.
	restarted := services.NewCartService(repo)
	cart, err := restarted.GetCart(cartUser)
	assert.NoError(t, err)
	assert.Len(t, cart.Items, 1)
}

func TestCartService_ToggleCart(t *testing.T) {
	service := services.NewCartService(repositories.NewMockCartRepository())

	assert.True(t, service.ToggleCart(cartUser))
	assert.False(t, service.ToggleCart(cartUser))

	// The flag is per user.
	assert.True(t, service.ToggleCart("user-2"))
}

func TestCartService_CartsAreIsolatedPerUser(t *testing.T) {
	service := services.NewCartService(repositories.NewMockCartRepository())

	_, err := service.AddToCart("user-a", snapshot("art-1", "10.00"))
	assert.NoError(t, err)

	cart, err := service.GetCart("user-b")
	assert.NoError(t, err)
	assert.Empty(t, cart.Items)
}
