package repositories_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kefahamis/ArtisticShowcase-sub001/internal/models"
	"github.com/kefahamis/ArtisticShowcase-sub001/internal/repositories"

	"github.com/stretchr/testify/assert"
)

func sampleCart() *models.Cart {
	return &models.Cart{Items: []models.CartItem{
		{
			Artwork: models.ArtworkSnapshot{
				ID:       "art-1",
				Title:    "Blue Study",
				Price:    "450.00",
				ArtistID: "artist-1",
			},
			Quantity: 2,
		},
	}}
}

func TestFileCartRepository_SaveAndLoad(t *testing.T) {
	repo, err := repositories.NewFileCartRepository(t.TempDir())
	assert.NoError(t, err)

	assert.NoError(t, repo.Save("user-1", sampleCart()))

	cart, err := repo.Load("user-1")
	assert.NoError(t, err)
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, "art-1", cart.Items[0].Artwork.ID)
	assert.Equal(t, "450.00", cart.Items[0].Artwork.Price)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestFileCartRepository_LoadMissingYieldsEmptyCart(t *testing.T) {
	repo, err := repositories.NewFileCartRepository(t.TempDir())
	assert.NoError(t, err)

	cart, err := repo.Load("nobody")
	assert.NoError(t, err)
	assert.NotNil(t, cart.Items)
	assert.Empty(t, cart.Items)
}

func TestFileCartRepository_MalformedSnapshotDegradesToEmpty(t *testing.T) {
	dir := t.TempDir()
	repo, err := repositories.NewFileCartRepository(dir)
	assert.NoError(t, err)

	err = os.WriteFile(filepath.Join(dir, "cart-user-1.json"), []byte("{not json"), 0o644)
	assert.NoError(t, err)

	// Corrupt data is discarded, not surfaced as an error.
	cart, err := repo.Load("user-1")
	assert.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestFileCartRepository_SaveLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	repo, err := repositories.NewFileCartRepository(dir)
	assert.NoError(t, err)

	// A stale temp file from an interrupted write must not get in the way.
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "cart-user-1.json.tmp"), []byte(`{"items":[`), 0o644))

	assert.NoError(t, repo.Save("user-1", sampleCart()))

	// The snapshot landed in one piece and the temp file is gone.
	_, err = os.Stat(filepath.Join(dir, "cart-user-1.json.tmp"))
	assert.True(t, os.IsNotExist(err))

	cart, err := repo.Load("user-1")
	assert.NoError(t, err)
	assert.Len(t, cart.Items, 1)
}

func TestFileCartRepository_SaveOverwrites(t *testing.T) {
	repo, err := repositories.NewFileCartRepository(t.TempDir())
	assert.NoError(t, err)

	assert.NoError(t, repo.Save("user-1", sampleCart()))
	assert.NoError(t, repo.Save("user-1", &models.Cart{Items: []models.CartItem{}}))

	cart, err := repo.Load("user-1")
	assert.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestFileCartRepository_DeleteIsIdempotent(t *testing.T) {
	repo, err := repositories.NewFileCartRepository(t.TempDir())
	assert.NoError(t, err)

	assert.NoError(t, repo.Save("user-1", sampleCart()))
	assert.NoError(t, repo.Delete("user-1"))

	cart, err := repo.Load("user-1")
	assert.NoError(t, err)
	assert.Empty(t, cart.Items)

	assert.NoError(t, repo.Delete("user-1"))
}

func TestFileCartRepository_CartsAreIsolated(t *testing.T) {
	repo, err := repositories.NewFileCartRepository(t.TempDir())
	assert.NoError(t, err)

	assert.NoError(t, repo.Save("user-a", sampleCart()))

	cart, err := repo.Load("user-b")
	assert.NoError(t, err)
	assert.Empty(t, cart.Items)
}
