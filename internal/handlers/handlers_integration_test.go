package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/kefahamis/ArtisticShowcase-sub001/internal/handlers"
	"github.com/kefahamis/ArtisticShowcase-sub001/internal/middleware"
	"github.com/kefahamis/ArtisticShowcase-sub001/internal/models"
	"github.com/kefahamis/ArtisticShowcase-sub001/internal/repositories"
	"github.com/kefahamis/ArtisticShowcase-sub001/internal/services"
	"github.com/kefahamis/ArtisticShowcase-sub001/pkg/paypal"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// stubSession is a scripted services.PaymentSession for the integration tests.
type stubSession struct {
	captureStatus string
}

func (s *stubSession) CreateOrder(ctx context.Context) (string, error) {
	return "PP-ORDER-1", nil
}

func (s *stubSession) Capture(ctx context.Context) (*paypal.Capture, error) {
	if s.captureStatus != "COMPLETED" {
		return nil, fmt.Errorf("payment capture returned status %q", s.captureStatus)
	}
	return &paypal.Capture{ID: "PAY-1", Status: "COMPLETED"}, nil
}

func (s *stubSession) Close() error { return nil }

type stubGateway struct {
	captureStatus string
}

func (g *stubGateway) Mount(ctx context.Context, amount string, currency string) (services.PaymentSession, error) {
	status := g.captureStatus
	if status == "" {
		status = "COMPLETED"
	}
	return &stubSession{captureStatus: status}, nil
}

// setupApp wires a Fiber app the way main does, with in-memory SQLite for
// users, in-memory repositories for gallery data and a stub payment gateway.
func setupApp(dbName string, gateway *stubGateway) (*fiber.App, *services.AuthService, error) {
	viper.SetDefault("JWT_SECRET", "test_jwt_secret")
	viper.AutomaticEnv()
	jwtSecret := viper.GetString("JWT_SECRET")

	// Each test gets its own named in-memory database so users do not leak
	// between tests.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", dbName)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to in-memory database: %w", err)
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		return nil, nil, fmt.Errorf("failed to auto-migrate database: %w", err)
	}

	userRepo := repositories.NewGORMUserRepository(db)
	artistRepo := repositories.NewMockArtistRepository()
	artworkRepo := repositories.NewMockArtworkRepository()
	exhibitionRepo := repositories.NewMockExhibitionRepository()
	orderRepo := repositories.NewMockOrderRepository()
	cartRepo := repositories.NewMockCartRepository()

	authService := services.NewAuthService(userRepo, jwtSecret)
	artistService := services.NewArtistService(artistRepo)
	artworkService := services.NewArtworkService(artworkRepo, artistRepo)
	exhibitionService := services.NewExhibitionService(exhibitionRepo)
	cartService := services.NewCartService(cartRepo)
	orderService := services.NewOrderService(orderRepo, artworkRepo)
	checkoutService := services.NewCheckoutService(orderRepo, cartService, gateway, nil, "USD")

	authHandler := handlers.NewAuthHandler(authService)
	artistHandler := handlers.NewArtistHandler(artistService)
	artworkHandler := handlers.NewArtworkHandler(artworkService)
	exhibitionHandler := handlers.NewExhibitionHandler(exhibitionService)
	cartHandler := handlers.NewCartHandler(cartService, artworkService)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)
	orderHandler := handlers.NewOrderHandler(orderService)

	app := fiber.New()
	apiV1 := app.Group("/api/v1")

	authHandler.RegisterRoutes(apiV1)
	artistHandler.RegisterPublicRoutes(apiV1)
	artworkHandler.RegisterPublicRoutes(apiV1)
	exhibitionHandler.RegisterPublicRoutes(apiV1)

	protected := apiV1.Group("", middleware.AuthRequired(authService))
	cartHandler.RegisterRoutes(protected)
	checkoutHandler.RegisterRoutes(protected)
	orderHandler.RegisterRoutes(protected)

	admin := apiV1.Group("/admin", middleware.AuthRequired(authService), middleware.AdminRequired())
	artistHandler.RegisterAdminRoutes(admin)
	artworkHandler.RegisterAdminRoutes(admin)
	exhibitionHandler.RegisterAdminRoutes(admin)
	orderHandler.RegisterAdminRoutes(admin)

	seedGalleryForTest(artistRepo, artworkRepo)

	return app, authService, nil
}

// seedGalleryForTest populates artists and artworks for tests.
func seedGalleryForTest(artistRepo repositories.ArtistRepository, artworkRepo repositories.ArtworkRepository) {
	artists := []models.Artist{
		{ID: "artist-1", Name: "Mara Ellis", Status: models.ArtistStatusApproved},
		{ID: "artist-2", Name: "Theo Brandt", Status: models.ArtistStatusPending},
	}
	for i := range artists {
		if err := artistRepo.Create(&artists[i]); err != nil {
			log.Printf("Failed to seed artist %s: %v", artists[i].Name, err)
		}
	}

	artworks := []models.Artwork{
		{ID: "art-1", Title: "Blue Study", Price: "450.00", ArtistID: "artist-1", Availability: models.ArtworkAvailable},
		{ID: "art-2", Title: "Red Field", Price: "900.00", ArtistID: "artist-1", Availability: models.ArtworkSold},
		{ID: "art-3", Title: "Quiet Harbor", Price: "600.00", ArtistID: "artist-2", Availability: models.ArtworkAvailable},
	}
	for i := range artworks {
		if err := artworkRepo.Create(&artworks[i]); err != nil {
			log.Printf("Failed to seed artwork %s: %v", artworks[i].Title, err)
		}
	}
}

// TestMain runs setup and teardown for all tests
func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	code := m.Run()
	os.Exit(code)
}

func postJSON(t *testing.T, app *fiber.App, path, token string, body interface{}) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		assert.NoError(t, err)
		reader = bytes.NewReader(jsonBody)
	}
	req := httptest.NewRequest(http.MethodPost, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	return resp
}

func getJSON(t *testing.T, app *fiber.App, path, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()
	var body map[string]interface{}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

// registerAndLogin creates a shopper through the API and returns their token.
func registerAndLogin(t *testing.T, app *fiber.App, username string) string {
	t.Helper()
	resp := postJSON(t, app, "/api/v1/auth/register", "", map[string]string{
		"username": username,
		"email":    username + "@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = postJSON(t, app, "/api/v1/auth/login", "", map[string]string{
		"username": username,
		"password": "password123",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	token, _ := body["token"].(string)
	assert.NotEmpty(t, token)
	return token
}

func TestAuthRegisterAndLogin(t *testing.T) {
	app, authService, err := setupApp("auth_flow", &stubGateway{})
	assert.NoError(t, err)

	resp := postJSON(t, app, "/api/v1/auth/register", "", map[string]string{
		"username": "collector",
		"email":    "collector@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	registerResp := decodeBody(t, resp)
	assert.Equal(t, "User registered successfully", registerResp["message"])

	// Duplicate registration conflicts.
	resp = postJSON(t, app, "/api/v1/auth/register", "", map[string]string{
		"username": "collector",
		"email":    "collector@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	resp = postJSON(t, app, "/api/v1/auth/login", "", map[string]string{
		"username": "collector",
		"password": "password123",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	loginResp := decodeBody(t, resp)
	token, _ := loginResp["token"].(string)
	assert.NotEmpty(t, token)

	claims, err := authService.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "collector", claims["username"])
	// Self-registration always yields a shopper, whatever the request says.
	assert.Equal(t, models.RoleShopper, claims["role"])
}

func TestPublicListingHidesUnapprovedAndSold(t *testing.T) {
	app, _, err := setupApp("public_listing", &stubGateway{})
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/artworks", nil)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var artworks []models.Artwork
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&artworks))
	resp.Body.Close()
	assert.Len(t, artworks, 1)
	assert.Equal(t, "art-1", artworks[0].ID)
}

func TestCartRequiresAuthentication(t *testing.T) {
	app, _, err := setupApp("cart_auth", &stubGateway{})
	assert.NoError(t, err)

	resp := getJSON(t, app, "/api/v1/cart", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	resp = postJSON(t, app, "/api/v1/cart/items", "", map[string]string{"artwork_id": "art-1"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestCartFlow(t *testing.T) {
	app, _, err := setupApp("cart_flow", &stubGateway{})
	assert.NoError(t, err)
	token := registerAndLogin(t, app, "cartuser")

	// Add an artwork.
	resp := postJSON(t, app, "/api/v1/cart/items", token, map[string]string{"artwork_id": "art-1"})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	cart := decodeBody(t, resp)
	assert.Equal(t, float64(1), cart["total_items"])
	assert.Equal(t, "450.00", cart["total_price"])

	// Adding the same artwork again increments the line.
	resp = postJSON(t, app, "/api/v1/cart/items", token, map[string]string{"artwork_id": "art-1"})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	cart = decodeBody(t, resp)
	assert.Equal(t, float64(2), cart["total_items"])
	assert.Equal(t, "900.00", cart["total_price"])
	assert.Len(t, cart["items"], 1)

	// Sold pieces are rejected.
	resp = postJSON(t, app, "/api/v1/cart/items", token, map[string]string{"artwork_id": "art-2"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	// Unknown pieces are a 404.
	resp = postJSON(t, app, "/api/v1/cart/items", token, map[string]string{"artwork_id": "art-99"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	// Update the quantity.
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/cart/items/art-1", bytes.NewReader([]byte(`{"quantity":3}`)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	httpResp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, httpResp.StatusCode)
	cart = decodeBody(t, httpResp)
	assert.Equal(t, float64(3), cart["total_items"])

	// Remove the line.
	req = httptest.NewRequest(http.MethodDelete, "/api/v1/cart/items/art-1", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	httpResp, err = app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, httpResp.StatusCode)
	cart = decodeBody(t, httpResp)
	assert.Equal(t, float64(0), cart["total_items"])
}

func TestCheckoutFlow(t *testing.T) {
	app, _, err := setupApp("checkout_flow", &stubGateway{})
	assert.NoError(t, err)
	token := registerAndLogin(t, app, "buyer")

	// Checkout with an empty cart fails before an order exists.
	resp := postJSON(t, app, "/api/v1/checkout", token, map[string]string{
		"customer_name":    "Jane Collector",
		"customer_email":   "jane@example.com",
		"customer_address": "12 Gallery Lane, Springfield",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// Fill the cart and submit.
	resp = postJSON(t, app, "/api/v1/cart/items", token, map[string]string{"artwork_id": "art-1"})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = postJSON(t, app, "/api/v1/checkout", token, map[string]string{
		"customer_name":    "Jane Collector",
		"customer_email":   "jane@example.com",
		"customer_address": "12 Gallery Lane, Springfield",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	session := decodeBody(t, resp)
	assert.Equal(t, "payment_in_progress", session["state"])
	assert.Equal(t, "450.00", session["amount"])
	orderID, _ := session["order_id"].(string)
	assert.NotEmpty(t, orderID)

	// Capture the payment; the checkout reconciles and the cart empties.
	resp = postJSON(t, app, "/api/v1/checkout/payment/capture", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	session = decodeBody(t, resp)
	assert.Equal(t, "payment_reconciled", session["state"])
	assert.Equal(t, "PAY-1", session["payment_id"])

	resp = getJSON(t, app, "/api/v1/cart", token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	cart := decodeBody(t, resp)
	assert.Equal(t, float64(0), cart["total_items"])

	// The reconciled order shows up in the shopper's order list.
	resp = getJSON(t, app, "/api/v1/orders", token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var orders []models.Order
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&orders))
	resp.Body.Close()
	assert.Len(t, orders, 1)
	assert.Equal(t, orderID, orders[0].ID)
	assert.Equal(t, models.OrderStatusCompleted, orders[0].Status)
}

func TestCheckoutPaymentFailureKeepsCartAndOrder(t *testing.T) {
	app, _, err := setupApp("checkout_failure", &stubGateway{captureStatus: "DECLINED"})
	assert.NoError(t, err)
	token := registerAndLogin(t, app, "unluckybuyer")

	resp := postJSON(t, app, "/api/v1/cart/items", token, map[string]string{"artwork_id": "art-1"})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = postJSON(t, app, "/api/v1/checkout", token, map[string]string{
		"customer_name":    "Jane Collector",
		"customer_email":   "jane@example.com",
		"customer_address": "12 Gallery Lane, Springfield",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// The capture fails; the shopper is told to retry and keeps the cart.
	resp = postJSON(t, app, "/api/v1/checkout/payment/capture", token, nil)
	assert.Equal(t, http.StatusPaymentRequired, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Contains(t, body["message"], "retry")

	resp = getJSON(t, app, "/api/v1/cart", token)
	cart := decodeBody(t, resp)
	assert.Equal(t, float64(1), cart["total_items"])

	// The checkout session stays on the created order.
	resp = getJSON(t, app, "/api/v1/checkout", token)
	session := decodeBody(t, resp)
	assert.Equal(t, "order_created", session["state"])
}

func TestCheckoutFormValidation(t *testing.T) {
	app, _, err := setupApp("checkout_validation", &stubGateway{})
	assert.NoError(t, err)
	token := registerAndLogin(t, app, "formbuyer")

	resp := postJSON(t, app, "/api/v1/cart/items", token, map[string]string{"artwork_id": "art-1"})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = postJSON(t, app, "/api/v1/checkout", token, map[string]string{
		"customer_name":    "J",
		"customer_email":   "not-an-email",
		"customer_address": "x",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "Validation failed", body["message"])
}

func TestAdminRoutesRequireAdminRole(t *testing.T) {
	app, authService, err := setupApp("admin_routes", &stubGateway{})
	assert.NoError(t, err)

	// A regular shopper is forbidden.
	shopperToken := registerAndLogin(t, app, "plainshopper")
	resp := getJSON(t, app, "/api/v1/admin/stats", shopperToken)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	// Admins are created out of band, not through the public register route.
	admin := &models.User{
		Username: "galleryadmin",
		Email:    "admin@example.com",
		Password: "password123",
		Role:     models.RoleAdmin,
	}
	assert.NoError(t, authService.RegisterUser(admin))

	resp = postJSON(t, app, "/api/v1/auth/login", "", map[string]string{
		"username": "galleryadmin",
		"password": "password123",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	adminToken, _ := decodeBody(t, resp)["token"].(string)
	assert.NotEmpty(t, adminToken)

	resp = getJSON(t, app, "/api/v1/admin/stats", adminToken)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	stats := decodeBody(t, resp)
	assert.Equal(t, float64(3), stats["total_artworks"])
	assert.Equal(t, float64(2), stats["available_artworks"])
}

func TestAdminArtistApprovalFlow(t *testing.T) {
	app, authService, err := setupApp("artist_approval", &stubGateway{})
	assert.NoError(t, err)

	admin := &models.User{
		Username: "curator",
		Email:    "curator@example.com",
		Password: "password123",
		Role:     models.RoleAdmin,
	}
	assert.NoError(t, authService.RegisterUser(admin))
	resp := postJSON(t, app, "/api/v1/auth/login", "", map[string]string{
		"username": "curator",
		"password": "password123",
	})
	adminToken, _ := decodeBody(t, resp)["token"].(string)
	assert.NotEmpty(t, adminToken)

	// The pending artist is invisible publicly.
	resp = getJSON(t, app, "/api/v1/artists", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var artists []models.Artist
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&artists))
	resp.Body.Close()
	assert.Len(t, artists, 1)

	// Approve them.
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/admin/artists/artist-2/approve", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	httpResp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, httpResp.StatusCode)
	httpResp.Body.Close()

	// Now both artists are public.
	resp = getJSON(t, app, "/api/v1/artists", "")
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&artists))
	resp.Body.Close()
	assert.Len(t, artists, 2)
}
