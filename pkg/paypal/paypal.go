package paypal

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync"
	"time"
)

// Sentinel errors surfaced to callers. ErrSDKUnavailable means the one-time
// provider initialization failed; there is no automatic retry, the caller
// must start over. ErrNotEligible means the funding/intent combination is not
// supported for this configuration.
var (
	ErrSDKUnavailable = errors.New("payment provider is unavailable")
	ErrNotEligible    = errors.New("payment method not available")
	ErrNoOrder        = errors.New("no provider order created for this session")
	ErrSessionClosed  = errors.New("payment session has been closed")
)

// IntentCapture is the only transaction intent this integration supports.
const IntentCapture = "CAPTURE"

// Config holds provider connection details.
type Config struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
	Intent       string // defaults to IntentCapture
	HTTPClient   *http.Client
}

// Client wraps the provider's REST API. The provider behaves like a global
// singleton: the client owns it exclusively and allows at most one mounted
// button session at a time. Mounting with new parameters tears the previous
// session down first, so a stale session can never reference a stale amount.
type Client struct {
	cfg        Config
	httpClient *http.Client

	mu          sync.Mutex
	accessToken string
	active      *ButtonSession
}

// NewClient creates a new provider client. No network traffic happens until
// the first Mount.
func NewClient(cfg Config) *Client {
	if cfg.Intent == "" {
		cfg.Intent = IntentCapture
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		cfg:        cfg,
		httpClient: httpClient,
	}
}

// ButtonSession is one mounted payment button, parameterized by a fixed
// amount and currency. The amount is frozen at mount time; changing it
// requires a fresh Mount (which closes this session).
type ButtonSession struct {
	client   *Client
	amount   string
	currency string
	intent   string

	mu      sync.Mutex
	orderID string
	closed  bool
}

// Capture is the provider's record of a captured transaction.
type Capture struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// ensureInit performs the one-time provider initialization: it fetches an
// OAuth token and verifies the expected entry point is present. A failed
// initialization is not retried automatically.
func (c *Client) ensureInitLocked(ctx context.Context) error {
	if c.accessToken != "" {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.cfg.BaseURL+"/v1/oauth2/token", bytes.NewBufferString("grant_type=client_credentials"))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSDKUnavailable, err)
	}
	req.SetBasicAuth(c.cfg.ClientID, c.cfg.ClientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSDKUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: token endpoint returned %d: %s", ErrSDKUnavailable, resp.StatusCode, string(body))
	}

	var tokenResp struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return fmt.Errorf("%w: %v", ErrSDKUnavailable, err)
	}
	if tokenResp.AccessToken == "" {
		// The provider answered but without the expected entry point.
		return fmt.Errorf("%w: no access token in response", ErrSDKUnavailable)
	}

	c.accessToken = tokenResp.AccessToken
	log.Printf("Payment provider initialized (intent=%s)", c.cfg.Intent)
	return nil
}

// Mount creates a button session for the given amount and currency. Any
// previously mounted session is closed first; the provider never holds two
// live sessions. Returns ErrNotEligible when the funding/intent combination
// is unsupported.
func (c *Client) Mount(ctx context.Context, amount string, currency string) (*ButtonSession, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.ensureInitLocked(ctx); err != nil {
		return nil, err
	}

	if c.active != nil {
		if err := c.active.closeInternal(); err != nil {
			log.Printf("Warning: failed to tear down previous payment session: %v", err)
		}
		c.active = nil
	}

	session := &ButtonSession{
		client:   c,
		amount:   amount,
		currency: currency,
		intent:   c.cfg.Intent,
	}
	if !session.IsEligible() {
		return nil, ErrNotEligible
	}

	c.active = session
	return session, nil
}

// Close tears down the active session, if any. Runs on shutdown so no
// session outlives the process.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.active == nil {
		return nil
	}
	err := c.active.closeInternal()
	c.active = nil
	return err
}

func (c *Client) doJSON(ctx context.Context, method, path string, payload interface{}, out interface{}) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewBuffer(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	c.mu.Lock()
	token := c.accessToken
	c.mu.Unlock()
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("provider request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("provider returned %d: %s", resp.StatusCode, string(respBody))
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode provider response: %w", err)
		}
	}
	return nil
}

// IsEligible reports whether the button can be rendered for the session's
// funding/intent combination. Only capture-intent transactions with a
// three-letter currency code are supported.
func (s *ButtonSession) IsEligible() bool {
	return s.intent == IntentCapture && len(s.currency) == 3
}

// CreateOrder creates the provider-side order for this session, echoing back
// exactly the amount and currency the session was mounted with. There is a
// single purchase unit and no re-pricing at this layer.
func (s *ButtonSession) CreateOrder(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return "", ErrSessionClosed
	}
	if s.orderID != "" {
		return s.orderID, nil
	}

	payload := map[string]interface{}{
		"intent": s.intent,
		"purchase_units": []map[string]interface{}{
			{
				"amount": map[string]string{
					"currency_code": s.currency,
					"value":         s.amount,
				},
			},
		},
	}

	var created struct {
		ID string `json:"id"`
	}
	if err := s.client.doJSON(ctx, http.MethodPost, "/v2/checkout/orders", payload, &created); err != nil {
		return "", fmt.Errorf("failed to create provider order: %w", err)
	}
	if created.ID == "" {
		return "", fmt.Errorf("provider returned an order without an id")
	}

	s.orderID = created.ID
	return s.orderID, nil
}

// Capture captures the session's provider order. Success is signalled only
// when the captured transaction's status is exactly COMPLETED; any other
// status is an error, never a silent success.
func (s *ButtonSession) Capture(ctx context.Context) (*Capture, error) {
	s.mu.Lock()
	orderID := s.orderID
	closed := s.closed
	s.mu.Unlock()

	if closed {
		return nil, ErrSessionClosed
	}
	if orderID == "" {
		return nil, ErrNoOrder
	}

	var capture Capture
	if err := s.client.doJSON(ctx, http.MethodPost, "/v2/checkout/orders/"+orderID+"/capture", nil, &capture); err != nil {
		return nil, fmt.Errorf("failed to capture payment: %w", err)
	}
	if capture.Status != "COMPLETED" {
		return nil, fmt.Errorf("payment capture returned status %q", capture.Status)
	}
	if capture.ID == "" {
		capture.ID = orderID
	}
	return &capture, nil
}

// Amount returns the amount the session was mounted with.
func (s *ButtonSession) Amount() string { return s.amount }

// Currency returns the currency the session was mounted with.
func (s *ButtonSession) Currency() string { return s.currency }

// Close tears the session down. Closing twice is a no-op.
func (s *ButtonSession) Close() error {
	s.client.mu.Lock()
	if s.client.active == s {
		s.client.active = nil
	}
	s.client.mu.Unlock()
	return s.closeInternal()
}

func (s *ButtonSession) closeInternal() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	return nil
}
