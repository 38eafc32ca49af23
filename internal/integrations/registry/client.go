package registry

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client is the HTTP client for the platform registry: the backend that
// owns barber profiles and bookings. Every call is attempted exactly once;
// retries are a caller decision.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient creates a registry client with the given base URL and timeout.
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// apiError carries a non-2xx backend response so callers can map the
// status to the right sentinel.
type apiError struct {
	Status  int
	Message string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("registry returned status %d: %s", e.Status, e.Message)
}

// call executes one request against the registry. 2xx responses have their
// data payload decoded into out (when non-nil); other statuses come back
// as *apiError with the server's own message.
func (c *Client) call(ctx context.Context, method, path, userID string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: failed to encode request body: %v", ErrInternal, err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to read response: %v", ErrInvalidResponse, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var env envelope
		_ = json.Unmarshal(raw, &env)
		return &apiError{Status: resp.StatusCode, Message: env.Message}
	}

	if out == nil {
		return nil
	}

	var wrapper struct {
		envelope
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &wrapper); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	if err := json.Unmarshal(wrapper.Data, out); err != nil {
		return fmt.Errorf("%w: failed to decode response data: %v", ErrInvalidResponse, err)
	}

	return nil
}

// mapAPIError converts an *apiError into the package's sentinel errors.
// notFound is the sentinel used for a 404 on the called endpoint.
func mapAPIError(err error, notFound error) error {
	var apiErr *apiError
	if !errors.As(err, &apiErr) {
		return err
	}

	switch apiErr.Status {
	case http.StatusNotFound:
		return notFound
	case http.StatusConflict:
		return ErrSlotTaken
	default:
		if apiErr.Message != "" {
			return fmt.Errorf("%w: %s", ErrUpstream, apiErr.Message)
		}
		return fmt.Errorf("%w: unexpected status code %d", ErrInvalidResponse, apiErr.Status)
	}
}

// GetNearby fetches registered barbers within radiusKm of the given point.
func (c *Client) GetNearby(ctx context.Context, lat, lng, radiusKm float64) ([]*Barber, error) {
	path := fmt.Sprintf("/barbers/nearby?lat=%f&lng=%f&radius=%f", lat, lng, radiusKm)

	var barbers []*Barber
	if err := c.call(ctx, http.MethodGet, path, "", nil, &barbers); err != nil {
		return nil, mapAPIError(err, ErrBarberNotFound)
	}

	return barbers, nil
}

// GetBarberByID fetches a single registered barber profile.
func (c *Client) GetBarberByID(ctx context.Context, barberID string) (*Barber, error) {
	var barber Barber
	if err := c.call(ctx, http.MethodGet, "/barbers/"+barberID, "", nil, &barber); err != nil {
		return nil, mapAPIError(err, ErrBarberNotFound)
	}

	return &barber, nil
}

// UpdateAvailability updates a barber's booking options (dashboard action).
func (c *Client) UpdateAvailability(ctx context.Context, userID string, immediateBooking bool) (*Barber, error) {
	body := map[string]interface{}{
		"availability": map[string]bool{"immediateBooking": immediateBooking},
	}

	var barber Barber
	if err := c.call(ctx, http.MethodPut, "/barbers/me/availability", userID, body, &barber); err != nil {
		return nil, mapAPIError(err, ErrBarberNotFound)
	}

	return &barber, nil
}

// UpdateStatus sets a barber's live status (available, busy, offline).
func (c *Client) UpdateStatus(ctx context.Context, userID string, status string) (*Barber, error) {
	body := map[string]string{"status": status}

	var barber Barber
	if err := c.call(ctx, http.MethodPut, "/barbers/me/status", userID, body, &barber); err != nil {
		return nil, mapAPIError(err, ErrBarberNotFound)
	}

	return &barber, nil
}

// GetStatistics fetches the barber dashboard statistics.
func (c *Client) GetStatistics(ctx context.Context, userID string) (*Statistics, error) {
	var stats Statistics
	if err := c.call(ctx, http.MethodGet, "/barbers/me/statistics", userID, nil, &stats); err != nil {
		return nil, mapAPIError(err, ErrBarberNotFound)
	}

	return &stats, nil
}
