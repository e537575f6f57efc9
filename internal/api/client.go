// Package api is the client for the pousada's REST backend. All business
// rules (availability, double-booking prevention, pricing) live server-side;
// this client only shapes requests and normalizes responses.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pousadamaresia/maresia/internal/booking"
)

// Client talks to the pousada API.
type Client struct {
	hc      *http.Client
	baseURL string
}

// APIError carries a server-provided failure. Message is surfaced to the
// user verbatim when present.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s (status=%d)", e.Message, e.Status)
	}
	return fmt.Sprintf("request failed (status=%d)", e.Status)
}

// New creates a client for the given base URL, e.g. "http://localhost:3001/api".
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		hc:      &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// AvailableRooms fetches the rooms free for the stay's date range and returns
// them normalized. Party-size and type filtering happen client-side, in the
// booking package; the endpoint only understands dates.
func (c *Client) AvailableRooms(ctx context.Context, stay booking.Stay) ([]booking.RoomOffer, error) {
	query := map[string]string{
		"checkIn":  strings.TrimSpace(stay.CheckIn),
		"checkOut": strings.TrimSpace(stay.CheckOut),
	}
	status, body, err := c.do(ctx, http.MethodGet, "/rooms/available", query, nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, apiError(status, body)
	}

	offers, err := booking.DecodeRooms(body)
	if err != nil {
		return nil, fmt.Errorf("decoding availability response: %w", err)
	}
	return offers, nil
}

// CreateReservation posts the assembled reservation request and returns the
// created record. Server failures come back as *APIError so callers can show
// the backend's message.
func (c *Client) CreateReservation(ctx context.Context, req booking.Request) (booking.Confirmation, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return booking.Confirmation{}, fmt.Errorf("encoding reservation request: %w", err)
	}

	status, body, err := c.do(ctx, http.MethodPost, "/reservations/public", nil, payload)
	if err != nil {
		return booking.Confirmation{}, err
	}
	if status >= 400 {
		return booking.Confirmation{}, apiError(status, body)
	}

	var conf booking.Confirmation
	if err := json.Unmarshal(body, &conf); err != nil {
		return booking.Confirmation{}, fmt.Errorf("decoding reservation response: %w", err)
	}
	return conf, nil
}

// apiError extracts the backend's error field when present.
func apiError(status int, body []byte) *APIError {
	var payload struct {
		Error string `json:"error"`
	}
	_ = json.Unmarshal(body, &payload)
	return &APIError{Status: status, Message: payload.Error}
}

func (c *Client) do(ctx context.Context, method, path string, query map[string]string, body []byte) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("accept", "application/json")
	if body != nil {
		req.Header.Set("content-type", "application/json")
	}

	if query != nil {
		q := req.URL.Query()
		for k, v := range query {
			q.Add(k, v)
		}
		req.URL.RawQuery = q.Encode()
	}

	res, err := c.hc.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer res.Body.Close()

	b, err := io.ReadAll(res.Body)
	if err != nil {
		return res.StatusCode, nil, err
	}
	return res.StatusCode, b, nil
}
