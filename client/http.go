package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

const defaultBaseURL = "http://localhost:8000/api/v1"

// HTTPGateway talks to a running booking backend. On a 401 it refreshes the
// token pair once and retries the request; if the refresh fails the stored
// credentials are cleared and the original error is returned, so the caller
// can send the user back to login.
type HTTPGateway struct {
	HTTP    *http.Client
	BaseURL string

	mu           sync.Mutex
	accessToken  string
	refreshToken string
}

func NewHTTPGateway(baseURL string) *HTTPGateway {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &HTTPGateway{
		HTTP:    &http.Client{Timeout: 15 * time.Second},
		BaseURL: strings.TrimRight(baseURL, "/"),
	}
}

// SetTokens stores the credential pair used for authenticated calls.
func (g *HTTPGateway) SetTokens(access, refresh string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.accessToken = access
	g.refreshToken = refresh
}

func (g *HTTPGateway) tokens() (string, string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.accessToken, g.refreshToken
}

// Login authenticates and stores the returned token pair.
func (g *HTTPGateway) Login(ctx context.Context, email, password string) error {
	var pair TokenPair
	err := g.doJSON(ctx, http.MethodPost, "/auth/login", nil,
		map[string]string{"email": email, "password": password}, &pair)
	if err != nil {
		return err
	}
	g.SetTokens(pair.AccessToken, pair.RefreshToken)
	return nil
}

func (g *HTTPGateway) ListRooms(ctx context.Context) ([]Room, error) {
	var rooms []Room
	if err := g.doJSON(ctx, http.MethodGet, "/rooms", nil, nil, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

func (g *HTTPGateway) GetRoom(ctx context.Context, roomID uint) (*Room, error) {
	var room Room
	path := fmt.Sprintf("/rooms/%d", roomID)
	if err := g.doJSON(ctx, http.MethodGet, path, nil, nil, &room); err != nil {
		return nil, err
	}
	return &room, nil
}

func (g *HTTPGateway) CheckAvailability(ctx context.Context, roomID uint, checkIn, checkOut string) (bool, error) {
	q := url.Values{}
	q.Set("check_in", coerceStayDate(checkIn))
	q.Set("check_out", coerceStayDate(checkOut))

	var resp AvailabilityResponse
	path := fmt.Sprintf("/rooms/%d/availability", roomID)
	if err := g.doJSON(ctx, http.MethodGet, path, q, nil, &resp); err != nil {
		return false, err
	}
	return resp.Available, nil
}

func (g *HTTPGateway) CreateBooking(ctx context.Context, req StayRequest) (*Booking, error) {
	req.CheckInDate = coerceStayDate(req.CheckInDate)
	req.CheckOutDate = coerceStayDate(req.CheckOutDate)

	var booking Booking
	if err := g.doJSON(ctx, http.MethodPost, "/bookings", nil, req, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (g *HTTPGateway) GetBooking(ctx context.Context, bookingID uint) (*Booking, error) {
	var booking Booking
	path := fmt.Sprintf("/bookings/%d", bookingID)
	if err := g.doJSON(ctx, http.MethodGet, path, nil, nil, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (g *HTTPGateway) UpdateBooking(ctx context.Context, bookingID uint, upd BookingUpdate) (*Booking, error) {
	var booking Booking
	path := fmt.Sprintf("/admin/bookings/%d", bookingID)
	if err := g.doJSON(ctx, http.MethodPatch, path, nil, upd, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (g *HTTPGateway) CancelBooking(ctx context.Context, bookingID uint) error {
	path := fmt.Sprintf("/bookings/%d", bookingID)
	return g.doJSON(ctx, http.MethodDelete, path, nil, nil, nil)
}

func (g *HTTPGateway) newRequest(ctx context.Context, method, path string, query url.Values, body []byte) (*http.Request, error) {
	u := g.BaseURL + "/" + strings.TrimPrefix(path, "/")
	if query != nil {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if access, _ := g.tokens(); access != "" {
		req.Header.Set("Authorization", "Bearer "+access)
	}
	return req, nil
}

func (g *HTTPGateway) doJSON(ctx context.Context, method, path string, query url.Values, body, dest any) error {
	var payload []byte
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		payload = b
	}

	req, err := g.newRequest(ctx, method, path, query, payload)
	if err != nil {
		return err
	}

	resp, err := g.HTTP.Do(req)
	if err != nil {
		return err
	}

	if resp.StatusCode == http.StatusUnauthorized && path != "/auth/refresh" {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		if refreshErr := g.refresh(ctx); refreshErr != nil {
			return &APIError{StatusCode: http.StatusUnauthorized}
		}

		req, err = g.newRequest(ctx, method, path, query, payload)
		if err != nil {
			return err
		}
		resp, err = g.HTTP.Do(req)
		if err != nil {
			return err
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newAPIError(resp)
	}

	if dest == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		if err == io.EOF {
			return nil
		}
		return err
	}
	return nil
}

// refresh trades the stored refresh token for a new pair. One attempt; on
// failure the stored credentials are cleared.
func (g *HTTPGateway) refresh(ctx context.Context) error {
	_, refresh := g.tokens()
	if refresh == "" {
		return &APIError{StatusCode: http.StatusUnauthorized}
	}

	payload, err := json.Marshal(map[string]string{"refresh_token": refresh})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		g.BaseURL+"/auth/refresh", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := g.HTTP.Do(req)
	if err != nil {
		g.SetTokens("", "")
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		g.SetTokens("", "")
		return newAPIError(resp)
	}

	var pair TokenPair
	if err := json.NewDecoder(resp.Body).Decode(&pair); err != nil {
		g.SetTokens("", "")
		return err
	}
	g.SetTokens(pair.AccessToken, pair.RefreshToken)
	return nil
}

func newAPIError(resp *http.Response) *APIError {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return apiErr
	}
	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		apiErr.Detail = envelope.Detail
	}
	return apiErr
}
