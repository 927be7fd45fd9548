package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/pospoint/terminal-api/internal/domain/entity"
	"github.com/pospoint/terminal-api/pkg/apperror"
)

// Client talks to the central POS backend over HTTP. All terminal traffic to
// the backend goes through here so offline handling stays in one place.
type Client struct {
	baseURL    string
	httpClient *http.Client

	mu    sync.RWMutex
	token string
}

// NewClient creates a new backend client
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// SetToken stores the bearer token attached to subsequent requests.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// Login authenticates an operator against the backend. A 401 maps to
// apperror.ErrInvalidCredentials; transport failures surface as-is so callers
// can fall back to the local credential cache.
func (c *Client) Login(ctx context.Context, username, password string) (*entity.Operator, error) {
	body := map[string]string{"username": username, "password": password}

	var result struct {
		Token    string          `json:"token"`
		Operator entity.Operator `json:"operator"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/login", body, &result); err != nil {
		return nil, err
	}

	if result.Token != "" {
		c.SetToken(result.Token)
	}
	return &result.Operator, nil
}

// CreateSale submits a sale payload and returns the backend's sale record.
func (c *Client) CreateSale(ctx context.Context, payload entity.SalePayload) (*entity.SaleResponse, error) {
	var result entity.SaleResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/sales", payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SearchCustomers queries the backend customer directory.
func (c *Client) SearchCustomers(ctx context.Context, term string) ([]entity.Customer, error) {
	path := "/api/v1/customers?search=" + url.QueryEscape(term)

	var result struct {
		Data []entity.Customer `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return result.Data, nil
}

// ListBusinesses returns the businesses the signed-in operator can open.
func (c *Client) ListBusinesses(ctx context.Context) ([]entity.Business, error) {
	var result struct {
		Data []entity.Business `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/businesses", nil, &result); err != nil {
		return nil, err
	}
	return result.Data, nil
}

// ListOutlets returns the outlets of a business.
func (c *Client) ListOutlets(ctx context.Context, businessID string) ([]entity.Outlet, error) {
	path := "/api/v1/businesses/" + url.PathEscape(businessID) + "/outlets"

	var result struct {
		Data []entity.Outlet `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return result.Data, nil
}

// CurrentShift returns the open shift for an outlet, or nil when none is open.
func (c *Client) CurrentShift(ctx context.Context, outletID string) (*entity.Shift, error) {
	path := "/api/v1/outlets/" + url.PathEscape(outletID) + "/shifts/current"

	var result struct {
		Data *entity.Shift `json:"data"`
	}
	err := c.do(ctx, http.MethodGet, path, nil, &result)
	if err != nil {
		var appErr *apperror.AppError
		if apperror.IsAppError(err) {
			appErr = apperror.GetAppError(err)
			if appErr.Code == http.StatusNotFound {
				return nil, nil
			}
		}
		return nil, err
	}
	return result.Data, nil
}

// do performs one JSON round trip against the backend.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("backend: failed to encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("backend: failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.mu.RLock()
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	c.mu.RUnlock()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("backend: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return statusError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("backend: failed to decode response: %w", err)
		}
	}
	return nil
}

// statusError maps a backend error response to an AppError, keeping the
// backend's message when it sent one.
func statusError(resp *http.Response) error {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	_ = json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&payload)

	message := payload.Message
	if message == "" {
		message = payload.Error
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return apperror.ErrInvalidCredentials
	case http.StatusNotFound:
		if message == "" {
			return apperror.ErrNotFound
		}
		return apperror.NewAppError(http.StatusNotFound, message)
	default:
		if message == "" {
			message = fmt.Sprintf("backend returned status %d", resp.StatusCode)
		}
		return apperror.NewAppError(resp.StatusCode, message)
	}
}
