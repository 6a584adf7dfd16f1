// Package client is a Go consumer of the storefront API. It owns the
// anonymous session token and keeps a short-lived local copy of the cart so
// repeated reads do not hammer the server.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"threadline-be/internal/cart"
	"threadline-be/internal/order"
	"threadline-be/internal/product"
	"threadline-be/internal/session"
)

// DefaultStaleTime is how long a fetched cart is served from the local copy
// before the next read goes back to the server.
const DefaultStaleTime = time.Minute

type Client struct {
	baseURL    string
	httpClient *http.Client
	store      TokenStore
	staleTime  time.Duration

	// authToken, when set, is sent as a bearer token and the server-side
	// identity takes over from the session token.
	authToken string

	mu        sync.Mutex
	token     string
	cached    *cart.View
	fetchedAt time.Time
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithStaleTime(d time.Duration) Option {
	return func(c *Client) { c.staleTime = d }
}

func WithAuthToken(token string) Option {
	return func(c *Client) { c.authToken = token }
}

func New(baseURL string, store TokenStore, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		store:      store,
		staleTime:  DefaultStaleTime,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// sessionToken returns the persisted token, minting and saving one on first
// use. Callers must hold c.mu.
func (c *Client) sessionToken() (string, error) {
	if c.token != "" {
		return c.token, nil
	}

	token, err := c.store.Load()
	if err != nil {
		return "", err
	}
	if token == "" {
		token = newSessionToken()
		if err := c.store.Save(token); err != nil {
			return "", err
		}
	}

	c.token = token
	return token, nil
}

type apiError struct {
	Message string `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	c.mu.Lock()
	token, err := c.sessionToken()
	c.mu.Unlock()
	if err != nil {
		return err
	}

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(session.SessionHeader, token)
	if c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Message != "" {
			return fmt.Errorf("%s %s: %s", method, path, apiErr.Message)
		}
		return fmt.Errorf("%s %s: unexpected status %d", method, path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Cart returns the caller's cart, served from the local copy while it is
// fresh. Mutations refresh the copy from their responses.
func (c *Client) Cart(ctx context.Context) (*cart.View, error) {
	c.mu.Lock()
	if c.cached != nil && time.Since(c.fetchedAt) < c.staleTime {
		view := c.cached
		c.mu.Unlock()
		return view, nil
	}
	c.mu.Unlock()

	var view cart.View
	if err := c.do(ctx, http.MethodGet, "/cart", nil, &view); err != nil {
		return nil, err
	}

	c.remember(&view)
	return &view, nil
}

func (c *Client) AddToCart(ctx context.Context, variantID string, quantity int, price float64) (*cart.View, error) {
	body := map[string]interface{}{
		"productVariantId": variantID,
		"quantity":         quantity,
		"price":            price,
	}

	var view cart.View
	if err := c.do(ctx, http.MethodPost, "/cart/add", body, &view); err != nil {
		return nil, err
	}

	c.remember(&view)
	return &view, nil
}

func (c *Client) UpdateCartItem(ctx context.Context, itemID string, quantity int) (*cart.View, error) {
	body := map[string]interface{}{
		"itemId":   itemID,
		"quantity": quantity,
	}

	var view cart.View
	if err := c.do(ctx, http.MethodPut, "/cart/update", body, &view); err != nil {
		return nil, err
	}

	c.remember(&view)
	return &view, nil
}

func (c *Client) RemoveCartItem(ctx context.Context, itemID string) (*cart.View, error) {
	var view cart.View
	path := "/cart/remove/" + url.PathEscape(itemID)
	if err := c.do(ctx, http.MethodDelete, path, nil, &view); err != nil {
		return nil, err
	}

	c.remember(&view)
	return &view, nil
}

// Invalidate drops the local cart copy so the next read hits the server.
func (c *Client) Invalidate() {
	c.mu.Lock()
	c.cached = nil
	c.mu.Unlock()
}

func (c *Client) remember(view *cart.View) {
	c.mu.Lock()
	c.cached = view
	c.fetchedAt = time.Now()
	c.mu.Unlock()
}

func (c *Client) Products(ctx context.Context) ([]*product.ListView, error) {
	var resp struct {
		Products []*product.ListView `json:"products"`
	}
	if err := c.do(ctx, http.MethodGet, "/products", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Products, nil
}

func (c *Client) Product(ctx context.Context, handle string) (*product.DetailView, error) {
	var resp struct {
		Product *product.DetailView `json:"product"`
	}
	if err := c.do(ctx, http.MethodGet, "/products/"+url.PathEscape(handle), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Product, nil
}

func (c *Client) Orders(ctx context.Context, email string) ([]order.Order, error) {
	var resp struct {
		Orders []order.Order `json:"orders"`
	}
	path := "/orders?email=" + url.QueryEscape(email)
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Orders, nil
}
