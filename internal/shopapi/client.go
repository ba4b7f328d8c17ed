package shopapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"fashionfuel/internal/domain"
)

// Client talks to the hosted catalog/order/review REST API. The remote
// schema is authoritative; responses are normalized into canonical domain
// types at decode time.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *Client) Products(ctx context.Context) ([]domain.Product, error) {
	var out []domain.Product
	if err := c.do(ctx, http.MethodGet, "/products", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Product(ctx context.Context, id string) (domain.Product, error) {
	var out domain.Product
	err := c.do(ctx, http.MethodGet, "/products/"+url.PathEscape(id), nil, &out)
	return out, err
}

func (c *Client) CreateProduct(ctx context.Context, p domain.Product) (domain.Product, error) {
	var out domain.Product
	err := c.do(ctx, http.MethodPost, "/products", p, &out)
	return out, err
}

func (c *Client) UpdateProduct(ctx context.Context, id string, p domain.Product) (domain.Product, error) {
	var out domain.Product
	err := c.do(ctx, http.MethodPut, "/products/"+url.PathEscape(id), p, &out)
	return out, err
}

func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/products/"+url.PathEscape(id), nil, nil)
}

func (c *Client) Orders(ctx context.Context) ([]domain.Order, error) {
	var out []domain.Order
	if err := c.do(ctx, http.MethodGet, "/orders", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Order(ctx context.Context, id string) (domain.Order, error) {
	var out domain.Order
	err := c.do(ctx, http.MethodGet, "/orders/"+url.PathEscape(id), nil, &out)
	return out, err
}

func (c *Client) CreateOrder(ctx context.Context, o domain.Order) (domain.Order, error) {
	var out domain.Order
	err := c.do(ctx, http.MethodPost, "/orders", o, &out)
	return out, err
}

func (c *Client) UpdateOrder(ctx context.Context, id string, o domain.Order) (domain.Order, error) {
	var out domain.Order
	err := c.do(ctx, http.MethodPut, "/orders/"+url.PathEscape(id), o, &out)
	return out, err
}

func (c *Client) Reviews(ctx context.Context, productID string) ([]domain.Review, error) {
	var out []domain.Review
	path := "/reviews?productId=" + url.QueryEscape(productID)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateReview(ctx context.Context, r domain.Review) (domain.Review, error) {
	var out domain.Review
	err := c.do(ctx, http.MethodPost, "/reviews", r, &out)
	return out, err
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("shopapi: %s %s: status %d: %s", method, path, resp.StatusCode, strings.TrimSpace(string(b)))
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
