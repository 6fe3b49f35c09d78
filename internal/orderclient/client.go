// Package orderclient talks to the roomcraft backend over HTTP. Client
// satisfies room.OrderSubmitter, so a Room can submit straight to a server.
package orderclient

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"roomcraft/internal/domain"
	"roomcraft/internal/pricing"
	"roomcraft/internal/service"
)

type errorBody struct {
	Error string `json:"error"`
}

type Client struct {
	http *resty.Client
	log  *zap.Logger
}

// New creates a client for the API rooted at baseURL (without /api/v1).
// Failed requests are not retried: the user decides when to try again.
func New(baseURL string, timeout time.Duration, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	c := resty.New().
		SetBaseURL(baseURL+"/api/v1").
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	return &Client{http: c, log: log.Named("orderclient")}
}

// do выполняет запрос и переводит HTTP-статус обратно в доменную ошибку
func (c *Client) do(req *resty.Request, method, path string) error {
	var apiErr errorBody
	resp, err := req.SetError(&apiErr).Execute(method, path)
	if err != nil {
		c.log.Warn("backend call failed", zap.String("method", method), zap.String("path", path), zap.Error(err))
		return fmt.Errorf("%w: %v", domain.ErrTransient, err)
	}
	if !resp.IsError() {
		return nil
	}
	msg := apiErr.Error
	if msg == "" {
		msg = resp.Status()
	}
	c.log.Debug("backend returned error",
		zap.String("path", path),
		zap.Int("status_code", resp.StatusCode()),
		zap.String("error", msg),
	)
	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", domain.ErrValidation, msg)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", domain.ErrNotFound, msg)
	case http.StatusServiceUnavailable:
		return fmt.Errorf("%w: %s", domain.ErrTransient, msg)
	default:
		return fmt.Errorf("backend error %d: %s", resp.StatusCode(), msg)
	}
}

// SubmitOrder posts the room contents. The returned order carries the
// server-computed total.
func (c *Client) SubmitOrder(ctx context.Context, items []domain.PlacedItem, clientTotal float64) (*domain.Order, error) {
	var o domain.Order
	req := c.http.R().SetContext(ctx).
		SetBody(map[string]any{"items": items, "client_total": clientTotal}).
		SetResult(&o)
	if err := c.do(req, resty.MethodPost, "/orders"); err != nil {
		return nil, err
	}
	return &o, nil
}

func (c *Client) ListOrders(ctx context.Context) ([]domain.Order, error) {
	var out []domain.Order
	if err := c.do(c.http.R().SetContext(ctx).SetResult(&out), resty.MethodGet, "/orders"); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	var o domain.Order
	req := c.http.R().SetContext(ctx).
		SetPathParam("id", id).
		SetBody(map[string]string{"status": string(status)}).
		SetResult(&o)
	if err := c.do(req, resty.MethodPatch, "/orders/{id}/status"); err != nil {
		return nil, err
	}
	return &o, nil
}

func (c *Client) Categories(ctx context.Context) ([]domain.Category, error) {
	var out []domain.Category
	if err := c.do(c.http.R().SetContext(ctx).SetResult(&out), resty.MethodGet, "/categories"); err != nil {
		return nil, err
	}
	return out, nil
}

// ListFurniture returns the catalog with base prices; an empty category
// lists everything.
func (c *Client) ListFurniture(ctx context.Context, category domain.Category) ([]service.PricedTemplate, error) {
	var out []service.PricedTemplate
	req := c.http.R().SetContext(ctx).SetResult(&out)
	if category != "" {
		req.SetQueryParam("category", string(category))
	}
	if err := c.do(req, resty.MethodGet, "/furniture"); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetFurniture(ctx context.Context, id string) (*domain.FurnitureTemplate, error) {
	var t domain.FurnitureTemplate
	req := c.http.R().SetContext(ctx).SetPathParam("id", id).SetResult(&t)
	if err := c.do(req, resty.MethodGet, "/furniture/{id}"); err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *Client) LaborMarkup(ctx context.Context) (float64, error) {
	var body struct {
		Markup float64 `json:"markup"`
	}
	if err := c.do(c.http.R().SetContext(ctx).SetResult(&body), resty.MethodGet, "/markup"); err != nil {
		return 0, err
	}
	return body.Markup, nil
}

// Quote prices one configuration on the server.
func (c *Client) Quote(ctx context.Context, q service.QuoteRequest) (*pricing.Breakdown, error) {
	var out pricing.Breakdown
	req := c.http.R().SetContext(ctx).SetBody(q).SetResult(&out)
	if err := c.do(req, resty.MethodPost, "/quote"); err != nil {
		return nil, err
	}
	return &out, nil
}
