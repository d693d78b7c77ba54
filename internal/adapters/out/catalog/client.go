// Package catalog checks category ids against the remote category catalog service.
package catalog

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"workmarket/internal/core/domain/model/kernel"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const (
	DefaultTimeout = 3 * time.Second
	retryCount     = 2
)

type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client implements ports.CategoryChecker over GET /api/v1/categories/{id}:
// 200 means the category exists, 404 that it does not. Any other answer is an error.
type Client struct {
	http   *resty.Client
	logger *zap.Logger
}

func NewClient(cfg Config, logger *zap.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	c := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(timeout).
		SetRetryCount(retryCount).
		SetHeader("Accept", "application/json").
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() >= http.StatusInternalServerError
		})

	return &Client{http: c, logger: logger.Named("catalog")}
}

func (c *Client) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("id", id.String()).
		Get("/api/v1/categories/{id}")
	if err != nil {
		return false, fmt.Errorf("category catalog request failed: %w", err)
	}

	switch resp.StatusCode() {
	case http.StatusOK:
		return true, nil
	case http.StatusNotFound:
		c.logger.Debug("category not found", zap.Stringer("categoryId", id))
		return false, nil
	default:
		return false, fmt.Errorf("category catalog answered %d for %s", resp.StatusCode(), id)
	}
}
