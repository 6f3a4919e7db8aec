// Package facts fetches fun facts about numbers from a numbersapi-compatible trivia service.
package facts

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/and161185/numclass/internal/config"
	"github.com/and161185/numclass/internal/metrics"
	"github.com/and161185/numclass/internal/utils"
)

const (
	maxFactSize = 4 << 10
	retryDelay  = 200 * time.Millisecond
	// Lookups are best-effort, so at most one retry is ever made.
	maxRetries = 1
)

var (
	ErrDisabled     = errors.New("fact lookups disabled")
	ErrBadStatus    = errors.New("unexpected status")
	ErrEmptyFact    = errors.New("empty fact")
	ErrFactTooLarge = errors.New("fact too large")
)

// Client queries GET {base}/{n}/math and returns the plain-text body.
type Client struct {
	baseURL    string
	timeout    time.Duration
	retries    int
	httpClient *http.Client
	metrics    *metrics.Metrics
}

// NewClient builds a Client from the server configuration.
func NewClient(cfg *config.ServerConfig, m *metrics.Metrics) *Client {
	return NewClientWithHTTP(cfg, m, &http.Client{Timeout: cfg.FactsTimeout})
}

// NewClientWithHTTP lets tests inject a ready http.Client.
func NewClientWithHTTP(cfg *config.ServerConfig, m *metrics.Metrics, hc *http.Client) *Client {
	retries := cfg.FactsRetries
	if retries < 0 {
		retries = 0
	}
	if retries > maxRetries {
		retries = maxRetries
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.FactsURL, "/"),
		timeout:    cfg.FactsTimeout,
		retries:    retries,
		httpClient: hc,
		metrics:    m,
	}
}

// Lookup fetches the math fact for n within the configured timeout.
func (c *Client) Lookup(ctx context.Context, n uint64) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	delays := make([]time.Duration, c.retries)
	for i := range delays {
		delays[i] = retryDelay
	}

	var fact string
	err := utils.WithRetry(ctx, delays, func() error {
		var e error
		fact, e = c.fetch(ctx, n)
		return e
	})
	if err != nil {
		c.metrics.FactLookup(metrics.FactError)
		return "", fmt.Errorf("lookup fact for %d: %w", n, err)
	}

	c.metrics.FactLookup(metrics.FactOK)
	return fact, nil
}

func (c *Client) fetch(ctx context.Context, n uint64) (string, error) {
	url := c.baseURL + "/" + strconv.FormatUint(n, 10) + "/math"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Accept", "text/plain")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxFactSize))
		err := fmt.Errorf("%w: %d", ErrBadStatus, resp.StatusCode)
		if resp.StatusCode >= http.StatusInternalServerError {
			return "", &utils.RetriableError{Err: err}
		}
		return "", err
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFactSize+1))
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}
	if len(body) > maxFactSize {
		return "", ErrFactTooLarge
	}

	fact := strings.TrimSpace(string(body))
	if fact == "" {
		return "", ErrEmptyFact
	}
	return fact, nil
}

// Disabled is a fact source for deployments without access to the trivia service.
type Disabled struct {
	Metrics *metrics.Metrics
}

func (d Disabled) Lookup(context.Context, uint64) (string, error) {
	d.Metrics.FactLookup(metrics.FactDisabled)
	return "", ErrDisabled
}
