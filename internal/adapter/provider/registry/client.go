// Package registry is an HTTP client for the personnel registry that owns
// personnel identifiers and their employment status.
package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/bimasakti77/agenda-pimpinan-sub000/internal/config"
	"github.com/bimasakti77/agenda-pimpinan-sub000/internal/domain"
)

const defaultRetryInterval = 200 * time.Millisecond

// Client looks up personnel records over HTTP.
type Client struct {
	baseURL       string
	apiKey        string
	maxRetries    uint
	retryInterval time.Duration
	httpClient    *http.Client
	log           *slog.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithRetryInterval sets the initial backoff interval between attempts.
func WithRetryInterval(d time.Duration) Option {
	return func(c *Client) { c.retryInterval = d }
}

// New creates a registry client from cfg.
func New(cfg config.RegistryConfig, logger *slog.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL:       strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:        cfg.APIKey,
		maxRetries:    cfg.MaxRetries,
		retryInterval: defaultRetryInterval,
		log:           logger.With("adapter", "personnel_registry"),
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// personnelResponse is the registry's JSON body for one identifier.
type personnelResponse struct {
	PersonnelID string `json:"personnel_id"`
	Active      bool   `json:"active"`
}

// errRetryable marks responses worth another attempt.
var errRetryable = errors.New("registry: retryable response")

// Lookup fetches the registry record for personnelID. The boolean is false
// when the registry does not know the identifier. Transport failures and
// unexpected responses are returned as domain.ErrInfrastructure.
func (c *Client) Lookup(ctx context.Context, personnelID string) (domain.PersonnelRecord, bool, error) {
	endpoint := c.baseURL + "/personnel/" + url.PathEscape(personnelID)

	type result struct {
		record domain.PersonnelRecord
		found  bool
	}

	attempt := 0
	op := func() (result, error) {
		attempt++
		rec, found, err := c.fetch(ctx, endpoint)
		if err != nil {
			if errors.Is(err, errRetryable) {
				c.log.WarnContext(ctx, "registry lookup attempt failed",
					slog.Int("attempt", attempt),
					slog.String("error", err.Error()),
				)
			}
			return result{}, err
		}
		return result{record: rec, found: found}, nil
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.retryInterval

	res, err := backoff.Retry(ctx, op,
		backoff.WithBackOff(b),
		backoff.WithMaxTries(c.maxRetries+1),
	)
	if err != nil {
		c.log.ErrorContext(ctx, "registry lookup failed",
			slog.String("personnel_id", personnelID),
			slog.Int("attempts", attempt),
			slog.String("error", err.Error()),
		)
		return domain.PersonnelRecord{}, false, domain.Infrastructure("registry lookup", err)
	}
	return res.record, res.found, nil
}

func (c *Client) fetch(ctx context.Context, endpoint string) (domain.PersonnelRecord, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.PersonnelRecord{}, false, backoff.Permanent(fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return domain.PersonnelRecord{}, false, backoff.Permanent(ctx.Err())
		}
		return domain.PersonnelRecord{}, false, fmt.Errorf("%w: %w", errRetryable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		var body personnelResponse
		if err := json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(&body); err != nil {
			return domain.PersonnelRecord{}, false, backoff.Permanent(fmt.Errorf("decode response: %w", err))
		}
		return domain.PersonnelRecord{PersonnelID: body.PersonnelID, Active: body.Active}, true, nil

	case resp.StatusCode == http.StatusNotFound:
		return domain.PersonnelRecord{}, false, nil

	case resp.StatusCode == http.StatusTooManyRequests:
		if secs, err := strconv.Atoi(resp.Header.Get("Retry-After")); err == nil && secs > 0 {
			return domain.PersonnelRecord{}, false, backoff.RetryAfter(secs)
		}
		return domain.PersonnelRecord{}, false, fmt.Errorf("%w: status %d", errRetryable, resp.StatusCode)

	case resp.StatusCode >= 500:
		return domain.PersonnelRecord{}, false, fmt.Errorf("%w: status %d", errRetryable, resp.StatusCode)

	default:
		return domain.PersonnelRecord{}, false, backoff.Permanent(fmt.Errorf("registry: unexpected status %d", resp.StatusCode))
	}
}
