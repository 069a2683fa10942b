package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/autopeer-io/carview/internal/carview/model"
	"github.com/autopeer-io/carview/internal/pkg/metrics"
	"github.com/autopeer-io/carview/pkg/log"
	"github.com/autopeer-io/carview/pkg/options"
)

const (
	carPath         = "/api/car/"
	requestIDHeader = "X-Request-ID"
	maxErrorBody    = 4 << 10
)

// Client fetches car telemetry from the car API.
type Client struct {
	baseURL string
	http    *http.Client
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// New creates a Client from the API options.
func New(opts *options.CarAPIOptions, o ...Option) *Client {
	c := &Client{
		baseURL: opts.Endpoint(),
		http:    &http.Client{Timeout: opts.Timeout},
	}
	for _, fn := range o {
		fn(c)
	}
	return c
}

// URL returns the lookup URL for plate. The plate is appended as-is.
func (c *Client) URL(plate string) string {
	return c.baseURL + carPath + plate
}

// GetCar issues GET {baseURL}/api/car/{plate} and decodes the record.
func (c *Client) GetCar(ctx context.Context, plate string) (*model.CarRecord, error) {
	start := time.Now()

	rec, err := c.getCar(ctx, plate)

	outcome := metrics.OutcomeSuccess
	switch {
	case IsNotFound(err):
		outcome = metrics.OutcomeNotFound
	case err != nil:
		outcome = metrics.OutcomeError
	}
	metrics.CarFetchTotal.WithLabelValues(outcome).Inc()
	metrics.CarFetchLatency.WithLabelValues(outcome).Observe(time.Since(start).Seconds())

	return rec, err
}

func (c *Client) getCar(ctx context.Context, plate string) (*model.CarRecord, error) {
	url := c.URL(plate)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, requestID)

	log.Debug("Fetching car data", "url", url, "requestID", requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, statusError(resp)
	}

	var rec *model.CarRecord
	if err := json.NewDecoder(resp.Body).Decode(&rec); err != nil {
		return nil, fmt.Errorf("decode car record: %w", err)
	}
	if rec == nil {
		return nil, ErrEmptyRecord
	}

	log.Debug("Fetched car data", "plate", rec.LicensePlate, "requestID", requestID)
	return rec, nil
}

func statusError(resp *http.Response) error {
	se := &StatusError{StatusCode: resp.StatusCode}

	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxErrorBody)).Decode(&body); err == nil {
		se.Message = body.Error
	}

	return se
}
