// Package speedtest measures download throughput over the active route.
package speedtest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Defaults for the download measurement.
const (
	DefaultURL     = "https://speed.cloudflare.com/__down?bytes=25000000"
	DefaultTimeout = 30 * time.Second
)

// Meter implements out.ThroughputMeter with a timed HTTP download.
type Meter struct {
	client  *http.Client
	url     string
	timeout time.Duration
	now     func() time.Time
}

// Option configures the Meter.
type Option func(*Meter)

// WithURL sets the download URL.
func WithURL(url string) Option {
	return func(m *Meter) {
		m.url = url
	}
}

// WithTimeout bounds a single measurement.
func WithTimeout(timeout time.Duration) Option {
	return func(m *Meter) {
		m.timeout = timeout
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(m *Meter) {
		m.client = client
	}
}

// New creates a Meter.
func New(opts ...Option) *Meter {
	m := &Meter{
		url:     DefaultURL,
		timeout: DefaultTimeout,
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.client == nil {
		m.client = &http.Client{
			Transport: &http.Transport{
				// A fresh connection per probe so the measurement runs over
				// the tunnel that was just brought up.
				DisableKeepAlives: true,
			},
		}
	}

	return m
}

// Download fetches the configured payload and returns throughput in Mbps.
func (m *Meter) Download(ctx context.Context) (float64, error) {
	if m.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.url, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "vpn-chainer-speedtest/1.0")

	start := m.now()
	resp, err := m.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, m.url)
	}

	n, err := io.Copy(io.Discard, resp.Body)
	if err != nil {
		return 0, fmt.Errorf("download interrupted after %d bytes: %w", n, err)
	}
	if n == 0 {
		return 0, errors.New("empty download")
	}

	elapsed := m.now().Sub(start)
	if elapsed <= 0 {
		elapsed = time.Nanosecond
	}

	return float64(n) * 8 / elapsed.Seconds() / 1e6, nil
}
