package contact

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/arvana/storefront/internal/platform/timeouts"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Relay posts submissions to a form endpoint as URL-encoded bodies.
type Relay struct {
	endpoint string
	client   *http.Client
}

// NewRelay returns a relay for an absolute endpoint URL. A nil client uses
// an instrumented client bounded by the relay timeout.
func NewRelay(endpoint string, client *http.Client) (*Relay, error) {
	endpoint = strings.TrimSpace(endpoint)
	parsed, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse contact endpoint: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("contact endpoint %q must be an absolute http(s) URL", endpoint)
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("contact endpoint %q has no host", endpoint)
	}
	if client == nil {
		client = &http.Client{
			Timeout:   timeouts.ContactRelay,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	return &Relay{endpoint: parsed.String(), client: client}, nil
}

// Endpoint returns the target URL.
func (r *Relay) Endpoint() string {
	return r.endpoint
}

// Deliver posts submission. Any 2xx status is success; every other
// outcome, including transport failure, wraps ErrDeliveryFailed.
func (r *Relay) Deliver(ctx context.Context, submission Submission) error {
	if r == nil || r.client == nil {
		return errors.New("contact relay is not configured")
	}
	body := submission.Form().Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, strings.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: build request: %v", ErrDeliveryFailed, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%w: endpoint responded %d", ErrDeliveryFailed, resp.StatusCode)
	}
	return nil
}
