package sink

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"stayhub/internal/domain/checkout"
	"stayhub/internal/infra"
	"stayhub/internal/pkg/config"

	"go.opentelemetry.io/otel/trace"
)

// Client talks to the external booking submission sink over HTTP. A 2xx
// response carrying {success: true, bookingId} is the only success shape;
// anything else is a submission failure. No request identifier is
// attached, so the call is not idempotent at the protocol level.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

func NewClient(cfg config.SinkConfig, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		logger:     logger,
	}
}

type submitResponse struct {
	Success   bool   `json:"success"`
	BookingID string `json:"bookingId"`
	Message   string `json:"message,omitempty"`
}

func (c *Client) Submit(ctx context.Context, payload checkout.Payload) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", infra.NewStoreErr(infra.KindBadResponse, "encode booking payload", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/bookings", bytes.NewReader(body))
	if err != nil {
		return "", infra.NewStoreErr(infra.KindUnavailable, "build sink request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.logger.Info("submitting booking to sink",
		"property_id", payload.PropertyID,
		"nights", payload.Nights,
		"trace_id", traceIDFromContext(ctx),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", infra.NewStoreErr(infra.KindUnavailable, "booking sink unreachable", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", infra.NewStoreErr(infra.KindBadResponse, fmt.Sprintf("sink returned status %d", resp.StatusCode), nil)
	}

	var parsed submitResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", infra.NewStoreErr(infra.KindBadResponse, "decode sink response", err)
	}
	if !parsed.Success || parsed.BookingID == "" {
		return "", infra.NewStoreErr(infra.KindBadResponse, "sink did not confirm booking", nil)
	}

	c.logger.Info("booking confirmed by sink",
		"booking_id", parsed.BookingID,
		"trace_id", traceIDFromContext(ctx),
	)
	return parsed.BookingID, nil
}

func traceIDFromContext(ctx context.Context) string {
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		return sc.TraceID().String()
	}
	return ""
}
