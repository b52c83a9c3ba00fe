//go:build unit

package sink_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"stayhub/internal/domain/checkout"
	"stayhub/internal/infra"
	"stayhub/internal/infra/sink"
	"stayhub/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *sink.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := config.SinkConfig{BaseURL: server.URL, Timeout: 5 * time.Second}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return sink.NewClient(cfg, logger)
}

func samplePayload() checkout.Payload {
	return checkout.Payload{
		PropertyID:   "1",
		CheckInDate:  "2024-08-24",
		CheckOutDate: "2024-08-27",
		Guests:       2,
		Nights:       3,
		TotalPrice:   414,
		GuestDetails: checkout.GuestDetails{
			FirstName:   "John",
			LastName:    "Doe",
			Email:       "john.doe@example.com",
			PhoneNumber: "+1 (555) 123-4567",
		},
		PaymentDetails: checkout.PaymentDetails{
			CardNumber:     "4111 1111 1111 1111",
			ExpirationDate: "12/27",
			CVV:            "123",
			BillingAddress: "123 Main Street, New York, NY 10001",
		},
	}
}

func TestClientSubmit(t *testing.T) {
	t.Run("confirmed booking returns the sink identifier", func(t *testing.T) {
		var received checkout.Payload
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/bookings", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "bookingId": "BK123"})
		})

		bookingID, err := client.Submit(context.Background(), samplePayload())
		require.NoError(t, err)
		assert.Equal(t, "BK123", bookingID)
		assert.Equal(t, samplePayload(), received)
	})

	t.Run("server error maps to a bad response", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		_, err := client.Submit(context.Background(), samplePayload())
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindBadResponse))
	})

	t.Run("2xx without confirmation is still a failure", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "payment declined"})
		})

		_, err := client.Submit(context.Background(), samplePayload())
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindBadResponse))
	})

	t.Run("confirmation without a booking id is rejected", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{"success": true})
		})

		_, err := client.Submit(context.Background(), samplePayload())
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindBadResponse))
	})

	t.Run("non-JSON body is a bad response", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html>gateway</html>"))
		})

		_, err := client.Submit(context.Background(), samplePayload())
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindBadResponse))
	})

	t.Run("unreachable sink maps to unavailable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		cfg := config.SinkConfig{BaseURL: server.URL, Timeout: time.Second}
		client := sink.NewClient(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))

		_, err := client.Submit(context.Background(), samplePayload())
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindUnavailable))
	})
}
