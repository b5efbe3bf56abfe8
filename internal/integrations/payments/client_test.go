package payments

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestCreatePayment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/payments", r.URL.Path)

		var req CreatePaymentRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "b-1", req.BookingID)
		assert.Equal(t, 7800, req.AmountRub)

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"paymentUrl": "https://pay.example/b-1"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, nopLogger{})

	url, err := client.CreatePayment(context.Background(), CreatePaymentRequest{
		BookingID: "b-1",
		AmountRub: 7800,
	})
	require.NoError(t, err)
	assert.Equal(t, "https://pay.example/b-1", url)
}

func TestCreatePaymentErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "rejected", status: http.StatusUnprocessableEntity, wantErr: ErrPaymentRejected},
		{name: "server error", status: http.StatusInternalServerError, wantErr: ErrInvalidResponse},
		{name: "empty url", status: http.StatusOK, body: `{"paymentUrl": ""}`, wantErr: ErrInvalidResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := NewClient(srv.URL, time.Second, nopLogger{})

			_, err := client.CreatePayment(context.Background(), CreatePaymentRequest{BookingID: "b-1"})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
