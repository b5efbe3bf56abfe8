package get_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/questarium/QST-ScheduleService/internal/service/bookings"
	"github.com/questarium/QST-ScheduleService/internal/service/bookings/models"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type stubService struct {
	response *models.BookingResponse
	err      error
}

func (s *stubService) GetByPublicID(ctx context.Context, bookingID string) (*models.BookingResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.response, nil
}

func doRequest(t *testing.T, svc *stubService, bookingID string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(svc, nopLogger{})

	router := mux.NewRouter()
	router.HandleFunc("/api/v1/bookings/{bookingId}", handler.Handle).Methods(http.MethodGet)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/"+bookingID, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func TestHandle(t *testing.T) {
	t.Run("found booking returns 200", func(t *testing.T) {
		svc := &stubService{response: &models.BookingResponse{
			PublicID: "5c0e6f8a-1111-2222-3333-444455556666",
			SlotID:   "2026-09-15-evening",
			Status:   "awaiting_payment",
		}}

		rec := doRequest(t, svc, "5c0e6f8a-1111-2222-3333-444455556666")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp models.BookingResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "2026-09-15-evening", resp.SlotID)
	})

	t.Run("unknown booking returns 404", func(t *testing.T) {
		svc := &stubService{err: bookings.ErrBookingNotFound}

		rec := doRequest(t, svc, "5c0e6f8a-1111-2222-3333-444455556666")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed booking id returns 400", func(t *testing.T) {
		svc := &stubService{err: bookings.ErrInvalidInput}

		rec := doRequest(t, svc, "not-a-uuid")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
