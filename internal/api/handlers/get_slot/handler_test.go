package get_slot

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/questarium/QST-ScheduleService/internal/domain"
	openSlot "github.com/questarium/QST-ScheduleService/internal/usecase/open_slot"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type stubUseCase struct {
	response *openSlot.Response
	err      error
}

func (s *stubUseCase) Execute(ctx context.Context, req *openSlot.Request) (*openSlot.Response, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.response, nil
}

func doRequest(t *testing.T, uc *stubUseCase, slotID string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(uc, nopLogger{})

	router := mux.NewRouter()
	router.HandleFunc("/api/v1/schedule/slots/{slotId}", handler.Handle).Methods(http.MethodGet)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/schedule/slots/"+slotID, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func TestHandle(t *testing.T) {
	t.Run("open slot returns panel context", func(t *testing.T) {
		slot, err := domain.BuildSlot(2026, time.September, 15, domain.PeriodEvening, 0, nil)
		require.NoError(t, err)
		draft := domain.NewDraft(slot, "", domain.TierStandard)

		uc := &stubUseCase{response: &openSlot.Response{
			Slot:       slot,
			Draft:      &draft,
			Adventures: []domain.Adventure{{ID: "adv-1", Title: "Тени Вестероса"}},
			Pricing:    &openSlot.Pricing{PricePerPlayer: 1000, TotalPrice: 4000},
		}}

		rec := doRequest(t, uc, "2026-09-15-evening")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp OpenSlotResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.NotNil(t, resp.Slot)
		assert.Equal(t, "2026-09-15-evening", resp.Slot.ID)
		require.NotNil(t, resp.Draft)
		require.NotNil(t, resp.Pricing)
		assert.Equal(t, 4000, resp.Pricing.TotalPrice)
	})

	t.Run("unrecognized slot link opens empty panel", func(t *testing.T) {
		uc := &stubUseCase{err: openSlot.ErrInvalidSlotID}

		rec := doRequest(t, uc, "2026-02-31-evening")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp OpenSlotResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Nil(t, resp.Slot)
		assert.Nil(t, resp.Draft)
		assert.Nil(t, resp.Pricing)
		assert.Empty(t, resp.Adventures)
	})

	t.Run("internal error returns 500", func(t *testing.T) {
		uc := &stubUseCase{err: openSlot.ErrInternal}

		rec := doRequest(t, uc, "2026-09-15-evening")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
