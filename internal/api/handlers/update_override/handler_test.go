package update_override

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/questarium/QST-ScheduleService/internal/domain"
	scheduleRepo "github.com/questarium/QST-ScheduleService/internal/infra/storage/schedule"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type stubRepo struct {
	upserted *domain.SlotOverride
	deleted  bool
	delErr   error
}

func (s *stubRepo) Upsert(ctx context.Context, override domain.SlotOverride) error {
	s.upserted = &override
	return nil
}

func (s *stubRepo) Delete(ctx context.Context, date time.Time, period domain.Period) error {
	s.deleted = true
	return s.delErr
}

func doRequest(t *testing.T, repo *stubRepo, slotID, body string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(repo, nopLogger{})

	router := mux.NewRouter()
	router.HandleFunc("/api/v1/schedule/slots/{slotId}/override", handler.Handle).Methods(http.MethodPut)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/schedule/slots/"+slotID+"/override", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func TestHandle(t *testing.T) {
	t.Run("sets on-request mark", func(t *testing.T) {
		repo := &stubRepo{}

		rec := doRequest(t, repo, "2026-09-15-evening", `{"status": "on-request"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		require.NotNil(t, repo.upserted)
		assert.Equal(t, domain.SlotOnRequest, repo.upserted.Status)
		assert.Equal(t, domain.PeriodEvening, repo.upserted.Period)
		assert.Equal(t, time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC), repo.upserted.Date)
	})

	t.Run("empty status clears mark", func(t *testing.T) {
		repo := &stubRepo{}

		rec := doRequest(t, repo, "2026-09-15-daytime", `{"status": ""}`)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, repo.deleted)
		assert.Nil(t, repo.upserted)
	})

	t.Run("clearing missing mark is a no-op", func(t *testing.T) {
		repo := &stubRepo{delErr: scheduleRepo.ErrOverrideNotFound}

		rec := doRequest(t, repo, "2026-09-15-daytime", `{}`)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("computed statuses are rejected", func(t *testing.T) {
		for _, status := range []string{"available", "partial", "whatever"} {
			repo := &stubRepo{}

			rec := doRequest(t, repo, "2026-09-15-evening", `{"status": "`+status+`"}`)
			assert.Equal(t, http.StatusBadRequest, rec.Code, status)
			assert.Nil(t, repo.upserted)
		}
	})

	t.Run("malformed slot id is rejected", func(t *testing.T) {
		repo := &stubRepo{}

		rec := doRequest(t, repo, "2026-02-31-evening", `{"status": "on-request"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
