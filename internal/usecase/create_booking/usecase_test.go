package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/questarium/QST-ScheduleService/internal/domain"
	scheduleRepo "github.com/questarium/QST-ScheduleService/internal/infra/storage/schedule"
	catalogClient "github.com/questarium/QST-ScheduleService/internal/integrations/catalog"
	"github.com/questarium/QST-ScheduleService/internal/integrations/payments"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type fixedID struct{ id uuid.UUID }

func (f fixedID) NewID() uuid.UUID { return f.id }

type stubTxManager struct{}

func (stubTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type stubBookingRepo struct {
	players        int
	created        *domain.Booking
	paymentID      int64
	paymentURL     string
	paymentStored  bool
	failSetPayment bool
}

func (s *stubBookingRepo) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	booking.ID = 42
	booking.CreatedAt = time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)
	booking.UpdatedAt = booking.CreatedAt
	s.created = booking
	return booking, nil
}

func (s *stubBookingRepo) CountPlayersBySlot(ctx context.Context, date time.Time, period domain.Period) (int, error) {
	return s.players, nil
}

func (s *stubBookingRepo) SetPaymentIssued(ctx context.Context, id int64, paymentURL string) error {
	if s.failSetPayment {
		return errors.New("db down")
	}
	s.paymentID = id
	s.paymentURL = paymentURL
	s.paymentStored = true
	return nil
}

type stubScheduleRepo struct {
	override *domain.SlotOverride
}

func (s *stubScheduleRepo) GetForSlot(ctx context.Context, date time.Time, period domain.Period) (*domain.SlotOverride, error) {
	if s.override == nil {
		return nil, scheduleRepo.ErrOverrideNotFound
	}
	return s.override, nil
}

type stubCatalog struct {
	adventure *domain.Adventure
	err       error
}

func (s *stubCatalog) GetAdventureWithGracefulDegradation(ctx context.Context, adventureID string) (*domain.Adventure, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.adventure, nil
}

type stubPayments struct {
	url      string
	err      error
	requests []payments.CreatePaymentRequest
}

func (s *stubPayments) CreatePayment(ctx context.Context, request payments.CreatePaymentRequest) (string, error) {
	s.requests = append(s.requests, request)
	if s.err != nil {
		return "", s.err
	}
	return s.url, nil
}

type fixture struct {
	uc       *UseCase
	bookings *stubBookingRepo
	payments *stubPayments
}

func newFixture(players int, override *domain.SlotOverride) *fixture {
	bookings := &stubBookingRepo{players: players}
	pay := &stubPayments{url: "https://pay.example/42"}
	catalog := &stubCatalog{adventure: &domain.Adventure{ID: "adv-1", Title: "Тени Вестероса"}}

	uc := NewUseCase(bookings, &stubScheduleRepo{override: override}, catalog, pay, stubTxManager{}, nopLogger{})
	uc.timeProvider = fixedTime{now: time.Date(2026, time.September, 1, 10, 0, 0, 0, time.UTC)}
	uc.idProvider = fixedID{id: uuid.MustParse("5c0e6f8a-1111-2222-3333-444455556666")}

	return &fixture{uc: uc, bookings: bookings, payments: pay}
}

func validRequest() *Request {
	return &Request{
		SlotID:         "2026-09-15-evening",
		AdventureID:    "adv-1",
		Tier:           "premium",
		Players:        3,
		Name:           "Андрей",
		ContactChannel: "telegram",
		Contact:        "@andrey",
		Agree:          true,
	}
}

func TestExecuteHappyPath(t *testing.T) {
	f := newFixture(0, nil)

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "5c0e6f8a-1111-2222-3333-444455556666", resp.PublicID)
	assert.Equal(t, "2026-09-15-evening", resp.SlotID)
	assert.Equal(t, string(domain.StatusAwaitingPayment), resp.Status)
	assert.Equal(t, 2600, resp.PricePerPlayer)
	assert.Equal(t, 7800, resp.TotalPrice)
	require.NotNil(t, resp.PaymentURL)
	assert.Equal(t, "https://pay.example/42", *resp.PaymentURL)
	require.NotNil(t, resp.AdventureTitle)
	assert.Equal(t, "Тени Вестероса", *resp.AdventureTitle)

	// Заявка сохранена и ссылка записана
	require.NotNil(t, f.bookings.created)
	assert.Equal(t, domain.PeriodEvening, f.bookings.created.Period)
	assert.Equal(t, "19:00", f.bookings.created.StartTime.String())
	assert.True(t, f.bookings.paymentStored)
	assert.Equal(t, int64(42), f.bookings.paymentID)

	// Платеж выставлен на полную предоплату
	require.Len(t, f.payments.requests, 1)
	assert.Equal(t, 7800, f.payments.requests[0].AmountRub)
}

func TestExecuteClampsPlayers(t *testing.T) {
	f := newFixture(0, nil)

	req := validRequest()
	req.Tier = "standard"
	req.Players = 9

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, domain.MaxPlayers, resp.Players)
	assert.Equal(t, 6000, resp.TotalPrice)
}

func TestExecuteOmittedPlayersTakesDefault(t *testing.T) {
	f := newFixture(0, nil)

	// Ноль в JSON - пропущенное поле: берется дефолт черновика,
	// а не обрезка до минимума
	req := validRequest()
	req.Players = 0

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultPlayers, resp.Players)
}

func TestExecuteDraftValidation(t *testing.T) {
	f := newFixture(0, nil)

	req := validRequest()
	req.Name = ""

	_, err := f.uc.Execute(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDraftInvalid)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Len(t, validationErr.Fields, 1)
	assert.Equal(t, "name", validationErr.Fields[0].Field)
	assert.Equal(t, domain.MsgNameRequired, validationErr.Fields[0].Message)

	assert.Nil(t, f.bookings.created)
}

func TestExecuteAutoAdventure(t *testing.T) {
	f := newFixture(0, nil)

	req := validRequest()
	req.AdventureID = domain.AdventureAuto
	req.Comment = "Хотим мрачный детектив"

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.True(t, resp.NeedsStorySuggestion)
	assert.Nil(t, resp.AdventureID)
	assert.Nil(t, resp.AdventureTitle)
	require.NotNil(t, f.bookings.created.Comment)
}

func TestExecuteCapacity(t *testing.T) {
	t.Run("booked slot rejected", func(t *testing.T) {
		f := newFixture(6, nil)

		_, err := f.uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrSlotNotAvailable)
	})

	t.Run("not enough seats in partial slot", func(t *testing.T) {
		f := newFixture(4, nil)

		req := validRequest()
		req.Players = 4

		_, err := f.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrNotEnoughSeats)
	})

	t.Run("fits into remaining seats", func(t *testing.T) {
		f := newFixture(4, nil)

		req := validRequest()
		req.Players = 2

		resp, err := f.uc.Execute(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 2, resp.Players)
	})

	t.Run("on-request slot stays bookable", func(t *testing.T) {
		override := &domain.SlotOverride{Status: domain.SlotOnRequest}
		f := newFixture(0, override)

		_, err := f.uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)
	})
}

func TestExecutePaymentFailureKeepsBooking(t *testing.T) {
	f := newFixture(0, nil)
	f.payments.err = payments.ErrInvalidResponse

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusPendingPayment), resp.Status)
	assert.Nil(t, resp.PaymentURL)
	require.NotNil(t, f.bookings.created)
	assert.False(t, f.bookings.paymentStored)
}

func TestExecuteSlotErrors(t *testing.T) {
	f := newFixture(0, nil)

	req := validRequest()
	req.SlotID = "2026-9-15-evening"
	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidSlotID)

	req.SlotID = "2026-08-20-evening"
	_, err = f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotInPast)
}

func TestExecuteAdventureNotFound(t *testing.T) {
	f := newFixture(0, nil)
	f.uc.catalogClient = &stubCatalog{err: catalogClient.ErrAdventureNotFound}

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrAdventureNotFound)
}

func TestExecuteCatalogDegraded(t *testing.T) {
	f := newFixture(0, nil)
	f.uc.catalogClient = &stubCatalog{err: catalogClient.ErrServiceDegraded}

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Заявка создана, но без денормализованного названия сюжета
	require.NotNil(t, resp.AdventureID)
	assert.Equal(t, "adv-1", *resp.AdventureID)
	assert.Nil(t, resp.AdventureTitle)
}

func TestExecuteServerSidePrice(t *testing.T) {
	f := newFixture(0, nil)

	req := validRequest()
	req.Tier = "standard"
	req.Players = 4

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 1000, resp.PricePerPlayer)
	assert.Equal(t, 4000, resp.TotalPrice)
	assert.Equal(t, 4000, f.bookings.created.TotalPrice)
}
