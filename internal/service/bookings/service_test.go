package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/questarium/QST-ScheduleService/internal/domain"
	bookingRepo "github.com/questarium/QST-ScheduleService/internal/infra/storage/booking"
	"github.com/questarium/QST-ScheduleService/internal/integrations/payments"
	"github.com/questarium/QST-ScheduleService/internal/service/bookings/models"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

var testPublicID = uuid.MustParse("5c0e6f8a-1111-2222-3333-444455556666")

type stubRepo struct {
	booking       *domain.Booking
	cancelled     bool
	cancelStatus  domain.BookingStatus
	cancelReason  string
	paymentURL    string
	paymentStored bool
}

func (s *stubRepo) GetByPublicID(ctx context.Context, publicID uuid.UUID) (*domain.Booking, error) {
	if s.booking == nil || s.booking.PublicID != publicID {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copy := *s.booking
	return &copy, nil
}

func (s *stubRepo) SetPaymentIssued(ctx context.Context, id int64, paymentURL string) error {
	s.paymentURL = paymentURL
	s.paymentStored = true
	return nil
}

func (s *stubRepo) Cancel(ctx context.Context, id int64, status domain.BookingStatus, reason string) error {
	s.cancelled = true
	s.cancelStatus = status
	s.cancelReason = reason
	return nil
}

type stubPayments struct {
	url string
	err error
}

func (s *stubPayments) CreatePayment(ctx context.Context, request payments.CreatePaymentRequest) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.url, nil
}

func testBooking(status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:             42,
		PublicID:       testPublicID,
		SlotDate:       time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC),
		Period:         domain.PeriodEvening,
		StartTime:      "19:00",
		Tier:           domain.TierStandard,
		Players:        4,
		Name:           "Андрей",
		ContactChannel: domain.ChannelTelegram,
		Contact:        "@andrey",
		PricePerPlayer: 1000,
		TotalPrice:     4000,
		Status:         status,
	}
}

func newService(booking *domain.Booking, pay *stubPayments) (*Service, *stubRepo) {
	repo := &stubRepo{booking: booking}
	if pay == nil {
		pay = &stubPayments{url: "https://pay.example/42"}
	}
	return NewService(repo, pay, nopLogger{}), repo
}

func TestGetByPublicID(t *testing.T) {
	svc, _ := newService(testBooking(domain.StatusAwaitingPayment), nil)

	resp, err := svc.GetByPublicID(context.Background(), testPublicID.String())
	require.NoError(t, err)
	assert.Equal(t, "2026-09-15-evening", resp.SlotID)
	assert.Equal(t, "awaiting_payment", resp.Status)

	_, err = svc.GetByPublicID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, ErrBookingNotFound)

	_, err = svc.GetByPublicID(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCancel(t *testing.T) {
	t.Run("active booking is cancelled", func(t *testing.T) {
		svc, repo := newService(testBooking(domain.StatusConfirmed), nil)

		resp, err := svc.Cancel(context.Background(), testPublicID.String(), &models.CancelBookingRequest{
			CancellationReason: "Не сможем прийти",
		})
		require.NoError(t, err)

		assert.True(t, repo.cancelled)
		assert.Equal(t, domain.StatusCancelledByUser, repo.cancelStatus)
		assert.Equal(t, "Не сможем прийти", repo.cancelReason)
		assert.Equal(t, "cancelled_by_user", resp.Status)
		require.NotNil(t, resp.CancelledAt)
	})

	t.Run("finished booking cannot be cancelled", func(t *testing.T) {
		for _, status := range []domain.BookingStatus{
			domain.StatusCompleted,
			domain.StatusCancelledByUser,
			domain.StatusNoShow,
		} {
			svc, repo := newService(testBooking(status), nil)

			_, err := svc.Cancel(context.Background(), testPublicID.String(), &models.CancelBookingRequest{})
			assert.ErrorIs(t, err, ErrCannotCancel, status)
			assert.False(t, repo.cancelled)
		}
	})
}

func TestRetryPayment(t *testing.T) {
	t.Run("pending booking gets a link", func(t *testing.T) {
		svc, repo := newService(testBooking(domain.StatusPendingPayment), nil)

		resp, err := svc.RetryPayment(context.Background(), testPublicID.String())
		require.NoError(t, err)

		assert.True(t, repo.paymentStored)
		assert.Equal(t, "awaiting_payment", resp.Status)
		require.NotNil(t, resp.PaymentURL)
		assert.Equal(t, "https://pay.example/42", *resp.PaymentURL)
	})

	t.Run("issued booking is rejected", func(t *testing.T) {
		svc, _ := newService(testBooking(domain.StatusAwaitingPayment), nil)

		_, err := svc.RetryPayment(context.Background(), testPublicID.String())
		assert.ErrorIs(t, err, ErrPaymentAlreadyIssued)
	})

	t.Run("payment service failure keeps pending status", func(t *testing.T) {
		svc, repo := newService(testBooking(domain.StatusPendingPayment), &stubPayments{err: payments.ErrInvalidResponse})

		_, err := svc.RetryPayment(context.Background(), testPublicID.String())
		assert.ErrorIs(t, err, ErrPaymentFailed)
		assert.False(t, repo.paymentStored)
	})
}
