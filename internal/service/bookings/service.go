package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/questarium/QST-ScheduleService/internal/domain"
	bookingRepo "github.com/questarium/QST-ScheduleService/internal/infra/storage/booking"
	"github.com/questarium/QST-ScheduleService/internal/integrations/payments"
	"github.com/questarium/QST-ScheduleService/internal/service/bookings/models"
	"github.com/questarium/QST-ScheduleService/pkg/ptr"
)

// Service сервис для работы с заявками
type Service struct {
	bookingRepo    BookingRepository
	paymentsClient PaymentsClient
	logger         Logger
}

// NewService создает новый экземпляр сервиса заявок
func NewService(
	bookingRepo BookingRepository,
	paymentsClient PaymentsClient,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:    bookingRepo,
		paymentsClient: paymentsClient,
		logger:         logger,
	}
}

// GetByPublicID получает заявку по публичному идентификатору
func (s *Service) GetByPublicID(ctx context.Context, publicID string) (*models.BookingResponse, error) {
	s.logger.Info("GetByPublicID: fetching booking %s", publicID)

	booking, err := s.fetch(ctx, publicID)
	if err != nil {
		return nil, err
	}

	return models.FromDomainBooking(booking), nil
}

// Cancel отменяет заявку по инициативе игрока
// Завершенные и уже отмененные заявки отменить нельзя
func (s *Service) Cancel(ctx context.Context, publicID string, req *models.CancelBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking %s", publicID)

	booking, err := s.fetch(ctx, publicID)
	if err != nil {
		return nil, err
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking %s cannot be cancelled, status=%s", publicID, booking.Status)
		return nil, fmt.Errorf("%w: status=%s", ErrCannotCancel, booking.Status)
	}

	if err := s.bookingRepo.Cancel(ctx, booking.ID, domain.StatusCancelledByUser, req.CancellationReason); err != nil {
		s.logger.Error("Cancel: repository error for booking %s: %v", publicID, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	booking.Status = domain.StatusCancelledByUser
	booking.CancellationReason = ptr.Ptr(req.CancellationReason)
	booking.CancelledAt = ptr.Ptr(time.Now())

	s.logger.Info("Cancel: booking %s cancelled", publicID)
	return models.FromDomainBooking(booking), nil
}

// RetryPayment перевыставляет платежную ссылку для заявки
// Доступно только для заявок, у которых выпуск ссылки не удался при создании
func (s *Service) RetryPayment(ctx context.Context, publicID string) (*models.BookingResponse, error) {
	s.logger.Info("RetryPayment: reissuing payment link for booking %s", publicID)

	booking, err := s.fetch(ctx, publicID)
	if err != nil {
		return nil, err
	}

	if !booking.AwaitsPaymentLink() {
		s.logger.Warn("RetryPayment: booking %s is not awaiting payment link, status=%s", publicID, booking.Status)
		return nil, fmt.Errorf("%w: status=%s", ErrPaymentAlreadyIssued, booking.Status)
	}

	paymentURL, err := s.paymentsClient.CreatePayment(ctx, payments.CreatePaymentRequest{
		BookingID:   booking.PublicID.String(),
		AmountRub:   booking.TotalPrice,
		Description: fmt.Sprintf("Предоплата игры %s", booking.SlotID()),
	})
	if err != nil {
		s.logger.Error("RetryPayment: payment service error for booking %s: %v", publicID, err)
		return nil, fmt.Errorf("%w: %v", ErrPaymentFailed, err)
	}

	if err := s.bookingRepo.SetPaymentIssued(ctx, booking.ID, paymentURL); err != nil {
		s.logger.Error("RetryPayment: failed to store payment url for booking %s: %v", publicID, err)
		return nil, fmt.Errorf("%w: RetryPayment - repository error: %v", ErrInternal, err)
	}

	booking.Status = domain.StatusAwaitingPayment
	booking.PaymentURL = ptr.Ptr(paymentURL)

	s.logger.Info("RetryPayment: payment link reissued for booking %s", publicID)
	return models.FromDomainBooking(booking), nil
}

// fetch получает заявку по публичному идентификатору
func (s *Service) fetch(ctx context.Context, publicID string) (*domain.Booking, error) {
	id, err := uuid.Parse(publicID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid booking id %q", ErrInvalidInput, publicID)
	}

	booking, err := s.bookingRepo.GetByPublicID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}

	return booking, nil
}
