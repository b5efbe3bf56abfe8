package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/questarium/QST-ScheduleService/internal/domain"
	scheduleRepo "github.com/questarium/QST-ScheduleService/internal/infra/storage/schedule"
	catalogClient "github.com/questarium/QST-ScheduleService/internal/integrations/catalog"
	"github.com/questarium/QST-ScheduleService/internal/integrations/payments"
	"github.com/questarium/QST-ScheduleService/pkg/ptr"
)

// UseCase use case для создания заявки на игру
type UseCase struct {
	bookingRepo    BookingRepository
	scheduleRepo   ScheduleRepository
	catalogClient  CatalogClient
	paymentsClient PaymentsClient
	txManager      TransactionManager
	timeProvider   TimeProvider
	idProvider     IDProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	scheduleRepo ScheduleRepository,
	catalogClient CatalogClient,
	paymentsClient PaymentsClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		scheduleRepo:   scheduleRepo,
		catalogClient:  catalogClient,
		paymentsClient: paymentsClient,
		txManager:      txManager,
		timeProvider:   &RealTimeProvider{},
		idProvider:     &UUIDProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case создания заявки
// Проверка вместимости и вставка выполняются в сериализуемой транзакции:
// два параллельных запроса на последние места не могут переполнить стол.
// Выпуск платежной ссылки идет после фиксации заявки - его сбой не
// откатывает бронь, заявка остается в ожидании выпуска ссылки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: slot=%q, adventure=%q, tier=%q, players=%d",
		req.SlotID, req.AdventureID, req.Tier, req.Players)

	// 1. Получаем текущее время
	now := uc.timeProvider.Now()

	// 2. Разбираем идентификатор слота
	slotID, err := parseSlot(req.SlotID, now)
	if err != nil {
		uc.logger.Warn("CreateBooking: slot validation failed: %v", err)
		return nil, err
	}

	// 3. Получаем выбранный сюжет для денормализации названия
	var adventureTitle *string
	if req.AdventureID != "" && req.AdventureID != domain.AdventureAuto {
		adv, err := uc.catalogClient.GetAdventureWithGracefulDegradation(ctx, req.AdventureID)
		switch {
		case err == nil:
			adventureTitle = ptr.Ptr(adv.Title)
		case errors.Is(err, catalogClient.ErrAdventureNotFound):
			uc.logger.Warn("CreateBooking: adventure %q not found", req.AdventureID)
			return nil, ErrAdventureNotFound
		case errors.Is(err, catalogClient.ErrServiceDegraded):
			// Каталог недоступен: заявка создается без названия сюжета
			uc.logger.Warn("CreateBooking: catalog degraded, booking without adventure title")
		default:
			uc.logger.Error("CreateBooking: failed to get adventure %q: %v", req.AdventureID, err)
			return nil, fmt.Errorf("%w: failed to get adventure: %v", ErrInternal, err)
		}
	}

	var result *domain.Booking

	// 4. Проверяем вместимость и создаем заявку в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Получаем ручную пометку слота
		override, err := uc.scheduleRepo.GetForSlot(txCtx, slotID.Date(), slotID.Period)
		if err != nil && !errors.Is(err, scheduleRepo.ErrOverrideNotFound) {
			uc.logger.Error("CreateBooking: failed to get slot override: %v", err)
			return fmt.Errorf("%w: failed to get slot override: %v", ErrInternal, err)
		}

		// 4.2. Считаем занятые места с блокировкой строк (FOR UPDATE)
		playersBooked, err := uc.bookingRepo.CountPlayersBySlot(txCtx, slotID.Date(), slotID.Period)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to count players: %v", err)
			return fmt.Errorf("%w: failed to count players: %v", ErrInternal, err)
		}

		// 4.3. Собираем слот и проверяем, что он открыт для брони
		slot, err := domain.BuildSlot(slotID.Year, slotID.Month, slotID.Day, slotID.Period, playersBooked, override)
		if err != nil {
			return fmt.Errorf("%w: failed to build slot: %v", ErrInternal, err)
		}

		if !slot.Status.IsBookable() {
			uc.logger.Warn("CreateBooking: slot %s is not bookable, status=%s", req.SlotID, slot.Status)
			return ErrSlotNotAvailable
		}

		// 4.4. Собираем и валидируем черновик
		draft := buildDraft(req, slot)
		if fieldErrors := draft.Validate(); len(fieldErrors) > 0 {
			uc.logger.Warn("CreateBooking: draft validation failed: %d field(s)", len(fieldErrors))
			return &ValidationError{Fields: fieldErrors}
		}

		// 4.5. Проверяем, что игроки помещаются в оставшиеся места
		seatsLeft := domain.MaxPlayers - playersBooked
		if draft.Players > seatsLeft {
			uc.logger.Warn("CreateBooking: not enough seats for slot %s: want %d, left %d",
				req.SlotID, draft.Players, seatsLeft)
			return fmt.Errorf("%w: want %d, left %d", ErrNotEnoughSeats, draft.Players, seatsLeft)
		}

		// 4.6. Цена считается на сервере, клиентские значения игнорируются
		pricePerPlayer := domain.PricePerPlayer(draft.Tier)

		booking := &domain.Booking{
			PublicID:             uc.idProvider.NewID(),
			SlotDate:             slotID.Date(),
			Period:               slotID.Period,
			StartTime:            slot.TimeStart,
			DurationMinutes:      slot.DurationMinutes,
			NeedsStorySuggestion: draft.NeedsStorySuggestion(),
			Tier:                 draft.Tier,
			Players:              draft.Players,
			UserID:               req.UserID,
			Name:                 draft.Name,
			ContactChannel:       draft.ContactChannel,
			Contact:              draft.ContactValue(),
			PricePerPlayer:       pricePerPlayer,
			TotalPrice:           pricePerPlayer * draft.Players,
			Status:               domain.StatusPendingPayment,
		}

		if !draft.NeedsStorySuggestion() {
			booking.AdventureID = ptr.Ptr(draft.AdventureID)
			booking.AdventureTitle = adventureTitle
		}
		if draft.Email != "" {
			booking.Email = ptr.Ptr(draft.Email)
		}
		if draft.Comment != "" {
			booking.Comment = ptr.Ptr(draft.Comment)
		}

		// 4.7. Сохраняем заявку
		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: booking created, id=%d, public_id=%s", result.ID, result.PublicID)

	// 5. Выпускаем платежную ссылку (вне транзакции)
	paymentURL, err := uc.paymentsClient.CreatePayment(ctx, payments.CreatePaymentRequest{
		BookingID:   result.PublicID.String(),
		AmountRub:   result.TotalPrice,
		Description: fmt.Sprintf("Предоплата игры %s", result.SlotID()),
	})

	if err != nil {
		// Заявка уже создана: оставляем её в ожидании выпуска ссылки
		uc.logger.Error("CreateBooking: failed to create payment for booking %s: %v", result.PublicID, err)
	} else {
		if err := uc.bookingRepo.SetPaymentIssued(ctx, result.ID, paymentURL); err != nil {
			uc.logger.Error("CreateBooking: failed to store payment url for booking %s: %v", result.PublicID, err)
		} else {
			result.Status = domain.StatusAwaitingPayment
			result.PaymentURL = ptr.Ptr(paymentURL)
		}
	}

	return toResponse(result), nil
}

// toResponse конвертирует заявку в response
func toResponse(booking *domain.Booking) *Response {
	return &Response{
		PublicID:             booking.PublicID.String(),
		SlotID:               booking.SlotID(),
		Status:               string(booking.Status),
		AdventureID:          booking.AdventureID,
		AdventureTitle:       booking.AdventureTitle,
		NeedsStorySuggestion: booking.NeedsStorySuggestion,
		Tier:                 string(booking.Tier),
		Players:              booking.Players,
		PricePerPlayer:       booking.PricePerPlayer,
		TotalPrice:           booking.TotalPrice,
		PaymentURL:           booking.PaymentURL,
		CreatedAt:            booking.CreatedAt,
	}
}
