package open_slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/questarium/QST-ScheduleService/internal/domain"
	scheduleRepo "github.com/questarium/QST-ScheduleService/internal/infra/storage/schedule"
	catalogClient "github.com/questarium/QST-ScheduleService/internal/integrations/catalog"
)

// UseCase use case для открытия слота с формой брони
type UseCase struct {
	bookingRepo   BookingRepository
	scheduleRepo  ScheduleRepository
	catalogClient CatalogClient
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	scheduleRepo ScheduleRepository,
	catalogClient CatalogClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		scheduleRepo:  scheduleRepo,
		catalogClient: catalogClient,
		logger:        logger,
	}
}

// Execute выполняет use case открытия слота
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("OpenSlot: slot_id=%q, tier=%q, adventure_id=%q", req.SlotID, req.Tier, req.AdventureID)

	// 1. Разбираем идентификатор слота
	slotID, err := domain.ParseSlotID(req.SlotID)
	if err != nil {
		uc.logger.Warn("OpenSlot: invalid slot id %q: %v", req.SlotID, err)
		return nil, fmt.Errorf("%w: %q", ErrInvalidSlotID, req.SlotID)
	}

	// 2. Получаем занятость слота
	playersBooked, err := uc.bookingRepo.CountPlayersBySlot(ctx, slotID.Date(), slotID.Period)
	if err != nil {
		uc.logger.Error("OpenSlot: failed to count players for slot %s: %v", req.SlotID, err)
		return nil, fmt.Errorf("%w: failed to count players: %v", ErrInternal, err)
	}

	// 3. Получаем ручную пометку слота, если она есть
	override, err := uc.scheduleRepo.GetForSlot(ctx, slotID.Date(), slotID.Period)
	if err != nil && !errors.Is(err, scheduleRepo.ErrOverrideNotFound) {
		uc.logger.Error("OpenSlot: failed to get override for slot %s: %v", req.SlotID, err)
		return nil, fmt.Errorf("%w: failed to get slot override: %v", ErrInternal, err)
	}

	// 4. Собираем слот
	slot, err := domain.BuildSlot(slotID.Year, slotID.Month, slotID.Day, slotID.Period, playersBooked, override)
	if err != nil {
		uc.logger.Error("OpenSlot: failed to build slot %s: %v", req.SlotID, err)
		return nil, fmt.Errorf("%w: failed to build slot: %v", ErrInternal, err)
	}

	// 5. Занятый слот не открывает форму - только уведомление
	if !slot.Status.IsBookable() {
		uc.logger.Info("OpenSlot: slot %s is fully booked", req.SlotID)
		return &Response{
			Slot:   slot,
			Notice: NoticeSlotTaken,
		}, nil
	}

	// 6. Получаем каталог сюжетов (с graceful degradation)
	adventures, err := uc.catalogClient.ListAdventuresWithGracefulDegradation(ctx)
	if err != nil {
		if !errors.Is(err, catalogClient.ErrServiceDegraded) {
			uc.logger.Error("OpenSlot: failed to list adventures: %v", err)
			return nil, fmt.Errorf("%w: failed to list adventures: %v", ErrInternal, err)
		}
		// Каталог недоступен: форма работает, в списке остается только "подберите мне сюжет"
		uc.logger.Warn("OpenSlot: catalog degraded, serving empty adventure list")
		adventures = []domain.Adventure{}
	}

	// 7. Создаем свежий черновик для слота
	draft := domain.NewDraft(slot, req.AdventureID, domain.Tier(req.Tier))

	uc.logger.Info("OpenSlot: slot %s opened, status=%s, adventures=%d", req.SlotID, slot.Status, len(adventures))

	return &Response{
		Slot:       slot,
		Draft:      &draft,
		Adventures: adventures,
		Pricing: &Pricing{
			PricePerPlayer: domain.PricePerPlayer(draft.Tier),
			TotalPrice:     domain.TotalPrice(draft.Tier, draft.Players),
		},
	}, nil
}
