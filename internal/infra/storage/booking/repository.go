package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/questarium/QST-ScheduleService/internal/domain"
	"github.com/questarium/QST-ScheduleService/pkg/psqlbuilder"
	"github.com/questarium/QST-ScheduleService/pkg/txmanager"
)

// bookingColumns полный набор колонок заявки для выборок
var bookingColumns = []string{
	"id",
	"public_id",
	"slot_date",
	"period",
	"start_time",
	"duration_minutes",
	"adventure_id",
	"adventure_title",
	"needs_story_suggestion",
	"tier",
	"players",
	"user_id",
	"name",
	"contact_channel",
	"contact",
	"email",
	"comment",
	"price_per_player",
	"total_price",
	"status",
	"payment_url",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// SlotLoad количество занятых мест в слоте
type SlotLoad struct {
	Date    time.Time
	Period  domain.Period
	Players int
}

// Repository репозиторий для работы с заявками на игру
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория заявок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую заявку
// Если в контексте передана активная транзакция, использует её - при создании
// заявки с проверкой вместимости слота это обязательно, иначе две параллельные
// заявки могут переполнить стол
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"public_id",
			"slot_date",
			"period",
			"start_time",
			"duration_minutes",
			"adventure_id",
			"adventure_title",
			"needs_story_suggestion",
			"tier",
			"players",
			"user_id",
			"name",
			"contact_channel",
			"contact",
			"email",
			"comment",
			"price_per_player",
			"total_price",
			"status",
		).
		Values(
			booking.PublicID,
			booking.SlotDate,
			booking.Period,
			booking.StartTime,
			booking.DurationMinutes,
			booking.AdventureID,
			booking.AdventureTitle,
			booking.NeedsStorySuggestion,
			booking.Tier,
			booking.Players,
			booking.UserID,
			booking.Name,
			booking.ContactChannel,
			booking.Contact,
			booking.Email,
			booking.Comment,
			booking.PricePerPlayer,
			booking.TotalPrice,
			booking.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByPublicID получает заявку по публичному идентификатору
func (r *Repository) GetByPublicID(ctx context.Context, publicID uuid.UUID) (*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"public_id": publicID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByPublicID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanBooking(executor.QueryRowContext(ctx, query, args...))
}

// CountPlayersBySlot считает занятые места в слоте по активным заявкам
// Внутри транзакции строки заявок блокируются через FOR UPDATE - это
// сериализует параллельные брони одного слота
func (r *Repository) CountPlayersBySlot(ctx context.Context, date time.Time, period domain.Period) (int, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("players").
		From("bookings").
		Where(squirrel.Eq{
			"slot_date": date,
			"period":    period,
		}).
		Where(squirrel.NotEq{"status": inactiveStatusStrings()})

	if txmanager.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountPlayersBySlot - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: CountPlayersBySlot - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	total := 0
	for rows.Next() {
		var players int
		if err := rows.Scan(&players); err != nil {
			return 0, fmt.Errorf("%w: CountPlayersBySlot - scan players: %v", ErrScanRow, err)
		}
		total += players
	}

	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("%w: CountPlayersBySlot - rows error: %v", ErrScanRow, err)
	}

	return total, nil
}

// GetSlotLoads считает занятые места по всем слотам периода дат
// Используется календарем: один запрос на месяц вместо запроса на слот
func (r *Repository) GetSlotLoads(ctx context.Context, from, to time.Time) ([]SlotLoad, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"slot_date",
		"period",
		"COALESCE(SUM(players), 0) AS players",
	).
		From("bookings").
		Where(squirrel.GtOrEq{"slot_date": from}).
		Where(squirrel.LtOrEq{"slot_date": to}).
		Where(squirrel.NotEq{"status": inactiveStatusStrings()}).
		GroupBy("slot_date", "period").
		OrderBy("slot_date ASC, period ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetSlotLoads - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetSlotLoads - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	loads := make([]SlotLoad, 0)
	for rows.Next() {
		var load SlotLoad
		if err := rows.Scan(&load.Date, &load.Period, &load.Players); err != nil {
			return nil, fmt.Errorf("%w: GetSlotLoads - scan row: %v", ErrScanRow, err)
		}
		loads = append(loads, load)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetSlotLoads - rows error: %v", ErrScanRow, err)
	}

	return loads, nil
}

// SetPaymentIssued переводит заявку в ожидание оплаты и сохраняет ссылку
func (r *Repository) SetPaymentIssued(ctx context.Context, id int64, paymentURL string) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusAwaitingPayment).
		Set("payment_url", paymentURL).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetPaymentIssued - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetPaymentIssued - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetPaymentIssued - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// Cancel отменяет заявку с указанием причины
func (r *Repository) Cancel(ctx context.Context, id int64, status domain.BookingStatus, reason string) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// scanBooking сканирует одну заявку
func (r *Repository) scanBooking(row *sql.Row) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.PublicID,
		&booking.SlotDate,
		&booking.Period,
		&booking.StartTime,
		&booking.DurationMinutes,
		&booking.AdventureID,
		&booking.AdventureTitle,
		&booking.NeedsStorySuggestion,
		&booking.Tier,
		&booking.Players,
		&booking.UserID,
		&booking.Name,
		&booking.ContactChannel,
		&booking.Contact,
		&booking.Email,
		&booking.Comment,
		&booking.PricePerPlayer,
		&booking.TotalPrice,
		&booking.Status,
		&booking.PaymentURL,
		&booking.CancellationReason,
		&booking.CancelledAt,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scanBooking - scan row: %v", ErrScanRow, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

func inactiveStatusStrings() []string {
	statuses := make([]string, len(domain.InactiveStatuses))
	for i, s := range domain.InactiveStatuses {
		statuses[i] = string(s)
	}
	return statuses
}
