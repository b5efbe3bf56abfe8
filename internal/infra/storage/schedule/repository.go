package schedule

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/questarium/QST-ScheduleService/internal/domain"
	"github.com/questarium/QST-ScheduleService/pkg/psqlbuilder"
	"github.com/questarium/QST-ScheduleService/pkg/txmanager"
)

// Repository репозиторий ручных пометок расписания
// Пометки ставит администратор клуба: слот "по запросу" для корпоративов,
// закрытый слот на время ремонта зала и т.п.
type Repository struct {
	db txmanager.Executor
}

// NewRepository создает новый экземпляр репозитория пометок
func NewRepository(db txmanager.Executor) *Repository {
	return &Repository{db: db}
}

// GetForRange возвращает пометки слотов за период дат
func (r *Repository) GetForRange(ctx context.Context, from, to time.Time) ([]domain.SlotOverride, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("slot_date", "period", "status").
		From("slot_overrides").
		Where(squirrel.GtOrEq{"slot_date": from}).
		Where(squirrel.LtOrEq{"slot_date": to}).
		OrderBy("slot_date ASC, period ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetForRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetForRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	overrides := make([]domain.SlotOverride, 0)
	for rows.Next() {
		var override domain.SlotOverride
		if err := rows.Scan(&override.Date, &override.Period, &override.Status); err != nil {
			return nil, fmt.Errorf("%w: GetForRange - scan row: %v", ErrScanRow, err)
		}
		overrides = append(overrides, override)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetForRange - rows error: %v", ErrScanRow, err)
	}

	return overrides, nil
}

// GetForSlot возвращает пометку конкретного слота, если она есть
func (r *Repository) GetForSlot(ctx context.Context, date time.Time, period domain.Period) (*domain.SlotOverride, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("slot_date", "period", "status").
		From("slot_overrides").
		Where(squirrel.Eq{
			"slot_date": date,
			"period":    period,
		}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetForSlot - build select query: %v", ErrBuildQuery, err)
	}

	var override domain.SlotOverride
	err = executor.QueryRowContext(ctx, query, args...).Scan(&override.Date, &override.Period, &override.Status)

	if err == sql.ErrNoRows {
		return nil, ErrOverrideNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetForSlot - scan row: %v", ErrScanRow, err)
	}

	return &override, nil
}

// Upsert ставит или обновляет пометку слота
func (r *Repository) Upsert(ctx context.Context, override domain.SlotOverride) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("slot_overrides").
		Columns("slot_date", "period", "status").
		Values(override.Date, override.Period, override.Status).
		Suffix("ON CONFLICT (slot_date, period) DO UPDATE SET status = EXCLUDED.status").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// Delete снимает пометку слота
func (r *Repository) Delete(ctx context.Context, date time.Time, period domain.Period) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("slot_overrides").
		Where(squirrel.Eq{
			"slot_date": date,
			"period":    period,
		}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrOverrideNotFound
	}

	return nil
}
