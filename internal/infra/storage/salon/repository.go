package salon

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SalonMS-BookingService/internal/domain"
	"github.com/m04kA/SalonMS-BookingService/pkg/dbmetrics"
	"github.com/m04kA/SalonMS-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с настройками расписания салонов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория салонов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetTimings получает настройки расписания салона
// Возвращает ErrTimingsNotFound, если салон ещё не настраивал расписание -
// вызывающая сторона подставляет значения по умолчанию
func (r *Repository) GetTimings(ctx context.Context, salonID int64) (*domain.SalonTimings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"salon_id",
		"opening_time",
		"closing_time",
		"working_days",
		"created_at",
		"updated_at",
	).
		From("salon_timings").
		Where(squirrel.Eq{"salon_id": salonID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetTimings - build select query: %v", ErrBuildQuery, err)
	}

	var timings domain.SalonTimings
	var workingDays pq.Int64Array
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&timings.SalonID,
		&timings.OpeningTime,
		&timings.ClosingTime,
		&workingDays,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrTimingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetTimings - scan timings: %v", ErrScanRow, err)
	}

	if workingDays != nil {
		timings.WorkingDays = make([]int, len(workingDays))
		for i, d := range workingDays {
			timings.WorkingDays[i] = int(d)
		}
	}
	timings.CreatedAt = createdAt.Time
	timings.UpdatedAt = updatedAt.Time

	return &timings, nil
}

// UpsertTimings сохраняет настройки расписания салона
// Создаёт запись при первом сохранении, обновляет при последующих
func (r *Repository) UpsertTimings(ctx context.Context, timings *domain.SalonTimings) (*domain.SalonTimings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	var workingDays interface{}
	if timings.WorkingDays != nil {
		days := make(pq.Int64Array, len(timings.WorkingDays))
		for i, d := range timings.WorkingDays {
			days[i] = int64(d)
		}
		workingDays = days
	}

	query, args, err := psqlbuilder.Insert("salon_timings").
		Columns("salon_id", "opening_time", "closing_time", "working_days").
		Values(timings.SalonID, timings.OpeningTime, timings.ClosingTime, workingDays).
		Suffix(`ON CONFLICT (salon_id) DO UPDATE SET
			opening_time = EXCLUDED.opening_time,
			closing_time = EXCLUDED.closing_time,
			working_days = EXCLUDED.working_days,
			updated_at = NOW()
		RETURNING created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpsertTimings - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: UpsertTimings - execute upsert: %v", ErrExecQuery, err)
	}

	timings.CreatedAt = createdAt.Time
	timings.UpdatedAt = updatedAt.Time

	return timings, nil
}
