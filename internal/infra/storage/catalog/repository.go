package catalog

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

// Repository репозиторий для чтения каталога услуг и комбо-предложений
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetServicesByIDs получает услуги по списку ID
// Отсутствующие ID молча пропускаются - вызывающая сторона сама решает,
// критично ли это (при расчёте длительности пропуски не фатальны)
func (r *Repository) GetServicesByIDs(ctx context.Context, ids []int64) ([]*domain.Service, error) {
	if len(ids) == 0 {
		return []*domain.Service{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"salon_id",
		"name",
		"price",
		"duration_minutes",
		"duration_text",
		"is_active",
		"created_at",
		"updated_at",
	).
		From("services").
		Where(squirrel.Eq{"id": ids}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetServicesByIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetServicesByIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.Service, 0, len(ids))
	for rows.Next() {
		var svc domain.Service
		var durationMinutes sql.NullInt64
		var durationText sql.NullString
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&svc.ID,
			&svc.SalonID,
			&svc.Name,
			&svc.Price,
			&durationMinutes,
			&durationText,
			&svc.IsActive,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetServicesByIDs - scan row: %v", ErrScanRow, err)
		}

		svc.DurationMinutes = int(durationMinutes.Int64)
		svc.DurationText = durationText.String
		svc.CreatedAt = createdAt.Time
		svc.UpdatedAt = updatedAt.Time
		services = append(services, &svc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetServicesByIDs - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}

// GetComboOffersByIDs получает комбо-предложения по списку ID
func (r *Repository) GetComboOffersByIDs(ctx context.Context, ids []int64) ([]*domain.ComboOffer, error) {
	if len(ids) == 0 {
		return []*domain.ComboOffer{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"salon_id",
		"name",
		"service_ids",
		"price",
		"duration_minutes",
		"duration_text",
		"is_active",
		"created_at",
		"updated_at",
	).
		From("combo_offers").
		Where(squirrel.Eq{"id": ids}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetComboOffersByIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetComboOffersByIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	combos := make([]*domain.ComboOffer, 0, len(ids))
	for rows.Next() {
		var combo domain.ComboOffer
		var durationMinutes sql.NullInt64
		var durationText sql.NullString
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&combo.ID,
			&combo.SalonID,
			&combo.Name,
			pq.Array(&combo.ServiceIDs),
			&combo.Price,
			&durationMinutes,
			&durationText,
			&combo.IsActive,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetComboOffersByIDs - scan row: %v", ErrScanRow, err)
		}

		combo.DurationMinutes = int(durationMinutes.Int64)
		combo.DurationText = durationText.String
		combo.CreatedAt = createdAt.Time
		combo.UpdatedAt = updatedAt.Time
		combos = append(combos, &combo)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetComboOffersByIDs - rows error: %v", ErrScanRow, err)
	}

	return combos, nil
}
