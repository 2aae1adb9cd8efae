package staff

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SalonMS-BookingService/internal/domain"
	"github.com/m04kA/SalonMS-BookingService/pkg/dbmetrics"
	"github.com/m04kA/SalonMS-BookingService/pkg/psqlbuilder"
)

var staffColumns = []string{
	"id",
	"salon_id",
	"name",
	"is_active",
	"specializations",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с сотрудниками и их перерывами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория сотрудников
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetBySalon получает сотрудников салона
// При onlyActive=false возвращает также деактивированных - нужно для
// отказоустойчивого подбора мастеров при некорректных входных данных
func (r *Repository) GetBySalon(ctx context.Context, salonID int64, onlyActive bool) ([]*domain.StaffMember, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(staffColumns...).
		From("staff_members").
		Where(squirrel.Eq{"salon_id": salonID}).
		OrderBy("id ASC")

	if onlyActive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_active": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySalon - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySalon - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	members := make([]*domain.StaffMember, 0)
	for rows.Next() {
		member, err := scanStaffRow(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetBySalon - scan row: %v", ErrScanRow, err)
		}
		members = append(members, member)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetBySalon - rows error: %v", ErrScanRow, err)
	}

	return members, nil
}

// GetByID получает сотрудника по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.StaffMember, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(staffColumns...).
		From("staff_members").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	member, err := scanStaffRow(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrStaffNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan staff member: %v", ErrScanRow, err)
	}

	return member, nil
}

// ListBreakWindows получает перерывы сотрудников салона на конкретную дату
func (r *Repository) ListBreakWindows(ctx context.Context, salonID int64, date time.Time) ([]*domain.BreakWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"b.id",
		"b.staff_id",
		"b.break_date",
		"b.start_time",
		"b.end_time",
		"b.service_ids",
		"b.combo_offer_ids",
	).
		From("staff_breaks b").
		Join("staff_members s ON s.id = b.staff_id").
		Where(squirrel.Eq{"s.salon_id": salonID}).
		Where(squirrel.Eq{"b.break_date": date.Format(domain.DateFormat)}).
		OrderBy("b.staff_id ASC, b.start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListBreakWindows - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBreakWindows - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	windows := make([]*domain.BreakWindow, 0)
	for rows.Next() {
		var window domain.BreakWindow
		err := rows.Scan(
			&window.ID,
			&window.StaffID,
			&window.Date,
			&window.StartTime,
			&window.EndTime,
			pq.Array(&window.ServiceIDs),
			pq.Array(&window.ComboOfferIDs),
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListBreakWindows - scan row: %v", ErrScanRow, err)
		}
		windows = append(windows, &window)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListBreakWindows - rows error: %v", ErrScanRow, err)
	}

	return windows, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanStaffRow(row rowScanner) (*domain.StaffMember, error) {
	var member domain.StaffMember
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&member.ID,
		&member.SalonID,
		&member.Name,
		&member.IsActive,
		pq.Array(&member.Specializations),
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	member.CreatedAt = createdAt.Time
	member.UpdatedAt = updatedAt.Time

	return &member, nil
}
