package schedule

import (
	"time"

	"github.com/m04kA/SalonMS-BookingService/internal/domain"
	"github.com/m04kA/SalonMS-BookingService/pkg/types"
)

// EligibleStaff returns the staff members who can take a booking at the given
// date and start time for the selected services/combos: globally active and
// not on a declared break window covering the requested start.
//
// Fail-open contract: with a zero date or an empty/invalid start time the
// full originally-supplied roster is returned unchanged. A confusing empty
// staff list is worse for the booking form than a superset.
func EligibleStaff(
	date time.Time,
	startTime types.TimeString,
	serviceIDs []int64,
	comboOfferIDs []int64,
	allStaff []domain.StaffMember,
	breaks []domain.BreakWindow,
) []domain.StaffMember {
	if date.IsZero() || startTime.IsZero() || startTime.Validate() != nil {
		out := make([]domain.StaffMember, len(allStaff))
		copy(out, allStaff)
		return out
	}

	// Собираем множество сотрудников, у которых действует перерыв
	// на запрошенное время с учётом выбранных услуг/комбо
	onBreak := make(map[int64]bool)
	for _, w := range breaks {
		if !isSameDay(w.Date, date) {
			continue
		}
		if !w.AppliesTo(serviceIDs, comboOfferIDs) {
			continue
		}
		if w.Covers(startTime) {
			onBreak[w.StaffID] = true
		}
	}

	eligible := make([]domain.StaffMember, 0, len(allStaff))
	for _, member := range allStaff {
		if !member.IsActive {
			continue
		}
		if onBreak[member.ID] {
			continue
		}
		eligible = append(eligible, member)
	}

	return eligible
}

// IntersectStaff пересекает два набора сотрудников по ID, сохраняя порядок
// первого набора. Используется, когда базовый состав и состав "без перерывов"
// приходят из разных запросов
func IntersectStaff(base, other []domain.StaffMember) []domain.StaffMember {
	inOther := make(map[int64]bool, len(other))
	for _, m := range other {
		inOther[m.ID] = true
	}

	out := make([]domain.StaffMember, 0, len(base))
	for _, m := range base {
		if inOther[m.ID] {
			out = append(out, m)
		}
	}
	return out
}
