package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SalonMS-BookingService/internal/domain"
	salonRepo "github.com/m04kA/SalonMS-BookingService/internal/infra/storage/salon"
	"github.com/m04kA/SalonMS-BookingService/internal/integrations/crmservice"
	"github.com/m04kA/SalonMS-BookingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fixedTime struct{ now time.Time }

func (p fixedTime) Now() time.Time { return p.now }

// fakeTxManager выполняет функцию без реальной транзакции
type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type stubBookingRepo struct {
	create func(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	list   func(ctx context.Context, filter domain.SalonBookingsFilter) ([]*domain.Booking, error)
}

func (s *stubBookingRepo) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	return s.create(ctx, booking)
}

func (s *stubBookingRepo) GetBySalonWithFilter(ctx context.Context, filter domain.SalonBookingsFilter) ([]*domain.Booking, error) {
	return s.list(ctx, filter)
}

type stubSalonRepo struct {
	timings *domain.SalonTimings
	err     error
}

func (s *stubSalonRepo) GetTimings(ctx context.Context, salonID int64) (*domain.SalonTimings, error) {
	return s.timings, s.err
}

type stubStaffRepo struct {
	roster []*domain.StaffMember
	breaks []*domain.BreakWindow
}

func (s *stubStaffRepo) GetBySalon(ctx context.Context, salonID int64, onlyActive bool) ([]*domain.StaffMember, error) {
	return s.roster, nil
}

func (s *stubStaffRepo) ListBreakWindows(ctx context.Context, salonID int64, date time.Time) ([]*domain.BreakWindow, error) {
	return s.breaks, nil
}

type stubCatalogRepo struct {
	services []*domain.Service
	combos   []*domain.ComboOffer
}

func (s *stubCatalogRepo) GetServicesByIDs(ctx context.Context, ids []int64) ([]*domain.Service, error) {
	return s.services, nil
}

func (s *stubCatalogRepo) GetComboOffersByIDs(ctx context.Context, ids []int64) ([]*domain.ComboOffer, error) {
	return s.combos, nil
}

type stubCRMClient struct {
	customer *crmservice.Customer
	err      error
}

func (s *stubCRMClient) GetCustomerWithGracefulDegradation(ctx context.Context, customerID int64) (*crmservice.Customer, error) {
	return s.customer, s.err
}

var testNow = time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)

// 7 сентября 2026 - понедельник
var testDate = time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC)

func validRequest() *Request {
	return &Request{
		SalonID:      10,
		CustomerID:   100,
		StaffID:      1,
		Date:         testDate,
		StartTime:    "10:00",
		ServiceIDs:   []int64{5},
		CustomerName: "Анна",
	}
}

func newTestUseCase(
	bookingRepo BookingRepository,
	salon SalonRepository,
	staff StaffRepository,
	catalog CatalogRepository,
	crm CRMServiceClient,
) *UseCase {
	uc := NewUseCase(bookingRepo, salon, staff, catalog, crm, fakeTxManager{}, nopLogger{})
	uc.timeProvider = fixedTime{now: testNow}
	return uc
}

func defaultMocks() (*stubBookingRepo, *stubSalonRepo, *stubStaffRepo, *stubCatalogRepo, *stubCRMClient) {
	bookingRepo := &stubBookingRepo{
		create: func(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
			created := *booking
			created.ID = 42
			created.CreatedAt = testNow
			created.UpdatedAt = testNow
			return &created, nil
		},
		list: func(ctx context.Context, filter domain.SalonBookingsFilter) ([]*domain.Booking, error) {
			return nil, nil
		},
	}
	salon := &stubSalonRepo{
		timings: &domain.SalonTimings{
			SalonID:     10,
			OpeningTime: "09:00",
			ClosingTime: "20:00",
		},
	}
	staff := &stubStaffRepo{
		roster: []*domain.StaffMember{
			{ID: 1, SalonID: 10, Name: "Алина", IsActive: true},
		},
	}
	catalog := &stubCatalogRepo{
		services: []*domain.Service{
			{ID: 5, SalonID: 10, Name: "Стрижка", Price: 1500, DurationMinutes: 45, IsActive: true},
		},
	}
	crm := &stubCRMClient{
		customer: &crmservice.Customer{ID: 100, Name: "Анна Петрова"},
	}
	return bookingRepo, salon, staff, catalog, crm
}

func TestExecute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(req *Request)
	}{
		{name: "zero salon", mutate: func(req *Request) { req.SalonID = 0 }},
		{name: "zero customer", mutate: func(req *Request) { req.CustomerID = 0 }},
		{name: "zero staff", mutate: func(req *Request) { req.StaffID = 0 }},
		{name: "zero date", mutate: func(req *Request) { req.Date = time.Time{} }},
		{name: "empty start time", mutate: func(req *Request) { req.StartTime = "" }},
		{name: "malformed start time", mutate: func(req *Request) { req.StartTime = "10am" }},
		{name: "malformed end time", mutate: func(req *Request) { req.EndTime = "late" }},
	}

	uc := newTestUseCase(defaultMocks())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_PastDate(t *testing.T) {
	uc := newTestUseCase(defaultMocks())

	req := validRequest()
	req.Date = time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_SalonClosedDay(t *testing.T) {
	bookingRepo, salon, staff, catalog, crm := defaultMocks()
	// Рабочие дни вт-сб, запрошенный понедельник закрыт
	salon.timings.WorkingDays = []int{2, 3, 4, 5, 6}

	uc := newTestUseCase(bookingRepo, salon, staff, catalog, crm)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSalonClosed)
}

func TestExecute_TimeOutsideSlotGrid(t *testing.T) {
	uc := newTestUseCase(defaultMocks())

	req := validRequest()
	req.StartTime = "10:15"

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestExecute_StaffBusy(t *testing.T) {
	bookingRepo, salon, staff, catalog, crm := defaultMocks()
	bookingRepo.list = func(ctx context.Context, filter domain.SalonBookingsFilter) ([]*domain.Booking, error) {
		return []*domain.Booking{
			{ID: 7, StaffID: 1, StartTime: "10:30", DurationMinutes: 60, Status: domain.StatusConfirmed},
		}, nil
	}

	uc := newTestUseCase(bookingRepo, salon, staff, catalog, crm)

	// Запрошенный интервал 10:00-10:45 пересекается с 10:30-11:30
	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_CancelledBookingDoesNotBlock(t *testing.T) {
	bookingRepo, salon, staff, catalog, crm := defaultMocks()
	bookingRepo.list = func(ctx context.Context, filter domain.SalonBookingsFilter) ([]*domain.Booking, error) {
		return []*domain.Booking{
			{ID: 7, StaffID: 1, StartTime: "10:00", DurationMinutes: 60, Status: domain.StatusCancelled},
		}, nil
	}

	uc := newTestUseCase(bookingRepo, salon, staff, catalog, crm)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
}

func TestExecute_StaffOnBreak(t *testing.T) {
	bookingRepo, salon, staff, catalog, crm := defaultMocks()
	staff.breaks = []*domain.BreakWindow{
		{StaffID: 1, Date: testDate, StartTime: "10:00", EndTime: "11:00"},
	}

	uc := newTestUseCase(bookingRepo, salon, staff, catalog, crm)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrStaffNotEligible)
}

func TestExecute_Success_DurationFromServices(t *testing.T) {
	var created *domain.Booking
	bookingRepo, salon, staff, catalog, crm := defaultMocks()
	baseCreate := bookingRepo.create
	bookingRepo.create = func(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
		created = booking
		return baseCreate(ctx, booking)
	}

	uc := newTestUseCase(bookingRepo, salon, staff, catalog, crm)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, 45, resp.DurationMinutes)
	assert.Equal(t, types.TimeString("10:45"), resp.EndTime)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, string(domain.PaymentUnpaid), resp.PaymentStatus)

	// Имя приходит из CRM, данные каталога денормализуются
	require.NotNil(t, created)
	assert.Equal(t, "Анна Петрова", created.CustomerName)
	assert.Equal(t, []string{"Стрижка"}, created.ServiceNames)
	assert.Equal(t, 1500.0, created.TotalPrice)
}

func TestExecute_ExplicitEndTimeWins(t *testing.T) {
	uc := newTestUseCase(defaultMocks())

	req := validRequest()
	req.EndTime = "12:00"

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, 120, resp.DurationMinutes)
	assert.Equal(t, types.TimeString("12:00"), resp.EndTime)
}

func TestExecute_CRMDegradedFallsBackToRequestName(t *testing.T) {
	bookingRepo, salon, staff, catalog, _ := defaultMocks()
	crm := &stubCRMClient{err: crmservice.ErrServiceDegraded}

	var created *domain.Booking
	baseCreate := bookingRepo.create
	bookingRepo.create = func(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
		created = booking
		return baseCreate(ctx, booking)
	}

	uc := newTestUseCase(bookingRepo, salon, staff, catalog, crm)

	_, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "Анна", created.CustomerName)
}

func TestExecute_MissingTimingsUseDefaults(t *testing.T) {
	bookingRepo, _, staff, catalog, crm := defaultMocks()
	salon := &stubSalonRepo{err: salonRepo.ErrTimingsNotFound}

	uc := newTestUseCase(bookingRepo, salon, staff, catalog, crm)

	// Расписание не настроено - действует сетка по умолчанию 09:00-20:00
	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
}
