package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/m04kA/SalonMS-BookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SalonMS-BookingService/internal/api/handlers/create_booking"
	getBookingHandler "github.com/m04kA/SalonMS-BookingService/internal/api/handlers/get_booking"
	getCustomerBookingsHandler "github.com/m04kA/SalonMS-BookingService/internal/api/handlers/get_customer_bookings"
	getDayScheduleHandler "github.com/m04kA/SalonMS-BookingService/internal/api/handlers/get_day_schedule"
	getEligibleStaffHandler "github.com/m04kA/SalonMS-BookingService/internal/api/handlers/get_eligible_staff"
	getSalonBookingsHandler "github.com/m04kA/SalonMS-BookingService/internal/api/handlers/get_salon_bookings"
	getSalonTimingsHandler "github.com/m04kA/SalonMS-BookingService/internal/api/handlers/get_salon_timings"
	getWeekOverviewHandler "github.com/m04kA/SalonMS-BookingService/internal/api/handlers/get_week_overview"
	rescheduleBookingHandler "github.com/m04kA/SalonMS-BookingService/internal/api/handlers/reschedule_booking"
	updateBookingStatusHandler "github.com/m04kA/SalonMS-BookingService/internal/api/handlers/update_booking_status"
	updatePaymentStatusHandler "github.com/m04kA/SalonMS-BookingService/internal/api/handlers/update_payment_status"
	updateSalonTimingsHandler "github.com/m04kA/SalonMS-BookingService/internal/api/handlers/update_salon_timings"
	"github.com/m04kA/SalonMS-BookingService/internal/api/middleware"
	"github.com/m04kA/SalonMS-BookingService/internal/config"
	bookingRepo "github.com/m04kA/SalonMS-BookingService/internal/infra/storage/booking"
	catalogRepo "github.com/m04kA/SalonMS-BookingService/internal/infra/storage/catalog"
	salonRepo "github.com/m04kA/SalonMS-BookingService/internal/infra/storage/salon"
	staffRepo "github.com/m04kA/SalonMS-BookingService/internal/infra/storage/staff"
	crmServiceClient "github.com/m04kA/SalonMS-BookingService/internal/integrations/crmservice"
	bookingsService "github.com/m04kA/SalonMS-BookingService/internal/service/bookings"
	salonConfigService "github.com/m04kA/SalonMS-BookingService/internal/service/salonconfig"
	createBookingUC "github.com/m04kA/SalonMS-BookingService/internal/usecase/create_booking"
	getDayScheduleUC "github.com/m04kA/SalonMS-BookingService/internal/usecase/get_day_schedule"
	getEligibleStaffUC "github.com/m04kA/SalonMS-BookingService/internal/usecase/get_eligible_staff"
	getWeekOverviewUC "github.com/m04kA/SalonMS-BookingService/internal/usecase/get_week_overview"
	rescheduleBookingUC "github.com/m04kA/SalonMS-BookingService/internal/usecase/reschedule_booking"
	"github.com/m04kA/SalonMS-BookingService/pkg/dbmetrics"
	"github.com/m04kA/SalonMS-BookingService/pkg/logger"
	"github.com/m04kA/SalonMS-BookingService/pkg/metrics"
	"github.com/m04kA/SalonMS-BookingService/pkg/simpletxmanager"
	"github.com/m04kA/SalonMS-BookingService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SalonMS-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем клиент CRM-сервиса
	crmClient := crmServiceClient.NewClient(
		cfg.CRMService.URL,
		time.Duration(cfg.CRMService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (CRMService=%s timeout=%ds)",
		cfg.CRMService.URL, cfg.CRMService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		salonRepository   *salonRepo.Repository
		staffRepository   *staffRepo.Repository
		catalogRepository *catalogRepo.Repository
	)

	// Интерфейс transaction manager-а (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		salonRepository = salonRepo.NewRepository(wrappedDB)
		staffRepository = staffRepo.NewRepository(wrappedDB)
		catalogRepository = catalogRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		salonRepository = salonRepo.NewRepository(db)
		staffRepository = staffRepo.NewRepository(db)
		catalogRepository = catalogRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		staffRepository,
		log,
	)
	salonConfigSvc := salonConfigService.NewService(
		salonRepository,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		salonRepository,
		staffRepository,
		catalogRepository,
		crmClient,
		txMgr,
		log,
	)
	rescheduleBookingUseCase := rescheduleBookingUC.NewUseCase(
		bookingRepository,
		salonRepository,
		staffRepository,
		txMgr,
		log,
	)
	getDayScheduleUseCase := getDayScheduleUC.NewUseCase(salonRepository, bookingRepository, log)
	getWeekOverviewUseCase := getWeekOverviewUC.NewUseCase(bookingRepository, log)
	getEligibleStaffUseCase := getEligibleStaffUC.NewUseCase(staffRepository, log)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	rescheduleBooking := rescheduleBookingHandler.NewHandler(rescheduleBookingUseCase, log)
	getDaySchedule := getDayScheduleHandler.NewHandler(getDayScheduleUseCase, log)
	getWeekOverview := getWeekOverviewHandler.NewHandler(getWeekOverviewUseCase, log)
	getEligibleStaff := getEligibleStaffHandler.NewHandler(getEligibleStaffUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	updatePaymentStatus := updatePaymentStatusHandler.NewHandler(bookingSvc, log)
	getCustomerBookings := getCustomerBookingsHandler.NewHandler(bookingSvc, log)
	getSalonBookings := getSalonBookingsHandler.NewHandler(bookingSvc, log)
	getSalonTimings := getSalonTimingsHandler.NewHandler(salonConfigSvc, log)
	updateSalonTimings := updateSalonTimingsHandler.NewHandler(salonConfigSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Дневная сетка слотов салона
	api.HandleFunc("/salons/{salonId}/schedule", getDaySchedule.Handle).Methods(http.MethodGet)

	// Недельный обзор календаря
	api.HandleFunc("/salons/{salonId}/week-overview", getWeekOverview.Handle).Methods(http.MethodGet)

	// Мастера, доступные для выбранных услуг и времени
	api.HandleFunc("/salons/{salonId}/eligible-staff", getEligibleStaff.Handle).Methods(http.MethodGet)

	// Расписание работы салона
	api.HandleFunc("/salons/{salonId}/timings", getSalonTimings.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Перенос бронирования на другой слот
	protected.HandleFunc("/bookings/{bookingId}/reschedule", rescheduleBooking.Handle).Methods(http.MethodPatch)

	// Смена статуса бронирования (для сотрудников салона)
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// Смена статуса оплаты (для сотрудников салона)
	protected.HandleFunc("/bookings/{bookingId}/payment-status", updatePaymentStatus.Handle).Methods(http.MethodPatch)

	// История бронирований клиента
	protected.HandleFunc("/customers/{customerId}/bookings", getCustomerBookings.Handle).Methods(http.MethodGet)

	// --- Управление салоном (для сотрудников) ---
	// Список бронирований салона
	protected.HandleFunc("/salons/{salonId}/bookings", getSalonBookings.Handle).Methods(http.MethodGet)

	// Обновление расписания работы салона
	protected.HandleFunc("/salons/{salonId}/timings", updateSalonTimings.Handle).Methods(http.MethodPut)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
