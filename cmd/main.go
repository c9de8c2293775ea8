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

	cancelBookingHandler "github.com/m04kA/GameNet-ReservationService/internal/api/handlers/cancel_booking"
	clearSelectionHandler "github.com/m04kA/GameNet-ReservationService/internal/api/handlers/clear_selection"
	confirmBookingHandler "github.com/m04kA/GameNet-ReservationService/internal/api/handlers/confirm_booking"
	extendSelectionHandler "github.com/m04kA/GameNet-ReservationService/internal/api/handlers/extend_selection"
	getAvailableSlotsHandler "github.com/m04kA/GameNet-ReservationService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/GameNet-ReservationService/internal/api/handlers/get_booking"
	getSelectionHandler "github.com/m04kA/GameNet-ReservationService/internal/api/handlers/get_selection"
	getTerminalScheduleHandler "github.com/m04kA/GameNet-ReservationService/internal/api/handlers/get_terminal_schedule"
	getUserBookingsHandler "github.com/m04kA/GameNet-ReservationService/internal/api/handlers/get_user_bookings"
	listTerminalsHandler "github.com/m04kA/GameNet-ReservationService/internal/api/handlers/list_terminals"
	shrinkSelectionHandler "github.com/m04kA/GameNet-ReservationService/internal/api/handlers/shrink_selection"
	startSelectionHandler "github.com/m04kA/GameNet-ReservationService/internal/api/handlers/start_selection"
	"github.com/m04kA/GameNet-ReservationService/internal/api/middleware"
	"github.com/m04kA/GameNet-ReservationService/internal/config"
	bookingRepo "github.com/m04kA/GameNet-ReservationService/internal/infra/storage/booking"
	scheduleRepo "github.com/m04kA/GameNet-ReservationService/internal/infra/storage/schedule"
	terminalRepo "github.com/m04kA/GameNet-ReservationService/internal/infra/storage/terminal"
	"github.com/m04kA/GameNet-ReservationService/internal/integrations/events"
	bookingsService "github.com/m04kA/GameNet-ReservationService/internal/service/bookings"
	selectionService "github.com/m04kA/GameNet-ReservationService/internal/service/selection"
	terminalsService "github.com/m04kA/GameNet-ReservationService/internal/service/terminals"
	confirmBookingUC "github.com/m04kA/GameNet-ReservationService/internal/usecase/confirm_booking"
	getAvailableSlotsUC "github.com/m04kA/GameNet-ReservationService/internal/usecase/get_available_slots"
	"github.com/m04kA/GameNet-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/GameNet-ReservationService/pkg/logger"
	"github.com/m04kA/GameNet-ReservationService/pkg/metrics"
	"github.com/m04kA/GameNet-ReservationService/pkg/simpletxmanager"
	"github.com/m04kA/GameNet-ReservationService/pkg/txmanager"
)

// systemClock источник текущего времени для витрины терминалов
type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

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

	log.Info("Starting GameNet-ReservationService...")
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

	// Инициализируем публикацию событий
	var publisher interface {
		Publish(ctx context.Context, key string, event interface{}) error
	}
	if cfg.Events.Enabled {
		rabbitPublisher, err := events.NewPublisher(cfg.Events.URL, cfg.Events.Exchange, log)
		if err != nil {
			log.Fatal("Failed to connect to message broker: %v", err)
		}
		defer rabbitPublisher.Close()
		publisher = rabbitPublisher
		log.Info("Event publisher connected (exchange=%s)", cfg.Events.Exchange)
	} else {
		publisher = events.NopPublisher{}
		log.Info("Event publishing disabled")
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository  *bookingRepo.Repository
		scheduleRepository *scheduleRepo.Repository
		terminalRepository *terminalRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases и сервисах)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		terminalRepository = terminalRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		terminalRepository = terminalRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	terminalsSvc := terminalsService.NewService(
		terminalRepository,
		scheduleRepository,
		systemClock{},
		log,
	)
	selectionSvc := selectionService.NewService(
		scheduleRepository,
		terminalRepository,
		cfg.Pricing.HourlyRate,
		log,
	)
	bookingsSvc := bookingsService.NewService(
		bookingRepository,
		scheduleRepository,
		txMgr,
		publisher,
		log,
	)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		scheduleRepository,
		terminalRepository,
		log,
	)
	confirmBookingUseCase := confirmBookingUC.NewUseCase(
		scheduleRepository,
		bookingRepository,
		terminalRepository,
		txMgr,
		publisher,
		log,
	)

	// Инициализируем handlers
	listTerminals := listTerminalsHandler.NewHandler(terminalsSvc, log)
	getTerminalSchedule := getTerminalScheduleHandler.NewHandler(terminalsSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	startSelection := startSelectionHandler.NewHandler(selectionSvc, log)
	extendSelection := extendSelectionHandler.NewHandler(selectionSvc, log)
	shrinkSelection := shrinkSelectionHandler.NewHandler(selectionSvc, log)
	getSelection := getSelectionHandler.NewHandler(selectionSvc, log)
	clearSelection := clearSelectionHandler.NewHandler(selectionSvc, log)
	confirmBooking := confirmBookingHandler.NewHandler(confirmBookingUseCase, selectionSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingsSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingsSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
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

	// Список терминалов зала с текущим статусом
	api.HandleFunc("/terminals", listTerminals.Handle).Methods(http.MethodGet)

	// Полное дневное расписание терминала
	api.HandleFunc("/terminals/{terminalId}/schedule", getTerminalSchedule.Handle).Methods(http.MethodGet)

	// Доступные слоты терминала
	api.HandleFunc("/terminals/{terminalId}/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Выбор окна бронирования ---
	protected.HandleFunc("/selection", startSelection.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/selection", getSelection.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/selection", clearSelection.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/selection/extend", extendSelection.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/selection/shrink", shrinkSelection.Handle).Methods(http.MethodPost)

	// --- Бронирования ---
	// Подтверждение текущего окна выбора
	protected.HandleFunc("/bookings", confirmBooking.Handle).Methods(http.MethodPost)

	// История бронирований клиента
	protected.HandleFunc("/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

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
