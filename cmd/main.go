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

	getAgendaHandler "github.com/GuilhermePeritto/campo-e-gole-sub000/internal/api/handlers/get_agenda"
	getCalendarHandler "github.com/GuilhermePeritto/campo-e-gole-sub000/internal/api/handlers/get_calendar"
	getReservationHandler "github.com/GuilhermePeritto/campo-e-gole-sub000/internal/api/handlers/get_reservation"
	getVenuesHandler "github.com/GuilhermePeritto/campo-e-gole-sub000/internal/api/handlers/get_venues"
	moveReservationHandler "github.com/GuilhermePeritto/campo-e-gole-sub000/internal/api/handlers/move_reservation"
	syncDateHandler "github.com/GuilhermePeritto/campo-e-gole-sub000/internal/api/handlers/sync_date"
	"github.com/GuilhermePeritto/campo-e-gole-sub000/internal/api/middleware"
	"github.com/GuilhermePeritto/campo-e-gole-sub000/internal/config"
	reservationRepo "github.com/GuilhermePeritto/campo-e-gole-sub000/internal/infra/storage/reservation"
	venueServiceClient "github.com/GuilhermePeritto/campo-e-gole-sub000/internal/integrations/venueservice"
	agendaService "github.com/GuilhermePeritto/campo-e-gole-sub000/internal/service/agenda"
	rulesService "github.com/GuilhermePeritto/campo-e-gole-sub000/internal/service/rules"
	scheduleService "github.com/GuilhermePeritto/campo-e-gole-sub000/internal/service/schedule"
	buildCalendarUC "github.com/GuilhermePeritto/campo-e-gole-sub000/internal/usecase/build_calendar"
	moveReservationUC "github.com/GuilhermePeritto/campo-e-gole-sub000/internal/usecase/move_reservation"
	syncDateUC "github.com/GuilhermePeritto/campo-e-gole-sub000/internal/usecase/sync_date"
	"github.com/GuilhermePeritto/campo-e-gole-sub000/pkg/dbmetrics"
	"github.com/GuilhermePeritto/campo-e-gole-sub000/pkg/logger"
	"github.com/GuilhermePeritto/campo-e-gole-sub000/pkg/metrics"
	"github.com/GuilhermePeritto/campo-e-gole-sub000/pkg/simpletxmanager"
	"github.com/GuilhermePeritto/campo-e-gole-sub000/pkg/txmanager"
	"github.com/GuilhermePeritto/campo-e-gole-sub000/pkg/types"
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

	log.Info("Starting EventCalendarService...")
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

	// Инициализируем клиента VenueService
	venueClient := venueServiceClient.NewClient(
		cfg.VenueService.URL,
		time.Duration(cfg.VenueService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (VenueService=%s timeout=%ds)",
		cfg.VenueService.URL, cfg.VenueService.Timeout)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}

	// Инициализируем репозиторий и transaction manager (с метриками или без)
	var (
		reservationRepository *reservationRepo.Repository
		txMgr                 TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		reservationRepository = reservationRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем хранилище расписания и загружаем снимок
	scheduleStore := scheduleService.NewService(reservationRepository, venueClient, log)

	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 30*time.Second)
	if err := scheduleStore.Load(loadCtx); err != nil {
		cancelLoad()
		log.Fatal("Failed to load schedule snapshot: %v", err)
	}
	cancelLoad()

	// Конвейер фильтрации и агрегации
	agendaSvc := agendaService.NewService(scheduleStore, log)

	// Рабочее окно и геометрия сетки из конфигурации
	windowOpen := types.TimeString(cfg.Calendar.WindowOpen)
	windowClose := types.TimeString(cfg.Calendar.WindowClose)

	openMinutes, err := windowOpen.Minutes()
	if err != nil {
		log.Fatal("Invalid calendar.window_open: %v", err)
	}
	closeMinutes, err := windowClose.Minutes()
	if err != nil {
		log.Fatal("Invalid calendar.window_close: %v", err)
	}

	geometry := buildCalendarUC.Geometry{
		WindowOpenMinutes:  openMinutes,
		WindowCloseMinutes: closeMinutes,
		SlotMinutes:        cfg.Calendar.SlotMinutes,
		PixelsPerHour:      cfg.Calendar.PixelsPerHour,
		MinEventHeightPx:   cfg.Calendar.MinEventHeightPx,
		MaxVisiblePerDay:   cfg.Calendar.MaxVisiblePerDay,
		ListWindowDays:     cfg.Calendar.ListWindowDays,
	}

	// Политика проверки переносов
	moveValidator := rulesService.NewValidator(scheduleStore, windowOpen, windowClose)

	// Инициализируем use cases
	buildCalendarUseCase := buildCalendarUC.NewUseCase(agendaSvc, scheduleStore, geometry, log)
	syncDateUseCase := syncDateUC.NewUseCase(cfg.Calendar.ListWindowDays, log)
	moveReservationUseCase := moveReservationUC.NewUseCase(scheduleStore, moveValidator, txMgr, log)

	// Инициализируем handlers
	getCalendar := getCalendarHandler.NewHandler(buildCalendarUseCase, log)
	getAgenda := getAgendaHandler.NewHandler(agendaSvc, scheduleStore, log)
	getVenues := getVenuesHandler.NewHandler(scheduleStore, agendaSvc, log)
	getReservation := getReservationHandler.NewHandler(scheduleStore, scheduleStore, log)
	moveReservation := moveReservationHandler.NewHandler(moveReservationUseCase, log)
	syncDate := syncDateHandler.NewHandler(syncDateUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Сквозной идентификатор запроса
	r.Use(middleware.RequestID)

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

	// Календарная сетка для рендеринга
	api.HandleFunc("/calendar", getCalendar.Handle).Methods(http.MethodGet)

	// Агрегаты по отфильтрованным бронированиям
	api.HandleFunc("/agenda", getAgenda.Handle).Methods(http.MethodGet)

	// Справочник площадок
	api.HandleFunc("/venues", getVenues.Handle).Methods(http.MethodGet)

	// Синхронизация мини-календаря и основного представления
	api.HandleFunc("/calendar/sync-date", syncDate.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Получение бронирования по ID
	protected.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)

	// Перенос бронирования на другой слот
	protected.HandleFunc("/reservations/{reservationId}/move", moveReservation.Handle).Methods(http.MethodPatch)

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
