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
	_ "time/tzdata"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	getAvailableBarbersHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_available_barbers"
	getAvailableSlotsHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_available_slots"
	getBarberAgendaHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_barber_agenda"
	getShopScheduleHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_shop_schedule"
	healthHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/health"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/SMC-AvailabilityService/internal/config"
	scheduleCache "github.com/m04kA/SMC-AvailabilityService/internal/infra/cache/schedule"
	barberRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/barber"
	bookingRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/booking"
	scheduleRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/schedule"
	serviceRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/service"
	"github.com/m04kA/SMC-AvailabilityService/internal/infra/supabase"
	bookingsService "github.com/m04kA/SMC-AvailabilityService/internal/service/bookings"
	scheduleService "github.com/m04kA/SMC-AvailabilityService/internal/service/schedule"
	getAvailableBarbersUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_barbers"
	getAvailableSlotsUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
	"github.com/m04kA/SMC-AvailabilityService/pkg/metrics"
)

// repositories источники данных для use case'ов, независимо от драйвера хранилища
type repositories struct {
	schedule getAvailableSlotsUC.ScheduleRepository
	bookings getAvailableSlotsUC.BookingRepository
	services getAvailableSlotsUC.ServiceRepository
	lunch    getAvailableSlotsUC.BarberRepository
	barbers  getAvailableBarbersUC.BarberRepository
	health   healthHandler.Pinger
	close    func()
}

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

	log.Info("Starting SMC-AvailabilityService...")
	log.Info("Configuration loaded from config.toml (storage=%s, timezone=%s, interval=%dm)",
		cfg.Storage.Driver, cfg.Availability.Timezone, cfg.Availability.SlotIntervalMinutes)

	location, err := cfg.Availability.Location()
	if err != nil {
		log.Fatal("Failed to load timezone %s: %v", cfg.Availability.Timezone, err)
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем хранилище
	var repos *repositories
	switch cfg.Storage.Driver {
	case config.StorageDriverSupabase:
		repos, err = newSupabaseRepositories(cfg)
	default:
		repos, err = newPostgresRepositories(cfg, metricsCollector, stopMetricsCh, log)
	}
	if err != nil {
		log.Fatal("Failed to initialize storage: %v", err)
	}
	defer repos.close()

	// Кеш расписания в Redis (опционально)
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			log.Warn("Redis at %s is not reachable, schedule cache disabled: %v", cfg.Redis.Addr, err)
		} else {
			repos.schedule = scheduleCache.NewRepository(redisClient, repos.schedule, cfg.Redis.ScheduleTTL(), log)
			log.Info("Schedule cache enabled (redis=%s, ttl=%s)", cfg.Redis.Addr, cfg.Redis.ScheduleTTL())
		}
		cancel()
	}

	// Инициализируем use cases
	var ucMetrics getAvailableSlotsUC.Metrics
	if metricsCollector != nil {
		ucMetrics = metricsCollector
	}

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		repos.schedule,
		repos.bookings,
		repos.services,
		repos.lunch,
		ucMetrics,
		getAvailableSlotsUC.Settings{
			SlotIntervalMinutes: cfg.Availability.SlotIntervalMinutes,
			Location:            location,
		},
		log,
	)

	getAvailableBarbersUseCase := getAvailableBarbersUC.NewUseCase(
		repos.barbers,
		getAvailableSlotsUseCase,
		cfg.Availability.BarberSearchConcurrency,
		log,
	)

	// Инициализируем сервисы чтения
	scheduleSvc := scheduleService.NewService(
		repos.schedule,
		scheduleService.Settings{
			SlotIntervalMinutes: cfg.Availability.SlotIntervalMinutes,
			Timezone:            cfg.Availability.Timezone,
		},
		log,
	)
	bookingsSvc := bookingsService.NewService(repos.bookings, repos.lunch, log)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getAvailableBarbers := getAvailableBarbersHandler.NewHandler(getAvailableBarbersUseCase, log)
	getShopSchedule := getShopScheduleHandler.NewHandler(scheduleSvc, log)
	getBarberAgenda := getBarberAgendaHandler.NewHandler(bookingsSvc, log)
	health := healthHandler.NewHandler(repos.health, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(log))
	r.Use(middleware.Logging(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Свободные слоты мастера на дату
	api.HandleFunc("/shops/{shopId}/barbers/{barberId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Мастера, свободные в указанное время
	api.HandleFunc("/shops/{shopId}/available-barbers",
		getAvailableBarbers.Handle).Methods(http.MethodGet)

	// Недельное расписание барбершопа
	api.HandleFunc("/shops/{shopId}/schedule",
		getShopSchedule.Handle).Methods(http.MethodGet)

	// Занятость мастера на дату
	api.HandleFunc("/shops/{shopId}/barbers/{barberId}/bookings",
		getBarberAgenda.Handle).Methods(http.MethodGet)

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
	close(stopMetricsCh)

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

// newPostgresRepositories подключается к Postgres и собирает репозитории (с метриками, если они включены)
func newPostgresRepositories(
	cfg *config.Config,
	metricsCollector *metrics.Metrics,
	stopMetricsCh <-chan struct{},
	log *logger.Logger,
) (*repositories, error) {
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	var (
		executor dbmetrics.DBExecutor = db
		pinger   healthHandler.Pinger = db
	)
	if metricsCollector != nil {
		wrapped := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		executor, pinger = wrapped, wrapped
		log.Info("Database metrics collection started")
	}

	barbers := barberRepo.NewRepository(executor)

	return &repositories{
		schedule: scheduleRepo.NewRepository(executor),
		bookings: bookingRepo.NewRepository(executor),
		services: serviceRepo.NewRepository(executor),
		lunch:    barbers,
		barbers:  barbers,
		health:   pinger,
		close:    func() { db.Close() },
	}, nil
}

// newSupabaseRepositories читает те же таблицы через PostgREST проекта Supabase
func newSupabaseRepositories(cfg *config.Config) (*repositories, error) {
	client, err := supabase.NewClient(cfg.Supabase.URL, cfg.Supabase.Key)
	if err != nil {
		return nil, err
	}

	store := supabase.NewStore(client, cfg.Supabase.RequestTimeout())

	return &repositories{
		schedule: store,
		bookings: store,
		services: store,
		lunch:    store,
		barbers:  store,
		health:   store,
		close:    func() {},
	}, nil
}
