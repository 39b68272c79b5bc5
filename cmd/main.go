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
	"github.com/redis/go-redis/v9"

	cancelBookingHandler "github.com/kparturi/shop-backend/internal/api/handlers/cancel_booking"
	createBlockHandler "github.com/kparturi/shop-backend/internal/api/handlers/create_block"
	createBookingHandler "github.com/kparturi/shop-backend/internal/api/handlers/create_booking"
	deleteBlockHandler "github.com/kparturi/shop-backend/internal/api/handlers/delete_block"
	getBookingHandler "github.com/kparturi/shop-backend/internal/api/handlers/get_booking"
	getWeekSlotsHandler "github.com/kparturi/shop-backend/internal/api/handlers/get_week_slots"
	listBlocksHandler "github.com/kparturi/shop-backend/internal/api/handlers/list_blocks"
	listBookingsHandler "github.com/kparturi/shop-backend/internal/api/handlers/list_bookings"
	listServicesHandler "github.com/kparturi/shop-backend/internal/api/handlers/list_services"
	lookupStampCardHandler "github.com/kparturi/shop-backend/internal/api/handlers/lookup_stampcard"
	requestStampCardHandler "github.com/kparturi/shop-backend/internal/api/handlers/request_stampcard"
	sendVerificationCodeHandler "github.com/kparturi/shop-backend/internal/api/handlers/send_verification_code"
	updateBookingStatusHandler "github.com/kparturi/shop-backend/internal/api/handlers/update_booking_status"
	verifyStampCardHandler "github.com/kparturi/shop-backend/internal/api/handlers/verify_stampcard"
	"github.com/kparturi/shop-backend/internal/api/middleware"
	"github.com/kparturi/shop-backend/internal/config"
	"github.com/kparturi/shop-backend/internal/domain"
	"github.com/kparturi/shop-backend/internal/infra/codes"
	availabilityRepo "github.com/kparturi/shop-backend/internal/infra/storage/availability"
	bookingRepo "github.com/kparturi/shop-backend/internal/infra/storage/booking"
	serviceCatalogRepo "github.com/kparturi/shop-backend/internal/infra/storage/servicecatalog"
	stampCardRepo "github.com/kparturi/shop-backend/internal/infra/storage/stampcard"
	"github.com/kparturi/shop-backend/internal/integrations/resend"
	"github.com/kparturi/shop-backend/internal/reminder"
	bookingsService "github.com/kparturi/shop-backend/internal/service/bookings"
	scheduleService "github.com/kparturi/shop-backend/internal/service/schedule"
	createBookingUC "github.com/kparturi/shop-backend/internal/usecase/create_booking"
	getWeekSlotsUC "github.com/kparturi/shop-backend/internal/usecase/get_week_slots"
	lookupStampCardUC "github.com/kparturi/shop-backend/internal/usecase/lookup_stampcard"
	requestStampCardUC "github.com/kparturi/shop-backend/internal/usecase/request_stampcard"
	sendVerificationCodeUC "github.com/kparturi/shop-backend/internal/usecase/send_verification_code"
	verifyStampCardUC "github.com/kparturi/shop-backend/internal/usecase/verify_stampcard"
	"github.com/kparturi/shop-backend/pkg/dbmetrics"
	"github.com/kparturi/shop-backend/pkg/logger"
	"github.com/kparturi/shop-backend/pkg/metrics"
	"github.com/kparturi/shop-backend/pkg/simpletxmanager"
	"github.com/kparturi/shop-backend/pkg/txmanager"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting shop-backend...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Postgres
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Redis (verification codes and the verified-identifier cache)
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to ping redis: %v", err)
	}
	log.Info("Successfully connected to redis (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)

	// Email client
	emailClient := resend.NewClient(
		cfg.Resend.BaseURL,
		cfg.Resend.APIKey,
		cfg.Resend.FromAddress,
		time.Duration(cfg.Resend.Timeout)*time.Second,
		log,
	)
	log.Info("Resend client initialized (from=%s, timeout=%ds)", cfg.Resend.FromAddress, cfg.Resend.Timeout)

	// Repositories, wrapped with metrics when enabled
	var (
		bookingRepository      *bookingRepo.Repository
		availabilityRepository *availabilityRepo.Repository
		serviceRepository      *serviceCatalogRepo.Repository
		stampCardRepository    *stampCardRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		availabilityRepository = availabilityRepo.NewRepository(wrappedDB)
		serviceRepository = serviceCatalogRepo.NewRepository(wrappedDB)
		stampCardRepository = stampCardRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		availabilityRepository = availabilityRepo.NewRepository(db)
		serviceRepository = serviceCatalogRepo.NewRepository(db)
		stampCardRepository = stampCardRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	codeStore := codes.NewStore(redisClient, domain.VerificationCodeTTL)
	identCache := codes.NewIdentifierCache(redisClient, domain.IdentifierCacheTTL)

	// Services
	bookingSvc := bookingsService.NewService(bookingRepository, serviceRepository, log)
	scheduleSvc := scheduleService.NewService(availabilityRepository, log)

	// Use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		availabilityRepository,
		serviceRepository,
		emailClient,
		txMgr,
		cfg.Resend.AdminEmail,
		log,
	)
	getWeekSlotsUseCase := getWeekSlotsUC.NewUseCase(
		bookingRepository,
		availabilityRepository,
		serviceRepository,
		log,
	)
	lookupStampCardUseCase := lookupStampCardUC.NewUseCase(
		stampCardRepository,
		codeStore,
		identCache,
		emailClient,
		log,
	)
	sendVerificationCodeUseCase := sendVerificationCodeUC.NewUseCase(
		stampCardRepository,
		codeStore,
		emailClient,
		log,
	)
	verifyStampCardUseCase := verifyStampCardUC.NewUseCase(
		stampCardRepository,
		codeStore,
		identCache,
		log,
	)
	requestStampCardUseCase := requestStampCardUC.NewUseCase(stampCardRepository, log)

	// Handlers
	listServices := listServicesHandler.NewHandler(serviceRepository, log)
	getWeekSlots := getWeekSlotsHandler.NewHandler(getWeekSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	lookupStampCard := lookupStampCardHandler.NewHandler(lookupStampCardUseCase, log)
	sendVerificationCode := sendVerificationCodeHandler.NewHandler(sendVerificationCodeUseCase, log)
	verifyStampCard := verifyStampCardHandler.NewHandler(verifyStampCardUseCase, log)
	requestStampCard := requestStampCardHandler.NewHandler(requestStampCardUseCase, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	createBlock := createBlockHandler.NewHandler(scheduleSvc, log)
	deleteBlock := deleteBlockHandler.NewHandler(scheduleSvc, log)
	listBlocks := listBlocksHandler.NewHandler(scheduleSvc, log)

	// Router
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	// Services catalog for the booking wizard
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)

	// Weekly slot availability for a service selection
	api.HandleFunc("/slots", getWeekSlots.Handle).Methods(http.MethodGet)

	// Booking submission
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Stamp card flow
	api.HandleFunc("/stampcards/lookup", lookupStampCard.Handle).Methods(http.MethodPost)
	api.HandleFunc("/stampcards/verification-codes", sendVerificationCode.Handle).Methods(http.MethodPost)
	api.HandleFunc("/stampcards/verify", verifyStampCard.Handle).Methods(http.MethodPost)
	api.HandleFunc("/stampcards/requests", requestStampCard.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (require X-Admin-Token header)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Admin.Token))

	// Daily schedule and booking management
	admin.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// Blocked periods
	admin.HandleFunc("/blocks", listBlocks.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/blocks", createBlock.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/blocks/{blockId}", deleteBlock.Handle).Methods(http.MethodDelete)

	// Next-day reminder job
	var reminderJob *reminder.Job
	if cfg.Reminder.Enabled {
		location, err := time.LoadLocation(cfg.Reminder.Timezone)
		if err != nil {
			log.Fatal("Failed to load reminder timezone %q: %v", cfg.Reminder.Timezone, err)
		}

		reminderJob, err = reminder.NewJob(
			bookingRepository,
			serviceRepository,
			emailClient,
			reminder.RealTimeProvider{},
			log,
			cfg.Reminder.Hour,
			location,
		)
		if err != nil {
			log.Fatal("Failed to initialize reminder job: %v", err)
		}
		reminderJob.Start()
		log.Info("Reminder job scheduled daily at %02d:00 %s", cfg.Reminder.Hour, cfg.Reminder.Timezone)
	}

	// HTTP server
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if reminderJob != nil {
		reminderJob.Stop()
	}

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
