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

	createReservationHandler "github.com/tuj-devs/officehours-service/internal/api/handlers/create_reservation"
	getAvailabilityHandler "github.com/tuj-devs/officehours-service/internal/api/handlers/get_availability"
	getAvailableSlotsHandler "github.com/tuj-devs/officehours-service/internal/api/handlers/get_available_slots"
	getProfessorReservationsHandler "github.com/tuj-devs/officehours-service/internal/api/handlers/get_professor_reservations"
	getReservationHandler "github.com/tuj-devs/officehours-service/internal/api/handlers/get_reservation"
	getStudentReservationsHandler "github.com/tuj-devs/officehours-service/internal/api/handlers/get_student_reservations"
	getUserSettingsHandler "github.com/tuj-devs/officehours-service/internal/api/handlers/get_user_settings"
	listProfessorsHandler "github.com/tuj-devs/officehours-service/internal/api/handlers/list_professors"
	setAvailabilityHandler "github.com/tuj-devs/officehours-service/internal/api/handlers/set_availability"
	updateUserSettingsHandler "github.com/tuj-devs/officehours-service/internal/api/handlers/update_user_settings"
	upsertProfessorProfileHandler "github.com/tuj-devs/officehours-service/internal/api/handlers/upsert_professor_profile"
	"github.com/tuj-devs/officehours-service/internal/api/middleware"
	"github.com/tuj-devs/officehours-service/internal/config"
	"github.com/tuj-devs/officehours-service/internal/events"
	settingsCache "github.com/tuj-devs/officehours-service/internal/infra/cache/settings"
	availabilityRepo "github.com/tuj-devs/officehours-service/internal/infra/storage/availability"
	professorRepo "github.com/tuj-devs/officehours-service/internal/infra/storage/professor"
	reservationRepo "github.com/tuj-devs/officehours-service/internal/infra/storage/reservation"
	"github.com/tuj-devs/officehours-service/internal/infra/watchpg"
	availabilityService "github.com/tuj-devs/officehours-service/internal/service/availability"
	professorsService "github.com/tuj-devs/officehours-service/internal/service/professors"
	reservationsService "github.com/tuj-devs/officehours-service/internal/service/reservations"
	settingsService "github.com/tuj-devs/officehours-service/internal/service/settings"
	createReservationUC "github.com/tuj-devs/officehours-service/internal/usecase/create_reservation"
	getAvailableSlotsUC "github.com/tuj-devs/officehours-service/internal/usecase/get_available_slots"
	"github.com/tuj-devs/officehours-service/internal/watch"
	"github.com/tuj-devs/officehours-service/pkg/logger"
	"github.com/tuj-devs/officehours-service/pkg/metrics"
	"github.com/tuj-devs/officehours-service/pkg/txmanager"
)

const dbStatsInterval = 15 * time.Second

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

	log.Info("Starting officehours-service...")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

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

	if cfg.Metrics.Enabled {
		go metricsCollector.CollectDBStats(db, cfg.Database.DBName, dbStatsInterval, stopMetricsCh)
		log.Info("Database metrics collection started")
	}

	// Settings live in Redis when it is configured, otherwise in a
	// process-local cache.
	var settingsStore settingsService.SettingsCache
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		defer redisClient.Close()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Fatal("Failed to ping redis: %v", err)
		}
		settingsStore = settingsCache.NewCache(redisClient)
		log.Info("Settings cache backed by redis at %s", cfg.Redis.Addr)
	} else {
		settingsStore = settingsCache.NewMemoryCache()
		log.Info("Settings cache backed by process memory (redis disabled)")
	}

	var publisher events.Publisher
	if cfg.AMQP.Enabled {
		amqpPublisher, err := events.NewAMQPPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange, log)
		if err != nil {
			log.Fatal("Failed to connect to amqp broker: %v", err)
		}
		publisher = amqpPublisher
		log.Info("Reservation events published to exchange %q", cfg.AMQP.Exchange)
	} else {
		publisher = events.NewNoopPublisher()
	}
	defer publisher.Close()

	professorRepository := professorRepo.NewRepository(db)
	availabilityRepository := availabilityRepo.NewRepository(db)
	reservationRepository := reservationRepo.NewRepository(db)
	txMgr := txmanager.NewTransactionManager(db)

	hub := watch.NewHub(log)
	defer hub.Close()

	pgListener := watchpg.New(cfg.Database.DSN(), cfg.Watch.PGChannel, hub, log)
	if err := pgListener.Start(ctx); err != nil {
		log.Fatal("Failed to start reservation event listener: %v", err)
	}
	defer pgListener.Close()
	log.Info("Listening for reservation events on channel %q", cfg.Watch.PGChannel)

	settingsSvc := settingsService.NewService(settingsStore, log)
	professorsSvc := professorsService.NewService(professorRepository, log)
	availabilitySvc := availabilityService.NewService(availabilityRepository, professorRepository, log)
	reservationsSvc := reservationsService.NewService(reservationRepository, settingsSvc, hub, log)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(availabilityRepository, reservationRepository, log)
	createReservationUseCase := createReservationUC.NewUseCase(
		professorRepository,
		availabilityRepository,
		reservationRepository,
		txMgr,
		hub,
		publisher,
		log,
	)

	listProfessors := listProfessorsHandler.NewHandler(professorsSvc, log)
	upsertProfessorProfile := upsertProfessorProfileHandler.NewHandler(professorsSvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(availabilitySvc, log)
	setAvailability := setAvailabilityHandler.NewHandler(availabilitySvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	getStudentReservations := getStudentReservationsHandler.NewHandler(reservationsSvc, log)
	getProfessorReservations := getProfessorReservationsHandler.NewHandler(reservationsSvc, log)
	getUserSettings := getUserSettingsHandler.NewHandler(settingsSvc, log)
	updateUserSettings := updateUserSettingsHandler.NewHandler(settingsSvc, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes
	api.HandleFunc("/professors", listProfessors.Handle).Methods(http.MethodGet)
	api.HandleFunc("/professors/{professorId}/availability", getAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/professors/{professorId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Protected routes (require X-User-ID header)
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(log))

	protected.HandleFunc("/professors/{professorId}/profile", upsertProfessorProfile.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/professors/{professorId}/availability", setAvailability.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/professors/{professorId}/reservations", getProfessorReservations.Handle).Methods(http.MethodGet)

	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/students/{studentId}/reservations", getStudentReservations.Handle).Methods(http.MethodGet)

	protected.HandleFunc("/users/{userId}/settings", getUserSettings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/users/{userId}/settings", updateUserSettings.Handle).Methods(http.MethodPut)

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

	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	// Stops the notify listener loop and wakes all subscriptions so
	// open watch streams can drain.
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server exited")
}
