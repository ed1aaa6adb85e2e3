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
	"github.com/robfig/cron/v3"

	createAppointmentHandler "github.com/meuagendamento/scheduling-service/internal/api/handlers/create_appointment"
	createBlockedTimeHandler "github.com/meuagendamento/scheduling-service/internal/api/handlers/create_blocked_time"
	createInviteHandler "github.com/meuagendamento/scheduling-service/internal/api/handlers/create_invite"
	createServiceHandler "github.com/meuagendamento/scheduling-service/internal/api/handlers/create_service"
	deleteBlockedTimeHandler "github.com/meuagendamento/scheduling-service/internal/api/handlers/delete_blocked_time"
	deleteInviteHandler "github.com/meuagendamento/scheduling-service/internal/api/handlers/delete_invite"
	deleteServiceHandler "github.com/meuagendamento/scheduling-service/internal/api/handlers/delete_service"
	exportAppointmentsHandler "github.com/meuagendamento/scheduling-service/internal/api/handlers/export_appointments"
	getAppointmentHandler "github.com/meuagendamento/scheduling-service/internal/api/handlers/get_appointment"
	getAppointmentsHandler "github.com/meuagendamento/scheduling-service/internal/api/handlers/get_appointments"
	getAvailableSlotsHandler "github.com/meuagendamento/scheduling-service/internal/api/handlers/get_available_slots"
	getBlockedTimesHandler "github.com/meuagendamento/scheduling-service/internal/api/handlers/get_blocked_times"
	getInvitesHandler "github.com/meuagendamento/scheduling-service/internal/api/handlers/get_invites"
	getProfessionalHandler "github.com/meuagendamento/scheduling-service/internal/api/handlers/get_professional"
	getScheduleHandler "github.com/meuagendamento/scheduling-service/internal/api/handlers/get_schedule"
	getServicesHandler "github.com/meuagendamento/scheduling-service/internal/api/handlers/get_services"
	resolveInviteHandler "github.com/meuagendamento/scheduling-service/internal/api/handlers/resolve_invite"
	updateAppointmentStatusHandler "github.com/meuagendamento/scheduling-service/internal/api/handlers/update_appointment_status"
	updateScheduleHandler "github.com/meuagendamento/scheduling-service/internal/api/handlers/update_schedule"
	updateServiceHandler "github.com/meuagendamento/scheduling-service/internal/api/handlers/update_service"
	"github.com/meuagendamento/scheduling-service/internal/api/middleware"
	"github.com/meuagendamento/scheduling-service/internal/config"
	appointmentRepo "github.com/meuagendamento/scheduling-service/internal/infra/storage/appointment"
	blockedTimeRepo "github.com/meuagendamento/scheduling-service/internal/infra/storage/blockedtime"
	inviteRepo "github.com/meuagendamento/scheduling-service/internal/infra/storage/invite"
	professionalRepo "github.com/meuagendamento/scheduling-service/internal/infra/storage/professional"
	serviceRepo "github.com/meuagendamento/scheduling-service/internal/infra/storage/service"
	appointmentsService "github.com/meuagendamento/scheduling-service/internal/service/appointments"
	catalogService "github.com/meuagendamento/scheduling-service/internal/service/catalog"
	invitesService "github.com/meuagendamento/scheduling-service/internal/service/invites"
	professionalsService "github.com/meuagendamento/scheduling-service/internal/service/professionals"
	scheduleService "github.com/meuagendamento/scheduling-service/internal/service/schedule"
	createAppointmentUC "github.com/meuagendamento/scheduling-service/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/meuagendamento/scheduling-service/internal/usecase/get_available_slots"
	"github.com/meuagendamento/scheduling-service/pkg/dbmetrics"
	"github.com/meuagendamento/scheduling-service/pkg/logger"
	"github.com/meuagendamento/scheduling-service/pkg/metrics"
	"github.com/meuagendamento/scheduling-service/pkg/simpletxmanager"
	"github.com/meuagendamento/scheduling-service/pkg/txmanager"
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

	log.Info("Starting scheduling-service...")
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

	// Инициализируем репозитории (с метриками или без)
	var (
		appointmentRepository  *appointmentRepo.Repository
		blockedTimeRepository  *blockedTimeRepo.Repository
		professionalRepository *professionalRepo.Repository
		svcRepository          *serviceRepo.Repository
		inviteRepository       *inviteRepo.Repository
	)

	// Интерфейс transaction manager для use case создания записи
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		blockedTimeRepository = blockedTimeRepo.NewRepository(wrappedDB)
		professionalRepository = professionalRepo.NewRepository(wrappedDB)
		svcRepository = serviceRepo.NewRepository(wrappedDB)
		inviteRepository = inviteRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		blockedTimeRepository = blockedTimeRepo.NewRepository(db)
		professionalRepository = professionalRepo.NewRepository(db)
		svcRepository = serviceRepo.NewRepository(db)
		inviteRepository = inviteRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, log)
	catalogSvc := catalogService.NewService(svcRepository, log)
	scheduleSvc := scheduleService.NewService(professionalRepository, blockedTimeRepository, log)
	professionalsSvc := professionalsService.NewService(professionalRepository, svcRepository, log)
	invitesSvc := invitesService.NewService(inviteRepository, professionalRepository, cfg.Invites.TTLDays, log)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		blockedTimeRepository,
		professionalRepository,
		svcRepository,
		txMgr,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		professionalRepository,
		svcRepository,
		blockedTimeRepository,
		appointmentRepository,
		log,
	)

	// Инициализируем handlers
	getProfessional := getProfessionalHandler.NewHandler(professionalsSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	resolveInvite := resolveInviteHandler.NewHandler(invitesSvc, log)

	getAppointments := getAppointmentsHandler.NewHandler(appointmentsSvc, log)
	exportAppointments := exportAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentsSvc, log)

	createService := createServiceHandler.NewHandler(catalogSvc, log)
	getServices := getServicesHandler.NewHandler(catalogSvc, log)
	updateService := updateServiceHandler.NewHandler(catalogSvc, log)
	deleteService := deleteServiceHandler.NewHandler(catalogSvc, log)

	createBlockedTime := createBlockedTimeHandler.NewHandler(scheduleSvc, log)
	getBlockedTimes := getBlockedTimesHandler.NewHandler(scheduleSvc, log)
	deleteBlockedTime := deleteBlockedTimeHandler.NewHandler(scheduleSvc, log)

	getSchedule := getScheduleHandler.NewHandler(scheduleSvc, log)
	updateSchedule := updateScheduleHandler.NewHandler(scheduleSvc, log)

	createInvite := createInviteHandler.NewHandler(invitesSvc, log)
	getInvites := getInvitesHandler.NewHandler(invitesSvc, log)
	deleteInvite := deleteInviteHandler.NewHandler(invitesSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации, страница записи клиента)
	// ============================================================

	// Публичный профиль профессионала с каталогом услуг
	api.HandleFunc("/professionals/{slug}", getProfessional.Handle).Methods(http.MethodGet)

	// Доступные слоты для записи
	api.HandleFunc("/professionals/{slug}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Создание записи клиентом
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Разрешение кода приглашения
	api.HandleFunc("/invites/{code}", resolveInvite.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Professional-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Записи ---
	protected.HandleFunc("/professionals/{professionalId}/appointments",
		getAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/professionals/{professionalId}/appointments/export",
		exportAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}/status",
		updateAppointmentStatus.Handle).Methods(http.MethodPatch)

	// --- Каталог услуг ---
	protected.HandleFunc("/professionals/{professionalId}/services", createService.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/professionals/{professionalId}/services", getServices.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/professionals/{professionalId}/services/{serviceId}",
		updateService.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/professionals/{professionalId}/services/{serviceId}",
		deleteService.Handle).Methods(http.MethodDelete)

	// --- Блокировки времени ---
	protected.HandleFunc("/professionals/{professionalId}/blocked-times",
		createBlockedTime.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/professionals/{professionalId}/blocked-times",
		getBlockedTimes.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/professionals/{professionalId}/blocked-times/{blockedTimeId}",
		deleteBlockedTime.Handle).Methods(http.MethodDelete)

	// --- Недельное расписание ---
	protected.HandleFunc("/professionals/{professionalId}/schedule", getSchedule.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/professionals/{professionalId}/schedule", updateSchedule.Handle).Methods(http.MethodPut)

	// --- Приглашения (супер-админ) ---
	protected.HandleFunc("/invites", createInvite.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/invites", getInvites.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/invites/{inviteId}", deleteInvite.Handle).Methods(http.MethodDelete)

	// Фоновая очистка просроченных приглашений
	cronRunner := cron.New()
	if cfg.Invites.CleanupSchedule != "" {
		_, err := cronRunner.AddFunc(cfg.Invites.CleanupSchedule, func() {
			if _, err := invitesSvc.CleanupExpired(context.Background()); err != nil {
				log.Error("Invite cleanup failed: %v", err)
			}
		})
		if err != nil {
			log.Fatal("Failed to schedule invite cleanup: %v", err)
		}
		cronRunner.Start()
		log.Info("Invite cleanup scheduled: %s", cfg.Invites.CleanupSchedule)
	}

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

	// Останавливаем cron
	if cfg.Invites.CleanupSchedule != "" {
		<-cronRunner.Stop().Done()
		log.Info("Invite cleanup stopped")
	}

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
		log.Error("Server shutdown failed: %v", err)
	}

	log.Info("Server stopped")
}
