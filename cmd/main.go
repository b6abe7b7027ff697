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

	chatStepHandler "github.com/yaday/YND-BookingService/internal/api/handlers/chat_step"
	createBookingHandler "github.com/yaday/YND-BookingService/internal/api/handlers/create_booking"
	getAvailabilityHandler "github.com/yaday/YND-BookingService/internal/api/handlers/get_availability"
	listBookingsHandler "github.com/yaday/YND-BookingService/internal/api/handlers/list_bookings"
	"github.com/yaday/YND-BookingService/internal/api/middleware"
	"github.com/yaday/YND-BookingService/internal/config"
	bookingRepo "github.com/yaday/YND-BookingService/internal/infra/storage/booking"
	"github.com/yaday/YND-BookingService/internal/notifier"
	emailNotifier "github.com/yaday/YND-BookingService/internal/notifier/email"
	gcalendarNotifier "github.com/yaday/YND-BookingService/internal/notifier/gcalendar"
	whatsappNotifier "github.com/yaday/YND-BookingService/internal/notifier/whatsapp"
	bookingsService "github.com/yaday/YND-BookingService/internal/service/bookings"
	createBookingUC "github.com/yaday/YND-BookingService/internal/usecase/create_booking"
	getAvailabilityUC "github.com/yaday/YND-BookingService/internal/usecase/get_availability"
	"github.com/yaday/YND-BookingService/pkg/dbmetrics"
	"github.com/yaday/YND-BookingService/pkg/logger"
	"github.com/yaday/YND-BookingService/pkg/metrics"
	"github.com/yaday/YND-BookingService/pkg/simpletxmanager"
	"github.com/yaday/YND-BookingService/pkg/txmanager"
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

	log.Info("Starting YND-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Часовой пояс салона: используется в уведомлениях и календарных событиях
	location, err := time.LoadLocation(cfg.Salon.Timezone)
	if err != nil {
		log.Fatal("Failed to load salon timezone %q: %v", cfg.Salon.Timezone, err)
	}

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

	// Инициализируем репозиторий и transaction manager (с метриками или без)
	var bookingRepository *bookingRepo.Repository

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Собираем нотификаторы: каждый канал независимо опционален,
	// ненастроенный просто не регистрируется
	var notifiers []notifier.Notifier

	if cfg.Twilio.IsConfigured() {
		notifiers = append(notifiers, whatsappNotifier.New(
			cfg.Twilio.AccountSID,
			cfg.Twilio.AuthToken,
			cfg.Twilio.WhatsAppFrom,
			cfg.Twilio.WhatsAppTo,
			cfg.Salon.Name,
			log,
		))
		log.Info("WhatsApp notifications enabled (to=%s)", cfg.Twilio.WhatsAppTo)
	} else {
		log.Warn("WhatsApp notifications disabled: twilio section is not configured")
	}

	if cfg.Email.IsConfigured() {
		notifiers = append(notifiers, emailNotifier.New(
			cfg.Email.Host,
			cfg.Email.Port,
			cfg.Email.User,
			cfg.Email.Password,
			cfg.Email.From,
			cfg.Email.OperatorTo,
			cfg.Salon.Name,
			location,
			log,
		))
		log.Info("Email notifications enabled (operator=%s)", cfg.Email.OperatorTo)
	} else {
		log.Warn("Email notifications disabled: email section is not configured")
	}

	if cfg.GoogleCalendar.IsConfigured() {
		notifiers = append(notifiers, gcalendarNotifier.New(
			cfg.GoogleCalendar.CalendarID,
			cfg.GoogleCalendar.ServiceAccountEmail,
			cfg.GoogleCalendar.PrivateKey,
			cfg.Salon.Name,
			location,
			log,
		))
		log.Info("Google Calendar notifications enabled (calendar=%s)", cfg.GoogleCalendar.CalendarID)
	} else {
		log.Warn("Google Calendar notifications disabled: google_calendar section is not configured")
	}

	dispatcher := notifier.NewDispatcher(
		time.Duration(cfg.Salon.NotifyTimeout)*time.Second,
		metricsCollector,
		log,
		notifiers...,
	)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		txMgr,
		dispatcher,
		log,
	)

	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		bookingRepository,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	chatStep := chatStepHandler.NewHandler(log)

	// Настраиваем роутер
	r := mux.NewRouter()

	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Занятые слоты на дату
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Создание бронирования
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Последние бронирования для админки
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)

	// Шаг диалогового сценария бронирования
	api.HandleFunc("/chat/step", chatStep.Handle).Methods(http.MethodPost)

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
