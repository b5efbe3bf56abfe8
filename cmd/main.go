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

	cancelBookingHandler "github.com/questarium/QST-ScheduleService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/questarium/QST-ScheduleService/internal/api/handlers/create_booking"
	getAdventureHandler "github.com/questarium/QST-ScheduleService/internal/api/handlers/get_adventure"
	getBookingHandler "github.com/questarium/QST-ScheduleService/internal/api/handlers/get_booking"
	getCalendarHandler "github.com/questarium/QST-ScheduleService/internal/api/handlers/get_calendar"
	getSlotHandler "github.com/questarium/QST-ScheduleService/internal/api/handlers/get_slot"
	listAdventuresHandler "github.com/questarium/QST-ScheduleService/internal/api/handlers/list_adventures"
	retryPaymentHandler "github.com/questarium/QST-ScheduleService/internal/api/handlers/retry_payment"
	searchAdventuresHandler "github.com/questarium/QST-ScheduleService/internal/api/handlers/search_adventures"
	updateOverrideHandler "github.com/questarium/QST-ScheduleService/internal/api/handlers/update_override"
	"github.com/questarium/QST-ScheduleService/internal/api/middleware"
	"github.com/questarium/QST-ScheduleService/internal/config"
	bookingRepo "github.com/questarium/QST-ScheduleService/internal/infra/storage/booking"
	scheduleRepo "github.com/questarium/QST-ScheduleService/internal/infra/storage/schedule"
	catalogClient "github.com/questarium/QST-ScheduleService/internal/integrations/catalog"
	paymentsClient "github.com/questarium/QST-ScheduleService/internal/integrations/payments"
	bookingsService "github.com/questarium/QST-ScheduleService/internal/service/bookings"
	catalogService "github.com/questarium/QST-ScheduleService/internal/service/catalog"
	createBookingUC "github.com/questarium/QST-ScheduleService/internal/usecase/create_booking"
	getCalendarUC "github.com/questarium/QST-ScheduleService/internal/usecase/get_calendar"
	openSlotUC "github.com/questarium/QST-ScheduleService/internal/usecase/open_slot"
	searchAdventuresUC "github.com/questarium/QST-ScheduleService/internal/usecase/search_adventures"
	"github.com/questarium/QST-ScheduleService/pkg/logger"
	"github.com/questarium/QST-ScheduleService/pkg/metrics"
	"github.com/questarium/QST-ScheduleService/pkg/txmanager"
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

	log.Info("Starting QST-ScheduleService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	// Подключаемся к Redis для снимка каталога (если включен)
	var catalogCache *catalogClient.Cache
	if cfg.Redis.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Fatal("Failed to ping redis: %v", err)
		}

		catalogCache = catalogClient.NewCache(rdb, time.Duration(cfg.Catalog.CacheTTL)*time.Second)
		log.Info("Successfully connected to redis (addr=%s), catalog snapshot TTL=%ds",
			cfg.Redis.Addr, cfg.Catalog.CacheTTL)
	} else {
		log.Info("Redis disabled, catalog degradation works without snapshot")
	}

	// Инициализируем интеграционных клиентов
	catalog := catalogClient.NewClient(
		cfg.Catalog.URL,
		time.Duration(cfg.Catalog.Timeout)*time.Second,
		catalogCache,
		log,
	)
	payments := paymentsClient.NewClient(
		cfg.Payments.URL,
		time.Duration(cfg.Payments.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (Catalog=%s timeout=%ds, Payments=%s timeout=%ds)",
		cfg.Catalog.URL, cfg.Catalog.Timeout, cfg.Payments.URL, cfg.Payments.Timeout)

	// Инициализируем репозитории и transaction manager
	bookingRepository := bookingRepo.NewRepository(db)
	scheduleRepository := scheduleRepo.NewRepository(db)
	txMgr := txmanager.NewTransactionManager(db)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, payments, log)
	catalogSvc := catalogService.NewService(catalog, log)

	// Инициализируем use cases
	getCalendarUseCase := getCalendarUC.NewUseCase(bookingRepository, scheduleRepository, log)
	openSlotUseCase := openSlotUC.NewUseCase(bookingRepository, scheduleRepository, catalog, log)
	searchAdventuresUseCase := searchAdventuresUC.NewUseCase(catalog, log)
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		scheduleRepository,
		catalog,
		payments,
		txMgr,
		log,
	)

	// Инициализируем handlers
	getCalendar := getCalendarHandler.NewHandler(getCalendarUseCase, log)
	getSlot := getSlotHandler.NewHandler(openSlotUseCase, log)
	searchAdventures := searchAdventuresHandler.NewHandler(searchAdventuresUseCase, log)
	listAdventures := listAdventuresHandler.NewHandler(catalogSvc, log)
	getAdventure := getAdventureHandler.NewHandler(catalogSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	retryPayment := retryPaymentHandler.NewHandler(bookingSvc, log)
	updateOverride := updateOverrideHandler.NewHandler(scheduleRepository, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	// Витрина публичная: аутентификация опциональна и только помечает заявки
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Identity)

	// --- Расписание ---
	// Месяц календаря со слотами
	api.HandleFunc("/schedule/calendar", getCalendar.Handle).Methods(http.MethodGet)

	// Карточка слота с формой брони
	api.HandleFunc("/schedule/slots/{slotId}", getSlot.Handle).Methods(http.MethodGet)

	// Ручная пометка слота (админский контур, закрыт на гейтвее)
	api.HandleFunc("/schedule/slots/{slotId}/override", updateOverride.Handle).Methods(http.MethodPut)

	// --- Каталог сюжетов ---
	// Фасетный поиск с согласованием иерархии сеттингов
	api.HandleFunc("/adventures/search", searchAdventures.Handle).Methods(http.MethodPost)

	// Список сюжетов
	api.HandleFunc("/adventures", listAdventures.Handle).Methods(http.MethodGet)

	// Карточка сюжета
	api.HandleFunc("/adventures/{adventureId}", getAdventure.Handle).Methods(http.MethodGet)

	// --- Заявки ---
	// Создание заявки
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение заявки по публичному идентификатору
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена заявки
	api.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Перевыставление платежной ссылки
	api.HandleFunc("/bookings/{bookingId}/payment", retryPayment.Handle).Methods(http.MethodPost)

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
