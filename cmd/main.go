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

	createBlackoutHandler "github.com/m04kA/MRV-PricingService/internal/api/handlers/create_blackout"
	deleteAddonHandler "github.com/m04kA/MRV-PricingService/internal/api/handlers/delete_addon"
	deleteBlackoutHandler "github.com/m04kA/MRV-PricingService/internal/api/handlers/delete_blackout"
	deleteRoomHandler "github.com/m04kA/MRV-PricingService/internal/api/handlers/delete_room"
	getRoomHandler "github.com/m04kA/MRV-PricingService/internal/api/handlers/get_room"
	getVenueConfigHandler "github.com/m04kA/MRV-PricingService/internal/api/handlers/get_venue_config"
	listAddonsHandler "github.com/m04kA/MRV-PricingService/internal/api/handlers/list_addons"
	listBlackoutsHandler "github.com/m04kA/MRV-PricingService/internal/api/handlers/list_blackouts"
	listRoomsHandler "github.com/m04kA/MRV-PricingService/internal/api/handlers/list_rooms"
	previewQuoteHandler "github.com/m04kA/MRV-PricingService/internal/api/handlers/preview_quote"
	simulateQuoteHandler "github.com/m04kA/MRV-PricingService/internal/api/handlers/simulate_quote"
	upsertAddonHandler "github.com/m04kA/MRV-PricingService/internal/api/handlers/upsert_addon"
	upsertRoomHandler "github.com/m04kA/MRV-PricingService/internal/api/handlers/upsert_room"
	"github.com/m04kA/MRV-PricingService/internal/api/middleware"
	"github.com/m04kA/MRV-PricingService/internal/config"
	addonRepo "github.com/m04kA/MRV-PricingService/internal/infra/storage/addon"
	blackoutRepo "github.com/m04kA/MRV-PricingService/internal/infra/storage/blackout"
	roomRepo "github.com/m04kA/MRV-PricingService/internal/infra/storage/room"
	"github.com/m04kA/MRV-PricingService/internal/integrations/configprovider"
	blackoutsService "github.com/m04kA/MRV-PricingService/internal/service/blackouts"
	catalogService "github.com/m04kA/MRV-PricingService/internal/service/catalog"
	previewQuoteUC "github.com/m04kA/MRV-PricingService/internal/usecase/preview_quote"
	simulateQuoteUC "github.com/m04kA/MRV-PricingService/internal/usecase/simulate_quote"
	"github.com/m04kA/MRV-PricingService/pkg/dbmetrics"
	"github.com/m04kA/MRV-PricingService/pkg/logger"
	"github.com/m04kA/MRV-PricingService/pkg/metrics"
	"github.com/m04kA/MRV-PricingService/pkg/simpletxmanager"
	"github.com/m04kA/MRV-PricingService/pkg/txmanager"
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

	log.Info("Starting MRV-PricingService...")
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
		roomRepository     *roomRepo.Repository
		addOnRepository    *addonRepo.Repository
		blackoutRepository *blackoutRepo.Repository
		txMgr              catalogService.TransactionManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")

		roomRepository = roomRepo.NewRepository(wrappedDB)
		addOnRepository = addonRepo.NewRepository(wrappedDB)
		blackoutRepository = blackoutRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		roomRepository = roomRepo.NewRepository(db)
		addOnRepository = addonRepo.NewRepository(db)
		blackoutRepository = blackoutRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	catalogSvc := catalogService.NewService(
		roomRepository,
		addOnRepository,
		txMgr,
		log,
	)
	blackoutSvc := blackoutsService.NewService(
		blackoutRepository,
		roomRepository,
		log,
	)

	// Выбираем источник конфигурации для расчета цен: внешний Config Provider
	// или локальный каталог. Раскладка цены от источника не зависит
	var (
		previewSource  previewQuoteUC.ConfigSource  = catalogSvc
		simulateSource simulateQuoteUC.ConfigSource = catalogSvc
	)
	if cfg.ConfigProvider.URL != "" {
		providerClient := configprovider.NewClient(
			cfg.ConfigProvider.URL,
			time.Duration(cfg.ConfigProvider.Timeout)*time.Second,
			log,
		)
		previewSource = providerClient
		simulateSource = providerClient
		log.Info("Quotes use external config provider at %s (timeout=%ds)",
			cfg.ConfigProvider.URL, cfg.ConfigProvider.Timeout)
	} else {
		log.Info("Quotes use local venue catalog")
	}

	// Инициализируем use cases
	previewQuoteUseCase := previewQuoteUC.NewUseCase(
		previewSource,
		blackoutSvc,
		cfg.Pricing.CurrencySymbol,
		log,
	)
	simulateQuoteUseCase := simulateQuoteUC.NewUseCase(
		simulateSource,
		blackoutSvc,
		cfg.Pricing.CurrencySymbol,
		log,
	)

	// Инициализируем handlers
	getVenueConfig := getVenueConfigHandler.NewHandler(catalogSvc, log)
	listRooms := listRoomsHandler.NewHandler(catalogSvc, log)
	getRoom := getRoomHandler.NewHandler(catalogSvc, log)
	upsertRoom := upsertRoomHandler.NewHandler(catalogSvc, log)
	deleteRoom := deleteRoomHandler.NewHandler(catalogSvc, log)
	listAddons := listAddonsHandler.NewHandler(catalogSvc, log)
	upsertAddon := upsertAddonHandler.NewHandler(catalogSvc, log)
	deleteAddon := deleteAddonHandler.NewHandler(catalogSvc, log)
	createBlackout := createBlackoutHandler.NewHandler(blackoutSvc, log)
	listBlackouts := listBlackoutsHandler.NewHandler(blackoutSvc, log)
	deleteBlackout := deleteBlackoutHandler.NewHandler(blackoutSvc, log)
	previewQuote := previewQuoteHandler.NewHandler(previewQuoteUseCase, log)
	simulateQuote := simulateQuoteHandler.NewHandler(simulateQuoteUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
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

	// Полный документ конфигурации площадки {rooms, addOns}
	api.HandleFunc("/config", getVenueConfig.Handle).Methods(http.MethodGet)

	// Комнаты и каталог add-on'ов
	api.HandleFunc("/rooms", listRooms.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{roomId}", getRoom.Handle).Methods(http.MethodGet)
	api.HandleFunc("/add-ons", listAddons.Handle).Methods(http.MethodGet)

	// Blackout-периоды
	api.HandleFunc("/blackouts", listBlackouts.Handle).Methods(http.MethodGet)

	// Публичный расчет цены бронирования
	api.HandleFunc("/quotes/preview", previewQuote.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Управление конфигурацией площадки ---
	protected.HandleFunc("/rooms/{roomId}", upsertRoom.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/rooms/{roomId}", deleteRoom.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/add-ons/{addOnId}", upsertAddon.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/add-ons/{addOnId}", deleteAddon.Handle).Methods(http.MethodDelete)

	// --- Blackout-периоды ---
	protected.HandleFunc("/blackouts", createBlackout.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/blackouts/{blackoutId}", deleteBlackout.Handle).Methods(http.MethodDelete)

	// --- Симуляция расчета цены (админская витрина) ---
	protected.HandleFunc("/quotes/simulate", simulateQuote.Handle).Methods(http.MethodPost)

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
