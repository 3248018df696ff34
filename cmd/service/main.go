package main

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	application "backoffice/internal/app"
	chatmessagehandler "backoffice/internal/handlers/kafka-consumer/chat_message"
	"backoffice/internal/handlers/rest/customer_get"
	"backoffice/internal/handlers/rest/customer_post"
	"backoffice/internal/handlers/rest/customer_put"
	"backoffice/internal/handlers/rest/customers_get"
	"backoffice/internal/handlers/rest/healthcheck_head"
	"backoffice/internal/handlers/rest/messages_get"
	"backoffice/internal/handlers/rest/notification_read_put"
	"backoffice/internal/handlers/rest/notifications_get"
	"backoffice/internal/handlers/rest/order_get"
	"backoffice/internal/handlers/rest/order_post"
	"backoffice/internal/handlers/rest/order_status_put"
	"backoffice/internal/handlers/rest/orders_get"
	"backoffice/internal/handlers/rest/ping_get"
	"backoffice/internal/handlers/rest/product_post"
	"backoffice/internal/handlers/rest/products_get"
	"backoffice/internal/handlers/rest/staff_post"
	"backoffice/internal/handlers/rest/staffs_get"
	"backoffice/internal/handlers/rest/transactions_get"
	"backoffice/internal/handlers/rest/voucher_post"
	"backoffice/internal/handlers/rest/voucher_put"
	"backoffice/internal/handlers/rest/vouchers_get"
	"backoffice/internal/handlers/ws/chat_ws"
	"backoffice/internal/pkg/config"
	"backoffice/internal/pkg/dotenv"
	"backoffice/internal/pkg/kafka"
	metrics_system "backoffice/internal/pkg/metrics"
	"backoffice/internal/pkg/middlewares"
	"backoffice/internal/pkg/middlewares/graceful_shutdown"
	"backoffice/internal/pkg/middlewares/metrics"
	"backoffice/internal/pkg/middlewares/rate_limiter"
	"backoffice/internal/pkg/middlewares/timeout"
	"backoffice/internal/pkg/postgres"
	chatService "backoffice/internal/service/chat"
	"backoffice/pkg/logger"
	"backoffice/pkg/logger/zap_adapter"
	"backoffice/pkg/token_bucket"
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter()
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting backoffice application")

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file", logger.NewField("error", err))
			return
		}
	} else {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // Получаю предупреждения от линтера в местах де наследуюсь от context.Background(), хотя это часть gracefull shutdown
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	brokers := strings.Split(cfg.Kafka.Brokers, ",")
	for i := range brokers {
		brokers[i] = strings.TrimSpace(brokers[i])
	}

	producer, err := kafka.NewProducer(log, &cfg.Kafka, brokers)
	if err != nil {
		return fmt.Errorf("kafka producer: %w", err)
	}
	defer func() {
		if err := producer.Close(); err != nil {
			runLog.Error("failed to close Kafka producer",
				logger.NewField("error", err),
			)
		}
	}()

	origin := chatService.NewOrigin()

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, producer, origin, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector()

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, cfg),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()
	// основной http сервер

	// консьюмер чата: сообщения от других инстансов доставляются в локальный hub.
	// Группа уникальна для инстанса - каждый инстанс читает топик целиком,
	// иначе fan-out превращается в доставку одному участнику группы.
	chatConsumerGroup := fmt.Sprintf("%s-chat-%s", cfg.Kafka.ConsumerGroup, origin)
	chatConsumerHandler := chatmessagehandler.New(log, businessApp.ServiceChat)

	// свежая группа стартует с конца топика, история чата в hub не нужна
	chatConsumer, err := kafka.NewConsumer(
		ctx,
		log,
		&cfg.Kafka,
		brokers,
		chatConsumerGroup,
		sarama.OffsetNewest,
		[]string{cfg.Kafka.ChatTopic},
		chatConsumerHandler,
	)
	if err != nil {
		return fmt.Errorf("kafka consumer: %w", err)
	}

	consumerErr := make(chan error, 1)
	go func() {
		defer close(consumerErr)

		runLog.With(
			logger.NewField("brokers", brokers),
			logger.NewField("topic", cfg.Kafka.ChatTopic),
			logger.NewField("group", chatConsumerGroup),
		).Info("Kafka consumer starting")

		if err := chatConsumer.Start(ongoingCtx); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, sarama.ErrClosedConsumerGroup) {
				runLog.Info("Kafka consumer stopped gracefully")
			} else {
				consumerErr <- err
			}
		}
	}()

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofMux := http.NewServeMux()
		pprofMux.Handle("/debug/pprof/", http.DefaultServeMux)

		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}
	// pprof http сервер

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-consumerErr:
		return fmt.Errorf("consumer: %w", err)
	case err := <-pprofServerErr: // if !cfg.Server.PprofEnabled будет nil по умолчанию, и данный кейс будет проигнорирован
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)

	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()

	if err := chatConsumer.Close(); err != nil {
		runLog.With(logger.NewField("error", err)).Error("Failed to close Kafka consumer")
	}

	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	runLog.Info("Server stopped")
	return nil
}

func initRouter(ongoingCtx context.Context, log logger.Logger, isShuttingDown *atomic.Bool, app *application.Application, cfg *config.Config) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.Server.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.Server.RateLimiterQPS, float64(cfg.Server.RateLimiterBurst))))

	router.Handle("/metrics", promhttp.Handler())
	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(timeout.Middleware(cfg.Server.RequestTimeout))
	api.Use(middlewares.Auth(log, cfg.Auth.JWTSecret))

	api.Handle("/customers", customer_post.New(log, app.ServiceCustomer)).Methods("POST")
	api.Handle("/customers", customers_get.New(log, app.ServiceCustomer)).Methods("GET")
	api.Handle("/customers/{id}", customer_get.New(log, app.ServiceCustomer)).Methods("GET")
	api.Handle("/customers/{id}", customer_put.New(log, app.ServiceCustomer)).Methods("PUT")

	api.Handle("/products", product_post.New(log, app.ServiceCatalog)).Methods("POST")
	api.Handle("/products", products_get.New(log, app.ServiceCatalog)).Methods("GET")

	api.Handle("/selling_orders", order_post.New(log, app.ServiceOrder)).Methods("POST")
	api.Handle("/selling_orders", orders_get.New(log, app.ServiceOrder)).Methods("GET")
	api.Handle("/selling_orders/{id}", order_get.New(log, app.ServiceOrder)).Methods("GET")
	api.Handle("/selling_orders/{id}/status", order_status_put.New(log, app.ServiceOrder)).Methods("PUT")

	api.Handle("/vouchers", voucher_post.New(log, app.ServiceVoucher)).Methods("POST")
	api.Handle("/vouchers", vouchers_get.New(log, app.ServiceVoucher)).Methods("GET")
	api.Handle("/vouchers/{id}", voucher_put.New(log, app.ServiceVoucher)).Methods("PUT")

	api.Handle("/transactions", transactions_get.New(log, app.ServiceTransaction)).Methods("GET")

	api.Handle("/notifications", notifications_get.New(log, app.ServiceNotification)).Methods("GET")
	api.Handle("/notifications/{id}/read", notification_read_put.New(log, app.ServiceNotification)).Methods("PUT")

	api.Handle("/conversations/{id}/messages", messages_get.New(log, app.ServiceChat)).Methods("GET")

	api.Handle("/staffs", staff_post.New(log, app.ServiceStaff)).Methods("POST")
	api.Handle("/staffs", staffs_get.New(log, app.ServiceStaff)).Methods("GET")

	// WebSocket живет вне timeout middleware: соединение держится дольше любого request timeout
	ws := router.PathPrefix("/ws").Subrouter()
	ws.Use(middlewares.Auth(log, cfg.Auth.JWTSecret))
	ws.Handle("/chat", chat_ws.New(log, app.ServiceChat)).Methods("GET")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
