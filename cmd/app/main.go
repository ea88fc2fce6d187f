package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/airops/api"
	"github.com/Domenick1991/airops/config"
	"github.com/Domenick1991/airops/internal/bootstrap"
	"github.com/Domenick1991/airops/internal/cache"
	"github.com/Domenick1991/airops/internal/domain"
	"github.com/Domenick1991/airops/internal/kafka"
	"github.com/Domenick1991/airops/internal/logger"
	"github.com/Domenick1991/airops/internal/metrics"
	"github.com/Domenick1991/airops/internal/notification"
	"github.com/Domenick1991/airops/internal/repository"
	"github.com/Domenick1991/airops/internal/service/auth"
	"github.com/Domenick1991/airops/internal/service/flights"
	"github.com/Domenick1991/airops/internal/service/lifecycle"
	"github.com/Domenick1991/airops/internal/service/news"
	"github.com/Domenick1991/airops/internal/service/planes"
	"github.com/Domenick1991/airops/internal/service/seats"
	"github.com/Domenick1991/airops/internal/service/transactions"
	"github.com/Domenick1991/airops/internal/service/users"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	appLog := logger.NewLogger(cfg.Log.Level).With("service", "airops-api")
	defer appLog.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Database.Migrate {
		if err := repository.Migrate(cfg.Database.DSN()); err != nil {
			appLog.Fatal("migrate schema", "error", err)
		}
	}

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		appLog.Fatal("connect postgres", "error", err)
	}
	defer pool.Close()

	mongoClient, err := repository.NewMongoClient(ctx, cfg.Mongo.URI)
	if err != nil {
		appLog.Fatal("connect mongo", "error", err)
	}
	defer mongoClient.Disconnect(context.Background())
	mongoDB := mongoClient.Database(cfg.Mongo.Database)

	redisCache := cache.NewRedisCache(cfg.Redis)
	defer redisCache.Close()
	if err := redisCache.Ping(ctx); err != nil {
		appLog.Warn("redis is not reachable, password resets will fail", "error", err)
	}

	producer := kafka.NewProducer(cfg.Kafka.Brokers, appLog)
	defer producer.Close()
	if err := producer.CheckConnection(ctx); err != nil {
		appLog.Warn("kafka is not reachable, notifications will fail", "error", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics("airops", registry)

	flightRepo := repository.NewFlightRepository(pool)
	planeRepo := repository.NewPlaneRepository(pool)
	seatRepo := repository.NewSeatRepository(pool)
	newsRepo := repository.NewNewsRepository(pool)
	userRepo := repository.NewUserRepository(pool)
	transactionRepo := repository.NewTransactionRepository(pool)
	delayRepo, err := repository.NewFlightDelayRepository(ctx, mongoDB)
	if err != nil {
		appLog.Fatal("prepare delay history", "error", err)
	}

	gateway := notification.NewKafkaGateway(producer, cfg.Kafka.NotificationsTopic,
		notification.WithLogger(appLog), notification.WithMetrics(appMetrics))
	engine := lifecycle.NewEngine(transactionRepo, gateway,
		lifecycle.WithLogger(appLog), lifecycle.WithMetrics(appMetrics))

	validate := domain.NewValidator()
	flightService := flights.NewFlightService(flightRepo, planeRepo, delayRepo, engine, validate,
		flights.WithLogger(appLog))
	planeService := planes.NewPlaneService(planeRepo, validate)
	seatService := seats.NewSeatService(seatRepo, planeRepo, validate)
	newsService := news.NewNewsService(newsRepo, validate)
	userService := users.NewUserService(userRepo, validate)
	transactionService := transactions.NewTransactionService(transactionRepo, flightRepo, seatRepo, userRepo, validate)
	authService := auth.NewAuthService(userService, userRepo, redisCache, gateway,
		cfg.Auth.JWTSecret, cfg.Auth.TokenTTL(), cfg.Auth.ResetCooldown(),
		auth.WithLogger(appLog))

	handlers := bootstrap.Handlers{
		Flights:      api.NewFlightHandler(flightService),
		Planes:       api.NewPlaneHandler(planeService),
		Seats:        api.NewSeatHandler(seatService),
		News:         api.NewNewsHandler(newsService),
		Users:        api.NewUserHandler(userService),
		Transactions: api.NewTransactionHandler(transactionService, engine),
		Auth:         api.NewAuthHandler(authService),
	}
	deps := bootstrap.Deps{Tokens: authService, Log: appLog, Metrics: appMetrics, Gatherer: registry}

	if err := bootstrap.Run(ctx, cfg, handlers, deps); err != nil {
		appLog.Fatal("server error", "error", err)
	}
}
