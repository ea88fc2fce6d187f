package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/Domenick1991/airops/config"
	"github.com/Domenick1991/airops/internal/email"
	"github.com/Domenick1991/airops/internal/kafka"
	"github.com/Domenick1991/airops/internal/logger"
	"github.com/Domenick1991/airops/internal/metrics"
	"github.com/Domenick1991/airops/internal/notification"
	"github.com/Domenick1991/airops/internal/repository"
	"github.com/Domenick1991/airops/internal/service/lifecycle"
	"github.com/Domenick1991/airops/internal/worker"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
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

	workerLog := logger.NewLogger(cfg.Log.Level).With("service", "airops-worker")
	defer workerLog.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		workerLog.Fatal("connect postgres", "error", err)
	}
	defer pool.Close()

	mongoClient, err := repository.NewMongoClient(ctx, cfg.Mongo.URI)
	if err != nil {
		workerLog.Fatal("connect mongo", "error", err)
	}
	defer mongoClient.Disconnect(context.Background())

	emailLogs, err := repository.NewEmailLogRepository(ctx, mongoClient.Database(cfg.Mongo.Database))
	if err != nil {
		workerLog.Fatal("prepare email log", "error", err)
	}

	registry := prometheus.NewRegistry()
	workerMetrics := metrics.NewMetrics("airops_worker", registry)
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	metricsServer := &http.Server{Addr: cfg.Worker.MetricsAddress, Handler: mux}
	go func() {
		if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			workerLog.Error("metrics server stopped", "error", err)
		}
	}()
	defer metricsServer.Close()

	producer := kafka.NewProducer(cfg.Kafka.Brokers, workerLog)
	defer producer.Close()

	gateway := notification.NewKafkaGateway(producer, cfg.Kafka.NotificationsTopic,
		notification.WithLogger(workerLog), notification.WithMetrics(workerMetrics))
	engine := lifecycle.NewEngine(repository.NewTransactionRepository(pool), gateway,
		lifecycle.WithLogger(workerLog), lifecycle.WithMetrics(workerMetrics))

	var sender email.Sender = email.NewLogSender(workerLog)
	if cfg.Mail.Enabled() {
		gmail, err := email.NewGmailSender(ctx, cfg.Mail)
		if err != nil {
			workerLog.Fatal("create gmail sender", "error", err)
		}
		sender = gmail
	} else {
		workerLog.Warn("mail credentials missing, emails are only logged")
	}
	mailHandler := email.NewHandler(sender, emailLogs, workerLog, workerMetrics)

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.NotificationsTopic, workerLog)
	defer consumer.Close()

	lateSweep, err := worker.NewCronRunner("late-sweep", cfg.Worker.LateSweepCron, func(ctx context.Context) error {
		report, err := engine.SweepLate(ctx)
		if err != nil {
			return err
		}
		if report.HasFailures() {
			workerLog.Warn("late sweep finished with failures", "failed", len(report.Failures))
		}
		return nil
	}, workerLog)
	if err != nil {
		workerLog.Fatal("configure late sweep", "error", err)
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		if err := consumer.Consume(ctx, mailHandler.Handle); err != nil {
			workerLog.Error("consumer stopped", "error", err)
			stop()
		}
	}()
	go func() {
		defer wg.Done()
		if err := lateSweep.Run(ctx); err != nil {
			workerLog.Error("late sweep stopped", "error", err)
			stop()
		}
	}()

	workerLog.Info("worker started", "late_sweep_cron", cfg.Worker.LateSweepCron, "topic", cfg.Kafka.NotificationsTopic)
	<-ctx.Done()
	wg.Wait()
	workerLog.Info("worker stopped")
}
