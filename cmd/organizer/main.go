package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/scrapedocs/organizer/internal/api"
	"github.com/scrapedocs/organizer/internal/ingest"
	"github.com/scrapedocs/organizer/internal/organizer"
	"github.com/scrapedocs/organizer/internal/querycache"
	"github.com/scrapedocs/organizer/pkg/config"
	"github.com/scrapedocs/organizer/pkg/health"
	"github.com/scrapedocs/organizer/pkg/kafka"
	"github.com/scrapedocs/organizer/pkg/logger"
	"github.com/scrapedocs/organizer/pkg/metrics"
	pkgredis "github.com/scrapedocs/organizer/pkg/redis"
)

func main() {
	configPath := flag.String("config", "configs/development.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Setup(cfg.Logging.Level, cfg.Logging.Format)
	slog.Info("starting organizer service",
		"similarity_threshold", cfg.Organizer.SimilarityThreshold,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
		shutdownMetrics := metrics.StartServer(cfg.Metrics.Port)
		defer shutdownMetrics(context.Background())
	}

	org := organizer.New(cfg.Organizer.SimilarityThreshold)
	checker := health.NewChecker()
	checker.Register("organizer", func(ctx context.Context) health.ComponentHealth {
		stats := org.Stats()
		return health.ComponentHealth{
			Status:  health.StatusUp,
			Message: fmt.Sprintf("%d documents, %d terms, %d relations", stats.Documents, stats.Terms, stats.Relations),
		}
	})

	var cache *querycache.Cache
	if cfg.Redis.Enabled {
		redisClient, err := pkgredis.NewClient(cfg.Redis)
		if err != nil {
			slog.Error("failed to connect to redis", "error", err)
			os.Exit(1)
		}
		defer redisClient.Close()
		cache = querycache.New(redisClient, cfg.Redis)
		checker.Register("redis", func(ctx context.Context) health.ComponentHealth {
			if err := redisClient.Ping(ctx); err != nil {
				return health.ComponentHealth{Status: health.StatusDown, Message: err.Error()}
			}
			return health.ComponentHealth{Status: health.StatusUp}
		})
		slog.Info("query cache enabled", "addr", cfg.Redis.Addr, "ttl", cfg.Redis.CacheTTL)
	}

	var notifier *ingest.Notifier
	if cfg.Kafka.Enabled {
		producer := kafka.NewProducer(cfg.Kafka, cfg.Kafka.Topics.DocumentUpdates)
		defer producer.Close()
		notifier = ingest.NewNotifier(producer)

		consumer := kafka.NewConsumer(
			cfg.Kafka,
			cfg.Kafka.Topics.PageIngest,
			ingest.HandleMessage(org, cache, notifier, m),
		)
		go func() {
			if err := consumer.Start(ctx); err != nil {
				slog.Error("page consumer error", "error", err)
			}
		}()
		slog.Info("kafka ingestion enabled",
			"topic", cfg.Kafka.Topics.PageIngest,
			"group", cfg.Kafka.ConsumerGroup,
		)
	}

	handler := api.NewHandler(org, cache, notifier, m)
	router := api.NewRouter(handler, checker, m, cfg.Server.RequestTimeout)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		slog.Info("http server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("http server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("http server shutdown failed", "error", err)
	}

	slog.Info("organizer service stopped")
}
