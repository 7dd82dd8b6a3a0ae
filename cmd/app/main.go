package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"github.com/sebastien-blain/SOEN390-team-9/internal/config"
	"github.com/sebastien-blain/SOEN390-team-9/internal/repository"
	"github.com/sebastien-blain/SOEN390-team-9/internal/service"
	transportHttp "github.com/sebastien-blain/SOEN390-team-9/internal/transport/http"
)

func main() {
	// Config
	cfg := config.MustLoad()

	// Logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	// PostgreSQL
	pgPool := initPostgres(cfg, logger)
	defer pgPool.Close()

	// Redis
	redisClient := initRedis(cfg, logger)
	defer redisClient.Close()

	// ClickHouse
	clickhouseConn := initClickhouse(cfg, logger)
	defer clickhouseConn.Close()

	// NATS
	natsConn := initNATS(cfg, logger)
	defer natsConn.Close()

	// Repos
	postgresRepo := repository.NewPostgresRepository(pgPool)
	redisRepo := repository.NewRedisRepository(redisClient)
	clickhouseRepo := repository.NewClickhouseRepository(clickhouseConn)

	// NATS service
	natsSubscriber := service.NewNATSSubscriber(natsConn, clickhouseRepo, logger)
	if err := natsSubscriber.Subscribe(); err != nil {
		logger.Fatal("failed to start NATS subscriber", zap.Error(err))
	}

	// Service
	goodService := service.NewGoodService(postgresRepo, redisRepo, natsConn, logger)

	// Handler, Routes
	handler := transportHttp.NewHandler(goodService)
	router := transportHttp.NewRouter(handler)

	// HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.HttpPort,
		Handler: router,
	}

	// Start server
	go func() {
		logger.Info("starting server", zap.String("port", cfg.HttpPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed to start", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server exiting")
}

func initPostgres(cfg *config.Config, logger *zap.Logger) *pgxpool.Pool {
	connStr := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.DbUser,
		cfg.DbPassword,
		cfg.DbHost,
		cfg.DbPort,
		cfg.DbName,
	)

	logger.Info("connecting to PostgreSQL",
		zap.String("conn", strings.Replace(connStr, cfg.DbPassword, "***", 1)))

	pool, err := pgxpool.New(context.Background(), connStr)
	if err != nil {
		logger.Fatal("unable to connect to database", zap.Error(err))
	}

	return pool
}

func initRedis(cfg *config.Config, logger *zap.Logger) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", cfg.RedisHost, cfg.RedisPort),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Fatal("unable to connect to Redis", zap.Error(err))
	}

	return client
}

func initClickhouse(cfg *config.Config, logger *zap.Logger) clickhouse.Conn {
	conn, err := clickhouse.Open(&clickhouse.Options{
		Addr: []string{fmt.Sprintf("%s:%s", cfg.ChHost, cfg.ChPort)},
		Auth: clickhouse.Auth{
			Database: "default",
		},
	})
	if err != nil {
		logger.Fatal("unable to connect to Clickhouse", zap.Error(err))
	}

	return conn
}

func initNATS(cfg *config.Config, logger *zap.Logger) *nats.Conn {
	nc, err := nats.Connect(cfg.NatsURL)
	if err != nil {
		logger.Fatal("unable to connect to NATS", zap.Error(err))
	}

	return nc
}
