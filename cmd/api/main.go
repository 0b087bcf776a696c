package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/careerhub/ticketing-core/internal/adapters/crdb"
	mongoadapter "github.com/careerhub/ticketing-core/internal/adapters/mongo"
	redisadapter "github.com/careerhub/ticketing-core/internal/adapters/redis"
	"github.com/careerhub/ticketing-core/internal/config"
	"github.com/careerhub/ticketing-core/internal/domain"
	httphandler "github.com/careerhub/ticketing-core/internal/http"
	"github.com/careerhub/ticketing-core/internal/idempotency"
	"github.com/careerhub/ticketing-core/internal/observability"
	"github.com/careerhub/ticketing-core/internal/rateLimit"
	"github.com/careerhub/ticketing-core/internal/salary"
	"github.com/careerhub/ticketing-core/internal/service"
	"github.com/jackc/pgx/v5/pgxpool"
	redisclient "github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	shutdown, err := observability.SetupOTel(context.Background(), cfg)
	if err != nil {
		log.Fatalf("failed to setup otel: %v", err)
	}
	defer shutdown()

	logger := observability.NewLogger()
	if cfg.DevSecretInUse() {
		logger.Warn("running with the development QR signing secret; not fit for production")
	}

	pool, err := pgxpool.New(context.Background(), cfg.PGDSN)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()
	repo := crdb.NewRepository(pool)

	mongoClient, err := mongo.Connect(context.Background(), options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("failed to connect to mongo: %v", err)
	}
	defer mongoClient.Disconnect(context.Background())
	mongoDB := mongoClient.Database("careerhub")
	catalog := mongoadapter.NewCatalogRepository(mongoDB, logger)
	audit := mongoadapter.NewAuditLogger(mongoDB, logger)

	redisClient := redisclient.NewClient(&redisclient.Options{Addr: cfg.RedisAddr})
	redisCache := redisadapter.NewCache(redisClient)
	redisIdemp := redisadapter.NewIdempotency(redisClient)
	idemp := idempotency.NewIdempotency(redisIdemp, time.Hour)
	rl := rateLimit.NewRateLimiter(redisCache)

	signer := domain.NewQRSigner(cfg.QRSigningSecret)
	tickets := service.NewTicketService(repo, catalog, audit, redisCache, signer,
		domain.SystemClock{}, cfg.TicketTTL, logger)

	// Initialization phase: train the salary model before accepting traffic.
	// Readyz reports unavailable until this finishes.
	estimator := salary.NewEstimator(time.Now().UnixNano())
	start := time.Now()
	loss := estimator.Train()
	logger.WithField("loss", loss).WithField("took", time.Since(start).String()).Info("salary model trained")

	handlers := httphandler.NewHandlers(tickets, estimator, idemp, logger)
	r := httphandler.SetupRouter(handlers, logger, rl, idemp)

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutdown Server ...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}
	logger.Info("Server exiting")
}
