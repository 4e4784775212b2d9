package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"eatery/internal/app"
	"eatery/internal/config"
	"eatery/internal/events"
	"eatery/internal/geo"
	"eatery/internal/handler"
	"eatery/internal/middleware"
	"eatery/internal/notify"
	"eatery/internal/payment"
	"eatery/internal/postgres"
	"eatery/internal/repo"
	"eatery/internal/service"
	"eatery/internal/worker"
	"eatery/pkg/cache"
	"eatery/pkg/trm"

	"github.com/joho/godotenv"
)

func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	orderRepo := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db)
	lru := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)

	hub := notify.NewHub(logger)
	publisher := events.NewPublisher(logger, conf.Kafka)
	gateway := payment.NewClient(conf.Payment)
	rangeChecker := geo.NewChecker(conf.Geo)

	orderService := service.NewOrderService(
		logger, txManager,
		orderRepo, orderRepo,
		gateway, rangeChecker,
		hub, publisher, lru,
	)
	reconciler := worker.NewReconciler(logger, orderRepo, orderService, conf.Reconciler)

	authMw := middleware.Auth(conf.Auth.Secret)
	httpHandler := handler.NewHTTPHandler(logger, orderService, gateway, authMw)
	wsHandler := handler.NewWSHandler(logger, hub)

	app := app.New(logger, conf)

	app.SetHTTPHandlers(httpHandler, wsHandler)
	app.SetWorkers(reconciler, lru)
	app.SetClosers(publisher)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	app.Start(ctx)
	<-ctx.Done()
	app.Stop()
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
