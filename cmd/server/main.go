package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"exercise-tracker/internal/config"
	"exercise-tracker/internal/db"
	"exercise-tracker/internal/delivery/handler"
	"exercise-tracker/internal/infrastructure"
	"exercise-tracker/internal/messaging"
	"exercise-tracker/internal/repository"
	"exercise-tracker/internal/usecase"
)

// registerStatic serves the index page and the contents of public/ at the
// site root.
func registerStatic(e *echo.Echo) {
	e.File("/", "views/index.html")
	e.Static("/", "public")
}

func main() {
	cfg := config.Load()

	ctx := context.Background()
	client, err := db.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatal("failed to connect to MongoDB: ", err)
	}
	defer db.Disconnect(client)

	repo := repository.NewUserRepo(client.Database(cfg.MongoDB))
	if err := repo.EnsureIndexes(ctx); err != nil {
		log.Fatal("failed to create indexes: ", err)
	}

	cache := infrastructure.NewCacheService()
	defer cache.Close()

	events, err := messaging.Connect(cfg.NATSURL)
	if err != nil {
		log.Println("failed to connect to NATS, event publishing disabled:", err)
	}
	defer events.Close()

	svc := usecase.NewExerciseLogService(repo, cache, events)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = handler.ErrorHandler
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.RequestID())
	e.Use(middleware.CORS())
	e.Use(handler.RateLimit(infrastructure.NewRateLimiter()))

	registerStatic(e)
	handler.NewHandler(svc).Register(e)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server error: ", err)
		}
	}()
	log.Println("listening on port " + cfg.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Println("shutdown:", err)
	}
}
