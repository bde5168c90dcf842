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

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/lunchmates/restaurant-picker/internal/bot"
	"github.com/lunchmates/restaurant-picker/internal/config"
	"github.com/lunchmates/restaurant-picker/internal/filter"
	"github.com/lunchmates/restaurant-picker/internal/handler"
	middlewarepkg "github.com/lunchmates/restaurant-picker/internal/middleware"
	"github.com/lunchmates/restaurant-picker/internal/router"
	"github.com/lunchmates/restaurant-picker/internal/service"
	"github.com/lunchmates/restaurant-picker/internal/takeaway"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	httpClient := &http.Client{Timeout: cfg.FetchTimeout}
	takeawayClient := takeaway.NewClient(httpClient, cfg.TakeawayBaseURL, cfg.LanguageCode, cfg.CountryCode, cfg.ListCacheTTL)

	restaurants := service.NewRestaurantsService(takeawayClient,
		service.WithDetailTimeout(cfg.FetchTimeout),
		service.WithDetailConcurrency(cfg.DetailConcurrency),
	)

	defaults := filter.Defaults{PostalCode: cfg.DefaultPostalCode}

	handlers := router.Handlers{
		Restaurants: handler.NewRestaurantsHandler(restaurants, defaults),
		Filters:     handler.NewFiltersHandler(),
		Chat:        handler.NewChatHandler(restaurants, defaults),
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pollerDone := make(chan struct{})
	if cfg.BotToken != "" {
		telegram := bot.NewAPIClient(nil, cfg.TelegramAPIBase, cfg.BotToken)
		dispatcher := bot.NewDispatcher(telegram, restaurants, defaults)
		handlers.Webhook = handler.NewWebhookHandler(dispatcher)

		go func() {
			defer close(pollerDone)
			if err := bot.NewPoller(telegram, dispatcher).Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Printf("poller stopped: %v", err)
			}
		}()
	} else {
		close(pollerDone)
		log.Printf("BOT_TOKEN not set, telegram bot disabled")
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middlewarepkg.RequestID())
	e.Use(middlewarepkg.Logging())
	e.Use(echoMiddleware.Recover())

	router.Register(e, cfg, handlers)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- e.Start(":" + cfg.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
		return
	}

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	select {
	case <-pollerDone:
	case <-shutdownCtx.Done():
		log.Printf("poller did not stop in time")
	}
}
