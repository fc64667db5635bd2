package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/mcastell/product-catalog/internal/config"
	"github.com/mcastell/product-catalog/internal/events"
	"github.com/mcastell/product-catalog/internal/handlers"
	"github.com/mcastell/product-catalog/internal/httpserver"
	"github.com/mcastell/product-catalog/internal/logging"
	loggingmw "github.com/mcastell/product-catalog/internal/middleware/logging"
	"github.com/mcastell/product-catalog/internal/repo"
	"github.com/mcastell/product-catalog/internal/service"
	"github.com/mcastell/product-catalog/internal/session"
)

func main() {
	cfg := config.Load()

	logger := logging.New(cfg.LogLevel).With("service", "product-catalog")
	slog.SetDefault(logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	store, err := repo.Open(ctx, cfg)
	cancel()
	if err != nil {
		log.Fatalf("db open: %v", err)
	}

	bootCtx, bootCancel := context.WithTimeout(context.Background(), 10*time.Second)
	err = store.Bootstrap(bootCtx)
	bootCancel()
	if err != nil {
		log.Fatalf("db bootstrap: %v", err)
	}

	producer := events.NewProducer(cfg.KafkaAddress)

	sessions := session.NewStore()
	auth := &service.AuthService{Repo: store, Sessions: sessions}
	catalog := &service.CatalogService{Repo: store}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(loggingmw.RequestLogger(logger))
	e.Use(echomw.CORS())

	httpserver.Register(e, &httpserver.Deps{
		ProductHandler: &handlers.ProductHandler{Svc: catalog, Producer: producer},
		PageHandler:    &handlers.PageHandler{Auth: auth, Producer: producer},
		Auth:           auth,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
	}

	go func() {
		log.Printf("product-catalog listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = srv.Shutdown(shutdownCtx)
	_ = producer.Close()
	_ = store.Close()

	log.Println("product-catalog stopped")
}
