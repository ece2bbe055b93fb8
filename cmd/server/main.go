package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/bandoggie/backend/internal/config"
	"github.com/bandoggie/backend/internal/events"
	"github.com/bandoggie/backend/internal/httpserver"
	"github.com/bandoggie/backend/internal/logging"
	"github.com/bandoggie/backend/internal/mail"
	loggingmw "github.com/bandoggie/backend/internal/middleware/logging"
	"github.com/bandoggie/backend/internal/repo"
	"github.com/bandoggie/backend/internal/search"
	"github.com/bandoggie/backend/internal/service"
)

func main() {
	cfg := config.Load()
	cfg.MustValidate()

	logger := logging.New(cfg.LogLevel)

	e := echo.New()
	e.HideBanner = true

	e.Server.ReadTimeout = 10 * time.Second
	e.Server.WriteTimeout = 15 * time.Second
	e.Server.ReadHeaderTimeout = 3 * time.Second

	e.Use(middleware.RequestID())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(loggingmw.RequestLogger(logger))

	initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := config.InitDB(initCtx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}

	gormRepo := &repo.GormRepo{DB: db}

	var producer *events.Producer
	if len(cfg.KafkaBrokers) > 0 {
		producer = events.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer producer.Close()
	}

	var index search.Indexer
	if cfg.ESURL != "" {
		es, err := search.NewClient(cfg.ESURL, cfg.ESUser, cfg.ESPassword)
		if err != nil {
			log.Fatalf("elasticsearch init error: %v", err)
		}
		index = &search.Index{ES: es, Index: cfg.ESIndex}
	}

	mailer := mail.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPFrom)

	authSvc := &service.AuthService{Repo: gormRepo, SessionSecret: cfg.SessionSecret}
	verifySvc := &service.VerificationService{Repo: gormRepo, TicketSecret: cfg.TicketSecret, Mailer: mailer}
	principalSvc := &service.PrincipalService{Repo: gormRepo}
	cartSvc := &service.CartService{Repo: gormRepo}
	orderSvc := &service.OrderService{Repo: gormRepo}
	catalogSvc := &service.CatalogService{Repo: gormRepo, Search: index}
	reviewSvc := &service.ReviewService{Repo: gormRepo}
	guestSvc := &service.GuestService{Repo: gormRepo}

	httpserver.Register(e, &httpserver.Deps{
		Auth:      &httpserver.AuthHTTP{Svc: authSvc},
		Recovery:  &httpserver.RecoveryHTTP{Svc: verifySvc},
		Principal: &httpserver.PrincipalHTTP{Svc: principalSvc, Verify: verifySvc, Producer: producer},
		Cart:      &httpserver.CartHTTP{Svc: cartSvc, Producer: producer},
		Order:     &httpserver.OrderHTTP{Svc: orderSvc, Producer: producer},
		Catalog:   &httpserver.CatalogHTTP{Svc: catalogSvc},
		Review:    &httpserver.ReviewHTTP{Svc: reviewSvc},
		Guest:     &httpserver.GuestHTTP{Svc: guestSvc},

		SessionSecret: cfg.SessionSecret,
	})

	go func() {
		addr := fmt.Sprintf(":%d", cfg.ServerPort)
		logger.Info("starting server", "addr", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("echo start: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	<-stop
	logger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("echo shutdown", "error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}

	logger.Info("server stopped")
}
