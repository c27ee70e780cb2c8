package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"

	"github.com/altikastudio/dashboard-api/internal/config"
	"github.com/altikastudio/dashboard-api/internal/handler"
	appointmentHandler "github.com/altikastudio/dashboard-api/internal/handler/appointment"
	authHandler "github.com/altikastudio/dashboard-api/internal/handler/auth"
	birthdayHandler "github.com/altikastudio/dashboard-api/internal/handler/birthday"
	"github.com/altikastudio/dashboard-api/internal/message"
	"github.com/altikastudio/dashboard-api/internal/middleware"
	"github.com/altikastudio/dashboard-api/internal/router"
	authService "github.com/altikastudio/dashboard-api/internal/service/auth"
	birthdayService "github.com/altikastudio/dashboard-api/internal/service/birthday"
	scheduleService "github.com/altikastudio/dashboard-api/internal/service/schedule"
	"github.com/altikastudio/dashboard-api/internal/upstream"
	"github.com/altikastudio/dashboard-api/internal/view"
	pkgauth "github.com/altikastudio/dashboard-api/pkg/auth"
	"github.com/altikastudio/dashboard-api/pkg/logger"
	"github.com/altikastudio/dashboard-api/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := logger.New(&logger.Config{Level: level, Pretty: cfg.Log.Pretty})

	m := metrics.New("dashboard")

	upstreamClient := upstream.New(cfg.Upstream.BaseURL, cfg.Upstream.Timeout, log, m)

	var extra []message.Substitution
	for from, to := range cfg.Messaging.Substitutions {
		extra = append(extra, message.Substitution{From: from, To: to})
	}
	sanitizer := message.NewSanitizer(extra...)
	composer := message.NewComposer(sanitizer, cfg.Messaging.ClinicName, cfg.Messaging.SenderName)

	sessions := gocache.New(cfg.Session.TTL, cfg.Session.TTL)
	records := gocache.New(cfg.Cache.TTL, cfg.Cache.TTL)

	tokens := pkgauth.NewJWTService(cfg.Session.Secret, cfg.Session.TTL)
	authSvc := authService.NewService(upstreamClient, tokens, sessions, log)
	scheduleSvc := scheduleService.NewService(upstreamClient, records, composer, m, log)
	birthdaySvc := birthdayService.NewService(upstreamClient, records, composer, view.RealClock{}, m, log)

	handler.RegisterValidations()

	authMw := middleware.NewAuthMiddleware(authSvc)
	r := router.New(
		authMw,
		authHandler.NewHandler(authSvc),
		appointmentHandler.NewHandler(scheduleSvc),
		birthdayHandler.NewHandler(birthdaySvc),
		router.Config{
			RateLimitRPS:   cfg.RateLimit.RPS,
			RateLimitBurst: cfg.RateLimit.Burst,
			MetricsPrefix:  "dashboard",
		},
	)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info("server starting", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err, "server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("server shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error(err, "forced shutdown")
	}
}
