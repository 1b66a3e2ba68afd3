package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-checkout-api/internal/config"
	"github.com/go-checkout-api/internal/infrastructure/otpstore"
	"github.com/go-checkout-api/internal/infrastructure/razorpay"
	smtpinfra "github.com/go-checkout-api/internal/infrastructure/smtp"
	applog "github.com/go-checkout-api/internal/log"
	"github.com/go-checkout-api/internal/metrics"
	transporthttp "github.com/go-checkout-api/internal/transport/http"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg := config.Load()
	logger := applog.NewLogger(cfg.AppEnv)

	metrics.Register()

	// OTP session store: volatile in-memory by default, Redis when several
	// instances need to share sessions.
	var store transporthttp.SessionStore
	switch cfg.StoreBackend {
	case "redis":
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, DB: cfg.RedisDB})
		if err := client.Ping(context.Background()).Err(); err != nil {
			logger.Error("redis unreachable", "addr", cfg.RedisAddr, "err", err)
			os.Exit(1)
		}
		store = otpstore.NewRedis(client, cfg.OTPTTL)
	default:
		store = otpstore.NewMemory()
	}

	var mailer transporthttp.Mailer
	if cfg.MailDriver == "log" {
		mailer = &smtpinfra.LogMailer{Logger: logger}
	} else {
		mailer = smtpinfra.NewMailer(cfg)
	}

	gateway := razorpay.NewClient(cfg.RazorpayBaseURL, cfg.RazorpayKeyID, cfg.RazorpayKeySecret)

	router := transporthttp.NewRouter(cfg, &transporthttp.Deps{
		Store:   store,
		Mailer:  mailer,
		Gateway: gateway,
		Logger:  logger,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting", "port", cfg.AppPort, "env", cfg.AppEnv, "store", cfg.StoreBackend)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", "err", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}
