package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-checkout-api/internal/application/checkout"
	"github.com/go-checkout-api/internal/application/otp"
	"github.com/go-checkout-api/internal/config"
	"github.com/go-checkout-api/internal/metrics"
	"github.com/go-checkout-api/internal/transport/http/handler"
	appmiddleware "github.com/go-checkout-api/internal/transport/http/middleware"
	"golang.org/x/time/rate"
)

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	Store   SessionStore
	Mailer  Mailer
	Gateway OrderGateway
	Logger  *slog.Logger
}

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(appmiddleware.RequestID)
	r.Use(appmiddleware.Logging(deps.Logger))
	r.Use(appmiddleware.Metrics)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// 5 requests/second, burst of 10 — applied to the public OTP endpoints.
	sensitiveRL := appmiddleware.NewRateLimiter(rate.Limit(5), 10)

	otpSvc := otp.NewService(otp.ServiceDeps{
		Store:  deps.Store,
		Mailer: deps.Mailer,
		TTL:    cfg.OTPTTL,
	})
	checkoutSvc := checkout.NewService(checkout.ServiceDeps{
		Store:     deps.Store,
		Gateway:   deps.Gateway,
		Mailer:    deps.Mailer,
		KeySecret: cfg.RazorpayKeySecret,
		Amount:    cfg.OrderAmount,
		Currency:  cfg.OrderCurrency,
		Bundle: checkout.Bundle{
			Dir:    cfg.BundleDir,
			Prefix: cfg.BundlePrefix,
			Ext:    cfg.BundleExt,
			Count:  cfg.BundleCount,
		},
	})

	healthH := handler.NewHealthHandler()
	configH := handler.NewConfigHandler(cfg.RazorpayKeyID)
	otpH := handler.NewOTPHandler(otpSvc, deps.Logger)
	checkoutH := handler.NewCheckoutHandler(checkoutSvc, deps.Logger)

	r.Route("/api", func(r chi.Router) {
		r.Get("/config", configH.Get)
		r.With(sensitiveRL.Limit).Post("/send-otp", otpH.Send)
		r.With(sensitiveRL.Limit).Post("/verify-otp", otpH.Verify)
		r.Post("/create-order", checkoutH.CreateOrder)
		r.Post("/verify-payment", checkoutH.VerifyPayment)
	})

	r.Get("/healthz", healthH.Ping)
	r.Handle("/metrics", metrics.Handler())

	// Static storefront.
	r.Handle("/*", http.FileServer(http.Dir(cfg.PublicDir)))

	return r
}
