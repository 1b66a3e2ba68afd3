package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	AppPort string
	AppEnv  string

	// Razorpay integration. The key secret signs orders API requests and is
	// also the HMAC key for payment callback verification.
	RazorpayKeyID     string
	RazorpayKeySecret string
	RazorpayBaseURL   string // overridable for tests / mock gateways

	// The single fixed-price product: amount in minor units plus currency.
	OrderAmount   int64
	OrderCurrency string

	// OTP lifetime; sessions older than this are rejected and deleted lazily.
	OTPTTL time.Duration

	// Session store backend: "memory" (default) or "redis".
	StoreBackend string
	RedisAddr    string
	RedisDB      int

	// Mail delivery: "smtp" or "log" (local development).
	MailDriver   string
	SMTPHost     string
	SMTPPort     int
	SMTPFrom     string
	SMTPUsername string
	SMTPPassword string

	// The deliverable bundle: Dir holds Count images named
	// <Prefix><NN><Ext> with NN zero-padded from 01.
	BundleDir    string
	BundlePrefix string
	BundleExt    string
	BundleCount  int

	PublicDir      string   // static storefront assets
	AllowedOrigins []string // CORS allowed origins
}

// Load reads all configuration from environment variables.
func Load() *Config {
	return &Config{
		AppPort: getEnv("APP_PORT", "3000"),
		AppEnv:  getEnv("APP_ENV", "development"),

		RazorpayKeyID:     getEnv("RAZORPAY_KEY_ID", ""),
		RazorpayKeySecret: getEnv("RAZORPAY_KEY_SECRET", ""),
		RazorpayBaseURL:   getEnv("RAZORPAY_BASE_URL", "https://api.razorpay.com"),

		OrderAmount:   int64(getEnvInt("ORDER_AMOUNT", 150)),
		OrderCurrency: getEnv("ORDER_CURRENCY", "INR"),

		OTPTTL: getEnvDuration("OTP_TTL", 5*time.Minute),

		StoreBackend: getEnv("STORE_BACKEND", "memory"),
		RedisAddr:    getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:      getEnvInt("REDIS_DB", 0),

		MailDriver:   getEnv("MAIL_DRIVER", "smtp"),
		SMTPHost:     getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:     getEnvInt("SMTP_PORT", 587),
		SMTPFrom:     getEnv("SMTP_FROM", "noreply@example.com"),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),

		BundleDir:    getEnv("BUNDLE_DIR", "./assets/bundle"),
		BundlePrefix: getEnv("BUNDLE_PREFIX", "artwork-"),
		BundleExt:    getEnv("BUNDLE_EXT", ".jpg"),
		BundleCount:  getEnvInt("BUNDLE_COUNT", 11),

		PublicDir:      getEnv("PUBLIC_DIR", "./public"),
		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
