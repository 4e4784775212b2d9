package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`
	Auth Auth `validate:"required"`

	Postgres Postgres `validate:"required"`
	Kafka    Kafka    `validate:"required"`

	Payment Payment `validate:"required"`
	Geo     Geo     `validate:"required"`

	Reconciler Reconciler `validate:"required"`
	Cache      Cache      `validate:"required"`
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,gt=0,lte=65535"`
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

type Auth struct {
	Secret string `validate:"required"`
}

type Postgres struct {
	Host     string `validate:"required,hostname|ip"`
	Port     int    `validate:"required,gt=0,lte=65535"`
	DBName   string `validate:"required"`
	User     string `validate:"required"`
	Password string `validate:"required"`

	SSLMode string `validate:"required,oneof=disable require verify-ca verify-full"`

	MaxOpenConns    int           `validate:"gte=1"`
	MaxIdleConns    int           `validate:"gte=0"`
	ConnMaxLifetime time.Duration `validate:"gte=0"`
}

type Kafka struct {
	Brokers []string `validate:"required,min=1,dive,hostname_port"`
	Topic   string   `validate:"required"`

	BatchTimeout time.Duration `validate:"gte=0"`
}

type Payment struct {
	BaseURL    string `validate:"required,url"`
	MerchantID string `validate:"required"`
	// Ключ расшифровки коллбэка, ровно 32 байта (AES-256-GCM)
	APIV3Key  string        `validate:"required,len=32"`
	NotifyURL string        `validate:"required,url"`
	Timeout   time.Duration `validate:"gt=0"`
}

type Geo struct {
	BaseURL string `validate:"required,url"`
	Key     string `validate:"required"`

	StoreLat float64 `validate:"required"`
	StoreLng float64 `validate:"required"`

	MaxDistanceMeters float64       `validate:"gt=0"`
	Timeout           time.Duration `validate:"gt=0"`
}

type Reconciler struct {
	PaymentSweepInterval time.Duration `validate:"gt=0"`
	PaymentTimeout       time.Duration `validate:"gt=0"`

	DeliverySweepInterval time.Duration `validate:"gt=0"`
	DeliveryTimeout       time.Duration `validate:"gt=0"`

	// Сдвиг второго тикера, чтобы свипы не сработали одновременно
	DeliverySweepOffset time.Duration `validate:"gte=0"`
}

type Cache struct {
	Capacity int           `validate:"gte=1"`
	TTL      time.Duration `validate:"gt=0"`
}

func New() Config {
	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "8080"),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "http://localhost:3000"), ","),
		},

		Auth: Auth{
			Secret: env("JWT_SECRET", ""),
		},

		Postgres: Postgres{
			Host:     env("POSTGRES_HOST", "localhost"),
			Port:     envInt("POSTGRES_PORT", 5432),
			DBName:   env("POSTGRES_DB", "eatery"),
			User:     env("POSTGRES_USER", ""),
			Password: env("POSTGRES_PASSWORD", ""),

			SSLMode: env("POSTGRES_SSL_MODE", "disable"),

			MaxOpenConns:    envInt("POSTGRES_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envInt("POSTGRES_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: envDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),
		},

		Kafka: Kafka{
			Brokers: strings.Split(env("KAFKA_BROKERS", "localhost:9092"), ","),
			Topic:   env("KAFKA_TOPIC", "order-events"),

			BatchTimeout: envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},

		Payment: Payment{
			BaseURL:    env("PAYMENT_BASE_URL", "https://api.mch.example.com"),
			MerchantID: env("PAYMENT_MERCHANT_ID", ""),
			APIV3Key:   env("PAYMENT_API_V3_KEY", ""),
			NotifyURL:  env("PAYMENT_NOTIFY_URL", "http://localhost:8080/api/payment/notify"),
			Timeout:    envDuration("PAYMENT_TIMEOUT", 10*time.Second),
		},

		Geo: Geo{
			BaseURL: env("GEO_BASE_URL", "https://restapi.example.com"),
			Key:     env("GEO_KEY", ""),

			StoreLat: envFloat("GEO_STORE_LAT", 0),
			StoreLng: envFloat("GEO_STORE_LNG", 0),

			MaxDistanceMeters: envFloat("GEO_MAX_DISTANCE_METERS", 5000),
			Timeout:           envDuration("GEO_TIMEOUT", 5*time.Second),
		},

		Reconciler: Reconciler{
			PaymentSweepInterval: envDuration("RECONCILER_PAYMENT_SWEEP_INTERVAL", time.Minute),
			PaymentTimeout:       envDuration("RECONCILER_PAYMENT_TIMEOUT", 15*time.Minute),

			DeliverySweepInterval: envDuration("RECONCILER_DELIVERY_SWEEP_INTERVAL", time.Hour),
			DeliveryTimeout:       envDuration("RECONCILER_DELIVERY_TIMEOUT", time.Hour),

			DeliverySweepOffset: envDuration("RECONCILER_DELIVERY_SWEEP_OFFSET", 30*time.Second),
		},

		Cache: Cache{
			Capacity: envInt("CACHE_CAPACITY", 1000),
			TTL:      envDuration("CACHE_TTL", 10*time.Minute),
		},
	}
}

func (c Config) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
