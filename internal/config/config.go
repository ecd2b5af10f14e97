package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Server   ServerConfig
	DB       PostgresConfig
	Kafka    KafkaConfig
	Redis    RedisConfig
	Delivery DeliveryConfig
}

type AppConfig struct {
	Name string
	Env  string
}

type ServerConfig struct {
	Host string
	Port int
}

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	MaxConns int
}

type KafkaConfig struct {
	Brokers       []string
	EventTopic    string
	ConsumerGroup string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// PlatformConfig carries the credentials for one delivery platform.
// Resolved once at startup and passed explicitly to the components that
// need it, never read ad hoc from a settings store.
type PlatformConfig struct {
	APIKey        string
	WebhookSecret string
	PartnerID     string
	Enabled       bool
	BaseURL       string
}

type DeliveryConfig struct {
	Zomato PlatformConfig
	Swiggy PlatformConfig

	// Webhook rate limit: at most RateLimit requests per RateWindow per platform.
	RateLimit  int
	RateWindow time.Duration

	// Timeout applied to outbound status-sync calls to the platforms.
	SyncTimeout time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Name: getEnv("APP_NAME", "restaurant-pos"),
			Env:  getEnv("APP_ENV", "local"),
		},
		Server: ServerConfig{
			Host: getEnv("HTTP_HOST", "0.0.0.0"),
			Port: getEnvAsInt("HTTP_PORT", 8040),
		},
		DB: PostgresConfig{
			Host:     getEnv("POSTGRES_HOST", "localhost"),
			Port:     getEnvAsInt("POSTGRES_PORT", 5432),
			User:     getEnv("POSTGRES_USER", "postgres"),
			Password: getEnv("POSTGRES_PASSWORD", ""),
			DBName:   getEnv("POSTGRES_DB", "restaurant_pos"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			MaxConns: getEnvAsInt("DB_MAX_CONNS", 10),
		},
		Kafka: KafkaConfig{
			Brokers:       splitAndTrim(getEnv("KAFKA_BOOTSTRAP_SERVERS", "localhost:9092")),
			EventTopic:    getEnv("KAFKA_DELIVERY_EVENT_TOPIC", "delivery_events"),
			ConsumerGroup: getEnv("KAFKA_CONSUMER_GROUP", "restaurant-pos-notifier"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Delivery: DeliveryConfig{
			Zomato: PlatformConfig{
				APIKey:        getEnv("ZOMATO_API_KEY", ""),
				WebhookSecret: getEnv("ZOMATO_WEBHOOK_SECRET", ""),
				Enabled:       getEnvAsBool("ZOMATO_ENABLED", false),
				BaseURL:       getEnv("ZOMATO_BASE_URL", "https://api.zomato.com/api/v1.1"),
			},
			Swiggy: PlatformConfig{
				APIKey:        getEnv("SWIGGY_API_KEY", ""),
				WebhookSecret: getEnv("SWIGGY_WEBHOOK_SECRET", ""),
				PartnerID:     getEnv("SWIGGY_PARTNER_ID", ""),
				Enabled:       getEnvAsBool("SWIGGY_ENABLED", false),
				BaseURL:       getEnv("SWIGGY_BASE_URL", "https://partner-api.swiggy.com/v1"),
			},
			RateLimit:   getEnvAsInt("WEBHOOK_RATE_LIMIT", 10),
			RateWindow:  time.Duration(getEnvAsInt("WEBHOOK_RATE_WINDOW_SECONDS", 60)) * time.Second,
			SyncTimeout: time.Duration(getEnvAsInt("PLATFORM_SYNC_TIMEOUT_SECONDS", 10)) * time.Second,
		},
	}

	return cfg, cfg.validate()
}

func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

func (p PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		p.User,
		p.Password,
		p.Host,
		p.Port,
		p.DBName,
		p.SSLMode,
	)
}

// Platform returns the config for a platform name ("zomato"/"swiggy"),
// false when the platform is unknown.
func (d DeliveryConfig) Platform(name string) (PlatformConfig, bool) {
	switch strings.ToLower(name) {
	case "zomato":
		return d.Zomato, true
	case "swiggy":
		return d.Swiggy, true
	default:
		return PlatformConfig{}, false
	}
}

/* ================= helpers ================= */

func (c *Config) validate() error {
	if c.Server.Port <= 0 {
		return fmt.Errorf("HTTP_PORT is invalid")
	}
	if c.DB.Host == "" || c.DB.User == "" || c.DB.DBName == "" {
		return fmt.Errorf("database config is incomplete")
	}
	if len(c.Kafka.Brokers) == 0 {
		return fmt.Errorf("kafka brokers is empty")
	}
	if c.Delivery.RateLimit <= 0 || c.Delivery.RateWindow <= 0 {
		return fmt.Errorf("webhook rate limit config is invalid")
	}
	// Webhook secrets are optional here: a platform without a secret simply
	// rejects every webhook at the signature check.
	return nil
}

func getEnv(key, defaultVal string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if v, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvAsBool(key string, defaultVal bool) bool {
	if v, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultVal
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if val := strings.TrimSpace(p); val != "" {
			out = append(out, val)
		}
	}
	return out
}
