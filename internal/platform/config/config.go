package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	platformstrings "github.com/deidexdd-hash/mysticbot/pkg/platform/strings"
)

// Server captures process level configuration.
type Server struct {
	Addr         string
	LogLevel     string
	LogFormat    string
	ProfileStore string // memory, redis or postgres
	TablesDir    string // empty uses the embedded tables
	Engine       EngineConfig
	Redis        RedisConfig
	Postgres     PostgresConfig
	Kafka        KafkaConfig
}

// EngineConfig holds the numerology policy switches. Values are validated by
// the numerology package parsers in main.
type EngineConfig struct {
	ReductionPolicy string
	OverflowPolicy  string
	DefaultGender   string
}

// RedisConfig configures the redis profile store.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// PostgresConfig configures the postgres profile store.
type PostgresConfig struct {
	URL          string
	MaxOpenConns int
	MaxIdleConns int
}

// KafkaConfig configures the profile event sink. No brokers disables it.
// DeliveryTimeout bounds how long a record may wait for an ack, retries
// included.
type KafkaConfig struct {
	Brokers         []string
	Topic           string
	DeliveryTimeout time.Duration
	RecordRetries   int
}

// Store backends.
const (
	StoreMemory   = "memory"
	StoreRedis    = "redis"
	StorePostgres = "postgres"
)

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	return Server{
		Addr:         envOr("MYSTICBOT_ADDR", ":8080"),
		LogLevel:     envOr("LOG_LEVEL", "info"),
		LogFormat:    envOr("LOG_FORMAT", "json"),
		ProfileStore: strings.ToLower(envOr("PROFILE_STORE", StoreMemory)),
		TablesDir:    os.Getenv("TABLES_DIR"),
		Engine: EngineConfig{
			ReductionPolicy: os.Getenv("REDUCTION_POLICY"),
			OverflowPolicy:  os.Getenv("OVERFLOW_POLICY"),
			DefaultGender:   os.Getenv("DEFAULT_GENDER"),
		},
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     envInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: envInt("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  envDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  envDuration("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: envDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		Postgres: PostgresConfig{
			URL:          os.Getenv("DATABASE_URL"),
			MaxOpenConns: envInt("DATABASE_MAX_OPEN_CONNS", 10),
			MaxIdleConns: envInt("DATABASE_MAX_IDLE_CONNS", 5),
		},
		Kafka: KafkaConfig{
			Brokers:         platformstrings.SplitList(os.Getenv("KAFKA_BROKERS")),
			Topic:           envOr("KAFKA_TOPIC", "mysticbot.profiles"),
			DeliveryTimeout: envDuration("KAFKA_DELIVERY_TIMEOUT", 5*time.Second),
			RecordRetries:   envInt("KAFKA_RECORD_RETRIES", 3),
		},
	}
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}
