package environments

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server      ServerConfig
	Log         LogConfig
	Redis       RedisConfig
	Pairing     PairingConfig
	ViewState   ViewStateConfig
	WebhookTest WebhookTestConfig
	Seed        SeedConfig
}

type ServerConfig struct {
	Port string
}

type LogConfig struct {
	Level string
	File  string
}

type RedisConfig struct {
	Enabled      bool
	Host         string
	Port         string
	Password     string
	DB           int
	ViewStateTTL time.Duration
}

type PairingConfig struct {
	Countdown          int
	TickInterval       time.Duration
	SuccessProbability float64
	SweepInterval      time.Duration
	IdleTimeout        time.Duration
}

// ViewStateConfig bounds the in-memory view states. Mirrored snapshots in
// Valkey use Redis.ViewStateTTL instead.
type ViewStateConfig struct {
	IdleTimeout time.Duration
}

// WebhookTestConfig selects how the "Test webhook" button probes an endpoint.
// Mode is either "simulated" or "live".
type WebhookTestConfig struct {
	Mode               string
	Timeout            time.Duration
	SuccessProbability float64
}

type SeedConfig struct {
	FixturesPath string
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port: GetEnv("SERVER_PORT", "8080"),
		},
		Log: LogConfig{
			Level: GetEnv("LOG_LEVEL", "info"),
			File:  GetEnv("LOG_FILE", ""),
		},
		Redis: RedisConfig{
			Enabled:      GetEnvAsBool("REDIS_ENABLED", false),
			Host:         GetEnv("REDIS_HOST", "localhost"),
			Port:         GetEnv("REDIS_PORT", "6379"),
			Password:     GetEnv("REDIS_PASSWORD", ""),
			DB:           GetEnvAsInt("REDIS_DB", 0),
			ViewStateTTL: GetEnvAsDuration("VIEW_STATE_TTL", 24*time.Hour),
		},
		Pairing: PairingConfig{
			Countdown:          GetEnvAsInt("PAIRING_COUNTDOWN", 30),
			TickInterval:       GetEnvAsDuration("PAIRING_TICK_INTERVAL", time.Second),
			SuccessProbability: GetEnvAsFloat("PAIRING_SUCCESS_PROBABILITY", 0.8),
			SweepInterval:      GetEnvAsDuration("PAIRING_SWEEP_INTERVAL", time.Minute),
			IdleTimeout:        GetEnvAsDuration("PAIRING_IDLE_TIMEOUT", 10*time.Minute),
		},
		ViewState: ViewStateConfig{
			IdleTimeout: GetEnvAsDuration("VIEW_STATE_IDLE_TIMEOUT", 30*time.Minute),
		},
		WebhookTest: WebhookTestConfig{
			Mode:               GetEnv("WEBHOOK_TEST_MODE", "simulated"),
			Timeout:            time.Duration(GetEnvAsInt("WEBHOOK_TEST_TIMEOUT_SECONDS", 10)) * time.Second,
			SuccessProbability: GetEnvAsFloat("WEBHOOK_TEST_SUCCESS_PROBABILITY", 0.7),
		},
		Seed: SeedConfig{
			FixturesPath: GetEnv("SEED_FIXTURES_PATH", ""),
		},
	}
}

func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func GetEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func GetEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
