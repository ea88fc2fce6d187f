package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP     HTTPConfig     `yaml:"http" envPrefix:"HTTP_"`
	GRPC     GRPCConfig     `yaml:"grpc" envPrefix:"GRPC_"`
	Database DatabaseConfig `yaml:"database" envPrefix:"DB_"`
	Mongo    MongoConfig    `yaml:"mongo" envPrefix:"MONGO_"`
	Redis    RedisConfig    `yaml:"redis" envPrefix:"REDIS_"`
	Kafka    KafkaConfig    `yaml:"kafka" envPrefix:"KAFKA_"`
	Auth     AuthConfig     `yaml:"auth" envPrefix:"AUTH_"`
	Worker   WorkerConfig   `yaml:"worker" envPrefix:"WORKER_"`
	Mail     MailConfig     `yaml:"mail" envPrefix:"MAIL_"`
	Log      LogConfig      `yaml:"log" envPrefix:"LOG_"`
}

type HTTPConfig struct {
	Address             string `yaml:"address" env:"ADDRESS"`
	SwaggerDir          string `yaml:"swagger_dir" env:"SWAGGER_DIR"`
	ReadTimeoutSeconds  int    `yaml:"read_timeout_seconds" env:"READ_TIMEOUT_SECONDS"`
	WriteTimeoutSeconds int    `yaml:"write_timeout_seconds" env:"WRITE_TIMEOUT_SECONDS"`
}

type GRPCConfig struct {
	Address string `yaml:"address" env:"ADDRESS"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host" env:"HOST"`
	Port     int    `yaml:"port" env:"PORT"`
	User     string `yaml:"user" env:"USER"`
	Password string `yaml:"password" env:"PASSWORD"`
	Name     string `yaml:"name" env:"NAME"`
	SSLMode  string `yaml:"ssl_mode" env:"SSL_MODE"`
	Migrate  bool   `yaml:"migrate" env:"MIGRATE"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s", d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type MongoConfig struct {
	URI      string `yaml:"uri" env:"URI"`
	Database string `yaml:"database" env:"DATABASE"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr" env:"ADDR"`
	Password string `yaml:"password" env:"PASSWORD"`
	DB       int    `yaml:"db" env:"DB"`
}

type KafkaConfig struct {
	Brokers            []string `yaml:"brokers" env:"BROKERS" envSeparator:","`
	NotificationsTopic string   `yaml:"notifications_topic" env:"NOTIFICATIONS_TOPIC"`
	GroupID            string   `yaml:"group_id" env:"GROUP_ID"`
}

type AuthConfig struct {
	JWTSecret            string `yaml:"jwt_secret" env:"JWT_SECRET"`
	TokenTTLMinutes      int    `yaml:"token_ttl_minutes" env:"TOKEN_TTL_MINUTES"`
	ResetCooldownMinutes int    `yaml:"reset_cooldown_minutes" env:"RESET_COOLDOWN_MINUTES"`
}

func (a AuthConfig) TokenTTL() time.Duration {
	return time.Duration(a.TokenTTLMinutes) * time.Minute
}

func (a AuthConfig) ResetCooldown() time.Duration {
	return time.Duration(a.ResetCooldownMinutes) * time.Minute
}

type WorkerConfig struct {
	LateSweepCron  string `yaml:"late_sweep_cron" env:"LATE_SWEEP_CRON"`
	MetricsAddress string `yaml:"metrics_address" env:"METRICS_ADDRESS"`
}

type MailConfig struct {
	From         string `yaml:"from" env:"FROM"`
	ClientID     string `yaml:"client_id" env:"CLIENT_ID"`
	ClientSecret string `yaml:"client_secret" env:"CLIENT_SECRET"`
	RefreshToken string `yaml:"refresh_token" env:"REFRESH_TOKEN"`
}

// Enabled reports whether Gmail credentials are present.
func (m MailConfig) Enabled() bool {
	return m.ClientID != "" && m.ClientSecret != "" && m.RefreshToken != ""
}

type LogConfig struct {
	Level string `yaml:"level" env:"LEVEL"`
}

func defaults() Config {
	return Config{
		HTTP:   HTTPConfig{Address: ":8080", ReadTimeoutSeconds: 30, WriteTimeoutSeconds: 30},
		GRPC:   GRPCConfig{Address: ":9090"},
		Mongo:  MongoConfig{URI: "mongodb://localhost:27017", Database: "airops"},
		Kafka:  KafkaConfig{NotificationsTopic: "airops.notifications", GroupID: "airops-mailer"},
		Auth:   AuthConfig{TokenTTLMinutes: 60, ResetCooldownMinutes: 5},
		Worker: WorkerConfig{LateSweepCron: "*/5 * * * *", MetricsAddress: ":9100"},
		Log:    LogConfig{Level: "info"},
	}
}

// LoadConfig reads the YAML file at path on top of built-in defaults, then
// applies environment overrides. A .env file in the working directory is
// loaded first when present.
func LoadConfig(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "AIROPS_"}); err != nil {
		return nil, fmt.Errorf("failed to apply environment: %w", err)
	}

	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("auth.jwt_secret is required")
	}

	return &cfg, nil
}
