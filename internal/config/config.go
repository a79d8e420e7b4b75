// Package config loads service settings from a YAML file pointed to by
// CONFIG_PATH, falling back to plain environment variables. An optional .env
// file in the working directory is read first.
package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Storage drivers.
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
)

// Config is the root of all settings.
type Config struct {
	Env             string          `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer      HTTPServer      `yaml:"http_server"`
	Storage         Storage         `yaml:"storage"`
	RedisConnection RedisConnection `yaml:"redis_connection"`
	RabbitMQ        RabbitMQ        `yaml:"rabbitmq"`
	SMTP            SMTP            `yaml:"smtp"`
	JWTToken        JWTToken        `yaml:"jwttoken"`
	Admin           Admin           `yaml:"admin"`
	RateLimit       RateLimit       `yaml:"rate_limit"`
}

// HTTPServer holds listener settings.
type HTTPServer struct {
	Address     string        `yaml:"address" env:"HTTP_ADDRESS" env-default:":8000"`
	Timeout     time.Duration `yaml:"timeout" env-default:"10s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// Storage selects and configures the persistence backend. An empty URL for the
// selected driver puts the API into maintenance mode.
type Storage struct {
	Driver         string        `yaml:"driver" env:"STORAGE_DRIVER" env-default:"mongo"`
	MongoURL       string        `yaml:"mongo_url" env:"MONGO_URL"`
	DBName         string        `yaml:"db_name" env:"DB_NAME" env-default:"mavecode_db"`
	PostgresURL    string        `yaml:"postgres_url" env:"DATABASE_URL"`
	MigrationsPath string        `yaml:"migrations_path" env:"MIGRATIONS_PATH" env-default:"./migrations"`
	ConnectTimeout time.Duration `yaml:"connect_timeout" env-default:"10s"`
}

// URL returns the connection string of the selected driver.
func (s Storage) URL() string {
	if s.Driver == DriverPostgres {
		return s.PostgresURL
	}
	return s.MongoURL
}

// RedisConnection configures the rate limiter backend. Empty Address disables
// Redis and the in-process limiter is used instead.
type RedisConnection struct {
	Address     string        `yaml:"address" env:"REDIS_ADDR"`
	Password    string        `yaml:"password" env:"REDIS_PASSWORD"`
	User        string        `yaml:"user"`
	DB          int           `yaml:"db"`
	MaxRetries  int           `yaml:"max_retries"`
	DialTimeout time.Duration `yaml:"dial_timeout"`
	Timeout     time.Duration `yaml:"timeout"`
}

// RabbitMQ configures domain event publishing. Empty URL disables it.
type RabbitMQ struct {
	URL        string        `yaml:"url" env:"RABBITMQ_URL"`
	MaxRetries int           `yaml:"max_retries" env-default:"5"`
	RetryDelay time.Duration `yaml:"retry_delay" env-default:"2s"`
}

// SMTP configures the notification sender.
type SMTP struct {
	Host       string `yaml:"host" env:"SMTP_HOST"`
	Port       string `yaml:"port" env:"SMTP_PORT" env-default:"587"`
	User       string `yaml:"user" env:"SMTP_USER"`
	Pass       string `yaml:"pass" env:"SMTP_PASS"`
	AdminEmail string `yaml:"admin_email" env:"SMTP_ADMIN_EMAIL" env-default:"admin@mavecode.id"`
}

// JWTToken configures the token service.
type JWTToken struct {
	SecretKey string        `yaml:"secret_key" env:"JWT_SECRET" env-default:"mavecode-secret-key"`
	TokenTTL  time.Duration `yaml:"token_ttl" env:"JWT_TTL" env-default:"24h"`
}

// Admin holds the hardcoded admin credentials.
type Admin struct {
	Username string `yaml:"username" env:"ADMIN_USERNAME" env-default:"Mavecode07"`
	Password string `yaml:"password" env:"ADMIN_PASSWORD" env-default:"Mavecode07"`
}

// RateLimit bounds requests to the auth endpoints per client per window.
type RateLimit struct {
	Requests int           `yaml:"requests" env:"RATE_LIMIT_REQUESTS" env-default:"20"`
	Window   time.Duration `yaml:"window" env:"RATE_LIMIT_WINDOW" env-default:"1m"`
}

// Load reads the configuration. With an empty path only the environment is
// consulted.
func Load(path string) (*Config, error) {
	const op = "config.Load"

	_ = godotenv.Load()

	var cfg Config
	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		return &cfg, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s: file %s does not exist", op, path)
	}
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &cfg, nil
}

// MustLoad loads the configuration from CONFIG_PATH and exits the process on
// failure.
func MustLoad() *Config {
	cfg, err := Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return cfg
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"Env: %s\n"+
			"HTTPServer: %s timeout=%s idle=%s\n"+
			"Storage: driver=%s db=%s configured=%t\n"+
			"Redis: %s\n"+
			"RabbitMQ configured: %t\n"+
			"SMTP: %s:%s\n"+
			"TokenTTL: %s\n",
		c.Env,
		c.HTTPServer.Address, c.HTTPServer.Timeout, c.HTTPServer.IdleTimeout,
		c.Storage.Driver, c.Storage.DBName, c.Storage.URL() != "",
		c.RedisConnection.Address,
		c.RabbitMQ.URL != "",
		c.SMTP.Host, c.SMTP.Port,
		c.JWTToken.TokenTTL,
	)
}
