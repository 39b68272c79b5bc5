package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config is the full service configuration, loaded from a TOML file with
// secrets layered in from the environment (optionally via a .env file).
type Config struct {
	Server   ServerConfig   `toml:"server" validate:"required"`
	Database DatabaseConfig `toml:"database" validate:"required"`
	Redis    RedisConfig    `toml:"redis" validate:"required"`
	Resend   ResendConfig   `toml:"resend" validate:"required"`
	Reminder ReminderConfig `toml:"reminder"`
	Admin    AdminConfig    `toml:"admin"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Logs     LogsConfig     `toml:"logs"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port" validate:"required,min=1,max=65535"`
	ReadTimeout     int `toml:"read_timeout" validate:"required,min=1"`
	WriteTimeout    int `toml:"write_timeout" validate:"required,min=1"`
	IdleTimeout     int `toml:"idle_timeout" validate:"required,min=1"`
	ShutdownTimeout int `toml:"shutdown_timeout" validate:"required,min=1"`
}

type DatabaseConfig struct {
	Host            string `toml:"host" validate:"required"`
	Port            int    `toml:"port" validate:"required,min=1,max=65535"`
	User            string `toml:"user" validate:"required"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname" validate:"required"`
	SSLMode         string `toml:"sslmode" validate:"required,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int    `toml:"max_open_conns" validate:"required,min=1"`
	MaxIdleConns    int    `toml:"max_idle_conns" validate:"required,min=1"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime" validate:"required,min=1"`
}

// DSN builds the lib/pq connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Addr     string `toml:"addr" validate:"required"`
	Password string `toml:"password"`
	DB       int    `toml:"db" validate:"min=0"`
}

type ResendConfig struct {
	BaseURL     string `toml:"base_url" validate:"required,url"`
	Timeout     int    `toml:"timeout" validate:"required,min=1"`
	FromAddress string `toml:"from_address" validate:"required"`
	// APIKey and AdminEmail come from the environment, never from the file.
	APIKey     string `toml:"-" validate:"required"`
	AdminEmail string `toml:"-" validate:"omitempty,email"`
}

type ReminderConfig struct {
	Enabled  bool   `toml:"enabled"`
	Hour     int    `toml:"hour" validate:"min=0,max=23"`
	Timezone string `toml:"timezone"`
}

type AdminConfig struct {
	// Token guards the /admin routes; loaded from ADMIN_TOKEN.
	Token string `toml:"-" validate:"required"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level" validate:"omitempty,oneof=debug info warn error"`
}

// Load reads the TOML file at path, applies environment overrides and
// validates the result. A missing .env file is not an error.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}

	applyEnv(&cfg)

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	cfg.Resend.APIKey = os.Getenv("RESEND_API_KEY")
	cfg.Resend.AdminEmail = os.Getenv("ADMIN_EMAIL")
	cfg.Admin.Token = os.Getenv("ADMIN_TOKEN")

	if v := os.Getenv("HTTP_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.HTTPPort = port
		}
	}
}
