package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	DB       DBConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Cycle    CycleConfig
	Reminder ReminderConfig
	SMTP     SMTPConfig
}

type AppConfig struct {
	Port           string
	Env            string
	Timezone       string
	AllowedOrigins []string
}

type DBConfig struct {
	Host        string
	Port        string
	User        string
	Password    string
	Name        string
	AutoMigrate bool

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type RedisConfig struct {
	Host      string
	Port      string
	Password  string
	DB        int
	// OpTimeout bounds dial/read/write so a slow Redis degrades to the database path
	OpTimeout time.Duration
}

type JWTConfig struct {
	Secret       string
	AccessExpiry time.Duration
}

type CycleConfig struct {
	DefaultLength         int
	DefaultPeriodDuration int
}

type ReminderConfig struct {
	Workers    int
	QueueSize  int
	DigestCron string
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Location resolves App.Timezone, falling back to UTC.
func (c *Config) Location() *time.Location {
	if c.App.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// DSN builds the PostgreSQL connection string used by gorm. The session runs in UTC
// so calendar dates (UTC midnight) are never shifted when cast to date columns.
func (c DBConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		c.Host, c.User, c.Password, c.Name, c.Port,
	)
}

// MigrationURL builds the pgx5:// URL understood by golang-migrate.
func (c DBConfig) MigrationURL() string {
	return fmt.Sprintf("pgx5://%s:%s@%s:%s/%s?sslmode=disable", c.User, c.Password, c.Host, c.Port, c.Name)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_TIMEZONE", "Asia/Jakarta")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_AUTO_MIGRATE", false)
	v.SetDefault("DB_MAX_OPEN_CONNS", 50)
	v.SetDefault("DB_MAX_IDLE_CONNS", 10)
	v.SetDefault("DB_CONN_MAX_LIFETIME", "30m")
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_OP_TIMEOUT", "500ms")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("CYCLE_DEFAULT_LENGTH", 28)
	v.SetDefault("CYCLE_DEFAULT_PERIOD_DURATION", 5)
	v.SetDefault("REMINDER_WORKERS", 4)
	v.SetDefault("REMINDER_QUEUE_SIZE", 1024)
	v.SetDefault("REMINDER_DIGEST_CRON", "0 7 * * *")
	v.SetDefault("SMTP_PORT", 587)
}

// LoadConfig reads the given .env file (if present) and the process environment.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// Containers usually ship without a .env file; the environment is enough.
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	accessExpiry, err := time.ParseDuration(v.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 15 * time.Minute
	}

	config := &Config{
		App: AppConfig{
			Port:           v.GetString("APP_PORT"),
			Env:            v.GetString("APP_ENV"),
			Timezone:       v.GetString("APP_TIMEZONE"),
			AllowedOrigins: splitCSV(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		DB: DBConfig{
			Host:        v.GetString("DB_HOST"),
			Port:        v.GetString("DB_PORT"),
			User:        v.GetString("DB_USER"),
			Password:    v.GetString("DB_PASSWORD"),
			Name:        v.GetString("DB_NAME"),
			AutoMigrate: v.GetBool("DB_AUTO_MIGRATE"),

			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: v.GetDuration("DB_CONN_MAX_LIFETIME"),
		},
		Redis: RedisConfig{
			Host:      v.GetString("REDIS_HOST"),
			Port:      v.GetString("REDIS_PORT"),
			Password:  v.GetString("REDIS_PASSWORD"),
			DB:        v.GetInt("REDIS_DB"),
			OpTimeout: v.GetDuration("REDIS_OP_TIMEOUT"),
		},
		JWT: JWTConfig{
			Secret:       v.GetString("JWT_SECRET"),
			AccessExpiry: accessExpiry,
		},
		Cycle: CycleConfig{
			DefaultLength:         v.GetInt("CYCLE_DEFAULT_LENGTH"),
			DefaultPeriodDuration: v.GetInt("CYCLE_DEFAULT_PERIOD_DURATION"),
		},
		Reminder: ReminderConfig{
			Workers:    v.GetInt("REMINDER_WORKERS"),
			QueueSize:  v.GetInt("REMINDER_QUEUE_SIZE"),
			DigestCron: v.GetString("REMINDER_DIGEST_CRON"),
		},
		SMTP: SMTPConfig{
			Host:     v.GetString("SMTP_HOST"),
			Port:     v.GetInt("SMTP_PORT"),
			Username: v.GetString("SMTP_USERNAME"),
			Password: v.GetString("SMTP_PASSWORD"),
			From:     v.GetString("SMTP_FROM"),
		},
	}

	if config.JWT.Secret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	return config, nil
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
