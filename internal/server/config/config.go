// Package config загружает настройки сервера из переменных окружения,
// файла .env и флагов командной строки.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Имена переменных окружения
const (
	EnvAddr                = "MOVIESHELF_ADDR"
	EnvDB                  = "MOVIESHELF_DB"
	EnvJWTSecret           = "MOVIESHELF_JWT_SECRET"
	EnvAccessTTL           = "MOVIESHELF_ACCESS_TTL"
	EnvRefreshTTL          = "MOVIESHELF_REFRESH_TTL"
	EnvLogLevel            = "MOVIESHELF_LOG_LEVEL"
	EnvGeneratorInterval   = "MOVIESHELF_GENERATOR_INTERVAL"
	EnvCORSOrigins         = "MOVIESHELF_CORS_ORIGINS"
	EnvRateLimit           = "MOVIESHELF_RATE_LIMIT"
	EnvRateBurst           = "MOVIESHELF_RATE_BURST"
	EnvAdminUsername       = "MOVIESHELF_ADMIN_USERNAME"
	EnvAdminPassword       = "MOVIESHELF_ADMIN_PASSWORD"
	EnvSeed                = "MOVIESHELF_SEED"
	minAdminPasswordLen    = 8
	minJWTSecretLen        = 16
	defaultGeneratorPeriod = 5 * time.Second
)

// Config настройки сервера
type Config struct {
	Addr              string
	DBPath            string
	JWTSecret         string
	CORSOrigins       []string
	AccessTokenTTL    time.Duration
	RefreshTokenTTL   time.Duration
	GeneratorInterval time.Duration
	RateLimit         float64       // запросов в секунду на клиента, 0 отключает ограничение
	RateBurst         int
	LogLevel          slog.Level
	AdminUsername     string
	AdminPassword     string // пустой пароль отключает создание администратора
	Seed              bool   // заполнить пустой каталог примерами
	ShowVersion       bool
}

// Load читает конфигурацию. Приоритет: флаги, переменные окружения, .env, значения по умолчанию.
// envFile может отсутствовать.
func Load(args []string, envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	cfg := &Config{
		Addr:        getEnv(EnvAddr, ":8080"),
		DBPath:      getEnv(EnvDB, "movieshelf.db"),
		JWTSecret:   os.Getenv(EnvJWTSecret),
		CORSOrigins: getSliceEnv(EnvCORSOrigins, []string{"*"}),
		RateBurst:   20,
		RateLimit:   10,

		AdminUsername: getEnv(EnvAdminUsername, "admin"),
		AdminPassword: os.Getenv(EnvAdminPassword),
	}

	var err error
	if cfg.AccessTokenTTL, err = getDurationEnv(EnvAccessTTL, 15*time.Minute); err != nil {
		return nil, err
	}
	if cfg.RefreshTokenTTL, err = getDurationEnv(EnvRefreshTTL, 7*24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.GeneratorInterval, err = getDurationEnv(EnvGeneratorInterval, defaultGeneratorPeriod); err != nil {
		return nil, err
	}

	if v := os.Getenv(EnvRateLimit); v != "" {
		if cfg.RateLimit, err = strconv.ParseFloat(v, 64); err != nil {
			return nil, fmt.Errorf("invalid %s: %w", EnvRateLimit, err)
		}
	}
	if v := os.Getenv(EnvRateBurst); v != "" {
		if cfg.RateBurst, err = strconv.Atoi(v); err != nil {
			return nil, fmt.Errorf("invalid %s: %w", EnvRateBurst, err)
		}
	}

	if v := os.Getenv(EnvSeed); v != "" {
		if cfg.Seed, err = strconv.ParseBool(v); err != nil {
			return nil, fmt.Errorf("invalid %s: %w", EnvSeed, err)
		}
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(getEnv(EnvLogLevel, "info"))); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", EnvLogLevel, err)
	}

	fset := flag.NewFlagSet("movieshelf-server", flag.ContinueOnError)
	fset.StringVar(&cfg.Addr, "addr", cfg.Addr, "HTTP listen address")
	fset.StringVar(&cfg.DBPath, "db", cfg.DBPath, "Path to SQLite database")
	fset.BoolVar(&cfg.Seed, "seed", cfg.Seed, "Seed an empty catalog with sample movies")
	fset.BoolVar(&cfg.ShowVersion, "version", false, "Show version information")
	if err := fset.Parse(args); err != nil {
		return nil, err
	}

	if cfg.ShowVersion {
		return cfg, nil
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет согласованность настроек
func (c *Config) Validate() error {
	var errs []error

	if c.Addr == "" {
		errs = append(errs, errors.New("listen address is required"))
	}
	if c.DBPath == "" {
		errs = append(errs, errors.New("database path is required"))
	}
	if len(c.JWTSecret) < minJWTSecretLen {
		errs = append(errs, fmt.Errorf("%s must be at least %d characters", EnvJWTSecret, minJWTSecretLen))
	}
	if c.AccessTokenTTL <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive", EnvAccessTTL))
	}
	if c.RefreshTokenTTL <= c.AccessTokenTTL {
		errs = append(errs, fmt.Errorf("%s must be greater than %s", EnvRefreshTTL, EnvAccessTTL))
	}
	if c.GeneratorInterval <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive", EnvGeneratorInterval))
	}
	if c.RateLimit < 0 {
		errs = append(errs, fmt.Errorf("%s must not be negative", EnvRateLimit))
	}
	if c.RateLimit > 0 && c.RateBurst <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive", EnvRateBurst))
	}
	if c.AdminPassword != "" {
		if c.AdminUsername == "" {
			errs = append(errs, fmt.Errorf("%s is required when %s is set", EnvAdminUsername, EnvAdminPassword))
		}
		if len(c.AdminPassword) < minAdminPasswordLen {
			errs = append(errs, fmt.Errorf("%s must be at least %d characters", EnvAdminPassword, minAdminPasswordLen))
		}
	}

	return errors.Join(errs...)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

// getSliceEnv разбирает список через запятую, пустые элементы пропускаются
func getSliceEnv(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var result []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	if len(result) == 0 {
		return defaultValue
	}
	return result
}
