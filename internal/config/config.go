package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/AlenaMolokova/cardauth/internal/constants"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	RunAddr        string        `env:"RUN_ADDRESS"`
	DatabaseURI    string        `env:"DATABASE_URI"`
	JWTSecret      string        `env:"JWT_SECRET"`
	APIKeyHash     string        `env:"API_KEY_HASH"`
	TokenTTL       time.Duration `env:"TOKEN_TTL"`
	LogLevel       string        `env:"LOG_LEVEL"`
	MigrationsPath string        `env:"MIGRATIONS_PATH"`
}

func NewConfig() (*Config, error) {
	return Load(os.Args[1:])
}

// Load applies defaults, then flags, then the .env file and environment.
// Environment variables win over flags.
func Load(args []string) (*Config, error) {
	cfg := &Config{
		RunAddr:        constants.DefaultRunAddr,
		JWTSecret:      constants.DefaultJWTSecret,
		TokenTTL:       constants.DefaultTokenTTLHours * time.Hour,
		LogLevel:       constants.DefaultLogLevel,
		MigrationsPath: constants.DefaultMigrationsPath,
	}

	fs := flag.NewFlagSet("cardauth", flag.ContinueOnError)
	fs.StringVar(&cfg.RunAddr, "a", cfg.RunAddr, "server address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "database URI, empty keeps stats in memory")
	fs.StringVar(&cfg.JWTSecret, "j", cfg.JWTSecret, "JWT secret")
	fs.StringVar(&cfg.APIKeyHash, "k", cfg.APIKeyHash, "bcrypt hash of the stats API key")
	fs.DurationVar(&cfg.TokenTTL, "t", cfg.TokenTTL, "stats token lifetime")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.MigrationsPath, "m", cfg.MigrationsPath, "migrations source URL")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.WithError(err).Warn("Failed to load .env file")
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"runAddr":     cfg.RunAddr,
		"memoryStats": cfg.DatabaseURI == "",
		"tokenTTL":    cfg.TokenTTL,
		"logLevel":    cfg.LogLevel,
	}).Info("Config loaded")
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.TokenTTL <= 0 {
		return errors.New("TOKEN_TTL must be positive")
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	if c.APIKeyHash != "" {
		if _, err := bcrypt.Cost([]byte(c.APIKeyHash)); err != nil {
			return fmt.Errorf("invalid API_KEY_HASH: %w", err)
		}
	}
	return nil
}
