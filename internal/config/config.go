package config

import (
	"errors"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// DefaultEnvFile is where the web app keeps its database credentials.
const DefaultEnvFile = ".env.local"

var ErrMissing = errors.New("DATABASE_API or DATABASE_AUTH_KEY not found")

type Config struct {
	DatabaseAPI     string
	DatabaseAuthKey string

	// optional sinks
	MySQLDSN    string
	RabbitMQURL string
}

// Load reads envFile into the process environment and collects the settings.
// A missing file is not an error; values already in the environment still apply.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			log.Printf("config: could not load %s: %v", envFile, err)
		}
	}
	cfg := &Config{
		DatabaseAPI:     os.Getenv("DATABASE_API"),
		DatabaseAuthKey: os.Getenv("DATABASE_AUTH_KEY"),
		MySQLDSN:        os.Getenv("MYSQL_DSN"),
		RabbitMQURL:     os.Getenv("RABBITMQ_URL"),
	}
	if cfg.DatabaseAPI == "" || cfg.DatabaseAuthKey == "" {
		return cfg, ErrMissing
	}
	return cfg, nil
}
