package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	MongoURI string
	MongoDB  string
	NATSURL  string
}

// Load reads .env if present and builds the process configuration from the
// environment. NATS_URL is optional; an empty value disables event publishing.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}

	return &Config{
		Port:     GetString("PORT", "3000"),
		MongoURI: GetString("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:  GetString("MONGO_DB", "exercise_tracker"),
		NATSURL:  os.Getenv("NATS_URL"),
	}
}

func GetString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func GetInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func GetDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
