package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the server's runtime settings
type Config struct {
	Port  int
	Debug bool
}

// Load reads settings from the environment, with a .env file as optional
// local override. Missing values fall back to defaults.
func Load() Config {
	// A missing .env file is fine; real deployments set the environment.
	_ = godotenv.Load()

	return Config{
		Port:  getInt("PORT", 3001),
		Debug: os.Getenv("DEBUG") == "true",
	}
}

func getInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
