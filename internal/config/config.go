package config

import "os"

type Config struct {
	DatabaseURL string
	HTTPAddr    string
}

// Load reads runtime settings from the environment. Values are optional;
// the defaults give a local SQLite setup on :8080.
func Load() Config {
	cfg := Config{
		DatabaseURL: "rental.db",
		HTTPAddr:    ":8080",
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.DatabaseURL = v
	}
	if v := os.Getenv("HTTP_ADDR"); v != "" {
		cfg.HTTPAddr = v
	}
	return cfg
}
