package config

import "os"

type Config struct {
	Port           string
	DatabaseDSN    string
	SQLitePath     string
	GinMode        string
	AllowedOrigins string
	SeedData       bool
}

// Load reads configuration from the environment. Every value has a development
// default; when DATABASE_DSN is empty the server falls back to an embedded
// SQLite database at SQLitePath.
func Load() Config {
	return Config{
		Port:           getEnv("PORT", "8080"),
		DatabaseDSN:    os.Getenv("DATABASE_DSN"),
		SQLitePath:     getEnv("SQLITE_PATH", "cafe_management.db"),
		GinMode:        os.Getenv("GIN_MODE"),
		AllowedOrigins: os.Getenv("ALLOWED_ORIGINS"),
		SeedData:       os.Getenv("SEED_DATA") == "true",
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
