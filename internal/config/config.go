package config

import "os"

type Config struct {
	Env           string
	Port          string
	StorePath     string
	SessionSecret string
	Origin        string // CORS
	SeedDemo      bool
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() Config {
	return Config{
		Env:           env("APP_ENV", "dev"),
		Port:          env("API_PORT", "8080"),
		StorePath:     env("STORE_PATH", "data/complaints.db"),
		SessionSecret: env("SESSION_SECRET", "dev-only-secret"),
		Origin:        env("CORS_ORIGIN", "http://localhost:3000"),
		SeedDemo:      env("SEED_DEMO", "true") != "false",
	}
}
