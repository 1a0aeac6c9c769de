package config

import (
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnvs loads .env files without overriding variables that are already set.
// Earlier files win: .env.<env>.local, .env.local, .env.<env>, .env.
func LoadDotEnvs() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}

	for _, name := range []string{".env." + env + ".local", ".env.local", ".env." + env, ".env"} {
		// missing files are expected
		_ = godotenv.Load(name)
	}
}
