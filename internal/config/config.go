package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DataDir       string
	JWTSecret     string
	ServerPort    string
	AdminUsername string
	AdminPassword string

	// RedisAddr empty disables login throttling.
	RedisAddr     string
	RedisPassword string
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		DataDir:       getEnv("DATA_DIR", "storage"),
		JWTSecret:     getEnv("JWT_SECRET", "changeme"),
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin"),
		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
