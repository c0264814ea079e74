package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port        int
	DatabaseURL string
	RedisAddr   string
	DataDir     string
	AssetDir    string
	FrameDir    string
}

func Load() *Config {
	dataDir := env("DATA_DIR", "/data")
	return &Config{
		Port:        envInt("PORT", 8080),
		DatabaseURL: env("DATABASE_URL", "postgres://timelapser:timelapser@db:5432/timelapser?sslmode=disable"),
		RedisAddr:   env("REDIS_ADDR", "redis:6379"),
		DataDir:     dataDir,
		AssetDir:    env("ASSET_DIR", dataDir+"/assets"),
		FrameDir:    env("FRAME_DIR", dataDir+"/frames"),
	}
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
