package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config конфигурация сервера roomcraft
type Config struct {
	HTTP struct {
		Addr            string
		ShutdownTimeout time.Duration
	}

	// Simulator имитация удалённого хранилища
	Simulator struct {
		MinLatency time.Duration
		MaxLatency time.Duration
		ErrorRate  float64
	}

	SeedCatalog bool

	Log struct {
		Level  string
		Format string
	}
}

// Load читает конфигурацию из переменных окружения. Неразбираемые числа
// заменяются значениями по умолчанию.
func Load() (*Config, error) {
	cfg := &Config{}

	cfg.HTTP.Addr = getEnv("HTTP_ADDR", ":9091")
	cfg.HTTP.ShutdownTimeout = time.Duration(parseInt(getEnv("SHUTDOWN_TIMEOUT_SEC", ""), 5)) * time.Second

	cfg.Simulator.MinLatency = time.Duration(parseInt(getEnv("SIM_LATENCY_MIN_MS", ""), 100)) * time.Millisecond
	cfg.Simulator.MaxLatency = time.Duration(parseInt(getEnv("SIM_LATENCY_MAX_MS", ""), 500)) * time.Millisecond
	cfg.Simulator.ErrorRate = parseFloat(getEnv("SIM_ERROR_RATE", ""), 0)

	cfg.SeedCatalog = parseBool(getEnv("SEED_CATALOG", ""), true)

	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "json")

	if cfg.Simulator.MinLatency < 0 || cfg.Simulator.MinLatency > cfg.Simulator.MaxLatency {
		return nil, fmt.Errorf("invalid simulator latency range [%s, %s]", cfg.Simulator.MinLatency, cfg.Simulator.MaxLatency)
	}
	if cfg.Simulator.ErrorRate < 0 || cfg.Simulator.ErrorRate > 1 {
		return nil, fmt.Errorf("SIM_ERROR_RATE must be within [0, 1], got %v", cfg.Simulator.ErrorRate)
	}
	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseInt(s string, def int) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}

func parseFloat(s string, def float64) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return f
}

func parseBool(s string, def bool) bool {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return def
	}
	return b
}
