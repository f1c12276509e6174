package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App     AppConfig
	Server  ServerConfig
	ShopAPI ShopAPIConfig
}

type AppConfig struct {
	Name string
	Env  string
}

type ServerConfig struct {
	Host string
	Port int
}

// ShopAPIConfig points a tool-server at a running mock API. An empty
// BaseURL means the tool-server binds to the service in-process instead.
type ShopAPIConfig struct {
	BaseURL   string
	TimeoutMS int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Name: getEnv("APP_NAME", "mcp-example"),
			Env:  getEnv("APP_ENV", "local"),
		},
		Server: ServerConfig{
			Host: getEnv("HTTP_HOST", "127.0.0.1"),
			// 5000 matches the address the tool clients default to.
			Port: getEnvAsInt("HTTP_PORT", 5000),
		},
		ShopAPI: ShopAPIConfig{
			BaseURL:   getEnv("SHOP_API_BASE_URL", ""),
			TimeoutMS: getEnvAsInt("SHOP_API_TIMEOUT_MS", 30000),
		},
	}

	return cfg, cfg.validate()
}

func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

/* ================= helpers ================= */

func (c *Config) validate() error {
	if c.Server.Port <= 0 {
		return fmt.Errorf("HTTP_PORT is invalid")
	}
	if c.ShopAPI.TimeoutMS <= 0 {
		return fmt.Errorf("SHOP_API_TIMEOUT_MS is invalid")
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if v, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}
