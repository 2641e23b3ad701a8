package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort string

	AdminUsername string
	AdminPassword string

	SessionKey          string
	SessionDuration     time.Duration
	SessionPollInterval time.Duration

	RoleKey      string
	LoginFlagKey string

	RedisAddr     string
	RedisPassword string

	WeatherForecastURL string
	GeocodeURL         string

	ChatGatewayURL   string
	ChatAPIKey       string
	ChatModel        string
	ChatHistoryLimit int
}

func Load() Config {

	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := Config{

		AppPort: getenv("APP_PORT", "8080"),

		AdminUsername: getenv("ADMIN_USERNAME", "admin"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),

		SessionKey:          getenv("SESSION_KEY", "farmsmart_admin_session"),
		SessionDuration:     getenvDuration("SESSION_DURATION", 24*time.Hour),
		SessionPollInterval: getenvDuration("SESSION_POLL_INTERVAL", 60*time.Second),

		RoleKey:      getenv("ROLE_KEY", "userRole"),
		LoginFlagKey: getenv("LOGIN_FLAG_KEY", "isLoggedIn"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		WeatherForecastURL: getenv("WEATHER_FORECAST_URL", "https://api.open-meteo.com/v1/forecast"),
		GeocodeURL:         getenv("GEOCODE_URL", "https://geocoding-api.open-meteo.com/v1/search"),

		ChatGatewayURL:   getenv("CHAT_GATEWAY_URL", "https://ai.hackclub.com/chat/completions"),
		ChatAPIKey:       os.Getenv("CHAT_API_KEY"),
		ChatModel:        getenv("CHAT_MODEL", "meta-llama/llama-4-maverick"),
		ChatHistoryLimit: getenvInt("CHAT_HISTORY_LIMIT", 10),
	}

	return cfg

}

// getenv returns the environment variable value or the default if empty.
func getenv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getenvDuration(key string, defaultVal time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return defaultVal
	}
	return d
}

func getenvInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return n
}
