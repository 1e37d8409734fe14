package config

import (
	"errors"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/fhsmendes/cep-clima/utils"
)

var ErrMissingWeatherAPIKey = errors.New("WEATHER_API_KEY environment variable not set")

type Config struct {
	Port string

	ViaCEPBaseURL     string
	WeatherAPIBaseURL string
	WeatherAPIKey     string
	WeatherLang       string
	HTTPClientTimeout time.Duration

	ServiceName  string
	OTLPEndpoint string
}

// Load reads a .env file when one exists and then the process environment.
func Load(files ...string) *Config {
	if err := godotenv.Load(files...); err != nil {
		log.Println("No .env file found")
	}

	c := &Config{}
	c.Port = getEnv("PORT", "8080")

	c.ViaCEPBaseURL = getEnv("VIACEP_BASE_URL", utils.UrlViaCEP)
	c.WeatherAPIBaseURL = getEnv("WEATHERAPI_BASE_URL", utils.UrlWeatherAPI)
	c.WeatherAPIKey = getEnv("WEATHER_API_KEY", os.Getenv("APIKeyWeather"))
	c.WeatherLang = getEnv("WEATHER_LANG", utils.DefaultWeatherLang)
	c.HTTPClientTimeout = getEnvDuration("HTTP_CLIENT_TIMEOUT", 10*time.Second)

	c.ServiceName = getEnv("OTEL_SERVICE_NAME", "cep-clima")
	c.OTLPEndpoint = getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "")

	return c
}

func (c *Config) Validate() error {
	if c.WeatherAPIKey == "" {
		return ErrMissingWeatherAPIKey
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		log.Printf("[WARN] invalid %s=%q, using %s", key, v, def)
		return def
	}
	return d
}
