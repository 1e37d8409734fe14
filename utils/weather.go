package utils

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/fhsmendes/cep-clima/metrics"
	"github.com/fhsmendes/cep-clima/models"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const (
	UrlWeatherAPI      = "https://api.weatherapi.com/v1"
	DefaultWeatherLang = "pt"
)

var (
	ErrMissingAPIKey = errors.New("API key is not set")
	ErrMissingCity   = errors.New("city is required")
)

type WeatherAPIClient struct {
	BaseURL    string
	APIKey     string
	Lang       string
	HTTPClient HTTPClient
}

func NewWeatherAPIClient(baseURL, apiKey, lang string, client HTTPClient) *WeatherAPIClient {
	if baseURL == "" {
		baseURL = UrlWeatherAPI
	}
	if lang == "" {
		lang = DefaultWeatherLang
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &WeatherAPIClient{
		BaseURL:    trimBaseURL(baseURL),
		APIKey:     apiKey,
		Lang:       lang,
		HTTPClient: client,
	}
}

func (c *WeatherAPIClient) currentURL(city string) string {
	return fmt.Sprintf("%s/current.json?key=%s&q=%s&aqi=no&lang=%s",
		c.BaseURL, url.QueryEscape(c.APIKey), url.QueryEscape(city), url.QueryEscape(c.Lang))
}

func (c *WeatherAPIClient) GetCurrentWeather(ctx context.Context, city string) (models.WeatherSnapshot, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "weatherapi: get-current-weather")
	defer span.End()

	span.SetAttributes(attribute.String("city", city))

	if c.APIKey == "" {
		span.RecordError(ErrMissingAPIKey)
		span.SetStatus(codes.Error, "API key is not set")
		return models.WeatherSnapshot{}, ErrMissingAPIKey
	}
	if city == "" {
		span.RecordError(ErrMissingCity)
		span.SetStatus(codes.Error, "city is required")
		return models.WeatherSnapshot{}, ErrMissingCity
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.currentURL(city), nil)
	if err != nil {
		span.RecordError(fmt.Errorf("failed to create request: %w", err))
		span.SetStatus(codes.Error, "failed to create request")
		return models.WeatherSnapshot{}, fmt.Errorf("failed to create weather request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		metrics.ObserveUpstream("weatherapi", 0)
		span.RecordError(fmt.Errorf("failed to get weather: %w", err))
		span.SetStatus(codes.Error, "failed to get weather")
		return models.WeatherSnapshot{}, fmt.Errorf("weather request failed: %w", err)
	}
	defer resp.Body.Close()

	metrics.ObserveUpstream("weatherapi", resp.StatusCode)
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("weather API returned status: %d", resp.StatusCode)
		span.RecordError(err)
		span.SetStatus(codes.Error, "weather API returned error status")
		return models.WeatherSnapshot{}, err
	}

	var weather models.WeatherAPI
	if err := json.NewDecoder(resp.Body).Decode(&weather); err != nil {
		span.RecordError(fmt.Errorf("failed to decode response: %w", err))
		span.SetStatus(codes.Error, "failed to decode response")
		return models.WeatherSnapshot{}, fmt.Errorf("failed to decode weather response: %w", err)
	}

	span.SetAttributes(attribute.Float64("temp_c", weather.Current.TempC))
	span.SetStatus(codes.Ok, "")
	return models.WeatherSnapshot{
		LocationName:     weather.Location.Name,
		TemperatureC:     weather.Current.TempC,
		FeelsLikeC:       weather.Current.FeelsLikeC,
		HumidityPercent:  weather.Current.Humidity,
		ConditionText:    weather.Current.Condition.Text,
		ConditionIconURL: AbsoluteIconURL(weather.Current.Condition.Icon),
	}, nil
}
