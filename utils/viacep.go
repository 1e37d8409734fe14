package utils

import (
	"context"
	"encoding/json"
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
	UrlViaCEP  = "https://viacep.com.br/ws"
	tracerName = "cep-clima"
)

type ViaCEPClient struct {
	BaseURL    string
	HTTPClient HTTPClient
}

func NewViaCEPClient(baseURL string, client HTTPClient) *ViaCEPClient {
	if baseURL == "" {
		baseURL = UrlViaCEP
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &ViaCEPClient{
		BaseURL:    trimBaseURL(baseURL),
		HTTPClient: client,
	}
}

// GetAddress answers an unknown postal code with Address.NotFound set and a
// nil error. Errors are reserved for transport failures.
func (c *ViaCEPClient) GetAddress(ctx context.Context, cep string) (models.Address, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "viacep: get-address")
	defer span.End()

	span.SetAttributes(attribute.String("cep", cep))

	requestURL := fmt.Sprintf("%s/%s/json/", c.BaseURL, url.PathEscape(cep))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to create request")
		return models.Address{}, fmt.Errorf("failed to create viacep request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		metrics.ObserveUpstream("viacep", 0)
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to call viacep")
		return models.Address{}, fmt.Errorf("viacep request failed: %w", err)
	}
	defer resp.Body.Close()

	metrics.ObserveUpstream("viacep", resp.StatusCode)
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		err := fmt.Errorf("viacep returned status: %d", resp.StatusCode)
		span.RecordError(err)
		span.SetStatus(codes.Error, "viacep returned error status")
		return models.Address{}, err
	}

	var viaCEP models.ViaCEP
	if err := json.NewDecoder(resp.Body).Decode(&viaCEP); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to decode response")
		return models.Address{}, fmt.Errorf("failed to decode viacep response: %w", err)
	}

	// A reply without a city counts as not found, so WeatherAPI is never asked about "".
	if viaCEP.Erro || viaCEP.Localidade == "" {
		span.SetAttributes(attribute.Bool("cep.not_found", true))
		return models.Address{PostalCode: cep, NotFound: true}, nil
	}

	span.SetAttributes(attribute.String("city", viaCEP.Localidade))
	span.SetStatus(codes.Ok, "")
	return models.Address{
		PostalCode: viaCEP.CEP,
		Street:     viaCEP.Logradouro,
		Complement: viaCEP.Complemento,
		District:   viaCEP.Bairro,
		City:       viaCEP.Localidade,
		State:      viaCEP.UF,
		RegionCode: viaCEP.IBGE,
		AreaCode:   viaCEP.DDD,
	}, nil
}
