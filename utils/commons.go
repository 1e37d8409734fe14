package utils

import (
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/fhsmendes/cep-clima/models"
)

const PostalCodeLength = 8

// HTTPClient is satisfied by *http.Client.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// HasPostalCodeLength only counts characters. The input is not trimmed and
// its content is left for ViaCEP to judge.
func HasPostalCodeLength(cep string) bool {
	return utf8.RuneCountInString(cep) == PostalCodeLength
}

// AbsoluteIconURL turns WeatherAPI's protocol-relative icon path into an
// https URL.
func AbsoluteIconURL(icon string) string {
	if icon == "" || strings.Contains(icon, "://") {
		return icon
	}
	if strings.HasPrefix(icon, "//") {
		return "https:" + icon
	}
	return icon
}

func ConvertTemperatures(celsius float64) models.Temperature {
	fahrenheit := celsius*1.8 + 32
	kelvin := celsius + 273.15

	return models.Temperature{
		TempC: celsius,
		TempF: fahrenheit,
		TempK: kelvin,
	}
}

func trimBaseURL(base string) string {
	return strings.TrimRight(base, "/")
}
