package utils

import (
	"testing"

	"github.com/fhsmendes/cep-clima/models"
)

func TestHasPostalCodeLength(t *testing.T) {
	tests := []struct {
		name     string
		cep      string
		expected bool
	}{
		{"valid CEP 8 digits", "01001000", true},
		{"valid CEP 8 digits", "14406802", true},
		{"valid CEP all zeros", "00000000", true},
		{"valid CEP all nines", "99999999", true},
		{"eight letters pass the length check", "abcdefgh", true},
		{"eight chars with accent", "0100100é", true},
		{"eight runes with a non-BMP character", "1234567😀", true},
		{"invalid CEP with dash", "01001-000", false},
		{"invalid CEP too short", "0100100", false},
		{"invalid CEP too short 1 digit", "1", false},
		{"invalid CEP short scenario", "1234", false},
		{"invalid CEP too long", "010010000", false},
		{"invalid CEP too long many digits", "01001000123", false},
		{"empty CEP", "", false},
		{"not trimmed at start", " 01001000", false},
		{"not trimmed at end", "01001000 ", false},
		{"invalid CEP with dots", "01.001.000", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := HasPostalCodeLength(tt.cep)
			if result != tt.expected {
				t.Errorf("HasPostalCodeLength(%q) = %v, want %v", tt.cep, result, tt.expected)
			}
		})
	}
}

func TestAbsoluteIconURL(t *testing.T) {
	tests := []struct {
		icon string
		want string
	}{
		{"//cdn/64.png", "https://cdn/64.png"},
		{"//cdn.weatherapi.com/weather/64x64/day/113.png", "https://cdn.weatherapi.com/weather/64x64/day/113.png"},
		{"https://cdn/64.png", "https://cdn/64.png"},
		{"http://cdn/64.png", "http://cdn/64.png"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.icon, func(t *testing.T) {
			if got := AbsoluteIconURL(tt.icon); got != tt.want {
				t.Errorf("AbsoluteIconURL(%q) = %q, want %q", tt.icon, got, tt.want)
			}
		})
	}
}

func TestConvertTemperatures(t *testing.T) {
	tests := []struct {
		name      string
		celsius   float64
		expectedC float64
		expectedF float64
		expectedK float64
	}{
		{
			name:      "freezing point",
			celsius:   0,
			expectedC: 0,
			expectedF: 32,
			expectedK: 273.15,
		},
		{
			name:      "room temperature",
			celsius:   25,
			expectedC: 25,
			expectedF: 77,
			expectedK: 298.15,
		},
		{
			name:      "body temperature",
			celsius:   37,
			expectedC: 37,
			expectedF: 98.6,
			expectedK: 310.15,
		},
		{
			name:      "very cold temperature",
			celsius:   -40,
			expectedC: -40,
			expectedF: -40,
			expectedK: 233.15,
		},
		{
			name:      "absolute zero",
			celsius:   -273.15,
			expectedC: -273.15,
			expectedF: -459.67,
			expectedK: 0,
		},
		{
			name:      "negative decimal temperature",
			celsius:   -12.8,
			expectedC: -12.8,
			expectedF: 8.96,
			expectedK: 260.35,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ConvertTemperatures(tt.celsius)

			if result.TempC != tt.expectedC {
				t.Errorf("ConvertTemperatures(%f).TempC = %f, want %f",
					tt.celsius, result.TempC, tt.expectedC)
			}

			// Fahrenheit and Kelvin go through float arithmetic
			if !almostEqual(result.TempF, tt.expectedF, 0.01) {
				t.Errorf("ConvertTemperatures(%f).TempF = %f, want %f",
					tt.celsius, result.TempF, tt.expectedF)
			}

			if !almostEqual(result.TempK, tt.expectedK, 0.01) {
				t.Errorf("ConvertTemperatures(%f).TempK = %f, want %f",
					tt.celsius, result.TempK, tt.expectedK)
			}
		})
	}
}

func almostEqual(a, b, tolerance float64) bool {
	if a > b {
		return a-b <= tolerance
	}
	return b-a <= tolerance
}

func TestConvertTemperatures_StructType(t *testing.T) {
	result := ConvertTemperatures(25.0)

	if _, ok := interface{}(result).(models.Temperature); !ok {
		t.Error("ConvertTemperatures should return models.Temperature type")
	}

	if result.City != "" {
		t.Errorf("ConvertTemperatures should leave City empty, got %q", result.City)
	}
}
