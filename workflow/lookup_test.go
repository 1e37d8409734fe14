package workflow

import (
	"context"
	"errors"
	"testing"

	"github.com/fhsmendes/cep-clima/mocks"
	"github.com/fhsmendes/cep-clima/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	saoPauloAddress = models.Address{
		Street:     "Praça da Sé",
		District:   "Sé",
		City:       "São Paulo",
		State:      "SP",
		RegionCode: "3550308",
	}
	clearInSaoPaulo = models.WeatherSnapshot{
		LocationName:     "São Paulo",
		TemperatureC:     22.0,
		FeelsLikeC:       21.5,
		HumidityPercent:  60,
		ConditionText:    "Clear",
		ConditionIconURL: "https://cdn/64.png",
	}
)

type recorder struct {
	states []State
}

func (r *recorder) emit(s State) {
	r.states = append(r.states, s)
}

func (r *recorder) statuses() []Status {
	out := make([]Status, 0, len(r.states))
	for _, s := range r.states {
		out = append(out, s.Status)
	}
	return out
}

func TestExecute_Success(t *testing.T) {
	mockAddress := mocks.NewAddressClient(t)
	mockWeather := mocks.NewWeatherClient(t)

	mockAddress.On("GetAddress", mock.Anything, "01001000").Return(saoPauloAddress, nil).Once()
	mockWeather.On("GetCurrentWeather", mock.Anything, "São Paulo").Return(clearInSaoPaulo, nil).Once()

	rec := &recorder{}
	final := NewLookup(mockAddress, mockWeather).Execute(context.Background(), "01001000", rec.emit)

	require.Equal(t, StatusSuccess, final.Status)
	require.NotNil(t, final.Address)
	require.NotNil(t, final.Weather)
	assert.Equal(t, saoPauloAddress, *final.Address)
	assert.Equal(t, clearInSaoPaulo, *final.Weather)
	assert.Empty(t, final.Message)
	assert.NoError(t, final.Err)
	assert.NotEmpty(t, final.LookupID)

	assert.Equal(t, []Status{StatusLoading, StatusSuccess}, rec.statuses())
	assert.Equal(t, final.LookupID, rec.states[0].LookupID)
	assert.Nil(t, rec.states[0].Address)
	assert.Nil(t, rec.states[0].Weather)
}

func TestExecute_InvalidLength(t *testing.T) {
	testCases := []struct {
		name string
		cep  string
	}{
		{"CEP too short", "1234"},
		{"CEP seven digits", "0100100"},
		{"CEP too long", "010010000"},
		{"CEP with dash", "01001-000"},
		{"Empty CEP", ""},
		{"CEP with surrounding spaces", " 01001000 "},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockAddress := mocks.NewAddressClient(t)
			mockWeather := mocks.NewWeatherClient(t)

			rec := &recorder{}
			final := NewLookup(mockAddress, mockWeather).Execute(context.Background(), tc.cep, rec.emit)

			require.Equal(t, StatusError, final.Status)
			var validationErr *ValidationError
			require.ErrorAs(t, final.Err, &validationErr)
			assert.Equal(t, tc.cep, validationErr.Input)
			assert.Equal(t, "invalid postal code length", final.Message)

			assert.Equal(t, []Status{StatusError}, rec.statuses())
			mockAddress.AssertNotCalled(t, "GetAddress", mock.Anything, mock.Anything)
			mockWeather.AssertNotCalled(t, "GetCurrentWeather", mock.Anything, mock.Anything)
		})
	}
}

func TestExecute_NotFound(t *testing.T) {
	mockAddress := mocks.NewAddressClient(t)
	mockWeather := mocks.NewWeatherClient(t)

	mockAddress.On("GetAddress", mock.Anything, "99999999").
		Return(models.Address{PostalCode: "99999999", NotFound: true}, nil).Once()

	rec := &recorder{}
	final := NewLookup(mockAddress, mockWeather).Execute(context.Background(), "99999999", rec.emit)

	require.Equal(t, StatusError, final.Status)
	var notFoundErr *NotFoundError
	require.ErrorAs(t, final.Err, &notFoundErr)
	assert.Equal(t, "99999999", notFoundErr.PostalCode)
	assert.Equal(t, "postal code not recognized", final.Message)
	assert.Nil(t, final.Address)

	assert.Equal(t, []Status{StatusLoading, StatusError}, rec.statuses())
	mockWeather.AssertNotCalled(t, "GetCurrentWeather", mock.Anything, mock.Anything)
}

func TestExecute_AddressTransportError(t *testing.T) {
	mockAddress := mocks.NewAddressClient(t)
	mockWeather := mocks.NewWeatherClient(t)

	cause := errors.New("viacep request failed: connection refused")
	mockAddress.On("GetAddress", mock.Anything, "01001000").Return(models.Address{}, cause).Once()

	rec := &recorder{}
	final := NewLookup(mockAddress, mockWeather).Execute(context.Background(), "01001000", rec.emit)

	require.Equal(t, StatusError, final.Status)
	var transportErr *TransportError
	require.ErrorAs(t, final.Err, &transportErr)
	assert.Equal(t, "address", transportErr.Op)
	assert.ErrorIs(t, final.Err, cause)
	assert.Equal(t, cause.Error(), final.Message)

	assert.Equal(t, []Status{StatusLoading, StatusError}, rec.statuses())
	mockWeather.AssertNotCalled(t, "GetCurrentWeather", mock.Anything, mock.Anything)
}

func TestExecute_WeatherFailureDiscardsAddress(t *testing.T) {
	mockAddress := mocks.NewAddressClient(t)
	mockWeather := mocks.NewWeatherClient(t)

	cause := errors.New("weather API returned status: 400")
	mockAddress.On("GetAddress", mock.Anything, "01001000").Return(saoPauloAddress, nil).Once()
	mockWeather.On("GetCurrentWeather", mock.Anything, "São Paulo").Return(models.WeatherSnapshot{}, cause).Once()

	rec := &recorder{}
	final := NewLookup(mockAddress, mockWeather).Execute(context.Background(), "01001000", rec.emit)

	require.Equal(t, StatusError, final.Status)
	var transportErr *TransportError
	require.ErrorAs(t, final.Err, &transportErr)
	assert.Equal(t, "weather", transportErr.Op)
	assert.Equal(t, "weather API returned status: 400", final.Message)
	assert.Nil(t, final.Address)
	assert.Nil(t, final.Weather)

	assert.Equal(t, []Status{StatusLoading, StatusError}, rec.statuses())
}

func TestExecute_WeatherQueriedWithReturnedCity(t *testing.T) {
	testCases := []struct {
		cep  string
		city string
	}{
		{"20040020", "Rio de Janeiro"},
		{"30112000", "Belo Horizonte"},
		{"70040010", "Brasília"},
	}

	for _, tc := range testCases {
		t.Run(tc.city, func(t *testing.T) {
			mockAddress := mocks.NewAddressClient(t)
			mockWeather := mocks.NewWeatherClient(t)

			mockAddress.On("GetAddress", mock.Anything, tc.cep).Return(models.Address{City: tc.city}, nil).Once()
			mockWeather.On("GetCurrentWeather", mock.Anything, tc.city).
				Return(models.WeatherSnapshot{LocationName: tc.city}, nil).Once()

			final := NewLookup(mockAddress, mockWeather).Execute(context.Background(), tc.cep, nil)

			require.Equal(t, StatusSuccess, final.Status)
			assert.Equal(t, tc.city, final.Weather.LocationName)
		})
	}
}

func TestExecute_PanicStillLeavesLoading(t *testing.T) {
	mockAddress := mocks.NewAddressClient(t)
	mockWeather := mocks.NewWeatherClient(t)

	mockAddress.On("GetAddress", mock.Anything, "01001000").
		Run(func(mock.Arguments) { panic("boom") }).
		Return(models.Address{}, nil).Once()

	rec := &recorder{}
	assert.Panics(t, func() {
		NewLookup(mockAddress, mockWeather).Execute(context.Background(), "01001000", rec.emit)
	})

	require.Equal(t, []Status{StatusLoading, StatusError}, rec.statuses())
	assert.ErrorIs(t, rec.states[1].Err, errLookupAborted)
}

func TestExecute_LookupIDsAreUnique(t *testing.T) {
	mockAddress := mocks.NewAddressClient(t)
	mockWeather := mocks.NewWeatherClient(t)
	lookup := NewLookup(mockAddress, mockWeather)

	first := lookup.Execute(context.Background(), "1234", nil)
	second := lookup.Execute(context.Background(), "1234", nil)

	assert.NotEmpty(t, first.LookupID)
	assert.NotEqual(t, first.LookupID, second.LookupID)
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "idle", StatusIdle.String())
	assert.Equal(t, "loading", StatusLoading.String())
	assert.Equal(t, "error", StatusError.String())
	assert.Equal(t, "success", StatusSuccess.String())
	assert.Equal(t, "unknown", Status(42).String())
}
