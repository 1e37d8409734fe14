package workflow

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/fhsmendes/cep-clima/metrics"
	"github.com/fhsmendes/cep-clima/models"
	"github.com/fhsmendes/cep-clima/utils"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const tracerName = "cep-clima"

// errLookupAborted is reported when a collaborator panics mid-lookup.
var errLookupAborted = errors.New("lookup aborted")

type AddressClient interface {
	GetAddress(ctx context.Context, cep string) (models.Address, error)
}

type WeatherClient interface {
	GetCurrentWeather(ctx context.Context, city string) (models.WeatherSnapshot, error)
}

// Runner is what a Session drives. *Lookup is the only implementation
// outside of tests.
type Runner interface {
	Execute(ctx context.Context, cep string, emit func(State)) State
}

type Lookup struct {
	addresses AddressClient
	weather   WeatherClient
}

func NewLookup(addresses AddressClient, weather WeatherClient) *Lookup {
	return &Lookup{addresses: addresses, weather: weather}
}

// Execute validates cep, then resolves the address and the weather of its
// city, one after the other. emit receives every transition: either a single
// validation Error, or Loading followed by exactly one terminal state. The
// terminal state is also returned.
func (l *Lookup) Execute(ctx context.Context, cep string, emit func(State)) State {
	if emit == nil {
		emit = func(State) {}
	}
	lookupID := uuid.NewString()

	ctx, span := otel.Tracer(tracerName).Start(ctx, "workflow: lookup")
	defer span.End()

	span.SetAttributes(
		attribute.String("cep", cep),
		attribute.String("lookup.id", lookupID),
	)

	log.Printf("Received lookup %s for zipcode: %s", lookupID, cep)

	if !utils.HasPostalCodeLength(cep) {
		err := &ValidationError{Input: cep}
		log.Println("Invalid zipcode:", cep)
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid zipcode")
		metrics.ObserveLookup(metrics.OutcomeValidationError, 0)

		final := Failed(lookupID, err)
		emit(final)
		return final
	}

	start := time.Now()
	emit(Loading(lookupID))

	final := Failed(lookupID, &TransportError{Op: "lookup", Err: errLookupAborted})
	defer func() {
		metrics.ObserveLookup(outcome(final.Err), time.Since(start).Seconds())
		emit(final)
	}()

	address, weather, err := l.resolve(ctx, cep)
	if err != nil {
		log.Printf("Lookup %s failed: %v", lookupID, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		final = Failed(lookupID, err)
		return final
	}

	span.SetStatus(codes.Ok, "")
	final = Succeeded(lookupID, address, weather)
	return final
}

func (l *Lookup) resolve(ctx context.Context, cep string) (models.Address, models.WeatherSnapshot, error) {
	address, err := l.addresses.GetAddress(ctx, cep)
	if err != nil {
		return models.Address{}, models.WeatherSnapshot{}, &TransportError{Op: "address", Err: err}
	}
	if address.NotFound {
		return models.Address{}, models.WeatherSnapshot{}, &NotFoundError{PostalCode: cep}
	}

	log.Println("City found:", address.City)

	// A weather failure drops the address as well.
	weather, err := l.weather.GetCurrentWeather(ctx, address.City)
	if err != nil {
		return models.Address{}, models.WeatherSnapshot{}, &TransportError{Op: "weather", Err: err}
	}

	log.Println("Temperature in Celsius:", weather.TemperatureC)
	return address, weather, nil
}

func outcome(err error) string {
	var (
		validationErr *ValidationError
		notFoundErr   *NotFoundError
	)
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case errors.As(err, &validationErr):
		return metrics.OutcomeValidationError
	case errors.As(err, &notFoundErr):
		return metrics.OutcomeNotFound
	}
	return metrics.OutcomeTransportError
}
