package workflow

import "github.com/fhsmendes/cep-clima/models"

type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusError
	StatusSuccess
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusError:
		return "error"
	case StatusSuccess:
		return "success"
	}
	return "unknown"
}

// State is one of Idle, Loading, Error or Success. Build it with the
// constructors below so only the fields of the active variant are set.
type State struct {
	Status   Status
	LookupID string

	// Error
	Message string
	Err     error

	// Success
	Address *models.Address
	Weather *models.WeatherSnapshot
}

func Idle() State {
	return State{Status: StatusIdle}
}

func Loading(lookupID string) State {
	return State{Status: StatusLoading, LookupID: lookupID}
}

func Failed(lookupID string, err error) State {
	return State{
		Status:   StatusError,
		LookupID: lookupID,
		Message:  err.Error(),
		Err:      err,
	}
}

func Succeeded(lookupID string, address models.Address, weather models.WeatherSnapshot) State {
	return State{
		Status:   StatusSuccess,
		LookupID: lookupID,
		Address:  &address,
		Weather:  &weather,
	}
}

func (s State) IsLoading() bool {
	return s.Status == StatusLoading
}

func (s State) IsTerminal() bool {
	return s.Status == StatusError || s.Status == StatusSuccess
}
