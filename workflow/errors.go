package workflow

// ValidationError rejects input before any network call is made.
type ValidationError struct {
	Input string
}

func (e *ValidationError) Error() string {
	return "invalid postal code length"
}

// NotFoundError means ViaCEP answered, but does not know the postal code.
type NotFoundError struct {
	PostalCode string
}

func (e *NotFoundError) Error() string {
	return "postal code not recognized"
}

// TransportError wraps any failure of either collaborator. Op names the
// stage that failed: "address" or "weather".
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
