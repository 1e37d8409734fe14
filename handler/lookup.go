package handler

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/trace"

	"github.com/fhsmendes/cep-clima/models"
	"github.com/fhsmendes/cep-clima/workflow"
)

type LookupResponse struct {
	LookupID string                  `json:"lookup_id"`
	Address  *models.Address         `json:"address"`
	Weather  *models.WeatherSnapshot `json:"weather"`
}

// DefaultRequestTimeout bounds a request when Handler.RequestTimeout is zero.
const DefaultRequestTimeout = 60 * time.Second

// Handler serves the lookup workflow over HTTP. Each request runs its own
// lookup, so there is no shared state to guard.
type Handler struct {
	Lookup workflow.Runner

	// RequestTimeout must stay below the server's WriteTimeout, otherwise a
	// slow lookup is cut off before its response is written.
	RequestTimeout time.Duration
}

func NewHandler(lookup workflow.Runner) *Handler {
	return &Handler{Lookup: lookup}
}

func (h *Handler) requestTimeout() time.Duration {
	if h.RequestTimeout > 0 {
		return h.RequestTimeout
	}
	return DefaultRequestTimeout
}

func (h *Handler) run(r *http.Request, cep string) workflow.State {
	traceID := trace.SpanFromContext(r.Context()).SpanContext().TraceID()
	return h.Lookup.Execute(r.Context(), cep, func(s workflow.State) {
		log.Printf("Lookup %s is %s (trace %s)", s.LookupID, s.Status, traceID)
	})
}

func (h *Handler) LookupHandler(w http.ResponseWriter, r *http.Request) {
	cep := chi.URLParam(r, "cep")
	if cep == "" {
		cep = r.URL.Query().Get("cep")
	}

	state := h.run(r, cep)
	if state.Status != workflow.StatusSuccess {
		WriteJSON(w, ErrorResponse{Message: state.Message, LookupID: state.LookupID}, StatusCode(state.Err))
		return
	}

	WriteJSON(w, LookupResponse{
		LookupID: state.LookupID,
		Address:  state.Address,
		Weather:  state.Weather,
	}, http.StatusOK)
}

// StatusCode maps the workflow error taxonomy onto HTTP.
func StatusCode(err error) int {
	var (
		validationErr *workflow.ValidationError
		notFoundErr   *workflow.NotFoundError
	)
	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &validationErr):
		return http.StatusUnprocessableEntity
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(h.requestTimeout()))

	r.Get("/healthz", HealthHandler)
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/lookup", h.LookupHandler)
	r.Get("/lookup/{cep}", h.LookupHandler)
	r.Get("/temperature", h.TemperatureHandler)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, "route not found", http.StatusNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, "method not allowed", http.StatusMethodNotAllowed)
	})

	return otelhttp.NewHandler(r, "cep-clima-server")
}
