package main

import (
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/fhsmendes/cep-clima/config"
	"github.com/fhsmendes/cep-clima/handler"
	"github.com/fhsmendes/cep-clima/utils"
	"github.com/fhsmendes/cep-clima/workflow"
)

const (
	shutdownTimeout   = 10 * time.Second
	serverReadTimeout = 10 * time.Second
	serverIdleTimeout = 60 * time.Second

	// Time left to write a response once the handler deadline has passed.
	responseMargin = 5 * time.Second
)

// requestTimeouts sizes the handler deadline for the two upstream calls made
// one after the other, each bounded by the client timeout. The write timeout
// covers the handler deadline plus a margin.
func requestTimeouts(clientTimeout time.Duration) (handlerTimeout, writeTimeout time.Duration) {
	handlerTimeout = 2*clientTimeout + responseMargin
	writeTimeout = handlerTimeout + responseMargin
	return handlerTimeout, writeTimeout
}

func newServer(cfg *config.Config) *http.Server {
	httpClient := &http.Client{
		Timeout:   cfg.HTTPClientTimeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
	lookup := workflow.NewLookup(
		utils.NewViaCEPClient(cfg.ViaCEPBaseURL, httpClient),
		utils.NewWeatherAPIClient(cfg.WeatherAPIBaseURL, cfg.WeatherAPIKey, cfg.WeatherLang, httpClient),
	)

	handlerTimeout, writeTimeout := requestTimeouts(cfg.HTTPClientTimeout)
	h := handler.NewHandler(lookup)
	h.RequestTimeout = handlerTimeout

	return &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler.NewRouter(h),
		ReadTimeout:  serverReadTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  serverIdleTimeout,
	}
}
