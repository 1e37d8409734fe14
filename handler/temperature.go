package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/fhsmendes/cep-clima/utils"
	"github.com/fhsmendes/cep-clima/workflow"
)

// TemperatureHandler serves the legacy /temperature contract: plain-text
// error bodies and temperatures in C, F and K.
func (h *Handler) TemperatureHandler(w http.ResponseWriter, r *http.Request) {
	cep := r.URL.Query().Get("cep")

	fmt.Println("Received request for zipcode:", cep)

	state := h.run(r, cep)

	switch StatusCode(state.Err) {
	case http.StatusUnprocessableEntity:
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte("invalid zipcode"))
		return
	case http.StatusNotFound:
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("can not find zipcode"))
		return
	case http.StatusInternalServerError:
		fmt.Println("Error getting temperature:", state.Message)
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("error getting temperature"))
		return
	}

	if state.Status != workflow.StatusSuccess {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("error getting temperature"))
		return
	}

	temps := utils.ConvertTemperatures(state.Weather.TemperatureC)
	temps.City = state.Address.City
	fmt.Println("Converted temperatures:", temps)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(temps)
}
