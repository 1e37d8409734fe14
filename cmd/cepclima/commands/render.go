package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fhsmendes/cep-clima/models"
	"github.com/fhsmendes/cep-clima/workflow"
)

const banner = `WeatherPos
Encontre informações de endereço e clima a partir de um CEP.
Digite um CEP (só números) ou "sair" para encerrar.`

type jsonResult struct {
	LookupID string                  `json:"lookup_id"`
	Status   string                  `json:"status"`
	Message  string                  `json:"message,omitempty"`
	Address  *models.Address         `json:"address,omitempty"`
	Weather  *models.WeatherSnapshot `json:"weather,omitempty"`
}

func renderState(w io.Writer, st workflow.State) {
	switch st.Status {
	case workflow.StatusLoading:
		fmt.Fprintln(w, "Buscando...")
	case workflow.StatusError:
		fmt.Fprintf(w, "Erro: %s\n", st.Message)
	case workflow.StatusSuccess:
		renderAddress(w, st.Address)
		renderWeather(w, st.Weather)
	}
}

func renderAddress(w io.Writer, a *models.Address) {
	if a == nil {
		return
	}
	fmt.Fprintln(w, "Endereço Encontrado")
	fmt.Fprintf(w, "  Logradouro: %s\n", orNA(a.Street))
	fmt.Fprintf(w, "  Bairro: %s\n", orNA(a.District))
	fmt.Fprintf(w, "  Cidade: %s\n", a.City)
	fmt.Fprintf(w, "  Estado: %s\n", a.State)
	fmt.Fprintf(w, "  IBGE: %s\n", a.RegionCode)
}

func renderWeather(w io.Writer, ws *models.WeatherSnapshot) {
	if ws == nil {
		return
	}
	fmt.Fprintf(w, "Clima em %s\n", ws.LocationName)
	fmt.Fprintf(w, "  %g°C %s\n", ws.TemperatureC, ws.ConditionText)
	if ws.ConditionIconURL != "" {
		fmt.Fprintf(w, "  Ícone: %s\n", ws.ConditionIconURL)
	}
	fmt.Fprintf(w, "  Sensação Térmica: %g°C\n", ws.FeelsLikeC)
	fmt.Fprintf(w, "  Umidade: %d%%\n", ws.HumidityPercent)
}

func renderJSON(w io.Writer, st workflow.State) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonResult{
		LookupID: st.LookupID,
		Status:   st.Status.String(),
		Message:  st.Message,
		Address:  st.Address,
		Weather:  st.Weather,
	})
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
