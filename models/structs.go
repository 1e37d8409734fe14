package models

type Temperature struct {
	City  string  `json:"city"`
	TempC float64 `json:"temp_C"`
	TempF float64 `json:"temp_F"`
	TempK float64 `json:"temp_K"`
}

type ViaCEP struct {
	CEP         string `json:"cep"`
	Logradouro  string `json:"logradouro"`
	Complemento string `json:"complemento"`
	Bairro      string `json:"bairro"`
	Localidade  string `json:"localidade"`
	UF          string `json:"uf"`
	IBGE        string `json:"ibge"`
	DDD         string `json:"ddd"`
	Erro        Truthy `json:"erro,omitempty"`
}

type WeatherAPI struct {
	Location struct {
		Name    string `json:"name"`
		Region  string `json:"region"`
		Country string `json:"country"`
	} `json:"location"`
	Current struct {
		TempC      float64 `json:"temp_c"`
		FeelsLikeC float64 `json:"feelslike_c"`
		Humidity   int     `json:"humidity"`
		Condition  struct {
			Text string `json:"text"`
			Icon string `json:"icon"`
			Code int    `json:"code"`
		} `json:"condition"`
	} `json:"current"`
}

// Address is a ViaCEP lookup result. NotFound marks a well-formed reply for
// a postal code the service does not know.
type Address struct {
	PostalCode string `json:"cep,omitempty"`
	Street     string `json:"street"`
	Complement string `json:"complement,omitempty"`
	District   string `json:"district"`
	City       string `json:"city"`
	State      string `json:"state"`
	RegionCode string `json:"region_code"`
	AreaCode   string `json:"area_code,omitempty"`
	NotFound   bool   `json:"not_found,omitempty"`
}

type WeatherSnapshot struct {
	LocationName     string  `json:"location_name"`
	TemperatureC     float64 `json:"temp_C"`
	FeelsLikeC       float64 `json:"feelslike_C"`
	HumidityPercent  int     `json:"humidity"`
	ConditionText    string  `json:"condition"`
	ConditionIconURL string  `json:"condition_icon_url"`
}
