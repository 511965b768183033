package openmeteo

// CurrentAPIResponse is the subset of /v1/forecast returned for current=temperature_2m.
// Temperature is nil when the provider omits it.
type CurrentAPIResponse struct {
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	Timezone     string  `json:"timezone"`
	CurrentUnits struct {
		Time          string `json:"time"`
		Temperature2M string `json:"temperature_2m"`
	} `json:"current_units"`
	Current struct {
		Time          string   `json:"time"`
		Interval      int      `json:"interval"`
		Temperature2M *float64 `json:"temperature_2m"`
	} `json:"current"`
}

// DailyAPIResponse is the subset of /v1/forecast returned for daily=temperature_2m_max.
// Time and Temperature2MMax are parallel arrays; either may be missing.
type DailyAPIResponse struct {
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Timezone   string  `json:"timezone"`
	DailyUnits struct {
		Time             string `json:"time"`
		Temperature2MMax string `json:"temperature_2m_max"`
	} `json:"daily_units"`
	Daily struct {
		Time             []string   `json:"time"`
		Temperature2MMax []*float64 `json:"temperature_2m_max"`
	} `json:"daily"`
}
