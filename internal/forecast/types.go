package forecast

// Response is the subset of the /forecast payload that nsjourney renders.
type Response struct {
	City City    `json:"city"`
	List []Entry `json:"list"`
}

// City describes the place the forecast is for.
type City struct {
	Name    string `json:"name"`
	Country string `json:"country"`
	// Timezone is the shift from UTC in seconds.
	Timezone int `json:"timezone"`
}

// Entry is one 3-hour forecast block. Measurements are pointers so a missing
// value can be told apart from zero.
type Entry struct {
	Dt      int64       `json:"dt"`
	Main    Main        `json:"main"`
	Weather []Condition `json:"weather"`
	Wind    Wind        `json:"wind"`
}

// Main holds the temperature and humidity readings.
type Main struct {
	Temp      *float64 `json:"temp"`
	FeelsLike *float64 `json:"feels_like"`
	Humidity  *float64 `json:"humidity"`
}

// Condition is a weather condition entry.
type Condition struct {
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Wind holds wind readings.
type Wind struct {
	Speed *float64 `json:"speed"`
}

// Description returns the first condition's description, if any.
func (e Entry) Description() string {
	if len(e.Weather) == 0 {
		return ""
	}
	return e.Weather[0].Description
}

// Icon returns the first condition's icon code, if any.
func (e Entry) Icon() string {
	if len(e.Weather) == 0 {
		return ""
	}
	return e.Weather[0].Icon
}

type errorBody struct {
	Message string `json:"message"`
}
