package weather

// Condition is a normalized high-level weather condition label.
type Condition string

const (
	ConditionSunny        Condition = "sunny"
	ConditionPartlyCloudy Condition = "partly_cloudy"
	ConditionCloudy       Condition = "cloudy"
	ConditionRainy        Condition = "rainy"
	ConditionOvercast     Condition = "overcast"
	ConditionClear        Condition = "clear"
)

// TemperatureUnit is the unit of every simulated temperature.
const TemperatureUnit = "celsius"

// Coordinates is a geographic point in signed decimal degrees.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Forecast is the simulated weather for one location on one calendar day.
// It is rebuilt from scratch on every call; two calls with the same
// location and date produce identical values.
type Forecast struct {
	LocationID      string      `json:"locationId"`
	LocationName    string      `json:"locationName"`
	Date            string      `json:"date"` // YYYY-MM-DD
	Temperature     float64     `json:"temperature"`
	TemperatureUnit string      `json:"temperatureUnit"`
	Condition       Condition   `json:"condition"`
	Humidity        int         `json:"humidity"` // percent, always within [30, 95]
	Coordinates     Coordinates `json:"coordinates"`
}
