package weather

import (
	"errors"
	"fmt"
	"hash/fnv"
	"math/rand"
	"time"

	"github.com/conferencebook/weather-service/internal/common"
)

var (
	// ErrLocationNotFound is returned when an identifier is not in the catalog.
	ErrLocationNotFound = errors.New("location not found")

	// ErrInvalidDate is returned when a date does not parse as YYYY-MM-DD.
	ErrInvalidDate = errors.New("invalid date")
)

const (
	dateLayout = "2006-01-02"

	// maxVariation bounds the daily temperature offset either side of the
	// monthly baseline.
	maxVariation = 5.0

	warmThreshold = 18.0
	mildThreshold = 10.0

	minHumidity = 30
	maxHumidity = 95
)

// Condition candidates per temperature band. Warm days stay bright, cold
// days stay grey, mild days sit in between.
var (
	warmConditions = []Condition{ConditionSunny, ConditionPartlyCloudy, ConditionClear}
	mildConditions = []Condition{ConditionPartlyCloudy, ConditionCloudy, ConditionOvercast}
	coldConditions = []Condition{ConditionCloudy, ConditionRainy, ConditionOvercast}
)

var humidityBase = map[Condition]int{
	ConditionSunny:        45,
	ConditionPartlyCloudy: 55,
	ConditionCloudy:       65,
	ConditionRainy:        80,
	ConditionOvercast:     70,
	ConditionClear:        40,
}

// Service generates simulated forecasts from the location catalog. It holds
// no mutable state; every simulation builds its own seeded generator, so
// concurrent calls never interfere.
type Service struct {
	catalog *Catalog
}

// NewService creates a Service backed by the given catalog.
func NewService(catalog *Catalog) *Service {
	return &Service{catalog: catalog}
}

// Locations returns the supported locations in catalog order.
func (s *Service) Locations() []Location {
	return s.catalog.List()
}

// Simulate produces the forecast for one location and calendar date.
// The result is a pure function of (locationID, date): repeated calls,
// concurrent callers, and process restarts all yield identical records.
func (s *Service) Simulate(locationID, date string) (Forecast, error) {
	loc, ok := s.catalog.Resolve(locationID)
	if !ok {
		return Forecast{}, fmt.Errorf("%w: %s", ErrLocationNotFound, locationID)
	}

	day, err := parseDate(date)
	if err != nil {
		return Forecast{}, err
	}

	return s.forecastFor(loc, day), nil
}

// forecastFor derives the forecast from a request-local generator seeded by
// (location, day). Draw order is fixed: temperature first, then condition,
// then humidity offset. Reordering the draws changes every forecast.
func (s *Service) forecastFor(loc Location, day time.Time) Forecast {
	rng := rand.New(rand.NewSource(seedFor(loc.ID, day)))

	base := loc.baselineFor(day.Month())
	variation := -maxVariation + rng.Float64()*(2*maxVariation)
	temperature := common.RoundTo(base+variation, 1)

	bucket := conditionsFor(temperature)
	condition := bucket[rng.Intn(len(bucket))]

	humidity := humidityBase[condition] + rng.Intn(21) - 10
	humidity = common.ClampInt(humidity, minHumidity, maxHumidity)

	return Forecast{
		LocationID:      loc.ID,
		LocationName:    loc.Name,
		Date:            day.Format(dateLayout),
		Temperature:     temperature,
		TemperatureUnit: TemperatureUnit,
		Condition:       condition,
		Humidity:        humidity,
		Coordinates:     loc.Coordinates,
	}
}

// conditionsFor selects the candidate bucket for a rounded temperature.
func conditionsFor(temperature float64) []Condition {
	switch {
	case temperature > warmThreshold:
		return warmConditions
	case temperature > mildThreshold:
		return mildConditions
	default:
		return coldConditions
	}
}

// seedFor combines the day encoded as a YYYYMMDD integer with an FNV-1a hash
// of the location identifier. FNV-1a is stable across processes and
// platforms; the signed wrap on the addition is well defined.
func seedFor(locationID string, day time.Time) int64 {
	h := fnv.New64a()
	h.Write([]byte(locationID))
	dateKey := int64(day.Year())*10000 + int64(day.Month())*100 + int64(day.Day())
	return dateKey + int64(h.Sum64())
}

// parseDate accepts bare ISO calendar dates only. Anything else, including
// real dates in other orderings, is rejected rather than passed through.
func parseDate(value string) (time.Time, error) {
	day, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}
	return day, nil
}
