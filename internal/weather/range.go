package weather

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrEndBeforeStart is returned when a range's end date precedes its start.
	ErrEndBeforeStart = errors.New("invalid range: end before start")

	// ErrRangeTooLarge is returned when a range spans more than maxRangeDays.
	ErrRangeTooLarge = errors.New("range too large")
)

// maxRangeDays caps the inclusive span of a range request, bounding the
// work per call at 31 daily simulations.
const maxRangeDays = 30

// SimulateRange expands [startDate, endDate] into one forecast per calendar
// day in ascending order. Both dates are validated, then the ordering and
// the span cap, before the location is resolved. The first failure wins and
// nothing is simulated on any error.
func (s *Service) SimulateRange(locationID, startDate, endDate string) ([]Forecast, error) {
	start, err := parseDate(startDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDate(endDate)
	if err != nil {
		return nil, err
	}

	if end.Before(start) {
		return nil, fmt.Errorf("%w: %s precedes %s", ErrEndBeforeStart, endDate, startDate)
	}

	span := int(end.Sub(start) / (24 * time.Hour))
	if span > maxRangeDays {
		return nil, fmt.Errorf("%w: %d days (max %d)", ErrRangeTooLarge, span, maxRangeDays)
	}

	loc, ok := s.catalog.Resolve(locationID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLocationNotFound, locationID)
	}

	forecasts := make([]Forecast, 0, span+1)
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		forecasts = append(forecasts, s.forecastFor(loc, day))
	}
	return forecasts, nil
}
