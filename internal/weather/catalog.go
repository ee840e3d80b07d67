package weather

import "time"

// Location is a static catalog entry: a bookable city together with the
// monthly average temperatures its simulated forecasts are derived from.
type Location struct {
	ID          string
	Name        string
	Coordinates Coordinates

	// MonthlyAvg holds the average temperature in whole degrees Celsius
	// for each month, January first.
	MonthlyAvg [12]int
}

func (l Location) baselineFor(month time.Month) float64 {
	return float64(l.MonthlyAvg[month-1])
}

// Catalog is the immutable set of supported locations. It is populated once
// at startup and only read afterwards, so lookups need no locking.
type Catalog struct {
	ordered []Location
	byID    map[string]Location
}

// NewCatalog builds a catalog from the given locations, preserving order
// for List so discovery output is stable.
func NewCatalog(locations []Location) *Catalog {
	c := &Catalog{
		ordered: make([]Location, 0, len(locations)),
		byID:    make(map[string]Location, len(locations)),
	}
	for _, loc := range locations {
		if _, exists := c.byID[loc.ID]; exists {
			continue
		}
		c.ordered = append(c.ordered, loc)
		c.byID[loc.ID] = loc
	}
	return c
}

// DefaultCatalog returns the built-in reference set of UK cities.
func DefaultCatalog() *Catalog {
	return NewCatalog([]Location{
		{
			ID:          "loc_london",
			Name:        "London",
			Coordinates: Coordinates{Latitude: 51.5074, Longitude: -0.1278},
			MonthlyAvg:  [12]int{5, 6, 8, 11, 14, 17, 19, 19, 16, 12, 8, 6},
		},
		{
			ID:          "loc_manchester",
			Name:        "Manchester",
			Coordinates: Coordinates{Latitude: 53.4808, Longitude: -2.2426},
			MonthlyAvg:  [12]int{4, 5, 7, 9, 12, 15, 17, 17, 14, 10, 7, 5},
		},
		{
			ID:          "loc_edinburgh",
			Name:        "Edinburgh",
			Coordinates: Coordinates{Latitude: 55.9533, Longitude: -3.1883},
			MonthlyAvg:  [12]int{3, 4, 6, 8, 11, 14, 15, 15, 13, 9, 6, 4},
		},
		{
			ID:          "loc_birmingham",
			Name:        "Birmingham",
			Coordinates: Coordinates{Latitude: 52.4862, Longitude: -1.8904},
			MonthlyAvg:  [12]int{4, 5, 7, 10, 13, 16, 18, 18, 15, 11, 7, 5},
		},
	})
}

// Resolve looks up a location by identifier.
func (c *Catalog) Resolve(id string) (Location, bool) {
	loc, ok := c.byID[id]
	return loc, ok
}

// List returns every location in catalog order.
func (c *Catalog) List() []Location {
	out := make([]Location, len(c.ordered))
	copy(out, c.ordered)
	return out
}
