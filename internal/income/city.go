package income

import (
	"fmt"
	"strconv"
)

// ExcludedState is dropped from every loaded collection.
const ExcludedState = "Puerto Rico"

// City is one aggregated (city, state) entry.
type City struct {
	City          string
	State         string
	Area          float64 // land + water, summed over source rows
	AvgIncome     float64 // mean of the per-row Mean values, unweighted
	NumHouseholds float64 // sum of sum_w
}

// Key is the identity projection used for grouping and equality.
type Key struct {
	City  string
	State string
}

// Key returns the identity of c. Numeric fields do not participate.
func (c City) Key() Key { return Key{City: c.City, State: c.State} }

// String renders the key as "city,state".
func (k Key) String() string { return k.City + "," + k.State }

// SameCity reports whether a and b describe the same city/state pair.
func SameCity(a, b City) bool { return a.Key() == b.Key() }

func (c City) String() string {
	return fmt.Sprintf("City('%s','%s',%s,%s,%s)", c.City, c.State,
		formatFloat(c.Area), formatFloat(c.AvgIncome), formatFloat(c.NumHouseholds))
}

// CSVRecord returns the export row: state, city, area, avg_income, num_households.
func (c City) CSVRecord() []string {
	return []string{
		c.State,
		c.City,
		formatFloat(c.Area),
		formatFloat(c.AvgIncome),
		formatFloat(c.NumHouseholds),
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
