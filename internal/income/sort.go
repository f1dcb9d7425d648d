package income

import (
	"fmt"
	"sort"
	"strings"
)

// SortOrder selects one of the total orders over a City collection.
type SortOrder int

const (
	Alphabetical SortOrder = iota // state, then city
	BySize                        // area
	ByIncome                      // avg income
	ByPopulation                  // household count
)

var sortOrderNames = map[SortOrder]string{
	Alphabetical: "alphabetical",
	BySize:       "size",
	ByIncome:     "income",
	ByPopulation: "population",
}

// SortOrderNames lists the accepted names in declaration order.
func SortOrderNames() []string {
	return []string{"alphabetical", "size", "income", "population"}
}

func (o SortOrder) String() string {
	if n, ok := sortOrderNames[o]; ok {
		return n
	}
	return fmt.Sprintf("SortOrder(%d)", int(o))
}

// ParseSortOrder maps a CLI name to a SortOrder. Matching is exact.
func ParseSortOrder(name string) (SortOrder, error) {
	for o, n := range sortOrderNames {
		if n == name {
			return o, nil
		}
	}
	return 0, fmt.Errorf("invalid sort order %q (use %s)", name, strings.Join(SortOrderNames(), "|"))
}

// Less reports whether a orders before b under o.
func (o SortOrder) Less(a, b City) bool {
	switch o {
	case BySize:
		return a.Area < b.Area
	case ByIncome:
		return a.AvgIncome < b.AvgIncome
	case ByPopulation:
		return a.NumHouseholds < b.NumHouseholds
	default:
		if a.State != b.State {
			return a.State < b.State
		}
		return a.City < b.City
	}
}

// Sort reorders cities in place. The sort is stable, so equal keys keep their
// relative input order.
func Sort(cities []City, o SortOrder) {
	sort.SliceStable(cities, func(i, j int) bool {
		return o.Less(cities[i], cities[j])
	})
}
