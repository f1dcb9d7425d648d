package income

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func sample() []City {
	return []City{
		{City: "Dallas", State: "Texas", Area: 30, AvgIncome: 50, NumHouseholds: 7},
		{City: "Akron", State: "Ohio", Area: 10, AvgIncome: 70, NumHouseholds: 3},
		{City: "Austin", State: "Texas", Area: 10, AvgIncome: 50, NumHouseholds: 9},
		{City: "Mobile", State: "Alabama", Area: 20, AvgIncome: 60, NumHouseholds: 3},
		{City: "Zanesville", State: "Ohio", Area: 10, AvgIncome: 40, NumHouseholds: 1},
	}
}

func names(cs []City) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.City
	}
	return out
}

func TestSortOrders(t *testing.T) {
	cases := []struct {
		order SortOrder
		want  []string
	}{
		{Alphabetical, []string{"Mobile", "Akron", "Zanesville", "Austin", "Dallas"}},
		// equal areas keep input order: Akron, Austin, Zanesville
		{BySize, []string{"Akron", "Austin", "Zanesville", "Mobile", "Dallas"}},
		{ByIncome, []string{"Zanesville", "Dallas", "Austin", "Mobile", "Akron"}},
		{ByPopulation, []string{"Zanesville", "Akron", "Mobile", "Dallas", "Austin"}},
	}
	for _, c := range cases {
		t.Run(c.order.String(), func(t *testing.T) {
			cs := sample()
			Sort(cs, c.order)
			if diff := cmp.Diff(c.want, names(cs)); diff != "" {
				t.Fatalf("order mismatch (-want +got):\n%s", diff)
			}
			again := append([]City(nil), cs...)
			Sort(again, c.order)
			if diff := cmp.Diff(cs, again); diff != "" {
				t.Fatalf("sorting a sorted slice changed it (-first +second):\n%s", diff)
			}
		})
	}
}

func TestSortBySizeIsNotAlphabeticalFirst(t *testing.T) {
	cs := []City{
		{City: "Zeta", State: "Wyoming", Area: 1},
		{City: "Alpha", State: "Alabama", Area: 1},
	}
	Sort(cs, BySize)
	if cs[0].City != "Zeta" {
		t.Fatalf("size sort must only compare area; got %v", names(cs))
	}
}

func TestParseSortOrder(t *testing.T) {
	for _, n := range SortOrderNames() {
		o, err := ParseSortOrder(n)
		if err != nil {
			t.Fatalf("ParseSortOrder(%q): %v", n, err)
		}
		if o.String() != n {
			t.Fatalf("round trip %q -> %q", n, o.String())
		}
	}
	if _, err := ParseSortOrder("Alphabetical"); err == nil {
		t.Fatalf("expected error for wrong case")
	}
	if _, err := ParseSortOrder("alphabet"); err == nil {
		t.Fatalf("expected error for unknown name")
	}
}
