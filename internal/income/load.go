package income

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/encoding/charmap"
)

// Columns is the expected input header, in order.
var Columns = []string{
	"id", "State_Code", "State_Name", "State_ab", "County", "City", "Place",
	"Type", "Primary", "Zip_Code", "Area_Code", "ALand", "AWater", "Lat",
	"Lon", "Mean", "Median", "Stdev", "sum_w",
}

const (
	colStateName = 2
	colCity      = 5
	colALand     = 11
	colAWater    = 12
	colMean      = 15
	colSumW      = 18
)

// ErrMalformedRow is returned when a data row does not have the expected number of fields.
var ErrMalformedRow = errors.New("malformed row")

// record is one parsed input row. It only lives for the duration of a load.
type record struct {
	state      string
	city       string
	area       float64
	meanIncome float64
	weight     float64
}

type bucket struct {
	key        Key
	area       float64
	incomeSum  float64
	rows       int
	households float64
}

// LoadFile opens path and loads it with Load.
func LoadFile(path string, log logrus.FieldLogger) ([]City, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open data: %w", err)
	}
	defer f.Close()
	log.WithField("path", path).Debug("importing income data")
	return Load(f, log)
}

// Load reads ISO-8859-1 encoded CSV from r, skips the header, and folds every
// row into one City per (city, state). Groups are returned in first-seen order
// with ExcludedState removed. Any malformed row aborts the load.
func Load(r io.Reader, log logrus.FieldLogger) ([]City, error) {
	cr := csv.NewReader(charmap.ISO8859_1.NewDecoder().Reader(r))
	cr.ReuseRecord = true
	cr.TrimLeadingSpace = true
	// place names occasionally carry a bare quote, e.g. Coeur d"Alene
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1

	if _, err := cr.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return []City{}, nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	var (
		order   []*bucket
		buckets = make(map[Key]*bucket)
		rows    int
	)
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		line, _ := cr.FieldPos(0)
		rec, err := parseRecord(row)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		rows++

		k := Key{City: rec.city, State: rec.state}
		b, ok := buckets[k]
		if !ok {
			b = &bucket{key: k}
			buckets[k] = b
			order = append(order, b)
		}
		b.area += rec.area
		b.incomeSum += rec.meanIncome
		b.households += rec.weight
		b.rows++
	}

	out := make([]City, 0, len(order))
	for _, b := range order {
		if b.key.State == ExcludedState {
			continue
		}
		out = append(out, City{
			City:          b.key.City,
			State:         b.key.State,
			Area:          b.area,
			AvgIncome:     b.incomeSum / float64(b.rows),
			NumHouseholds: b.households,
		})
	}
	log.WithFields(logrus.Fields{
		"rows":   rows,
		"groups": len(order),
		"cities": len(out),
	}).Debug("income data condensed")
	return out, nil
}

func parseRecord(row []string) (record, error) {
	if len(row) != len(Columns) {
		return record{}, fmt.Errorf("%w: got %d fields, want %d", ErrMalformedRow, len(row), len(Columns))
	}
	var vals [4]float64
	for i, col := range [...]int{colALand, colAWater, colMean, colSumW} {
		v, err := strconv.ParseFloat(row[col], 64)
		if err != nil {
			return record{}, fmt.Errorf("parse %s %q: %w", Columns[col], row[col], err)
		}
		vals[i] = v
	}
	return record{
		state:      row[colStateName],
		city:       row[colCity],
		area:       vals[0] + vals[1],
		meanIncome: vals[2],
		weight:     vals[3],
	}, nil
}
