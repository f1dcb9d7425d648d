// Package outliers flags extreme values with the modified z-score of
// Iglewicz and Hoaglin (1993), which is based on the median absolute
// deviation (MAD) rather than the standard deviation.
package outliers

import (
	"errors"
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
)

// DefaultThreshold is intentionally looser than the 3.5 usually recommended;
// only extreme values are removed from the scatter.
const DefaultThreshold = 12

// zScale makes the MAD a consistent estimator of the standard deviation.
const zScale = 0.6745

// ErrLengthMismatch is returned by Keep when the two series differ in length.
var ErrLengthMismatch = errors.New("series length mismatch")

// Scores returns the modified z-score of every value.
//
// When the MAD is zero, a value equal to the median scores 0 and any other
// value scores +Inf.
func Scores(values []float64) ([]float64, error) {
	if len(values) == 0 {
		return []float64{}, nil
	}
	median, err := stats.Median(values)
	if err != nil {
		return nil, fmt.Errorf("median: %w", err)
	}
	dev := make([]float64, len(values))
	for i, v := range values {
		dev[i] = math.Abs(v - median)
	}
	mad, err := stats.Median(dev)
	if err != nil {
		return nil, fmt.Errorf("median absolute deviation: %w", err)
	}
	scores := make([]float64, len(values))
	for i, d := range dev {
		switch {
		case mad > 0:
			scores[i] = zScale * d / mad
		case d > 0:
			scores[i] = math.Inf(1)
		default:
			scores[i] = 0
		}
	}
	return scores, nil
}

// Mask reports, per index, whether values[i] scores above threshold.
func Mask(values []float64, threshold float64) ([]bool, error) {
	scores, err := Scores(values)
	if err != nil {
		return nil, err
	}
	mask := make([]bool, len(scores))
	for i, s := range scores {
		mask[i] = s > threshold
	}
	return mask, nil
}

// Point is one plotted (x, y) pair.
type Point struct {
	X, Y float64
}

// Result holds the points that survived filtering and the per-axis outlier counts.
type Result struct {
	Kept      []Point
	XOutliers int
	YOutliers int
}

// Keep masks xs and ys independently and returns the pairs that neither mask flags.
// Index i of xs and ys must describe the same item.
func Keep(xs, ys []float64, threshold float64) (Result, error) {
	if len(xs) != len(ys) {
		return Result{}, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(xs), len(ys))
	}
	xm, err := Mask(xs, threshold)
	if err != nil {
		return Result{}, fmt.Errorf("x mask: %w", err)
	}
	ym, err := Mask(ys, threshold)
	if err != nil {
		return Result{}, fmt.Errorf("y mask: %w", err)
	}
	res := Result{Kept: make([]Point, 0, len(xs))}
	for i := range xs {
		if xm[i] {
			res.XOutliers++
		}
		if ym[i] {
			res.YOutliers++
		}
		if !xm[i] && !ym[i] {
			res.Kept = append(res.Kept, Point{X: xs[i], Y: ys[i]})
		}
	}
	return res, nil
}
