package chart

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/KaramelBytes/usincome-cli/internal/outliers"
	"github.com/KaramelBytes/usincome-cli/internal/utils"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Scatter describes one rendered scatter plot.
type Scatter struct {
	Title  string
	XLabel string
	YLabel string
	Width  vg.Length
	Height vg.Length
}

// IncomeVsArea is the chart drawn by the plot command.
func IncomeVsArea(widthIn, heightIn float64) Scatter {
	return Scatter{
		Title:  "Average Income vs. Size of City",
		XLabel: "Average Household Income",
		YLabel: "Physical Size of City",
		Width:  vg.Length(widthIn) * vg.Inch,
		Height: vg.Length(heightIn) * vg.Inch,
	}
}

// supported output extensions, as understood by plot.Save
var formats = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".svg": true,
	".pdf": true, ".eps": true, ".tif": true, ".tiff": true,
}

// Build assembles the plot without writing it.
func (s Scatter) Build(points []outliers.Point) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = s.Title
	p.X.Label.Text = s.XLabel
	p.Y.Label.Text = s.YLabel

	xys := make(plotter.XYs, len(points))
	for i, pt := range points {
		xys[i].X = pt.X
		xys[i].Y = pt.Y
	}
	sc, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, fmt.Errorf("scatter: %w", err)
	}
	p.Add(sc)
	return p, nil
}

// Save renders points to path. The image format follows the file extension.
func (s Scatter) Save(points []outliers.Point, path string) error {
	if path == "" {
		return errors.New("plot output path is empty")
	}
	if !formats[filepath.Ext(path)] {
		return fmt.Errorf("unsupported plot format %q", filepath.Ext(path))
	}
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("invalid plot size %vx%v", s.Width, s.Height)
	}
	p, err := s.Build(points)
	if err != nil {
		return err
	}
	if err := utils.EnsureDir(filepath.Dir(path)); err != nil {
		return fmt.Errorf("ensure plot dir: %w", err)
	}
	if err := p.Save(s.Width, s.Height, path); err != nil {
		return fmt.Errorf("save plot: %w", err)
	}
	return nil
}
