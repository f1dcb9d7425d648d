package cmd

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/KaramelBytes/usincome-cli/internal/chart"
	"github.com/KaramelBytes/usincome-cli/internal/income"
	"github.com/KaramelBytes/usincome-cli/internal/outliers"
	"github.com/KaramelBytes/usincome-cli/internal/utils"
	"github.com/spf13/cobra"
)

var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Filter outliers and plot average income against city size",
	Long: `plot drops cities whose average income or area is an extreme outlier
(modified z-score above 12) and keeps the rest. With --plot the points are
rendered as a scatter image; otherwise they are written as income,area rows.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cities, err := loadSorted()
		if err != nil {
			return err
		}
		incomes, areas := series(cities)
		res, err := outliers.Keep(incomes, areas, outliers.DefaultThreshold)
		if err != nil {
			return err
		}
		logger.WithField("cities", len(cities)).
			WithField("kept", len(res.Kept)).
			WithField("income_outliers", res.XOutliers).
			WithField("area_outliers", res.YOutliers).
			Info("outliers filtered")

		if wantPlot {
			path := outFile
			if path == "" {
				path = cfg.PlotFile
			}
			sc := chart.IncomeVsArea(cfg.PlotWidthIn, cfg.PlotHeightIn)
			if err := sc.Save(res.Kept, path); err != nil {
				return err
			}
			logger.WithField("path", path).Info("scatter written")
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote plot to %s\n", path)
			return nil
		}

		var buf bytes.Buffer
		if err := writePoints(&buf, res.Kept); err != nil {
			return err
		}
		if outFile == "" {
			_, err := cmd.OutOrStdout().Write(buf.Bytes())
			return err
		}
		if err := utils.SafeWriteFile(outFile, buf.Bytes()); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		logger.WithField("path", outFile).Debug("points written")
		return nil
	},
}

// series extracts the income and area columns in collection order.
func series(cities []income.City) (incomes, areas []float64) {
	incomes = make([]float64, len(cities))
	areas = make([]float64, len(cities))
	for i, c := range cities {
		incomes[i] = c.AvgIncome
		areas[i] = c.Area
	}
	return incomes, areas
}

func writePoints(w io.Writer, pts []outliers.Point) error {
	cw := csv.NewWriter(w)
	for _, p := range pts {
		rec := []string{
			strconv.FormatFloat(p.X, 'f', -1, 64),
			strconv.FormatFloat(p.Y, 'f', -1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("encode points: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func init() {
	rootCmd.AddCommand(plotCmd)
	addOutputFlags(plotCmd)
}
