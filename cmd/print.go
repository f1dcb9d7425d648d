package cmd

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/KaramelBytes/usincome-cli/internal/income"
	"github.com/KaramelBytes/usincome-cli/internal/utils"
	"github.com/spf13/cobra"
)

var printCmd = &cobra.Command{
	Use:   "print",
	Short: "Print the condensed city list, or export it as CSV with --ofile",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if wantPlot {
			logger.Info("--plot given with print; exiting")
			return ErrPlotWithPrint
		}
		cities, err := loadSorted()
		if err != nil {
			return err
		}
		if outFile == "" {
			logger.Debug("printing to stdout")
			return printCities(cmd.OutOrStdout(), cities)
		}
		logger.WithField("path", outFile).Debug("exporting csv")
		if err := exportCSV(outFile, cities); err != nil {
			return err
		}
		logger.WithField("path", outFile).WithField("rows", len(cities)).Debug("export closed")
		return nil
	},
}

func printCities(w io.Writer, cities []income.City) error {
	for _, c := range cities {
		if _, err := fmt.Fprintln(w, c); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	return nil
}

// exportCSV writes state,city,area,avg_income,num_households rows without a header.
func exportCSV(path string, cities []income.City) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	for _, c := range cities {
		if err := w.Write(c.CSVRecord()); err != nil {
			return fmt.Errorf("encode csv: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("encode csv: %w", err)
	}
	if err := utils.SafeWriteFile(path, buf.Bytes()); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(printCmd)
	addOutputFlags(printCmd)
}
