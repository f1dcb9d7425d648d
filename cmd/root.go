package cmd

import (
	"errors"
	"fmt"
	"os"

	cfgpkg "github.com/KaramelBytes/usincome-cli/internal/config"
	"github.com/KaramelBytes/usincome-cli/internal/income"
	"github.com/KaramelBytes/usincome-cli/internal/logging"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile  string
	debug    bool
	flagData string
	flagLog  string

	// Output flags, registered on print and plot
	sortName string
	outFile  string
	wantPlot bool

	// Loaded configuration and the run's logger
	cfg    *cfgpkg.Global
	logger *logging.Logger
)

// ErrPlotWithPrint is returned when --plot is combined with the print command.
var ErrPlotWithPrint = errors.New("'--plot' must be used with the plot command, not print")

var rootCmd = &cobra.Command{
	Use:   "usincome",
	Short: "Analyze the US household income data set",
	Long: `usincome loads the US household income CSV, condenses it to one entry per
city and state, and prints, exports or plots the result.`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute is the entry point called by main.main()
func Execute() {
	err := rootCmd.Execute()
	closeLog()
	if err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is ~/.usincome/config.yaml)")
	pf.BoolVar(&debug, "debug", false, "force debug logging")
	pf.StringVar(&flagData, "data", "", "input CSV (overrides config data_file)")
	pf.StringVar(&flagLog, "log-file", "", "log file, truncated each run (overrides config log_file)")
}

// addOutputFlags registers the flags shared by print and plot.
func addOutputFlags(c *cobra.Command) {
	f := c.Flags()
	f.StringVarP(&sortName, "sort", "s", "alphabetical", "sort order: alphabetical|size|income|population")
	f.StringVarP(&outFile, "ofile", "o", "", "output file (default is stdout)")
	f.BoolVarP(&wantPlot, "plot", "p", false, "graphical output (plot command only)")
}

// setup loads configuration and opens the run log before any command runs.
func setup(cmd *cobra.Command, args []string) error {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		return err
	}
	f := cmd.Flags()
	if f.Changed("data") && flagData != "" {
		c.DataFile = flagData
	}
	if f.Changed("log-file") {
		c.LogFile = flagLog
	}
	if debug {
		c.LogLevel = "debug"
	}
	cfg = c

	closeLog()
	l, err := logging.Open(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	logger = l
	logger.WithField("command", cmd.Name()).
		WithField("args", args).
		WithField("sort", sortName).
		WithField("ofile", outFile).
		WithField("plot", wantPlot).
		Debug("arguments")
	return nil
}

func closeLog() {
	if logger != nil {
		_ = logger.Close()
	}
}

// loadSorted loads the configured data file and applies the --sort order.
func loadSorted() ([]income.City, error) {
	order, err := income.ParseSortOrder(sortName)
	if err != nil {
		return nil, err
	}
	cities, err := income.LoadFile(cfg.DataFile, logger)
	if err != nil {
		logger.WithError(err).Error("load failed")
		return nil, err
	}
	income.Sort(cities, order)
	logger.WithField("order", order).Debug("income data sorted")
	return cities, nil
}
