// speicher CLI - hourly PV self-consumption and battery storage simulation.
//
// Usage:
//
//	speicher simulate --config examples/config.yaml --size 10 --out results/ledger.csv
//	speicher compare --config examples/config.yaml
//	speicher presets
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"pv-speicher/internal/analysis"
	"pv-speicher/internal/config"
	"pv-speicher/internal/data"
	"pv-speicher/internal/model"
	"pv-speicher/internal/profile"
	"pv-speicher/internal/simulation"
)

var version = "dev"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "speicher",
		Usage:   "Hourly PV self-consumption and battery storage simulation",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"SPEICHER_LOG_LEVEL"},
			},
		},
		Before: func(c *cli.Context) error {
			return setupLogging(c.String("log-level"))
		},
		Commands: []*cli.Command{
			simulateCommand(),
			compareCommand(),
			presetsCommand(),
		},
	}
}

func setupLogging(level string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	zerolog.SetGlobalLevel(lvl)
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	return nil
}

func configFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "config",
		Aliases:  []string{"c"},
		Usage:    "Path to YAML config",
		Required: true,
	}
}

// =============================================================================
// SIMULATE COMMAND
// =============================================================================

func simulateCommand() *cli.Command {
	return &cli.Command{
		Name:  "simulate",
		Usage: "Simulate one battery size hour by hour and write the ledger",
		Flags: []cli.Flag{
			configFlag(),
			&cli.Float64Flag{
				Name:  "size",
				Value: 10,
				Usage: "Nominal battery size in kWh",
			},
			&cli.StringFlag{
				Name:  "out",
				Value: "results/ledger.csv",
				Usage: "Output CSV path",
			},
			&cli.StringFlag{
				Name:  "xlsx",
				Usage: "Optional XLSX workbook path",
			},
		},
		Action: runSimulate,
	}
}

func runSimulate(c *cli.Context) error {
	cfg, spec, series, err := prepare(c.Context, c.String("config"))
	if err != nil {
		return err
	}

	nominal := c.Float64("size")
	usable := spec.UsableCapacityKWh(nominal)
	res, err := simulation.New().Run(series.Load, series.PV, usable, spec)
	if err != nil {
		return err
	}
	lc, err := simulation.CalculateLifecycle(nominal, res.Summary.CyclesPerYear, spec)
	if err != nil {
		return err
	}

	outPath := c.String("out")
	// ensure output dir exists
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}
	if err := simulation.WriteLedgerCSV(outPath, res.Ledger); err != nil {
		return err
	}
	log.Info().Int("rows", len(res.Ledger)).Str("path", outPath).Msg("ledger written")

	if xlsxPath := c.String("xlsx"); xlsxPath != "" {
		if err := os.MkdirAll(filepath.Dir(xlsxPath), 0o755); err != nil {
			return err
		}
		if err := simulation.WriteLedgerXLSX(xlsxPath, res); err != nil {
			return err
		}
		log.Info().Str("path", xlsxPath).Msg("workbook written")
	}

	shown := lc.Rounded()
	fmt.Printf("Household: %.0f kWh/year, PV %.1f kWp (%s)\n", cfg.Household.AnnualConsumptionKWh, cfg.Household.PV.SizeKWp, spec.Name)
	fmt.Printf("Battery: %.1f kWh nominal, %.2f kWh usable\n", nominal, usable)
	fmt.Printf("Charged=%.1f kWh Discharged=%.1f kWh Cycles/year=%.0f\n", res.Summary.TotalChargedKWh, res.Summary.TotalDischargedKWh, shown.CyclesPerYear)
	fmt.Printf("Self-consumption=%.1f kWh (%.1f%%) Autarky=%.1f%%\n", res.Balance.SelfConsumptionKWh, res.Balance.SelfConsumptionRate(), res.Balance.AutarkyRate())
	fmt.Printf("Grid import=%.1f kWh Feed-in=%.1f kWh\n", res.Balance.GridImportKWh, res.Balance.FeedInKWh)
	fmt.Printf("Lifetime=%.1f years (limited by %s)\n", shown.EffectiveLifetimeYears, shown.LimitingFactor)
	return nil
}

// =============================================================================
// COMPARE COMMAND
// =============================================================================

func compareCommand() *cli.Command {
	return &cli.Command{
		Name:  "compare",
		Usage: "Compare the configured battery sizes",
		Flags: []cli.Flag{
			configFlag(),
			&cli.StringFlag{
				Name:  "output",
				Value: "text",
				Usage: "Output format: text, json",
			},
		},
		Action: runCompare,
	}
}

func runCompare(c *cli.Context) error {
	cfg, spec, series, err := prepare(c.Context, c.String("config"))
	if err != nil {
		return err
	}
	opts, err := cfg.ComparisonOptions(spec)
	if err != nil {
		return err
	}

	report, err := analysis.CompareScenarios(c.Context, series, opts)
	if err != nil {
		return err
	}
	log.Info().Str("report_id", report.ID).Int("scenarios", len(report.Scenarios)).Msg("comparison finished")

	switch strings.ToLower(c.String("output")) {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case "text":
		printReport(report)
		return nil
	default:
		return fmt.Errorf("unsupported output format: %q", c.String("output"))
	}
}

func printReport(r *analysis.Report) {
	fmt.Printf("Report %s (%s, price growth %s, horizon mode %s)\n", r.ID, r.Battery.Name, r.PriceGrowth.Label, r.Mode)
	fmt.Printf("Load %.0f kWh (peak %.2f kWh at hour %d), PV %.0f kWh (peak %.2f kWh at hour %d)\n",
		r.Load.SumKWh, r.Load.MaxKWh, r.Load.PeakHour, r.PV.SumKWh, r.PV.MaxKWh, r.PV.PeakHour)
	fmt.Printf("%-10s %-10s %-10s %-10s %-10s %-8s %-10s %-10s %-8s\n",
		"size", "self%", "autarky%", "import", "feed-in", "cycles", "lifetime", "limit", "horizon")
	for _, s := range r.Scenarios {
		lc := s.Lifecycle.Rounded()
		fmt.Printf("%-10.1f %-10.1f %-10.1f %-10.0f %-10.0f %-8.0f %-10.1f %-10s %-8d\n",
			s.NominalKWh,
			s.Balance.SelfConsumptionRate(),
			s.Balance.AutarkyRate(),
			s.Balance.GridImportKWh,
			s.Balance.FeedInKWh,
			lc.CyclesPerYear,
			lc.EffectiveLifetimeYears,
			lc.LimitingFactor,
			s.HorizonYears,
		)
	}
	ranked := analysis.RankByMarginalGain(r)
	if len(ranked) > 0 {
		best := ranked[0]
		fmt.Printf("Best gain per kWh: %.1f kWh (+%.0f kWh/year self-consumption)\n", best.NominalKWh, best.AdditionalSelfConsumptionKWh)
	}
}

// =============================================================================
// PRESETS COMMAND
// =============================================================================

func presetsCommand() *cli.Command {
	return &cli.Command{
		Name:  "presets",
		Usage: "List built-in battery presets",
		Action: func(c *cli.Context) error {
			fmt.Printf("%-14s %-14s %-9s %-6s %-6s %-7s %-6s\n", "name", "manufacturer", "chemistry", "eff", "dod", "cycles", "years")
			for _, p := range model.Presets() {
				fmt.Printf("%-14s %-14s %-9s %-6.2f %-6.2f %-7d %-6.1f\n",
					p.Name, p.Manufacturer, p.Chemistry, p.RoundTripEfficiency, p.DepthOfDischarge, p.CycleLife80Pct, p.CalendarLifeYears)
			}
			return nil
		},
	}
}

func prepare(ctx context.Context, cfgPath string) (*config.Config, model.BatterySpec, profile.Series, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, model.BatterySpec{}, profile.Series{}, err
	}
	spec, err := cfg.Battery.ToModelSpec()
	if err != nil {
		return nil, model.BatterySpec{}, profile.Series{}, err
	}
	series, err := profile.Build(ctx,
		data.FileLoadProfile{Path: cfg.Sources.LoadProfile},
		data.FilePVGIS{Path: cfg.Sources.PVGIS},
		cfg.Household.AnnualConsumptionKWh,
	)
	if err != nil {
		return nil, model.BatterySpec{}, profile.Series{}, err
	}
	log.Debug().
		Float64("load_kwh", series.Load.Sum()).
		Float64("pv_kwh", series.PV.Sum()).
		Msg("hourly series prepared")
	return cfg, spec, series, nil
}
