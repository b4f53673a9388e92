// Command powerspectrum evaluates the finite-window Fourier transform of
// t^(2n) at the harmonics of a set of candidate periods and renders the
// diagnostic figures.
//
// Usage:
//
//	powerspectrum                                  # reference experiment, PNG figures in ./figures
//	powerspectrum --method exact --precision 512   # closed form in arbitrary precision
//	powerspectrum --periods 4,8 --kmax 10 --table  # smaller grid, print values
//	powerspectrum --stages base_function --format svg
//
// Every flag can also be set in a config file (--config) or through
// POWERSPECTRUM_* environment variables.
package main

import (
	"fmt"
	"io"
	"os"
	"runtime/pprof"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/tphakala/go-power-spectrum/internal/config"
	"github.com/tphakala/go-power-spectrum/internal/pipeline"
	"github.com/tphakala/go-power-spectrum/internal/transform"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logrus.WithError(err).Fatal("powerspectrum failed")
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:           "powerspectrum",
		Short:         "Plot the finite-window Fourier transform of t^(2n)",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, v)
		},
	}

	registerFlags(cmd.Flags())
	if err := bindConfig(v, cmd.Flags()); err != nil {
		panic(err)
	}
	return cmd
}

// bindConfig layers flags, POWERSPECTRUM_* environment variables and the
// optional config file in viper.
func bindConfig(v *viper.Viper, fs *pflag.FlagSet) error {
	if err := v.BindPFlags(fs); err != nil {
		return err
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return nil
}

func registerFlags(fs *pflag.FlagSet) {
	def := config.Default()

	fs.String(keyConfig, "", "Config file (yaml, json or toml)")
	fs.Int(keyDegree, def.Degree, "Degree n of the integrand t^(2n)")
	fs.Int(keyWindowFactor, def.WindowFactor, "Window half-width factor: W = factor·n")
	fs.StringSlice(keyPeriods, formatPeriods(def.Periods), "Candidate periods T")
	fs.Int(keyKMin, def.KMin, "First harmonic index")
	fs.Int(keyKMax, def.KMax, "Last harmonic index (inclusive)")
	fs.Float64(keyBaseMin, def.BaseMin, "Base-function plot: lower bound")
	fs.Float64(keyBaseMax, def.BaseMax, "Base-function plot: upper bound")
	fs.Int(keyBaseSamples, def.BaseSamples, "Base-function plot: number of samples")
	fs.String(keyMethod, string(def.Method), "Evaluation method: quadrature, exact")
	fs.Uint(keyPrecision, def.Precision, "Mantissa bits for the exact method")
	fs.Int(keyOrder, def.QuadratureOrder, "Gauss-Legendre nodes per panel")
	fs.Int(keyPanels, def.PanelsPerHalfPeriod, "Quadrature panels per half period")
	fs.String(keyOutputDir, def.OutputDir, "Figure output directory")
	fs.String(keyFormat, string(def.Format), "Figure format: png, svg, pdf")
	fs.StringSlice(keyStages, nil, "Figures to render (default: all)")
	fs.Bool(keyTable, false, "Print Re, Im and |F| for every period and harmonic")
	fs.BoolP(keyVerbose, "v", false, "Verbose output")
	fs.String(keyCPUProfile, "", "Write CPU profile to file")
}

func run(cmd *cobra.Command, v *viper.Viper) error {
	cfg, err := loadConfig(v)
	if err != nil {
		return err
	}
	stages, err := parseStages(v.GetStringSlice(keyStages))
	if err != nil {
		return err
	}

	logger := newLogger(cmd.ErrOrStderr(), v.GetBool(keyVerbose))

	if path := v.GetString(keyCPUProfile); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("could not create CPU profile: %w", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			_ = f.Close()
			return fmt.Errorf("could not start CPU profile: %w", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	eval, err := transform.New(&cfg)
	if err != nil {
		return err
	}

	logger.WithFields(logrus.Fields{
		"n":       cfg.Degree,
		"W":       cfg.HalfWidth(),
		"periods": cfg.Periods,
		"k":       fmt.Sprintf("%d..%d", cfg.KMin, cfg.KMax),
		"method":  eval.Name(),
	}).Info("Starting experiment")

	p, err := pipeline.BuildPipeline(&cfg, eval, logger, stages...)
	if err != nil {
		return err
	}

	start := time.Now()
	if v.GetBool(keyTable) {
		series, err := p.Sweep()
		if err != nil {
			return err
		}
		if err := writeTable(cmd.OutOrStdout(), series); err != nil {
			return err
		}
	}

	paths, err := p.Run()
	if err != nil {
		return err
	}

	for _, path := range paths {
		fmt.Fprintln(cmd.OutOrStdout(), path)
	}
	logger.WithField("elapsed", time.Since(start).Round(time.Millisecond)).
		Infof("Wrote %d figures to %s", len(paths), cfg.OutputDir)
	return nil
}

func newLogger(w io.Writer, verbose bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}

// loadConfig assembles a validated Config from flags, environment and config file.
func loadConfig(v *viper.Viper) (config.Config, error) {
	cfg := config.Default()

	if path := v.GetString(keyConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return cfg, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	periods, err := parsePeriods(v.GetStringSlice(keyPeriods))
	if err != nil {
		return cfg, err
	}
	method, err := config.ParseMethod(v.GetString(keyMethod))
	if err != nil {
		return cfg, err
	}
	format, err := config.ParseFormat(v.GetString(keyFormat))
	if err != nil {
		return cfg, err
	}

	cfg.Degree = v.GetInt(keyDegree)
	cfg.WindowFactor = v.GetInt(keyWindowFactor)
	cfg.Periods = periods
	cfg.KMin = v.GetInt(keyKMin)
	cfg.KMax = v.GetInt(keyKMax)
	cfg.BaseMin = v.GetFloat64(keyBaseMin)
	cfg.BaseMax = v.GetFloat64(keyBaseMax)
	cfg.BaseSamples = v.GetInt(keyBaseSamples)
	cfg.Method = method
	cfg.Precision = v.GetUint(keyPrecision)
	cfg.QuadratureOrder = v.GetInt(keyOrder)
	cfg.PanelsPerHalfPeriod = v.GetInt(keyPanels)
	cfg.OutputDir = v.GetString(keyOutputDir)
	cfg.Format = format

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// parsePeriods accepts both repeated values and comma-separated lists.
func parsePeriods(values []string) ([]float64, error) {
	var periods []float64
	for _, value := range values {
		for _, field := range strings.Split(value, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			p, err := strconv.ParseFloat(field, periodBitSize)
			if err != nil {
				return nil, fmt.Errorf("%w: period %q: %w", config.ErrInvalidConfig, field, err)
			}
			periods = append(periods, p)
		}
	}
	return periods, nil
}

func formatPeriods(periods []float64) []string {
	out := make([]string, len(periods))
	for i, p := range periods {
		out[i] = strconv.FormatFloat(p, 'g', -1, periodBitSize)
	}
	return out
}

func parseStages(names []string) ([]pipeline.StageType, error) {
	var stages []pipeline.StageType
	for _, name := range names {
		for _, field := range strings.Split(name, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			s, err := pipeline.ParseStage(field)
			if err != nil {
				return nil, err
			}
			stages = append(stages, s)
		}
	}
	return stages, nil
}
