// Command intervals computes a display interval over numbers read from a
// file or stdin and optionally prints the values normalized into [0, 1].
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/uyouii/display-intervals/config"
	"github.com/uyouii/display-intervals/interval"
	"github.com/uyouii/display-intervals/model"
	"github.com/uyouii/display-intervals/utils"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Version is set at build time.
var Version = "dev"

type options struct {
	configFile string
	inputFile  string
	verbose    bool
	printAll   bool
	precision  int32
	noClip     bool
	vmin, vmax float64
	strategy   string
	seed       uint64

	percentile   float64
	lower, upper float64
	nSamplesPct  int

	nsamples   int
	contrast   float64
	maxReject  float64
	minNPixels int
	krej       float64
	maxIter    int
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "intervals",
		Short: "Compute display intervals for numeric data",
		Long: `intervals reads whitespace separated numbers and prints the display
interval (vmin, vmax) chosen by the selected strategy: manual, minmax,
percentile, asymmetric_percentile or zscale.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "intervals", Version)
		},
	})

	rootCmd.PersistentFlags().BoolVar(&opts.verbose, "verbose", false, "Print debug logs")
	flags := rootCmd.Flags()
	flags.StringVar(&opts.configFile, "config", "", "YAML interval configuration file")
	flags.StringVarP(&opts.inputFile, "input", "i", "", "Input file (default is stdin)")
	flags.BoolVar(&opts.printAll, "normalize", false, "Also print the normalized values")
	flags.Int32Var(&opts.precision, "precision", 6, "Decimals of the printed normalized values")
	flags.BoolVar(&opts.noClip, "no-clip", false, "Do not clip normalized values to [0, 1]")

	flags.StringVarP(&opts.strategy, "strategy", "s", string(config.DefaultStrategy), "Interval strategy")
	flags.Uint64Var(&opts.seed, "seed", 0, "Seed of the sampler, 0 seeds from the clock")
	flags.Float64Var(&opts.vmin, "vmin", 0, "Manual lower limit")
	flags.Float64Var(&opts.vmax, "vmax", 0, "Manual upper limit")
	flags.Float64Var(&opts.percentile, "percentile", 99.5, "Percentage of values to keep")
	flags.Float64Var(&opts.lower, "lower", 0.25, "Lower percentile")
	flags.Float64Var(&opts.upper, "upper", 99.75, "Upper percentile")
	flags.IntVar(&opts.nSamplesPct, "n-samples", 0, "Maximum number of values used by the percentile strategies")
	flags.IntVar(&opts.nsamples, "nsamples", 0, "Maximum number of values used by zscale")
	flags.Float64Var(&opts.contrast, "contrast", 0, "Zscale contrast")
	flags.Float64Var(&opts.maxReject, "max-reject", 0, "Zscale rejected fraction limit")
	flags.IntVar(&opts.minNPixels, "min-npixels", 0, "Zscale minimum surviving values")
	flags.Float64Var(&opts.krej, "krej", 0, "Zscale rejection threshold in sigma")
	flags.IntVar(&opts.maxIter, "max-iterations", 0, "Zscale rejection rounds")

	return rootCmd
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfgZap := zap.NewProductionConfig()
	cfgZap.Level.SetLevel(zapcore.WarnLevel)
	if verbose {
		cfgZap.Level.SetLevel(zapcore.DebugLevel)
	}
	cfgZap.OutputPaths = []string{"stderr"}
	return cfgZap.Build()
}

func run(cmd *cobra.Command, opts *options, stdin io.Reader, stdout io.Writer) error {
	logger, err := newLogger(opts.verbose)
	if err != nil {
		return err
	}
	defer logger.Sync()
	defer utils.SetLogger(logger)()

	cfg, err := buildConfig(cmd, opts)
	if err != nil {
		logger.Error("Failed to load configuration", zap.Error(err))
		return err
	}
	logger.Debug("Configuration loaded", zap.String("config", cfg.DebugString()))

	in := stdin
	if opts.inputFile != "" {
		f, err := os.Open(opts.inputFile)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	values, err := readValues(in)
	if err != nil {
		logger.Error("Failed to read values", zap.Error(err))
		return err
	}

	res, err := interval.CalculateDisplayRange(context.Background(), cfg, nil, values)
	if err != nil {
		return err
	}
	return writeResult(stdout, res, opts.printAll, opts.precision)
}

// buildConfig starts from the config file, if any, and applies the flags
// that were set on the command line.
func buildConfig(cmd *cobra.Command, opts *options) (*model.IntervalConfig, error) {
	cfg := &model.IntervalConfig{}
	if opts.configFile != "" {
		loaded, err := config.LoadConfig(opts.configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("strategy") || opts.configFile == "" {
		cfg.Strategy = model.StrategyName(opts.strategy)
	}
	if flags.Changed("seed") {
		cfg.Seed = opts.seed
	}
	if flags.Changed("no-clip") {
		clip := !opts.noClip
		cfg.Clip = &clip
	}
	setFloat(flags, "vmin", opts.vmin, &cfg.Manual.Vmin)
	setFloat(flags, "vmax", opts.vmax, &cfg.Manual.Vmax)

	// percentile flag defaults apply only where the file left a setting out
	setFloatOrDefault(flags, "percentile", opts.percentile, &cfg.Percentile.Percentile)
	setFloatOrDefault(flags, "lower", opts.lower, &cfg.Percentile.Lower)
	setFloatOrDefault(flags, "upper", opts.upper, &cfg.Percentile.Upper)
	setInt(flags, "n-samples", opts.nSamplesPct, &cfg.Percentile.NSamples)

	setInt(flags, "nsamples", opts.nsamples, &cfg.Zscale.NSamples)
	setFloat(flags, "contrast", opts.contrast, &cfg.Zscale.Contrast)
	setFloat(flags, "max-reject", opts.maxReject, &cfg.Zscale.MaxReject)
	setInt(flags, "min-npixels", opts.minNPixels, &cfg.Zscale.MinNPixels)
	setFloat(flags, "krej", opts.krej, &cfg.Zscale.KRej)
	setInt(flags, "max-iterations", opts.maxIter, &cfg.Zscale.MaxIterations)

	config.ApplyDefaults(cfg)
	return cfg, nil
}

// setFloat overrides *dst with v when the flag was given, zero included.
func setFloat(flags *pflag.FlagSet, name string, v float64, dst **float64) {
	if flags.Changed(name) {
		*dst = &v
	}
}

func setFloatOrDefault(flags *pflag.FlagSet, name string, v float64, dst **float64) {
	if flags.Changed(name) || *dst == nil {
		*dst = &v
	}
}

func setInt(flags *pflag.FlagSet, name string, v int, dst **int) {
	if flags.Changed(name) {
		*dst = &v
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
