// Command bilinear converts analog transfer functions to discrete ones with
// the bilinear transform and reports pre-warping, poles, zeros and
// stability.
//
// Usage:
//
//	bilinear [flags]
//
// Settings are read from built-in defaults, then the file given by
// -config, then BILINEAR_* environment variables, then flags.
//
// Examples:
//
//	bilinear -num 1 -den 1,1 -T 0.1
//	bilinear -family butterworth -order 4 -cutoff 2 -T 0.05
//	bilinear -family elliptic -ripple 1 -stopband 40 -selectivity 2
//	bilinear -inverse -num 1,1 -den 21,-19 -T 0.1
//	bilinear -num 1 -den 1,1.4142,1 -response -points 16
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/cwbudde/algo-bilinear/internal/config"
)

// flagKeys maps flag names to config keys for the explicit-flag overlay.
var flagKeys = map[string]string{
	"T":           config.KeySamplingPeriod,
	"precision":   config.KeyPrecision,
	"omega":       config.KeyCriticalFrequency,
	"seed":        config.KeySeed,
	"num":         config.KeyNumerator,
	"den":         config.KeyDenominator,
	"family":      config.KeyFamily,
	"order":       config.KeyOrder,
	"cutoff":      config.KeyCutoff,
	"ripple":      config.KeyRipple,
	"stopband":    config.KeyStopband,
	"selectivity": config.KeySelectivity,
	"inverse":     config.KeyInverse,
	"points":      config.KeyPoints,
	"samples":     config.KeySamples,
	"log-level":   config.KeyLogLevel,
}

type outputs struct {
	response bool
	nyquist  bool
	impulse  bool
	step     bool
	spectrum int
	check    bool
}

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	fs := flag.NewFlagSet("bilinear", flag.ExitOnError)
	configFile, out, verbose, noPreWarp := defineFlags(fs)

	fs.Usage = func() { usage(fs) }
	_ = fs.Parse(os.Args[1:])

	overrides := explicitFlags(fs)
	if *noPreWarp {
		overrides[config.KeyPreWarp] = false
	}

	cfg, err := config.Load(*configFile, overrides)
	if err != nil {
		log.Error().Err(err).Msg("invalid configuration")
		os.Exit(2)
	}

	setLogLevel(cfg.LogLevel, *verbose)

	if err := run(os.Stdout, cfg, *out); err != nil {
		log.Error().Err(err).Msg("computation failed")
		os.Exit(1)
	}
}

func defineFlags(fs *flag.FlagSet) (configFile *string, out *outputs, verbose, noPreWarp *bool) {
	defaults := config.Defaults()
	out = &outputs{}

	configFile = fs.String("config", "", "config file (yaml, toml or json)")
	fs.Float64("T", defaults[config.KeySamplingPeriod].(float64), "sampling period in seconds")
	fs.Int("precision", defaults[config.KeyPrecision].(int), "decimal places in the report (1-6)")
	fs.Float64("omega", defaults[config.KeyCriticalFrequency].(float64), "pre-warping critical frequency in rad/s")
	noPreWarp = fs.Bool("no-prewarp", false, "skip frequency pre-warping")
	fs.Uint64("seed", 0, "root finding seed (0 picks a random seed)")
	fs.String("num", defaults[config.KeyNumerator].(string), "numerator coefficients, highest power first")
	fs.String("den", defaults[config.KeyDenominator].(string), "denominator coefficients, highest power first")
	fs.String("family", "", "design a prototype: butterworth, cheby1, cheby2, elliptic, bessel")
	fs.Int("order", defaults[config.KeyOrder].(int), "prototype order")
	fs.Float64("cutoff", defaults[config.KeyCutoff].(float64), "prototype cutoff in rad/s")
	fs.Float64("ripple", defaults[config.KeyRipple].(float64), "passband ripple in dB")
	fs.Float64("stopband", defaults[config.KeyStopband].(float64), "stopband attenuation in dB")
	fs.Float64("selectivity", 0, "pick the minimum order for stopband attenuation at selectivity·cutoff (0 keeps -order)")
	fs.Bool("inverse", false, "map the coefficients from z back to s")
	fs.Int("points", 0, "frequency grid size (0 uses the default)")
	fs.Int("samples", 0, "time response length (0 uses the default)")
	fs.String("log-level", defaults[config.KeyLogLevel].(string), "log level: debug, info, warn, error")
	fs.BoolVar(&out.response, "response", false, "print the frequency response")
	fs.BoolVar(&out.nyquist, "nyquist", false, "print the Nyquist locus")
	fs.BoolVar(&out.impulse, "impulse", false, "print the impulse response")
	fs.BoolVar(&out.step, "step", false, "print the step response")
	fs.IntVar(&out.spectrum, "spectrum", 0, "print the FFT magnitude of this many impulse samples (power of two)")
	fs.BoolVar(&out.check, "check", false, "cross-check the closed-form transform against the reference")
	verbose = fs.Bool("v", false, "verbose (debug) logging")

	return configFile, out, verbose, noPreWarp
}

func usage(fs *flag.FlagSet) {
	w := fs.Output()
	fmt.Fprintf(w, "Usage: bilinear [flags]\n\n")
	fmt.Fprintf(w, "Maps an analog transfer function H(s) to H(z) with the bilinear transform\n")
	fmt.Fprintf(w, "and reports pre-warping, poles, zeros and stability.\n\n")
	fmt.Fprintf(w, "Flags:\n")
	fs.PrintDefaults()
	fmt.Fprintf(w, "\nEnvironment variables %s_<KEY> override the config file, e.g. %s_PRECISION=6.\n",
		config.EnvPrefix, config.EnvPrefix)
	fmt.Fprintf(w, "\nExamples:\n")
	fmt.Fprintf(w, "  bilinear -num 1 -den 1,1 -T 0.1\n")
	fmt.Fprintf(w, "  bilinear -family butterworth -order 4 -cutoff 2 -T 0.05\n")
	fmt.Fprintf(w, "  bilinear -family elliptic -ripple 1 -stopband 40 -selectivity 2\n")
	fmt.Fprintf(w, "  bilinear -inverse -num 1,1 -den 21,-19 -T 0.1\n")
}

// explicitFlags returns the flags set on the command line keyed by their
// config key.
func explicitFlags(fs *flag.FlagSet) map[string]any {
	overrides := make(map[string]any)

	fs.Visit(func(f *flag.Flag) {
		key, ok := flagKeys[f.Name]
		if !ok {
			return
		}

		if getter, ok := f.Value.(flag.Getter); ok {
			overrides[key] = getter.Get()
		}
	})

	return overrides
}

func setLogLevel(name string, verbose bool) {
	level, err := zerolog.ParseLevel(name)
	if err != nil || name == "" {
		log.Warn().Str("level", name).Msg("unknown log level, using info")

		level = zerolog.InfoLevel
	}

	if verbose {
		level = zerolog.DebugLevel
	}

	zerolog.SetGlobalLevel(level)
}
