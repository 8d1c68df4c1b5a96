// Package config layers the bilinear command's settings: built-in
// defaults, an optional config file, BILINEAR_* environment variables and
// finally explicitly set command-line flags.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/cwbudde/algo-bilinear/dsp/filter/design/analog"
	"github.com/cwbudde/algo-bilinear/dsp/filter/rational"
)

// EnvPrefix prefixes every environment variable, e.g. BILINEAR_PRECISION.
const EnvPrefix = "BILINEAR"

// Keys shared by the config file, the environment and the flag overlay.
const (
	KeySamplingPeriod    = "sampling_period"
	KeyPrecision         = "precision"
	KeyCriticalFrequency = "critical_frequency"
	KeyPreWarp           = "prewarp"
	KeySeed              = "seed"
	KeyNumerator         = "numerator"
	KeyDenominator       = "denominator"
	KeyFamily            = "family"
	KeyOrder             = "order"
	KeyCutoff            = "cutoff"
	KeyRipple            = "ripple"
	KeyStopband          = "stopband"
	KeySelectivity       = "selectivity"
	KeyInverse           = "inverse"
	KeyPoints            = "points"
	KeySamples           = "samples"
	KeyLogLevel          = "log_level"
)

// Config holds all settings of the command.
type Config struct {
	SamplingPeriod    float64
	Precision         int
	CriticalFrequency float64
	PreWarp           bool
	// Seed fixes the root-finding start points; zero draws a fresh seed.
	Seed uint64

	Numerator   []float64
	Denominator []float64

	// Design is set when a filter family was requested.
	Design *analog.Spec

	// Inverse maps the coefficients from z back to s instead.
	Inverse bool

	Points   int
	Samples  int
	LogLevel string
}

// Defaults returns the built-in defaults.
func Defaults() map[string]any {
	return map[string]any{
		KeySamplingPeriod:    0.1,
		KeyPrecision:         rational.DefaultPrecision,
		KeyCriticalFrequency: 1.0,
		KeyPreWarp:           true,
		KeySeed:              0,
		KeyNumerator:         "1",
		KeyDenominator:       "1, 1",
		KeyFamily:            "",
		KeyOrder:             2,
		KeyCutoff:            1.0,
		KeyRipple:            1.0,
		KeyStopband:          40.0,
		KeySelectivity:       0.0,
		KeyInverse:           false,
		KeyPoints:            0,
		KeySamples:           0,
		KeyLogLevel:          "info",
	}
}

// Load resolves the configuration. file may be empty; a named file that
// cannot be read is an error. overrides holds explicitly set flags and
// wins over every other source.
func Load(file string, overrides map[string]any) (*Config, error) {
	v := viper.New()

	for key, value := range Defaults() {
		v.SetDefault(key, value)
	}

	if file != "" {
		v.SetConfigFile(file)

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", file, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	for key, value := range overrides {
		v.Set(key, value)
	}

	return decode(v)
}

func decode(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		SamplingPeriod:    v.GetFloat64(KeySamplingPeriod),
		Precision:         v.GetInt(KeyPrecision),
		CriticalFrequency: v.GetFloat64(KeyCriticalFrequency),
		PreWarp:           v.GetBool(KeyPreWarp),
		Seed:              v.GetUint64(KeySeed),
		Inverse:           v.GetBool(KeyInverse),
		Points:            v.GetInt(KeyPoints),
		Samples:           v.GetInt(KeySamples),
		LogLevel:          v.GetString(KeyLogLevel),
	}

	var err error

	cfg.Numerator, err = ParseCoefficients(strings.Join(v.GetStringSlice(KeyNumerator), ","))
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", KeyNumerator, err)
	}

	cfg.Denominator, err = ParseCoefficients(strings.Join(v.GetStringSlice(KeyDenominator), ","))
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", KeyDenominator, err)
	}

	if name := strings.TrimSpace(v.GetString(KeyFamily)); name != "" && !strings.EqualFold(name, "manual") {
		family, err := analog.ParseFamily(name)
		if err != nil {
			return nil, fmt.Errorf("config: %s: %w", KeyFamily, err)
		}

		cfg.Design = &analog.Spec{
			Family:              family,
			Order:               v.GetInt(KeyOrder),
			Cutoff:              v.GetFloat64(KeyCutoff),
			Ripple:              v.GetFloat64(KeyRipple),
			StopbandAttenuation: v.GetFloat64(KeyStopband),
		}

		// A selectivity replaces the order with the smallest one meeting
		// ripple and stopband at ω_stop = selectivity·cutoff.
		if sel := v.GetFloat64(KeySelectivity); sel != 0 {
			order, err := analog.MinimumOrder(family, analog.Requirement{
				PassbandRipple:      cfg.Design.Ripple,
				StopbandAttenuation: cfg.Design.StopbandAttenuation,
				Selectivity:         sel,
			})
			if err != nil {
				return nil, fmt.Errorf("config: %s: %w", KeySelectivity, err)
			}

			cfg.Design.Order = order
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the settings that are not validated downstream.
func (c *Config) Validate() error {
	var errs []error

	if err := rational.ValidatePrecision(c.Precision); err != nil {
		errs = append(errs, err)
	}

	if c.Inverse && c.Design != nil {
		errs = append(errs, rational.Invalidf(KeyInverse, "cannot be combined with a filter family"))
	}

	if c.Points < 0 {
		errs = append(errs, rational.Invalidf(KeyPoints, "%d must not be negative", c.Points))
	}

	if c.Samples < 0 {
		errs = append(errs, rational.Invalidf(KeySamples, "%d must not be negative", c.Samples))
	}

	return errors.Join(errs...)
}

// ParseCoefficients reads a list of numbers separated by commas or
// whitespace, e.g. "1, 0.5 -2".
func ParseCoefficients(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\t' || r == '\n'
	})

	if len(fields) == 0 {
		return nil, rational.Invalidf("coefficients", "no values in %q", s)
	}

	out := make([]float64, len(fields))

	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, rational.Invalidf("coefficients", "value %d %q is not a number", i, f)
		}

		out[i] = v
	}

	return out, nil
}
