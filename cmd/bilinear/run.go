package main

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"text/tabwriter"

	"github.com/rs/zerolog/log"

	"github.com/cwbudde/algo-bilinear/dsp/filter/bilinear"
	"github.com/cwbudde/algo-bilinear/dsp/filter/digitize"
	"github.com/cwbudde/algo-bilinear/dsp/filter/rational"
	"github.com/cwbudde/algo-bilinear/dsp/filter/response"
	"github.com/cwbudde/algo-bilinear/internal/config"
)

func run(w io.Writer, cfg *config.Config, out outputs) error {
	if cfg.Inverse {
		return runInverse(w, cfg, out)
	}

	opts := []digitize.Option{digitize.WithCriticalFrequency(cfg.CriticalFrequency)}
	if !cfg.PreWarp {
		opts = append(opts, digitize.WithoutPreWarp())
	}

	if cfg.Seed != 0 {
		opts = append(opts, digitize.WithSeed(cfg.Seed))
	}

	req := digitize.Request{
		Numerator:      cfg.Numerator,
		Denominator:    cfg.Denominator,
		Design:         cfg.Design,
		SamplingPeriod: cfg.SamplingPeriod,
	}

	logger := log.Debug().Float64("T", cfg.SamplingPeriod).Bool("prewarp", cfg.PreWarp)
	if cfg.Design != nil {
		logger = logger.Stringer("family", cfg.Design.Family).Int("order", cfg.Design.Order)
	} else {
		logger = logger.Floats64("num", cfg.Numerator).Floats64("den", cfg.Denominator)
	}

	logger.Msg("digitizing")

	res, err := digitize.Run(req, opts...)
	if err != nil {
		return err
	}

	report, err := res.Report(cfg.Precision)
	if err != nil {
		return err
	}

	fmt.Fprint(w, report)

	if !res.Complete {
		log.Warn().
			Int("poles", len(res.Poles)).
			Int("zeros", len(res.Zeros)).
			Int("degree", res.Discrete.Degree()).
			Msg("root search stopped early")
	}

	log.Debug().Bool("stable", res.Stable).Int("poles", len(res.Poles)).Msg("stability analysed")

	if out.check && !res.Designed() {
		if err := checkClosedForm(w, res.PreWarped, cfg); err != nil {
			return err
		}
	}

	return printExtras(w, res.Discrete, cfg, out)
}

func runInverse(w io.Writer, cfg *config.Config, out outputs) error {
	discrete, err := rational.New(cfg.Numerator, cfg.Denominator, rational.VarZ)
	if err != nil {
		return err
	}

	analogTF, err := bilinear.Inverse(discrete, cfg.SamplingPeriod)
	if err != nil {
		return err
	}

	log.Debug().Float64("T", cfg.SamplingPeriod).Msg("inverse mapping")

	discreteText, err := discrete.Render(cfg.Precision)
	if err != nil {
		return err
	}

	analogText, _ := analogTF.Render(cfg.Precision)
	num, _ := analogTF.FormatNumerator(cfg.Precision)
	den, _ := analogTF.FormatDenominator(cfg.Precision)

	fmt.Fprintf(w, "Discrete transfer function:\n  %s\n\n", discreteText)
	fmt.Fprintf(w, "Analog transfer function:\n  %s\n\n", analogText)
	fmt.Fprintf(w, "Numerator:   %s\n", num)
	fmt.Fprintf(w, "Denominator: %s\n", den)

	if out.response {
		r := response.Analog(analogTF, 0, cfg.Points)
		printFrequencyResponse(w, "Analog frequency response (rad/s)", r, cfg.Precision)
	}

	return nil
}

func checkClosedForm(w io.Writer, tf rational.TransferFunction, cfg *config.Config) error {
	ref, err := bilinear.Transform(tf, cfg.SamplingPeriod)
	if err != nil {
		return err
	}

	fast, err := bilinear.TransformClosedForm(tf, cfg.SamplingPeriod)
	if err != nil {
		return err
	}

	dev := math.Max(
		maxDeviation(ref.Numerator(), fast.Numerator()),
		maxDeviation(ref.Denominator(), fast.Denominator()),
	)

	log.Debug().Float64("deviation", dev).Msg("closed-form check")
	fmt.Fprintf(w, "\nClosed-form check: max deviation %.3g\n", dev)

	return nil
}

func maxDeviation(a, b []float64) float64 {
	if len(a) != len(b) {
		return math.Inf(1)
	}

	dev := 0.0
	for i := range a {
		dev = math.Max(dev, math.Abs(a[i]-b[i]))
	}

	return dev
}

func printExtras(w io.Writer, tf rational.TransferFunction, cfg *config.Config, out outputs) error {
	p := cfg.Precision

	if out.response {
		printFrequencyResponse(w, "Frequency response (rad/sample)", response.Digital(tf, cfg.Points), p)
	}

	if out.nyquist {
		l := response.Nyquist(tf, cfg.Points)

		fmt.Fprintf(w, "\nNyquist locus:\n")

		tw := tabwriter.NewWriter(w, 0, 2, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintf(tw, "omega\tre\tim\t\n")

		for i := range l.Omega {
			fmt.Fprintf(tw, "%s\t%s\t%s\t\n", ff(l.Omega[i], p), ff(l.Real[i], p), ff(l.Imag[i], p))
		}

		tw.Flush()
	}

	if out.impulse {
		h, err := response.Impulse(tf, cfg.Samples)
		if err != nil {
			return err
		}

		printSequence(w, "Impulse response", h, p)
	}

	if out.step {
		s, err := response.Step(tf, cfg.Samples)
		if err != nil {
			return err
		}

		printSequence(w, "Step response", s, p)
	}

	if out.spectrum > 0 {
		mag, err := response.Spectrum(tf, out.spectrum)
		if err != nil {
			return err
		}

		fmt.Fprintf(w, "\nSpectrum (%d-point FFT of the impulse response):\n", out.spectrum)

		tw := tabwriter.NewWriter(w, 0, 2, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintf(tw, "bin\tomega\t|H|\t\n")

		for k, m := range mag {
			omega := 2 * math.Pi * float64(k) / float64(out.spectrum)
			fmt.Fprintf(tw, "%d\t%s\t%s\t\n", k, ff(omega, p), ff(m, p))
		}

		tw.Flush()
	}

	return nil
}

func printFrequencyResponse(w io.Writer, title string, r response.FrequencyResponse, p int) {
	fmt.Fprintf(w, "\n%s:\n", title)

	tw := tabwriter.NewWriter(w, 0, 2, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "omega\tmagnitude dB\tphase deg\tgroup delay\t\n")

	for i := range r.Omega {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t\n",
			ff(r.Omega[i], p), ff(r.MagnitudeDB[i], p), ff(r.PhaseDeg[i], p), ff(r.GroupDelay[i], p))
	}

	tw.Flush()
}

func printSequence(w io.Writer, title string, x []float64, p int) {
	fmt.Fprintf(w, "\n%s:\n", title)

	tw := tabwriter.NewWriter(w, 0, 2, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "n\tvalue\t\n")

	for i, v := range x {
		fmt.Fprintf(tw, "%d\t%s\t\n", i, ff(v, p))
	}

	tw.Flush()
}

func ff(v float64, precision int) string {
	return strconv.FormatFloat(v, 'f', precision, 64)
}
