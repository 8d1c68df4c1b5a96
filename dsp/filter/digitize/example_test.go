package digitize_test

import (
	"fmt"

	"github.com/cwbudde/algo-bilinear/dsp/filter/digitize"
)

func ExampleRun() {
	res, err := digitize.Run(digitize.Request{
		Numerator:      []float64{1},
		Denominator:    []float64{1, 1},
		SamplingPeriod: 0.1,
	}, digitize.WithoutPreWarp(), digitize.WithSeed(1))
	if err != nil {
		panic(err)
	}

	fmt.Println(res.Discrete)
	fmt.Println(res.Verdict())
	// Output:
	// H(z) = (z + 1.0000) / (21.0000z - 19.0000)
	// Stable
}
