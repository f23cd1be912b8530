package thd_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-fourier/measure/thd"
)

func ExampleCalculate() {
	x := make([]float64, 4400)
	for i := range x {
		t := float64(i) / 44100
		x[i] = math.Sin(2*math.Pi*441*t) + 0.1*math.Sin(2*math.Pi*1323*t)
	}

	res, err := thd.Calculate(x, thd.Config{SampleRate: 44100, FundamentalFreq: 441})
	if err != nil {
		panic(err)
	}
	fmt.Printf("THD=%.3f\n", res.THD)

	// Output:
	// THD=0.100
}
