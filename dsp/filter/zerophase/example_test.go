package zerophase_test

import (
	"fmt"

	"github.com/cwbudde/algo-biosig/dsp/filter/design"
	"github.com/cwbudde/algo-biosig/dsp/filter/zerophase"
)

func ExampleFiltFilt() {
	c, err := design.ButterworthLowpass(1, 0.2)
	if err != nil {
		panic(err)
	}

	// A ramp comes back almost unchanged: no lag, and the odd extension
	// continues the slope past both ends.
	y, err := zerophase.FiltFilt(c, []float64{1, 2, 3, 4, 5, 6, 7, 8})
	if err != nil {
		panic(err)
	}

	for _, v := range y {
		fmt.Printf("%.3f ", v)
	}
	fmt.Println()
	// Output: 1.013 2.006 3.003 4.000 4.997 5.993 6.987 7.973
}
