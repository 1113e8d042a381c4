package fir_test

import (
	"fmt"

	"github.com/cwbudde/filterview/dsp/filter/fir"
)

func ExampleDesignRaisedCosine() {
	k, _ := fir.DesignRaisedCosine(4, 0)
	c := k.Coefficients()
	fmt.Printf("%.2f %.2f %.2f %.2f\n", c[0], c[1], c[2], c[3])
	// Output:
	// 0.25 0.25 0.25 0.25
}

func ExampleKernel_Apply() {
	k, _ := fir.DesignRaisedCosine(3, 0)
	history := []float64{0, 3, 6}
	y, _ := k.Apply(history)
	fmt.Printf("%.1f\n", y)
	// Output:
	// 3.0
}

func ExampleDesign() {
	spec := fir.LowPass(9, 0.2)
	k, _ := fir.Design(spec)
	fmt.Println(spec.Family, k.Len())
	// Output:
	// low-pass 9
}
