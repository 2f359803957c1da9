// Command analyze-translation prints coupling-magnitude tables for the
// axial translation operator over a sweep of non-dimensional wavenumbers.
// Useful for inspecting how strongly translation mixes ambisonic orders
// at different frequencies and distances.
package main

import (
	"fmt"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"

	ambisonics "github.com/tphakala/go-ambisonics"
)

const (
	// Analysis parameters
	analysisOrder = 3

	// Display limits
	magnitudeFloor = 1e-12 // below this a coupling is printed as zero
)

// kdSweep spans the near field (kd << 1) to several wavelengths of
// displacement.
var kdSweep = []float64{0, 0.1, 0.5, 1.0, 2.5, 5.0, 10.0}

func main() {
	fmt.Println("=== Axial Translation Operator: Order Coupling ===")
	fmt.Printf("Ambisonics order: %d (%d channels)\n\n",
		analysisOrder, ambisonics.ChannelCount(analysisOrder))

	matrices, err := ambisonics.TranslationMatrices(kdSweep, analysisOrder)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	for s, kd := range kdSweep {
		fmt.Printf("kd = %.2f\n", kd)
		printOrderCoupling(matrices[s])
		fmt.Println()
	}

	fmt.Println("Rows: receiver order, columns: source order.")
	fmt.Println("Each cell is the largest coupling magnitude between the two orders.")
}

// printOrderCoupling prints, per (receiver order, source order) pair, the
// maximum entry magnitude of the corresponding matrix block.
func printOrderCoupling(m *mat.CDense) {
	fmt.Printf("      ")
	for n := 0; n <= analysisOrder; n++ {
		fmt.Printf("   n=%d   ", n)
	}
	fmt.Println()

	for ni := 0; ni <= analysisOrder; ni++ {
		fmt.Printf("  n=%d ", ni)
		for nj := 0; nj <= analysisOrder; nj++ {
			fmt.Printf(" %7.4f ", blockMax(m, ni, nj))
		}
		fmt.Println()
	}
}

// blockMax returns the largest magnitude within the (ni, nj) order block.
func blockMax(m *mat.CDense, ni, nj int) float64 {
	var maxMag float64
	for i := ni * ni; i < (ni+1)*(ni+1); i++ {
		for j := nj * nj; j < (nj+1)*(nj+1); j++ {
			if mag := cmplx.Abs(m.At(i, j)); mag > maxMag {
				maxMag = mag
			}
		}
	}
	if maxMag < magnitudeFloor {
		return 0
	}
	return maxMag
}
