package ambisonics

import (
	"testing"
)

func benchmarkMatrices(b *testing.B, maxOrder int, parallel bool) {
	kd := make([]float64, 256)
	for i := range kd {
		kd[i] = 0.02 * float64(i+1)
	}

	tr, err := New(&Config{MaxOrder: maxOrder, EnableParallel: parallel})
	if err != nil {
		b.Fatalf("Failed to create translator: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tr.Matrices(kd); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMatricesOrder3Sequential(b *testing.B) { benchmarkMatrices(b, 3, false) }
func BenchmarkMatricesOrder3Parallel(b *testing.B)   { benchmarkMatrices(b, 3, true) }
func BenchmarkMatricesOrder5Sequential(b *testing.B) { benchmarkMatrices(b, 5, false) }
func BenchmarkMatricesOrder5Parallel(b *testing.B)   { benchmarkMatrices(b, 5, true) }
