package translation

import (
	"testing"
)

// Benchmarks for the recurrence kernel at typical ambisonics orders.

func benchmarkMatrix(b *testing.B, maxDegree int) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Matrix(2.5, maxDegree)
	}
}

func BenchmarkMatrixOrder1(b *testing.B) { benchmarkMatrix(b, 1) }
func BenchmarkMatrixOrder3(b *testing.B) { benchmarkMatrix(b, 3) }
func BenchmarkMatrixOrder5(b *testing.B) { benchmarkMatrix(b, 5) }
func BenchmarkMatrixOrder7(b *testing.B) { benchmarkMatrix(b, 7) }
