package tvreg_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/proxman/manifold"
	"github.com/katalvlaran/proxman/tvreg"
)

// benchmarkDenoise runs a fixed number of sweeps over a synthetic
// sawtooth grid of the given shape.
func benchmarkDenoise(b *testing.B, shape []int, sweeps int) {
	e, err := manifold.NewEuclidean(1)
	if err != nil {
		b.Fatalf("manifold: %v", err)
	}
	n := 1
	for _, s := range shape {
		n *= s
	}
	points := make([]manifold.Point, n)
	for i := range points {
		points[i] = manifold.Point{math.Abs(float64(i%7 - 3))} // predictable sawtooth
	}
	f, err := tvreg.NewGrid(e, shape, points)
	if err != nil {
		b.Fatalf("grid: %v", err)
	}

	opts := tvreg.DefaultOptions()
	opts.MaxIterations = sweeps
	opts.MinimalChange = 0

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := tvreg.Denoise(e, f, &opts); err != nil {
			b.Fatalf("denoise failed: %v", err)
		}
	}
}

// BenchmarkDenoise_Signal1D benchmarks 10 sweeps over a 4096-cell signal.
func BenchmarkDenoise_Signal1D(b *testing.B) {
	benchmarkDenoise(b, []int{4096}, 10)
}

// BenchmarkDenoise_Image2D benchmarks 10 sweeps over a 64×64 image.
func BenchmarkDenoise_Image2D(b *testing.B) {
	benchmarkDenoise(b, []int{64, 64}, 10)
}

// BenchmarkDenoise_Volume3D benchmarks 5 sweeps over a 16³ volume.
func BenchmarkDenoise_Volume3D(b *testing.B) {
	benchmarkDenoise(b, []int{16, 16, 16}, 5)
}
