package universe

import (
	"testing"
	"time"
)

var (
	testSample = [][]int{{1, 1}, {1, 2}, {2, 1}, {2, 2}, {3, 3}, {4, 2}, {4, 3}, {5, 3}}

	sizes = []struct {
		name string
		size int
	}{
		{"min", MinSize},
		{"default", DefSize},
		{"max", MaxSize},
	}
)

func newBenchOptions(size int) *Options {
	o := DefaultOptions
	o.Size = size
	o.Interval = time.Microsecond
	o.RandSeed = 1
	return &o
}

func Benchmark_Step(b *testing.B) {
	for _, s := range sizes {
		b.Run(s.name, func(b *testing.B) {
			e := NewEngine(newBenchOptions(s.size), nil)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				e.Reset()
				e.Settle(testSample)
				b.StartTimer()
				e.Step()
			}
		})
	}
}

func Benchmark_SeedRandom(b *testing.B) {
	for _, s := range sizes {
		b.Run(s.name, func(b *testing.B) {
			e := NewEngine(newBenchOptions(s.size), nil)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				e.SeedRandom(DefSeedCells)
			}
		})
	}
}

func Benchmark_Driver(b *testing.B) {
	for _, s := range sizes {
		b.Run(s.name, func(b *testing.B) {
			d := NewDriver(newBenchOptions(s.size))
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				d.Step()
			}
			d.Sync()
			b.StopTimer()
			d.Close()
		})
	}
}
