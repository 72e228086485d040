package single_test

import (
	"testing"

	"github.com/sghaida/kompo/single"
)

/*
   Shared helpers (NOT counted in benchmarks)
*/

type benchHandle struct {
	n int
}

func newBenchLazy() *single.Lazy[benchHandle] {
	return single.NewLazy(func() *benchHandle { return &benchHandle{n: 1} })
}

/*
   Benchmarks
*/

func BenchmarkLazy_GetHot(b *testing.B) {
	l := newBenchLazy()
	_ = l.Get()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = l.Get()
	}
}

func BenchmarkLazy_GetParallel(b *testing.B) {
	l := newBenchLazy()

	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = l.Get()
		}
	})
}
