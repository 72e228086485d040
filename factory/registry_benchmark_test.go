package factory_test

import (
	"testing"

	"github.com/sghaida/kompo/factory"
)

/*
   Shared helpers (NOT counted in benchmarks)
*/

var benchReq = factory.Request{Kind: factory.KindTruck, Color: "red"}

func newBenchRegistry() *factory.Registry {
	return factory.NewRegistry()
}

/*
   Benchmarks
*/

func BenchmarkBuild_KnownKind(b *testing.B) {
	r := newBenchRegistry()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = r.Build(benchReq)
	}
}

func BenchmarkBuild_FallbackKind(b *testing.B) {
	r := newBenchRegistry()
	req := factory.Request{Kind: "boat"}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = r.Build(req)
	}
}

func BenchmarkBuildStrict_UnknownKind(b *testing.B) {
	r := newBenchRegistry()
	req := factory.Request{Kind: "boat"}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = r.BuildStrict(req)
	}
}
