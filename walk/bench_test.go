package walk_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/kbtool/builder"
	"github.com/katalvlaran/kbtool/core"
	"github.com/katalvlaran/kbtool/walk"
)

// BenchmarkSamplePath measures 4-step walks on a 1000-node sparse graph.
func BenchmarkSamplePath(b *testing.B) {
	ts, err := builder.Build(
		[]builder.BuilderOption{builder.WithSeed(1), builder.WithRelations("a", "b", "c")},
		builder.RandomSparse(1000, 0.005),
	)
	if err != nil {
		b.Fatal(err)
	}
	g := core.FromTriples(ts)
	rng := rand.New(rand.NewSource(2))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := walk.SamplePath(g, 4, rng); err != nil {
			b.Fatal(err)
		}
	}
}
