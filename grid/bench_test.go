package grid_test

import (
	"testing"

	"github.com/katalvlaran/lvmaze/grid"
)

func BenchmarkResetSearchState(b *testing.B) {
	g, _ := grid.New(250, 400)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.ResetSearchState()
	}
}

func BenchmarkOpenRegions(b *testing.B) {
	g, _ := grid.New(250, 400)
	for c := range g.Cells() {
		if (c.Row+c.Col)%7 == 0 {
			c.Kind = grid.Wall
		}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.OpenRegions()
	}
}
