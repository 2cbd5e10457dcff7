package areastats

import (
	"math/rand/v2"
	"testing"
)

// randomDistributions returns count reproducible area samples of varying
// size and spread, including heavy ties.
func randomDistributions(t *testing.T, count int) [][]float64 {
	t.Helper()
	rng := rand.New(rand.NewPCG(7, 11))
	out := make([][]float64, 0, count)
	for i := 0; i < count; i++ {
		n := 1 + rng.IntN(60)
		areas := make([]float64, n)
		for j := range areas {
			switch i % 3 {
			case 0:
				areas[j] = rng.Float64() * 1000
			case 1:
				areas[j] = float64(rng.IntN(5)) // many ties
			default:
				areas[j] = rng.ExpFloat64() * 250
			}
		}
		out = append(out, areas)
	}
	return out
}
