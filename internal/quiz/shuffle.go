package quiz

import "math/rand"

// Source supplies uniform random integers in [0, n).
type Source interface {
	Intn(n int) int
}

type globalSource struct{}

func (globalSource) Intn(n int) int { return rand.Intn(n) }

// DefaultSource draws from the process-wide math/rand generator, which is safe for concurrent use.
var DefaultSource Source = globalSource{}

// permute returns a shuffled copy of items using Fisher-Yates.
func permute[T any](items []T, src Source) []T {
	out := make([]T, len(items))
	copy(out, items)
	for i := len(out) - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
