package filter

import "math/rand"

// Sample draws up to count elements uniformly at random from candidates,
// with replacement: the same candidate may appear more than once when count
// exceeds one. When fewer candidates exist than requested, the draw size
// degrades to the candidate count; an empty input yields an empty result.
// A nil rng falls back to the shared package-level source.
func Sample[T any](candidates []T, count int, rng *rand.Rand) []T {
	if count > len(candidates) {
		count = len(candidates)
	}
	if count <= 0 {
		return []T{}
	}

	intn := rand.Intn
	if rng != nil {
		intn = rng.Intn
	}

	picked := make([]T, 0, count)
	for i := 0; i < count; i++ {
		picked = append(picked, candidates[intn(len(candidates))])
	}
	return picked
}
