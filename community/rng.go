package community

import "math/rand"

// defaultRNGSeed is used whenever a caller asks for a deterministic stream
// without supplying its own seed.
const defaultRNGSeed int64 = 1

// NewRNG returns a deterministic *rand.Rand. seed==0 selects
// defaultRNGSeed; any other value is used verbatim. Random and
// LabelPropagation both take an explicit *rand.Rand rather than reaching
// for a package-global one, so a caller can reproduce a run exactly by
// reusing the same source.
func NewRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(seed))
}

// shuffleInts performs an in-place Fisher-Yates shuffle, matching the
// original C shuff()'s index range exactly: for i counting down from
// len(a)-1 to 1, the swap partner j is drawn from 0..i-1 (not 0..i), so
// index i is never swapped with itself by construction rather than by the
// usual inclusive draw.
func shuffleInts(a []int, rng *rand.Rand) {
	for i := len(a) - 1; i > 0; i-- {
		j := rng.Intn(i)
		a[i], a[j] = a[j], a[i]
	}
}
