package bramble

import "math/rand/v2"

// Source supplies the random draws consumed while growing a tree.
// IntN must return a uniform int in [0, n), matching [rand.Rand.IntN], so a
// seeded *rand.Rand satisfies Source directly. Tests inject deterministic
// stubs.
type Source interface {
	IntN(n int) int
}

// globalSource adapts the package-global math/rand/v2 generator.
type globalSource struct{}

func (globalSource) IntN(n int) int {
	return rand.IntN(n)
}

// NewSource returns a seeded Source for reproducible trees.
func NewSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed))
}

// The draws below define the distributions branch generation is built on.
// Length scales are ints in [100, 1500), rotation seeds ints in [1, 360],
// rotation change magnitudes ints in [1, 4] with a uniform sign.

// randomLengthScale draws the length scale divided by the branch level.
func randomLengthScale(src Source) float64 {
	return float64(100 + src.IntN(1400))
}

// randomRotation draws the initial rotation in degrees.
func randomRotation(src Source) float64 {
	return float64(1 + src.IntN(360))
}

// randomRotationChange draws the signed per-tick rotation delta in degrees.
func randomRotationChange(src Source) float64 {
	change := float64(1 + src.IntN(4))
	if src.IntN(2) == 1 {
		change = -change
	}
	return change
}
