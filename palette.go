package newton

import (
	"errors"
	"math"
	"math/cmplx"
)

// ErrInvalidRootCount is returned by Generate for a root count below 1.
var ErrInvalidRootCount = errors.New("newton: root count must be at least 1")

// basePalette holds the fixed colors of the first five roots.
var basePalette = [5]Color{
	{R: 255, G: 109, B: 194, A: 255},
	{R: 200, G: 122, B: 255, A: 255},
	{R: 135, G: 60, B: 190, A: 255},
	{R: 112, G: 31, B: 126, A: 255},
	{R: 0, G: 82, B: 172, A: 255},
}

// Generate returns the n-th roots of unity together with one display
// color per root. roots[k] = exp(i·2πk/n), counter-clockwise from
// angle 0, so len(roots) == len(palette) == n. The result depends only
// on n.
//
// Callers normally validate n up front, but Generate defends
// independently: n < 1 returns ErrInvalidRootCount.
func Generate(n int) (roots []complex128, palette []Color, err error) {
	if n < 1 {
		return nil, nil, ErrInvalidRootCount
	}

	roots = make([]complex128, n)
	for k := range roots {
		roots[k] = cmplx.Rect(1, 2*math.Pi*float64(k)/float64(n))
	}

	palette = make([]Color, n)
	copy(palette, basePalette[:min(n, len(basePalette))])

	// Colors beyond the base set come from a running accumulator: each
	// index advances exactly one channel, chosen by index mod 3, and
	// records the mutated accumulator. The carry across indices is
	// deliberate; the accumulator is never reset.
	acc := Color{R: 245, G: 109, B: 194, A: 255}
	for i := len(basePalette); i < n; i++ {
		switch i % 3 {
		case 0:
			acc.R = advanceChannel(acc.R)
		case 1:
			acc.G = advanceChannel(acc.G)
		case 2:
			acc.B = advanceChannel(acc.B)
		}
		palette[i] = acc
	}

	return roots, palette, nil
}

// advanceChannel steps one accumulator channel: +100, wrapped mod 255
// (not 256).
func advanceChannel(c uint8) uint8 {
	return uint8((int(c) + 100) % 255)
}
