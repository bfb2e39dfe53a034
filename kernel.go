package newton

import "math/cmplx"

const (
	// maxIterations caps the Newton iteration per pixel.
	maxIterations = 42

	// tolerance bounds both the root-hit distance and the
	// derivative-stall test.
	tolerance = 1e-6
)

// Kernel fills a pixel buffer for one viewport. Implementations must
// be pure with respect to their inputs: identical (viewport, roots,
// palette) inputs produce byte-identical buffers. The renderer relies
// on this when a kernel variant is swapped in.
type Kernel interface {
	// Name identifies the kernel variant, e.g. "scalar" or "parallel".
	Name() string

	// Compute overwrites every pixel of pix with the color of the
	// sample point the viewport maps it to.
	Compute(pix *Pixmap, view Viewport, roots []complex128, palette []Color)
}

// ScalarKernel is the reference single-threaded kernel. Other kernel
// variants are verified against its output.
type ScalarKernel struct{}

// Name implements Kernel.
func (ScalarKernel) Name() string { return "scalar" }

// Compute implements Kernel.
func (ScalarKernel) Compute(pix *Pixmap, view Viewport, roots []complex128, palette []Color) {
	computeRows(pix, view, roots, palette, 0, pix.Height())
}

// computeRows fills the pixel rows [yMin, yMax). Every kernel funnels
// through here, so variant outputs match byte for byte.
func computeRows(pix *Pixmap, view Viewport, roots []complex128, palette []Color, yMin, yMax int) {
	w, h := pix.Width(), pix.Height()
	for y := yMin; y < yMax; y++ {
		for x := 0; x < w; x++ {
			pix.SetPixel(x, y, colorAt(view.At(x, y, w, h), roots, palette))
		}
	}
}

// colorAt runs Newton's method from the starting point z and resolves
// the display color: the converged root's palette entry with a
// brightness shift, or Unconverged.
func colorAt(z complex128, roots []complex128, palette []Color) Color {
	k, _, ok := converge(z, roots)
	if !ok {
		return Unconverged
	}
	// The brightness factor derives from the root index, not the
	// iteration count; the count is tracked but unused. Changing this
	// changes every rendered image.
	return palette[k].Brightness(-2*float64(k)/maxIterations + 0.5)
}

// converge iterates z <- z - f(z)/f'(z) for f(z) = z^n - 1 until z
// lands within tolerance of a root, the derivative stalls near a
// critical point, or the iteration cap runs out. On success it reports
// the root index and the zero-based iteration of the hit.
func converge(z complex128, roots []complex128) (root, iteration int, ok bool) {
	n := len(roots)
	for i := 0; i < maxIterations; i++ {
		deriv := derivative(z, n)
		if cmplx.Abs(deriv) <= tolerance {
			break
		}
		z -= function(z, n) / deriv
		for k, r := range roots {
			if cmplx.Abs(z-r) < tolerance {
				return k, i, true
			}
		}
	}
	return 0, 0, false
}

// function evaluates f(z) = z^n - 1.
func function(z complex128, n int) complex128 {
	return cmplx.Pow(z, complex(float64(n), 0)) - 1
}

// derivative evaluates f'(z) = n·z^(n-1).
func derivative(z complex128, n int) complex128 {
	return complex(float64(n), 0) * cmplx.Pow(z, complex(float64(n-1), 0))
}
