package newton

import "time"

// Renderer owns the pixel buffer, the viewport, and the root and
// palette tables for one fractal, and recomputes the buffer through
// the selected kernel.
//
// Renderer is not safe for concurrent use; it belongs to a single
// render loop. The kernel itself may be concurrent internally.
type Renderer struct {
	pix     *Pixmap
	view    Viewport
	roots   []complex128
	palette []Color
	kernel  Kernel
}

// New creates a renderer for the polynomial z^n - 1. The roots and
// palette are generated once here and never change for the lifetime of
// the renderer.
func New(n int, opts ...Option) (*Renderer, error) {
	roots, palette, err := Generate(n)
	if err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.kernel == nil {
		o.kernel = ScalarKernel{}
	}

	return &Renderer{
		pix:     NewPixmap(o.width, o.height),
		view:    o.viewport,
		roots:   roots,
		palette: palette,
		kernel:  o.kernel,
	}, nil
}

// Recompute overwrites every pixel of the buffer for the current
// viewport. It blocks until the buffer is complete; there is no
// partial-update mode and no cancellation.
func (r *Renderer) Recompute() {
	start := time.Now()
	r.kernel.Compute(r.pix, r.view, r.roots, r.palette)
	Logger().Debug("recompute",
		"kernel", r.kernel.Name(),
		"width", r.pix.Width(),
		"height", r.pix.Height(),
		"roots", len(r.roots),
		"duration", time.Since(start))
}

// Pixmap returns the pixel buffer. The buffer is owned by the renderer
// and overwritten by Recompute.
func (r *Renderer) Pixmap() *Pixmap {
	return r.pix
}

// Viewport returns a pointer to the viewport for in-place zooming and
// panning between recomputes.
func (r *Renderer) Viewport() *Viewport {
	return &r.view
}

// Roots returns the roots of unity the kernel converges against.
func (r *Renderer) Roots() []complex128 {
	return r.roots
}

// Palette returns the per-root display colors.
func (r *Renderer) Palette() []Color {
	return r.palette
}

// Kernel returns the kernel variant in use.
func (r *Renderer) Kernel() Kernel {
	return r.kernel
}
