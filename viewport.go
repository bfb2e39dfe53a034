package newton

// Viewport is the rectangular region of the complex plane currently
// mapped onto the pixel grid. The bounds always satisfy
// LowerX < UpperX and LowerY < UpperY; every transform preserves the
// ordering.
//
// A Viewport is owned by a single render loop. The kernels only read
// it (by value), so a recompute never observes a partial transform.
type Viewport struct {
	LowerX, UpperX float64
	LowerY, UpperY float64
}

// DefaultViewport returns the startup region [-2,2] x [-2,2].
func DefaultViewport() Viewport {
	return Viewport{LowerX: -2, UpperX: 2, LowerY: -2, UpperY: 2}
}

// Zoom rescales both axis ranges about their centers. Factors below 1
// zoom in, factors above 1 zoom out.
//
// The factor must be positive. Zoom panics otherwise instead of
// silently corrupting the bounds ordering.
func (v *Viewport) Zoom(factor float64) {
	if factor <= 0 {
		panic("newton: zoom factor must be positive")
	}

	xRange := v.UpperX - v.LowerX
	xCenter := v.LowerX + xRange/2
	v.LowerX = xCenter - xRange*factor/2
	v.UpperX = xCenter + xRange*factor/2

	yRange := v.UpperY - v.LowerY
	yCenter := v.LowerY + yRange/2
	v.LowerY = yCenter - yRange*factor/2
	v.UpperY = yCenter + yRange*factor/2
}

// Pan translates the region by dx along the real axis and dy along the
// imaginary axis. The range sizes are unchanged.
func (v *Viewport) Pan(dx, dy float64) {
	v.LowerX += dx
	v.UpperX += dx
	v.LowerY += dy
	v.UpperY += dy
}

// At maps pixel (x, y) of a width-by-height grid to its sample point in
// the complex plane. Pixel (0, 0) maps to the lower bounds exactly;
// there is no half-pixel centering offset.
func (v Viewport) At(x, y, width, height int) complex128 {
	re := v.LowerX + float64(x)/float64(width)*(v.UpperX-v.LowerX)
	im := v.LowerY + float64(y)/float64(height)*(v.UpperY-v.LowerY)
	return complex(re, im)
}
