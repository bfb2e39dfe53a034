package newton

import (
	"math"
	"testing"
)

func TestDefaultViewport(t *testing.T) {
	v := DefaultViewport()
	want := Viewport{LowerX: -2, UpperX: 2, LowerY: -2, UpperY: 2}
	if v != want {
		t.Errorf("DefaultViewport() = %+v, want %+v", v, want)
	}
}

func TestViewport_ZoomAboutCenter(t *testing.T) {
	v := Viewport{LowerX: -2, UpperX: 2, LowerY: -2, UpperY: 2}
	v.Zoom(0.5)

	want := Viewport{LowerX: -1, UpperX: 1, LowerY: -1, UpperY: 1}
	const tol = 1e-12
	if math.Abs(v.LowerX-want.LowerX) > tol || math.Abs(v.UpperX-want.UpperX) > tol ||
		math.Abs(v.LowerY-want.LowerY) > tol || math.Abs(v.UpperY-want.UpperY) > tol {
		t.Errorf("after Zoom(0.5): %+v, want %+v", v, want)
	}
}

func TestViewport_ZoomKeepsOffCenter(t *testing.T) {
	// An off-center region must zoom about its own center.
	v := Viewport{LowerX: 1, UpperX: 3, LowerY: -4, UpperY: 0}
	v.Zoom(0.5)

	const tol = 1e-12
	if math.Abs(v.LowerX-1.5) > tol || math.Abs(v.UpperX-2.5) > tol {
		t.Errorf("x bounds = [%v, %v], want [1.5, 2.5]", v.LowerX, v.UpperX)
	}
	if math.Abs(v.LowerY+3) > tol || math.Abs(v.UpperY+1) > tol {
		t.Errorf("y bounds = [%v, %v], want [-3, -1]", v.LowerY, v.UpperY)
	}
}

func TestViewport_ZoomRoundtrip(t *testing.T) {
	v := DefaultViewport()
	v.Zoom(0.9)
	v.Zoom(1 / 0.9)

	want := DefaultViewport()
	const tol = 1e-12
	if math.Abs(v.LowerX-want.LowerX) > tol || math.Abs(v.UpperX-want.UpperX) > tol ||
		math.Abs(v.LowerY-want.LowerY) > tol || math.Abs(v.UpperY-want.UpperY) > tol {
		t.Errorf("zoom roundtrip drifted: %+v, want %+v", v, want)
	}
}

func TestViewport_OrderingInvariant(t *testing.T) {
	// Any sequence of positive zooms and pans keeps lower < upper.
	v := DefaultViewport()
	steps := []func(){
		func() { v.Zoom(0.9) },
		func() { v.Pan(0.3, -0.7) },
		func() { v.Zoom(1.1) },
		func() { v.Zoom(0.001) },
		func() { v.Pan(-12, 40) },
		func() { v.Zoom(1000) },
		func() { v.Zoom(0.9) },
	}
	for i, step := range steps {
		step()
		if v.LowerX >= v.UpperX || v.LowerY >= v.UpperY {
			t.Fatalf("after step %d: ordering violated: %+v", i, v)
		}
	}
}

func TestViewport_ZoomInvalidFactorPanics(t *testing.T) {
	for _, factor := range []float64{0, -0.5, -1} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Zoom(%v) did not panic", factor)
				}
			}()
			v := DefaultViewport()
			v.Zoom(factor)
		}()
	}
}

func TestViewport_Pan(t *testing.T) {
	v := DefaultViewport()
	v.Pan(0.5, -1.5)

	want := Viewport{LowerX: -1.5, UpperX: 2.5, LowerY: -3.5, UpperY: 0.5}
	if v != want {
		t.Errorf("after Pan(0.5, -1.5): %+v, want %+v", v, want)
	}

	// Range sizes unchanged.
	if got := v.UpperX - v.LowerX; got != 4 {
		t.Errorf("x range = %v, want 4", got)
	}
	if got := v.UpperY - v.LowerY; got != 4 {
		t.Errorf("y range = %v, want 4", got)
	}
}

func TestViewport_At(t *testing.T) {
	v := DefaultViewport()

	tests := []struct {
		name string
		x, y int
		want complex128
	}{
		{"top-left pixel hits lower bounds", 0, 0, complex(-2, -2)},
		{"grid center maps to origin", 256, 256, complex(0, 0)},
		{"quarter point", 128, 384, complex(-1, 1)},
	}

	const tol = 1e-12
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := v.At(tt.x, tt.y, 512, 512)
			if math.Abs(real(got)-real(tt.want)) > tol || math.Abs(imag(got)-imag(tt.want)) > tol {
				t.Errorf("At(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestViewport_AtNoHalfPixelOffset(t *testing.T) {
	// The sample grid is anchored at pixel corners, not centers:
	// pixel x contributes exactly x/width of the range.
	v := Viewport{LowerX: 0, UpperX: 10, LowerY: 0, UpperY: 10}
	got := v.At(1, 0, 10, 10)
	if real(got) != 1 {
		t.Errorf("At(1, 0) real = %v, want 1 (no centering offset)", real(got))
	}
}
