package newton

import (
	"image/color"
	"testing"
)

// Verify at compile time that Color implements color.Color.
var _ color.Color = Color{}

func TestColor_RGBAInterface(t *testing.T) {
	tests := []struct {
		name                       string
		c                          Color
		wantR, wantG, wantB, wantA uint32
	}{
		{
			name:  "opaque black",
			c:     Color{0, 0, 0, 255},
			wantR: 0, wantG: 0, wantB: 0, wantA: 65535,
		},
		{
			name:  "opaque white",
			c:     Color{255, 255, 255, 255},
			wantR: 65535, wantG: 65535, wantB: 65535, wantA: 65535,
		},
		{
			name:  "fallback green",
			c:     Unconverged,
			wantR: 0, wantG: 100<<8 | 100, wantB: 0, wantA: 65535,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.c.RGBA()
			if r != tt.wantR || g != tt.wantG || b != tt.wantB || a != tt.wantA {
				t.Errorf("RGBA() = (%d, %d, %d, %d), want (%d, %d, %d, %d)",
					r, g, b, a, tt.wantR, tt.wantG, tt.wantB, tt.wantA)
			}
		})
	}
}

func TestColor_Brightness(t *testing.T) {
	base := Color{100, 200, 50, 255}

	tests := []struct {
		name   string
		c      Color
		factor float64
		want   Color
	}{
		{
			name: "zero leaves color unchanged",
			c:    base, factor: 0,
			want: base,
		},
		{
			name: "negative scales toward black",
			c:    base, factor: -0.5,
			want: Color{50, 100, 25, 255},
		},
		{
			name: "minus one is black",
			c:    base, factor: -1,
			want: Color{0, 0, 0, 255},
		},
		{
			name: "positive interpolates toward white",
			c:    Color{0, 100, 200, 255}, factor: 0.5,
			want: Color{127, 177, 227, 255},
		},
		{
			name: "one is white",
			c:    base, factor: 1,
			want: Color{255, 255, 255, 255},
		},
		{
			name: "factor below minus one clamps",
			c:    base, factor: -2.5,
			want: Color{0, 0, 0, 255},
		},
		{
			name: "factor above one clamps",
			c:    base, factor: 3,
			want: Color{255, 255, 255, 255},
		},
		{
			name: "alpha preserved",
			c:    Color{10, 20, 30, 128}, factor: -1,
			want: Color{0, 0, 0, 128},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Brightness(tt.factor); got != tt.want {
				t.Errorf("Brightness(%v) = %v, want %v", tt.factor, got, tt.want)
			}
		})
	}
}

func TestUnconverged(t *testing.T) {
	want := Color{0, 100, 0, 255}
	if Unconverged != want {
		t.Errorf("Unconverged = %v, want %v", Unconverged, want)
	}
}
