// Package newton renders Newton-fractal visualizations of the complex
// polynomial z^n - 1.
//
// # Overview
//
// Every pixel of a viewport is mapped onto a rectangular region of the
// complex plane and used as the starting point of Newton's root-finding
// iteration. The pixel is colored by the root the iteration converges
// to; points that stall on a critical point or exhaust the iteration
// cap get a fixed fallback color.
//
// # Quick Start
//
//	r, err := newton.New(5)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	r.Recompute()
//	r.Pixmap().SavePNG("newton_fractal.png")
//
// # Kernels
//
// Pixel computation is pluggable through the Kernel interface.
// ScalarKernel is the single-threaded reference; ParallelKernel spreads
// row bands across a worker pool. Both share the per-pixel code, so
// their outputs are byte-identical; that is the correctness bar for
// any further kernel variant.
//
// # Interactive Use
//
// Controller turns per-frame key-state snapshots into viewport zooms
// and pans and reports when the image must be recomputed. Window
// management and key polling stay with the caller; cmd/newton wires
// the controller to an ebiten game loop.
//
// # Coordinate System
//
// Pixel (0,0) is the top-left corner and maps to the lower viewport
// bounds. X increases right, Y increases down; the imaginary axis
// therefore grows toward the bottom of the image.
package newton

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
