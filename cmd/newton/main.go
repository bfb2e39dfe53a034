// Command newton renders an interactive Newton-fractal view of the
// complex polynomial z^n - 1.
//
// Usage:
//
//	newton [flags] n
//
// The required argument n is the root count. The first frame is
// exported to newton_fractal.png before the window opens. Arrow-up
// zooms in, arrow-down zooms out, W/A/S/D pan.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/newton"
)

const outputFile = "newton_fractal.png"

func main() {
	var (
		kernelName = flag.String("kernel", "parallel", "pixel kernel: scalar or parallel")
		scale      = flag.Int("scale", 1, "integer upscale factor for the exported PNG")
		verbose    = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: newton [flags] n")
		fmt.Fprintln(os.Stderr, "Pass a positive root count, for example: newton 5")
		os.Exit(1)
	}
	n, err := strconv.Atoi(flag.Arg(0))
	if err != nil || n <= 0 {
		fmt.Fprintf(os.Stderr, "newton: invalid root count %q: want a positive integer\n", flag.Arg(0))
		os.Exit(1)
	}

	if *verbose {
		newton.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	var kernel newton.Kernel
	switch *kernelName {
	case "scalar":
		kernel = newton.ScalarKernel{}
	case "parallel":
		pk := newton.NewParallelKernel(0)
		defer pk.Close()
		kernel = pk
	default:
		fmt.Fprintf(os.Stderr, "newton: unknown kernel %q: want scalar or parallel\n", *kernelName)
		os.Exit(1)
	}

	r, err := newton.New(n, newton.WithKernel(kernel))
	if err != nil {
		log.Fatalf("newton: %v", err)
	}

	r.Recompute()
	if err := r.Pixmap().SaveScaledPNG(outputFile, *scale); err != nil {
		log.Fatalf("newton: export %s: %v", outputFile, err)
	}

	ebiten.SetWindowSize(r.Pixmap().Width(), r.Pixmap().Height())
	ebiten.SetWindowTitle("Newton Fractal")
	if err := ebiten.RunGame(newGame(r)); err != nil {
		log.Fatalf("newton: %v", err)
	}
}
