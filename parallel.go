package newton

import "github.com/gogpu/newton/internal/parallel"

// ParallelKernel computes pixel rows concurrently on a persistent
// worker pool. Workers write disjoint row bands of the buffer, so no
// locking is needed; Compute returns only after every band is done.
//
// ParallelKernel shares the per-pixel code with ScalarKernel, so its
// output is byte-identical to the reference kernel.
type ParallelKernel struct {
	pool *parallel.Pool
}

// NewParallelKernel creates a kernel backed by the given number of
// workers; workers <= 0 selects GOMAXPROCS. Call Close to release the
// pool when the kernel is no longer needed.
func NewParallelKernel(workers int) *ParallelKernel {
	return &ParallelKernel{pool: parallel.NewPool(workers)}
}

// Name implements Kernel.
func (k *ParallelKernel) Name() string { return "parallel" }

// Compute implements Kernel.
func (k *ParallelKernel) Compute(pix *Pixmap, view Viewport, roots []complex128, palette []Color) {
	height := pix.Height()

	// More bands than workers smooths out the uneven per-row cost:
	// rows crossing basin boundaries iterate close to the cap.
	bands := k.pool.Workers() * 4
	if bands > height {
		bands = height
	}

	work := make([]func(), 0, bands)
	for b := 0; b < bands; b++ {
		yMin := b * height / bands
		yMax := (b + 1) * height / bands
		if yMin == yMax {
			continue
		}
		work = append(work, func() {
			computeRows(pix, view, roots, palette, yMin, yMax)
		})
	}

	k.pool.ExecuteAll(work)
}

// Close shuts the worker pool down. The kernel must not be used after
// Close.
func (k *ParallelKernel) Close() {
	k.pool.Close()
}
