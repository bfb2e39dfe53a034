package newton

// Option configures a Renderer during creation.
//
// Example:
//
//	// Default: 512x512, [-2,2]x[-2,2], reference scalar kernel
//	r, err := newton.New(5)
//
//	// Concurrent kernel (dependency injection)
//	k := newton.NewParallelKernel(0)
//	defer k.Close()
//	r, err := newton.New(5, newton.WithKernel(k))
type Option func(*options)

// options holds optional configuration for Renderer creation.
type options struct {
	width, height int
	viewport      Viewport
	kernel        Kernel
}

// defaultOptions returns the default renderer options.
func defaultOptions() options {
	return options{
		width:    512,
		height:   512,
		viewport: DefaultViewport(),
		kernel:   nil, // Will be set to ScalarKernel if nil
	}
}

// WithSize sets the pixel buffer resolution. The default is 512x512.
func WithSize(width, height int) Option {
	return func(o *options) {
		o.width = width
		o.height = height
	}
}

// WithViewport sets the initial region of the complex plane. The
// default is [-2,2] x [-2,2].
func WithViewport(v Viewport) Option {
	return func(o *options) {
		o.viewport = v
	}
}

// WithKernel selects the kernel variant. The default is the reference
// ScalarKernel. The renderer does not take ownership: a ParallelKernel
// passed in here must still be closed by the caller.
func WithKernel(k Kernel) Option {
	return func(o *options) {
		o.kernel = k
	}
}
