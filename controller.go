package newton

// Input is a per-frame snapshot of the six control keys. The display
// collaborator fills one in from its own key-state polling once per
// rendered frame.
type Input struct {
	ZoomIn   bool
	ZoomOut  bool
	PanUp    bool
	PanDown  bool
	PanLeft  bool
	PanRight bool
}

const (
	zoomInFactor  = 0.9
	zoomOutFactor = 1.1
	initialStep   = 0.1
)

// Controller turns input snapshots into viewport transforms. It owns
// the pan step, which compounds multiplicatively with every zoom so
// panning stays proportional to the visible region. The step is never
// reset.
type Controller struct {
	step float64
}

// NewController creates a controller with the initial pan step.
func NewController() *Controller {
	return &Controller{step: initialStep}
}

// PanStep returns the current pan step.
func (c *Controller) PanStep() float64 {
	return c.step
}

// Apply mutates the viewport according to the input snapshot and
// reports whether anything changed. A true result means the caller
// must recompute the image synchronously before showing the frame.
// Held keys are independent; several can apply within one frame.
func (c *Controller) Apply(in Input, v *Viewport) bool {
	dirty := false

	if in.ZoomIn {
		v.Zoom(zoomInFactor)
		c.step *= zoomInFactor
		dirty = true
	}
	if in.ZoomOut {
		v.Zoom(zoomOutFactor)
		c.step *= zoomOutFactor
		dirty = true
	}
	if in.PanUp {
		v.Pan(0, -c.step)
		dirty = true
	}
	if in.PanDown {
		v.Pan(0, c.step)
		dirty = true
	}
	if in.PanLeft {
		v.Pan(-c.step, 0)
		dirty = true
	}
	if in.PanRight {
		v.Pan(c.step, 0)
		dirty = true
	}

	return dirty
}
