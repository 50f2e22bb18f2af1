package neuro

import "math"

// DelayLine models fixed transmission delay as a ring buffer of
// capacity ceil(delay/dt)+1 vectors. A value pushed at step k is
// pulled exactly capacity steps later; all slots start at zero, which
// correctly reads as "no input yet" during the first pass.
//
// Within one step the owner must Pull before Push (both address the
// current slot), then Advance once.
type DelayLine struct {
	width    int
	capacity int
	slots    []Vector
	cursor   int
}

// NewDelayLine creates a line carrying vectors of the given width.
// Delay is given in time units and rounded up to whole steps.
func NewDelayLine(width int, delay, dt float64) (*DelayLine, error) {
	if width <= 0 {
		return nil, Configf("delayline", "width must be positive, got %d", width)
	}
	if dt <= 0 {
		return nil, Configf("delayline", "dt must be positive, got %g", dt)
	}
	// The small slack keeps delays that are exact multiples of dt in
	// decimal from rounding up an extra step.
	capacity := int(math.Ceil(delay/dt-1e-9)) + 1
	if capacity < 1 {
		return nil, Configf("delayline", "delay %g at dt %g yields capacity %d < 1", delay, dt, capacity)
	}
	slots := make([]Vector, capacity)
	for i := range slots {
		slots[i] = make(Vector, width)
	}
	return &DelayLine{width: width, capacity: capacity, slots: slots}, nil
}

func (d *DelayLine) Width() int    { return d.width }
func (d *DelayLine) Capacity() int { return d.capacity }

// Pull returns the values due this step. The slice is only valid until
// the next Push or Advance.
func (d *DelayLine) Pull() Vector {
	return d.slots[d.cursor]
}

// Push schedules vals for delivery capacity steps from now.
func (d *DelayLine) Push(vals Vector) {
	copy(d.slots[d.cursor], vals)
}

// Advance moves the line to the next step.
func (d *DelayLine) Advance() {
	d.cursor = (d.cursor + 1) % d.capacity
}
