package core

import "time"

// FixedStep paces a repeating action, such as panning while a key is held,
// to a steady number of repeats per second.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep firing rate times per second. The
// first call to ShouldStep after construction or Reset fires immediately.
func NewFixedStep(rate int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetRate(rate)
	fs.Reset()
	return fs
}

// SetRate changes the repeat rate. Non-positive rates fall back to 60.
func (f *FixedStep) SetRate(rate int) {
	if rate <= 0 {
		rate = 60
	}
	f.step = time.Second / time.Duration(rate)
}

// Reset rearms the stepper so the next ShouldStep fires immediately.
func (f *FixedStep) Reset() {
	f.accumulator = f.step
	f.last = time.Time{}
}

// ShouldStep reports whether the action should fire now.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}
