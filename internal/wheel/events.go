package wheel

import "time"

// SpinMethod identifies what set the wheel in motion.
type SpinMethod string

const (
	MethodSpin    SpinMethod = "spin"    // caller-supplied speed
	MethodAnimate SpinMethod = "animate" // timed animation to a target rotation
	MethodDrag    SpinMethod = "drag"    // flick released from a drag gesture
)

// SpinStart describes a spin-started transition. Speed is set for free spins,
// TargetRotation and Duration for timed animations.
type SpinStart struct {
	Method         SpinMethod
	Speed          float64 // degrees/s
	TargetRotation float64 // degrees
	Duration       time.Duration
}

// Rest describes the wheel coming to rest, with the finalized state.
type Rest struct {
	CurrentIndex int
	Rotation     float64
}

// IndexChange reports the item under the pointer changing.
type IndexChange struct {
	CurrentIndex int
}

// Observer receives wheel lifecycle notifications. Calls are synchronous,
// fire exactly once per logical transition, and always see finalized state;
// handlers may call back into the wheel but must not do so re-entrantly from
// another goroutine.
type Observer interface {
	OnSpinStart(SpinStart)
	OnRest(Rest)
	OnCurrentIndexChange(IndexChange)
}

// NopObserver ignores all events.
type NopObserver struct{}

func (NopObserver) OnSpinStart(SpinStart) {}

func (NopObserver) OnRest(Rest) {}

func (NopObserver) OnCurrentIndexChange(IndexChange) {}

// Funcs adapts plain functions to Observer. Nil fields are ignored.
type Funcs struct {
	SpinStart   func(SpinStart)
	Rest        func(Rest)
	IndexChange func(IndexChange)
}

func (f Funcs) OnSpinStart(e SpinStart) {
	if f.SpinStart != nil {
		f.SpinStart(e)
	}
}

func (f Funcs) OnRest(e Rest) {
	if f.Rest != nil {
		f.Rest(e)
	}
}

func (f Funcs) OnCurrentIndexChange(e IndexChange) {
	if f.IndexChange != nil {
		f.IndexChange(e)
	}
}
