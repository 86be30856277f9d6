// Package wheel implements the rotation physics and angle geometry of an
// interactive spinning wheel: weighted sectors tiled around a circle, a
// pointer that reads off the current item, and three mutually exclusive
// driving modes (free spin with resistance, timed animation, drag).
//
// The package renders nothing. A host drives it with Advance(now) once per
// display refresh and reads the computed rotation, angle ranges, and current
// index back out; ConsumeRedraw coalesces any number of mutations within one
// tick into a single redraw request.
package wheel

import (
	"fmt"
	"math/rand"
	"time"

	"spinwheel/internal/geometry"
)

// Wheel composes the angle calculator, current-index resolver, drag recorder
// and physics state machine behind one facade. Not safe for concurrent use;
// the model is single-writer, driven from one logical thread of control.
type Wheel struct {
	cfg      Config
	items    []Item
	angles   []AngleRange
	rotation float64
	session  session
	drag     *dragRecorder
	observer Observer

	currentIndex int
	resolvedOnce bool
	dirty        bool

	// Geometry bounds for HitTest/AngleFromCenter, set by the host's
	// layout. aspect corrects for non-square cells.
	centerX, centerY float64
	radius           float64
	aspect           float64

	// clock supplies "now" for operations that start sessions or record
	// drag samples. Tests and offline renderers replace it.
	clock func() time.Time
}

// New creates an idle wheel with no items.
func New(cfg Config, obs Observer) (*Wheel, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if obs == nil {
		obs = NopObserver{}
	}
	return &Wheel{
		cfg:          cfg,
		observer:     obs,
		session:      sessionIdle{},
		currentIndex: NoItem,
		aspect:       1,
		clock:        time.Now,
	}, nil
}

// SetClock replaces the time source. Offline hosts drive the wheel with
// synthetic timestamps by pairing this with Advance.
func (w *Wheel) SetClock(clock func() time.Time) {
	if clock != nil {
		w.clock = clock
	}
}

// SetBounds defines the wheel's position for hit testing and drag capture:
// center, radius, and the cell aspect ratio of the host's coordinate space.
func (w *Wheel) SetBounds(centerX, centerY, radius, aspect float64) {
	w.centerX, w.centerY, w.radius = centerX, centerY, radius
	if aspect > 0 {
		w.aspect = aspect
	}
}

// SetConfig validates and installs a new configuration. On error the
// previous valid configuration is retained and the wheel stays renderable.
func (w *Wheel) SetConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	w.cfg = cfg
	if len(w.items) > 0 {
		w.refresh()
	}
	return nil
}

// Config returns the active configuration.
func (w *Wheel) Config() Config { return w.cfg }

// SetItems replaces the item list wholesale. The previous list is retained
// if the new one cannot tile the circle.
func (w *Wheel) SetItems(items []Item) error {
	if _, err := ComputeAngles(items, w.rotation); err != nil {
		return err
	}
	w.items = append([]Item(nil), items...)
	w.refresh()
	return nil
}

// Items returns a copy of the item list.
func (w *Wheel) Items() []Item {
	return append([]Item(nil), w.items...)
}

// Rotation returns the current rotation in degrees. Unbounded in magnitude;
// reduce modulo 360 for display.
func (w *Wheel) Rotation() float64 { return w.rotation }

// SetRotation assigns the rotation directly.
func (w *Wheel) SetRotation(rotation float64) error {
	if !isFinite(rotation) {
		return fmt.Errorf("%w: rotation %v is not finite", ErrInvalidConfiguration, rotation)
	}
	w.rotation = rotation
	w.refresh()
	return nil
}

// Angles returns the angular range of every item at the current rotation,
// in item order. The slice is shared; callers must not mutate it.
func (w *Wheel) Angles() []AngleRange { return w.angles }

// CurrentIndex returns the index of the item under the pointer, or NoItem.
func (w *Wheel) CurrentIndex() int { return w.currentIndex }

// Spin starts a free spin at the given speed in degrees/s, clamped to
// ±RotationSpeedMax. A zero speed (before or after clamping) is a no-op:
// the wheel goes idle and no spin-started event fires.
func (w *Wheel) Spin(speed float64) error {
	if !isFinite(speed) {
		return fmt.Errorf("%w: spin speed %v is not finite", ErrInvalidConfiguration, speed)
	}
	w.startFreeSpin(speed, MethodSpin)
	return nil
}

// SpinTo animates the rotation to an exact target over the given duration.
// A nil easing falls back to the configured default curve.
func (w *Wheel) SpinTo(rotation float64, duration time.Duration, easing EasingFunc) error {
	if !isFinite(rotation) {
		return fmt.Errorf("%w: spin target %v is not finite", ErrInvalidConfiguration, rotation)
	}
	if duration < 0 {
		return fmt.Errorf("%w: duration %v is negative", ErrInvalidConfiguration, duration)
	}
	if easing == nil {
		// cfg.Easing was validated with the rest of the config.
		easing, _ = EasingByName(w.cfg.Easing)
	}
	now := w.clock()
	w.session = &sessionTimedAnim{
		startRotation: w.rotation,
		endRotation:   rotation,
		startTime:     now,
		endTime:       now.Add(duration),
		easing:        easing,
	}
	w.dirty = true
	w.observer.OnSpinStart(SpinStart{Method: MethodAnimate, TargetRotation: rotation, Duration: duration})
	return nil
}

// SpinToItem animates the wheel so the given item lands under the pointer.
// The wheel aims at the item's center when center is true, otherwise at a
// random angle within the item. direction > 0 spins clockwise, < 0
// counterclockwise, 0 takes the shortest path; revolutions adds whole extra
// turns in the chosen direction.
func (w *Wheel) SpinToItem(index int, duration time.Duration, center bool, revolutions int, direction int, easing EasingFunc) error {
	if index < 0 || index >= len(w.items) {
		return fmt.Errorf("%w: item index %d out of range [0, %d)", ErrInvalidConfiguration, index, len(w.items))
	}
	if revolutions < 0 {
		return fmt.Errorf("%w: revolutions %d is negative", ErrInvalidConfiguration, revolutions)
	}

	// Sector angles in the wheel's own frame (rotation 0); the target is
	// the rotation that carries the chosen angle under the pointer.
	static, err := ComputeAngles(w.items, 0)
	if err != nil {
		return err
	}
	r := static[index]
	target := r.Center()
	if !center {
		target = r.Start + rand.Float64()*(r.End-r.Start)
	}
	aligned := w.cfg.PointerAngle - target

	var end float64
	switch {
	case direction > 0:
		end = w.rotation + geometry.Normalize(aligned-w.rotation) + float64(revolutions)*360
	case direction < 0:
		end = w.rotation - geometry.Normalize(w.rotation-aligned) - float64(revolutions)*360
	default:
		end = w.rotation + geometry.SignedDiff(w.rotation, aligned)
	}
	return w.SpinTo(end, duration, easing)
}

// Stop idles the wheel immediately: any free spin or timed animation is
// cancelled with no rest event. Idempotent.
func (w *Wheel) Stop() {
	w.session = sessionIdle{}
}

// DragStart begins a drag gesture at the given point in the host's
// coordinate space. Any active session is cancelled; during the drag the
// rotation tracks the cursor directly.
func (w *Wheel) DragStart(x, y float64) {
	w.session = sessionIdle{}
	w.drag = newDragRecorder(w.cfg.CaptureWindow, w.cfg.DebugSampleLimit)
	w.drag.start(w.AngleFromCenter(x, y), w.clock())
}

// DragMove records a drag movement and snaps the rotation by the sampled
// delta. Calling it without an active drag is a programmer error.
func (w *Wheel) DragMove(x, y float64) error {
	if w.drag == nil {
		return ErrNoActiveDrag
	}
	delta := w.drag.addSample(w.AngleFromCenter(x, y), w.clock())
	w.rotation += delta
	w.refresh()
	return nil
}

// DragEnd finishes the gesture. A nonzero release velocity inside the
// capture window flings the wheel into a free spin; a net-zero drag leaves
// it idle rather than unexpectedly spinning.
func (w *Wheel) DragEnd() error {
	if w.drag == nil {
		return ErrNoActiveDrag
	}
	velocity := w.drag.end(w.clock())
	w.drag = nil
	if velocity != 0 {
		w.startFreeSpin(velocity, MethodDrag)
	}
	return nil
}

// Dragging reports whether a drag gesture is active.
func (w *Wheel) Dragging() bool { return w.drag != nil }

// Speed returns the current free-spin speed in degrees/s, 0 otherwise.
func (w *Wheel) Speed() float64 {
	if fs, ok := w.session.(*sessionFreeSpin); ok {
		return fs.speed
	}
	return 0
}

// State names the active driving mode for display purposes.
func (w *Wheel) State() string {
	switch w.session.(type) {
	case *sessionFreeSpin:
		return "FREESPIN"
	case *sessionTimedAnim:
		return "ANIMATING"
	default:
		if w.drag != nil {
			return "DRAGGING"
		}
		return "IDLE"
	}
}

// HitTest reports whether the point falls on the wheel face.
func (w *Wheel) HitTest(x, y float64) bool {
	return geometry.InCircle(x, y, w.centerX, w.centerY, w.radius, w.aspect)
}

// AngleFromCenter translates a point in the host's coordinate space into an
// angle from the wheel center, for the host's input layer.
func (w *Wheel) AngleFromCenter(x, y float64) float64 {
	return geometry.AngleFromCenter(x, y, w.centerX, w.centerY, w.aspect)
}

// NeedsTick reports whether the host must keep calling Advance: a free spin
// or timed animation is in flight.
func (w *Wheel) NeedsTick() bool {
	_, idle := w.session.(sessionIdle)
	return !idle
}

// ConsumeRedraw returns whether any mutation since the last call changed
// rendered appearance, and clears the flag. Multiple changes within one tick
// coalesce into a single request.
func (w *Wheel) ConsumeRedraw() bool {
	d := w.dirty
	w.dirty = false
	return d
}

// Advance drives the physics forward to the monotonic timestamp now, called
// once per display refresh. Within one call the order is fixed: rotation
// update, then angle recomputation, then index resolution and events, so an
// observer always sees a consistent (rotation, angles, index) triple.
// It returns whether another tick is needed.
func (w *Wheel) Advance(now time.Time) bool {
	rotation, next, rested := advancePhysics(w.session, w.rotation, now)
	w.session = next
	if rotation != w.rotation {
		w.rotation = rotation
		w.refresh()
	}
	if rested {
		w.observer.OnRest(Rest{CurrentIndex: w.currentIndex, Rotation: w.rotation})
	}
	return w.NeedsTick()
}

// startFreeSpin clamps the speed and transitions to FreeSpin, or to idle on
// a zero speed.
func (w *Wheel) startFreeSpin(speed float64, method SpinMethod) {
	if speed > w.cfg.RotationSpeedMax {
		speed = w.cfg.RotationSpeedMax
	}
	if speed < -w.cfg.RotationSpeedMax {
		speed = -w.cfg.RotationSpeedMax
	}
	if speed == 0 {
		w.session = sessionIdle{}
		return
	}
	direction := 1.0
	if speed < 0 {
		direction = -1
	}
	w.session = &sessionFreeSpin{
		speed:      speed,
		direction:  direction,
		resistance: w.cfg.RotationResistance,
	}
	w.dirty = true
	w.observer.OnSpinStart(SpinStart{Method: method, Speed: speed})
}

// refresh recomputes angle ranges and the current index after any rotation
// or item change, emitting at most one index-change event. The first ever
// resolution only initializes the index; changes become observable after
// that.
func (w *Wheel) refresh() {
	w.dirty = true
	if len(w.items) == 0 {
		w.angles = nil
		w.currentIndex = NoItem
		return
	}
	angles, err := ComputeAngles(w.items, w.rotation)
	if err != nil {
		// Items were validated when set; only a non-finite rotation could
		// get here and SetRotation rejects those.
		return
	}
	w.angles = angles
	idx := ResolveIndex(angles, w.cfg.PointerAngle)
	if !w.resolvedOnce {
		w.resolvedOnce = true
		w.currentIndex = idx
		return
	}
	if idx != w.currentIndex {
		w.currentIndex = idx
		w.observer.OnCurrentIndexChange(IndexChange{CurrentIndex: idx})
	}
}
