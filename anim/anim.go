// SPDX-License-Identifier: Unlicense OR MIT

/*
Package anim interpolates properties over time.

A Tween is frame driven: the host calls Step with its frame time, for
example layout.Context.Now in Gio, and the tween calls its setter with
the eased intermediate value.
*/
package anim

import "time"

// Interpolator remaps the elapsed fraction of an animation, in [0, 1].
type Interpolator func(t float64) float64

// Linear is the identity Interpolator.
func Linear(t float64) float64 {
	return t
}

// Decelerate starts quickly and slows down towards the end.
func Decelerate(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// Tween animates a single property from a start to an end value.
type Tween struct {
	Duration time.Duration
	Ease     Interpolator

	from, to float64
	set      func(v float64) error

	start   time.Time
	started bool
	done    bool
}

// IntTween returns a tween calling set with integer values. Intermediate
// values are truncated toward zero.
func IntTween(from, to int, d time.Duration, ease Interpolator, set func(int) error) *Tween {
	return &Tween{
		Duration: d,
		Ease:     ease,
		from:     float64(from),
		to:       float64(to),
		set: func(v float64) error {
			return set(int(v))
		},
	}
}

// FloatTween returns a tween calling set with float values.
func FloatTween(from, to float32, d time.Duration, ease Interpolator, set func(float32) error) *Tween {
	return &Tween{
		Duration: d,
		Ease:     ease,
		from:     float64(from),
		to:       float64(to),
		set: func(v float64) error {
			return set(float32(v))
		},
	}
}

// Start begins the animation at now and applies the start value.
func (t *Tween) Start(now time.Time) error {
	t.start = now
	t.started = true
	t.done = false
	_, err := t.Step(now)
	return err
}

// Step applies the value for now. It reports whether the animation is
// still running afterwards. The end value is always applied exactly when
// the animation completes. A setter error stops the animation.
func (t *Tween) Step(now time.Time) (bool, error) {
	if !t.started || t.done {
		return false, nil
	}
	f := t.Fraction(now)
	if f >= 1 {
		t.done = true
	}
	ease := t.Ease
	if ease == nil {
		ease = Linear
	}
	v := t.to
	if !t.done {
		v = t.from + (t.to-t.from)*ease(f)
	}
	if err := t.set(v); err != nil {
		t.done = true
		return false, err
	}
	return !t.done, nil
}

// Fraction returns the elapsed fraction of the animation at now, clamped
// to [0, 1].
func (t *Tween) Fraction(now time.Time) float64 {
	if t.Duration <= 0 {
		return 1
	}
	f := float64(now.Sub(t.start)) / float64(t.Duration)
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}

// Running reports whether the tween has started and not yet completed.
func (t *Tween) Running() bool {
	return t.started && !t.done
}
