// SPDX-License-Identifier: Unlicense OR MIT

package circle

import (
	"time"

	"github.com/kratorius/circleprogress/anim"
)

// SetStartAnimation configures the animation run by Attach. It has no
// effect once the circle is attached.
func (p *ProgressCircle) SetStartAnimation(k AnimationKind, d time.Duration) error {
	if err := checkDuration(d); err != nil {
		return err
	}
	p.animKind, p.animDuration = k, d
	return nil
}

// StartAnimation returns the configured start animation and its
// duration.
func (p *ProgressCircle) StartAnimation() (AnimationKind, time.Duration) {
	return p.animKind, p.animDuration
}

// Attach marks the circle as shown for the first time at now and starts
// the start animation. Only the first call has an effect.
func (p *ProgressCircle) Attach(now time.Time) error {
	if p.attached {
		return nil
	}
	p.attached = true
	t := p.startTween()
	if t == nil {
		return nil
	}
	p.tween = t
	err := t.Start(now)
	if !t.Running() {
		p.tween = nil
	}
	return err
}

// Attached reports whether Attach has been called.
func (p *ProgressCircle) Attached() bool {
	return p.attached
}

// Advance steps the start animation to now and reports whether it is
// still running. Animated values go through the regular setters, so
// manual changes made while animating are overwritten by the next step.
func (p *ProgressCircle) Advance(now time.Time) (bool, error) {
	if p.tween == nil {
		return false, nil
	}
	running, err := p.tween.Step(now)
	if !running {
		p.tween = nil
	}
	return running, err
}

// Animating reports whether the start animation is running.
func (p *ProgressCircle) Animating() bool {
	return p.tween != nil
}

func (p *ProgressCircle) startTween() *anim.Tween {
	d := p.animDuration
	switch p.animKind {
	case AnimationRoll:
		return anim.IntTween(p.startAngle-180, p.startAngle, d, anim.Decelerate, func(v int) error {
			p.SetStartAngle(v)
			return nil
		})
	case AnimationFadeIn:
		return anim.FloatTween(0, 1, d, anim.Linear, func(v float32) error {
			p.SetAlpha(v)
			return nil
		})
	case AnimationIncremental:
		return anim.IntTween(0, p.value, d, anim.Decelerate, p.SetValue)
	case AnimationThicknessExpand:
		return anim.IntTween(0, p.thickness, d, anim.Decelerate, p.SetThickness)
	}
	return nil
}
