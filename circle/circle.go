// SPDX-License-Identifier: Unlicense OR MIT

package circle

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/kratorius/circleprogress/anim"
	"github.com/kratorius/circleprogress/internal/f32color"
)

// Invalidator schedules a repaint. *app.Window satisfies Invalidator.
type Invalidator interface {
	Invalidate()
}

// Canvas is a drawing surface.
type Canvas interface {
	// StrokeArc strokes the arc of the ellipse inscribed in oval, starting
	// at startAngle degrees and sweeping sweep degrees clockwise. The stroke
	// is centered on the arc.
	StrokeArc(oval image.Rectangle, startAngle, sweep, width int, c color.NRGBA)
	// DrawText draws a single line of text centered on center.
	DrawText(txt string, center image.Point, size int, c color.NRGBA)
}

// ProgressCircle is the state of a circular progress indicator.
type ProgressCircle struct {
	value      int
	thickness  int
	startAngle int
	color      color.NRGBA
	textColor  color.NRGBA
	textSize   int
	text       string
	hasText    bool
	alpha      float32
	label      LabelFormatter

	animKind     AnimationKind
	animDuration time.Duration
	tween        *anim.Tween
	attached     bool

	invalidator Invalidator
	dirty       bool
}

// New returns a ProgressCircle configured by opts.
func New(opts Options) (*ProgressCircle, error) {
	if err := checkValue(opts.Value); err != nil {
		return nil, err
	}
	if err := checkThickness(opts.Thickness); err != nil {
		return nil, err
	}
	if err := checkDuration(opts.StartAnimationDuration); err != nil {
		return nil, err
	}
	p := &ProgressCircle{
		value:        opts.Value,
		thickness:    opts.Thickness,
		startAngle:   opts.StartAngle,
		color:        opts.Color,
		textColor:    opts.Color,
		textSize:     opts.TextSize,
		alpha:        1,
		label:        opts.Label,
		animKind:     opts.StartAnimation,
		animDuration: opts.StartAnimationDuration,
		dirty:        true,
	}
	if opts.TextColor != nil {
		p.textColor = *opts.TextColor
	}
	if opts.Text != nil {
		p.text, p.hasText = *opts.Text, true
	}
	if p.label == nil {
		p.label = PlainLabel
	}
	return p, nil
}

func checkValue(v int) error {
	if v < 0 || v > 100 {
		return fmt.Errorf("circle: value was %d but must be in the 0-100 range: %w", v, ErrInvalidArgument)
	}
	return nil
}

func checkThickness(t int) error {
	if t < 0 {
		return fmt.Errorf("circle: thickness was %d but must be positive: %w", t, ErrInvalidArgument)
	}
	return nil
}

func checkDuration(d time.Duration) error {
	if d < 0 {
		return fmt.Errorf("circle: animation duration was %v but must be positive: %w", d, ErrInvalidArgument)
	}
	return nil
}

// SetInvalidator sets the Invalidator notified when the circle needs
// to be redrawn.
func (p *ProgressCircle) SetInvalidator(inv Invalidator) {
	p.invalidator = inv
}

// NeedsRedraw reports whether the circle changed since the last Draw.
func (p *ProgressCircle) NeedsRedraw() bool {
	return p.dirty
}

func (p *ProgressCircle) invalidate() {
	if p.dirty {
		return
	}
	p.dirty = true
	if p.invalidator != nil {
		p.invalidator.Invalidate()
	}
}

// SetValue sets the progress, which must be in the range [0, 100].
func (p *ProgressCircle) SetValue(v int) error {
	if err := checkValue(v); err != nil {
		return err
	}
	p.value = v
	p.invalidate()
	return nil
}

// Value returns the progress.
func (p *ProgressCircle) Value() int {
	return p.value
}

// SetThickness sets the stroke width in pixels. Negative widths are
// rejected.
func (p *ProgressCircle) SetThickness(t int) error {
	if err := checkThickness(t); err != nil {
		return err
	}
	p.thickness = t
	p.invalidate()
	return nil
}

// Thickness returns the stroke width in pixels.
func (p *ProgressCircle) Thickness() int {
	return p.thickness
}

// SetColor sets the arc color.
func (p *ProgressCircle) SetColor(c color.NRGBA) {
	p.color = c
	p.invalidate()
}

// Color returns the arc color.
func (p *ProgressCircle) Color() color.NRGBA {
	return p.color
}

// SetText overrides the label.
func (p *ProgressCircle) SetText(s string) {
	p.text, p.hasText = s, true
	p.invalidate()
}

// ClearText removes the label override, reverting to the formatted
// value.
func (p *ProgressCircle) ClearText() {
	p.text, p.hasText = "", false
	p.invalidate()
}

// Text returns the label override if set, or the formatted value.
func (p *ProgressCircle) Text() string {
	if p.hasText {
		return p.text
	}
	return p.label(p.value)
}

// HasText reports whether a label override is set.
func (p *ProgressCircle) HasText() bool {
	return p.hasText
}

// SetTextColor sets the label color.
func (p *ProgressCircle) SetTextColor(c color.NRGBA) {
	p.textColor = c
	p.invalidate()
}

// TextColor returns the label color.
func (p *ProgressCircle) TextColor() color.NRGBA {
	return p.textColor
}

// SetTextSize sets the label size in pixels.
func (p *ProgressCircle) SetTextSize(s int) {
	p.textSize = s
	p.invalidate()
}

// TextSize returns the label size in pixels.
func (p *ProgressCircle) TextSize() int {
	return p.textSize
}

// SetStartAngle sets the angle in degrees where the arc begins; 0 is the
// rightmost point of the circle. The angle is stored as is and reduced
// modulo 360 when drawn.
func (p *ProgressCircle) SetStartAngle(a int) {
	p.startAngle = a
	p.invalidate()
}

// StartAngle returns the start angle as set.
func (p *ProgressCircle) StartAngle() int {
	return p.startAngle
}

// SetAlpha sets the opacity of the whole circle. Values outside [0, 1]
// are stored and clamped when drawn.
func (p *ProgressCircle) SetAlpha(a float32) {
	p.alpha = a
	p.invalidate()
}

// Alpha returns the opacity.
func (p *ProgressCircle) Alpha() float32 {
	return p.alpha
}

// SetLabel sets the formatter of the default label. A nil formatter
// selects PlainLabel.
func (p *ProgressCircle) SetLabel(f LabelFormatter) {
	if f == nil {
		f = PlainLabel
	}
	p.label = f
	p.invalidate()
}

// SweepDegrees returns the arc length in whole degrees for value,
// truncated toward zero.
func SweepDegrees(value int) int {
	return value * 360 / 100
}

// NormalizeAngle reduces a to the range [0, 360).
func NormalizeAngle(a int) int {
	a %= 360
	if a < 0 {
		a += 360
	}
	return a
}

// Geometry is the resolved drawing of a circle.
type Geometry struct {
	// Oval bounds the arc: the content box inset by the thickness.
	Oval image.Rectangle
	// StartAngle is in [0, 360).
	StartAngle int
	Sweep      int
	Thickness  int
	Color      color.NRGBA

	Label      string
	TextCenter image.Point
	TextSize   int
	TextColor  color.NRGBA
}

// Geometry resolves the drawing of the circle in the content box.
// Colors have the circle opacity applied.
func (p *ProgressCircle) Geometry(content image.Rectangle) Geometry {
	return Geometry{
		Oval:       content.Inset(p.thickness),
		StartAngle: NormalizeAngle(p.startAngle),
		Sweep:      SweepDegrees(p.value),
		Thickness:  p.thickness,
		Color:      f32color.ScaleAlpha(p.color, p.alpha),
		Label:      p.Text(),
		TextCenter: image.Point{
			X: (content.Min.X + content.Max.X) / 2,
			Y: (content.Min.Y + content.Max.Y) / 2,
		},
		TextSize:  p.textSize,
		TextColor: f32color.ScaleAlpha(p.textColor, p.alpha),
	}
}

// Draw draws the circle in the content box and clears the redraw mark.
func (p *ProgressCircle) Draw(c Canvas, content image.Rectangle) {
	p.dirty = false
	g := p.Geometry(content)
	if g.Sweep > 0 && g.Thickness > 0 && !g.Oval.Empty() && g.Color.A > 0 {
		c.StrokeArc(g.Oval, g.StartAngle, g.Sweep, g.Thickness, g.Color)
	}
	if g.Label != "" && g.TextSize > 0 && g.TextColor.A > 0 {
		c.DrawText(g.Label, g.TextCenter, g.TextSize, g.TextColor)
	}
}
