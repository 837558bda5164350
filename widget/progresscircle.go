// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"
	"image/color"
	"math"

	"gioui.org/f32"
	"gioui.org/font"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	giowidget "gioui.org/widget"

	"golang.org/x/image/math/fixed"

	"github.com/kratorius/circleprogress/circle"
)

// DefaultSize is the diameter of a ProgressCircle laid out without
// minimum constraints.
const DefaultSize = unit.Dp(120)

// ProgressCircle displays a circle.ProgressCircle. The start animation
// begins the first time the circle is laid out.
type ProgressCircle struct {
	*circle.ProgressCircle
	// Font of the label.
	Font font.Font
}

// Layout draws the circle filling the minimum constraints, or a circle
// of DefaultSize when they are zero.
func (p *ProgressCircle) Layout(gtx layout.Context, shaper *text.Shaper) layout.Dimensions {
	size := gtx.Constraints.Min
	if size.X == 0 || size.Y == 0 {
		diam := gtx.Dp(DefaultSize)
		size = gtx.Constraints.Constrain(image.Pt(diam, diam))
	}

	// Animation setters cannot fail: values derive from validated state.
	if !p.Attached() {
		_ = p.Attach(gtx.Now)
	} else {
		_, _ = p.Advance(gtx.Now)
	}
	if p.Animating() {
		gtx.Execute(op.InvalidateCmd{})
	}

	defer clip.Rect{Max: size}.Push(gtx.Ops).Pop()
	p.Draw(canvas{gtx: gtx, shaper: shaper, font: p.Font}, image.Rectangle{Max: size})
	return layout.Dimensions{Size: size}
}

type canvas struct {
	gtx    layout.Context
	shaper *text.Shaper
	font   font.Font
}

func (c canvas) StrokeArc(oval image.Rectangle, startAngle, sweep, width int, col color.NRGBA) {
	if sweep <= 0 || width <= 0 || oval.Empty() {
		return
	}
	f1, f2 := foci(oval)
	var p clip.Path
	p.Begin(c.gtx.Ops)
	p.MoveTo(ellipsePoint(oval, rad(startAngle)))
	// Positive angles run clockwise in Gio's y-down space.
	p.ArcTo(f1, f2, float32(rad(sweep)))
	if sweep >= 360 {
		p.Close()
	}
	paint.FillShape(c.gtx.Ops, col, clip.Stroke{
		Path:  p.End(),
		Width: float32(width),
	}.Op())
}

// foci returns the focus points of the ellipse inscribed in r.
func foci(r image.Rectangle) (f32.Point, f32.Point) {
	cx := float32(r.Min.X+r.Max.X) * .5
	cy := float32(r.Min.Y+r.Max.Y) * .5
	rx, ry := float64(r.Dx())*.5, float64(r.Dy())*.5
	if rx >= ry {
		d := float32(math.Sqrt(rx*rx - ry*ry))
		return f32.Pt(cx-d, cy), f32.Pt(cx+d, cy)
	}
	d := float32(math.Sqrt(ry*ry - rx*rx))
	return f32.Pt(cx, cy-d), f32.Pt(cx, cy+d)
}

// ellipsePoint returns the point at angle a on the ellipse inscribed in r.
func ellipsePoint(r image.Rectangle, a float64) f32.Point {
	sin, cos := math.Sincos(a)
	return f32.Pt(
		float32(r.Min.X+r.Max.X)*.5+float32(r.Dx())*.5*float32(cos),
		float32(r.Min.Y+r.Max.Y)*.5+float32(r.Dy())*.5*float32(sin),
	)
}

// unbounded is the maximum label size.
const unbounded = 1 << 20

func (c canvas) DrawText(txt string, center image.Point, size int, col color.NRGBA) {
	gtx := c.gtx
	gtx.Constraints = layout.Constraints{Max: image.Pt(unbounded, unbounded)}

	ascent, descent := c.lineMetrics(txt, size)

	m := op.Record(gtx.Ops)
	paint.ColorOp{Color: col}.Add(gtx.Ops)
	material := m.Stop()

	m = op.Record(gtx.Ops)
	l := giowidget.Label{MaxLines: 1}
	dims := l.Layout(gtx, c.shaper, c.font, gtx.Metric.PxToSp(size), txt, material)
	call := m.Stop()

	defer op.Offset(textOrigin(center, dims, ascent, descent)).Push(gtx.Ops).Pop()
	call.Add(gtx.Ops)
}

// lineMetrics returns the ascent and descent of the font used for txt.
func (c canvas) lineMetrics(txt string, size int) (ascent, descent fixed.Int26_6) {
	c.shaper.LayoutString(text.Parameters{
		Font:     c.font,
		PxPerEm:  fixed.I(size),
		MaxLines: 1,
		MaxWidth: unbounded,
		Locale:   c.gtx.Locale,
	}, txt)
	for {
		g, ok := c.shaper.NextGlyph()
		if !ok {
			break
		}
		if g.Ascent > ascent {
			ascent = g.Ascent
		}
		if g.Descent > descent {
			descent = g.Descent
		}
	}
	return ascent, descent
}

// textOrigin returns the offset of a laid out label that centers it
// horizontally on center and puts its baseline at
// center.Y + (ascent - descent)/2.
func textOrigin(center image.Point, dims layout.Dimensions, ascent, descent fixed.Int26_6) image.Point {
	baseline := dims.Size.Y - dims.Baseline
	return image.Point{
		X: center.X - dims.Size.X/2,
		Y: center.Y + ((ascent - descent) / 2).Round() - baseline,
	}
}

func rad(deg int) float64 {
	return float64(deg) * math.Pi / 180
}
