// SPDX-License-Identifier: Unlicense OR MIT

// Package arc tessellates stroked elliptical arcs into outlines made of
// quadratic Bézier segments.
package arc

import (
	"image"
	"math"
)

// Point is a point in pixel space.
type Point struct {
	X, Y float32
}

// Kind identifies the operation of a Segment.
type Kind uint8

const (
	MoveTo Kind = iota
	LineTo
	QuadTo
)

// Segment is a single outline operation. Ctrl is only meaningful for
// QuadTo.
type Segment struct {
	Kind Kind
	Ctrl Point
	To   Point
}

// Ellipse is an axis aligned ellipse.
type Ellipse struct {
	Center Point
	RX, RY float32
}

// FromRect returns the ellipse inscribed in r.
func FromRect(r image.Rectangle) Ellipse {
	return Ellipse{
		Center: Point{
			X: float32(r.Min.X+r.Max.X) * .5,
			Y: float32(r.Min.Y+r.Max.Y) * .5,
		},
		RX: float32(r.Dx()) * .5,
		RY: float32(r.Dy()) * .5,
	}
}

func (e Ellipse) at(sin, cos float64) Point {
	return Point{
		X: e.Center.X + e.RX*float32(cos),
		Y: e.Center.Y + e.RY*float32(sin),
	}
}

// maxArcLen is the maximum length in pixels of the arc covered by a
// single quadratic segment.
const maxArcLen = 20.

// Band returns the closed outline of the arc of e stroked with width,
// starting at start and sweeping sweep radians. Positive angles run
// clockwise in a y-down coordinate system. Consumers close the outline
// after the last segment. Band returns nil for empty sweeps.
func Band(e Ellipse, start, sweep float64, width float32) []Segment {
	if sweep <= 0 || width <= 0 || e.RX < 0 || e.RY < 0 {
		return nil
	}
	if sweep > 2*math.Pi {
		sweep = 2 * math.Pi
	}
	half := width * .5
	outer := Ellipse{Center: e.Center, RX: e.RX + half, RY: e.RY + half}
	inner := Ellipse{Center: e.Center, RX: max32(e.RX-half, 0), RY: max32(e.RY-half, 0)}

	angles := slices(start, sweep, float64(max32(outer.RX, outer.RY)))
	segs := make([]Segment, 0, 2*len(angles)+1)

	sine, cose := math.Sincos(angles[0])
	segs = append(segs, Segment{Kind: MoveTo, To: outer.at(sine, cose)})
	for _, a := range angles[1:] {
		sins, coss := sine, cose
		sine, cose = math.Sincos(a)
		segs = append(segs, quad(outer, sins, coss, sine, cose))
	}
	// Arc cap.
	segs = append(segs, Segment{Kind: LineTo, To: inner.at(sine, cose)})
	for i := len(angles) - 2; i >= 0; i-- {
		sins, coss := sine, cose
		sine, cose = math.Sincos(angles[i])
		segs = append(segs, quad(inner, sins, coss, sine, cose))
	}
	// Second arc cap is completed by closing the outline.
	return segs
}

// slices splits the sweep into angles no further apart than maxArcLen
// along an arc of the given radius.
func slices(start, sweep, radius float64) []float64 {
	step := math.Pi / 4
	if radius > 0 {
		if s := maxArcLen / (radius * math.Pi); s < step {
			step = s
		}
	}
	n := int(math.Ceil(sweep / step))
	if n < 1 {
		n = 1
	}
	angles := make([]float64, n+1)
	for i := range angles {
		angles[i] = start + sweep*float64(i)/float64(n)
	}
	return angles
}

// quad approximates the arc of e between two angles given by their sine
// and cosine.
func quad(e Ellipse, sin0, cos0, sin1, cos1 float64) Segment {
	// https://pomax.github.io/bezierinfo/#circles
	div := 1. / (cos0*sin1 - cos1*sin0)
	return Segment{
		Kind: QuadTo,
		Ctrl: e.at(-(cos1-cos0)*div, (sin1-sin0)*div),
		To:   e.at(sin1, cos1),
	}
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
