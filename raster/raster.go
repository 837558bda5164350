// SPDX-License-Identifier: Unlicense OR MIT

/*
Package raster draws progress circles into images, for platforms without
a GPU and for previews.
*/
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"sync"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/kratorius/circleprogress/circle"
	"github.com/kratorius/circleprogress/internal/arc"
)

var (
	regularOnce sync.Once
	regular     *opentype.Font
)

func goRegular() *opentype.Font {
	regularOnce.Do(func() {
		f, err := opentype.Parse(goregular.TTF)
		if err != nil {
			panic(err)
		}
		regular = f
	})
	return regular
}

// Canvas is a circle.Canvas backed by an image.
type Canvas struct {
	dst   *image.RGBA
	z     vector.Rasterizer
	faces map[int]font.Face
}

// NewCanvas returns a Canvas drawing into dst.
func NewCanvas(dst *image.RGBA) *Canvas {
	return &Canvas{
		dst:   dst,
		faces: make(map[int]font.Face),
	}
}

// StrokeArc implements circle.Canvas.
func (c *Canvas) StrokeArc(oval image.Rectangle, startAngle, sweep, width int, col color.NRGBA) {
	segs := arc.Band(arc.FromRect(oval), rad(startAngle), rad(sweep), float32(width))
	if len(segs) == 0 {
		return
	}
	b := c.dst.Bounds()
	c.z.Reset(b.Dx(), b.Dy())
	c.z.DrawOp = draw.Over
	ox, oy := float32(b.Min.X), float32(b.Min.Y)
	for _, s := range segs {
		switch s.Kind {
		case arc.MoveTo:
			c.z.MoveTo(s.To.X-ox, s.To.Y-oy)
		case arc.LineTo:
			c.z.LineTo(s.To.X-ox, s.To.Y-oy)
		case arc.QuadTo:
			c.z.QuadTo(s.Ctrl.X-ox, s.Ctrl.Y-oy, s.To.X-ox, s.To.Y-oy)
		}
	}
	c.z.ClosePath()
	c.z.Draw(c.dst, b, image.NewUniform(col), image.Point{})
}

// DrawText implements circle.Canvas. The baseline is placed so that the
// text is vertically centered on center.
func (c *Canvas) DrawText(txt string, center image.Point, size int, col color.NRGBA) {
	face := c.face(size)
	if face == nil {
		return
	}
	d := font.Drawer{
		Dst:  c.dst,
		Src:  image.NewUniform(col),
		Face: face,
	}
	m := face.Metrics()
	w := d.MeasureString(txt)
	d.Dot = fixed.Point26_6{
		X: fixed.I(center.X) - w/2,
		Y: fixed.I(center.Y) + (m.Ascent-m.Descent)/2,
	}
	d.DrawString(txt)
}

func (c *Canvas) face(size int) font.Face {
	if f, ok := c.faces[size]; ok {
		return f
	}
	f, err := opentype.NewFace(goRegular(), &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		f = nil
	}
	c.faces[size] = f
	return f
}

// Close releases the font faces of the canvas.
func (c *Canvas) Close() error {
	for size, f := range c.faces {
		if f != nil {
			f.Close()
		}
		delete(c.faces, size)
	}
	return nil
}

func rad(deg int) float64 {
	return float64(deg) * math.Pi / 180
}

// Render draws p into a new image of the given size. The whole image is
// the content box.
func Render(p *circle.ProgressCircle, size image.Point) *image.RGBA {
	return RenderOver(p, size, image.Transparent)
}

// RenderOver is like Render but fills the image with bg first.
func RenderOver(p *circle.ProgressCircle, size image.Point, bg image.Image) *image.RGBA {
	dst := image.NewRGBA(image.Rectangle{Max: size})
	draw.Draw(dst, dst.Bounds(), bg, image.Point{}, draw.Src)
	c := NewCanvas(dst)
	defer c.Close()
	p.Draw(c, dst.Bounds())
	return dst
}

// Animate attaches p at start and renders a frame every interval until
// its start animation completes, calling fn with each frame. At least one
// frame is rendered. A non-positive interval selects 60 frames per
// second.
func Animate(p *circle.ProgressCircle, size image.Point, bg image.Image, start time.Time, interval time.Duration, fn func(frame int, img *image.RGBA) error) error {
	if interval <= 0 {
		interval = time.Second / 60
	}
	if err := p.Attach(start); err != nil {
		return err
	}
	now := start
	for i := 0; ; i++ {
		if err := fn(i, RenderOver(p, size, bg)); err != nil {
			return err
		}
		if !p.Animating() {
			return nil
		}
		now = now.Add(interval)
		if _, err := p.Advance(now); err != nil {
			return err
		}
	}
}
