// SPDX-License-Identifier: Unlicense OR MIT

package widget_test

import (
	"image"
	"testing"
	"time"

	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/text"
	"gioui.org/unit"

	"github.com/kratorius/circleprogress/circle"
	"github.com/kratorius/circleprogress/widget"
)

func newShaper() *text.Shaper {
	return text.NewShaper(text.NoSystemFonts(), text.WithCollection(gofont.Collection()))
}

func TestProgressCircleLayout(t *testing.T) {
	opts := circle.DefaultOptions()
	opts.Value = 40
	opts.StartAnimation = circle.AnimationIncremental
	opts.StartAnimationDuration = time.Second
	c, err := circle.New(opts)
	if err != nil {
		t.Fatal(err)
	}
	w := &widget.ProgressCircle{ProgressCircle: c}
	shaper := newShaper()
	start := time.Unix(10, 0)
	gtx := layout.Context{
		Ops:         new(op.Ops),
		Constraints: layout.Exact(image.Pt(200, 100)),
		Metric:      unit.Metric{PxPerDp: 1, PxPerSp: 1},
		Now:         start,
	}

	dims := w.Layout(gtx, shaper)
	if dims.Size != image.Pt(200, 100) {
		t.Errorf("size: got %v, want 200x100", dims.Size)
	}
	if !w.Animating() || w.Value() != 0 {
		t.Fatalf("first frame: animating=%v value=%d", w.Animating(), w.Value())
	}
	if w.NeedsRedraw() {
		t.Error("layout did not clear the redraw mark")
	}

	gtx.Ops.Reset()
	gtx.Now = start.Add(500 * time.Millisecond)
	w.Layout(gtx, shaper)
	if got := w.Value(); got != 30 {
		t.Errorf("half way: got value %d, want 30", got)
	}

	gtx.Ops.Reset()
	gtx.Now = start.Add(time.Second)
	w.Layout(gtx, shaper)
	if w.Animating() || w.Value() != 40 {
		t.Errorf("last frame: animating=%v value=%d", w.Animating(), w.Value())
	}
}

func TestProgressCircleDefaultSize(t *testing.T) {
	c, err := circle.New(circle.DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	w := &widget.ProgressCircle{ProgressCircle: c}
	gtx := layout.Context{
		Ops:         new(op.Ops),
		Constraints: layout.Constraints{Max: image.Pt(1000, 1000)},
		Metric:      unit.Metric{PxPerDp: 2, PxPerSp: 2},
	}
	dims := w.Layout(gtx, newShaper())
	if want := image.Pt(240, 240); dims.Size != want {
		t.Errorf("size: got %v, want %v", dims.Size, want)
	}

	gtx.Constraints = layout.Constraints{Max: image.Pt(50, 80)}
	if dims := w.Layout(gtx, newShaper()); dims.Size != image.Pt(50, 80) {
		t.Errorf("constrained size: got %v", dims.Size)
	}
}
