// SPDX-License-Identifier: Unlicense OR MIT

package cli

import (
	"image"
	"image/color"
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kratorius/circleprogress/circle"
	"github.com/kratorius/circleprogress/widget"
)

func newShowCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show a circle in a window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := newCircle(v)
			if err != nil {
				return err
			}
			size, err := previewSize(v)
			if err != nil {
				return err
			}
			bg := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
			if s := v.GetString("background"); s != "" {
				img, err := background(v)
				if err != nil {
					return err
				}
				r, g, b, a := img.At(0, 0).RGBA()
				bg = color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
			}
			go func() {
				if err := loop(p, size, bg); err != nil {
					log.Fatal(err)
				}
				os.Exit(0)
			}()
			app.Main()
			return nil
		},
	}
}

func loop(p *circle.ProgressCircle, size image.Point, bg color.NRGBA) error {
	w := new(app.Window)
	w.Option(
		app.Title("circleprogress"),
		app.Size(unit.Dp(size.X), unit.Dp(size.Y)),
	)
	p.SetInvalidator(w)
	shaper := text.NewShaper(text.WithCollection(gofont.Collection()))
	pc := &widget.ProgressCircle{ProgressCircle: p}

	var ops op.Ops
	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			paint.Fill(gtx.Ops, bg)
			layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				d := min(gtx.Constraints.Max.X, gtx.Constraints.Max.Y)
				gtx.Constraints = layout.Exact(image.Pt(d, d))
				return pc.Layout(gtx, shaper)
			})
			e.Frame(gtx.Ops)
		}
	}
}
