// SPDX-License-Identifier: Unlicense OR MIT

package cli

import (
	"fmt"
	"image"
	"image/color"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kratorius/circleprogress/circle"
	"github.com/kratorius/circleprogress/style"
)

func bindCircleFlags(root *cobra.Command) {
	pf := root.PersistentFlags()
	pf.Int("value", circle.DefaultValue, "Progress value, 0-100")
	pf.Int("thickness", circle.DefaultThickness, "Arc thickness in pixels")
	pf.Int("start-angle", circle.DefaultStartAngle, "Start angle in degrees, 0 is 3 o'clock")
	pf.String("color", "", "Arc color")
	pf.String("text-color", "", "Label color (defaults to the arc color)")
	pf.Int("text-size", circle.DefaultTextSize, "Label size in pixels")
	pf.String("text", "", "Label text (defaults to the value)")
	pf.Bool("percent", false, "Suffix the default label with a percent sign")
	pf.String("animation", "", "Start animation: none, roll, fadeIn, incremental, thicknessExpand")
	pf.Duration("duration", circle.DefaultStartAnimationDuration, "Start animation duration")
}

// circleKeys are the circle settings read from flags, the environment
// and the config file.
var circleKeys = []string{
	"value", "thickness", "start-angle", "color", "text-color",
	"text-size", "text", "percent", "animation", "duration",
}

// circleOptions resolves the options of the circle to preview: the
// selected style, if any, with settings from the config file, the
// environment and flags on top.
func circleOptions(v *viper.Viper) (circle.Options, error) {
	opts := circle.DefaultOptions()
	if path := v.GetString("style"); path != "" {
		sheet, err := style.Load(path)
		if err != nil {
			return opts, err
		}
		if opts, err = sheet.Options(v.GetString("name")); err != nil {
			return opts, err
		}
	}

	var err error
	if v.IsSet("value") {
		opts.Value = v.GetInt("value")
	}
	if v.IsSet("thickness") {
		opts.Thickness = v.GetInt("thickness")
	}
	if v.IsSet("start-angle") {
		opts.StartAngle = v.GetInt("start-angle")
	}
	if v.IsSet("text-size") {
		opts.TextSize = v.GetInt("text-size")
	}
	if v.IsSet("text") {
		txt := v.GetString("text")
		opts.Text = &txt
	}
	if v.IsSet("percent") {
		if v.GetBool("percent") {
			opts.Label = circle.PercentLabel
		} else {
			opts.Label = circle.PlainLabel
		}
	}
	if v.IsSet("color") {
		if opts.Color, err = style.ParseColor(v.GetString("color")); err != nil {
			return opts, fmt.Errorf("color: %w", err)
		}
	}
	if v.IsSet("text-color") {
		c, err := style.ParseColor(v.GetString("text-color"))
		if err != nil {
			return opts, fmt.Errorf("text-color: %w", err)
		}
		opts.TextColor = &c
	}
	if v.IsSet("animation") {
		if opts.StartAnimation, err = circle.ParseAnimationKind(v.GetString("animation")); err != nil {
			return opts, fmt.Errorf("animation: %w", err)
		}
	}
	if v.IsSet("duration") {
		opts.StartAnimationDuration = v.GetDuration("duration")
	}
	return opts, nil
}

// newCircle builds the circle to preview.
func newCircle(v *viper.Viper) (*circle.ProgressCircle, error) {
	opts, err := circleOptions(v)
	if err != nil {
		return nil, &ExitError{Code: ExitCLIError, Err: err}
	}
	p, err := circle.New(opts)
	if err != nil {
		return nil, &ExitError{Code: ExitCLIError, Err: err}
	}
	return p, nil
}

func previewSize(v *viper.Viper) (image.Point, error) {
	n := v.GetInt("size")
	if n <= 0 {
		return image.Point{}, &ExitError{Code: ExitCLIError, Err: fmt.Errorf("--size must be positive, got %d", n)}
	}
	return image.Pt(n, n), nil
}

func background(v *viper.Viper) (image.Image, error) {
	s := v.GetString("background")
	if s == "" {
		return image.Transparent, nil
	}
	c, err := style.ParseColor(s)
	if err != nil {
		return nil, &ExitError{Code: ExitCLIError, Err: fmt.Errorf("--background: %w", err)}
	}
	return image.NewUniform(color.Color(c)), nil
}
