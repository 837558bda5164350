// SPDX-License-Identifier: Unlicense OR MIT

package circle

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultThickness              = 20
	DefaultValue                  = 0
	DefaultStartAngle             = -90
	DefaultTextSize               = 45
	DefaultStartAnimationDuration = 500 * time.Millisecond
)

// DefaultColor is a dark gray.
var DefaultColor = color.NRGBA{R: 0x44, G: 0x44, B: 0x44, A: 0xff}

// AnimationKind selects the property animated when a circle is first
// attached.
type AnimationKind uint8

const (
	AnimationNone AnimationKind = iota
	// AnimationRoll rotates the start angle by half a turn.
	AnimationRoll
	// AnimationFadeIn fades the circle in.
	AnimationFadeIn
	// AnimationIncremental grows the value from zero.
	AnimationIncremental
	// AnimationThicknessExpand grows the thickness from zero.
	AnimationThicknessExpand
)

var animationNames = [...]string{
	AnimationNone:            "none",
	AnimationRoll:            "roll",
	AnimationFadeIn:          "fadeIn",
	AnimationIncremental:     "incremental",
	AnimationThicknessExpand: "thicknessExpand",
}

func (k AnimationKind) String() string {
	if int(k) < len(animationNames) {
		return animationNames[k]
	}
	return "AnimationKind(" + strconv.Itoa(int(k)) + ")"
}

// ParseAnimationKind parses the name of an animation kind, ignoring case.
func ParseAnimationKind(s string) (AnimationKind, error) {
	for k, n := range animationNames {
		if strings.EqualFold(s, n) {
			return AnimationKind(k), nil
		}
	}
	return AnimationNone, fmt.Errorf("circle: unknown animation %q: %w", s, ErrInvalidArgument)
}

// LabelFormatter formats the label shown when no text override is set.
type LabelFormatter func(value int) string

// PlainLabel formats the value as a decimal number.
func PlainLabel(value int) string {
	return strconv.Itoa(value)
}

// PercentLabel formats the value as a decimal number followed by a
// percent sign.
func PercentLabel(value int) string {
	return strconv.Itoa(value) + "%"
}

// Options configure a new ProgressCircle.
type Options struct {
	Value      int
	Thickness  int
	StartAngle int
	Color      color.NRGBA
	// TextColor defaults to Color when nil.
	TextColor *color.NRGBA
	TextSize  int
	// Text overrides the label when non-nil.
	Text *string
	// Label formats the default label. PlainLabel is used when nil.
	Label LabelFormatter

	StartAnimation         AnimationKind
	StartAnimationDuration time.Duration
}

// DefaultOptions returns the default configuration.
func DefaultOptions() Options {
	return Options{
		Value:                  DefaultValue,
		Thickness:              DefaultThickness,
		StartAngle:             DefaultStartAngle,
		Color:                  DefaultColor,
		TextSize:               DefaultTextSize,
		Label:                  PlainLabel,
		StartAnimation:         AnimationNone,
		StartAnimationDuration: DefaultStartAnimationDuration,
	}
}
