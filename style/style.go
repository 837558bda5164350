// SPDX-License-Identifier: Unlicense OR MIT

/*
Package style loads progress circle options from TOML style blocks.

A style block recognizes the keys

	thickness = 20                  # pixels
	color = "#444444"               # hex or SVG color name
	text_color = "white"            # defaults to color
	value = 0                       # 0-100
	start_angle = -90               # degrees, 0 is 3 o'clock
	text_size = 45                  # pixels
	text = "Loading"                # omit to show the value
	label = "percent"               # plain or percent
	start_animation = "roll"        # none, roll, fadeIn, incremental, thicknessExpand
	start_animation_duration = 500  # milliseconds

A file holds either a single style at the top level or several named
styles in [styles.<name>] tables.
*/
package style

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/kratorius/circleprogress/circle"
)

// Block is the TOML representation of a style. Unset keys keep their
// defaults.
type Block struct {
	Thickness              *int    `toml:"thickness"`
	Color                  *string `toml:"color"`
	TextColor              *string `toml:"text_color"`
	Value                  *int    `toml:"value"`
	StartAngle             *int    `toml:"start_angle"`
	TextSize               *int    `toml:"text_size"`
	Text                   *string `toml:"text"`
	Label                  *string `toml:"label"`
	StartAnimation         *string `toml:"start_animation"`
	StartAnimationDuration *int    `toml:"start_animation_duration"`
}

type file struct {
	Block
	Styles map[string]Block `toml:"styles"`
}

// ErrNoStyle is returned when a named style is not defined.
var ErrNoStyle = errors.New("style not defined")

// Sheet is a decoded style file.
type Sheet struct {
	base   Block
	styles map[string]Block
}

// Decode parses a style file.
func Decode(data []byte) (*Sheet, error) {
	var f file
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, fmt.Errorf("style: parse: %w", err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		keys := make([]string, len(undec))
		for i, k := range undec {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("style: unknown keys: %s", strings.Join(keys, ", "))
	}
	s := &Sheet{base: f.Block, styles: f.Styles}
	if _, err := s.base.Options(); err != nil {
		return nil, err
	}
	for _, name := range s.Names() {
		if _, err := s.styles[name].Options(); err != nil {
			return nil, fmt.Errorf("style %q: %w", name, err)
		}
	}
	return s, nil
}

// Load reads and decodes the style file at path.
func Load(path string) (*Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("style: read: %w", err)
	}
	return Decode(data)
}

// Names returns the sorted names of the named styles.
func (s *Sheet) Names() []string {
	names := make([]string, 0, len(s.styles))
	for n := range s.styles {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Options returns the options of the named style, or of the top-level
// style when name is empty.
func (s *Sheet) Options(name string) (circle.Options, error) {
	if name == "" {
		return s.base.Options()
	}
	b, ok := s.styles[name]
	if !ok {
		return circle.Options{}, fmt.Errorf("style %q: %w", name, ErrNoStyle)
	}
	return b.Options()
}

// Options converts the block to circle options on top of
// circle.DefaultOptions. Values are validated the way circle.New
// validates them.
func (b Block) Options() (circle.Options, error) {
	o := circle.DefaultOptions()
	if b.Thickness != nil {
		o.Thickness = *b.Thickness
	}
	if b.Value != nil {
		o.Value = *b.Value
	}
	if b.StartAngle != nil {
		o.StartAngle = *b.StartAngle
	}
	if b.TextSize != nil {
		o.TextSize = *b.TextSize
	}
	if b.Text != nil {
		txt := *b.Text
		o.Text = &txt
	}
	if b.Color != nil {
		c, err := ParseColor(*b.Color)
		if err != nil {
			return o, fmt.Errorf("style: color: %w", err)
		}
		o.Color = c
	}
	if b.TextColor != nil {
		c, err := ParseColor(*b.TextColor)
		if err != nil {
			return o, fmt.Errorf("style: text_color: %w", err)
		}
		o.TextColor = &c
	}
	if b.Label != nil {
		switch strings.ToLower(*b.Label) {
		case "plain", "":
			o.Label = circle.PlainLabel
		case "percent":
			o.Label = circle.PercentLabel
		default:
			return o, fmt.Errorf("style: label: unknown format %q", *b.Label)
		}
	}
	if b.StartAnimation != nil {
		k, err := circle.ParseAnimationKind(*b.StartAnimation)
		if err != nil {
			return o, fmt.Errorf("style: start_animation: %w", err)
		}
		o.StartAnimation = k
	}
	if b.StartAnimationDuration != nil {
		o.StartAnimationDuration = time.Duration(*b.StartAnimationDuration) * time.Millisecond
	}
	if _, err := circle.New(o); err != nil {
		return o, fmt.Errorf("style: %w", err)
	}
	return o, nil
}
