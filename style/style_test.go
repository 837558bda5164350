// SPDX-License-Identifier: Unlicense OR MIT

package style

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/kratorius/circleprogress/circle"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#fff", color.NRGBA{0xff, 0xff, 0xff, 0xff}},
		{"#336699", color.NRGBA{0x33, 0x66, 0x99, 0xff}},
		{"#80336699", color.NRGBA{0x33, 0x66, 0x99, 0x80}},
		{" Red ", color.NRGBA{0xff, 0, 0, 0xff}},
		{"darkgray", circle.DefaultColor},
		{"DKGRAY", circle.DefaultColor},
		{"darkGrey", circle.DefaultColor},
		{"dkgrey", circle.DefaultColor},
		{"darkslategrey", color.NRGBA{0x2f, 0x4f, 0x4f, 0xff}},
	}
	for _, tc := range tests {
		got, err := ParseColor(tc.in)
		if err != nil {
			t.Errorf("ParseColor(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
	for _, bad := range []string{"", "#", "#12", "#12345", "#zzzzzz", "notacolor"} {
		if _, err := ParseColor(bad); err == nil {
			t.Errorf("ParseColor(%q) succeeded", bad)
		}
	}
}

func TestFormatColor(t *testing.T) {
	for _, s := range []string{"#336699", "#80336699"} {
		c, err := ParseColor(s)
		if err != nil {
			t.Fatal(err)
		}
		if got := FormatColor(c); got != s {
			t.Errorf("FormatColor(%v) = %q, want %q", c, got, s)
		}
	}
}

func TestDecodeDefaults(t *testing.T) {
	s, err := Decode(nil)
	if err != nil {
		t.Fatal(err)
	}
	o, err := s.Options("")
	if err != nil {
		t.Fatal(err)
	}
	p, err := circle.New(o)
	if err != nil {
		t.Fatal(err)
	}
	if p.Value() != 0 || p.Thickness() != 20 || p.StartAngle() != -90 || p.TextSize() != 45 || p.Text() != "0" {
		t.Errorf("unexpected defaults: %+v", o)
	}
	if p.TextColor() != circle.DefaultColor {
		t.Errorf("text color: got %v", p.TextColor())
	}
}

const sheet = `
thickness = 8
color = "#336699"
value = 42

[styles.loading]
text = "Loading"
text_color = "white"
label = "percent"
start_animation = "fadeIn"
start_animation_duration = 250

[styles.percent]
label = "percent"
value = 7
start_angle = 450
`

func TestDecodeSheet(t *testing.T) {
	s, err := Decode([]byte(sheet))
	if err != nil {
		t.Fatal(err)
	}
	if got := s.Names(); len(got) != 2 || got[0] != "loading" || got[1] != "percent" {
		t.Errorf("Names: got %v", got)
	}

	o, err := s.Options("")
	if err != nil {
		t.Fatal(err)
	}
	if o.Thickness != 8 || o.Value != 42 || o.Color != (color.NRGBA{0x33, 0x66, 0x99, 0xff}) || o.TextColor != nil {
		t.Errorf("base options: %+v", o)
	}

	o, err = s.Options("loading")
	if err != nil {
		t.Fatal(err)
	}
	p, err := circle.New(o)
	if err != nil {
		t.Fatal(err)
	}
	if p.Text() != "Loading" || p.TextColor() != (color.NRGBA{0xff, 0xff, 0xff, 0xff}) {
		t.Errorf("loading: text %q color %v", p.Text(), p.TextColor())
	}
	if k, d := p.StartAnimation(); k != circle.AnimationFadeIn || d != 250*time.Millisecond {
		t.Errorf("loading: animation %v %v", k, d)
	}

	o, err = s.Options("percent")
	if err != nil {
		t.Fatal(err)
	}
	p, _ = circle.New(o)
	if p.Text() != "7%" || p.StartAngle() != 450 {
		t.Errorf("percent: text %q angle %d", p.Text(), p.StartAngle())
	}

	if _, err := s.Options("missing"); !errors.Is(err, ErrNoStyle) {
		t.Errorf("missing style: got %v", err)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := map[string]string{
		"value range": "value = 101",
		"thickness":   "thickness = -2",
		"color":       `color = "nope"`,
		"text color":  `text_color = "#12"`,
		"label":       `label = "roman"`,
		"animation":   `start_animation = "spin"`,
		"duration":    "start_animation_duration = -1",
		"unknown key": "thicknes = 3",
		"syntax":      "value = ",
		"named value": "[styles.a]\nvalue = -1",
	}
	for name, src := range tests {
		if _, err := Decode([]byte(src)); err == nil {
			t.Errorf("%s: Decode(%q) succeeded", name, src)
		}
	}
	if _, err := Decode([]byte("value = 101")); !errors.Is(err, circle.ErrInvalidArgument) {
		t.Errorf("value range: got %v, want ErrInvalidArgument", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "circle.toml")
	if err := os.WriteFile(path, []byte(sheet), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Names()) != 2 {
		t.Errorf("Names: got %v", s.Names())
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("Load of a missing file succeeded")
	}
}
