// SPDX-License-Identifier: Unlicense OR MIT

package cli

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kratorius/circleprogress/circle"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd(viper.New())
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRender(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "c.png")
	msg, err := run(t, "render", "--size", "64", "--value", "75", "--background", "white", "-o", out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(msg, out) {
		t.Errorf("output %q does not name the file", msg)
	}
	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 64 {
		t.Errorf("image size %v, want 64x64", b)
	}
}

func TestRenderInvalidValue(t *testing.T) {
	_, err := run(t, "render", "--value", "120", "-o", filepath.Join(t.TempDir(), "c.png"))
	var ee *ExitError
	if !errors.As(err, &ee) || ee.Code != ExitCLIError {
		t.Fatalf("got %v, want a CLI ExitError", err)
	}
	if !errors.Is(err, circle.ErrInvalidArgument) {
		t.Errorf("got %v, want ErrInvalidArgument", err)
	}
}

func TestFrames(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "frames")
	msg, err := run(t, "frames", "--size", "32", "--value", "40",
		"--animation", "incremental", "--duration", "100ms", "--fps", "20", "--dir", dir)
	if err != nil {
		t.Fatal(err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	// One frame every 50ms from 0 to 100ms.
	if len(entries) != 3 {
		t.Errorf("got %d frames, want 3", len(entries))
	}
	if !strings.Contains(msg, "3 frames") {
		t.Errorf("output: %q", msg)
	}
}

// resolve runs the root command and returns the circle options it
// resolves from flags, environment and config.
func resolve(t *testing.T, args ...string) circle.Options {
	t.Helper()
	v := viper.New()
	root := newRootCmd(v)
	var opts circle.Options
	root.AddCommand(&cobra.Command{
		Use: "resolve",
		RunE: func(*cobra.Command, []string) error {
			var err error
			opts, err = circleOptions(v)
			return err
		},
	})
	root.SetArgs(append([]string{"resolve"}, args...))
	if err := root.Execute(); err != nil {
		t.Fatal(err)
	}
	return opts
}

func TestCircleOptions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "style.toml")
	src := "thickness = 4\n\n[styles.big]\nthickness = 30\nvalue = 10\nlabel = \"percent\"\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	opts := resolve(t, "--style", path, "--name", "big", "--value", "60", "--text-color", "#ff0000")
	p, err := circle.New(opts)
	if err != nil {
		t.Fatal(err)
	}
	if p.Thickness() != 30 || p.Value() != 60 || p.Text() != "60%" {
		t.Errorf("got thickness %d value %d text %q", p.Thickness(), p.Value(), p.Text())
	}
	if c := p.TextColor(); c.R != 0xff || c.G != 0 {
		t.Errorf("text color: %v", c)
	}
}

func TestCircleOptionsEnvAndConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "config.toml")
	src := "thickness = 7\nstart-angle = 90\nanimation = \"roll\"\nduration = \"2s\"\n"
	if err := os.WriteFile(cfg, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CIRCLEPROGRESS_VALUE", "75")
	t.Setenv("CIRCLEPROGRESS_TEXT_SIZE", "22")

	opts := resolve(t, "--config", cfg)
	if opts.Value != 75 || opts.TextSize != 22 {
		t.Errorf("env: value %d text size %d, want 75 and 22", opts.Value, opts.TextSize)
	}
	if opts.Thickness != 7 || opts.StartAngle != 90 {
		t.Errorf("config: thickness %d start angle %d, want 7 and 90", opts.Thickness, opts.StartAngle)
	}
	if opts.StartAnimation != circle.AnimationRoll || opts.StartAnimationDuration != 2*time.Second {
		t.Errorf("config: animation %v for %v", opts.StartAnimation, opts.StartAnimationDuration)
	}

	// Flags win over the environment.
	if opts := resolve(t, "--config", cfg, "--value", "10"); opts.Value != 10 {
		t.Errorf("value %d, want 10 from the flag", opts.Value)
	}
}

func TestCircleOptionsBadEnv(t *testing.T) {
	t.Setenv("CIRCLEPROGRESS_COLOR", "nocolor")
	if _, err := run(t, "render", "-o", filepath.Join(t.TempDir(), "c.png")); err == nil {
		t.Error("invalid color from the environment accepted")
	}
}

func TestUnknownStyle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "style.toml")
	if err := os.WriteFile(path, []byte("value = 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := run(t, "render", "--style", path, "--name", "nope", "-o", filepath.Join(t.TempDir(), "x.png")); err == nil {
		t.Error("unknown style name accepted")
	}
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(cfg, []byte("size = 48\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "c.png")
	if _, err := run(t, "render", "--config", cfg, "-o", out); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfgImg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatal(err)
	}
	if cfgImg.Width != 48 {
		t.Errorf("width %d, want 48 from the config file", cfgImg.Width)
	}

	if _, err := run(t, "render", "--config", filepath.Join(dir, "missing.toml"), "-o", out); err == nil {
		t.Error("missing explicit config file accepted")
	}
}
