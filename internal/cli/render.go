// SPDX-License-Identifier: Unlicense OR MIT

package cli

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kratorius/circleprogress/raster"
)

func newRenderCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a circle to a PNG file",
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
			bg, err := background(v)
			if err != nil {
				return err
			}
			out, _ := cmd.Flags().GetString("out")
			if err := writePNG(out, raster.RenderOver(p, size, bg)); err != nil {
				return &ExitError{Code: ExitIOError, Err: err}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringP("out", "o", "circle.png", "Output file")
	return cmd
}

func newFramesCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "frames",
		Short: "Render the start animation as a PNG sequence",
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
			bg, err := background(v)
			if err != nil {
				return err
			}
			dir, _ := cmd.Flags().GetString("dir")
			fps, _ := cmd.Flags().GetInt("fps")
			if fps <= 0 {
				return &ExitError{Code: ExitCLIError, Err: fmt.Errorf("--fps must be positive, got %d", fps)}
			}
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return &ExitError{Code: ExitIOError, Err: err}
			}
			var n int
			err = raster.Animate(p, size, bg, time.Now(), time.Second/time.Duration(fps), func(i int, img *image.RGBA) error {
				n++
				return writePNG(filepath.Join(dir, fmt.Sprintf("frame-%04d.png", i)), img)
			})
			if err != nil {
				return &ExitError{Code: ExitIOError, Err: err}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d frames to %s\n", n, dir)
			return nil
		},
	}
	cmd.Flags().String("dir", "frames", "Output directory")
	cmd.Flags().Int("fps", 30, "Frames per second")
	return cmd
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
