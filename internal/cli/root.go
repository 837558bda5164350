// SPDX-License-Identifier: Unlicense OR MIT

// Package cli implements the circleprogress command line.
package cli

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	ExitOK       = 0
	ExitCLIError = 1
	ExitIOError  = 2
)

// ExitError wraps an error with a process exit code.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func newRootCmd(v *viper.Viper) *cobra.Command {
	root := &cobra.Command{
		Use:           "circleprogress",
		Short:         "Preview circular progress indicators",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(v, cmd.Root())
		},
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "Config file (default is $XDG_CONFIG_HOME/circleprogress/config.*)")
	pf.String("style", "", "TOML style file")
	pf.String("name", "", "Named style in the style file")
	pf.Int("size", 300, "Size in pixels of the rendered circle")
	pf.String("background", "", "Background color (transparent if empty)")
	bindCircleFlags(root)

	root.AddCommand(newRenderCmd(v))
	root.AddCommand(newFramesCmd(v))
	root.AddCommand(newTermCmd(v))
	root.AddCommand(newShowCmd(v))
	return root
}

// initConfig wires Viper with the config file, environment and flags.
func initConfig(v *viper.Viper, root *cobra.Command) error {
	pf := root.PersistentFlags()
	if path, _ := pf.GetString("config"); path != "" {
		v.SetConfigFile(path)
	} else {
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "circleprogress"))
		}
		v.SetConfigName("config")
	}

	// Environment variables: CIRCLEPROGRESS_*
	v.SetEnvPrefix("CIRCLEPROGRESS")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	keys := append([]string{"style", "name", "size", "background"}, circleKeys...)
	for _, key := range keys {
		if err := v.BindPFlag(key, pf.Lookup(key)); err != nil {
			return err
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return &ExitError{Code: ExitCLIError, Err: err}
		}
	}
	return nil
}

// Execute runs the CLI with the provided context.
func Execute(ctx context.Context) error {
	return newRootCmd(viper.New()).ExecuteContext(ctx)
}
