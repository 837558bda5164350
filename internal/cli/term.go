// SPDX-License-Identifier: Unlicense OR MIT

package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kratorius/circleprogress/circle"
	"github.com/kratorius/circleprogress/internal/term"
)

func newTermCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "term",
		Short: "Show a circle in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rows, _ := cmd.Flags().GetInt("rows")
			build := func() (*circle.ProgressCircle, error) {
				return newCircle(v)
			}
			m := term.New(rows, build)
			if err := m.Err(); err != nil {
				return err
			}
			if _, err := tea.NewProgram(m, tea.WithContext(cmd.Context())).Run(); err != nil {
				return &ExitError{Code: ExitCLIError, Err: err}
			}
			return m.Err()
		},
	}
	cmd.Flags().Int("rows", 12, "Height in terminal rows")
	return cmd
}
