package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/panelkit/internal/tui"
)

func runShowcase(cmd *cobra.Command, flags *rootFlags) error {
	ctx := cmd.Context()

	// Log lines would tear the alternate screen, so they go to --log-file or nowhere.
	sess, err := openSession(ctx, flags, "showcase", io.Discard)
	if err != nil {
		return err
	}
	defer sess.close(ctx)

	cfg, err := loadConfig(flags.configPath)
	if err != nil {
		sess.log.Error(err, "failed to load showcase")
		return err
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		sess.log.Info("stdout is not a terminal; rendering a single frame")
		frame, err := tui.Render(cfg, defaultWidth, defaultHeight, sess.tuiOptions(true))
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), frame)
		return nil
	}

	model, err := tui.NewModel(cfg, sess.tuiOptions(flags.noAnimation))
	if err != nil {
		sess.log.Error(err, "failed to build showcase")
		return err
	}

	sess.log.Info("launching showcase")
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("showcase error: %w", err)
	}
	return nil
}
