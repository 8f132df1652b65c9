package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/panelkit/internal/tui"
	"github.com/alexisbeaulieu97/panelkit/pkg/diff"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

type renderOptions struct {
	width  int
	height int
	index  int
	skin   string
	golden string
	update bool
}

func newRenderCmd(flags *rootFlags) *cobra.Command {
	opts := &renderOptions{index: -1}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print a single settled frame of the showcase",
		Long: `Render the showcase once without animation and print it to stdout.

The frame size defaults to the terminal size when stdout is a terminal and
to 80x24 otherwise.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, flags, opts)
		},
	}

	cmd.Flags().IntVar(&opts.width, "width", 0, "Frame width in columns")
	cmd.Flags().IntVar(&opts.height, "height", 0, "Frame height in rows")
	cmd.Flags().IntVar(&opts.index, "index", -1, "Panel to show (defaults to the configured index)")
	cmd.Flags().StringVar(&opts.skin, "skin", "", "Skin to render with (defaults to the configured skin)")
	cmd.Flags().StringVar(&opts.golden, "golden", "", "Compare the frame against this file instead of printing it")
	cmd.Flags().BoolVar(&opts.update, "update", false, "Rewrite the --golden file with the current frame")

	return cmd
}

func runRender(cmd *cobra.Command, flags *rootFlags, opts *renderOptions) error {
	ctx := cmd.Context()
	sess, err := openSession(ctx, flags, "render", cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer sess.close(ctx)

	cfg, err := loadConfig(flags.configPath)
	if err != nil {
		sess.log.Error(err, "failed to load showcase")
		return err
	}
	if opts.index >= 0 {
		cfg.Settings.Index = opts.index
	}
	if opts.skin != "" {
		cfg.Settings.Skin = opts.skin
	}

	width, height := frameSize(opts.width, opts.height)
	sess.log.WithFields(map[string]any{
		"width":  width,
		"height": height,
	}).Debug("rendering frame")

	frame, err := tui.Render(cfg, width, height, sess.tuiOptions(true))
	if err != nil {
		return err
	}
	if opts.golden != "" {
		return compareGolden(cmd, opts, frame)
	}
	fmt.Fprintln(cmd.OutOrStdout(), frame)
	return nil
}

// compareGolden checks a frame against a stored snapshot, or refreshes it.
func compareGolden(cmd *cobra.Command, opts *renderOptions, frame string) error {
	if opts.update {
		if err := os.WriteFile(opts.golden, []byte(diff.Normalize(frame)), 0o644); err != nil {
			return fmt.Errorf("write golden file: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "updated %s\n", opts.golden)
		return nil
	}

	want, err := os.ReadFile(opts.golden)
	if err != nil {
		return fmt.Errorf("read golden file: %w", err)
	}
	if d := diff.Frames(string(want), frame, opts.golden, "frame"); d != "" {
		fmt.Fprint(cmd.OutOrStdout(), d)
		return fmt.Errorf("frame differs from %s", opts.golden)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "frame matches %s\n", opts.golden)
	return nil
}

// frameSize fills unset dimensions from the terminal, then from the defaults.
func frameSize(width, height int) (int, int) {
	if width > 0 && height > 0 {
		return width, height
	}

	termWidth, termHeight := defaultWidth, defaultHeight
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, h, err := term.GetSize(fd); err == nil && w > 0 && h > 0 {
			termWidth, termHeight = w, h
		}
	}

	if width <= 0 {
		width = termWidth
	}
	if height <= 0 {
		height = termHeight
	}
	return width, height
}
