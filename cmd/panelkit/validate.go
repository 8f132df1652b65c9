package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/panelkit/internal/config"
)

func newValidateCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [config]",
		Short: "Check a showcase file without launching it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := flags.configPath
			if len(args) == 1 {
				path = args[0]
			}
			if path == "" {
				return fmt.Errorf("config file is required")
			}
			return runValidate(cmd, flags, path)
		},
	}

	return cmd
}

func runValidate(cmd *cobra.Command, flags *rootFlags, path string) error {
	ctx := cmd.Context()
	sess, err := openSession(ctx, flags, "validate", cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer sess.close(ctx)

	cfg, err := config.ParseConfig(path)
	if err != nil {
		sess.log.WithField("path", path).Debug("showcase rejected")
		return err
	}

	items := 0
	for _, panel := range cfg.Panels {
		items += len(panel.Items)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s is valid: %d panels, %d items\n", path, len(cfg.Panels), items)
	return nil
}
