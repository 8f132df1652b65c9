package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath  string
	logLevel    string
	logFile     string
	noAnimation bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "panelkit",
		Short:         "panelkit showcases skinned, focus-restoring panels in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Without a subcommand, launch the interactive showcase
			if len(args) == 0 {
				return runShowcase(cmd, flags)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Showcase file (.yaml, .yml or .toml); built-in showcase when empty")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Write logs to this file while the showcase runs")
	cmd.PersistentFlags().BoolVar(&flags.noAnimation, "no-animation", false, "Switch panels without transitions")

	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newValidateCmd(flags))
	cmd.AddCommand(newExampleCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}
