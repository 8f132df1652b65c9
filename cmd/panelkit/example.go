package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/panelkit/internal/config"
)

func newExampleCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "example",
		Short: "Print the built-in showcase as a starting config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := config.ParseFormat(format)
			if err != nil {
				return err
			}
			data, err := config.Marshal(config.DefaultShowcase(), parsed)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "Output format (yaml or toml)")

	return cmd
}
