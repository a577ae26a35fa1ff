package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nhle/worklance/internal/model"
)

func newConfigCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the config file",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "path",
			Short: "Print the config file path",
			RunE: func(cmd *cobra.Command, _ []string) error {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), opts.configPath)
				return err
			},
		},
		&cobra.Command{
			Use:   "init",
			Short: "Write a config file with the current settings",
			RunE: func(cmd *cobra.Command, _ []string) error {
				if _, err := os.Stat(opts.configPath); err == nil {
					return fmt.Errorf("config file %s already exists", opts.configPath)
				}

				cfg, err := loadConfig(opts)
				if err != nil {
					return err
				}
				if err := model.SaveConfig(opts.configPath, cfg); err != nil {
					return err
				}

				_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", opts.configPath)
				return err
			},
		},
	)

	return cmd
}
