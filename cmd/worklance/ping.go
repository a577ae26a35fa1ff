package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nhle/worklance/internal/api"
	"github.com/nhle/worklance/internal/logging"
)

func newPingCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check that the backend is reachable",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}

			client := api.NewClient(cfg.API.BaseURL, cfg.API.Timeout(), logging.New(cmd.ErrOrStderr(), "warn"))
			if err := client.Ping(cmd.Context(), cfg.API.ProbeTimeout()); err != nil {
				return fmt.Errorf("backend at %s: %w", cfg.API.BaseURL, err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "backend reachable at %s\n", cfg.API.BaseURL)
			return err
		},
	}
}
