package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/nhle/worklance/internal/app"
	"github.com/nhle/worklance/internal/logging"
	"github.com/nhle/worklance/internal/model"
)

// options are the flags shared by every command.
type options struct {
	configPath string
	apiURL     string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:          "worklance",
		Short:        "WorkLance marketplace client for the terminal",
		Long:         "worklance connects to a WorkLance backend to browse and post jobs, send proposals, manage contracts and escrow, and chat with the other party.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd, opts)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", model.DefaultConfigPath(), "path to the config file")
	rootCmd.PersistentFlags().StringVar(&opts.apiURL, "api", "", "backend base URL (overrides api.base_url)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newPingCmd(opts),
		newLoginCmd(opts),
		newLogoutCmd(opts),
		newConfigCmd(opts),
	)

	return rootCmd
}

func runTUI(cmd *cobra.Command, opts *options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Log.File), 0o700); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}
	logFile, err := tea.LogToFile(cfg.Log.File, "worklance")
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer logFile.Close()

	log := logging.New(logFile, cfg.Log.Level)

	d, err := wire(cmd.Context(), cfg, log)
	if err != nil {
		return err
	}
	defer d.Close()

	m := app.New(cfg, d.client, d.state, log)
	defer m.Close()

	log.Info(cmd.Context(), "starting worklance", "api", cfg.API.BaseURL, "backend", cfg.Storage.SessionBackend)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running tui: %w", err)
	}
	return nil
}
