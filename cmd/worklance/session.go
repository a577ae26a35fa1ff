package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/nhle/worklance/internal/api"
	"github.com/nhle/worklance/internal/logging"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

func newLoginCmd(opts *options) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and remember the session for the next TUI start",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}

			if email == "" {
				email, err = promptLine(bufio.NewReader(cmd.InOrStdin()), cmd.OutOrStdout(), "Email: ")
				if err != nil {
					return fmt.Errorf("reading email: %w", err)
				}
			}
			password, err := promptPassword(cmd.OutOrStdout())
			if err != nil {
				return fmt.Errorf("reading password: %w", err)
			}

			d, err := wire(cmd.Context(), cfg, logging.New(cmd.ErrOrStderr(), "warn"))
			if err != nil {
				return err
			}
			defer d.Close()

			s, err := d.client.Login(cmd.Context(), email, password)
			if err != nil {
				return errors.New(api.UserMessage(err, "Login failed"))
			}
			if err := d.state.SignIn(cmd.Context(), *s); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (%s)\n", s.Name, s.Role)
			return err
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email (prompted when empty)")

	return cmd
}

func newLogoutCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}

			d, err := wire(cmd.Context(), cfg, logging.New(cmd.ErrOrStderr(), "warn"))
			if err != nil {
				return err
			}
			defer d.Close()

			if !d.state.LoggedIn() {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "Not logged in")
				return err
			}
			if err := d.state.SignOut(cmd.Context()); err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return err
		},
	}
}

func promptLine(r *bufio.Reader, w io.Writer, prompt string) (string, error) {
	if _, err := fmt.Fprint(w, prompt); err != nil {
		return "", err
	}
	line, err := r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && len(line) > 0) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func promptPassword(w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, "Password: "); err != nil {
		return "", err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}
