package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/garrettladley/safequake/internal/client/quake"
	"github.com/garrettladley/safequake/internal/forms"
	"github.com/garrettladley/safequake/internal/xslog"
)

func loginCmd() *cobra.Command {
	var f forms.Login

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			creds, err := f.Parse()
			if err != nil {
				return err
			}

			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			token, err := a.client.Auth.Login(ctx, creds)
			if err != nil {
				return a.userError(ctx, err, quake.MsgLoginFailed)
			}
			if err := a.session.Login(ctx, token); err != nil {
				return fmt.Errorf("failed to store session: %w", err)
			}

			a.logger.InfoContext(ctx, "logged in", xslog.Email(creds.Email))
			fmt.Fprintln(cmd.OutOrStdout(), "Logged in.")
			return nil
		},
	}

	cmd.Flags().StringVar(&f.Email, "email", "", "account email")
	cmd.Flags().StringVar(&f.Password, "password", "", "account password")
	return cmd
}

func registerCmd() *cobra.Command {
	var f forms.Register

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			reg, err := f.Parse()
			if err != nil {
				return err
			}

			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.client.Auth.Register(ctx, reg); err != nil {
				return a.userError(ctx, err, quake.MsgRegisterFailed)
			}

			a.logger.InfoContext(ctx, "registered", xslog.Email(reg.Email))
			fmt.Fprintln(cmd.OutOrStdout(), "Account created. Run `safequake login` to sign in.")
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.Name, "name", "", "full name")
	flags.StringVar(&f.Email, "email", "", "account email")
	flags.StringVar(&f.Password, "password", "", "account password")
	flags.StringVar(&f.Latitude, "latitude", "", "home latitude")
	flags.StringVar(&f.Longitude, "longitude", "", "home longitude")
	return cmd
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.session.Logout(ctx); err != nil {
				return fmt.Errorf("failed to clear session: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
			return nil
		},
	}
}

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show whether a session is stored",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "server:  %s\n", a.cfg.ServerURL)
			fmt.Fprintf(out, "session: %s\n", a.cfg.Session.Backend)
			if a.session.IsAuthenticated() {
				fmt.Fprintln(out, "status:  logged in")
			} else {
				fmt.Fprintln(out, "status:  logged out")
			}
			return nil
		},
	}
}
