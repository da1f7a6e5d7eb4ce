//go:build !release

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/garrettladley/safequake/internal/client/quake"
	appenv "github.com/garrettladley/safequake/internal/env"
	"github.com/garrettladley/safequake/internal/fakeapi"
	"github.com/garrettladley/safequake/internal/xslog"
)

func addDevCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(devServerCmd())
}

func devServerCmd() *cobra.Command {
	var (
		addr  string
		email string
		pass  string
		seed  bool
	)

	cmd := &cobra.Command{
		Use:   "dev-server",
		Short: "Run an in-memory SafeQuake API for local development",
		Long: "Serves the SafeQuake REST API from memory. Point the client at it with\n" +
			"SAFEQUAKE_SERVER_URL=http://" + defaultDevAddr + ".",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			logger := xslog.NewLoggerFromEnv(os.Stdout, appenv.Development)

			srv := fakeapi.New(logger)
			if email != "" {
				err := srv.Store.Register(quake.Registration{Name: "Dev", Email: email, Password: pass})
				if err != nil {
					return fmt.Errorf("failed to register dev user: %w", err)
				}
			}
			if seed {
				srv.Store.Seed(devQuakes...)
			}

			return srv.ListenAndServe(ctx, addr)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&addr, "addr", defaultDevAddr, "listen address")
	flags.StringVar(&email, "email", "dev@safequake.local", "pre-registered user email, empty to skip")
	flags.StringVar(&pass, "password", "dev", "pre-registered user password")
	flags.BoolVar(&seed, "seed", true, "seed sample earthquakes")
	return cmd
}

const defaultDevAddr = "localhost:8080"

var devQuakes = []quake.Earthquake{
	{ID: 1, Timestamp: "2024-04-02T23:58:11", Magnitude: 7.4, Latitude: 23.819, Longitude: 121.562},
	{ID: 2, Timestamp: "2024-05-10T04:12:40", Magnitude: 3.1, Latitude: -23.55, Longitude: -46.63},
	{ID: 3, Timestamp: "2024-06-21T17:03:09", Magnitude: 5.2, Latitude: 38.32, Longitude: 142.37},
	{ID: 4, Timestamp: "2024-08-08T16:42:55", Magnitude: 4.6, Latitude: 31.71, Longitude: 131.56},
	{ID: 5, Timestamp: "2024-09-14T09:27:33", Magnitude: 6.0, Latitude: -33.45, Longitude: -70.66},
}
