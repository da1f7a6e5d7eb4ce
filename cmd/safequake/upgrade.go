package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/garrettladley/safequake/internal/client/github"
	"github.com/garrettladley/safequake/internal/version"
)

const installPath = "github.com/garrettladley/safequake/cmd/safequake@latest"

func upgradeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upgrade",
		Short: "Check for updates and install if available",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			currentVersion := version.Get()

			latest, err := github.NewClient().LatestRelease(ctx)
			if err != nil {
				return fmt.Errorf("failed to check for updates: %w", err)
			}

			if !version.IsNewer(currentVersion, latest.TagName) {
				fmt.Printf("safequake is up to date (%s)\n", currentVersion)
				return nil
			}

			fmt.Printf("Updating safequake %s → %s\n", currentVersion, latest.TagName)

			if version.IsHomebrew() {
				return run(ctx, "brew", "upgrade", github.Repo)
			}
			if err := run(ctx, "go", "install", installPath); err != nil {
				return err
			}
			fmt.Println("Successfully updated!")
			return nil
		},
	}
}

func run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s upgrade failed: %w", name, err)
	}
	return nil
}
