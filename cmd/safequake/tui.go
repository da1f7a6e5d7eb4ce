package main

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/garrettladley/safequake/internal/tui"
	"github.com/garrettladley/safequake/internal/xslog"
)

func runTUI(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	model := tui.New(tui.Deps{
		Ctx:     ctx,
		Logger:  a.logger,
		Session: a.session,
		Client:  a.client,
	})

	p := tea.NewProgram(model)
	if _, err := p.Run(); err != nil {
		a.logger.ErrorContext(ctx, "tui exited", xslog.Error(err))
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
