package quakes

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/garrettladley/safequake/internal/client/quake"
	"github.com/garrettladley/safequake/internal/remotelist"
	"github.com/garrettladley/safequake/internal/xslog"
)

type Controller = remotelist.Controller[quake.Earthquake, int64]

type FetchedMsg struct {
	Count int
	Err   error
}

type UpdatedMsg struct {
	Earthquake quake.Earthquake
	Err        error
}

type DeletedMsg struct {
	ID  int64
	Err error
}

// NewController wires the list to the classified endpoints. Update keeps the
// record's timestamp and nivel and sends only its magnitude as new.
func NewController(client *quake.Client) *Controller {
	return remotelist.NewController(
		quake.Earthquake.Key,
		client.Earthquakes.ListClassified,
		func(ctx context.Context, id int64, e quake.Earthquake) (quake.Earthquake, error) {
			return client.Earthquakes.Update(ctx, id, quake.UpdateFrom(e, e.Magnitude))
		},
		client.Earthquakes.Delete,
	)
}

func (s State) fetchCmd() tea.Cmd {
	ctrl, deps := s.ctrl, s.deps
	return func() tea.Msg {
		items, err := ctrl.Refresh(deps.Ctx)
		if err != nil {
			return FetchedMsg{Err: err}
		}
		deps.Logger.DebugContext(deps.Ctx, "earthquakes loaded", xslog.Count(len(items)))
		return FetchedMsg{Count: len(items)}
	}
}

func (s State) updateCmd(e quake.Earthquake) tea.Cmd {
	ctrl, deps := s.ctrl, s.deps
	return func() tea.Msg {
		updated, err := ctrl.Update(deps.Ctx, e.ID, e)
		if err != nil {
			return UpdatedMsg{Earthquake: e, Err: err}
		}
		deps.Logger.InfoContext(deps.Ctx, "earthquake updated", xslog.EarthquakeID(e.ID))
		return UpdatedMsg{Earthquake: updated}
	}
}

func (s State) deleteCmd(id int64) tea.Cmd {
	ctrl, deps := s.ctrl, s.deps
	return func() tea.Msg {
		if err := ctrl.Delete(deps.Ctx, id); err != nil {
			return DeletedMsg{ID: id, Err: err}
		}
		deps.Logger.InfoContext(deps.Ctx, "earthquake deleted", xslog.EarthquakeID(id))
		return DeletedMsg{ID: id}
	}
}

// deleteConfirmedMsg is emitted when the user accepts the delete dialog.
type deleteConfirmedMsg struct {
	id int64
}

func confirmDeleteCmd(id int64) tea.Cmd {
	return func() tea.Msg { return deleteConfirmedMsg{id: id} }
}
