package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"sync"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/garrettladley/safequake/internal/client/quake"
	"github.com/garrettladley/safequake/internal/forms"
	"github.com/garrettladley/safequake/internal/xslog"
)

const deleteConcurrency = 4

func quakesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "quakes",
		Aliases: []string{"q"},
		Short:   "List, create, edit and delete classified earthquakes",
	}
	cmd.AddCommand(
		quakesListCmd(),
		quakesCreateCmd(),
		quakesUpdateCmd(),
		quakesDeleteCmd(),
	)
	return cmd
}

func quakesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the classified earthquakes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()
			if err := a.requireSession(); err != nil {
				return err
			}

			items, err := a.client.Earthquakes.ListClassified(ctx)
			if err != nil {
				return a.userError(ctx, err, quake.MsgFetchFailed)
			}
			if len(items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No earthquakes.")
				return nil
			}
			return renderQuakes(cmd.OutOrStdout(), items)
		},
	}
}

func renderQuakes(w io.Writer, items []quake.Earthquake) error {
	table := tablewriter.NewTable(w,
		tablewriter.WithConfig(tablewriter.Config{
			Row: tw.CellConfig{
				Formatting: tw.CellFormatting{AutoWrap: tw.WrapNone},
				Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			},
			Header: tw.CellConfig{
				Formatting: tw.CellFormatting{AutoFormat: tw.On},
				Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			},
		}),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Separators: tw.Separators{ShowHeader: tw.Off},
			},
		}),
	)

	table.Header("id", "timestamp", "magnitude", "latitude", "longitude", "nivel")
	for _, e := range items {
		if err := table.Append(quakeRow(e)); err != nil {
			return err
		}
	}
	return table.Render()
}

func quakeRow(e quake.Earthquake) []string {
	return []string{
		strconv.FormatInt(e.ID, 10),
		e.Timestamp,
		strconv.FormatFloat(e.Magnitude, 'f', 1, 64),
		strconv.FormatFloat(e.Latitude, 'f', 4, 64),
		strconv.FormatFloat(e.Longitude, 'f', 4, 64),
		e.Nivel,
	}
}

func quakesCreateCmd() *cobra.Command {
	var f forms.Manual

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register an earthquake manually",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			in, err := f.Parse()
			if err != nil {
				return err
			}

			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()
			if err := a.requireSession(); err != nil {
				return err
			}

			created, err := a.client.Earthquakes.CreateManual(ctx, in)
			if err != nil {
				return a.userError(ctx, err, quake.MsgCreateFailed)
			}

			out := cmd.OutOrStdout()
			if created == nil {
				fmt.Fprintln(out, "Earthquake created.")
				return nil
			}
			a.logger.InfoContext(ctx, "earthquake created", xslog.EarthquakeID(created.ID))
			fmt.Fprintf(out, "Earthquake %d created (%s).\n", created.ID, created.Nivel)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.Timestamp, "timestamp", "", "when it happened, e.g. 2024-05-01T10:00:00")
	flags.StringVar(&f.Magnitude, "magnitude", "", "magnitude")
	flags.StringVar(&f.Latitude, "latitude", "", "epicenter latitude")
	flags.StringVar(&f.Longitude, "longitude", "", "epicenter longitude")
	return cmd
}

func quakesUpdateCmd() *cobra.Command {
	var (
		f         forms.Magnitude
		timestamp string
		nivel     string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change the magnitude of an earthquake",
		Long: "Sends the new magnitude together with the record's current timestamp and nivel.\n" +
			"Pass --timestamp and --nivel to override those as well.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if errs := f.Validate(); len(errs) > 0 {
				return forms.Errors(errs)
			}

			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()
			if err := a.requireSession(); err != nil {
				return err
			}

			current := quake.Earthquake{ID: id, Timestamp: timestamp, Nivel: nivel}
			if timestamp == "" || nivel == "" {
				found, err := findQuake(ctx, a.client, id)
				if err != nil {
					return a.userError(ctx, err, quake.MsgFetchFailed)
				}
				current = found
				if timestamp != "" {
					current.Timestamp = timestamp
				}
				if nivel != "" {
					current.Nivel = nivel
				}
			}

			in, err := f.Parse(current)
			if err != nil {
				return err
			}
			updated, err := a.client.Earthquakes.Update(ctx, id, in)
			if err != nil {
				return a.userError(ctx, err, quake.MsgUpdateFailed)
			}

			a.logger.InfoContext(ctx, "earthquake updated", xslog.EarthquakeID(id))
			return renderQuakes(cmd.OutOrStdout(), []quake.Earthquake{updated})
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.Value, "magnitude", "", "new magnitude")
	flags.StringVar(&timestamp, "timestamp", "", "override the timestamp")
	flags.StringVar(&nivel, "nivel", "", "override the classification level")
	return cmd
}

func findQuake(ctx context.Context, client *quake.Client, id int64) (quake.Earthquake, error) {
	items, err := client.Earthquakes.ListClassified(ctx)
	if err != nil {
		return quake.Earthquake{}, err
	}
	for _, e := range items {
		if e.ID == id {
			return e, nil
		}
	}
	return quake.Earthquake{}, &quake.APIError{StatusCode: http.StatusNotFound, Message: fmt.Sprintf("Earthquake %d not found.", id)}
}

func quakesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>...",
		Short: "Delete one or more earthquakes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			ids := make([]int64, 0, len(args))
			for _, arg := range args {
				id, err := parseID(arg)
				if err != nil {
					return err
				}
				ids = append(ids, id)
			}

			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()
			if err := a.requireSession(); err != nil {
				return err
			}

			failed := deleteAll(ctx, a, cmd.OutOrStdout(), ids)
			if failed > 0 {
				return fmt.Errorf("%d of %d deletions failed", failed, len(ids))
			}
			return nil
		},
	}
}

// deleteAll issues one request per id and reports each outcome on its own line.
// Failures do not stop the remaining deletions.
func deleteAll(ctx context.Context, a *app, out io.Writer, ids []int64) int {
	var (
		mu     sync.Mutex
		failed int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(deleteConcurrency)
	for _, id := range ids {
		g.Go(func() error {
			err := a.client.Earthquakes.Delete(gctx, id)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failed++
				a.logger.WarnContext(gctx, "delete failed", xslog.EarthquakeID(id), xslog.Error(err))
				fmt.Fprintf(out, "%d: %s\n", id, quake.UserMessage(err, quake.MsgDeleteFailed))
				return nil
			}
			fmt.Fprintf(out, "%d: deleted\n", id)
			return nil
		})
	}
	_ = g.Wait()
	return failed
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid earthquake id %q", s)
	}
	return id, nil
}
