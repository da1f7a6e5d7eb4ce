package quake

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
)

const (
	MsgFetchFailed  = "Failed to fetch earthquakes."
	MsgCreateFailed = "Failed to create earthquake."
	MsgUpdateFailed = "Failed to update earthquake."
	MsgDeleteFailed = "Failed to delete earthquake."
)

// ErrMissingRecord means the server accepted a change but did not return the record.
var ErrMissingRecord = errors.New("response did not include the earthquake")

type earthquakeService struct {
	client *Client
}

func earthquakeRoute(id int64) string {
	return "/earthquakes/" + strconv.FormatInt(id, 10)
}

func (s *earthquakeService) ListClassified(ctx context.Context) ([]Earthquake, error) {
	const route = "/earthquakes/classified"

	var page ClassifiedPage
	if err := s.client.do(ctx, request{
		method:   http.MethodGet,
		route:    route,
		result:   &page,
		fallback: MsgFetchFailed,
	}); err != nil {
		return nil, err
	}
	if page.Content == nil {
		return []Earthquake{}, nil
	}
	return page.Content, nil
}

// CreateManual returns the created record when the server echoes one, nil otherwise.
func (s *earthquakeService) CreateManual(ctx context.Context, in ManualEarthquake) (*Earthquake, error) {
	const route = "/earthquakes/manual"

	var created Earthquake
	if err := s.client.do(ctx, request{
		method:   http.MethodPost,
		route:    route,
		body:     in,
		result:   &created,
		fallback: MsgCreateFailed,
	}); err != nil {
		return nil, err
	}
	if created.ID == 0 {
		return nil, nil
	}
	return &created, nil
}

// Update returns the record as the server stored it. A success without a
// record body is reported as ErrMissingRecord.
func (s *earthquakeService) Update(ctx context.Context, id int64, in EarthquakeUpdate) (Earthquake, error) {
	var updated Earthquake
	if err := s.client.do(ctx, request{
		method:   http.MethodPut,
		route:    earthquakeRoute(id),
		body:     in,
		result:   &updated,
		fallback: MsgUpdateFailed,
	}); err != nil {
		return Earthquake{}, err
	}
	if updated.ID == 0 {
		return Earthquake{}, fmt.Errorf("updating earthquake %d: %w", id, ErrMissingRecord)
	}
	return updated, nil
}

// Delete succeeds only on 204 No Content.
func (s *earthquakeService) Delete(ctx context.Context, id int64) error {
	return s.client.do(ctx, request{
		method:   http.MethodDelete,
		route:    earthquakeRoute(id),
		expect:   http.StatusNoContent,
		fallback: MsgDeleteFailed,
	})
}
