package fakeapi

import (
	"errors"
	"net/http"
	"strconv"

	go_json "github.com/goccy/go-json"

	"github.com/garrettladley/safequake/internal/client/quake"
	"github.com/garrettladley/safequake/internal/validator"
	"github.com/garrettladley/safequake/internal/xerrors"
	"github.com/garrettladley/safequake/internal/xhttp"
	"github.com/garrettladley/safequake/internal/xslog"
)

type handlers struct {
	store *Store
}

func decode[T any](r *http.Request) (T, error) {
	var v T
	if err := go_json.NewDecoder(r.Body).Decode(&v); err != nil {
		return v, xerrors.BadRequest(xerrors.WithMessage("invalid JSON body"), xerrors.WithCause(err))
	}
	return v, nil
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, xerrors.BadRequest(xerrors.WithMessage("invalid earthquake id"), xerrors.WithCause(err))
	}
	return id, nil
}

// handleLogin handles POST /login requests.
func (h *handlers) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, err := decode[loginRequest](r)
	if err != nil {
		xerrors.WriteError(ctx, w, err)
		return
	}
	if verr := validator.Validate(req); verr != nil {
		xerrors.WriteError(ctx, w, verr)
		return
	}

	token, err := h.store.Login(quake.Credentials(req))
	if err != nil {
		xerrors.WriteError(ctx, w, xerrors.Unauthorized(xerrors.WithMessage("Invalid email or password.")))
		return
	}

	xhttp.WriteOK(w, quake.LoginResponse{Token: token})
}

// handleRegister handles POST /users/create requests.
func (h *handlers) handleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, err := decode[registerRequest](r)
	if err != nil {
		xerrors.WriteError(ctx, w, err)
		return
	}
	if verr := validator.Validate(req); verr != nil {
		xerrors.WriteError(ctx, w, verr)
		return
	}

	if err := h.store.Register(quake.Registration(req)); err != nil {
		if errors.Is(err, ErrUserExists) {
			xerrors.WriteError(ctx, w, xerrors.Conflict(xerrors.WithMessage("Email already registered.")))
			return
		}
		xerrors.WriteError(ctx, w, err)
		return
	}

	xslog.FromContext(ctx).InfoContext(ctx, "user registered", xslog.Email(req.Email))
	xhttp.WriteNoContent(w)
}

// handleListClassified handles GET /earthquakes/classified requests.
func (h *handlers) handleListClassified(w http.ResponseWriter, _ *http.Request) {
	xhttp.WriteOK(w, quake.ClassifiedPage{Content: h.store.List()})
}

// handleCreateManual handles POST /earthquakes/manual requests.
func (h *handlers) handleCreateManual(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, err := decode[manualRequest](r)
	if err != nil {
		xerrors.WriteError(ctx, w, err)
		return
	}
	if verr := validator.Validate(req); verr != nil {
		xerrors.WriteError(ctx, w, verr)
		return
	}

	created := h.store.Create(quake.ManualEarthquake(req))
	xslog.FromContext(ctx).InfoContext(ctx, "earthquake created",
		xslog.EarthquakeID(created.ID),
		xslog.Email(emailFromContext(ctx)),
	)
	xhttp.WriteCreated(w, created)
}

// handleUpdate handles PUT /earthquakes/{id} requests.
func (h *handlers) handleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		xerrors.WriteError(ctx, w, err)
		return
	}
	req, err := decode[quake.EarthquakeUpdate](r)
	if err != nil {
		xerrors.WriteError(ctx, w, err)
		return
	}

	updated, err := h.store.Update(id, req)
	if err != nil {
		xerrors.WriteError(ctx, w, notFound(err))
		return
	}
	xhttp.WriteOK(w, updated)
}

// handleDelete handles DELETE /earthquakes/{id} requests.
func (h *handlers) handleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		xerrors.WriteError(ctx, w, err)
		return
	}
	if err := h.store.Delete(id); err != nil {
		xerrors.WriteError(ctx, w, notFound(err))
		return
	}
	xhttp.WriteNoContent(w)
}

func notFound(err error) error {
	if errors.Is(err, ErrNotFound) {
		return xerrors.NotFound(xerrors.WithMessage("Earthquake not found."), xerrors.WithCause(err))
	}
	return err
}
