package quake

import "context"

type AuthService interface {
	Login(ctx context.Context, creds Credentials) (string, error)
	Register(ctx context.Context, reg Registration) error
}

type EarthquakeService interface {
	ListClassified(ctx context.Context) ([]Earthquake, error)
	CreateManual(ctx context.Context, in ManualEarthquake) (*Earthquake, error)
	Update(ctx context.Context, id int64, in EarthquakeUpdate) (Earthquake, error)
	Delete(ctx context.Context, id int64) error
}
