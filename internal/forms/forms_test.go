package forms

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/garrettladley/safequake/internal/client/quake"
)

func TestManualParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		form     Manual
		want     quake.ManualEarthquake
		wantErrs Errors
	}{
		{
			name: "valid",
			form: Manual{Timestamp: "2024-01-01T00:00:00Z", Magnitude: "4.2", Latitude: "-23.5", Longitude: "-46.6"},
			want: quake.ManualEarthquake{Timestamp: "2024-01-01T00:00:00Z", Magnitude: 4.2, Latitude: -23.5, Longitude: -46.6},
		},
		{
			name: "decimal comma",
			form: Manual{Timestamp: "t", Magnitude: "4,2", Latitude: "1", Longitude: "2"},
			want: quake.ManualEarthquake{Timestamp: "t", Magnitude: 4.2, Latitude: 1, Longitude: 2},
		},
		{
			name:     "missing fields",
			form:     Manual{Magnitude: "4"},
			wantErrs: Errors{"timestamp": "timestamp is required", "latitude": "latitude is required", "longitude": "longitude is required"},
		},
		{
			name:     "non numeric",
			form:     Manual{Timestamp: "t", Magnitude: "big", Latitude: "1", Longitude: "x"},
			wantErrs: Errors{"magnitude": "magnitude must be a number", "longitude": "longitude must be a number"},
		},
		{
			name:     "not finite",
			form:     Manual{Timestamp: "t", Magnitude: "NaN", Latitude: "Inf", Longitude: "-infinity"},
			wantErrs: Errors{"magnitude": "magnitude must be a number", "latitude": "latitude must be a number", "longitude": "longitude must be a number"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := tt.form.Parse()
			if tt.wantErrs != nil {
				var errs Errors
				if !errors.As(err, &errs) {
					t.Fatalf("expected Errors, got %v", err)
				}
				if diff := cmp.Diff(tt.wantErrs, errs); diff != "" {
					t.Errorf("errors mismatch (-want +got):\n%s", diff)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("parsed mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoginParse(t *testing.T) {
	t.Parallel()

	got, err := Login{Email: " ana@example.com ", Password: "pw"}.Parse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(quake.Credentials{Email: "ana@example.com", Password: "pw"}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	_, err = Login{Email: "ana@example.com"}.Parse()
	var errs Errors
	if !errors.As(err, &errs) || errs["password"] == "" {
		t.Errorf("expected password error, got %v", err)
	}
}

func TestRegisterParse(t *testing.T) {
	t.Parallel()

	got, err := Register{Name: "Ana", Email: "a@b.c", Password: "pw", Latitude: "-22.9", Longitude: "-43.2"}.Parse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := quake.Registration{Name: "Ana", Email: "a@b.c", Password: "pw", Latitude: -22.9, Longitude: -43.2}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestMagnitudeParseKeepsRecordFields(t *testing.T) {
	t.Parallel()

	e := quake.Earthquake{ID: 5, Timestamp: "2024-01-01T00:00:00Z", Magnitude: 3.1, Nivel: "Leve"}
	got, err := Magnitude{Value: "4.2"}.Parse(e)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := quake.EarthquakeUpdate{Timestamp: e.Timestamp, Magnitude: 4.2, Nivel: "Leve"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestErrorsFirst(t *testing.T) {
	t.Parallel()

	errs := Errors{"password": "password is required", "email": "email is required"}
	if got := errs.First("email", "password"); got != "email is required" {
		t.Errorf("First() = %q", got)
	}
	if got := errs.Error(); got != "email is required; password is required" {
		t.Errorf("Error() = %q", got)
	}
}
