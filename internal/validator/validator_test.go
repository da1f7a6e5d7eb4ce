package validator

import (
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type credentials struct {
	email    string
	password string
}

func (c credentials) Validate() map[string]string {
	var errs map[string]string
	errs = Required(errs, "email", c.email)
	errs = Required(errs, "password", c.password)
	return errs
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   credentials
		want map[string]string
	}{
		{name: "complete", in: credentials{email: "a@b.c", password: "x"}},
		{
			name: "blank password",
			in:   credentials{email: "a@b.c", password: "   "},
			want: map[string]string{"password": "password is required"},
		},
		{
			name: "both missing",
			in:   credentials{},
			want: map[string]string{
				"email":    "email is required",
				"password": "password is required",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := Validate(tt.in)
			if tt.want == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error")
			}
			if err.StatusCode != http.StatusUnprocessableEntity {
				t.Errorf("status = %d, want %d", err.StatusCode, http.StatusUnprocessableEntity)
			}
			if diff := cmp.Diff(tt.want, err.Validation.Fields); diff != "" {
				t.Errorf("fields mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
