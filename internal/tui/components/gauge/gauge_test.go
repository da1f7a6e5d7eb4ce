package gauge

import (
	"image/color"
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

func TestOverlay(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		background string
		foreground string
		want       string
	}{
		{
			name:       "centered value replaces middle cells",
			background: "AAAAA\nBBBBB\nCCCCC",
			foreground: "     \n  X  \n     ",
			want:       "AAAAA\nBBXBB\nCCCCC",
		},
		{
			name:       "blank foreground keeps background",
			background: "AAAAA\nBBBBB",
			foreground: "     \n     ",
			want:       "AAAAA\nBBBBB",
		},
		{
			name:       "styled background keeps visible cells",
			background: "\x1b[31mAAAAA\x1b[0m",
			foreground: " 4.2 ",
			want:       "A4.2A",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ansi.Strip(overlay(tt.background, tt.foreground))
			if got != tt.want {
				t.Errorf("overlay() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOverlayArcsColoring(t *testing.T) {
	t.Parallel()

	var (
		bgColor   = color.RGBA{R: 100, G: 100, B: 100, A: 255}
		fillColor = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	)

	tests := []struct {
		name    string
		bgStr   string
		fillStr string
		want    string
	}{
		{name: "full fill", bgStr: "⣿⣿⣿", fillStr: "⣿⣿⣿", want: "⣿⣿⣿"},
		{name: "no fill", bgStr: "⣿⣿⣿", fillStr: "   ", want: "⣿⣿⣿"},
		{name: "fill ors dots", bgStr: "⠁⠁", fillStr: "⠈ ", want: "⠉⠁"},
		{name: "empty braille fill", bgStr: "⣿", fillStr: "⠀", want: "⣿"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := overlayArcs(tt.bgStr, tt.fillStr, bgColor, fillColor)
			if stripped := ansi.Strip(got); stripped != tt.want {
				t.Errorf("overlayArcs() = %q, want %q", stripped, tt.want)
			}
		})
	}
}

func TestMagnitudeRender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		magnitude float64
		nivel     string
	}{
		{name: "light", magnitude: 2.3, nivel: "Leve"},
		{name: "moderate", magnitude: 4.2, nivel: "Moderado"},
		{name: "strong", magnitude: 7.8, nivel: "Forte"},
		{name: "off scale", magnitude: 12, nivel: "Forte"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out := ansi.Strip(Magnitude(tt.magnitude, tt.nivel, WithDots(24)).Render())
			for _, want := range []string{"MAGNITUDE", tt.nivel} {
				if !strings.Contains(out, want) {
					t.Errorf("render is missing %q:\n%s", want, out)
				}
			}
			if w := lipgloss.Width(out); w != 12 {
				t.Errorf("width = %d, want 12", w)
			}
		})
	}
}

func TestNilValue(t *testing.T) {
	t.Parallel()

	out := ansi.Strip(New(nil, MaxMagnitude, "MAGNITUDE", color.White).Render())
	if !strings.Contains(out, "--") {
		t.Errorf("expected placeholder value, got:\n%s", out)
	}
}
