package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#000000", Color{A: 0xff}, false},
		{"#ff8000", Color{R: 0xff, G: 0x80, A: 0xff}, false},
		{"ff8000", Color{R: 0xff, G: 0x80, A: 0xff}, false},
		{"#f80", Color{R: 0xff, G: 0x88, A: 0xff}, false},
		{"#10203040", Color{R: 0x10, G: 0x20, B: 0x30, A: 0x40}, false},
		{"", Color{}, true},
		{"#12345", Color{}, true},
		{"#gggggg", Color{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidColor) {
					t.Fatalf("ParseColor(%q) error = %v, want ErrInvalidColor", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseColor(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestColorString(t *testing.T) {
	if got := (Color{R: 1, G: 2, B: 3, A: 0xff}).String(); got != "#010203" {
		t.Errorf("String() = %q", got)
	}
	if got := (Color{R: 1, G: 2, B: 3, A: 4}).String(); got != "#01020304" {
		t.Errorf("String() = %q", got)
	}
}

func TestDefaultThemeIsValid(t *testing.T) {
	if err := DefaultTheme().Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestParseTheme(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		check   func(t *testing.T, th Theme)
		wantErr error
	}{
		{
			name:  "empty keeps defaults",
			in:    "",
			check: func(t *testing.T, th Theme) {
				if th != DefaultTheme() {
					t.Errorf("theme = %+v, want defaults", th)
				}
			},
		},
		{
			name:  "partial override",
			in:    "dead_zone: '#336699'\naccidentals: unicode\n",
			check: func(t *testing.T, th Theme) {
				if th.DeadZone != (Color{R: 0x33, G: 0x66, B: 0x99, A: 0xff}) {
					t.Errorf("dead_zone = %v", th.DeadZone)
				}
				if th.Accidentals != "unicode" {
					t.Errorf("accidentals = %q", th.Accidentals)
				}
				if th.Stroke != DefaultTheme().Stroke {
					t.Errorf("stroke changed to %v", th.Stroke)
				}
			},
		},
		{name: "bad color", in: "fill: 'red'\n", wantErr: ErrInvalidColor},
		{name: "unknown key", in: "font: serif\n", wantErr: ErrInvalidTheme},
		{name: "zero line width", in: "line_width: 0\n", wantErr: ErrInvalidTheme},
		{name: "bad accidentals", in: "accidentals: german\n", wantErr: ErrInvalidTheme},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th, err := ParseTheme([]byte(tt.in))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			tt.check(t, th)
		})
	}
}

func TestThemeRoundTrip(t *testing.T) {
	want := DefaultTheme()
	want.Text = Color{R: 0x20, G: 0x40, B: 0x60, A: 0x80}
	data, err := yaml.Marshal(want)
	if err != nil {
		t.Fatal(err)
	}
	got, err := ParseTheme(data)
	if err != nil {
		t.Fatalf("ParseTheme(%s): %v", data, err)
	}
	if got != want {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}

func TestLoadTheme(t *testing.T) {
	th, err := LoadTheme("")
	if err != nil || th != DefaultTheme() {
		t.Fatalf("LoadTheme(\"\") = %+v, %v", th, err)
	}

	path := filepath.Join(t.TempDir(), "theme.yaml")
	if err := os.WriteFile(path, []byte("line_width: 2.5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	th, err = LoadTheme(path)
	if err != nil {
		t.Fatal(err)
	}
	if th.LineWidth != 2.5 {
		t.Errorf("line_width = %v, want 2.5", th.LineWidth)
	}

	if _, err := LoadTheme(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v, want ErrNotExist", err)
	}
}
