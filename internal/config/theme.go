package config

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidColor = errors.New("invalid color")
	ErrInvalidTheme = errors.New("invalid theme")
)

// Color is a straight-alpha color written as #rrggbb or #rrggbbaa in theme files.
type Color color.NRGBA

func (c Color) RGBA() (r, g, b, a uint32) { return color.NRGBA(c).RGBA() }

func (c Color) String() string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// ParseColor parses #rgb, #rrggbb and #rrggbbaa.
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return Color{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseColor(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*c = parsed
	return nil
}

func (c Color) MarshalYAML() (interface{}, error) { return c.String(), nil }

// Theme holds the presentation settings of the wheel. Geometry is fixed.
type Theme struct {
	Background  Color   `yaml:"background"`
	Fill        Color   `yaml:"fill"`
	DeadZone    Color   `yaml:"dead_zone"`
	Stroke      Color   `yaml:"stroke"`
	Text        Color   `yaml:"text"`
	LineWidth   float64 `yaml:"line_width"`
	Accidentals string  `yaml:"accidentals"`
}

func DefaultTheme() Theme {
	return Theme{
		Background:  Color{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Fill:        Color{R: 0xfa, G: 0xfa, B: 0xfa, A: 0xff},
		DeadZone:    Color{R: 0xe4, G: 0xe4, B: 0xe4, A: 0xff},
		Stroke:      Color{R: 0x00, G: 0x00, B: 0x00, A: 0xff},
		Text:        Color{R: 0x10, G: 0x10, B: 0x10, A: 0xff},
		LineWidth:   1,
		Accidentals: "ascii",
	}
}

func (t Theme) Validate() error {
	if t.LineWidth <= 0 {
		return fmt.Errorf("%w: line_width must be positive, got %v", ErrInvalidTheme, t.LineWidth)
	}
	switch t.Accidentals {
	case "unicode", "ascii":
	default:
		return fmt.Errorf("%w: accidentals must be unicode or ascii, got %q", ErrInvalidTheme, t.Accidentals)
	}
	return nil
}

// ParseTheme decodes a YAML theme on top of DefaultTheme, so a file only
// needs the keys it changes. Unknown keys are rejected.
func ParseTheme(data []byte) (Theme, error) {
	t := DefaultTheme()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil && !errors.Is(err, io.EOF) {
		return Theme{}, fmt.Errorf("%w: %w", ErrInvalidTheme, err)
	}
	if err := t.Validate(); err != nil {
		return Theme{}, err
	}
	return t, nil
}

// LoadTheme reads a theme file. An empty path yields the default theme.
func LoadTheme(path string) (Theme, error) {
	if path == "" {
		return DefaultTheme(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("could not read theme: %w", err)
	}
	t, err := ParseTheme(data)
	if err != nil {
		return Theme{}, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}
