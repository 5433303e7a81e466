package gui

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Spacing constants for consistent layout (similar to Tailwind spacing scale).
// Use these instead of raw numbers for maintainability.
const (
	SpaceNone float32 = 0
	SpaceXS   float32 = 2  // Extra small
	SpaceSM   float32 = 4  // Small (default gap)
	SpaceMD   float32 = 8  // Medium (default padding)
	SpaceLG   float32 = 12 // Large
	SpaceXL   float32 = 16 // Extra large
)

// Theme defines the defaults convenience widgets apply.
// It can be written in code or loaded from a TOML file:
//
//	font_size = 18
//	text_color = "#ffffff"
//	button_color = "#323232"
//	button_padding = { x = 8, y = 4 }
type Theme struct {
	FontSize  float32 `toml:"font_size"`
	TextColor Vec4    `toml:"text_color"`

	// Button colors per interaction state
	ButtonColor       Vec4    `toml:"button_color"`
	ButtonHotColor    Vec4    `toml:"button_hot_color"`
	ButtonActiveColor Vec4    `toml:"button_active_color"`
	ButtonPadding     Vec2    `toml:"button_padding"`
	ButtonRadius      float32 `toml:"button_radius"`

	// Containers
	PanelColor   Vec4    `toml:"panel_color"`
	PanelPadding Vec2    `toml:"panel_padding"`
	PanelRadius  float32 `toml:"panel_radius"`
	Gap          float32 `toml:"gap"`
}

// DefaultTheme returns the default theme with sensible defaults.
func DefaultTheme() Theme {
	return Theme{
		FontSize:  DefaultFontSize,
		TextColor: ColorWhite,

		ButtonColor:       RGBA(50, 50, 50, 255),
		ButtonHotColor:    RGBA(70, 70, 70, 255),
		ButtonActiveColor: RGBA(90, 90, 90, 255),
		ButtonPadding:     Vec2{X: SpaceMD, Y: SpaceSM},
		ButtonRadius:      SpaceSM,

		PanelColor:   RGBA(20, 20, 20, 200),
		PanelPadding: Vec2{X: SpaceMD, Y: SpaceMD},
		Gap:          SpaceSM,
	}
}

// ParseTheme decodes a TOML theme. Keys missing from data keep their
// DefaultTheme values.
func ParseTheme(data []byte) (Theme, error) {
	theme := DefaultTheme()
	if err := toml.Unmarshal(data, &theme); err != nil {
		return Theme{}, fmt.Errorf("parse theme: %w", err)
	}
	return theme, nil
}

// LoadTheme reads and decodes a TOML theme file.
func LoadTheme(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("read theme: %w", err)
	}
	theme, err := ParseTheme(data)
	if err != nil {
		return Theme{}, fmt.Errorf("%s: %w", path, err)
	}
	return theme, nil
}

// EncodeTOML encodes the theme as TOML.
func (t Theme) EncodeTOML() ([]byte, error) {
	return toml.Marshal(t)
}

// ParseColor parses "#rrggbb" or "#rrggbbaa".
func ParseColor(s string) (Vec4, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return Vec4{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Vec4{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return RGBA(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// String returns the color as "#rrggbbaa".
func (c Vec4) String() string {
	p := c.Packed() // 0xAABBGGRR
	return fmt.Sprintf("#%02x%02x%02x%02x", uint8(p), uint8(p>>8), uint8(p>>16), uint8(p>>24))
}

// MarshalText implements encoding.TextMarshaler.
func (c Vec4) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Vec4) UnmarshalText(b []byte) error {
	v, err := ParseColor(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}
