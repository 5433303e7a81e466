package main

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	gui "github.com/go-theft-auto/flexgui"
)

// Scene is a widget tree described in TOML:
//
//	width = 800
//	height = 600
//
//	[[widget]]
//	label = "toolbar"
//	width = "100%"
//	direction = "row"
//	gap = 4
//
//	  [[widget.children]]
//	  label = "Open"
//	  text = "Open"
//	  width = "text"
//	  height = "text"
//	  clickable = true
type Scene struct {
	Width   float32       `toml:"width"`
	Height  float32       `toml:"height"`
	Legacy  bool          `toml:"legacy"`
	Widgets []SceneWidget `toml:"widget"`
}

// SceneWidget mirrors the declarable fields of gui.Widget.
// Omitted sizes default to "children" on both axes.
type SceneWidget struct {
	Label  string        `toml:"label"`
	Width  *gui.SizeKind `toml:"width"`
	Height *gui.SizeKind `toml:"height"`
	Pos    gui.Vec2      `toml:"pos"`

	Color        gui.Vec4 `toml:"color"`
	BorderRadius float32  `toml:"border_radius"`

	Padding   gui.Vec2      `toml:"padding"`
	Margin    gui.Vec2      `toml:"margin"`
	Gap       float32       `toml:"gap"`
	Direction gui.Direction `toml:"direction"`
	MainAxis  gui.Alignment `toml:"main_axis"`
	CrossAxis gui.Alignment `toml:"cross_axis"`

	Text      string   `toml:"text"`
	TextColor gui.Vec4 `toml:"text_color"`
	FontSize  float32  `toml:"font_size"`
	Wrap      bool     `toml:"wrap"`
	Clickable bool     `toml:"clickable"`

	Children []SceneWidget `toml:"children"`
}

// ParseScene decodes a TOML scene. The screen defaults to 800x600.
func ParseScene(data []byte) (*Scene, error) {
	s := &Scene{Width: 800, Height: 600}
	if err := toml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	if s.Width <= 0 || s.Height <= 0 {
		return nil, fmt.Errorf("parse scene: screen size %gx%g must be positive", s.Width, s.Height)
	}
	return s, nil
}

// LoadScene reads and decodes a TOML scene file.
func LoadScene(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	s, err := ParseScene(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Build declares the scene's widgets under parent.
func (s *Scene) Build(ctx *gui.Context, parent int) {
	for i := range s.Widgets {
		s.Widgets[i].build(ctx, parent)
	}
}

func (w *SceneWidget) build(ctx *gui.Context, parent int) {
	b := ctx.Widget(w.Label).
		Parent(parent).
		Pos(w.Pos.X, w.Pos.Y).
		Color(w.Color).
		BorderRadius(w.BorderRadius).
		Padding(w.Padding.X, w.Padding.Y).
		Margin(w.Margin.X, w.Margin.Y).
		Gap(w.Gap).
		Direction(w.Direction).
		MainAxis(w.MainAxis).
		CrossAxis(w.CrossAxis).
		Text(w.Text).
		Wrap(w.Wrap).
		Clickable(w.Clickable)

	if w.Width != nil {
		b = b.Width(*w.Width)
	}
	if w.Height != nil {
		b = b.Height(*w.Height)
	}
	if !w.TextColor.IsZero() {
		b = b.TextColor(w.TextColor)
	}
	if w.FontSize > 0 {
		b = b.FontSize(w.FontSize)
	}

	r := b.Render()
	for i := range w.Children {
		w.Children[i].build(ctx, r.Index)
	}
}
