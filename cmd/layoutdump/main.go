// Command layoutdump resolves a TOML scene headlessly and prints the
// geometry of every widget, any overflow diagnostics and the number of draw
// instances the frame would emit.
//
// Usage:
//
//	go run ./cmd/layoutdump/ scene.toml
//	go run ./cmd/layoutdump/ -legacy -theme theme.toml scene.toml
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	gui "github.com/go-theft-auto/flexgui"
	"github.com/go-theft-auto/flexgui/fontmetrics"
)

func main() {
	legacy := flag.Bool("legacy", false, "use legacy layout arithmetic")
	themePath := flag.String("theme", "", "TOML theme file")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: layoutdump [flags] scene.toml\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	gui.SetVerbose(*verbose)

	if err := run(os.Stdout, flag.Arg(0), *themePath, *legacy); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(w io.Writer, scenePath, themePath string, legacy bool) error {
	scene, err := LoadScene(scenePath)
	if err != nil {
		return err
	}

	opts := []gui.GUIOption{}
	if themePath != "" {
		theme, err := gui.LoadTheme(themePath)
		if err != nil {
			return err
		}
		opts = append(opts, gui.WithTheme(theme))
	}
	if legacy || scene.Legacy {
		opts = append(opts, gui.WithLegacyLayout())
	}

	atlas, err := fontmetrics.GoRegular()
	if err != nil {
		return fmt.Errorf("font atlas: %w", err)
	}

	return dump(w, scene, atlas, opts...)
}

// countingRenderer is a gui.Renderer that only tallies instances.
type countingRenderer struct {
	quads, glyphs int
}

func (c *countingRenderer) Render(l *gui.InstanceList) error {
	c.quads = l.Count(gui.InstanceQuad)
	c.glyphs = l.Count(gui.InstanceGlyph)
	return nil
}

func (c *countingRenderer) AtlasTextureID() uint32 { return 0 }
func (c *countingRenderer) Resize(width, height int) {}

// dump lays scene out for one frame and writes the report to w.
func dump(w io.Writer, scene *Scene, glyphs gui.GlyphMetricsProvider, opts ...gui.GUIOption) error {
	counter := &countingRenderer{}
	ui := gui.New(counter, glyphs, opts...)

	ctx := ui.Begin(nil, gui.Vec2{X: scene.Width, Y: scene.Height})
	scene.Build(ctx, ctx.Root())
	if err := ui.End(); err != nil {
		return err
	}

	tree := ui.Tree()
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "INDEX\tLABEL\tPARENT\tX\tY\tW\tH")
	tree.Walk(tree.Root(), func(i int, wd *gui.Widget) {
		fmt.Fprintf(tw, "%d\t%s%s\t%d\t%g\t%g\t%g\t%g\n",
			i, indent(tree, i), wd.Label, wd.Parent,
			wd.ComputedPos.X, wd.ComputedPos.Y, wd.ComputedSize.X, wd.ComputedSize.Y)
	})
	if err := tw.Flush(); err != nil {
		return err
	}

	for _, o := range tree.Overflows() {
		fmt.Fprintf(w, "overflow: %q (widget %d) exceeds its content box on %s by %gpx\n",
			o.Label, o.Index, o.Axis, o.Excess)
	}
	fmt.Fprintf(w, "instances: %d (quads %d, glyphs %d)\n", counter.quads+counter.glyphs, counter.quads, counter.glyphs)
	return nil
}

// indent returns two spaces per ancestor of widget i.
func indent(tree *gui.Tree, i int) string {
	depth := 0
	for i != tree.Root() {
		i = tree.At(i).Parent
		depth++
	}
	return strings.Repeat("  ", depth)
}
