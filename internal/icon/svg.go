package icon

import (
	"bytes"
	"fmt"

	svg "github.com/ajstarks/svgo"

	"github.com/eyzaun/safebooks-icon/internal/config"
	"github.com/eyzaun/safebooks-icon/internal/models"
)

// Build renders the logo described by cfg into an SVG document.
// Output depends only on cfg, so repeated calls return identical markup.
func Build(cfg *config.Config) models.IconDocument {
	var buf bytes.Buffer
	canvas := svg.New(&buf)

	size := cfg.Canvas.Size
	canvas.Startview(size, size, 0, 0, size, size)

	comment(canvas, "Background")
	canvas.Rect(0, 0, size, size, attr("fill", cfg.Canvas.Background))

	comment(canvas, "SafeBooks logo - circular design with arrow")
	center := cfg.Center()
	canvas.Gtransform(fmt.Sprintf("translate(%d, %d)", center.X, center.Y))

	comment(canvas, "Outer circle")
	drawRing(canvas, cfg.Rings.Outer)
	comment(canvas, "Inner circle")
	drawRing(canvas, cfg.Rings.Inner)

	drawArrow(canvas, cfg)

	comment(canvas, "Curved line accent")
	a := cfg.Accent
	canvas.Qbez(a.Start.X, a.Start.Y, a.Control.X, a.Control.Y, a.End.X, a.End.Y,
		attr("fill", "none"),
		attr("stroke", a.Stroke),
		attr("stroke-width", a.StrokeWidth),
		attr("stroke-linecap", "round"))

	canvas.Gend()
	canvas.End()

	return models.IconDocument(buf.String())
}

// drawRing draws an unfilled circle around the group origin
func drawRing(canvas *svg.SVG, ring config.RingConfig) {
	canvas.Circle(0, 0, ring.Radius,
		attr("fill", "none"),
		attr("stroke", ring.Stroke),
		attr("stroke-width", ring.StrokeWidth))
}

// drawArrow defines the gradient and paints the shaft and head with it
func drawArrow(canvas *svg.SVG, cfg *config.Config) {
	stops := make([]svg.Offcolor, 0, len(cfg.Gradient.Stops))
	for _, s := range cfg.Gradient.Stops {
		stops = append(stops, svg.Offcolor{Offset: s.Offset, Color: s.Color, Opacity: s.Opacity})
	}

	comment(canvas, "Arrow pointing up-right (blue gradient)")
	canvas.Def()
	canvas.LinearGradient(cfg.Gradient.ID, 0, 0, 100, 100, stops)
	canvas.DefEnd()

	paint := cfg.GradientURL()
	arrow := cfg.Arrow

	comment(canvas, "Arrow shaft")
	canvas.Line(arrow.From.X, arrow.From.Y, arrow.To.X, arrow.To.Y,
		attr("stroke", paint),
		attr("stroke-width", arrow.StrokeWidth),
		attr("stroke-linecap", "round"))

	comment(canvas, "Arrow head")
	for _, tri := range arrow.Head {
		xs := make([]int, len(tri))
		ys := make([]int, len(tri))
		for i, p := range tri {
			xs[i], ys[i] = p.X, p.Y
		}
		canvas.Polygon(xs, ys, attr("fill", paint))
	}
}

// attr formats a presentation attribute; svgo passes name="value" strings through verbatim
func attr(name string, value interface{}) string {
	return fmt.Sprintf(`%s="%v"`, name, value)
}

// comment writes an XML comment into the canvas stream
func comment(canvas *svg.SVG, text string) {
	fmt.Fprintf(canvas.Writer, "<!-- %s -->\n", text)
}
