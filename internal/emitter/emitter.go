package emitter

import (
	"fmt"
	"io"

	"github.com/eyzaun/safebooks-icon/internal/config"
	"github.com/eyzaun/safebooks-icon/internal/icon"
	"github.com/eyzaun/safebooks-icon/internal/models"
)

// advisory is printed after the document is built, in this order
var advisory = models.AdvisoryMessageList{
	"Icon SVG created. This is a placeholder.",
	"For production, replace with actual icon using:",
	"- ImageMagick: convert icon.svg -density 300 -resize 1024x1024 icon.png",
	"- Or use a design tool like Figma/Illustrator to export PNGs",
}

// Emitter builds the icon document and prints the follow-up hints
type Emitter struct {
	config *config.Config
}

// New creates an emitter for the given configuration
func New(cfg *config.Config) *Emitter {
	return &Emitter{config: cfg}
}

// BuildIconDocument returns the fixed SafeBooks logo document
func BuildIconDocument() models.IconDocument {
	return icon.Build(config.Default())
}

// AdvisoryLines returns the hint lines printed by Run
func AdvisoryLines() []string {
	return advisory.Lines()
}

// Run builds the icon document and writes the advisory lines to w.
// The document is not written anywhere; the hints describe the manual
// conversion step instead.
func (e *Emitter) Run(w io.Writer) error {
	_ = icon.Build(e.config)

	for _, line := range advisory {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write advisory: %w", err)
		}
	}

	return nil
}
