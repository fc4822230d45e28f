package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/ardnew/pyson/pyson"
)

// Color modes accepted by [Dump].
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Dump prints every record of a source in file order.
type Dump struct {
	Color string `default:"auto" enum:"auto,always,never" help:"Colorize output (${enum})."`

	Source string `arg:"" default:"-" help:"Source input file or '-' for default stdin." name:"source"`
}

// Run executes the dump command.
func (d *Dump) Run(ctx context.Context) error {
	doc, err := load(ctx, d.Source)
	if err != nil {
		return err
	}

	out := outputFrom(ctx)

	return newDumpStyle(out, colorEnabled(d.Color, out)).write(out, doc)
}

// colorEnabled reports whether output to w is colorized in the given mode.
func colorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}

	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

type dumpStyle struct {
	key   lipgloss.Style
	tag   lipgloss.Style
	value map[pyson.Type]lipgloss.Style
}

func newDumpStyle(w io.Writer, color bool) dumpStyle {
	r := lipgloss.NewRenderer(w)
	if color {
		r.SetColorProfile(termenv.ANSI)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}

	return dumpStyle{
		key: r.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
		tag: r.NewStyle().Foreground(lipgloss.Color("8")),
		value: map[pyson.Type]lipgloss.Style{
			pyson.TypeString:  r.NewStyle().Foreground(lipgloss.Color("2")),
			pyson.TypeInteger: r.NewStyle().Foreground(lipgloss.Color("3")),
			pyson.TypeFloat:   r.NewStyle().Foreground(lipgloss.Color("3")),
			pyson.TypeList:    r.NewStyle().Foreground(lipgloss.Color("5")),
		},
	}
}

// write prints one line per record: key and type tag in padded columns
// followed by the value. Lists print as "[a, b, c]".
func (s dumpStyle) write(w io.Writer, doc *pyson.Document) error {
	keyWidth, tagWidth := 0, 0

	for rec := range doc.Records() {
		keyWidth = max(keyWidth, lipgloss.Width(rec.Key))
		tagWidth = max(tagWidth, len(rec.Value.Type().String()))
	}

	key := s.key.Width(keyWidth)
	tag := s.tag.Width(tagWidth)

	for rec := range doc.Records() {
		_, err := fmt.Fprintf(w, "%s  %s  %s\n",
			key.Render(rec.Key),
			tag.Render(rec.Value.Type().String()),
			s.value[rec.Value.Type()].Render(rec.Value.String()),
		)
		if err != nil {
			return err
		}
	}

	return nil
}
