package cmd

import (
	"context"
	"log/slog"
)

// Fmt decodes a source and writes it in the chosen format.
type Fmt struct {
	JSON JSON `cmd:"" default:"withargs" help:"Format as JSON (default)."`
	YAML YAML `cmd:""                    help:"Format as YAML."`
}

// JSON decodes a source and writes it as JSON.
type JSON struct {
	Indent int `default:"2" help:"Indent width for JSON output (0 for compact)" short:"i"`

	Source string `arg:"" default:"-" help:"Source input file or '-' for default stdin." name:"source"`
}

// Run executes the json command.
func (j *JSON) Run(ctx context.Context) error {
	doc, err := load(ctx, j.Source)
	if err != nil {
		return err
	}

	err = doc.FormatJSON(ctx, outputFrom(ctx), j.Indent)
	if err != nil {
		return ErrJSONMarshal.Wrap(err).
			With(slog.String("source", j.Source))
	}

	return nil
}

// YAML decodes a source and writes it as YAML.
type YAML struct {
	Indent int `default:"2" help:"Indent width for YAML output (0 for flow style)" short:"i"`

	Source string `arg:"" default:"-" help:"Source input file or '-' for default stdin." name:"source"`
}

// Run executes the yaml command.
func (y *YAML) Run(ctx context.Context) error {
	doc, err := load(ctx, y.Source)
	if err != nil {
		return err
	}

	err = doc.FormatYAML(ctx, outputFrom(ctx), y.Indent)
	if err != nil {
		return ErrYAMLMarshal.Wrap(err).
			With(slog.String("source", y.Source))
	}

	return nil
}
