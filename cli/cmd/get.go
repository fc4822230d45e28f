package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/sahilm/fuzzy"
)

// maxSuggestions bounds the number of keys offered for an unknown key.
const maxSuggestions = 3

// Get prints the value of a single key.
type Get struct {
	Type bool `help:"Prefix the value with its type tag." short:"t"`

	Source string `arg:"" help:"Source input file or '-' for stdin" name:"source"`
	Key    string `arg:"" help:"Key to look up"                     name:"key"`
}

// Run executes the get command.
func (g *Get) Run(ctx context.Context) error {
	doc, err := load(ctx, g.Source)
	if err != nil {
		return err
	}

	value, ok := doc.Get(g.Key)
	if !ok {
		suggest := suggestions(g.Key, slices.Collect(doc.Keys()))

		notFound := ErrKeyNotFound.With(
			slog.String("key", g.Key),
			slog.String("source", g.Source),
		)

		if len(suggest) > 0 {
			return notFound.Wrap(fmt.Errorf(
				"%q (did you mean %s?)", g.Key, strings.Join(suggest, ", "),
			))
		}

		return notFound.Wrap(fmt.Errorf("%q", g.Key))
	}

	out := outputFrom(ctx)

	if g.Type {
		_, err = fmt.Fprintf(out, "%s:%s\n", value.Type(), value)
	} else {
		_, err = fmt.Fprintln(out, value)
	}

	return err
}

// suggestions returns up to maxSuggestions keys that fuzzy match key,
// best match first.
func suggestions(key string, keys []string) []string {
	matches := fuzzy.Find(key, keys)
	if len(matches) > maxSuggestions {
		matches = matches[:maxSuggestions]
	}

	names := make([]string, len(matches))
	for i, m := range matches {
		names[i] = m.Str
	}

	return names
}
