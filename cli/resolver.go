package cli

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/pyson/log"
	"github.com/ardnew/pyson/pyson"
)

// resolve returns a [kong.ConfigurationLoader] for config files written in
// PYSON, one flag per record:
//
//	log-level:str:debug
//	log-caller:str:true
//	pprof-mode:str:cpu
//
// Keys are flag names; underscores may stand in for hyphens. Integer and
// float values are passed to kong in their decimal form and lists as
// comma-separated elements, so list elements must not contain commas.
//
// A config file that fails to decode is logged and ignored. Command-line
// flags override config file values.
func resolve(ctx context.Context) kong.ConfigurationLoader {
	return func(r io.Reader) (kong.Resolver, error) {
		doc, err := pyson.Read(ctx, r)
		if err != nil {
			log.WarnContext(ctx, "ignoring configuration",
				slog.Any("error", err),
			)

			return config{}, nil
		}

		return makeConfig(doc), nil
	}
}

// config implements [kong.Resolver] for PYSON configs.
type config map[string]string

func makeConfig(doc *pyson.Document) config {
	c := make(config, doc.Len())

	for key, value := range doc.All() {
		if list, ok := value.(pyson.List); ok {
			c[key] = strings.Join(list, ",")
		} else {
			c[key] = value.String()
		}
	}

	return c
}

// Validate implements [kong.Resolver]. Keys that match no flag are logged
// and otherwise ignored.
func (c config) Validate(app *kong.Application) error {
	known := make(map[string]struct{})

	var walk func(node *kong.Node)

	walk = func(node *kong.Node) {
		for _, flag := range node.Flags {
			known[flag.Name] = struct{}{}
		}

		for _, child := range node.Children {
			walk(child)
		}
	}

	walk(app.Node)

	for key := range c {
		if _, ok := known[strings.ReplaceAll(key, "_", "-")]; !ok {
			log.Warn("unknown configuration key", slog.String("key", key))
		}
	}

	return nil
}

// Resolve implements [kong.Resolver].
func (c config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	if value, ok := c[flag.Name]; ok {
		return value, nil
	}

	if value, ok := c[strings.ReplaceAll(flag.Name, "-", "_")]; ok {
		return value, nil
	}

	// nil lets kong use the default
	return nil, nil //nolint:nilnil
}
