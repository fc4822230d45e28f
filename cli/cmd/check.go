package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ardnew/pyson/log"
	"github.com/ardnew/pyson/pyson"
)

// Check reports whether each source decodes.
type Check struct {
	Strict bool `help:"Reject sources that repeat a key." short:"S"`
	Quiet  bool `help:"Print nothing; report through the exit status only." short:"q"`

	Sources []string `arg:"" default:"-" help:"Source input files or '-' for stdin." name:"source"`
}

// Run executes the check command.
// It returns [ErrInvalidFormat] if any source fails to decode.
func (c *Check) Run(ctx context.Context) error {
	out := outputFrom(ctx)
	failed := 0

	for _, src := range uniqueSources(c.Sources) {
		doc, err := load(ctx, src, pyson.WithUniqueKeys(c.Strict))
		if err != nil {
			failed++

			log.DebugContext(ctx, "check failed",
				slog.String("source", src),
				slog.Any("error", err),
			)

			if !c.Quiet {
				fmt.Fprintf(out, "FAIL %s: %v\n", src, err)
			}

			continue
		}

		if !c.Quiet {
			fmt.Fprintf(out, "ok   %s (%d keys)\n", src, doc.Len())
		}
	}

	if failed > 0 {
		return ErrInvalidFormat.With(
			slog.Int("failed", failed),
			slog.Bool("strict", c.Strict),
		)
	}

	return nil
}
