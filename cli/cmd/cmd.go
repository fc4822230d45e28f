package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/ardnew/pyson/log"
	"github.com/ardnew/pyson/pyson"
)

// contextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

type (
	inputKey  struct{}
	outputKey struct{}
)

// WithInput returns a new context.Context whose commands read the "-"
// source from r instead of [os.Stdin].
func WithInput(ctx context.Context, r io.Reader) context.Context {
	return context.WithValue(ctx, inputKey{}, r)
}

// WithOutput returns a new context.Context whose commands write to w.
func WithOutput(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, outputKey{}, w)
}

func inputFrom(ctx context.Context) io.Reader {
	if r, ok := ctx.Value(inputKey{}).(io.Reader); ok && r != nil {
		return r
	}

	return os.Stdin
}

// outputFrom returns the writer set with [WithOutput], the kong
// application's stdout, or [os.Stdout], in that order.
func outputFrom(ctx context.Context) io.Writer {
	if w, ok := ctx.Value(outputKey{}).(io.Writer); ok && w != nil {
		return w
	}

	if ktx := kongContextFrom(ctx); ktx != nil && ktx.Stdout != nil {
		return ktx.Stdout
	}

	return os.Stdout
}

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

// load decodes the named source, reading the context input for "-".
func load(
	ctx context.Context,
	source string,
	opts ...pyson.Option,
) (*pyson.Document, error) {
	log.DebugContext(ctx, "load", slog.String("source", source))

	if source == stdinSource {
		return pyson.Read(ctx, inputFrom(ctx), opts...)
	}

	return pyson.Load(ctx, source, opts...)
}

// fileKey uniquely identifies a file by its device and inode numbers.
type fileKey struct {
	dev uint64
	ino uint64
}

// uniqueSources returns sources in order with duplicates removed.
//
// Paths naming the same file (through symlinks or relative and absolute
// forms) are kept once, as is "-". Paths that cannot be resolved are kept
// as given so that loading them reports the error.
func uniqueSources(sources []string) []string {
	unique := make([]string, 0, len(sources))
	seen := make(map[fileKey]struct{})
	seenStdin := false

	for _, src := range sources {
		if src == stdinSource {
			if !seenStdin {
				seenStdin = true
				unique = append(unique, src)
			}

			continue
		}

		key, ok := resolveFileKey(src)
		if ok {
			if _, exists := seen[key]; exists {
				continue
			}

			seen[key] = struct{}{}
		}

		unique = append(unique, src)
	}

	return unique
}

func resolveFileKey(path string) (fileKey, bool) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fileKey{}, false
	}

	resolved, err := filepath.EvalSymlinks(absPath)
	if err != nil {
		return fileKey{}, false
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return fileKey{}, false
	}

	return makeFileKey(info)
}

// makeFileKey creates a fileKey from os.FileInfo.
// Returns false if the underlying Sys() data is not of type *syscall.Stat_t.
func makeFileKey(info os.FileInfo) (key fileKey, ok bool) {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return key, false
	}

	return fileKey{dev: uint64(stat.Dev), ino: stat.Ino}, true
}
