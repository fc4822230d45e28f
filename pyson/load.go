package pyson

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/klauspost/readahead"
)

// readerName identifies sources passed to Read in an [IOError].
const readerName = "<reader>"

// Load reads the file at path and decodes it with [Decode].
//
// A missing file fails with an [*IOError] wrapping [ErrNotFound]; any other
// open or read failure wraps [ErrUnreadable]. Decode failures are returned
// as [*ParseError].
func Load(ctx context.Context, path string, opts ...Option) (*Document, error) {
	err := ctx.Err()
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, openError(path, err)
	}
	defer file.Close()

	return read(ctx, path, file, opts)
}

// LoadFS is like [Load] but opens name from fsys.
func LoadFS(
	ctx context.Context,
	fsys fs.FS,
	name string,
	opts ...Option,
) (*Document, error) {
	err := ctx.Err()
	if err != nil {
		return nil, err
	}

	file, err := fsys.Open(name)
	if err != nil {
		return nil, openError(name, err)
	}
	defer file.Close()

	return read(ctx, name, file, opts)
}

// Read consumes r entirely and decodes its contents with [Decode].
func Read(ctx context.Context, r io.Reader, opts ...Option) (*Document, error) {
	err := ctx.Err()
	if err != nil {
		return nil, err
	}

	return read(ctx, readerName, r, opts)
}

func read(
	ctx context.Context,
	name string,
	r io.Reader,
	opts []Option,
) (*Document, error) {
	ra := readahead.NewReader(r)
	defer ra.Close()

	data, err := io.ReadAll(ra)
	if err != nil {
		return nil, &IOError{Path: name, Err: ErrUnreadable.Wrap(err)}
	}

	return decode(ctx, string(data), makeDecoder(opts...))
}

func openError(name string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return &IOError{Path: name, Err: ErrNotFound.Wrap(err)}
	}

	return &IOError{Path: name, Err: ErrUnreadable.Wrap(err)}
}
