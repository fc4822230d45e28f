package pyson

import (
	"context"
	"log/slog"
	"strconv"
)

// Record is one decoded line.
type Record struct {
	Key   string
	Value Value
	Line  int // 1-based position in the source, or 0 from DecodeLine
}

// DecodeLine decodes a single "<key>:<type>:<value>" line.
//
// Fields beyond the third are ignored. The
// returned error is always a [*ParseError].
func DecodeLine(line string) (Record, error) {
	return decodeLine(0, line)
}

// Decode parses a complete PYSON document.
//
// Empty lines, including the fragment left by a trailing line break, are
// skipped. Decoding stops at the first bad line and returns its
// [*ParseError]; no partial Document is ever returned.
func Decode(text string, opts ...Option) (*Document, error) {
	return decode(context.Background(), text, makeDecoder(opts...))
}

func decode(ctx context.Context, text string, d decoder) (*Document, error) {
	doc := newDocument()

	for i, line := range Split(text, LineDelimiter) {
		if line == "" {
			continue
		}

		err := ctx.Err()
		if err != nil {
			return nil, err
		}

		rec, err := decodeLine(i+1, line)
		if err != nil {
			return nil, err
		}

		if d.uniqueKeys {
			if prev, ok := doc.record(rec.Key); ok {
				return nil, &ParseError{
					Line: rec.Line,
					Text: line,
					Err: ErrDuplicateKey.With(
						slog.String("key", rec.Key),
						slog.Int("previous", prev.Line),
					),
				}
			}
		}

		doc.set(rec)
	}

	return doc, nil
}

func decodeLine(num int, line string) (Record, error) {
	fail := func(err error) (Record, error) {
		return Record{}, &ParseError{Line: num, Text: line, Err: err}
	}

	fields := Split(line, FieldDelimiter)
	if len(fields) < 3 {
		return fail(ErrMalformedLine.With(slog.Int("fields", len(fields))))
	}

	key, tag, raw := fields[0], fields[1], fields[2]

	typ, ok := ParseType(tag)
	if !ok {
		return fail(ErrUnknownType.With(slog.String("type", tag)))
	}

	var value Value

	switch typ {
	case TypeString:
		value = String(raw)

	case TypeInteger:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return fail(ErrInvalidInteger.Wrap(err).With(slog.String("value", raw)))
		}

		value = Integer(n)

	case TypeFloat:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fail(ErrInvalidFloat.Wrap(err).With(slog.String("value", raw)))
		}

		value = Float(f)

	case TypeList:
		value = List(Split(raw, ListDelimiter))
	}

	return Record{Key: key, Value: value, Line: num}, nil
}
