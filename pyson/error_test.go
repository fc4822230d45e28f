package pyson

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Is(t *testing.T) {
	cause := errors.New("boom")
	derived := ErrInvalidFloat.Wrap(cause).With(slog.String("value", "x"))

	assert.ErrorIs(t, derived, ErrInvalidFloat)
	assert.ErrorIs(t, derived, cause)
	assert.NotErrorIs(t, derived, ErrInvalidInteger)
	assert.False(t, derived.Is(nil))
	assert.False(t, NewError("").Is(NewError("")))
}

func TestError_Message(t *testing.T) {
	assert.Equal(t, "invalid float", ErrInvalidFloat.Error())
	assert.Equal(t, "invalid float: boom",
		ErrInvalidFloat.Wrap(errors.New("boom")).Error())
	assert.Equal(t, "boom", (&Error{err: errors.New("boom")}).Error())
}

func TestError_WithDoesNotMutate(t *testing.T) {
	base := NewError("base")
	a := base.With(slog.String("k", "a"))
	b := base.With(slog.String("k", "b"))

	assert.Empty(t, base.attrs)
	require.Len(t, a.attrs, 1)
	require.Len(t, b.attrs, 1)
	assert.Equal(t, "a", a.attrs[0].Value.String())
	assert.Equal(t, "b", b.attrs[0].Value.String())
}

func TestParseError_Message(t *testing.T) {
	_, err := Decode("x:int:1\ny:list\n")
	require.Error(t, err)
	assert.Equal(t, `parse error at line 2: malformed line: "y:list"`, err.Error())

	_, err = DecodeLine("bad:tag:v")
	require.Error(t, err)
	assert.Equal(t, `parse error: unknown type tag: "bad:tag:v"`, err.Error())
}

func TestErrors_LogValue(t *testing.T) {
	var buf bytes.Buffer

	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	_, err := Decode("a:int:1\nb:int:two")
	require.Error(t, err)

	logger.Error("decode failed", slog.Any("error", err))
	out := buf.String()
	assert.Contains(t, out, `"line":2`)
	assert.Contains(t, out, `"text":"b:int:two"`)
	assert.Contains(t, out, `"value":"two"`)

	buf.Reset()

	ioErr := &IOError{Path: "/tmp/x", Err: ErrNotFound}
	logger.Error("load failed", slog.Any("error", ioErr))
	assert.Contains(t, buf.String(), `"path":"/tmp/x"`)
	assert.Contains(t, buf.String(), `"error":"source not found"`)
}
