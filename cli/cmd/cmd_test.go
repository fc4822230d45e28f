package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardnew/pyson/pyson"
)

const fixture = "name:str:Ember Lee\n" +
	"age:int:42\n" +
	"pi:float:3.14\n" +
	"fruits:list:apple(*)banana(*)cherry\n"

// writeFixture writes content to a file in a temporary directory.
func writeFixture(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

// testContext returns a context whose commands read stdin and write
// captured output.
func testContext(stdin string) (context.Context, *bytes.Buffer) {
	var out bytes.Buffer

	ctx := WithInput(context.Background(), strings.NewReader(stdin))
	ctx = WithOutput(ctx, &out)

	return ctx, &out
}

func TestLoad_FileAndStdin(t *testing.T) {
	path := writeFixture(t, "data.pyson", fixture)
	ctx, _ := testContext(fixture)

	fromFile, err := load(ctx, path)
	require.NoError(t, err)

	fromStdin, err := load(ctx, stdinSource)
	require.NoError(t, err)

	assert.Equal(t, fromFile.ToMap(), fromStdin.ToMap())
}

func TestLoad_Missing(t *testing.T) {
	ctx, _ := testContext("")

	_, err := load(ctx, filepath.Join(t.TempDir(), "missing.pyson"))

	var ioErr *pyson.IOError
	require.ErrorAs(t, err, &ioErr)
	assert.ErrorIs(t, err, pyson.ErrNotFound)
}

func TestOutputFrom_Default(t *testing.T) {
	assert.Equal(t, os.Stdout, outputFrom(context.Background()))
	assert.Equal(t, os.Stdin, inputFrom(context.Background()))
}

func TestUniqueSources(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.pyson")
	b := filepath.Join(dir, "b.pyson")
	link := filepath.Join(dir, "link.pyson")
	missing := filepath.Join(dir, "missing.pyson")

	require.NoError(t, os.WriteFile(a, []byte(fixture), 0o600))
	require.NoError(t, os.WriteFile(b, []byte(fixture), 0o600))
	require.NoError(t, os.Symlink(a, link))

	wd, err := os.Getwd()
	require.NoError(t, err)

	rel, err := filepath.Rel(wd, a)
	require.NoError(t, err)

	got := uniqueSources([]string{a, "-", b, link, rel, "-", missing, missing})
	assert.Equal(t, []string{a, "-", b, missing, missing}, got)
}

func TestError_Is(t *testing.T) {
	err := ErrKeyNotFound.Wrap(assert.AnError)

	assert.ErrorIs(t, err, ErrKeyNotFound)
	assert.ErrorIs(t, err, assert.AnError)
	assert.NotErrorIs(t, err, ErrInvalidFormat)
	assert.Equal(t, "key not found: "+assert.AnError.Error(), err.Error())
}
