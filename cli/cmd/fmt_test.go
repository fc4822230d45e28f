package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardnew/pyson/pyson"
)

func TestJSON(t *testing.T) {
	path := writeFixture(t, "data.pyson", fixture)
	ctx, out := testContext("")

	j := &JSON{Indent: 0, Source: path}
	require.NoError(t, j.Run(ctx))

	assert.Equal(t,
		`{"name":"Ember Lee","age":42,"pi":3.14,"fruits":["apple","banana","cherry"]}`+"\n",
		out.String())
}

func TestJSON_Indent(t *testing.T) {
	ctx, out := testContext("b:int:2\na:int:1\n")

	j := &JSON{Indent: 2, Source: stdinSource}
	require.NoError(t, j.Run(ctx))

	assert.Equal(t, "{\n  \"b\": 2,\n  \"a\": 1\n}\n", out.String())
}

func TestYAML(t *testing.T) {
	ctx, out := testContext(fixture)

	y := &YAML{Indent: 2, Source: stdinSource}
	require.NoError(t, y.Run(ctx))

	yml := out.String()
	assert.Contains(t, yml, "name: Ember Lee\n")
	assert.Contains(t, yml, "age: 42\n")
	assert.Contains(t, yml, "pi: 3.14\n")
	assert.Contains(t, yml, "- apple\n")
	assert.Less(t, indexOf(yml, "name:"), indexOf(yml, "fruits:"))
}

func TestFmt_ParseError(t *testing.T) {
	ctx, out := testContext("a:bool:true\n")

	j := &JSON{Source: stdinSource}
	err := j.Run(ctx)

	require.ErrorIs(t, err, pyson.ErrUnknownType)
	assert.Empty(t, out.String())
}

func indexOf(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}

	return -1
}
