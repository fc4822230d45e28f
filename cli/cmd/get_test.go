package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	path := writeFixture(t, "data.pyson", fixture)

	tests := []struct {
		name string
		get  Get
		want string
	}{
		{"string", Get{Source: path, Key: "name"}, "Ember Lee\n"},
		{"integer", Get{Source: path, Key: "age"}, "42\n"},
		{"float", Get{Source: path, Key: "pi"}, "3.14\n"},
		{"list", Get{Source: path, Key: "fruits"}, "[apple, banana, cherry]\n"},
		{"with type", Get{Source: path, Key: "age", Type: true}, "int:42\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, out := testContext("")

			require.NoError(t, tt.get.Run(ctx))
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestGet_UnknownKeySuggests(t *testing.T) {
	path := writeFixture(t, "data.pyson", fixture)
	ctx, out := testContext("")

	g := &Get{Source: path, Key: "frt"}
	err := g.Run(ctx)

	require.ErrorIs(t, err, ErrKeyNotFound)
	assert.Contains(t, err.Error(), `"frt"`)
	assert.Contains(t, err.Error(), "did you mean fruits?")
	assert.Empty(t, out.String())
}

func TestGet_UnknownKeyNoSuggestion(t *testing.T) {
	ctx, _ := testContext("a:int:1\n")

	g := &Get{Source: stdinSource, Key: "zzz"}
	err := g.Run(ctx)

	require.ErrorIs(t, err, ErrKeyNotFound)
	assert.Equal(t, `key not found: "zzz"`, err.Error())
}

func TestSuggestions(t *testing.T) {
	keys := []string{"alpha", "alps", "alphabet", "also", "beta"}

	got := suggestions("alp", keys)
	assert.Len(t, got, maxSuggestions)
	assert.NotContains(t, got, "beta")

	assert.Empty(t, suggestions("xyz", keys))
}
