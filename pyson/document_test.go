package pyson

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_Iteration(t *testing.T) {
	doc, err := Decode("b:int:2\na:str:one\nc:list:x(*)y\n")
	require.NoError(t, err)

	var keys []string

	var types []Type

	for key, v := range doc.All() {
		keys = append(keys, key)
		types = append(types, v.Type())
	}

	assert.Equal(t, []string{"b", "a", "c"}, keys)
	assert.Equal(t, []Type{TypeInteger, TypeString, TypeList}, types)
	assert.Equal(t, []Value{Integer(2), String("one"), List{"x", "y"}}, doc.Values())

	lines := make([]int, 0, doc.Len())
	for rec := range doc.Records() {
		lines = append(lines, rec.Line)
	}

	assert.Equal(t, []int{1, 2, 3}, lines)
}

func TestDocument_EarlyBreak(t *testing.T) {
	doc, err := Decode("a:int:1\nb:int:2\nc:int:3")
	require.NoError(t, err)

	var seen []string

	for key := range doc.Keys() {
		seen = append(seen, key)
		if key == "b" {
			break
		}
	}

	assert.Equal(t, []string{"a", "b"}, seen)
}

func TestDocument_Get(t *testing.T) {
	doc, err := Decode("a:float:2.5")
	require.NoError(t, err)

	v, ok := doc.Get("a")
	require.True(t, ok)

	f, ok := v.(Float)
	require.True(t, ok)
	assert.Equal(t, 2.5, float64(f))

	_, ok = doc.Get("missing")
	assert.False(t, ok)
}

func TestDocument_Nil(t *testing.T) {
	var doc *Document

	assert.Zero(t, doc.Len())
	assert.Empty(t, slices.Collect(doc.Keys()))
	assert.Empty(t, doc.Values())
	assert.Empty(t, doc.ToMap())

	_, ok := doc.Get("any")
	assert.False(t, ok)
}

func TestValue_Native(t *testing.T) {
	tests := []struct {
		value  Value
		native any
		text   string
		tag    string
	}{
		{String("hi"), "hi", "hi", "str"},
		{Integer(-3), int64(-3), "-3", "int"},
		{Float(0.5), 0.5, "0.5", "float"},
		{List{"a", "b"}, []string{"a", "b"}, "[a, b]", "list"},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			assert.Equal(t, tt.native, tt.value.Native())
			assert.Equal(t, tt.text, tt.value.String())
			assert.Equal(t, tt.tag, tt.value.Type().String())
		})
	}
}

func TestValue_ListNativeIsCopy(t *testing.T) {
	list := List{"a", "b"}

	native := list.Native().([]string)
	native[0] = "z"

	assert.Equal(t, List{"a", "b"}, list)
}

func TestParseType(t *testing.T) {
	for _, typ := range []Type{TypeString, TypeInteger, TypeFloat, TypeList} {
		got, ok := ParseType(typ.String())
		require.True(t, ok)
		assert.Equal(t, typ, got)
	}

	for _, tag := range []string{"", "Str", "integer", "bool", " int"} {
		_, ok := ParseType(tag)
		assert.False(t, ok, "tag %q", tag)
	}

	assert.Equal(t, "Type(9)", Type(9).String())
}
