package pyson

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		delim string
		want  []string
	}{
		{"empty text", "", ":", []string{""}},
		{"delimiter absent", "hello", ":", []string{"hello"}},
		{"three fields", "a:b:c", ":", []string{"a", "b", "c"}},
		{"leading delimiter", ":a", ":", []string{"", "a"}},
		{"trailing delimiter", "a:", ":", []string{"a", ""}},
		{"adjacent delimiters", "a::b", ":", []string{"a", "", "b"}},
		{"only delimiter", ":", ":", []string{"", ""}},
		{"multi-byte delimiter", "x(*)y(*)z", "(*)", []string{"x", "y", "z"}},
		{"empty list elements", "(*)(*)", "(*)", []string{"", "", ""}},
		{"non-overlapping", "aaa", "aa", []string{"", "a"}},
		{"partial delimiter", "a(*b", "(*)", []string{"a(*b"}},
		{"trailing newline", "a\nb\n", "\n", []string{"a", "b", ""}},
		{"empty delimiter", "abc", "", []string{"abc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Split(tt.text, tt.delim))
		})
	}
}

func TestSplit_AbsentDelimiterIsIdentity(t *testing.T) {
	texts := []string{"", "plain", "key str value", "a(*b", "🙂 unicode"}

	for _, text := range texts {
		for _, delim := range []string{":", "(*)", "\n", "::"} {
			if strings.Contains(text, delim) {
				continue
			}

			assert.Equal(t, []string{text}, Split(text, delim),
				"text=%q delim=%q", text, delim)
		}
	}
}

func TestSplit_JoinRoundTrip(t *testing.T) {
	texts := []string{
		"",
		"a:b:c",
		":::",
		"name:str:Ember Lee\nage:int:42\n",
		"fruits:list:apple(*)banana(*)(*)",
		"aaaa",
		"(*)(*",
	}

	for _, text := range texts {
		for _, delim := range []string{":", "(*)", "\n", "a", "aa"} {
			got := strings.Join(Split(text, delim), delim)
			assert.Equal(t, text, got, "text=%q delim=%q", text, delim)
		}
	}
}
