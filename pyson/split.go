package pyson

import "strings"

// Format delimiters. These are fixed by the file format; PYSON has no
// escaping, so none of them may appear inside a key or a scalar value.
const (
	LineDelimiter  = "\n"
	FieldDelimiter = ":"
	ListDelimiter  = "(*)"
)

// Split slices text around every non-overlapping occurrence of delim,
// scanning forward from the start of text.
//
// Empty fragments are kept, so joining the result with delim always
// reproduces text. If delim does not occur in text (including when text is
// empty), the result is the single element text. An empty delim also
// yields the single element text.
func Split(text, delim string) []string {
	if delim == "" {
		return []string{text}
	}

	fields := make([]string, 0, strings.Count(text, delim)+1)

	for {
		end := strings.Index(text, delim)
		if end < 0 {
			return append(fields, text)
		}

		fields = append(fields, text[:end])
		text = text[end+len(delim):]
	}
}
