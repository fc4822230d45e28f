// Package pyson reads PYSON, a line-oriented typed key-value format.
//
// # Format
//
// Each line holds one record of three colon-separated fields:
//
//	<key>:<type>:<value>
//
// The type tag is one of:
//
//   - str:   the value is used verbatim
//   - int:   the value is a signed base-10 integer
//   - float: the value is a decimal floating-point number
//   - list:  the value is a sequence of strings joined by "(*)"
//
// For example:
//
//	name:str:Ember Lee
//	age:int:42
//	pi:float:3.14
//	fruits:list:apple(*)banana(*)cherry
//
// Lines are separated by "\n". Empty lines are skipped. There is no escaping
// mechanism, so a key or string value cannot contain ":" and a list element
// cannot contain "(*)". Any fields after the third are ignored.
//
// # Decoding
//
// [Load] reads a file, [Read] reads any [io.Reader], and [Decode] parses
// text that is already in memory. All of them are all-or-nothing: the first
// line that fails to decode aborts the call with a [*ParseError] and no
// [Document] is returned. Sources that cannot be opened or read fail with an
// [*IOError].
//
//	doc, err := pyson.Load(ctx, "example.pyson")
//	if err != nil {
//		return err
//	}
//
//	for key, value := range doc.All() {
//		switch v := value.(type) {
//		case pyson.String:
//			fmt.Println(key, "is text", string(v))
//		case pyson.Integer:
//			fmt.Println(key, "is a number", int64(v))
//		case pyson.Float:
//			fmt.Println(key, "is a real", float64(v))
//		case pyson.List:
//			fmt.Println(key, "has", len(v), "elements")
//		}
//	}
//
// When the same key appears more than once the last record wins, unless
// [WithUniqueKeys] is given.
//
// # Errors
//
// Use [errors.As] to obtain a [*ParseError] (line number and text) or an
// [*IOError] (path), and [errors.Is] with one of the sentinels such as
// [ErrInvalidInteger] or [ErrNotFound] to classify the failure. All error
// types implement [log/slog.LogValuer].
package pyson
