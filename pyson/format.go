package pyson

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
)

// MarshalJSON implements json.Marshaler.
// Keys are emitted in source order.
func (d *Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for rec := range d.Records() {
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(rec.Key)
		if err != nil {
			return nil, err
		}

		val, err := json.Marshal(rec.Value.Native())
		if err != nil {
			return nil, err
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// MarshalYAML implements yaml.InterfaceMarshaler.
// Keys are emitted in source order.
func (d *Document) MarshalYAML() (any, error) {
	m := make(yaml.MapSlice, 0, d.Len())

	for key, v := range d.All() {
		m = append(m, yaml.MapItem{Key: key, Value: v.Native()})
	}

	return m, nil
}

// FormatJSON writes the document as JSON to the writer.
// A positive indent pretty-prints with that many spaces per level.
func (d *Document) FormatJSON(_ context.Context, w io.Writer, indent int) error {
	var (
		data []byte
		err  error
	)

	if indent > 0 {
		data, err = json.MarshalIndent(d, "", strings.Repeat(" ", indent))
	} else {
		data, err = json.Marshal(d)
	}

	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(data))

	return err
}

// FormatYAML writes the document as YAML to the writer.
// A non-positive indent selects flow style.
func (d *Document) FormatYAML(ctx context.Context, w io.Writer, indent int) error {
	var opts []yaml.EncodeOption
	if indent > 0 {
		opts = append(opts, yaml.Indent(indent))
	} else {
		opts = append(opts, yaml.Flow(true))
	}

	data, err := yaml.MarshalContext(ctx, d, opts...)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(w, string(data))

	return err
}
