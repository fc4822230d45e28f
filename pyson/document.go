package pyson

import "iter"

// Document is the result of decoding one PYSON source: a mapping from
// unique key to [Value].
//
// Keys iterate in the order they first appeared in the source. A repeated
// key keeps its original position but takes the later value.
type Document struct {
	keys    []string
	records map[string]Record
}

func newDocument() *Document {
	return &Document{records: make(map[string]Record)}
}

func (d *Document) set(rec Record) {
	if _, ok := d.records[rec.Key]; !ok {
		d.keys = append(d.keys, rec.Key)
	}

	d.records[rec.Key] = rec
}

func (d *Document) record(key string) (Record, bool) {
	if d == nil {
		return Record{}, false
	}

	rec, ok := d.records[key]

	return rec, ok
}

// Len returns the number of distinct keys.
func (d *Document) Len() int {
	if d == nil {
		return 0
	}

	return len(d.keys)
}

// Get returns the value stored under key.
func (d *Document) Get(key string) (Value, bool) {
	rec, ok := d.record(key)

	return rec.Value, ok
}

// Record returns the record that supplied the value stored under key.
func (d *Document) Record(key string) (Record, bool) {
	return d.record(key)
}

// Keys returns an iterator over all keys in source order.
func (d *Document) Keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		if d == nil {
			return
		}

		for _, key := range d.keys {
			if !yield(key) {
				return
			}
		}
	}
}

// All returns an iterator over all key/value pairs in source order.
func (d *Document) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for rec := range d.Records() {
			if !yield(rec.Key, rec.Value) {
				return
			}
		}
	}
}

// Records returns an iterator over all records in source order.
func (d *Document) Records() iter.Seq[Record] {
	return func(yield func(Record) bool) {
		if d == nil {
			return
		}

		for _, key := range d.keys {
			if !yield(d.records[key]) {
				return
			}
		}
	}
}

// Values returns all values in source order.
func (d *Document) Values() []Value {
	values := make([]Value, 0, d.Len())
	for _, v := range d.All() {
		values = append(values, v)
	}

	return values
}

// ToMap converts the document to a map of native Go values.
// See [Value.Native] for the payload types.
func (d *Document) ToMap() map[string]any {
	result := make(map[string]any, d.Len())

	for key, v := range d.All() {
		result[key] = v.Native()
	}

	return result
}

