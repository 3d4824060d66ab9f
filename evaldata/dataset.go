package evaldata

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrQueryNotFound marks a detail lookup for a query the dataset does not
// contain. It is local to the detail pane and never fatal.
var ErrQueryNotFound = errors.New("query not found")

// Dataset is the full evaluation corpus keyed by query string. It keeps the
// key order of the source document so iteration is deterministic, and it is
// not mutated after loading.
type Dataset struct {
	queries map[string]*QueryData
	order   []string
}

// Len reports the number of queries in the dataset.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.order)
}

// Queries returns the query strings in document order.
func (d *Dataset) Queries() []string {
	out := make([]string, len(d.order))
	copy(out, d.order)
	return out
}

// Get looks up the evaluation record for a query.
func (d *Dataset) Get(query string) (*QueryData, bool) {
	if d == nil {
		return nil, false
	}
	qd, ok := d.queries[query]
	return qd, ok
}

// Lookup is Get with a typed error for the miss case.
func (d *Dataset) Lookup(query string) (*QueryData, error) {
	qd, ok := d.Get(query)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrQueryNotFound, query)
	}
	return qd, nil
}

// UnmarshalJSON decodes the top-level query mapping while preserving the
// document's key order, which encoding/json's map decoding would discard.
func (d *Dataset) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("decode dataset: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("decode dataset: expected object, got %v", tok)
	}

	d.queries = make(map[string]*QueryData)
	d.order = d.order[:0]
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("decode dataset key: %w", err)
		}
		query, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("decode dataset key: unexpected token %v", keyTok)
		}

		var qd QueryData
		if err := dec.Decode(&qd); err != nil {
			return fmt.Errorf("decode entry %q: %w", query, err)
		}
		qd.Query = query
		if _, dup := d.queries[query]; !dup {
			d.order = append(d.order, query)
		}
		d.queries[query] = &qd
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("decode dataset: %w", err)
	}
	return nil
}
