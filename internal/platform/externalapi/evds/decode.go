package evds

import (
	"bytes"
	"encoding/json"
	"fmt"

	"dovizkuru_backend/internal/feature/series/domain/entity"
)

// droppedColumns are EVDS bookkeeping columns that never reach callers.
var droppedColumns = map[string]struct{}{
	"UNIXTIME": {},
	"YEARWEEK": {},
}

// seriesResponse is the JSON envelope returned by the EVDS series endpoint.
type seriesResponse struct {
	TotalCount int               `json:"totalCount"`
	Items      []json.RawMessage `json:"items"`
}

// toTable converts EVDS items into a Table. Column order follows first appearance
// across rows, and cells a row does not carry are left nil.
func toTable(items []json.RawMessage) (*entity.Table, error) {
	t := &entity.Table{}
	index := map[string]int{}

	for i, item := range items {
		keys, values, err := decodeObject(item)
		if err != nil {
			return nil, fmt.Errorf("decode item %d: %w", i, err)
		}

		row := make([]json.RawMessage, len(t.Columns))
		for j, k := range keys {
			if _, drop := droppedColumns[k]; drop {
				continue
			}
			col, ok := index[k]
			if !ok {
				col = len(t.Columns)
				index[k] = col
				t.Columns = append(t.Columns, k)
			}
			for len(row) <= col {
				row = append(row, nil)
			}
			row[col] = values[j]
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// decodeObject decodes a JSON object keeping its key order.
func decodeObject(data []byte) ([]string, []json.RawMessage, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, nil, fmt.Errorf("expected object, got %v", tok)
	}

	var (
		keys   []string
		values []json.RawMessage
	)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, nil, fmt.Errorf("expected object key, got %v", tok)
		}
		var v json.RawMessage
		if err := dec.Decode(&v); err != nil {
			return nil, nil, fmt.Errorf("value of %q: %w", key, err)
		}
		keys = append(keys, key)
		values = append(values, v)
	}
	if _, err := dec.Token(); err != nil {
		return nil, nil, err
	}
	return keys, values, nil
}
