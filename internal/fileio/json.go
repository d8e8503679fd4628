package fileio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// ReadJSON flattens a JSON document into a table:
// an object becomes one row over its sorted keys, a list of objects becomes
// one row per object over the union of sorted keys, and anything else
// becomes a single "value" column.
func ReadJSON(path string) ([]string, [][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, readErr(path, err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, nil, readErr(path, fmt.Errorf("decode json: %w", err))
	}

	headers, rows := FlattenJSON(doc)
	return headers, rows, nil
}

// FlattenJSON converts a decoded JSON value into headers and rows.
func FlattenJSON(doc any) ([]string, [][]string) {
	switch v := doc.(type) {
	case map[string]any:
		headers := sortedKeys(v)
		return headers, [][]string{objectRow(v, headers)}
	case []any:
		if objects, ok := allObjects(v); ok {
			keys := make(map[string]struct{})
			for _, obj := range objects {
				for k := range obj {
					keys[k] = struct{}{}
				}
			}
			headers := make([]string, 0, len(keys))
			for k := range keys {
				headers = append(headers, k)
			}
			sort.Strings(headers)

			rows := make([][]string, len(objects))
			for i, obj := range objects {
				rows[i] = objectRow(obj, headers)
			}
			return headers, rows
		}
		rows := make([][]string, len(v))
		for i, item := range v {
			rows[i] = []string{stringify(item)}
		}
		return []string{"value"}, rows
	default:
		return []string{"value"}, [][]string{{stringify(v)}}
	}
}

func allObjects(list []any) ([]map[string]any, bool) {
	if len(list) == 0 {
		return nil, false
	}
	objects := make([]map[string]any, len(list))
	for i, item := range list {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, false
		}
		objects[i] = obj
	}
	return objects, true
}

func objectRow(obj map[string]any, headers []string) []string {
	row := make([]string, len(headers))
	for i, h := range headers {
		if v, ok := obj[h]; ok {
			row[i] = stringify(v)
		}
	}
	return row
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// stringify renders scalars as text and re-encodes nested values as JSON.
func stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case json.Number:
		return x.String()
	case bool:
		if x {
			return "true"
		}
		return "false"
	default:
		b, err := json.Marshal(x)
		if err != nil {
			return fmt.Sprint(x)
		}
		return string(b)
	}
}
