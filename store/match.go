package store

import (
	"reflect"

	"github.com/SierraSoftworks/connor"
	"github.com/go-json-experiment/json"
	"github.com/tidwall/gjson"
)

// Where builds a predicate from a Mongo style query document, for example
// {"age": {"$gte": 18}, "name": "Fulanez"}. An empty document matches every
// record; otherwise only object records can match.
func Where(filter map[string]any) Predicate {
	return func(record any) bool {
		if len(filter) == 0 {
			return true
		}
		data, ok := record.(map[string]any)
		if !ok {
			return false
		}
		match, err := connor.Match(filter, data)
		if err != nil {
			return false
		}
		return match
	}
}

// PathEquals builds a predicate matching records whose value at path (gjson
// syntax) equals expected once both are expressed as JSON.
func PathEquals(path string, expected any) Predicate {

	want, err := normalize(expected)
	if err != nil {
		return func(record any) bool { return false }
	}

	return func(record any) bool {
		payload, err := json.Marshal(record, jsonOptions)
		if err != nil {
			return false
		}
		result := gjson.GetBytes(payload, path)
		if !result.Exists() {
			return false
		}
		return reflect.DeepEqual(result.Value(), want)
	}
}
