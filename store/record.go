package store

import (
	"fmt"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// jsonOptions is used for every encode and decode of records. Input is
// accepted the way JSON.parse does: repeated names keep the last value and
// invalid UTF-8 becomes U+FFFD. Go nil slices and maps are JSON null.
var jsonOptions = json.JoinOptions(
	jsontext.AllowDuplicateNames(true),
	jsontext.AllowInvalidUTF8(true),
	json.FormatNilSliceAsNull(true),
	json.FormatNilMapAsNull(true),
)

// normalize converts any Go value into the JSON data model (nil, bool,
// float64, string, []any and map[string]any) by encoding and decoding it.
// The result shares no memory with the input.
func normalize(value any) (any, error) {
	payload, err := json.Marshal(value, jsonOptions)
	if err != nil {
		return nil, fmt.Errorf("json encode record: %w", err)
	}

	var record any
	err = json.Unmarshal(payload, &record, jsonOptions)
	if err != nil {
		return nil, fmt.Errorf("json decode record: %w", err)
	}

	return record, nil
}

// plain returns an independent deep copy of a stored record.
func plain(value any) any {
	switch v := value.(type) {
	case map[string]any:
		cloned := make(map[string]any, len(v))
		for k, item := range v {
			cloned[k] = plain(item)
		}
		return cloned
	case []any:
		if v == nil {
			return nil
		}
		cloned := make([]any, len(v))
		for i, item := range v {
			cloned[i] = plain(item)
		}
		return cloned
	default:
		return v
	}
}
