package jsonutil

import "encoding/json"

// Convert reshapes an arbitrary decoded value into T via a JSON round trip.
// Used for loosely typed protocol payloads such as initializationOptions.
func Convert[T any](v any) (T, error) {
	var out T
	b, err := json.Marshal(v)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(b, &out); err != nil {
		return out, err
	}
	return out, nil
}
