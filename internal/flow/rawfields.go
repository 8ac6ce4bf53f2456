package flow

import (
	"encoding/json"
	"reflect"
	"strings"
	"sync"
)

// rawFields holds object members a type does not model. They are written
// back unchanged so host data survives a plugin run.
type rawFields map[string]json.RawMessage

var knownKeyCache sync.Map // reflect.Type -> map[string]struct{}

// knownKeys returns the lower-cased JSON member names of struct type t.
// Lower-casing matches encoding/json's case-insensitive field binding.
func knownKeys(t reflect.Type) map[string]struct{} {
	if cached, ok := knownKeyCache.Load(t); ok {
		return cached.(map[string]struct{})
	}
	keys := make(map[string]struct{}, t.NumField())
	for i := range t.NumField() {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			continue
		}
		if name == "" {
			name = field.Name
		}
		keys[strings.ToLower(name)] = struct{}{}
	}
	knownKeyCache.Store(t, keys)
	return keys
}

// decodeKeepingUnknown decodes data into dst and returns the members dst has
// no field for.
func decodeKeepingUnknown[T any](data []byte, dst *T) (rawFields, error) {
	if err := json.Unmarshal(data, dst); err != nil {
		return nil, err
	}
	var members map[string]json.RawMessage
	if err := json.Unmarshal(data, &members); err != nil {
		return nil, err
	}
	known := knownKeys(reflect.TypeFor[T]())
	for key := range members {
		if _, ok := known[strings.ToLower(key)]; ok {
			delete(members, key)
		}
	}
	if len(members) == 0 {
		return nil, nil
	}
	return members, nil
}

// encodeWithUnknown encodes v and merges extra back in. Modelled fields win.
func encodeWithUnknown(v any, extra rawFields) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil || len(extra) == 0 {
		return data, err
	}
	var members map[string]json.RawMessage
	if err := json.Unmarshal(data, &members); err != nil {
		return nil, err
	}
	for key, value := range extra {
		if _, ok := members[key]; !ok {
			members[key] = value
		}
	}
	return json.Marshal(members)
}
