package processor

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Input keys read from every record.
const (
	keyLocation = "location"
	keyLng      = "lng"
	keyLat      = "lat"
	keyItems    = "items"
)

// Record is a single input element with the fields required to build a feature.
// Any other fields of the element are ignored.
type Record struct {
	Location Location
	Items    json.RawMessage
}

// Location holds raw coordinate values exactly as they appear in the input.
type Location struct {
	Lng json.RawMessage
	Lat json.RawMessage
}

// DecodeRecord extracts location and items from a raw array element.
// The returned error wraps ErrRecordSkipped and names the first missing part.
// Values of present keys are not inspected, so "items": null is accepted.
func DecodeRecord(raw json.RawMessage) (Record, error) {
	obj, ok := decodeObject(raw)
	if !ok {
		return Record{}, fmt.Errorf("%w: element is not an object", ErrRecordSkipped)
	}

	locRaw, ok := obj[keyLocation]
	if !ok {
		return Record{}, missing(keyLocation)
	}

	loc, ok := decodeObject(locRaw)
	if !ok {
		return Record{}, fmt.Errorf("%w: %q is not an object", ErrRecordSkipped, keyLocation)
	}

	lng, ok := loc[keyLng]
	if !ok {
		return Record{}, missing(keyLocation + "." + keyLng)
	}

	lat, ok := loc[keyLat]
	if !ok {
		return Record{}, missing(keyLocation + "." + keyLat)
	}

	items, ok := obj[keyItems]
	if !ok {
		return Record{}, missing(keyItems)
	}

	return Record{
		Location: Location{Lng: nullIfEmpty(lng), Lat: nullIfEmpty(lat)},
		Items:    nullIfEmpty(items),
	}, nil
}

// decodeObject reports false for anything other than a JSON object, null included.
func decodeObject(raw json.RawMessage) (map[string]json.RawMessage, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, false
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return nil, false
	}

	return obj, true
}

func missing(key string) error {
	return fmt.Errorf("%w: missing %q", ErrRecordSkipped, key)
}

func nullIfEmpty(raw json.RawMessage) json.RawMessage {
	if len(raw) == 0 {
		return json.RawMessage("null")
	}
	return raw
}
