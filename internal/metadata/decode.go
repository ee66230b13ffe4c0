package metadata

import (
	"encoding/json"
	"strings"

	"gopkg.in/yaml.v3"
)

// embeddedFields are the list/map-typed dataset fields that tabular
// exports serialize to text and that must be structured again before
// scoring.
var embeddedFields = []string{"resources", "tags", "groups", "extras", "organization"}

// DecodeEmbedded returns a copy of the dataset with serialized
// list/map fields decoded back into native structures. Each candidate
// string runs through a strict JSON parse first and a permissive YAML
// parse second; when both fail the raw string is kept unchanged so a
// sloppy field never sinks the whole record. The input dataset is not
// modified.
func DecodeEmbedded(d Dataset) Dataset {
	out := make(Dataset, len(d))
	for k, v := range d {
		out[k] = v
	}
	for _, field := range embeddedFields {
		raw, ok := out[field].(string)
		if !ok || strings.TrimSpace(raw) == "" {
			continue
		}
		if decoded, ok := decodeLoose(raw); ok {
			out[field] = decoded
		}
	}
	return out
}

// decodeLoose attempts a strict-then-permissive structured parse. YAML
// is the permissive stage: it accepts the single-quoted, unquoted-key
// literals that CSV round-trips tend to produce while still being a
// superset of JSON.
func decodeLoose(raw string) (any, bool) {
	var viaJSON any
	if err := json.Unmarshal([]byte(raw), &viaJSON); err == nil {
		return viaJSON, true
	}
	var viaYAML any
	if err := yaml.Unmarshal([]byte(raw), &viaYAML); err == nil {
		// A bare scalar round-trip is not a decode; only container
		// results count.
		switch viaYAML.(type) {
		case []any, map[string]any:
			return viaYAML, true
		}
	}
	return nil, false
}
