// Package metadata provides the dataset record model and the field
// normalization helpers the scoring rubric is built on. Records are
// schemaless maps taken as-is from the catalog API or a local dump;
// nothing here ever mutates a record.
package metadata

// Dataset is one catalog record: a mapping from field name to value.
// Values are heterogeneous (strings, lists, nested maps) and kept
// exactly as decoded from JSON or CSV.
type Dataset map[string]any

// Resource is one distribution attached to a dataset. Resources have no
// independent lifecycle; they only exist inside a dataset's "resources"
// list and are represented as plain maps like their parent.
type Resource map[string]any

// ID returns the dataset identifier, or "" when absent or not a string.
func (d Dataset) ID() string {
	return d.stringField("id")
}

// Title returns the dataset title, or "" when absent or not a string.
func (d Dataset) Title() string {
	return d.stringField("title")
}

// Organization resolves the publishing organization's title from the
// nested "organization" map. Returns "" when the field is missing or not
// a map.
func (d Dataset) Organization() string {
	org, ok := d["organization"].(map[string]any)
	if !ok {
		return ""
	}
	title, _ := org["title"].(string)
	return title
}

// Resources returns the dataset's distribution list. A missing or
// non-list "resources" field yields nil.
func (d Dataset) Resources() []Resource {
	raw, ok := d["resources"].([]any)
	if !ok {
		return nil
	}
	out := make([]Resource, 0, len(raw))
	for _, item := range raw {
		if m, ok := item.(map[string]any); ok {
			out = append(out, Resource(m))
		}
	}
	return out
}

func (d Dataset) stringField(field string) string {
	s, _ := d[field].(string)
	return s
}
