package metadata

import "strings"

// ResourceFormats collects the "format" value of every resource that has
// one, lower-cased, in resource order. Hidden-null values are dropped;
// duplicates are kept.
func ResourceFormats(d Dataset) []string {
	return resourceField(d, "format")
}

// ResourceMimetypes collects the "mimetype" value of every resource that
// has one, lower-cased, in resource order.
func ResourceMimetypes(d Dataset) []string {
	return resourceField(d, "mimetype")
}

// ResourceURLs collects the "url" value of every resource that has one,
// lower-cased, in resource order.
func ResourceURLs(d Dataset) []string {
	return resourceField(d, "url")
}

func resourceField(d Dataset, field string) []string {
	var out []string
	for _, res := range d.Resources() {
		value, ok := res[field].(string)
		if !ok || strings.TrimSpace(value) == "" || IsHiddenNull(value) {
			continue
		}
		out = append(out, strings.ToLower(value))
	}
	return out
}
