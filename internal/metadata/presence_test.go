package metadata

import "testing"

func TestIsPresent(t *testing.T) {
	tests := []struct {
		name  string
		data  Dataset
		field string
		want  bool
	}{
		{"missing key", Dataset{}, "tags", false},
		{"nil value", Dataset{"tags": nil}, "tags", false},
		{"empty string", Dataset{"title": ""}, "title", false},
		{"whitespace string", Dataset{"title": "   "}, "title", false},
		{"n/a lowercase", Dataset{"title": "n/a"}, "title", false},
		{"n/a uppercase", Dataset{"title": "N/A"}, "title", false},
		{"n/a padded", Dataset{"title": "  N/A  "}, "title", false},
		{"null literal", Dataset{"title": "null"}, "title", false},
		{"empty json array literal", Dataset{"tags": "[]"}, "tags", false},
		{"empty json object literal", Dataset{"extras": "{}"}, "extras", false},
		{"nan", Dataset{"size": "NaN"}, "size", false},
		{"ohne angabe", Dataset{"maintainer": "Ohne Angabe"}, "maintainer", false},
		{"keine angabe", Dataset{"author": "keine Angabe"}, "author", false},
		{"empty list", Dataset{"tags": []any{}}, "tags", false},
		{"list of empty strings", Dataset{"tags": []any{"", ""}}, "tags", false},
		{"list of nils", Dataset{"tags": []any{nil, nil}}, "tags", false},
		{"list with one real entry", Dataset{"tags": []any{"", "umwelt"}}, "tags", true},
		{"one element list", Dataset{"tags": []any{"verkehr"}}, "tags", true},
		{"empty map", Dataset{"organization": map[string]any{}}, "organization", false},
		{"populated map", Dataset{"organization": map[string]any{"title": "SenUVK"}}, "organization", true},
		{"non-empty string", Dataset{"title": "Radverkehr"}, "title", true},
		{"number zero still counts", Dataset{"num_resources": float64(0)}, "num_resources", true},
		{"number", Dataset{"num_resources": float64(3)}, "num_resources", true},
		{"boolean", Dataset{"private": false}, "private", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsPresent(tt.data, tt.field); got != tt.want {
				t.Errorf("IsPresent(%v, %q) = %v, want %v", tt.data, tt.field, got, tt.want)
			}
		})
	}
}

func TestIsHiddenNull(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"", true},
		{"null", true},
		{"NULL", true},
		{"nichts", true},
		{"Keine Angabe", true},
		{"csv", false},
		{"0", false},
	}

	for _, tt := range tests {
		if got := IsHiddenNull(tt.value); got != tt.want {
			t.Errorf("IsHiddenNull(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}
