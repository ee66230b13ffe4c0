package metadata

import (
	"reflect"
	"testing"
)

func TestDecodeEmbedded(t *testing.T) {
	tests := []struct {
		name  string
		data  Dataset
		field string
		want  any
	}{
		{
			name:  "strict json list of maps",
			data:  Dataset{"resources": `[{"format": "csv"}]`},
			field: "resources",
			want:  []any{map[string]any{"format": "csv"}},
		},
		{
			name:  "json string list",
			data:  Dataset{"tags": `["umwelt", "verkehr"]`},
			field: "tags",
			want:  []any{"umwelt", "verkehr"},
		},
		{
			name:  "single-quoted literal via permissive parse",
			data:  Dataset{"resources": `[{'format': 'csv', 'url': 'https://example.org'}]`},
			field: "resources",
			want:  []any{map[string]any{"format": "csv", "url": "https://example.org"}},
		},
		{
			name:  "organization map",
			data:  Dataset{"organization": `{"title": "SenWEB"}`},
			field: "organization",
			want:  map[string]any{"title": "SenWEB"},
		},
		{
			name:  "unparseable text passes through",
			data:  Dataset{"resources": `[{"format": broken`},
			field: "resources",
			want:  `[{"format": broken`,
		},
		{
			name:  "already structured value untouched",
			data:  Dataset{"tags": []any{"umwelt"}},
			field: "tags",
			want:  []any{"umwelt"},
		},
		{
			name:  "unrelated fields untouched",
			data:  Dataset{"title": `["not", "decoded"]`},
			field: "title",
			want:  `["not", "decoded"]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecodeEmbedded(tt.data)
			if !reflect.DeepEqual(got[tt.field], tt.want) {
				t.Errorf("DecodeEmbedded()[%q] = %#v, want %#v", tt.field, got[tt.field], tt.want)
			}
		})
	}
}

func TestDecodeEmbeddedDoesNotMutateInput(t *testing.T) {
	in := Dataset{"resources": `[{"format": "csv"}]`}
	_ = DecodeEmbedded(in)
	if _, ok := in["resources"].(string); !ok {
		t.Error("DecodeEmbedded mutated its input record")
	}
}
