package schema

import "testing"

func TestValidateDataset(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name         string
		record       map[string]any
		wantWarnings bool
	}{
		{
			name: "well-formed record",
			record: map[string]any{
				"id":    "abc",
				"title": "A dataset",
				"resources": []any{
					map[string]any{"format": "csv", "url": "https://example.org"},
				},
				"tags": []any{"umwelt"},
			},
			wantWarnings: false,
		},
		{
			name: "extra unknown fields are fine",
			record: map[string]any{
				"id":     "abc",
				"title":  "A dataset",
				"extras": []any{map[string]any{"key": "value"}},
			},
			wantWarnings: false,
		},
		{
			name: "id wrong type",
			record: map[string]any{
				"id":    42,
				"title": "A dataset",
			},
			wantWarnings: true,
		},
		{
			name: "resources wrong shape",
			record: map[string]any{
				"id":        "abc",
				"title":     "A dataset",
				"resources": "not-a-list",
			},
			wantWarnings: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := v.ValidateDataset(tt.record)
			if got := len(warnings) > 0; got != tt.wantWarnings {
				t.Errorf("ValidateDataset() warnings = %v, want warnings %v", warnings, tt.wantWarnings)
			}
		})
	}
}

func TestRecordKey(t *testing.T) {
	if got := recordKey(map[string]any{"id": "x"}); got != "x" {
		t.Errorf("recordKey by id = %q", got)
	}
	if got := recordKey(map[string]any{"title": "T"}); got != "T" {
		t.Errorf("recordKey by title = %q", got)
	}
	if got := recordKey(map[string]any{}); got != "(unknown)" {
		t.Errorf("recordKey fallback = %q", got)
	}
}
