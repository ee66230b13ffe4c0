// Package schema validates raw dataset records against an embedded CUE
// schema before scoring. Validation is advisory: the scorer tolerates
// malformed records by design, so schema findings surface as warnings
// and never block the pipeline.
package schema

import (
	"embed"
	"fmt"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

//go:embed schemas/*.cue
var schemaFS embed.FS

// Warning is one advisory schema finding for a record.
type Warning struct {
	Record  string
	Message string
}

// Validator checks records against the embedded dataset schema.
type Validator struct {
	ctx     *cue.Context
	schemas map[string]cue.Value
}

// NewValidator compiles the embedded schemas. Schema compile problems
// disable validation rather than failing the run.
func NewValidator() *Validator {
	v := &Validator{
		ctx:     cuecontext.New(),
		schemas: make(map[string]cue.Value),
	}

	entries, err := schemaFS.ReadDir("schemas")
	if err != nil {
		return v
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".cue" {
			continue
		}
		content, err := schemaFS.ReadFile(filepath.Join("schemas", entry.Name()))
		if err != nil {
			continue
		}
		compiled := v.ctx.CompileBytes(content, cue.Filename(entry.Name()))
		if compiled.Err() != nil {
			continue
		}
		name := entry.Name()[:len(entry.Name())-len(".cue")]
		v.schemas[name] = compiled
	}
	return v
}

// ValidateDataset checks one record against the #Dataset definition.
// A nil result means the record conforms (or validation is disabled).
func (v *Validator) ValidateDataset(record map[string]any) []Warning {
	schema, ok := v.schemas["dataset"]
	if !ok {
		return nil
	}

	def := schema.LookupPath(cue.ParsePath("#Dataset"))
	if !def.Exists() {
		return nil
	}

	dataValue := v.ctx.Encode(record)
	if dataValue.Err() != nil {
		return []Warning{{
			Record:  recordKey(record),
			Message: fmt.Sprintf("record not encodable: %v", dataValue.Err()),
		}}
	}

	unified := def.Unify(dataValue)
	if err := unified.Err(); err != nil {
		return []Warning{{Record: recordKey(record), Message: err.Error()}}
	}
	if err := unified.Validate(); err != nil {
		return []Warning{{Record: recordKey(record), Message: err.Error()}}
	}
	return nil
}

func recordKey(record map[string]any) string {
	if id, ok := record["id"].(string); ok && id != "" {
		return id
	}
	if title, ok := record["title"].(string); ok {
		return title
	}
	return "(unknown)"
}
