package scoring

import (
	"strings"

	"github.com/dotcommander/mqa/internal/metadata"
)

// Env is the evaluation context an indicator predicate runs in: the
// reachability prober plus, under per-resource scoping, the single
// distribution currently being judged.
type Env struct {
	probe    prober
	resource metadata.Resource
}

// CheckFunc is an indicator predicate: a pure function of the dataset
// (and the Env) returning pass/fail.
type CheckFunc func(env *Env, d metadata.Dataset) bool

// Indicator is one scored rubric rule. Defined once at process start,
// never mutated.
type Indicator struct {
	Name      string
	Field     string
	Dimension Dimension
	MaxPoints int
	Check     CheckFunc
}

// Rubric returns the full indicator table keyed by dimension, in rubric
// order. The slices are shared static configuration; callers must not
// modify them.
func Rubric() map[Dimension][]Indicator {
	return rubric
}

var rubric = map[Dimension][]Indicator{
	Findability:      findabilityIndicators,
	Accessibility:    accessibilityIndicators,
	Interoperability: interoperabilityIndicators,
	Reusability:      reusabilityIndicators,
	Context:          contextIndicators,
}

var findabilityIndicators = []Indicator{
	{
		Name: "Keywords", Field: "dcat:keyword", Dimension: Findability, MaxPoints: 30,
		Check: func(_ *Env, d metadata.Dataset) bool {
			list, ok := d["tags"].([]any)
			return ok && len(list) > 0 && metadata.IsPresent(d, "tags")
		},
	},
	{
		Name: "Categories", Field: "dcat:theme", Dimension: Findability, MaxPoints: 30,
		Check: func(_ *Env, d metadata.Dataset) bool {
			list, ok := d["groups"].([]any)
			return ok && len(list) > 0 && metadata.IsPresent(d, "groups")
		},
	},
	{
		Name: "Spatial coverage", Field: "dct:spatial", Dimension: Findability, MaxPoints: 20,
		Check: func(_ *Env, d metadata.Dataset) bool {
			return metadata.IsPresent(d, "geographical_coverage")
		},
	},
	{
		Name: "Temporal coverage", Field: "dct:temporal", Dimension: Findability, MaxPoints: 20,
		Check: func(_ *Env, d metadata.Dataset) bool {
			return metadata.IsPresent(d, "temporal_coverage_from") ||
				metadata.IsPresent(d, "temporal_coverage_to")
		},
	},
}

var accessibilityIndicators = []Indicator{
	{
		Name: "Access URL reachable", Field: "dcat:accessURL_is_reachable", Dimension: Accessibility, MaxPoints: 50,
		Check: func(env *Env, d metadata.Dataset) bool {
			if !metadata.IsPresent(d, "url") {
				return false
			}
			url, ok := d["url"].(string)
			return ok && env.reachable(url)
		},
	},
	{
		Name: "Download URL present", Field: "dcat:downloadURL", Dimension: Accessibility, MaxPoints: 20,
		Check: func(_ *Env, d metadata.Dataset) bool {
			return metadata.IsPresent(d, "resources") && len(metadata.ResourceURLs(d)) > 0
		},
	},
	{
		Name: "Download URL reachable", Field: "dcat:downloadURL_is_reachable", Dimension: Accessibility, MaxPoints: 30,
		Check: func(env *Env, d metadata.Dataset) bool {
			if !metadata.IsPresent(d, "resources") {
				return false
			}
			for _, url := range metadata.ResourceURLs(d) {
				if env.reachable(url) {
					return true
				}
			}
			return false
		},
	},
}

var interoperabilityIndicators = []Indicator{
	{
		Name: "Format", Field: "dct:format", Dimension: Interoperability, MaxPoints: 20,
		Check: func(env *Env, d metadata.Dataset) bool {
			return metadata.IsPresent(d, "resources") && len(env.formats(d)) > 0
		},
	},
	{
		Name: "Media type", Field: "dcat:mediaType", Dimension: Interoperability, MaxPoints: 10,
		Check: func(env *Env, d metadata.Dataset) bool {
			return metadata.IsPresent(d, "resources") && len(env.mimetypes(d)) > 0
		},
	},
	{
		Name: "Format/media type from vocabulary", Field: "format_media_vocab_check", Dimension: Interoperability, MaxPoints: 10,
		Check: func(env *Env, d metadata.Dataset) bool {
			if metadata.IsPresent(d, "resources") {
				for _, f := range env.formats(d) {
					if InRegister(f) {
						return true
					}
				}
			}
			for _, m := range env.mimetypes(d) {
				if acceptedMime(m) {
					return true
				}
			}
			return false
		},
	},
	{
		Name: "Non-proprietary format", Field: "non_proprietary_format_check", Dimension: Interoperability, MaxPoints: 20,
		Check: func(env *Env, d metadata.Dataset) bool {
			if !metadata.IsPresent(d, "resources") {
				return false
			}
			for _, f := range env.formats(d) {
				if containsString(NonProprietaryFormats, f) {
					return true
				}
			}
			return false
		},
	},
	{
		Name: "Machine-readable format", Field: "machine_readable_format_check", Dimension: Interoperability, MaxPoints: 20,
		Check: func(env *Env, d metadata.Dataset) bool {
			if !metadata.IsPresent(d, "resources") {
				return false
			}
			for _, f := range env.formats(d) {
				if containsString(MachineReadableFormats, f) {
					return true
				}
			}
			return false
		},
	},
	{
		// Granted unconditionally: the source catalog is DCAT-AP.de
		// conformant as a whole, so the indicator cannot discriminate.
		Name: "Controlled-vocabulary conformance", Field: "dcat_ap_de_conformance", Dimension: Interoperability, MaxPoints: 30,
		Check: func(*Env, metadata.Dataset) bool { return true },
	},
}

var reusabilityIndicators = []Indicator{
	{
		Name: "License", Field: "dct:license", Dimension: Reusability, MaxPoints: 20,
		Check: func(_ *Env, d metadata.Dataset) bool {
			return metadata.IsPresent(d, "license_id")
		},
	},
	{
		Name: "License vocabulary", Field: "license_vocab_check", Dimension: Reusability, MaxPoints: 10,
		Check: func(_ *Env, d metadata.Dataset) bool {
			if !metadata.IsPresent(d, "license_id") {
				return false
			}
			id, ok := d["license_id"].(string)
			return ok && ValidLicense(id)
		},
	},
	{
		// Open data portal: access rights are public by definition.
		Name: "Access rights level", Field: "dct:accessRights", Dimension: Reusability, MaxPoints: 10,
		Check: func(*Env, metadata.Dataset) bool { return true },
	},
	{
		Name: "Access rights vocabulary", Field: "access_rights_vocab_check", Dimension: Reusability, MaxPoints: 5,
		Check: func(*Env, metadata.Dataset) bool { return true },
	},
	{
		Name: "Contact point", Field: "dcat:contactPoint", Dimension: Reusability, MaxPoints: 20,
		Check: func(_ *Env, d metadata.Dataset) bool {
			return metadata.IsPresent(d, "maintainer") || metadata.IsPresent(d, "maintainer_email")
		},
	},
	{
		Name: "Publisher", Field: "dct:publisher", Dimension: Reusability, MaxPoints: 10,
		Check: func(_ *Env, d metadata.Dataset) bool {
			if metadata.IsPresent(d, "author") {
				return true
			}
			// Flattened exports carry the nested title as an
			// "organization.title" column; API records nest it.
			if metadata.IsPresent(d, "organization.title") {
				return true
			}
			org, ok := d["organization"].(map[string]any)
			return ok && metadata.IsPresent(org, "title")
		},
	},
}

var contextIndicators = []Indicator{
	{
		// The catalog has no dct:rights equivalent; the license title
		// stands in for usage terms.
		Name: "Usage terms", Field: "dct:rights", Dimension: Context, MaxPoints: 5,
		Check: func(_ *Env, d metadata.Dataset) bool {
			return metadata.IsPresent(d, "license_title")
		},
	},
	{
		Name: "Byte size", Field: "dcat:byteSize", Dimension: Context, MaxPoints: 5,
		Check: func(_ *Env, d metadata.Dataset) bool {
			if !metadata.IsPresent(d, "resources") {
				return false
			}
			for _, res := range d.Resources() {
				if metadata.IsPresent(res, "size") {
					return true
				}
			}
			return false
		},
	},
	{
		Name: "Release date", Field: "dct:issued", Dimension: Context, MaxPoints: 5,
		Check: func(_ *Env, d metadata.Dataset) bool {
			return metadata.IsPresent(d, "date_released")
		},
	},
	{
		Name: "Modification date", Field: "dct:modified", Dimension: Context, MaxPoints: 5,
		Check: func(_ *Env, d metadata.Dataset) bool {
			return metadata.IsPresent(d, "date_updated")
		},
	},
}

// formats resolves the extracted format list the predicate should see:
// the whole dataset's, or the single scoped resource's when per-resource
// scoping singles one out.
func (e *Env) formats(d metadata.Dataset) []string {
	if e.resource != nil {
		return scopedField(e.resource, "format")
	}
	return metadata.ResourceFormats(d)
}

func (e *Env) mimetypes(d metadata.Dataset) []string {
	if e.resource != nil {
		return scopedField(e.resource, "mimetype")
	}
	return metadata.ResourceMimetypes(d)
}

func (e *Env) reachable(url string) bool {
	if e.probe == nil {
		return false
	}
	return e.probe.reachable(url)
}

func scopedField(res metadata.Resource, field string) []string {
	value, ok := res[field].(string)
	if !ok || strings.TrimSpace(value) == "" || metadata.IsHiddenNull(value) {
		return nil
	}
	return []string{strings.ToLower(value)}
}
