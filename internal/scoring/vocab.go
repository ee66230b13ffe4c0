package scoring

import "strings"

// The vocabularies below are the fixed rubric configuration, adapted
// from the data.europa.eu MQA and the DCAT-AP.de controlled
// vocabularies. They are data, not behavior: audits and rubric bumps
// happen here without touching the aggregation logic.

// AcceptedMimeTypes is the controlled media-type vocabulary.
var AcceptedMimeTypes = []string{
	"text/csv", "application/json", "application/xml",
	"application/geopackage+sqlite3", "application/gml+xml",
	"application/vnd.ms-excel", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	"application/zip", "application/pdf", "application/wfs", "application/wms",
}

// commonFormats are the free-text format tokens the source catalog is
// known to use. Matched fuzzily, see InRegister.
var commonFormats = []string{
	"csv", "json", "xml", "wfs", "wms", "pdf", "zip", "xls", "xlsx",
	"html", "geojson", "gml", "kml", "shp", "gpkg", "gis",
}

// NonProprietaryFormats earn the open-format Interoperability points.
var NonProprietaryFormats = []string{
	"csv", "json", "xml", "gml", "geojson", "gpkg", "txt", "markdown", "md",
	"html", "htm", "zip", "rdf", "nt", "ttl", "n3", "jsonld", "trig", "wfs", "wms",
}

// MachineReadableFormats earn the machine-readability points. Overlaps
// with NonProprietaryFormats but is a distinct list: spreadsheets are
// machine-readable yet proprietary, prose formats are open yet not
// machine-readable.
var MachineReadableFormats = []string{
	"csv", "json", "xml", "rdf", "nt", "ttl", "n3", "jsonld", "trig",
	"geojson", "gpkg", "gml", "xlsx", "xls", "ods", "wfs",
}

// ValidLicenseIDs is the DCAT-AP.de license identifier allowlist.
// "other-closed" is not an open license but it is a valid identifier.
var ValidLicenseIDs = []string{
	"cc-zero", "cc-by", "cc-by-sa", "cc-by/4.0", "cc-nc",
	"dl-de-zero-2.0", "dl-de-by-2.0", "odc-odbl", "CC BY 3.0 DE",
	"other-closed",
}

// InRegister reports whether a free-text format string names a format
// from the controlled vocabularies. Deliberately permissive: a value
// like "CSV-Datei" or "EXCEL" still matches. Empty input never matches.
func InRegister(format string) bool {
	if format == "" {
		return false
	}
	lower := strings.ToLower(format)

	for _, mime := range AcceptedMimeTypes {
		if strings.Contains(mime, lower) || strings.Contains(lower, mime) {
			return true
		}
	}
	for _, fmt := range commonFormats {
		if lower == fmt || strings.Contains(lower, fmt) {
			return true
		}
	}
	return false
}

// ValidLicense reports whether a license identifier is on the
// allowlist, case-insensitively.
func ValidLicense(id string) bool {
	lower := strings.ToLower(id)
	for _, lic := range ValidLicenseIDs {
		if lower == strings.ToLower(lic) {
			return true
		}
	}
	return false
}

// acceptedMime reports an exact (lower-cased) media-type match.
func acceptedMime(mime string) bool {
	for _, m := range AcceptedMimeTypes {
		if mime == m {
			return true
		}
	}
	return false
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
