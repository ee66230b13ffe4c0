package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("command %v failed: %v\noutput:\n%s", args, err, buf.String())
	}
	return buf.String()
}

func TestRubricCommand(t *testing.T) {
	out := execute(t, "rubric")

	for _, want := range []string{"Findability", "Interoperability", "dct:license", "110", "405"} {
		if !strings.Contains(out, want) {
			t.Errorf("rubric output missing %q:\n%s", want, out)
		}
	}
}

func TestScoreCommand(t *testing.T) {
	dir := t.TempDir()
	record := filepath.Join(dir, "record.json")
	err := os.WriteFile(record, []byte(`{
		"id": "test-1",
		"title": "Testdatensatz",
		"license_id": "dl-de-by-2.0",
		"resources": [{"format": "CSV", "mimetype": "text/csv"}]
	}`), 0o644)
	if err != nil {
		t.Fatal(err)
	}

	out := execute(t, "score", record, "--offline",
		"--results-dir", filepath.Join(dir, "results"),
		"--data-dir", dir)

	for _, want := range []string{"Testdatensatz", "test-1", "Non-proprietary format", "Total"} {
		if !strings.Contains(out, want) {
			t.Errorf("score output missing %q:\n%s", want, out)
		}
	}
}
