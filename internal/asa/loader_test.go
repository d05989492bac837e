// internal/asa/loader_test.go
package asa

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTable(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "asa.tsv")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadTSV(t *testing.T) {
	path := writeTable(t, "# residue asa\n1\t0.8\n2 0.25\n\n3\t0\n")
	table, err := LoadTSV(path)
	if err != nil {
		t.Fatalf("LoadTSV: %v", err)
	}
	if len(table) != 3 {
		t.Fatalf("want 3 entries, got %d", len(table))
	}
	if table[1] != 0.8 || table[2] != 0.25 || table[3] != 0 {
		t.Errorf("bad values: %v", table)
	}
}

func TestLoadTSVErrors(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"bad fields", "1 0.5 extra\n"},
		{"bad number", "x 0.5\n"},
		{"bad asa", "1 zero\n"},
		{"negative asa", "1 -0.5\n"},
		{"duplicate", "1 0.5\n1 0.6\n"},
		{"empty", "# nothing\n"},
	}
	for _, c := range cases {
		if _, err := LoadTSV(writeTable(t, c.body)); err == nil {
			t.Errorf("%s: expected error", c.name)
		}
	}
}

func TestLoadTSVMissingFile(t *testing.T) {
	if _, err := LoadTSV(filepath.Join(t.TempDir(), "nope.tsv")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
