// internal/writers/registry_test.go
package writers

import (
	"bytes"
	"sort"
	"strings"
	"testing"

	"memplane-core/geom"
	"memplane-core/protein"
	"memplane-core/search"
)

func sampleMembrane() search.Membrane {
	return search.Membrane{
		Normal: geom.Point{Z: 1},
		Center: 0, Back: 7, Front: 7,
		Score: 0.9, Method: "simple",
		Residues: []protein.Residue{{Num: 1, AA: "LEU", Coord: geom.Point{Z: 2}, ASA: 0.5}},
	}
}

func TestRegisteredFormats(t *testing.T) {
	got := Formats()
	sort.Strings(got)
	want := []string{"json", "pdb", "text"}
	if len(got) != len(want) {
		t.Fatalf("formats = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("formats = %v, want %v", got, want)
		}
	}
}

func TestDispatch(t *testing.T) {
	opt := Options{Header: true, Bounds: [2]geom.Point{{X: -2, Y: -2, Z: -2}, {X: 2, Y: 2, Z: 2}}}
	for _, tc := range []struct {
		format string
		needle string
	}{
		{"text", "normal_x"},
		{"json", "\"score\""},
		{"pdb", "HETATM"},
	} {
		var buf bytes.Buffer
		if err := Write(tc.format, &buf, sampleMembrane(), opt); err != nil {
			t.Fatalf("Write(%s): %v", tc.format, err)
		}
		if !strings.Contains(buf.String(), tc.needle) {
			t.Errorf("%s output missing %q:\n%s", tc.format, tc.needle, buf.String())
		}
	}
}

func TestUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := Write("yaml", &buf, sampleMembrane(), Options{}); err == nil {
		t.Fatal("expected error for unregistered format")
	}
}
