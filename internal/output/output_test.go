// internal/output/output_test.go
package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"memplane-core/geom"
	"memplane-core/protein"
	"memplane-core/search"
	"memplane/pkg/api"
)

func testMembrane() search.Membrane {
	return search.Membrane{
		Normal:     geom.Point{Z: 1},
		Center:     2,
		Back:       7,
		Front:      9,
		Score:      0.95,
		Method:     "asa",
		Directions: 20,
		Residues: []protein.Residue{
			{Num: 12, AA: "LEU", Coord: geom.Point{X: 1, Y: 2, Z: 3}, ASA: 0.8},
			{Num: 15, AA: "TRP", Coord: geom.Point{X: -1, Y: 0, Z: 4}, ASA: 0.6},
		},
	}
}

func TestWriteTextRow(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, testMembrane(), true, false); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header + 1 row, got %d lines: %q", len(lines), buf.String())
	}
	if lines[0] != TSVHeader {
		t.Errorf("header mismatch: %q", lines[0])
	}
	want := "0\t0\t1\t2\t7\t9\t16\t2\t0.95\tasa"
	if lines[1] != want {
		t.Errorf("row mismatch:\n got %q\nwant %q", lines[1], want)
	}
}

func TestWriteTextResidues(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, testMembrane(), true, true); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, ResidueHeader) {
		t.Errorf("missing residue header in %q", out)
	}
	if !strings.Contains(out, "12\tLEU\t1.000\t2.000\t3.000\t0.8") {
		t.Errorf("missing residue row in %q", out)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 5 {
		t.Errorf("expected 5 lines, got %d", len(lines))
	}
}

func TestWriteTextNoHeader(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, testMembrane(), false, false); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	if strings.Contains(buf.String(), "normal_x") {
		t.Errorf("header leaked with header=false: %q", buf.String())
	}
}

func TestWriteJSONSchema(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, testMembrane(), true); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	var v api.MembraneV1
	if err := json.Unmarshal(buf.Bytes(), &v); err != nil {
		t.Fatalf("round-trip: %v", err)
	}
	if v.Normal != [3]float64{0, 0, 1} {
		t.Errorf("normal mismatch: %v", v.Normal)
	}
	if v.Thickness != 16 {
		t.Errorf("thickness = %g, want 16", v.Thickness)
	}
	if len(v.Residues) != 2 || v.Residues[0].Num != 12 {
		t.Errorf("residues mismatch: %+v", v.Residues)
	}
}

func TestWriteJSONOmitsResidues(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, testMembrane(), false); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	if strings.Contains(buf.String(), "residues") {
		t.Errorf("residues present without request: %s", buf.String())
	}
}

func TestWritePDBPlanes(t *testing.T) {
	var buf bytes.Buffer
	m := testMembrane()
	bounds := [2]geom.Point{{X: -3, Y: -3, Z: -3}, {X: 3, Y: 3, Z: 3}}
	if err := WritePDB(&buf, m, bounds); err != nil {
		t.Fatalf("WritePDB: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "REMARK") {
		t.Errorf("expected REMARK preamble, got %q", out[:20])
	}
	if !strings.Contains(out, "HETATM") {
		t.Fatalf("no HETATM records in output")
	}
	if !strings.HasSuffix(strings.TrimRight(out, "\n"), "END") {
		t.Errorf("missing END record")
	}
	// Every dummy atom must sit on one of the two bounding planes:
	// normal is +z so z is either center-back or center+front.
	for _, line := range strings.Split(out, "\n") {
		if !strings.HasPrefix(line, "HETATM") {
			continue
		}
		z := strings.TrimSpace(line[46:54])
		if z != "-5.000" && z != "11.000" {
			t.Fatalf("atom off the bounding planes: %q", line)
		}
	}
}

func TestWritePDBZeroNormal(t *testing.T) {
	m := testMembrane()
	m.Normal = geom.Point{}
	var buf bytes.Buffer
	if err := WritePDB(&buf, m, [2]geom.Point{}); err == nil {
		t.Fatal("expected error for zero normal")
	}
}
