// core/protein/residue.go
package protein

import (
	"fmt"

	"memplane-core/geom"
)

// Side-chain polarity reference sets (3-letter codes). A code outside
// both sets cannot be classified and yields an UnknownResidueError.
var (
	hydrophobic = map[string]bool{
		"PHE": true, "GLY": true, "ILE": true, "LEU": true,
		"MET": true, "VAL": true, "TRP": true, "TYR": true,
	}
	hydrophilic = map[string]bool{
		"ALA": true, "CYS": true, "ASP": true, "GLU": true,
		"HIS": true, "LYS": true, "ASN": true, "PRO": true,
		"GLN": true, "ARG": true, "SER": true, "THR": true,
	}
)

// Residue is one amino acid of the chain: its sequence position, its
// 3-letter code, the position of its Cα and its accessible surface
// area. Residues are produced by the structure/accessibility readers
// and are read-only inside the search.
type Residue struct {
	Num   int
	AA    string
	Coord geom.Point
	ASA   float64
}

// UnknownResidueError reports a residue whose code is in neither
// polarity reference set. It is non-fatal: callers skip the residue's
// hydrophobicity contribution and carry on.
type UnknownResidueError struct {
	Num int
	AA  string
}

func (e *UnknownResidueError) Error() string {
	return fmt.Sprintf("protein: cannot classify residue %d (%q): unknown amino acid", e.Num, e.AA)
}

// Hydrophobic reports whether the residue's side chain is apolar.
func (r Residue) Hydrophobic() (bool, error) {
	switch {
	case hydrophobic[r.AA]:
		return true, nil
	case hydrophilic[r.AA]:
		return false, nil
	default:
		return false, &UnknownResidueError{Num: r.Num, AA: r.AA}
	}
}

// Exposed reports whether the residue is solvent-accessible at the
// given relative-ASA threshold.
func (r Residue) Exposed(threshold float64) bool { return r.ASA >= threshold }

func (r Residue) String() string {
	return fmt.Sprintf("(%d, %s, coord: %v, asa: %g)", r.Num, r.AA, r.Coord, r.ASA)
}
