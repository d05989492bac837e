// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"memplane-core/search"
)

// WriteText prints the estimated membrane as one TSV row, optionally
// preceded by the canonical header and followed by the residues found
// inside the slab.
func WriteText(w io.Writer, m search.Membrane, header, residues bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%g\t%g\t%g\t%g\t%g\t%g\t%g\t%d\t%g\t%s\n",
		m.Normal.X, m.Normal.Y, m.Normal.Z,
		m.Center, m.Back, m.Front, m.Thickness(),
		len(m.Residues), m.Score, m.Method,
	)
	if err != nil || !residues {
		return err
	}

	if header {
		if _, err := fmt.Fprintln(w, ResidueHeader); err != nil {
			return err
		}
	}
	for _, r := range m.Residues {
		_, err := fmt.Fprintf(w, "%d\t%s\t%.3f\t%.3f\t%.3f\t%g\n",
			r.Num, r.AA, r.Coord.X, r.Coord.Y, r.Coord.Z, r.ASA)
		if err != nil {
			return err
		}
	}
	return nil
}
