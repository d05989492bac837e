// internal/output/pdb.go
package output

import (
	"fmt"
	"io"
	"math"

	"memplane-core/geom"
	"memplane-core/search"
)

// gridResolution is the dummy-atom spacing of the membrane planes, Å.
const gridResolution = 1.0

// WritePDB emits the two membrane bounding planes as PDB HETATM grids:
// two MEM residues (chain M) of dummy atoms, sized to the protein's
// bounding box. The output is an overlay meant to be concatenated with
// the original structure for visualization.
func WritePDB(w io.Writer, m search.Membrane, bounds [2]geom.Point) error {
	if _, err := fmt.Fprintf(w,
		"REMARK   3 MEMBRANE SLAB NORMAL %8.3f %8.3f %8.3f CENTER %8.3f\nREMARK   3 THICKNESS %8.3f SCORE %8.4f METHOD %s\n",
		m.Normal.X, m.Normal.Y, m.Normal.Z, m.Center, m.Thickness(), m.Score, m.Method,
	); err != nil {
		return err
	}

	// In-plane orthonormal basis spanning each bounding plane.
	n := m.Normal.Unit()
	axis := geom.Point{X: 1}
	if math.Abs(n.X) > 0.9 {
		axis = geom.Point{Y: 1}
	}
	u := n.Cross(axis).Unit()
	v := n.Cross(u)

	// Grid half-extent: half the bounding-box diagonal covers the
	// protein whatever the plane orientation.
	half := bounds[1].Sub(bounds[0]).Norm() / 2
	steps := int(half / gridResolution)

	norm := m.Normal.Norm()
	if norm == 0 {
		return fmt.Errorf("output: membrane normal is the zero vector")
	}

	serial := 1
	for res, offset := range []float64{m.Center - m.Back, m.Center + m.Front} {
		// The plane normal·p = offset sits offset/|normal| along n.
		p0 := n.Scale(offset / norm)
		for i := -steps; i <= steps; i++ {
			for j := -steps; j <= steps; j++ {
				at := p0.Add(u.Scale(float64(i) * gridResolution)).Add(v.Scale(float64(j) * gridResolution))
				_, err := fmt.Fprintf(w, "HETATM%5d  D   MEM M%4d    %8.3f%8.3f%8.3f%6.2f%6.2f\n",
					serial, res+1, at.X, at.Y, at.Z, 1.0, 0.0)
				if err != nil {
					return err
				}
				serial++
			}
		}
	}
	_, err := fmt.Fprintln(w, "END")
	return err
}
