// internal/output/json.go
package output

import (
	"io"

	"memplane-core/search"
	"memplane/internal/jsonutil"
	"memplane/pkg/api"
)

// ToAPI converts a domain membrane to the stable wire schema (v1).
// Residues are attached only when requested.
func ToAPI(m search.Membrane, residues bool) api.MembraneV1 {
	v := api.MembraneV1{
		Normal:     [3]float64{m.Normal.X, m.Normal.Y, m.Normal.Z},
		Center:     m.Center,
		Back:       m.Back,
		Front:      m.Front,
		Thickness:  m.Thickness(),
		Score:      m.Score,
		Method:     m.Method,
		Directions: m.Directions,
	}
	if residues {
		v.Residues = make([]api.ResidueV1, 0, len(m.Residues))
		for _, r := range m.Residues {
			v.Residues = append(v.Residues, api.ResidueV1{
				Num: r.Num, AA: r.AA,
				X: r.Coord.X, Y: r.Coord.Y, Z: r.Coord.Z,
				ASA: r.ASA,
			})
		}
	}
	return v
}

// WriteJSON writes a single v1 membrane object (pretty-indented).
func WriteJSON(w io.Writer, m search.Membrane, residues bool) error {
	return jsonutil.EncodePretty(w, ToAPI(m, residues))
}
