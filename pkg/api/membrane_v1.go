// pkg/api/membrane_v1.go
package api

// MembraneV1 is the stable JSON schema for an estimated membrane
// position. Keep fields, names, and types stable. Add new fields only
// with ",omitempty".
type MembraneV1 struct {
	Normal     [3]float64  `json:"normal"`
	Center     float64     `json:"center"`
	Back       float64     `json:"back"`
	Front      float64     `json:"front"`
	Thickness  float64     `json:"thickness"`
	Score      float64     `json:"score"`
	Method     string      `json:"method"`
	Directions int         `json:"directions,omitempty"`
	Residues   []ResidueV1 `json:"residues,omitempty"`
}

// ResidueV1 is one residue inside the estimated slab, in original
// (pre-recentring) protein coordinates.
type ResidueV1 struct {
	Num int     `json:"num"`
	AA  string  `json:"aa"`
	X   float64 `json:"x"`
	Y   float64 `json:"y"`
	Z   float64 `json:"z"`
	ASA float64 `json:"asa"`
}
