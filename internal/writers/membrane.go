// internal/writers/membrane.go
package writers

import (
	"io"

	"memplane-core/search"
	"memplane/internal/output"
)

func init() {
	Register("text", writeTextMembrane)
	Register("json", writeJSONMembrane)
	Register("pdb", writePDBMembrane)
}

func writeTextMembrane(w io.Writer, m search.Membrane, opt Options) error {
	return output.WriteText(w, m, opt.Header, opt.Residues)
}

func writeJSONMembrane(w io.Writer, m search.Membrane, opt Options) error {
	return output.WriteJSON(w, m, opt.Residues)
}

func writePDBMembrane(w io.Writer, m search.Membrane, opt Options) error {
	return output.WritePDB(w, m, opt.Bounds)
}
