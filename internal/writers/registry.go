// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"

	"memplane-core/geom"
	"memplane-core/search"
)

// Options carries presentation choices shared by all formats.
type Options struct {
	Header   bool // emit the TSV header (text only)
	Residues bool // attach the slab residues
	Bounds   [2]geom.Point
}

// WriterFunc serializes one estimated membrane.
type WriterFunc func(w io.Writer, m search.Membrane, opt Options) error

// membraneWriters is the format registry (format → handler). Writer
// files register themselves in init() blocks.
var membraneWriters = map[string]WriterFunc{}

// Register installs a writer for format; last registration wins.
func Register(format string, fn WriterFunc) { membraneWriters[format] = fn }

// Formats lists the registered format names.
func Formats() []string {
	out := make([]string, 0, len(membraneWriters))
	for f := range membraneWriters {
		out = append(out, f)
	}
	return out
}

// Write dispatches to the registered writer for format.
func Write(format string, w io.Writer, m search.Membrane, opt Options) error {
	fn, ok := membraneWriters[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, m, opt)
}
