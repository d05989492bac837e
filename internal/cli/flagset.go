// internal/cli/flagset.go
package cli

import (
	"flag"
	"fmt"

	"memplane/internal/version"
)

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: membrane position estimation from a protein structure

Samples candidate membrane normals on a hemisphere, scores slab
positions by hydrophobicity enrichment, and reports the best slab.

License: MIT
Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}
