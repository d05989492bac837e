// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"memplane-core/slab"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Structure input
	PDBFile string
	ASAFile string
	Chain   string
	Model   int
	First   int
	Last    int

	// Search parameters
	ExposureThreshold float64
	Directions        int
	Method            string
	Increment         float64
	MaxSteps          int

	// Performance
	Threads int

	// Output
	Output   string // text | json | pdb
	Residues bool
	Header   bool // true unless --no-header

	// Misc
	Quiet   bool
	Version bool
}

// ParseArgs registers and parses all flags, returning an Options
// struct. Validation runs after parsing so --help and --version still
// work on their own.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	// Structure input
	fs.StringVar(&opt.PDBFile, "pdb", "", "PDB structure file ('-' for stdin, .gz ok) [*]")
	fs.StringVar(&opt.ASAFile, "asa", "", "per-residue accessibility TSV (residue asa) [*]")
	fs.StringVar(&opt.Chain, "chain", "", "chain to analyse (default: first in file)")
	fs.IntVar(&opt.Model, "model", 0, "MODEL serial to analyse (0 = first) [0]")
	fs.IntVar(&opt.First, "first", 0, "first residue number to consider (0 = start) [0]")
	fs.IntVar(&opt.Last, "last", 0, "last residue number to consider (0 = end) [0]")

	// Search parameters
	fs.Float64Var(&opt.ExposureThreshold, "exposure-threshold", 0.3, "relative ASA above which a residue counts as exposed [0.3]")
	fs.IntVar(&opt.Directions, "directions", 20, "approximate number of candidate normals on the hemisphere [20]")
	fs.IntVar(&opt.Directions, "n", 20, "alias of --directions")
	fs.StringVar(&opt.Method, "score-method", slab.MethodASA, "slab score: asa | simple [asa]")
	fs.Float64Var(&opt.Increment, "increment", slab.DefaultIncrement, "thickness step of the optimizer (Å) [1]")
	fs.IntVar(&opt.MaxSteps, "max-steps", slab.DefaultMaxSteps, "optimizer per-side iteration cap [200]")

	// Performance
	fs.IntVar(&opt.Threads, "threads", 0, "concurrent directions (0 = all CPUs) [0]")
	fs.IntVar(&opt.Threads, "t", 0, "alias of --threads")

	// Output
	fs.StringVar(&opt.Output, "output", "text", "output format: text | json | pdb [text]")
	fs.StringVar(&opt.Output, "o", "text", "alias of --output")
	fs.BoolVar(&opt.Residues, "residues", false, "emit the residues inside the membrane slab [false]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in text/TSV [false]")

	// Misc
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress non-essential warnings [false]")
	fs.BoolVar(&opt.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	opt.Header = !noHeader
	if opt.Version {
		return opt, nil
	}
	return opt, validate(&opt)
}

func validate(o *Options) error {
	switch {
	case o.PDBFile == "":
		return errors.New("--pdb is required")
	case o.ASAFile == "":
		return errors.New("--asa is required")
	case o.ExposureThreshold < 0:
		return errors.New("--exposure-threshold must be >= 0")
	case o.Directions <= 0:
		return errors.New("--directions must be positive")
	case o.Increment <= 0:
		return errors.New("--increment must be positive")
	case o.MaxSteps <= 0:
		return errors.New("--max-steps must be positive")
	case o.Threads < 0:
		return errors.New("--threads must be >= 0")
	case o.Model < 0:
		return errors.New("--model must be >= 0")
	case o.First < 0 || o.Last < 0:
		return errors.New("--first/--last must be >= 0")
	case o.First != 0 && o.Last != 0 && o.First > o.Last:
		return errors.New("--first exceeds --last")
	}

	switch o.Method {
	case slab.MethodASA, slab.MethodSimple:
	default:
		return fmt.Errorf("--score-method must be 'asa' or 'simple', got %q", o.Method)
	}

	switch o.Output {
	case "text", "json", "pdb":
	default:
		return fmt.Errorf("--output must be text, json or pdb, got %q", o.Output)
	}
	return nil
}
