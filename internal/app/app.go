// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"memplane-core/geom"
	"memplane-core/protein"
	"memplane-core/search"
	"memplane/internal/asa"
	"memplane/internal/cli"
	"memplane/internal/cmdutil"
	"memplane/internal/pdbio"
	"memplane/internal/version"
	"memplane/internal/writers"
)

// RunContext parses argv, loads the structure and accessibility table,
// runs the membrane search, and writes the result in the requested
// format. Exit codes: 0 success, 1 search failure, 2 usage or input
// error, 3 output error.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("memplane")
	fs.SetOutput(io.Discard)

	flushOut := func() (int, bool) {
		if err := outw.Flush(); writers.IsBrokenPipe(err) {
			return 0, true
		} else if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 3, true
		}
		return 0, false
	}

	if len(argv) == 0 {
		_, _ = cli.ParseArgs(fs, []string{"-h"})
		fs.SetOutput(outw)
		fs.Usage()
		code, _ := flushOut()
		return code
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			code, _ := flushOut()
			return code
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		if code, bad := flushOut(); bad {
			return code
		}
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "memplane version %s\n", version.Version)
		code, _ := flushOut()
		return code
	}

	// Warnings are deduplicated: column anomalies in a PDB tend to
	// repeat once per residue and would otherwise flood stderr.
	seen := map[string]bool{}
	warn := func(err error) {
		msg := err.Error()
		if seen[msg] {
			return
		}
		seen[msg] = true
		cmdutil.Warnf(stderr, opts.Quiet, "%s", msg)
	}
	warnf := func(format string, a ...any) { warn(fmt.Errorf(format, a...)) }

	caRes, err := pdbio.ReadCA(opts.PDBFile, pdbio.Options{
		Chain: opts.Chain, Model: opts.Model,
		First: opts.First, Last: opts.Last,
	}, warnf)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	table, err := asa.LoadTSV(opts.ASAFile)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	residues := make([]protein.Residue, 0, len(caRes))
	for _, r := range caRes {
		rel, ok := table[r.Num]
		if !ok {
			warn(fmt.Errorf("residue %d %s has no accessibility entry, treating as buried", r.Num, r.Name))
		}
		residues = append(residues, protein.Residue{Num: r.Num, AA: r.Name, Coord: r.CA, ASA: rel})
	}

	prot := protein.New(residues, opts.ExposureThreshold, warn)
	shift, err := prot.Recenter()
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "no exposed residues at threshold %g: %v\n", opts.ExposureThreshold, err)
		return 2
	}

	eng := search.New(search.Config{
		Directions: opts.Directions,
		Method:     opts.Method,
		Increment:  opts.Increment,
		MaxSteps:   opts.MaxSteps,
		Threads:    opts.Threads,
	})
	res, err := eng.Search(parent, prot)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}
	for _, w := range res.Warnings {
		warn(w)
	}

	// Report in the original frame: undo the barycenter recentring.
	back := shift.Neg()
	m := res.Membrane().Translate(back)
	min, max := prot.Bounds()
	if err := writers.Write(opts.Output, outw, m, writers.Options{
		Header:   opts.Header,
		Residues: opts.Residues,
		Bounds:   [2]geom.Point{min.Add(back), max.Add(back)},
	}); err != nil {
		if writers.IsBrokenPipe(err) {
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}

	code, _ := flushOut()
	return code
}

// Run is RunContext with a background context, for tests and callers
// without signal handling.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
