// internal/pdbio/reader.go
// Minimal PDB reader for the membrane search: it extracts one record
// per residue from the Cα ATOM entries of a chosen model and chain.
package pdbio

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"memplane-core/geom"
)

// Residue is one chain position read from a PDB file: its sequence
// number, 3-letter name, and Cα coordinates. Accessibility is joined
// in later from a separate source.
type Residue struct {
	Num  int
	Name string
	CA   geom.Point
}

// Options selects which part of the structure to read.
type Options struct {
	Chain string // chain identifier; "" = first chain seen
	Model int    // MODEL serial; 0 = first model in the file
	First int    // first residue number to keep; 0 = from the start
	Last  int    // last residue number to keep; 0 = to the end
}

// ReadCA parses the Cα atoms of path (plain, gzip, or "-" for stdin)
// into residue records, in file order. Files without MODEL records are
// treated as a single model. Residues that have ATOM entries but no
// Cα, and thus are probably not standard amino acids, are skipped and
// reported through warn.
func ReadCA(path string, opt Options, warn func(format string, a ...any)) ([]Residue, error) {
	rc, err := openReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	if warn == nil {
		warn = func(string, ...any) {}
	}

	var (
		list        []Residue
		chain       = opt.Chain
		sawModel    bool
		firstSerial int
		inModel     bool

		// no-Cα detection for the residue currently being scanned
		curNum   int
		curName  string
		curHasCA bool
		curAny   bool
	)

	flush := func() {
		if curAny && !curHasCA {
			warn("no Cα found for residue %d (%s), probably not a standard amino acid; ignoring it", curNum, curName)
		}
		curAny, curHasCA = false, false
	}

	sc := bufio.NewScanner(rc)
	ln := 0
	for sc.Scan() {
		ln++
		line := sc.Text()
		if len(line) < 6 {
			continue
		}
		switch strings.TrimRight(line[:6], " ") {
		case "MODEL":
			serial, perr := strconv.Atoi(strings.TrimSpace(line[6:]))
			if perr != nil {
				return nil, fmt.Errorf("%s:%d bad MODEL record", path, ln)
			}
			if !sawModel {
				sawModel = true
				firstSerial = serial
			}
			if opt.Model == 0 {
				inModel = serial == firstSerial
			} else {
				inModel = serial == opt.Model
			}
		case "ENDMDL", "TER":
			flush()
		case "ATOM":
			if sawModel && !inModel {
				continue
			}
			if len(line) < 54 {
				continue
			}
			a, ok, perr := parseAtom(line)
			if perr != nil {
				return nil, fmt.Errorf("%s:%d %v", path, ln, perr)
			}
			if !ok {
				continue
			}
			if chain == "" {
				chain = a.chain
			}
			if a.chain != chain {
				continue
			}
			if (opt.First != 0 && a.num < opt.First) || (opt.Last != 0 && a.num > opt.Last) {
				continue
			}
			if a.num != curNum || a.name != curName {
				flush()
				curNum, curName = a.num, a.name
			}
			curAny = true
			if a.isCA && !curHasCA {
				curHasCA = true
				list = append(list, Residue{Num: a.num, Name: a.name, CA: a.coord})
			}
		}
	}
	flush()
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("%s: no Cα atoms for chain %q", path, chain)
	}
	return list, nil
}

type atomLine struct {
	num   int
	name  string
	chain string
	coord geom.Point
	isCA  bool
}

// parseAtom reads the fixed PDB ATOM columns. Alternate locations
// other than blank or 'A' are dropped so a residue contributes one Cα
// at most.
func parseAtom(line string) (atomLine, bool, error) {
	if alt := line[16]; alt != ' ' && alt != 'A' {
		return atomLine{}, false, nil
	}
	var a atomLine
	a.name = strings.TrimSpace(line[17:20])
	a.chain = string(line[21])
	a.isCA = strings.TrimSpace(line[12:16]) == "CA"

	num, err := strconv.Atoi(strings.TrimSpace(line[22:26]))
	if err != nil {
		return a, false, fmt.Errorf("bad residue number: %v", err)
	}
	a.num = num

	for i, dst := range []*float64{&a.coord.X, &a.coord.Y, &a.coord.Z} {
		v, err := strconv.ParseFloat(strings.TrimSpace(line[30+8*i:38+8*i]), 64)
		if err != nil {
			return a, false, fmt.Errorf("bad coordinate: %v", err)
		}
		*dst = v
	}
	return a, true, nil
}
