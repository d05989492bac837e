// internal/asa/loader.go
// Package asa loads per-residue accessible surface area values
// computed by an external tool (DSSP or similar), one residue per
// line: residue number, whitespace, relative ASA.
package asa

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// LoadTSV reads a residue-number → ASA table. Blank lines and lines
// starting with '#' are skipped. ASA values must be non-negative;
// duplicate residue numbers are rejected.
func LoadTSV(path string) (map[int]float64, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	table := make(map[int]float64)
	sc := bufio.NewScanner(fh)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		f := strings.Fields(line)
		if len(f) != 2 {
			return nil, fmt.Errorf("%s:%d bad field count (want 2: residue asa)", path, ln)
		}
		num, err := strconv.Atoi(f[0])
		if err != nil {
			return nil, fmt.Errorf("%s:%d bad residue number: %v", path, ln, err)
		}
		val, err := strconv.ParseFloat(f[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%s:%d bad asa: %v", path, ln, err)
		}
		if val < 0 {
			return nil, fmt.Errorf("%s:%d asa must be >= 0, got %g", path, ln, val)
		}
		if _, dup := table[num]; dup {
			return nil, fmt.Errorf("%s:%d duplicate residue %d", path, ln, num)
		}
		table[num] = val
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(table) == 0 {
		return nil, fmt.Errorf("%s: no asa entries", path)
	}
	return table, nil
}
