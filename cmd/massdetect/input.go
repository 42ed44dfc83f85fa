package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-masspec/ms"
	"github.com/cwbudde/algo-masspec/mzml"
)

// loadScans reads all scans from path. Files ending in .mzml (any case) are
// parsed as mzML; anything else is treated as a two-column text spectrum.
// msLevel filters mzML spectra when > 0.
func loadScans(path string, msLevel int) ([]ms.Scan, []string, error) {
	if strings.EqualFold(strings.TrimPrefix(ext(path), "."), "mzml") {
		spectra, err := mzml.ReadFile(path)
		if err != nil {
			return nil, nil, err
		}

		var (
			scans  []ms.Scan
			labels []string
		)
		for _, sp := range spectra {
			if msLevel > 0 && sp.MSLevel != msLevel {
				continue
			}
			scans = append(scans, sp.Scan)
			labels = append(labels, sp.ID)
		}
		return scans, labels, nil
	}

	scan, err := readXYFile(path)
	if err != nil {
		return nil, nil, err
	}
	return []ms.Scan{scan}, []string{path}, nil
}

func ext(path string) string {
	if i := strings.LastIndex(path, "."); i >= 0 {
		return path[i:]
	}
	return ""
}

// readXYFile parses a whitespace-separated two-column (m/z, intensity) file.
// Blank lines and lines starting with '#' are skipped.
func readXYFile(path string) (ms.Scan, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var scan ms.Scan

	lineNo := 0
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lineNo++

		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("%s:%d: expected two columns", path, lineNo)
		}

		mz, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: bad m/z %q: %w", path, lineNo, fields[0], err)
		}

		intensity, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: bad intensity %q: %w", path, lineNo, fields[1], err)
		}

		scan = append(scan, ms.Sample{Mz: mz, Intensity: intensity})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	if err := scan.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return scan, nil
}
