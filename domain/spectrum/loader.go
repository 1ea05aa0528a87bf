package spectrum

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// DataExt is the file extension of measurement files discovered by ScanDir.
const DataExt = ".txt"

// Parse reads whitespace-delimited spectral data from r. Each data line must
// start with two numeric columns (x, then y); extra columns are ignored.
// Blank lines and lines starting with '#' are skipped.
func Parse(r io.Reader) (Spectrum, error) {
	var s Spectrum

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, &ParseError{Line: lineNo, Text: line, Err: errors.New("expected two numeric columns")}
		}

		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, &ParseError{Line: lineNo, Text: line, Err: err}
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, &ParseError{Line: lineNo, Text: line, Err: err}
		}

		s = append(s, Sample{X: x, Y: y})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read data: %w", err)
	}

	return s, nil
}

// Load reads a measurement file from disk.
func Load(path string) (Spectrum, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open measurement file: %w", err)
	}
	defer f.Close()

	s, err := Parse(f)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.Path = path
		}
		return nil, err
	}
	return s, nil
}

// ScanDir returns the paths of measurement files (DataExt) directly inside
// dir, sorted by name.
func ScanDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read measurement folder: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), DataExt) {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	sort.Slice(paths, func(i, j int) bool {
		return strings.ToLower(filepath.Base(paths[i])) < strings.ToLower(filepath.Base(paths[j]))
	})
	return paths, nil
}
