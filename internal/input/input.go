// Package input reads puzzle inputs as lines of text.
package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// maxLine bounds a single input line.
const maxLine = 1 << 20

// Path returns the conventional input file for day under dir: dir/dayN.txt.
func Path(dir string, day int) string {
	return filepath.Join(dir, fmt.Sprintf("day%d.txt", day))
}

// ReadLines returns the lines of the file at path without line terminators.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("input: open %s: %w", path, err)
	}
	defer f.Close()

	lines, err := Lines(f)
	if err != nil {
		return nil, fmt.Errorf("input: read %s: %w", path, err)
	}

	return lines, nil
}

// Lines splits r into lines. A trailing "\r" is dropped from each line.
func Lines(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	var lines []string
	for sc.Scan() {
		line := sc.Text()
		if n := len(line); n > 0 && line[n-1] == '\r' {
			line = line[:n-1]
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
