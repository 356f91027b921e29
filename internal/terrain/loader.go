package terrain

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrEmptyFile is returned when a terrain file contains no data rows.
var ErrEmptyFile = errors.New("terrain file is empty")

// LoadFile reads a .fdf terrain file from disk.
func LoadFile(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open terrain file: %w", err)
	}
	defer f.Close()

	g, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return g, nil
}

// Parse reads .fdf terrain data: one row of whitespace-separated values
// per line, each value either "height" or "height,0xRRGGBB". Blank lines
// are skipped. All rows must have the same width.
func Parse(r io.Reader) (*Grid, error) {
	var (
		samples  []float32
		colors   []uint32
		anyColor bool
		width    = -1
		rows     int
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if width < 0 {
			width = len(fields)
		} else if len(fields) != width {
			return nil, fmt.Errorf("row %d has %d values, expected %d", lineNo, len(fields), width)
		}

		for _, field := range fields {
			h, c, hasColor, err := parseValue(field)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			samples = append(samples, h)
			colors = append(colors, c)
			if hasColor {
				anyColor = true
			}
		}
		rows++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read terrain data: %w", err)
	}
	if rows == 0 {
		return nil, ErrEmptyFile
	}

	if !anyColor {
		colors = nil
	}
	return NewGrid(width, rows, samples, colors)
}

// parseValue parses "height" or "height,0xRRGGBB". Values without a
// color default to white so partially colored files stay parallel.
func parseValue(s string) (float32, uint32, bool, error) {
	heightStr, colorStr, hasColor := strings.Cut(s, ",")

	h, err := strconv.ParseFloat(heightStr, 32)
	if err != nil {
		return 0, 0, false, fmt.Errorf("expected number, got %q", heightStr)
	}

	if !hasColor {
		return float32(h), 0xFFFFFF, false, nil
	}

	colorStr = strings.TrimPrefix(strings.TrimPrefix(colorStr, "0x"), "0X")
	c, err := strconv.ParseUint(colorStr, 16, 32)
	if err != nil {
		return 0, 0, false, fmt.Errorf("invalid color format %q", colorStr)
	}
	return float32(h), uint32(c), true, nil
}
