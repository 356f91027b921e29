package terrain

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseSimple(t *testing.T) {
	g, err := Parse(strings.NewReader("0 1 2\n3 4 5"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if g.Width() != 3 || g.Height() != 2 {
		t.Errorf("expected 3x2, got %dx%d", g.Width(), g.Height())
	}
	if g.Sample(0, 0) != 0 || g.Sample(2, 1) != 5 {
		t.Error("samples not in row-major order")
	}
	if g.HasColors() {
		t.Error("expected no colors for plain file")
	}
}

func TestParseWithColors(t *testing.T) {
	g, err := Parse(strings.NewReader("0,0xFF0000 1,0x00FF00\n2,0x0000FF 3,0xFFFFFF"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if !g.HasColors() {
		t.Fatal("expected colors")
	}
	if g.Color(0, 0) != 0xFF0000 {
		t.Errorf("expected 0xFF0000, got %#x", g.Color(0, 0))
	}
	if g.Color(1, 0) != 0x00FF00 {
		t.Errorf("expected 0x00FF00, got %#x", g.Color(1, 0))
	}
}

func TestParsePartialColorsDefaultWhite(t *testing.T) {
	g, err := Parse(strings.NewReader("0,0xFF0000 1"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !g.HasColors() {
		t.Fatal("expected colors when any value has one")
	}
	if g.Color(1, 0) != 0xFFFFFF {
		t.Errorf("uncolored value should default to white, got %#x", g.Color(1, 0))
	}
}

func TestParseInconsistentRows(t *testing.T) {
	_, err := Parse(strings.NewReader("0 1 2\n3 4"))
	if err == nil {
		t.Fatal("expected error for inconsistent row widths")
	}
	if !strings.Contains(err.Error(), "expected 3") {
		t.Errorf("error should mention expected width: %v", err)
	}
}

func TestParseEmpty(t *testing.T) {
	_, err := Parse(strings.NewReader(""))
	if !errors.Is(err, ErrEmptyFile) {
		t.Errorf("expected ErrEmptyFile, got %v", err)
	}

	_, err = Parse(strings.NewReader("\n\n  \n"))
	if !errors.Is(err, ErrEmptyFile) {
		t.Errorf("expected ErrEmptyFile for whitespace-only input, got %v", err)
	}
}

func TestParseNegativeHeights(t *testing.T) {
	g, err := Parse(strings.NewReader("-5 0 5\n-10 0 10"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if g.Sample(0, 0) != -5 || g.Sample(0, 1) != -10 {
		t.Error("negative heights not parsed")
	}
}

func TestParseBadValue(t *testing.T) {
	if _, err := Parse(strings.NewReader("0 abc 2")); err == nil {
		t.Error("expected error for non-numeric value")
	}
	if _, err := Parse(strings.NewReader("0,zz 1,0x00FF00")); err == nil {
		t.Error("expected error for bad color")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.fdf")
	if err := os.WriteFile(path, []byte("1 2\n3 4\n"), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	g, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if g.Width() != 2 || g.Height() != 2 {
		t.Errorf("expected 2x2, got %dx%d", g.Width(), g.Height())
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.fdf")); err == nil {
		t.Error("expected error for missing file")
	}
}
