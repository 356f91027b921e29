package terrain

import "testing"

func TestTerrainSchemeGradient(t *testing.T) {
	fn := SchemeColor(SchemeTerrain)

	low := fn(0, 0, 1)
	if low[2] <= low[0] || low[2] <= low[1] {
		t.Errorf("low terrain should be bluish, got %v", low)
	}

	mid := fn(0.5, 0, 1)
	if mid[1] <= mid[0] {
		t.Errorf("mid terrain should be greenish, got %v", mid)
	}

	high := fn(1, 0, 1)
	if high[0] < 0.9 || high[1] < 0.9 || high[2] < 0.9 {
		t.Errorf("high terrain should be near white, got %v", high)
	}
}

func TestHeatmapSchemeGradient(t *testing.T) {
	fn := SchemeColor(SchemeHeatmap)

	low := fn(0, 0, 1)
	if low[2] <= low[0] {
		t.Errorf("low heatmap should be blue, got %v", low)
	}

	high := fn(1, 0, 1)
	if high[0] <= high[2] || high[0] < 0.8 {
		t.Errorf("high heatmap should be red, got %v", high)
	}
}

func TestMonochromeSchemeIsGrayscale(t *testing.T) {
	fn := SchemeColor(SchemeMonochrome)

	c := fn(0.5, 0, 1)
	if c[0] != c[1] || c[0] != c[2] {
		t.Errorf("monochrome should be grayscale, got %v", c)
	}

	dark := fn(0, 0, 1)
	bright := fn(1, 0, 1)
	if dark[0] >= bright[0] {
		t.Error("monochrome should brighten with height")
	}
}

func TestColorClampsOutOfRange(t *testing.T) {
	fn := SchemeColor(SchemeTerrain)

	below := fn(-10, 0, 1)
	atMin := fn(0, 0, 1)
	if below != atMin {
		t.Errorf("height below bounds should clamp: %v vs %v", below, atMin)
	}

	above := fn(10, 0, 1)
	atMax := fn(1, 0, 1)
	if above != atMax {
		t.Errorf("height above bounds should clamp: %v vs %v", above, atMax)
	}
}

func TestColorFlatBounds(t *testing.T) {
	fn := SchemeColor(SchemeHeatmap)
	// min == max must not divide by zero.
	c := fn(5, 5, 5)
	if c != fn(0, 0, 1) {
		t.Errorf("flat bounds should map to t=0, got %v", c)
	}
}

func TestCustomGradient(t *testing.T) {
	fn := CustomGradient([3]float32{0, 0, 0}, [3]float32{1, 0.5, 0})

	low := fn(0, 0, 10)
	if low != ([3]float32{0, 0, 0}) {
		t.Errorf("gradient low end: got %v", low)
	}

	high := fn(10, 0, 10)
	if high != ([3]float32{1, 0.5, 0}) {
		t.Errorf("gradient high end: got %v", high)
	}

	mid := fn(5, 0, 10)
	if mid[0] != 0.5 || mid[1] != 0.25 {
		t.Errorf("gradient midpoint: got %v", mid)
	}
}

func TestSchemeFromString(t *testing.T) {
	for _, name := range []string{"terrain", "heatmap", "monochrome"} {
		s, err := SchemeFromString(name)
		if err != nil {
			t.Errorf("SchemeFromString(%q) failed: %v", name, err)
		}
		if s.String() != name {
			t.Errorf("round trip %q -> %q", name, s.String())
		}
	}

	if _, err := SchemeFromString("plasma"); err == nil {
		t.Error("expected error for unknown scheme")
	}
}

func TestUnpackRGB(t *testing.T) {
	c := unpackRGB(0xFF8000)
	if c[0] != 1.0 {
		t.Errorf("red channel: got %f, want 1", c[0])
	}
	if c[1] < 0.5 || c[1] > 0.51 {
		t.Errorf("green channel: got %f, want ~0.502", c[1])
	}
	if c[2] != 0 {
		t.Errorf("blue channel: got %f, want 0", c[2])
	}
}
