package terrain

import "math"

// GenerateOptions controls procedural grid generation.
type GenerateOptions struct {
	Seed        int64
	Octaves     int
	Frequency   float64 // base noise frequency in cycles per sample
	Persistence float64 // per-octave amplitude falloff
	Lacunarity  float64 // per-octave frequency gain
	Amplitude   float64 // output height range
}

// DefaultGenerateOptions returns rolling-hills style parameters.
func DefaultGenerateOptions() GenerateOptions {
	return GenerateOptions{
		Seed:        1,
		Octaves:     5,
		Frequency:   1.0 / 64.0,
		Persistence: 0.5,
		Lacunarity:  2.0,
		Amplitude:   40.0,
	}
}

// Generate builds a grid from seeded multi-octave value noise. The same
// seed and options always produce the same grid.
func Generate(width, height int, opts GenerateOptions) *Grid {
	if opts.Octaves < 1 {
		opts.Octaves = 1
	}

	samples := make([]float32, width*height)
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			n := octaveNoise2D(
				float64(c)*opts.Frequency,
				float64(r)*opts.Frequency,
				opts.Seed, opts.Octaves, opts.Persistence, opts.Lacunarity,
			)
			samples[r*width+c] = float32(n * opts.Amplitude)
		}
	}

	// Generated samples always satisfy the grid invariant.
	g, err := NewGrid(width, height, samples, nil)
	if err != nil {
		panic(err)
	}
	return g
}

// fade is the smoothstep-like curve 6t^5 - 15t^4 + 10t^3.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// hash2 is a SplitMix64-style integer hash, stable across runs. Each
// coordinate gets its own odd multiplier so no two lattice points
// alias before mixing.
func hash2(x, z, seed int64) uint64 {
	v := uint64(x)*0x9E3779B97F4A7C15 ^ uint64(z)*0xC2B2AE3D27D4EB4F ^ uint64(seed)*0x165667B19E3779F9
	v += 0x9E3779B97F4A7C15
	v = (v ^ (v >> 30)) * 0xBF58476D1CE4E5B9
	v = (v ^ (v >> 27)) * 0x94D049BB133111EB
	return v ^ (v >> 31)
}

// latticeValue maps a lattice point to [0, 1].
func latticeValue(x, z, seed int64) float64 {
	return float64(hash2(x, z, seed)&0xFFFFFFFF) / float64(0xFFFFFFFF)
}

func valueNoise2D(x, z float64, seed int64) float64 {
	x0 := math.Floor(x)
	z0 := math.Floor(z)
	x1 := x0 + 1
	z1 := z0 + 1

	fx := fade(x - x0)
	fz := fade(z - z0)

	v00 := latticeValue(int64(x0), int64(z0), seed)
	v10 := latticeValue(int64(x1), int64(z0), seed)
	v01 := latticeValue(int64(x0), int64(z1), seed)
	v11 := latticeValue(int64(x1), int64(z1), seed)

	return lerp(lerp(v00, v10, fx), lerp(v01, v11, fx), fz)
}

// octaveNoise2D sums octaves of value noise, normalized back to [0, 1].
func octaveNoise2D(x, z float64, seed int64, octaves int, persistence, lacunarity float64) float64 {
	var total, amplitude, maxValue float64
	amplitude = 1
	frequency := 1.0

	for o := 0; o < octaves; o++ {
		total += valueNoise2D(x*frequency, z*frequency, seed+int64(o)) * amplitude
		maxValue += amplitude
		amplitude *= persistence
		frequency *= lacunarity
	}

	return total / maxValue
}
