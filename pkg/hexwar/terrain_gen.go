package hexwar

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// Noise thresholds for generated terrain. Values are in [0, 1].
const (
	mountainThreshold = 0.72
	forestThreshold   = 0.58
)

// GenerateTerrain assigns terrain to coords from seeded simplex noise. The
// same seed always yields the same map.
func GenerateTerrain(coords []Coord, seed int64) map[Coord]TerrainType {
	noise := opensimplex.NewNormalized(seed)
	out := make(map[Coord]TerrainType, len(coords))
	for _, c := range coords {
		// Axial to cartesian so neighbouring hexes sample nearby points.
		x := float64(c.Q) + float64(c.R)*0.5
		y := float64(c.R) * math.Sqrt(3.0) / 2.0
		switch v := octaveNoise(noise, x, y, 3, 0.35, 0.5); {
		case v > mountainThreshold:
			out[c] = Mountain
		case v > forestThreshold:
			out[c] = Forest
		default:
			out[c] = Plain
		}
	}
	return out
}

func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0
	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}
	return total / maxVal
}
