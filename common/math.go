package common

const (
	BaseWidth  = 1280
	BaseHeight = 720
	TileSize   = 32

	// FixedDt is the physics step; ebiten's 60 TPS update is the fixed tick.
	FixedDt = 1.0 / 60.0
)

// Rect is an axis-aligned box with top-left origin, in pixels.
type Rect struct {
	X, Y, W, H float64
}

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
