package cedar

import (
	"image/color"
	"log"
)

// ChunkSize is the number of tile cells along one side of a chunk.
// A chunk covers ChunkSize x ChunkSize world units (one unit per tile).
const ChunkSize = 32

// ChunkTileCount is the number of tile cells in one chunk.
const ChunkTileCount = ChunkSize * ChunkSize

// SpriteSize is the side length of one ball sheet region, in texels.
const SpriteSize = 16

// AlphaCutoff is the transparency cutout threshold. A sampled color with
// alpha below this contributes nothing to the frame (full discard, not
// blended).
const AlphaCutoff = 0.999

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is opaque white.
var ColorWhite = Color{1, 1, 1, 1}

// NRGBA converts to the standard library's 8-bit straight-alpha color.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp(c.R, 0, 1)*255 + 0.5),
		G: uint8(clamp(c.G, 0, 1)*255 + 0.5),
		B: uint8(clamp(c.B, 0, 1)*255 + 0.5),
		A: uint8(clamp(c.A, 0, 1)*255 + 0.5),
	}
}

// Vec2 is a 2D vector used for positions, offsets, and sizes throughout the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. Cedar uses it both for screen-space
// areas (Y down) and world-space areas (Y up); X and Y are always the
// corner with the smallest coordinates.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// globalDebug enables stderr warnings for soft failures (out-of-range tile
// indices, mismatched layer sizes). Rendering behavior never changes with
// debug on; only logging does.
var globalDebug bool

// SetDebug toggles debug warnings for the whole package.
func SetDebug(enabled bool) {
	globalDebug = enabled
}

func debugf(format string, args ...any) {
	if globalDebug {
		log.Printf("cedar: "+format, args...)
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
