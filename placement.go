package cedar

// ChunkInstance places one chunk in the world by its integer chunk
// coordinate. Tile contents live in a TileSource indexed by the instance's
// position in the per-draw instance array; the two arrays are
// index-parallel and must be published together.
type ChunkInstance struct {
	X, Y int
}

// WorldOrigin returns the world position of the chunk's bottom-left corner.
func (ci ChunkInstance) WorldOrigin() (x, y float64) {
	return float64(ci.X) * ChunkSize, float64(ci.Y) * ChunkSize
}

// Quad returns the chunk's placed corners. A chunk's footprint is
// ChunkSize x ChunkSize world units.
func (ci ChunkInstance) Quad() Quad {
	ox, oy := ci.WorldOrigin()
	return PlaceQuad(ox, oy, ChunkSize, ChunkSize)
}

// Direction is the facing of a ball instance.
type Direction uint8

const (
	DirRight Direction = iota
	DirUp
	DirDown
	DirLeft
)

// BallInstance places one ball sprite in the world. Position is an integer
// world coordinate (bottom-left corner); the footprint is one tile. On
// selects between the two sheet regions; Dir selects the facing overlay.
type BallInstance struct {
	X, Y int
	On   bool
	Dir  Direction
}

// Flags packs the on state and direction into the single word the original
// instance buffers carry: bit 0 is the on flag, bits 1-2 the direction.
func (b BallInstance) Flags() uint32 {
	f := uint32(b.Dir) << 1
	if b.On {
		f |= 1
	}
	return f
}

// UnpackBallFlags is the inverse of BallInstance.Flags.
func UnpackBallFlags(flags uint32) (on bool, dir Direction) {
	return flags&1 != 0, Direction(flags >> 1 & 3)
}

// Quad returns the ball's placed corners.
func (b BallInstance) Quad() Quad {
	return PlaceQuad(float64(b.X), float64(b.Y), 1, 1)
}

// Corner is one placed corner of an instance quad: its world position and
// its UV within the instance footprint.
type Corner struct {
	WorldX, WorldY float64
	U, V           float64
}

// Quad is the four placed corners of an instance, in the order
// top-left, top-right, bottom-left, bottom-right.
type Quad [4]Corner

// PlaceQuad places a unit quad at the given world origin (bottom-left
// corner) with the given footprint. UVs span [0,1] across the footprint
// with the origin at the TOP-left and V increasing downward, matching
// row-major texture storage. World Y increases upward, so this is the one
// place the V axis flips; every path, chunk and ball alike, goes through it.
func PlaceQuad(originX, originY, w, h float64) Quad {
	top := originY + h
	return Quad{
		{WorldX: originX, WorldY: top, U: 0, V: 0},
		{WorldX: originX + w, WorldY: top, U: 1, V: 0},
		{WorldX: originX, WorldY: originY, U: 0, V: 1},
		{WorldX: originX + w, WorldY: originY, U: 1, V: 1},
	}
}

// UVAt inverts the placement: it returns the instance UV of a world point.
// Exact at the corners and affine in between, so it agrees with what a
// rasterizer would interpolate. Points outside the quad extrapolate past
// [0,1]; downstream tile and atlas clamps absorb edge rounding.
func (q Quad) UVAt(wx, wy float64) (u, v float64) {
	return (wx - q[0].WorldX) / (q[1].WorldX - q[0].WorldX),
		(q[0].WorldY - wy) / (q[0].WorldY - q[2].WorldY)
}

// Bounds returns the quad's world-space AABB.
func (q Quad) Bounds() Rect {
	return Rect{
		X:      q[2].WorldX,
		Y:      q[2].WorldY,
		Width:  q[1].WorldX - q[0].WorldX,
		Height: q[0].WorldY - q[2].WorldY,
	}
}
