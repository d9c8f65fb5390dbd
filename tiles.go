package cedar

// TileSource maps (instance, cell) to an atlas tile index. The cell is a
// linear index into the chunk's row-major 32x32 grid: cell = ty*ChunkSize+tx
// with ty counted from the top of the chunk.
//
// The three implementations below are alternative backing stores for the
// same abstract mapping; the sampler and both render frontends cannot tell
// them apart. Pick one per layer based on memory and update patterns.
type TileSource interface {
	TileIndex(instance, cell int) uint32
}

// ResolveTileCoord converts an instance-relative UV to a tile coordinate
// and its linear cell index. The coordinate is clamped to
// [0, ChunkSize-1] per axis to absorb UVs that round to exactly 1.0 at an
// instance's far edge.
func ResolveTileCoord(u, v float64) (tx, ty, cell int) {
	tx = clampInt(int(u*ChunkSize), 0, ChunkSize-1)
	ty = clampInt(int(v*ChunkSize), 0, ChunkSize-1)
	return tx, ty, ty*ChunkSize + tx
}

// DirectTiles stores one full word per cell. Simplest store and the only
// one without an index cap, at 4 KiB per chunk.
type DirectTiles struct {
	data []uint32
}

// NewDirectTiles creates a direct store for the given number of chunk
// instances, all cells zero.
func NewDirectTiles(instances int) *DirectTiles {
	return &DirectTiles{data: make([]uint32, instances*ChunkTileCount)}
}

// Set writes the tile index at one cell.
func (d *DirectTiles) Set(instance, cell int, index uint32) {
	d.data[instance*ChunkTileCount+cell] = index
}

// Load copies a full ChunkTileCount grid into one instance's cells.
func (d *DirectTiles) Load(instance int, tiles []uint32) {
	copy(d.data[instance*ChunkTileCount:(instance+1)*ChunkTileCount], tiles)
}

// TileIndex implements TileSource.
func (d *DirectTiles) TileIndex(instance, cell int) uint32 {
	return d.data[instance*ChunkTileCount+cell]
}

// packedStride is the number of words per chunk in the packed store.
const packedStride = ChunkTileCount / 4

// PackedTiles stores four tile indices per word, one byte each. This is the
// canonical store: a quarter of the direct store's memory, at the cost of
// capping indices at 255. Indices above 255 are truncated to their low
// byte on Set; that cap is inherent to the layout, not a bug to widen.
type PackedTiles struct {
	data []uint32
}

// NewPackedTiles creates a packed store for the given number of chunk
// instances, all cells zero.
func NewPackedTiles(instances int) *PackedTiles {
	return &PackedTiles{data: make([]uint32, instances*packedStride)}
}

// Set writes the tile index at one cell. Only the low byte is kept.
func (p *PackedTiles) Set(instance, cell int, index uint32) {
	w := &p.data[instance*packedStride+cell/4]
	shift := uint(cell%4) * 8
	*w = *w&^(0xFF<<shift) | (index&0xFF)<<shift
}

// Load packs a full ChunkTileCount grid into one instance's cells.
func (p *PackedTiles) Load(instance int, tiles []uint32) {
	for cell, idx := range tiles {
		p.Set(instance, cell, idx)
	}
}

// TileIndex implements TileSource.
func (p *PackedTiles) TileIndex(instance, cell int) uint32 {
	word := p.data[instance*packedStride+cell/4]
	return word >> (uint(cell%4) * 8) & 0xFF
}

// TileImage stores tile indices in per-instance index grids held outside
// the instance records, the way an index texture sits outside a GPU
// instance buffer. Each grid is addressed by tile coordinate and can be
// swapped independently of the rest of the instance data.
type TileImage struct {
	layers [][]uint32
}

// NewTileImage creates an external index store for the given number of
// chunk instances. Instances render as all-zero until a layer is set.
func NewTileImage(instances int) *TileImage {
	return &TileImage{layers: make([][]uint32, instances)}
}

// SetLayer points one instance at a new index grid of ChunkTileCount
// entries. The grid is referenced, not copied, so the host can keep
// mutating it between draws (never during one). Grids of the wrong length
// are rejected.
func (t *TileImage) SetLayer(instance int, grid []uint32) {
	if len(grid) != ChunkTileCount {
		debugf("tile image layer %d has %d cells, want %d", instance, len(grid), ChunkTileCount)
		return
	}
	t.layers[instance] = grid
}

// At returns the tile index at a tile coordinate.
func (t *TileImage) At(instance, tx, ty int) uint32 {
	grid := t.layers[instance]
	if grid == nil {
		return 0
	}
	return grid[ty*ChunkSize+tx]
}

// TileIndex implements TileSource.
func (t *TileImage) TileIndex(instance, cell int) uint32 {
	return t.At(instance, cell%ChunkSize, cell/ChunkSize)
}
