package cedar

// Filter selects the atlas sampling mode. It is configuration, not a
// different code path upstream: both modes honor the same cell clamp.
type Filter uint8

const (
	// FilterNearest fetches the exact texel under the sample point. Use it
	// for crisp pixel-art tiles.
	FilterNearest Filter = iota
	// FilterLinear bilinearly interpolates, with the sample point clamped
	// half a texel inside the cell so the 2x2 footprint never crosses into
	// a neighboring cell. Use it for higher-resolution atlases.
	FilterLinear
)

// AtlasInfo describes the fixed tile grid of an atlas texture. Constant
// per atlas; shared by every chunk instance drawn with it.
type AtlasInfo struct {
	// TilesPerRow is the number of tile cells per atlas row. Must be >= 1.
	TilesPerRow int
	// TileW and TileH are the size of one cell in atlas texels.
	TileW, TileH float64
}

// CellRect returns the texel rectangle of the cell for a tile index:
// col = index % TilesPerRow, row = index / TilesPerRow.
func (info AtlasInfo) CellRect(tileIndex uint32) Rect {
	col := int(tileIndex) % info.TilesPerRow
	row := int(tileIndex) / info.TilesPerRow
	return Rect{
		X:      float64(col) * info.TileW,
		Y:      float64(row) * info.TileH,
		Width:  info.TileW,
		Height: info.TileH,
	}
}

// Atlas samples tile colors from a pixmap laid out as a fixed grid of
// cells. Read-only during a draw.
type Atlas struct {
	Info   AtlasInfo
	Pix    *Pixmap
	Filter Filter
}

// Sample returns the color for an intra-tile position (fu, fv) in [0, 1]
// inside the cell selected by tileIndex. ok is false when the color fails
// the alpha cutout and the pixel must be discarded.
//
// The sample coordinate is clamped inside the cell (and inside the atlas)
// per axis. Without the clamp, a UV that rounds to exactly 1.0 at a tile's
// far edge reads one texel into the neighboring cell; that is a visible
// seam, not a cosmetic detail.
func (a *Atlas) Sample(tileIndex uint32, fu, fv float64) (c Color, ok bool) {
	cell := a.Info.CellRect(tileIndex)
	if cell.Y+cell.Height > float64(a.Pix.H) {
		debugf("tile index %d is outside the %dx%d atlas", tileIndex, a.Pix.W, a.Pix.H)
	}

	switch a.Filter {
	case FilterLinear:
		x := clamp(cell.X+fu*cell.Width, cell.X+0.5, cell.X+cell.Width-0.5)
		y := clamp(cell.Y+fv*cell.Height, cell.Y+0.5, cell.Y+cell.Height-0.5)
		x = clamp(x, 0, float64(a.Pix.W))
		y = clamp(y, 0, float64(a.Pix.H))
		c = a.Pix.SampleLinear(x, y)
	default:
		x := int(cell.X) + clampInt(int(fu*cell.Width), 0, int(cell.Width)-1)
		y := int(cell.Y) + clampInt(int(fv*cell.Height), 0, int(cell.Height)-1)
		x = clampInt(x, 0, a.Pix.W-1)
		y = clampInt(y, 0, a.Pix.H-1)
		c = a.Pix.At(x, y)
	}

	if c.A < AlphaCutoff {
		return Color{}, false
	}
	return c, true
}
