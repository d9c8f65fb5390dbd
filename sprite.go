package cedar

// SpriteSheet holds the two-state ball graphic: two horizontally adjacent
// SpriteSize x SpriteSize regions. The "on" region starts at texel column
// 0, the "off" region one SpriteSize to its right. Sheets are sampled with
// an exact nearest-texel fetch; balls are pixel art by contract.
type SpriteSheet struct {
	Pix *Pixmap
}

// Resolve maps an instance UV to a sheet color. on selects the region.
// ok is false when the texel fails the alpha cutout.
func (s *SpriteSheet) Resolve(on bool, fu, fv float64) (c Color, ok bool) {
	px := clampInt(int(fu*SpriteSize), 0, SpriteSize-1)
	py := clampInt(int(fv*SpriteSize), 0, SpriteSize-1)
	if !on {
		px += SpriteSize
	}
	c = s.Pix.At(px, py)
	if c.A < AlphaCutoff {
		return Color{}, false
	}
	return c, true
}

// DirSheet holds the four facing overlays, one SpriteSize x SpriteSize
// region per Direction in Direction order along the horizontal axis.
type DirSheet struct {
	Pix *Pixmap
}

// Resolve maps an instance UV to the overlay color for a facing.
// ok is false when the texel fails the alpha cutout.
func (s *DirSheet) Resolve(dir Direction, fu, fv float64) (c Color, ok bool) {
	px := clampInt(int(fu*SpriteSize), 0, SpriteSize-1) + int(dir)*SpriteSize
	py := clampInt(int(fv*SpriteSize), 0, SpriteSize-1)
	c = s.Pix.At(px, py)
	if c.A < AlphaCutoff {
		return Color{}, false
	}
	return c, true
}
