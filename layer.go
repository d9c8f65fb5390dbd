package cedar

import "github.com/hajimehoshi/ebiten/v2"

// maxTilesPerDraw is the maximum number of tile quads per DrawTriangles
// call. Limited by the uint16 index buffer: 65535 / 4 vertices per tile.
const maxTilesPerDraw = 16383

// DrawStats reports the geometry submitted by a layer's most recent Draw.
type DrawStats struct {
	Quads     int
	DrawCalls int
}

// ChunkLayer is the GPU frontend for chunks: it resolves tile indices on
// the CPU and emits one textured quad per visible tile cell, batched into
// as few DrawTriangles calls as the index format allows. The GPU performs
// the sampling, so the alpha cutout is approximate (standard alpha
// blending) rather than the Renderer's exact discard; visually identical
// for the fully-opaque-or-fully-transparent art this core targets.
type ChunkLayer struct {
	// Atlas is the tile atlas texture. Its layout must match Info.
	Atlas *ebiten.Image
	// Info describes the atlas grid.
	Info AtlasInfo
	// Filter selects GPU sampling: FilterNearest maps to ebiten's nearest
	// filter, FilterLinear to its linear filter.
	Filter Filter

	verts []ebiten.Vertex
	inds  []uint16
	stats DrawStats
}

// NewChunkLayer creates a chunk layer for an atlas texture.
func NewChunkLayer(atlas *ebiten.Image, info AtlasInfo) *ChunkLayer {
	return &ChunkLayer{Atlas: atlas, Info: info}
}

// ensureBuffer grows the geometry buffers to hold n tiles. The index
// topology never changes, so indices are built once per growth.
func (l *ChunkLayer) ensureBuffer(n int) {
	if n > maxTilesPerDraw {
		n = maxTilesPerDraw
	}
	if n*4 <= cap(l.verts) {
		return
	}
	l.verts = make([]ebiten.Vertex, 0, n*4)
	l.inds = make([]uint16, n*6)
	for i := 0; i < n; i++ {
		base := uint16(i * 4)
		off := i * 6
		l.inds[off+0] = base + 0
		l.inds[off+1] = base + 1
		l.inds[off+2] = base + 2
		l.inds[off+3] = base + 1
		l.inds[off+4] = base + 3
		l.inds[off+5] = base + 2
	}
}

// Draw renders every visible chunk instance to the target. instances and
// tiles are index-parallel, exactly as for Renderer.DrawChunks.
func (l *ChunkLayer) Draw(target *ebiten.Image, cam *Camera, instances []ChunkInstance, tiles TileSource) {
	visible := cam.VisibleBounds()
	step := float32(cam.Scale())
	l.ensureBuffer(maxTilesPerDraw)
	l.verts = l.verts[:0]
	l.stats = DrawStats{}

	for i, inst := range instances {
		q := inst.Quad()
		if !q.Bounds().Intersects(visible) {
			continue
		}
		// Screen position of the chunk's top-left corner; tiles step down
		// and right from there in row-major order.
		ox, oy := cam.WorldToScreen(q[0].WorldX, q[0].WorldY)
		for ty := 0; ty < ChunkSize; ty++ {
			dy := float32(oy) + float32(ty)*step
			for tx := 0; tx < ChunkSize; tx++ {
				cell := l.Info.CellRect(tiles.TileIndex(i, ty*ChunkSize+tx))
				dx := float32(ox) + float32(tx)*step
				l.appendQuad(dx, dy, step, step, cell)
				if len(l.verts) == maxTilesPerDraw*4 {
					l.flush(target)
				}
			}
		}
	}
	l.flush(target)
	debugf("chunk layer: %d quads in %d draw calls", l.stats.Quads, l.stats.DrawCalls)
}

// Stats returns the geometry counts from the most recent Draw.
func (l *ChunkLayer) Stats() DrawStats {
	return l.stats
}

// appendQuad emits the four vertices of one tile quad.
func (l *ChunkLayer) appendQuad(dx, dy, dw, dh float32, src Rect) {
	sx := float32(src.X)
	sy := float32(src.Y)
	sw := float32(src.Width)
	sh := float32(src.Height)
	l.verts = append(l.verts,
		ebiten.Vertex{DstX: dx, DstY: dy, SrcX: sx, SrcY: sy, ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1},
		ebiten.Vertex{DstX: dx + dw, DstY: dy, SrcX: sx + sw, SrcY: sy, ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1},
		ebiten.Vertex{DstX: dx, DstY: dy + dh, SrcX: sx, SrcY: sy + sh, ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1},
		ebiten.Vertex{DstX: dx + dw, DstY: dy + dh, SrcX: sx + sw, SrcY: sy + sh, ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1},
	)
}

// flush submits buffered quads in a single DrawTriangles call.
func (l *ChunkLayer) flush(target *ebiten.Image) {
	n := len(l.verts) / 4
	if n == 0 {
		return
	}
	var op ebiten.DrawTrianglesOptions
	if l.Filter == FilterLinear {
		op.Filter = ebiten.FilterLinear
	}
	target.DrawTriangles(l.verts, l.inds[:n*6], l.Atlas, &op)
	l.stats.Quads += n
	l.stats.DrawCalls++
	l.verts = l.verts[:0]
}

// BallLayer is the GPU frontend for ball sprites. Sheet holds the on/off
// regions side by side; Dirs, when non-nil, holds the four facing overlays
// drawn on top with the same footprint.
type BallLayer struct {
	Sheet *ebiten.Image
	Dirs  *ebiten.Image

	verts []ebiten.Vertex
	inds  []uint16
	stats DrawStats
}

// NewBallLayer creates a ball layer for a two-region sprite sheet.
func NewBallLayer(sheet *ebiten.Image) *BallLayer {
	return &BallLayer{Sheet: sheet}
}

// Draw renders every visible ball to the target, on/off region first, then
// the facing overlay pass when Dirs is set.
func (b *BallLayer) Draw(target *ebiten.Image, cam *Camera, balls []BallInstance) {
	b.stats = DrawStats{}
	b.drawPass(target, cam, balls, b.Sheet, func(ball BallInstance) float64 {
		if ball.On {
			return 0
		}
		return SpriteSize
	})
	if b.Dirs != nil {
		b.drawPass(target, cam, balls, b.Dirs, func(ball BallInstance) float64 {
			return float64(ball.Dir) * SpriteSize
		})
	}
	debugf("ball layer: %d quads in %d draw calls", b.stats.Quads, b.stats.DrawCalls)
}

// Stats returns the geometry counts from the most recent Draw, summed
// over the base and overlay passes.
func (b *BallLayer) Stats() DrawStats {
	return b.stats
}

// drawPass emits one quad per visible ball with the region column chosen
// by srcX, then submits them in a single DrawTriangles call.
func (b *BallLayer) drawPass(target *ebiten.Image, cam *Camera, balls []BallInstance, sheet *ebiten.Image, srcX func(BallInstance) float64) {
	visible := cam.VisibleBounds()
	step := float32(cam.Scale())
	b.verts = b.verts[:0]

	for _, ball := range balls {
		q := ball.Quad()
		if !q.Bounds().Intersects(visible) {
			continue
		}
		ox, oy := cam.WorldToScreen(q[0].WorldX, q[0].WorldY)
		sx := float32(srcX(ball))
		b.verts = append(b.verts,
			ebiten.Vertex{DstX: float32(ox), DstY: float32(oy), SrcX: sx, SrcY: 0, ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1},
			ebiten.Vertex{DstX: float32(ox) + step, DstY: float32(oy), SrcX: sx + SpriteSize, SrcY: 0, ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1},
			ebiten.Vertex{DstX: float32(ox), DstY: float32(oy) + step, SrcX: sx, SrcY: SpriteSize, ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1},
			ebiten.Vertex{DstX: float32(ox) + step, DstY: float32(oy) + step, SrcX: sx + SpriteSize, SrcY: SpriteSize, ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1},
		)
		if len(b.verts) == maxTilesPerDraw*4 {
			b.flush(target, sheet)
		}
	}
	b.flush(target, sheet)
}

func (b *BallLayer) flush(target, sheet *ebiten.Image) {
	n := len(b.verts) / 4
	if n == 0 {
		return
	}
	for len(b.inds) < n*6 {
		base := uint16(len(b.inds) / 6 * 4)
		b.inds = append(b.inds, base+0, base+1, base+2, base+1, base+3, base+2)
	}
	var op ebiten.DrawTrianglesOptions
	target.DrawTriangles(b.verts, b.inds[:n*6], sheet, &op)
	b.stats.Quads += n
	b.stats.DrawCalls++
	b.verts = b.verts[:0]
}

// Surface presents a software Pixmap through an ebiten image, bridging the
// Renderer's CPU output to the GPU swapchain.
type Surface struct {
	img    *ebiten.Image
	premul []uint8
}

// NewSurface creates a surface of the given pixel size.
func NewSurface(w, h int) *Surface {
	return &Surface{img: ebiten.NewImage(w, h), premul: make([]uint8, w*h*4)}
}

// Update uploads a pixmap's contents. The pixmap must match the surface
// size. Pixmap bytes are straight alpha; ebiten wants premultiplied, so
// the upload converts.
func (s *Surface) Update(p *Pixmap) {
	b := s.img.Bounds()
	if p.W != b.Dx() || p.H != b.Dy() {
		debugf("surface update with %dx%d pixmap, surface is %dx%d", p.W, p.H, b.Dx(), b.Dy())
		return
	}
	for o := 0; o < len(p.Pix); o += 4 {
		a := uint16(p.Pix[o+3])
		s.premul[o+0] = uint8(uint16(p.Pix[o+0]) * a / 255)
		s.premul[o+1] = uint8(uint16(p.Pix[o+1]) * a / 255)
		s.premul[o+2] = uint8(uint16(p.Pix[o+2]) * a / 255)
		s.premul[o+3] = uint8(a)
	}
	s.img.WritePixels(s.premul)
}

// Draw blits the surface to the target.
func (s *Surface) Draw(target *ebiten.Image, op *ebiten.DrawImageOptions) {
	if op == nil {
		op = &ebiten.DrawImageOptions{}
	}
	target.DrawImage(s.img, op)
}
