package cedar

import "math"

// Renderer is the software frontend: it rasterizes chunk and ball
// instances into a CPU pixel target, evaluating the full per-pixel
// contract (UV interpolation, tile resolve, atlas clamp, cutout) exactly.
//
// A Renderer holds no cross-frame state beyond the target pixels. All draw
// inputs are read-only for the duration of the call; the host must not
// mutate instance data mid-draw. Pixels are independent of each other, so
// there are no ordering guarantees between instances beyond submission
// order of the draw calls themselves.
type Renderer struct {
	// Target receives the output pixels.
	Target *Pixmap
	// CullEnabled skips instances whose footprint doesn't intersect the
	// camera's visible bounds.
	CullEnabled bool
}

// NewRenderer creates a software renderer with a target of the given size
// in pixels.
func NewRenderer(w, h int) *Renderer {
	return &Renderer{Target: NewPixmap(w, h), CullEnabled: true}
}

// Clear fills the target with a flat color.
func (r *Renderer) Clear(c Color) {
	r.Target.Fill(c)
}

// DrawChunks rasterizes chunk instances. instances and tiles are
// index-parallel: tiles.TileIndex(i, cell) holds the contents of
// instances[i].
func (r *Renderer) DrawChunks(cam *Camera, instances []ChunkInstance, tiles TileSource, atlas *Atlas) {
	var visible Rect
	if r.CullEnabled {
		visible = cam.VisibleBounds()
	}
	for i, inst := range instances {
		q := inst.Quad()
		if r.CullEnabled && !q.Bounds().Intersects(visible) {
			continue
		}
		r.drawQuad(cam, q, func(u, v float64) (Color, bool) {
			tx, ty, cell := ResolveTileCoord(u, v)
			fu := u*ChunkSize - float64(tx)
			fv := v*ChunkSize - float64(ty)
			return atlas.Sample(tiles.TileIndex(i, cell), fu, fv)
		})
	}
}

// DrawBalls rasterizes ball instances. dirs may be nil to skip the facing
// overlay.
func (r *Renderer) DrawBalls(cam *Camera, balls []BallInstance, sheet *SpriteSheet, dirs *DirSheet) {
	var visible Rect
	if r.CullEnabled {
		visible = cam.VisibleBounds()
	}
	for _, b := range balls {
		q := b.Quad()
		if r.CullEnabled && !q.Bounds().Intersects(visible) {
			continue
		}
		on, dir := b.On, b.Dir
		r.drawQuad(cam, q, func(u, v float64) (Color, bool) {
			c, ok := sheet.Resolve(on, u, v)
			if !ok {
				return Color{}, false
			}
			if dirs != nil {
				if d, ok := dirs.Resolve(dir, u, v); ok {
					c = d
				}
			}
			return c, true
		})
	}
}

// drawQuad rasterizes one axis-aligned instance quad. shade is the fine
// stage: it maps an interpolated instance UV to a color, or reports a
// discard. Discarded pixels leave the target untouched; there is no
// blending, matching hard-cutout compositing.
//
// Coverage uses the pixel-center rule over the half-open span
// [left, right): a pixel belongs to the quad when its center lies inside.
// Two quads that share a world edge therefore partition the boundary
// column between them, with no gap and no double-covered pixel.
func (r *Renderer) drawQuad(cam *Camera, q Quad, shade func(u, v float64) (Color, bool)) {
	// Corners 0 and 3 are the screen-space top-left and bottom-right:
	// corner 0 is the world-space top (max Y), which is the screen minimum.
	x0, y0 := cam.WorldToScreen(q[0].WorldX, q[0].WorldY)
	x1, y1 := cam.WorldToScreen(q[3].WorldX, q[3].WorldY)
	if x1 <= x0 || y1 <= y0 {
		return
	}

	minX := clampInt(int(math.Ceil(x0-0.5)), 0, r.Target.W)
	maxX := clampInt(int(math.Ceil(x1-0.5)), 0, r.Target.W)
	minY := clampInt(int(math.Ceil(y0-0.5)), 0, r.Target.H)
	maxY := clampInt(int(math.Ceil(y1-0.5)), 0, r.Target.H)

	invW := 1 / (x1 - x0)
	invH := 1 / (y1 - y0)

	for py := minY; py < maxY; py++ {
		v := (float64(py) + 0.5 - y0) * invH
		for px := minX; px < maxX; px++ {
			u := (float64(px) + 0.5 - x0) * invW
			if c, ok := shade(u, v); ok {
				r.Target.Set(px, py, c)
			}
		}
	}
}
