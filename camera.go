package cedar

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollAnim holds active scroll-to tweens for camera X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Camera describes the view into the world. It is owned by the host
// application, updated at most once per frame, and read-only during a draw.
//
// Zoom is expressed through Width: halving Width doubles the on-screen size
// of everything.
type Camera struct {
	// X and Y are the world-space position at the center of the viewport.
	X, Y float64
	// ViewportW and ViewportH are the viewport size in pixels.
	ViewportW, ViewportH float64
	// Width is the reference width: how many world units are visible
	// horizontally when the viewport is at least MinRatio times as wide as
	// it is tall.
	Width float64
	// MinRatio is the minimum horizontal/vertical aspect ratio. Below it,
	// scale is driven by viewport height instead of width, so shrinking the
	// window vertically zooms out rather than cropping.
	MinRatio float64

	scrollTween *scrollAnim
	zoomTween   *gween.Tween
}

// NewCamera creates a camera at the world origin with the given viewport
// size in pixels.
func NewCamera(viewportW, viewportH float64) *Camera {
	return &Camera{
		ViewportW: viewportW,
		ViewportH: viewportH,
		Width:     4.0,
		MinRatio:  1.25,
	}
}

// Scale returns the zoom factor in pixels per world unit:
//
//	scale = min(viewportW, viewportH*MinRatio) / Width
//
// A camera with a zero viewport or non-positive Width is degenerate; the
// host must not submit draws with one.
func (c *Camera) Scale() float64 {
	return math.Min(c.ViewportW, c.ViewportH*c.MinRatio) / c.Width
}

// WorldViewportSize returns the extent of the visible area in world units.
func (c *Camera) WorldViewportSize() (w, h float64) {
	s := c.Scale()
	return c.ViewportW / s, c.ViewportH / s
}

// WorldToNDC converts a world-space position to normalized device
// coordinates in [-1, 1], Y up. It is affine, so evaluating it at an
// instance's corners and interpolating is exact for every interior point.
func (c *Camera) WorldToNDC(wx, wy float64) (nx, ny float64) {
	s := c.Scale()
	return (wx - c.X) * s / (c.ViewportW / 2), (wy - c.Y) * s / (c.ViewportH / 2)
}

// WorldToScreen converts a world-space position to screen pixels
// (origin top-left, Y down).
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float64) {
	s := c.Scale()
	return (wx-c.X)*s + c.ViewportW/2, c.ViewportH/2 - (wy-c.Y)*s
}

// ScreenToWorld converts screen pixels back to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	ww, wh := c.WorldViewportSize()
	return (sx/c.ViewportW-0.5)*ww + c.X, (0.5-sy/c.ViewportH)*wh + c.Y
}

// VisibleBounds returns the world-space rectangle the camera can see.
// X and Y are the bottom-left corner (world Y up).
func (c *Camera) VisibleBounds() Rect {
	w, h := c.WorldViewportSize()
	return Rect{X: c.X - w/2, Y: c.Y - h/2, Width: w, Height: h}
}

// ZoomAt multiplies the zoom by factor while keeping the world point under
// the screen position (sx, sy) fixed, so zooming at the cursor feels
// anchored.
func (c *Camera) ZoomAt(factor, sx, sy float64) {
	px, py := c.ScreenToWorld(sx, sy)
	c.Width /= factor
	qx, qy := c.ScreenToWorld(sx, sy)
	c.X += px - qx
	c.Y += py - qy
}

// ScrollTo animates the camera to the given world position over duration
// seconds. Advance the animation with Update.
func (c *Camera) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	c.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(c.X), float32(x), duration, easeFn),
		tweenY: gween.New(float32(c.Y), float32(y), duration, easeFn),
	}
}

// ZoomTo animates Width to the given value over duration seconds.
func (c *Camera) ZoomTo(width float64, duration float32, easeFn ease.TweenFunc) {
	c.zoomTween = gween.New(float32(c.Width), float32(width), duration, easeFn)
}

// Update advances scroll and zoom animations. dt is in seconds. Call once
// per frame from the host's update step, never during a draw.
func (c *Camera) Update(dt float32) {
	if c.scrollTween != nil {
		if !c.scrollTween.doneX {
			val, done := c.scrollTween.tweenX.Update(dt)
			c.X = float64(val)
			c.scrollTween.doneX = done
		}
		if !c.scrollTween.doneY {
			val, done := c.scrollTween.tweenY.Update(dt)
			c.Y = float64(val)
			c.scrollTween.doneY = done
		}
		if c.scrollTween.doneX && c.scrollTween.doneY {
			c.scrollTween = nil
		}
	}
	if c.zoomTween != nil {
		val, done := c.zoomTween.Update(dt)
		c.Width = float64(val)
		if done {
			c.zoomTween = nil
		}
	}
}
