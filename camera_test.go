package cedar

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

const epsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func TestCameraDefaults(t *testing.T) {
	cam := NewCamera(800, 600)
	if cam.Width != 4.0 {
		t.Errorf("Width = %f, want 4.0", cam.Width)
	}
	if cam.MinRatio != 1.25 {
		t.Errorf("MinRatio = %f, want 1.25", cam.MinRatio)
	}
	if cam.ViewportW != 800 || cam.ViewportH != 600 {
		t.Errorf("viewport = %fx%f, want 800x600", cam.ViewportW, cam.ViewportH)
	}
}

func TestCameraScale(t *testing.T) {
	cam := NewCamera(800, 600)
	cam.Width = 10
	cam.MinRatio = 1.0
	// min(800, 600*1.0) / 10 = 60
	if got := cam.Scale(); !approxEqual(got, 60, epsilon) {
		t.Errorf("Scale() = %f, want 60", got)
	}
}

func TestCameraScaleWidthBound(t *testing.T) {
	// With MinRatio 1.25 and a 800x600 viewport, 600*1.25 = 750 < 800, so
	// height drives the scale.
	cam := NewCamera(800, 600)
	cam.Width = 5
	if got := cam.Scale(); !approxEqual(got, 150, epsilon) {
		t.Errorf("Scale() = %f, want 150", got)
	}
	// A wide-enough viewport switches to width-driven scale.
	cam.ViewportH = 800
	if got := cam.Scale(); !approxEqual(got, 160, epsilon) {
		t.Errorf("Scale() with tall viewport = %f, want 160", got)
	}
}

func TestWorldToNDCCenter(t *testing.T) {
	cam := NewCamera(800, 600)
	cam.X = 3
	cam.Y = -7
	nx, ny := cam.WorldToNDC(3, -7)
	if !approxEqual(nx, 0, epsilon) || !approxEqual(ny, 0, epsilon) {
		t.Errorf("WorldToNDC(camera position) = (%f,%f), want (0,0)", nx, ny)
	}
}

func TestWorldToNDCEdges(t *testing.T) {
	cam := NewCamera(800, 600)
	cam.Width = 10
	cam.MinRatio = 1.0 // scale 60
	// The right viewport edge is ViewportW/2 / scale world units from center.
	nx, ny := cam.WorldToNDC(400.0/60.0, 300.0/60.0)
	if !approxEqual(nx, 1, epsilon) || !approxEqual(ny, 1, epsilon) {
		t.Errorf("WorldToNDC(view corner) = (%f,%f), want (1,1)", nx, ny)
	}
}

func TestWorldToScreenMatchesNDC(t *testing.T) {
	cam := NewCamera(800, 600)
	cam.X = 12
	cam.Y = 34
	cam.Width = 7

	wx, wy := 17.5, 31.25
	nx, ny := cam.WorldToNDC(wx, wy)
	sx, sy := cam.WorldToScreen(wx, wy)
	// NDC Y is up, screen Y is down.
	if !approxEqual(sx, (nx+1)*400, 1e-6) || !approxEqual(sy, (1-ny)*300, 1e-6) {
		t.Errorf("screen (%f,%f) disagrees with NDC (%f,%f)", sx, sy, nx, ny)
	}
}

func TestWorldYUpScreenYDown(t *testing.T) {
	cam := NewCamera(800, 600)
	_, syLow := cam.WorldToScreen(0, 0)
	_, syHigh := cam.WorldToScreen(0, 1)
	if syHigh >= syLow {
		t.Errorf("world point above camera did not move up the screen: y(0)=%f y(1)=%f", syLow, syHigh)
	}
}

func TestScreenToWorldRoundtrip(t *testing.T) {
	cam := NewCamera(1024, 768)
	cam.X = 42
	cam.Y = -17
	cam.Width = 12.5

	origWX, origWY := 123.0, -456.0
	sx, sy := cam.WorldToScreen(origWX, origWY)
	wx, wy := cam.ScreenToWorld(sx, sy)
	if !approxEqual(wx, origWX, 1e-6) || !approxEqual(wy, origWY, 1e-6) {
		t.Errorf("roundtrip: got (%f,%f), want (%f,%f)", wx, wy, origWX, origWY)
	}
}

func TestWorldViewportSize(t *testing.T) {
	cam := NewCamera(800, 600)
	cam.Width = 10
	cam.MinRatio = 1.0
	w, h := cam.WorldViewportSize()
	if !approxEqual(w, 800.0/60.0, epsilon) || !approxEqual(h, 10, epsilon) {
		t.Errorf("WorldViewportSize = (%f,%f), want (%f,10)", w, h, 800.0/60.0)
	}
}

func TestVisibleBounds(t *testing.T) {
	cam := NewCamera(800, 600)
	cam.X = 100
	cam.Y = 50
	cam.Width = 10
	cam.MinRatio = 1.0
	b := cam.VisibleBounds()
	ww := 800.0 / 60.0
	if !approxEqual(b.X, 100-ww/2, 1e-6) || !approxEqual(b.Y, 45, 1e-6) {
		t.Errorf("VisibleBounds origin = (%f,%f), want (%f,45)", b.X, b.Y, 100-ww/2)
	}
	if !approxEqual(b.Width, ww, 1e-6) || !approxEqual(b.Height, 10, 1e-6) {
		t.Errorf("VisibleBounds size = (%f,%f), want (%f,10)", b.Width, b.Height, ww)
	}
}

func TestZoomAtKeepsAnchor(t *testing.T) {
	cam := NewCamera(800, 600)
	cam.X = 5
	cam.Y = 3
	cam.Width = 8

	sx, sy := 137.0, 456.0
	beforeX, beforeY := cam.ScreenToWorld(sx, sy)
	cam.ZoomAt(2.0, sx, sy)
	afterX, afterY := cam.ScreenToWorld(sx, sy)

	if !approxEqual(beforeX, afterX, 1e-9) || !approxEqual(beforeY, afterY, 1e-9) {
		t.Errorf("anchor moved: before (%f,%f), after (%f,%f)", beforeX, beforeY, afterX, afterY)
	}
	if !approxEqual(cam.Width, 4, epsilon) {
		t.Errorf("Width after 2x zoom = %f, want 4", cam.Width)
	}
}

func TestCameraScrollTo(t *testing.T) {
	cam := NewCamera(800, 600)
	cam.ScrollTo(100, 200, 1.0, ease.Linear)

	cam.Update(0.5)
	if !approxEqual(cam.X, 50, 1.0) || !approxEqual(cam.Y, 100, 1.0) {
		t.Errorf("scroll halfway: cam = (%f,%f), want ~(50,100)", cam.X, cam.Y)
	}

	cam.Update(0.5)
	if !approxEqual(cam.X, 100, 1.0) || !approxEqual(cam.Y, 200, 1.0) {
		t.Errorf("scroll end: cam = (%f,%f), want ~(100,200)", cam.X, cam.Y)
	}
	if cam.scrollTween != nil {
		t.Error("scrollTween not nil after completion")
	}
}

func TestCameraZoomTo(t *testing.T) {
	cam := NewCamera(800, 600)
	cam.Width = 4
	cam.ZoomTo(8, 1.0, ease.Linear)

	cam.Update(0.5)
	if !approxEqual(cam.Width, 6, 0.5) {
		t.Errorf("zoom halfway: Width = %f, want ~6", cam.Width)
	}
	cam.Update(0.5)
	if !approxEqual(cam.Width, 8, 0.5) {
		t.Errorf("zoom end: Width = %f, want ~8", cam.Width)
	}
	if cam.zoomTween != nil {
		t.Error("zoomTween not nil after completion")
	}
}

func BenchmarkWorldToScreen(b *testing.B) {
	cam := NewCamera(800, 600)
	cam.X = 13
	cam.Y = 37
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = cam.WorldToScreen(float64(i%100), float64(i%73))
	}
}
