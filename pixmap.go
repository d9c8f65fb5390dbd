package cedar

import (
	"fmt"
	"image"
	"image/draw"
	"math"
)

// Pixmap is a CPU-side RGBA8 pixel buffer, row-major from the top-left.
// Alpha is straight (not premultiplied). It backs atlas and sheet textures
// on the software path and is the render target of Renderer.
type Pixmap struct {
	W, H int
	// Pix holds 4 bytes per pixel, R G B A, rows top to bottom.
	Pix []uint8
}

// NewPixmap creates a transparent-black pixmap of the given size.
func NewPixmap(w, h int) *Pixmap {
	return &Pixmap{W: w, H: h, Pix: make([]uint8, w*h*4)}
}

// At returns the color of the texel at (x, y). Coordinates outside the
// buffer clamp to the nearest edge texel, matching clamp-to-edge texture
// addressing.
func (p *Pixmap) At(x, y int) Color {
	x = clampInt(x, 0, p.W-1)
	y = clampInt(y, 0, p.H-1)
	o := (y*p.W + x) * 4
	return Color{
		R: float64(p.Pix[o+0]) / 255,
		G: float64(p.Pix[o+1]) / 255,
		B: float64(p.Pix[o+2]) / 255,
		A: float64(p.Pix[o+3]) / 255,
	}
}

// Set writes the color of the texel at (x, y). Out-of-range coordinates
// are ignored.
func (p *Pixmap) Set(x, y int, c Color) {
	if x < 0 || x >= p.W || y < 0 || y >= p.H {
		return
	}
	o := (y*p.W + x) * 4
	p.Pix[o+0] = uint8(clamp(c.R, 0, 1)*255 + 0.5)
	p.Pix[o+1] = uint8(clamp(c.G, 0, 1)*255 + 0.5)
	p.Pix[o+2] = uint8(clamp(c.B, 0, 1)*255 + 0.5)
	p.Pix[o+3] = uint8(clamp(c.A, 0, 1)*255 + 0.5)
}

// Fill sets every pixel to c.
func (p *Pixmap) Fill(c Color) {
	r := uint8(clamp(c.R, 0, 1)*255 + 0.5)
	g := uint8(clamp(c.G, 0, 1)*255 + 0.5)
	b := uint8(clamp(c.B, 0, 1)*255 + 0.5)
	a := uint8(clamp(c.A, 0, 1)*255 + 0.5)
	for o := 0; o < len(p.Pix); o += 4 {
		p.Pix[o+0] = r
		p.Pix[o+1] = g
		p.Pix[o+2] = b
		p.Pix[o+3] = a
	}
}

// SampleLinear bilinearly interpolates the four texels around the sample
// point (x, y), where (0.5, 0.5) is the center of texel (0, 0). The 2x2
// footprint clamps to the buffer edges.
func (p *Pixmap) SampleLinear(x, y float64) Color {
	fx := x - 0.5
	fy := y - 0.5
	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	tx := fx - float64(x0)
	ty := fy - float64(y0)

	c00 := p.At(x0, y0)
	c10 := p.At(x0+1, y0)
	c01 := p.At(x0, y0+1)
	c11 := p.At(x0+1, y0+1)

	lerp := func(a, b, t float64) float64 { return a + (b-a)*t }
	return Color{
		R: lerp(lerp(c00.R, c10.R, tx), lerp(c01.R, c11.R, tx), ty),
		G: lerp(lerp(c00.G, c10.G, tx), lerp(c01.G, c11.G, tx), ty),
		B: lerp(lerp(c00.B, c10.B, tx), lerp(c01.B, c11.B, tx), ty),
		A: lerp(lerp(c00.A, c10.A, tx), lerp(c01.A, c11.A, tx), ty),
	}
}

// PixmapFromImage copies a decoded image into a new Pixmap. Use this at
// the asset boundary; cedar itself never decodes files.
func PixmapFromImage(img image.Image) (*Pixmap, error) {
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, fmt.Errorf("cedar: cannot build pixmap from empty image %v", b)
	}
	nrgba := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(nrgba, nrgba.Bounds(), img, b.Min, draw.Src)
	p := NewPixmap(b.Dx(), b.Dy())
	copy(p.Pix, nrgba.Pix)
	return p, nil
}

// Image returns a copy of the pixmap as a stdlib NRGBA image, for encoding
// or handoff to other libraries. NRGBA matches the pixmap's straight-alpha
// byte layout exactly.
func (p *Pixmap) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.W, p.H))
	copy(img.Pix, p.Pix)
	return img
}
