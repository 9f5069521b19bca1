//go:build ebiten

package gui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	faceSize = 144
	pipSize  = 24
)

// pip positions on a 3x3 grid per face value, cells numbered 0 to 8
// left-to-right, top-to-bottom
var pipLayouts = map[int][]int{
	1: {4},
	2: {0, 8},
	3: {0, 4, 8},
	4: {0, 2, 6, 8},
	5: {0, 2, 4, 6, 8},
	6: {0, 2, 3, 5, 6, 8},
	7: {0, 2, 3, 4, 5, 6, 8},
	8: {0, 1, 2, 3, 5, 6, 7, 8},
	9: {0, 1, 2, 3, 4, 5, 6, 7, 8},
}

// FacePainter draws a large die face with pip layouts, falling back to
// the face label for values without a pip arrangement
type FacePainter struct {
	pixel *ebiten.Image
}

// NewFacePainter creates a painter with its reusable 1x1 fill image
func NewFacePainter() *FacePainter {
	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)

	return &FacePainter{pixel: pixel}
}

// DrawFace renders the face for the given value at x, y
func (p *FacePainter) DrawFace(screen *ebiten.Image, value int, label string, x, y int) {
	p.fillRect(screen, x, y, faceSize, faceSize, color.RGBA{R: 240, G: 240, B: 235, A: 255})

	layout, ok := pipLayouts[value]
	if !ok {
		// no pip arrangement for this value, show the label instead
		text.Draw(screen, label, basicfont.Face7x13, x+faceSize/2-len(label)*7/2, y+faceSize/2, color.Black)
		return
	}

	pipColor := color.RGBA{R: 20, G: 20, B: 24, A: 255}
	cell := faceSize / 4
	for _, idx := range layout {
		col := idx % 3
		row := idx / 3
		px := x + cell*(col+1) - pipSize/2
		py := y + cell*(row+1) - pipSize/2
		p.fillRect(screen, px, py, pipSize, pipSize, pipColor)
	}
}

// fillRect fills a rectangle by scaling the 1x1 pixel image
func (p *FacePainter) fillRect(screen *ebiten.Image, x, y, w, h int, c color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), float64(h))
	op.GeoM.Translate(float64(x), float64(y))

	r, g, b, a := c.RGBA()
	op.ColorScale.Scale(float32(r)/0xffff, float32(g)/0xffff, float32(b)/0xffff, float32(a)/0xffff)

	screen.DrawImage(p.pixel, op)
}
