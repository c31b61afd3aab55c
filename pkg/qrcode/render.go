package qrcode

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/draw"
)

// Shape is how a single dark module is painted.
type Shape string

const (
	// ShapeSquare fills the whole module box.
	ShapeSquare Shape = "square"
	// ShapeCircle paints a disc inscribed in the module box.
	ShapeCircle Shape = "circle"
)

// ParseShape validates a shape name. An empty string selects ShapeSquare.
func ParseShape(s string) (Shape, error) {
	switch Shape(s) {
	case "", ShapeSquare:
		return ShapeSquare, nil
	case ShapeCircle:
		return ShapeCircle, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidShape, s)
	}
}

const (
	// DefaultBoxSize is the pixel edge of one module.
	DefaultBoxSize = 10
	// DefaultBorder leaves no quiet zone so the whole bitmap is usable by
	// the code and the logo.
	DefaultBorder = 0
)

// Renderer rasterizes a Grid with two solid colors.
type Renderer struct {
	boxSize int
	border  int
	fill    color.Color
	back    color.Color
	shape   Shape
}

// RenderOption configures a Renderer.
type RenderOption func(*Renderer)

// WithBoxSize sets pixels per module.
func WithBoxSize(px int) RenderOption {
	return func(r *Renderer) { r.boxSize = px }
}

// WithBorder sets the quiet zone width in modules.
func WithBorder(modules int) RenderOption {
	return func(r *Renderer) { r.border = modules }
}

// WithFillColor sets the dark module color. Nil is ignored.
func WithFillColor(c color.Color) RenderOption {
	return func(r *Renderer) {
		if c != nil {
			r.fill = c
		}
	}
}

// WithBackColor sets the light module and border color. Nil is ignored.
func WithBackColor(c color.Color) RenderOption {
	return func(r *Renderer) {
		if c != nil {
			r.back = c
		}
	}
}

// WithShape sets the module shape.
func WithShape(s Shape) RenderOption {
	return func(r *Renderer) { r.shape = s }
}

// NewRenderer returns a renderer with black-on-white square modules, box
// size 10 and no border, adjusted by opts.
func NewRenderer(opts ...RenderOption) (*Renderer, error) {
	r := &Renderer{
		boxSize: DefaultBoxSize,
		border:  DefaultBorder,
		fill:    color.Black,
		back:    color.White,
		shape:   ShapeSquare,
	}
	for _, opt := range opts {
		opt(r)
	}

	if r.boxSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBoxSize, r.boxSize)
	}
	if r.border < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBorder, r.border)
	}
	if _, err := ParseShape(string(r.shape)); err != nil {
		return nil, err
	}
	return r, nil
}

// BoxSize returns pixels per module.
func (r *Renderer) BoxSize() int {
	return r.boxSize
}

// ImageSize returns the bitmap edge in pixels for a grid of n modules.
func (r *Renderer) ImageSize(n int) int {
	return (n + 2*r.border) * r.boxSize
}

// ModuleRect returns the pixel box of the module at (row, col).
func (r *Renderer) ModuleRect(row, col int) image.Rectangle {
	x := (col + r.border) * r.boxSize
	y := (row + r.border) * r.boxSize
	return image.Rect(x, y, x+r.boxSize, y+r.boxSize)
}

// Render paints g into a new bitmap of ImageSize(g.Size()) pixels square.
func (r *Renderer) Render(g *Grid) *image.NRGBA {
	size := r.ImageSize(g.Size())
	dst := image.NewNRGBA(image.Rect(0, 0, size, size))

	if r.shape == ShapeCircle {
		r.renderCircles(dst, g)
		return dst
	}

	draw.Draw(dst, dst.Bounds(), image.NewUniform(r.back), image.Point{}, draw.Src)
	fill := image.NewUniform(r.fill)
	for row := 0; row < g.Size(); row++ {
		for col := 0; col < g.Size(); col++ {
			if g.At(row, col) {
				draw.Draw(dst, r.ModuleRect(row, col), fill, image.Point{}, draw.Src)
			}
		}
	}
	return dst
}

func (r *Renderer) renderCircles(dst *image.NRGBA, g *Grid) {
	size := dst.Bounds().Dx()
	dc := gg.NewContext(size, size)
	dc.SetColor(r.back)
	dc.Clear()

	radius := float64(r.boxSize) / 2
	for row := 0; row < g.Size(); row++ {
		for col := 0; col < g.Size(); col++ {
			if !g.At(row, col) {
				continue
			}
			box := r.ModuleRect(row, col)
			dc.DrawCircle(float64(box.Min.X)+radius, float64(box.Min.Y)+radius, radius)
		}
	}
	dc.SetColor(r.fill)
	dc.Fill()

	draw.Draw(dst, dst.Bounds(), dc.Image(), image.Point{}, draw.Src)
}
