package qrcode

import (
	"fmt"
	"math"
)

// MaxClearFraction is the share of modules a logo mask may clear before
// scanning at LevelH is considered at risk. It is advisory, MaskForLogo
// never enforces it.
const MaxClearFraction = 0.25

// logoMargin is the number of extra modules added to each footprint axis,
// one light module on every side of the logo.
const logoMargin = 2

// Region is a half-open rectangle of modules: rows [StartRow, EndRow),
// columns [StartCol, EndCol). It may extend outside the grid.
type Region struct {
	StartRow, EndRow int
	StartCol, EndCol int
}

// Width returns the number of columns, zero for inverted regions.
func (r Region) Width() int {
	return max(r.EndCol-r.StartCol, 0)
}

// Height returns the number of rows, zero for inverted regions.
func (r Region) Height() int {
	return max(r.EndRow-r.StartRow, 0)
}

// Area returns Width*Height.
func (r Region) Area() int {
	return r.Width() * r.Height()
}

// Empty reports whether the region covers no module.
func (r Region) Empty() bool {
	return r.Area() == 0
}

// Clip returns the part of r that lies inside an n×n grid.
func (r Region) Clip(n int) Region {
	c := Region{
		StartRow: max(r.StartRow, 0),
		EndRow:   min(r.EndRow, n),
		StartCol: max(r.StartCol, 0),
		EndCol:   min(r.EndCol, n),
	}
	if c.Empty() {
		return Region{}
	}
	return c
}

func (r Region) String() string {
	return fmt.Sprintf("rows[%d,%d) cols[%d,%d)", r.StartRow, r.EndRow, r.StartCol, r.EndCol)
}

// Footprint converts a logo size in pixels into the number of modules to
// clear on each axis: round(px/box) + 2. Rounding is half-to-even.
// A zero (or negative) logo dimension yields 0 on that axis, as does a
// non-positive box size.
func Footprint(logoWidth, logoHeight, boxSize int) (w, h int) {
	if boxSize <= 0 {
		return 0, 0
	}
	axis := func(px int) int {
		if px <= 0 {
			return 0
		}
		return int(math.RoundToEven(float64(px)/float64(boxSize))) + logoMargin
	}
	return axis(logoWidth), axis(logoHeight)
}

// CenteredRegion centers a w×h footprint on an n×n grid around module n/2.
// The result is not clipped.
func CenteredRegion(n, w, h int) Region {
	center := n / 2
	startCol := center - w/2
	startRow := center - h/2
	return Region{
		StartRow: startRow,
		EndRow:   startRow + h,
		StartCol: startCol,
		EndCol:   startCol + w,
	}
}

// Clear sets every in-bounds module of r to light and returns how many
// modules were inside the grid. Parts of r outside the grid are skipped.
func (g *Grid) Clear(r Region) int {
	c := r.Clip(g.size)
	for row := c.StartRow; row < c.EndRow; row++ {
		for col := c.StartCol; col < c.EndCol; col++ {
			g.modules[row*g.size+col] = false
		}
	}
	return c.Area()
}

// Mask describes a cleared logo area.
type Mask struct {
	// Region is the centered footprint before clipping.
	Region Region
	// Cleared is the number of in-bounds modules set to light.
	Cleared int
	// Fraction is Cleared divided by the total module count.
	Fraction float64
}

// MaskForLogo clears the centered footprint of a logo of the given pixel
// size from g, mutating it in place.
//
// Nothing bounds the cleared area: the caller must encode at LevelH and
// pre-constrain the logo (see the logo package's size policy) so Fraction
// stays near or below MaxClearFraction.
func MaskForLogo(g *Grid, logoWidth, logoHeight, boxSize int) Mask {
	w, h := Footprint(logoWidth, logoHeight, boxSize)
	region := CenteredRegion(g.Size(), w, h)
	cleared := g.Clear(region)

	m := Mask{Region: region, Cleared: cleared}
	if total := g.Size() * g.Size(); total > 0 {
		m.Fraction = float64(cleared) / float64(total)
	}
	return m
}
