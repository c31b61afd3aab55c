package qrcode

// Grid is a square QR module matrix stored row-major in a flat buffer.
// A true module is dark.
type Grid struct {
	size    int
	modules []bool
}

// NewGrid returns an all-light grid of n×n modules.
// Negative sizes are treated as zero.
func NewGrid(n int) *Grid {
	if n < 0 {
		n = 0
	}
	return &Grid{size: n, modules: make([]bool, n*n)}
}

// GridFromRows copies a square [][]bool (rows[y][x]) into a Grid.
// Short rows are padded with light modules, extra columns are dropped.
func GridFromRows(rows [][]bool) *Grid {
	g := NewGrid(len(rows))
	for r, row := range rows {
		for c := 0; c < g.size && c < len(row); c++ {
			g.modules[r*g.size+c] = row[c]
		}
	}
	return g
}

// Size returns the module count N.
func (g *Grid) Size() int {
	return g.size
}

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.size && col >= 0 && col < g.size
}

// At reports whether the module at (row, col) is dark.
// Out-of-range coordinates are light.
func (g *Grid) At(row, col int) bool {
	if !g.inBounds(row, col) {
		return false
	}
	return g.modules[row*g.size+col]
}

// Set updates the module at (row, col). Out-of-range coordinates are ignored.
func (g *Grid) Set(row, col int, dark bool) {
	if !g.inBounds(row, col) {
		return
	}
	g.modules[row*g.size+col] = dark
}

// Dark returns the number of dark modules.
func (g *Grid) Dark() int {
	n := 0
	for _, m := range g.modules {
		if m {
			n++
		}
	}
	return n
}

// Clone returns an independent copy.
func (g *Grid) Clone() *Grid {
	c := &Grid{size: g.size, modules: make([]bool, len(g.modules))}
	copy(c.modules, g.modules)
	return c
}

// Equal reports whether both grids have the same size and modules.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.size != other.size {
		return false
	}
	for i, m := range g.modules {
		if other.modules[i] != m {
			return false
		}
	}
	return true
}

// Rows returns a [][]bool copy indexed rows[row][col].
func (g *Grid) Rows() [][]bool {
	rows := make([][]bool, g.size)
	for r := range rows {
		rows[r] = make([]bool, g.size)
		copy(rows[r], g.modules[r*g.size:(r+1)*g.size])
	}
	return rows
}
