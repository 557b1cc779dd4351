package vm

import "sort"

// Blank is the implicit content of every cell that has never been written.
const Blank byte = ' '

// ---------------------------------------------------------------------------
// Coord: grid addressing
// ---------------------------------------------------------------------------

// Coord identifies a grid cell. X grows eastward, Y grows southward, so
// (0, 0) is the top-left corner of a loaded source text.
type Coord struct {
	X int
	Y int
}

// Add returns c translated by d.
func (c Coord) Add(d Coord) Coord {
	return Coord{c.X + d.X, c.Y + d.Y}
}

// Rect is an inclusive bounding rectangle on the grid.
type Rect struct {
	MinX int
	MinY int
	MaxX int
	MaxY int
}

// Contains reports whether c lies inside the rectangle.
func (r Rect) Contains(c Coord) bool {
	return c.X >= r.MinX && c.X <= r.MaxX && c.Y >= r.MinY && c.Y <= r.MaxY
}

// ---------------------------------------------------------------------------
// Grid: the program surface
// ---------------------------------------------------------------------------

// Grid is the two-dimensional byte surface a worm program lives on. It is
// unbounded in both axes; cells never written read as Blank. Writing Blank
// removes the entry, so storage stays proportional to the number of
// non-blank cells.
type Grid struct {
	cells map[Coord]byte
}

// NewGrid creates an empty grid.
func NewGrid() *Grid {
	return &Grid{cells: make(map[Coord]byte)}
}

// Get returns the byte at c, or Blank if the cell was never written.
func (g *Grid) Get(c Coord) byte {
	if b, ok := g.cells[c]; ok {
		return b
	}
	return Blank
}

// Set writes b at c. Writing Blank clears the cell.
func (g *Grid) Set(c Coord, b byte) {
	if b == Blank {
		delete(g.cells, c)
		return
	}
	g.cells[c] = b
}

// Len returns the number of non-blank cells.
func (g *Grid) Len() int {
	return len(g.cells)
}

// Cell pairs a coordinate with its byte content.
type Cell struct {
	Coord Coord
	Byte  byte
}

// Cells returns a copy of all non-blank cells, ordered row-major
// (top-to-bottom, left-to-right) for deterministic iteration.
func (g *Grid) Cells() []Cell {
	out := make([]Cell, 0, len(g.cells))
	for c, b := range g.cells {
		out = append(out, Cell{Coord: c, Byte: b})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Coord.Y != out[j].Coord.Y {
			return out[i].Coord.Y < out[j].Coord.Y
		}
		return out[i].Coord.X < out[j].Coord.X
	})
	return out
}
