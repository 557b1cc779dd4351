package vm

import (
	"fmt"
	"os"
	"strings"
)

// HeadMarker marks the worm's starting cell in source text. The marker is
// consumed at load time; the cell it occupied reads as Blank.
const HeadMarker byte = '@'

// Program is a loaded worm program: the initial grid, the head's starting
// coordinate, and the bounding rectangle of the source text. The worm
// halts when it steps outside Bounds.
type Program struct {
	Grid   *Grid
	Start  Coord
	Bounds Rect
}

// Load parses source text into a Program. Each non-blank byte is written
// at the coordinate given by its row and column; rows need not share a
// length. Exactly one @ marker must be present.
func Load(src string) (*Program, error) {
	grid := NewGrid()
	start := Coord{}
	found := false
	width := 0

	lines := strings.Split(strings.TrimSuffix(src, "\n"), "\n")
	for y, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if len(line) > width {
			width = len(line)
		}
		for x := 0; x < len(line); x++ {
			b := line[x]
			if b == HeadMarker {
				if found {
					return nil, fmt.Errorf("%w: second marker at column %d, line %d", ErrAmbiguousHead, x, y+1)
				}
				start = Coord{x, y}
				found = true
				continue
			}
			grid.Set(Coord{x, y}, b)
		}
	}
	if !found {
		return nil, ErrMissingHead
	}

	return &Program{
		Grid:   grid,
		Start:  start,
		Bounds: Rect{MinX: 0, MinY: 0, MaxX: width - 1, MaxY: len(lines) - 1},
	}, nil
}

// LoadFile reads and parses a program from a source file.
func LoadFile(path string) (*Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}
	p, err := Load(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}
