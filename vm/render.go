package vm

import (
	"fmt"
	"strings"
)

// Glyphs used by Render for cells the source byte cannot represent.
const (
	glyphHead    = '@'
	glyphSegment = 'o'
	glyphOpaque  = '*'
)

// Render writes a plain-text frame of the program's bounding rectangle:
// the head as @, body segments as o, unprintable bytes as *, followed by
// the direction, step count and stack. Used by the interactive debugger
// and by golden tests.
func (i *Interpreter) Render() string {
	occupied := make(map[Coord]bool, i.worm.Len())
	for _, c := range i.worm.Body() {
		occupied[c] = true
	}
	head := i.worm.Head()

	var sb strings.Builder
	for y := i.bounds.MinY; y <= i.bounds.MaxY; y++ {
		for x := i.bounds.MinX; x <= i.bounds.MaxX; x++ {
			c := Coord{x, y}
			switch {
			case c == head:
				sb.WriteByte(glyphHead)
			case occupied[c]:
				sb.WriteByte(glyphSegment)
			default:
				b := i.grid.Get(c)
				if b != Blank && (b < 0x21 || b > 0x7e) {
					sb.WriteByte(glyphOpaque)
				} else {
					sb.WriteByte(b)
				}
			}
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "dir=%s steps=%d stack=%v\n", i.dir, i.steps, i.stack.Values())
	return sb.String()
}
