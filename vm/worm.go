package vm

import "fmt"

// ---------------------------------------------------------------------------
// Direction
// ---------------------------------------------------------------------------

// Direction is one of the four travel directions of the worm.
type Direction int

const (
	East Direction = iota
	West
	North
	South
)

// Delta returns the unit step for the direction.
func (d Direction) Delta() Coord {
	switch d {
	case East:
		return Coord{1, 0}
	case West:
		return Coord{-1, 0}
	case North:
		return Coord{0, -1}
	default:
		return Coord{0, 1}
	}
}

func (d Direction) String() string {
	switch d {
	case East:
		return "east"
	case West:
		return "west"
	case North:
		return "north"
	default:
		return "south"
	}
}

// ParseDirection parses a direction name as used in run configuration.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "east":
		return East, nil
	case "west":
		return West, nil
	case "north":
		return North, nil
	case "south":
		return South, nil
	}
	return East, fmt.Errorf("unknown direction %q", s)
}

// reflectSlash returns the direction after bouncing off a / mirror.
func (d Direction) reflectSlash() Direction {
	switch d {
	case East:
		return North
	case West:
		return South
	case North:
		return East
	default:
		return West
	}
}

// reflectBackslash returns the direction after bouncing off a \ mirror.
func (d Direction) reflectBackslash() Direction {
	switch d {
	case East:
		return South
	case West:
		return North
	case North:
		return West
	default:
		return East
	}
}

// ---------------------------------------------------------------------------
// Worm: body segments
// ---------------------------------------------------------------------------

// Worm is the ordered body of the automaton, head first. The body holds
// only coordinates; cell contents live in the Grid. Length is at least 1.
type Worm struct {
	body []Coord
}

// NewWorm creates a worm of length 1 with its head at c.
func NewWorm(c Coord) *Worm {
	return &Worm{body: []Coord{c}}
}

// Head returns the current head coordinate.
func (w *Worm) Head() Coord {
	return w.body[0]
}

// Len returns the body length.
func (w *Worm) Len() int {
	return len(w.body)
}

// Body returns a copy of the body coordinates, head first.
func (w *Worm) Body() []Coord {
	out := make([]Coord, len(w.body))
	copy(out, w.body)
	return out
}

// Occupies reports whether c is part of the body.
func (w *Worm) Occupies(c Coord) bool {
	for _, b := range w.body {
		if b == c {
			return true
		}
	}
	return false
}

// grow prepends a new head, increasing body length by one.
func (w *Worm) grow(head Coord) {
	w.body = append(w.body, Coord{})
	copy(w.body[1:], w.body[:len(w.body)-1])
	w.body[0] = head
}

// advance prepends a new head and drops the tail segment, keeping body
// length constant. It returns the vacated tail coordinate.
func (w *Worm) advance(head Coord) (tail Coord) {
	tail = w.body[len(w.body)-1]
	copy(w.body[1:], w.body[:len(w.body)-1])
	w.body[0] = head
	return tail
}
