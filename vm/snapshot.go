package vm

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// cborEncMode uses canonical options so equal snapshots encode to equal
// bytes.
var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("vm: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// Snapshot is the complete execution state of an interpreter at a tick
// boundary. A restored snapshot continues exactly where the original
// left off.
type Snapshot struct {
	Cells     []Cell    `cbor:"cells"`
	Body      []Coord   `cbor:"body"`
	Direction Direction `cbor:"direction"`
	Stack     []int64   `cbor:"stack"`
	Steps     uint64    `cbor:"steps"`
	Bounds    Rect      `cbor:"bounds"`
}

// Snapshot captures the interpreter's current execution state. Only a
// Running interpreter is worth snapshotting, but any state is captured
// faithfully.
func (i *Interpreter) Snapshot() *Snapshot {
	return &Snapshot{
		Cells:     i.grid.Cells(),
		Body:      i.worm.Body(),
		Direction: i.dir,
		Stack:     i.stack.Values(),
		Steps:     i.steps,
		Bounds:    i.bounds,
	}
}

// Restore builds an interpreter from a snapshot. Options apply as in New;
// the snapshot supplies grid, body, direction, stack and step count, so
// WithDirection is ignored.
func Restore(s *Snapshot, opts ...Option) *Interpreter {
	grid := NewGrid()
	for _, c := range s.Cells {
		grid.Set(c.Coord, c.Byte)
	}
	body := make([]Coord, len(s.Body))
	copy(body, s.Body)

	i := New(&Program{Grid: grid, Start: Coord{}, Bounds: s.Bounds}, opts...)
	i.worm = &Worm{body: body}
	i.dir = s.Direction
	i.stack = &Stack{values: append([]int64(nil), s.Stack...)}
	i.steps = s.Steps
	return i
}

// Marshal serializes the snapshot to canonical CBOR bytes.
func (s *Snapshot) Marshal() ([]byte, error) {
	return cborEncMode.Marshal(s)
}

// UnmarshalSnapshot deserializes a snapshot from CBOR bytes.
func UnmarshalSnapshot(data []byte) (*Snapshot, error) {
	var s Snapshot
	if err := cbor.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("vm: unmarshal snapshot: %w", err)
	}
	return &s, nil
}
