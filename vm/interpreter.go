package vm

import (
	"context"
	"fmt"
)

// ---------------------------------------------------------------------------
// Interpreter: the worm execution engine
// ---------------------------------------------------------------------------

// State reports the lifecycle of an interpreter.
type State int

const (
	// Running means the next Step will execute a tick.
	Running State = iota
	// Halted means the worm stepped outside the program bounds; the run
	// ended normally.
	Halted
	// Faulted means the run was aborted by a runtime fault.
	Faulted
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Halted:
		return "halted"
	default:
		return "faulted"
	}
}

// TickEvent describes one committed execution tick. Cmd is Blank for a
// slide over an empty cell.
type TickEvent struct {
	Step       uint64
	Cmd        byte
	Head       Coord
	Dir        Direction
	BodyLen    int
	StackDepth int
}

// TickFunc observes committed ticks. A non-nil error aborts the run as a
// runtime fault.
type TickFunc func(TickEvent) error

// Interpreter executes a loaded worm program. It owns its Grid, Worm and
// Stack exclusively and must be used from a single goroutine.
type Interpreter struct {
	grid   *Grid
	bounds Rect
	worm   *Worm
	stack  *Stack
	dir    Direction
	port   Port
	state  State
	steps  uint64
	limit  uint64 // 0 = unlimited
	onTick TickFunc
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithPort sets the I/O collaborator. The default is a BufferPort with
// no input.
func WithPort(p Port) Option {
	return func(i *Interpreter) { i.port = p }
}

// WithDirection sets the initial travel direction. The default is East.
func WithDirection(d Direction) Option {
	return func(i *Interpreter) { i.dir = d }
}

// WithStepLimit sets a step budget; exceeding it aborts the run with
// ErrStepLimit. Zero means unlimited.
func WithStepLimit(n uint64) Option {
	return func(i *Interpreter) { i.limit = n }
}

// WithTickFunc registers an observer called after each committed tick.
func WithTickFunc(fn TickFunc) Option {
	return func(i *Interpreter) { i.onTick = fn }
}

// New creates an interpreter for the given program. The program's grid is
// owned by the interpreter from this point on and is mutated in place as
// the worm runs.
func New(p *Program, opts ...Option) *Interpreter {
	i := &Interpreter{
		grid:   p.Grid,
		bounds: p.Bounds,
		worm:   NewWorm(p.Start),
		stack:  NewStack(),
		dir:    East,
		state:  Running,
	}
	for _, opt := range opts {
		opt(i)
	}
	if i.port == nil {
		i.port = NewBufferPort(nil)
	}
	return i
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

// State returns the interpreter lifecycle state.
func (i *Interpreter) State() State { return i.state }

// Head returns the worm's head coordinate.
func (i *Interpreter) Head() Coord { return i.worm.Head() }

// Direction returns the current travel direction.
func (i *Interpreter) Direction() Direction { return i.dir }

// Body returns a copy of the worm body, head first.
func (i *Interpreter) Body() []Coord { return i.worm.Body() }

// Steps returns the number of committed ticks.
func (i *Interpreter) Steps() uint64 { return i.steps }

// StackValues returns a copy of the stack, bottom to top.
func (i *Interpreter) StackValues() []int64 { return i.stack.Values() }

// Grid returns the live program grid for inspection. Mutating it outside
// the engine is undefined.
func (i *Interpreter) Grid() *Grid { return i.grid }

// Bounds returns the program's load-time bounding rectangle.
func (i *Interpreter) Bounds() Rect { return i.bounds }

// ---------------------------------------------------------------------------
// Execution
// ---------------------------------------------------------------------------

// Step executes one tick: read the cell ahead of the head, dispatch it,
// advance the worm, and apply the rearrangement rule. Stepping a halted
// or faulted interpreter is a no-op.
func (i *Interpreter) Step(ctx context.Context) error {
	if i.state != Running {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	candidate := i.worm.Head().Add(i.dir.Delta())
	if !i.bounds.Contains(candidate) {
		i.state = Halted
		return nil
	}
	if i.limit > 0 && i.steps >= i.limit {
		i.state = Faulted
		return fmt.Errorf("%w after %d steps", ErrStepLimit, i.steps)
	}

	cmd := i.grid.Get(candidate)
	i.steps++

	if cmd == Blank {
		// Slide: no dispatch, nothing written back, length unchanged.
		i.worm.advance(candidate)
		return i.commit(cmd)
	}

	ioErr := i.dispatch(cmd)

	if cmd >= '0' && cmd <= '9' {
		// Growth event: the digit is consumed outright.
		i.worm.grow(candidate)
		i.grid.Set(candidate, Blank)
	} else {
		// The consumed byte relocates to the cell the tail vacates.
		tail := i.worm.advance(candidate)
		i.grid.Set(candidate, Blank)
		i.grid.Set(tail, cmd)
	}

	if ioErr != nil {
		i.state = Faulted
		return fmt.Errorf("%w: %v", ErrIO, ioErr)
	}
	return i.commit(cmd)
}

// commit reports the finished tick to the observer.
func (i *Interpreter) commit(cmd byte) error {
	if i.onTick == nil {
		return nil
	}
	err := i.onTick(TickEvent{
		Step:       i.steps,
		Cmd:        cmd,
		Head:       i.worm.Head(),
		Dir:        i.dir,
		BodyLen:    i.worm.Len(),
		StackDepth: i.stack.Depth(),
	})
	if err != nil {
		i.state = Faulted
		return fmt.Errorf("tick observer: %w", err)
	}
	return nil
}

// dispatch applies cmd's effect on the stack, direction and I/O port.
// Every instruction is total; only the port can fail.
func (i *Interpreter) dispatch(cmd byte) error {
	switch {
	case cmd >= '0' && cmd <= '9':
		i.stack.Push(int64(cmd - '0'))
	case cmd == '+':
		b := i.stack.Pop()
		a := i.stack.Pop()
		i.stack.Push(a + b)
	case cmd == '-':
		// First popped minus second popped; negate n with "n 0 -".
		b := i.stack.Pop()
		a := i.stack.Pop()
		i.stack.Push(b - a)
	case cmd == '~':
		if i.stack.Pop() == 0 {
			i.stack.Push(1)
		} else {
			i.stack.Push(0)
		}
	case cmd == '>':
		i.dir = East
	case cmd == '<':
		i.dir = West
	case cmd == '^':
		i.dir = North
	case cmd == 'v':
		i.dir = South
	case cmd == '/':
		if i.stack.Pop() != 0 {
			i.dir = i.dir.reflectSlash()
		}
	case cmd == '\\':
		if i.stack.Pop() != 0 {
			i.dir = i.dir.reflectBackslash()
		}
	case cmd == '?':
		b, err := i.port.ReadByte()
		if err != nil {
			return err
		}
		i.stack.Push(int64(b))
	case cmd == '=':
		i.stack.Dup()
	case cmd == '!':
		return i.port.WriteByte(byte(i.stack.Pop()))
	case cmd == '"':
		return i.port.WriteDecimal(i.stack.Pop())
	case cmd == '_':
		i.stack.Push(int64(Blank))
	default:
		// Any other byte pushes its own value.
		i.stack.Push(int64(cmd))
	}
	return nil
}

// Run executes ticks until the worm halts or a fault occurs. Cancellation
// is honored between ticks only, so grid and stack stay consistent.
func (i *Interpreter) Run(ctx context.Context) error {
	for i.state == Running {
		if err := i.Step(ctx); err != nil {
			return err
		}
	}
	return nil
}
