// Package vm implements the SandWorm virtual machine.
//
// This package contains:
//   - Sparse unbounded grid of program bytes
//   - Worm state (body segments, direction)
//   - Value stack with pop-on-empty-yields-zero semantics
//   - Tick-based execution engine with the rearrangement rule
//   - Program loading, I/O ports, rendering, and state snapshots
package vm
