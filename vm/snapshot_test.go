package vm

import (
	"bytes"
	"context"
	"testing"
)

func TestSnapshotRestoreResumes(t *testing.T) {
	src := "@34+x"
	ctx := context.Background()

	// Run the reference interpreter straight through.
	ref, _ := runProgram(t, src, nil)

	// Run a second one halfway, snapshot it, and resume from the
	// snapshot.
	p, err := Load(src)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	half := New(p)
	for n := 0; n < 2; n++ {
		if err := half.Step(ctx); err != nil {
			t.Fatalf("Step: %v", err)
		}
	}
	snap := half.Snapshot()

	resumed := Restore(snap)
	if err := resumed.Run(ctx); err != nil {
		t.Fatalf("Run after restore: %v", err)
	}

	if resumed.State() != Halted {
		t.Fatalf("state = %s, want halted", resumed.State())
	}
	if got, want := resumed.StackValues(), ref.StackValues(); len(got) != len(want) {
		t.Fatalf("stack = %v, want %v", got, want)
	} else {
		for n := range want {
			if got[n] != want[n] {
				t.Fatalf("stack = %v, want %v", got, want)
			}
		}
	}
	if resumed.Head() != ref.Head() {
		t.Errorf("head = %v, want %v", resumed.Head(), ref.Head())
	}
	if resumed.Steps() != ref.Steps() {
		t.Errorf("steps = %d, want %d", resumed.Steps(), ref.Steps())
	}

	gotCells, wantCells := resumed.Grid().Cells(), ref.Grid().Cells()
	if len(gotCells) != len(wantCells) {
		t.Fatalf("grid cells = %v, want %v", gotCells, wantCells)
	}
	for n := range wantCells {
		if gotCells[n] != wantCells[n] {
			t.Errorf("cell %d = %v, want %v", n, gotCells[n], wantCells[n])
		}
	}
}

func TestSnapshotMarshalRoundTrip(t *testing.T) {
	p, err := Load("@12v")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	i := New(p)
	if err := i.Step(context.Background()); err != nil {
		t.Fatalf("Step: %v", err)
	}

	snap := i.Snapshot()
	data, err := snap.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	back, err := UnmarshalSnapshot(data)
	if err != nil {
		t.Fatalf("UnmarshalSnapshot: %v", err)
	}
	if back.Steps != snap.Steps || back.Direction != snap.Direction {
		t.Errorf("round trip = %+v, want %+v", back, snap)
	}
	if len(back.Body) != len(snap.Body) || back.Body[0] != snap.Body[0] {
		t.Errorf("body = %v, want %v", back.Body, snap.Body)
	}

	// Canonical encoding: marshaling again yields identical bytes.
	data2, err := back.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !bytes.Equal(data, data2) {
		t.Error("canonical encoding should be deterministic")
	}
}
