package vm

import (
	"context"
	"testing"
)

func TestRenderFrame(t *testing.T) {
	p, err := Load("@ab")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	i := New(p)
	if err := i.Step(context.Background()); err != nil {
		t.Fatalf("Step: %v", err)
	}

	want := "a@b\ndir=east steps=1 stack=[97]\n"
	if got := i.Render(); got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestRenderBodySegments(t *testing.T) {
	p, err := Load("@12")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	i := New(p)
	if err := i.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	// Body covers all three cells after two growth events.
	want := "oo@\ndir=east steps=2 stack=[1 2]\n"
	if got := i.Render(); got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}
