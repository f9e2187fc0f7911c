package sat

import (
	"context"
	"errors"
	"testing"
)

func TestGini_TrivialSat(t *testing.T) {
	o := NewGini()
	o.AddClause(1)
	o.AddClause(-1, 2)

	ok, err := o.Solve(context.Background())
	if err != nil {
		t.Fatalf("Solve() error: %v", err)
	}
	if !ok {
		t.Fatal("Solve() = unsat, want sat")
	}

	model := o.Model()
	if len(model) != 2 {
		t.Fatalf("len(Model()) = %d, want 2", len(model))
	}
	if model[0] != 1 {
		t.Errorf("Model()[0] = %d, want 1", model[0])
	}
	if model[1] != 2 {
		t.Errorf("Model()[1] = %d, want 2", model[1])
	}
}

func TestGini_TrivialUnsat(t *testing.T) {
	o := NewGini()
	o.AddClause(1)
	o.AddClause(-1)

	ok, err := o.Solve(context.Background())
	if err != nil {
		t.Fatalf("Solve() error: %v", err)
	}
	if ok {
		t.Error("Solve() = sat, want unsat")
	}
}

func TestGini_Incremental(t *testing.T) {
	o := NewGini()
	o.AddClause(1, 2)

	ok, err := o.Solve(context.Background())
	if err != nil {
		t.Fatalf("Solve() error: %v", err)
	}
	if !ok {
		t.Fatal("first Solve() = unsat, want sat")
	}

	// Clauses accumulate across calls within one session.
	o.AddClause(-1)
	o.AddClause(-2)

	ok, err = o.Solve(context.Background())
	if err != nil {
		t.Fatalf("second Solve() error: %v", err)
	}
	if ok {
		t.Error("second Solve() = sat, want unsat")
	}
}

func TestGini_CancelledContext(t *testing.T) {
	o := NewGini()
	o.AddClause(1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := o.Solve(ctx)
	if err == nil {
		t.Fatal("Solve() with cancelled context returned nil error")
	}
	if !IsOracleError(err) {
		t.Errorf("Solve() error = %T, want *OracleError", err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Solve() error %v does not wrap context.Canceled", err)
	}
}

func TestGini_ZeroLiteralPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("AddClause(0) did not panic")
		}
	}()
	NewGini().AddClause(0)
}
