package evaluator

import (
	"testing"
)

func TestPureIsDone(t *testing.T) {
	e := Pure(42)
	if !e.Done() {
		t.Fatal("Pure should be Done")
	}
	if e.Err() != nil {
		t.Fatalf("Pure should not fail, got %v", e.Err())
	}
	if e.Value() != 42 {
		t.Fatalf("expected 42, got %d", e.Value())
	}
}

func TestSuspendDefersWork(t *testing.T) {
	ran := false
	e := Suspend(func() Eval[int] {
		ran = true
		return Pure(1)
	})
	if e.Done() {
		t.Fatal("Suspend should not be Done")
	}
	if ran {
		t.Fatal("step must not run at construction time")
	}

	forced := e.Force()
	if !ran {
		t.Fatal("Force should invoke the step")
	}
	if !forced.Done() || forced.Value() != 1 {
		t.Fatalf("expected Done(1), got %+v", forced)
	}
}

func TestForceResolvesOneLevelOnly(t *testing.T) {
	e := Suspend(func() Eval[int] {
		return Suspend(func() Eval[int] {
			return Pure(7)
		})
	})

	once := e.Force()
	if once.Done() {
		t.Fatal("one Force should leave the inner suspension intact")
	}
	twice := once.Force()
	if !twice.Done() || twice.Value() != 7 {
		t.Fatalf("expected Done(7) after two forces, got %+v", twice)
	}
}

func TestBindDrivesSuspensionChain(t *testing.T) {
	e := Suspend(func() Eval[int] {
		return Suspend(func() Eval[int] {
			return Suspend(func() Eval[int] {
				return Pure(10)
			})
		})
	})

	result := Bind(e, func(v int) Eval[int] {
		return Pure(v + 1)
	})
	if !result.Done() || result.Value() != 11 {
		t.Fatalf("expected 11, got %+v", result)
	}
}

func TestBindShortCircuitsOnError(t *testing.T) {
	invoked := false
	e := Fail[int](divisionByZero())
	result := Bind(e, func(v int) Eval[int] {
		invoked = true
		return Pure(v)
	})
	if invoked {
		t.Fatal("continuation must not run after a failure")
	}
	if result.Err() == nil || result.Err().Kind != DivisionByZero {
		t.Fatalf("expected DivisionByZero, got %v", result.Err())
	}
}

func TestBindPropagatesErrorThroughSuspensions(t *testing.T) {
	invoked := false
	e := Suspend(func() Eval[int] {
		return Fail[int](notInScope("q"))
	})
	result := Bind(e, func(v int) Eval[int] {
		invoked = true
		return Pure(v)
	})
	if invoked {
		t.Fatal("continuation must not run after a failure")
	}
	err := result.Err()
	if err == nil || err.Kind != NotInScope || err.Detail != "q" {
		t.Fatalf("expected NotInScope(q), got %v", err)
	}
}

func TestNoMemoization(t *testing.T) {
	runs := 0
	e := Suspend(func() Eval[int] {
		runs++
		return Pure(runs)
	})

	if v, err := Run(e); err != nil || v != 1 {
		t.Fatalf("first run: got (%d, %v)", v, err)
	}
	if v, err := Run(e); err != nil || v != 2 {
		t.Fatalf("second run should re-execute the step: got (%d, %v)", v, err)
	}
	if runs != 2 {
		t.Fatalf("expected 2 step executions, got %d", runs)
	}
}

func TestRunReportsFailure(t *testing.T) {
	e := Suspend(func() Eval[int] {
		return Fail[int](typeMismatch())
	})
	_, err := Run(e)
	if err == nil || err.Kind != TypeMismatch {
		t.Fatalf("expected TypeMismatch, got %v", err)
	}
}
