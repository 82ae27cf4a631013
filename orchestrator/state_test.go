package orchestrator

import "testing"

func TestTransitionLegal(t *testing.T) {
	cases := []struct {
		from, to State
	}{
		{Created, Initializing},
		{Initializing, Initialized},
		{Initializing, Error},
		{Initialized, Running},
		{Initialized, Error},
		{Running, ShuttingDown},
		{Running, Error},
		{Error, ShuttingDown},
		{ShuttingDown, ShutDown},
	}
	for _, c := range cases {
		got, err := transition(c.from, c.to)
		if err != nil {
			t.Errorf("transition(%v, %v): unexpected error %v", c.from, c.to, err)
		}
		if got != c.to {
			t.Errorf("transition(%v, %v) = %v, want %v", c.from, c.to, got, c.to)
		}
	}
}

func TestTransitionIllegal(t *testing.T) {
	cases := []struct {
		from, to State
	}{
		{Created, Running},
		{Created, ShutDown},
		{Running, Initialized},
		{ShutDown, Running},
		{ShuttingDown, Running},
		{Error, Running},
		{Error, Initialized},
	}
	for _, c := range cases {
		got, err := transition(c.from, c.to)
		if err == nil {
			t.Errorf("transition(%v, %v): expected error, got none", c.from, c.to)
		}
		if got != c.from {
			t.Errorf("transition(%v, %v) left state at %v, want unchanged %v", c.from, c.to, got, c.from)
		}
		if _, ok := err.(*ErrIllegalTransition); !ok {
			t.Errorf("transition(%v, %v): error type = %T, want *ErrIllegalTransition", c.from, c.to, err)
		}
	}
}

func TestErrIllegalTransitionMessage(t *testing.T) {
	err := &ErrIllegalTransition{From: Created, To: Running}
	if err.Error() == "" {
		t.Error("expected non-empty error message")
	}
}
