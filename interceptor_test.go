package hookable_test

import (
	"context"
	"errors"
	"testing"

	"github.com/billymaulana/hookable"
)

func TestBeforeEach_ObservesDispatch(t *testing.T) {
	h := hookable.New()

	var events []*hookable.Event
	hookRanFirst := false
	h.BeforeEach(func(ev *hookable.Event) {
		if hookRanFirst {
			t.Error("before-interceptor ran after the hook")
		}
		events = append(events, ev)
	})
	h.Hook("x", func(_ context.Context, _ ...any) (any, error) {
		hookRanFirst = true
		return nil, nil
	})

	if _, err := h.CallHook(context.Background(), "x", 1, 2); err != nil {
		t.Fatalf("CallHook: %v", err)
	}

	if len(events) != 1 {
		t.Fatalf("interceptor fired %d times, want 1", len(events))
	}
	ev := events[0]
	if ev.Name != "x" {
		t.Errorf("ev.Name = %q, want %q", ev.Name, "x")
	}
	if len(ev.Args) != 2 || ev.Args[0] != 1 || ev.Args[1] != 2 {
		t.Errorf("ev.Args = %v, want [1 2]", ev.Args)
	}
	if ev.Context == nil {
		t.Error("ev.Context = nil, want fresh map")
	}
}

func TestAfterEach_FiresOnSuccessAndFailure(t *testing.T) {
	h := hookable.New()
	boom := errors.New("boom")

	var outcomes []error
	h.AfterEach(func(ev *hookable.Event) {
		outcomes = append(outcomes, ev.Err)
	})

	h.Hook("ok", func(_ context.Context, _ ...any) (any, error) { return nil, nil })
	h.Hook("bad", func(_ context.Context, _ ...any) (any, error) { return nil, boom })

	ctx := context.Background()
	if _, err := h.CallHook(ctx, "ok"); err != nil {
		t.Fatalf("CallHook(ok): %v", err)
	}
	if _, err := h.CallHook(ctx, "bad"); !errors.Is(err, boom) {
		t.Fatalf("CallHook(bad) = %v, want %v", err, boom)
	}

	if len(outcomes) != 2 {
		t.Fatalf("after-interceptor fired %d times, want 2", len(outcomes))
	}
	if outcomes[0] != nil {
		t.Errorf("outcomes[0] = %v, want nil", outcomes[0])
	}
	if !errors.Is(outcomes[1], boom) {
		t.Errorf("outcomes[1] = %v, want %v", outcomes[1], boom)
	}
}

func TestAfterEach_FiresWhenHookPanics(t *testing.T) {
	h := hookable.New()

	var outcomes []error
	h.AfterEach(func(ev *hookable.Event) {
		outcomes = append(outcomes, ev.Err)
	})
	h.Hook("bad", func(_ context.Context, _ ...any) (any, error) {
		panic("kaboom")
	})

	recovered := func() (r any) {
		defer func() { r = recover() }()
		_, _ = h.CallHook(context.Background(), "bad")
		return nil
	}()

	if recovered == nil {
		t.Fatal("expected the panic to propagate to the caller")
	}
	if len(outcomes) != 1 {
		t.Fatalf("after-interceptor fired %d times, want 1", len(outcomes))
	}
	if outcomes[0] == nil {
		t.Error("ev.Err = nil, want the panic surfaced as an error")
	}
}

func TestInterceptors_FireForEveryName(t *testing.T) {
	h := hookable.New()
	fired := 0
	h.BeforeEach(func(*hookable.Event) { fired++ })

	ctx := context.Background()
	// Including names with no registered hooks.
	for _, name := range []string{"a", "b", "never-registered"} {
		if _, err := h.CallHook(ctx, name); err != nil {
			t.Fatalf("CallHook(%s): %v", name, err)
		}
	}
	if fired != 3 {
		t.Errorf("fired = %d, want 3", fired)
	}
}

func TestInterceptors_SharedContextAcrossPhases(t *testing.T) {
	h := hookable.New()

	h.BeforeEach(func(ev *hookable.Event) {
		ev.Context["marker"] = "set-in-before"
	})
	var got any
	h.AfterEach(func(ev *hookable.Event) {
		got = ev.Context["marker"]
	})

	if _, err := h.CallHook(context.Background(), "x"); err != nil {
		t.Fatalf("CallHook: %v", err)
	}
	if got != "set-in-before" {
		t.Errorf("after saw Context[marker] = %v, want value set in before phase", got)
	}
}

func TestInterceptors_FreshContextPerDispatch(t *testing.T) {
	h := hookable.New()

	var contexts []map[string]any
	h.BeforeEach(func(ev *hookable.Event) {
		contexts = append(contexts, ev.Context)
	})

	ctx := context.Background()
	if _, err := h.CallHook(ctx, "x"); err != nil {
		t.Fatalf("CallHook: %v", err)
	}
	if _, err := h.CallHook(ctx, "x"); err != nil {
		t.Fatalf("CallHook: %v", err)
	}

	if len(contexts) != 2 {
		t.Fatalf("fired %d times, want 2", len(contexts))
	}
	contexts[0]["probe"] = true
	if _, leaked := contexts[1]["probe"]; leaked {
		t.Error("dispatches share an event context, want a fresh map per dispatch")
	}
}

func TestInterceptors_RegistrationOrder(t *testing.T) {
	h := hookable.New()
	var order []string
	h.BeforeEach(func(*hookable.Event) { order = append(order, "b1") })
	h.BeforeEach(func(*hookable.Event) { order = append(order, "b2") })
	h.AfterEach(func(*hookable.Event) { order = append(order, "a1") })
	h.AfterEach(func(*hookable.Event) { order = append(order, "a2") })

	if _, err := h.CallHook(context.Background(), "x"); err != nil {
		t.Fatalf("CallHook: %v", err)
	}

	want := []string{"b1", "b2", "a1", "a2"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i, name := range want {
		if order[i] != name {
			t.Errorf("order[%d] = %q, want %q", i, order[i], name)
		}
	}
}

func TestInterceptors_Remove(t *testing.T) {
	h := hookable.New()
	fired := 0
	remove := h.BeforeEach(func(*hookable.Event) { fired++ })
	remove()
	remove() // idempotent

	if _, err := h.CallHook(context.Background(), "x"); err != nil {
		t.Fatalf("CallHook: %v", err)
	}
	if fired != 0 {
		t.Errorf("fired = %d, want 0 after removal", fired)
	}
}

func TestInterceptors_NilIsNoOp(t *testing.T) {
	h := hookable.New()
	h.BeforeEach(nil)()
	h.AfterEach(nil)()

	if _, err := h.CallHook(context.Background(), "x"); err != nil {
		t.Fatalf("CallHook: %v", err)
	}
}
