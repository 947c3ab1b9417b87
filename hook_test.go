package hookable_test

import (
	"context"
	"testing"

	"github.com/billymaulana/hookable"
)

// counter returns a hook that records each invocation.
//
// Kept out of inlining so every closure it returns shares one code
// pointer; inlined copies would get distinct closure symbols and break
// the code-pointer matching that RemoveHook tests rely on.
//
//go:noinline
func counter(calls *int) hookable.HookFunc {
	return func(_ context.Context, _ ...any) (any, error) {
		*calls++
		return nil, nil
	}
}

func TestHook_RegisterAndCall(t *testing.T) {
	h := hookable.New()
	calls := 0
	h.Hook("app:ready", counter(&calls))

	if _, err := h.CallHook(context.Background(), "app:ready"); err != nil {
		t.Fatalf("CallHook: %v", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestHook_RemoveRoundTrip(t *testing.T) {
	h := hookable.New()
	calls := 0
	remove := h.Hook("app:ready", counter(&calls))
	remove()

	if _, err := h.CallHook(context.Background(), "app:ready"); err != nil {
		t.Fatalf("CallHook: %v", err)
	}
	if calls != 0 {
		t.Errorf("calls = %d, want 0 after removal", calls)
	}
}

func TestHook_RemoveIsIdempotent(t *testing.T) {
	h := hookable.New()
	remove := h.Hook("app:ready", counter(new(int)))
	remove()

	// A registration made after the first removal must survive a
	// second invocation of the stale handle.
	calls := 0
	h.Hook("app:ready", counter(&calls))
	remove()

	if _, err := h.CallHook(context.Background(), "app:ready"); err != nil {
		t.Fatalf("CallHook: %v", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1 (stale handle removed a live hook)", calls)
	}
}

func TestHook_EmptyNameIsNoOp(t *testing.T) {
	h := hookable.New()
	remove := h.Hook("", counter(new(int)))
	if remove == nil {
		t.Fatal("expected non-nil remove handle")
	}
	remove() // must not panic
}

func TestHook_NilFuncIsNoOp(t *testing.T) {
	h := hookable.New()
	remove := h.Hook("app:ready", nil)
	if remove == nil {
		t.Fatal("expected non-nil remove handle")
	}
	remove()

	if result, err := h.CallHook(context.Background(), "app:ready"); err != nil || result != nil {
		t.Errorf("CallHook = (%v, %v), want (nil, nil)", result, err)
	}
}

func TestHookOnce_FiresAtMostOnce(t *testing.T) {
	h := hookable.New()
	calls := 0
	h.HookOnce("app:ready", counter(&calls))

	ctx := context.Background()
	for n := 0; n < 3; n++ {
		if _, err := h.CallHook(ctx, "app:ready"); err != nil {
			t.Fatalf("CallHook: %v", err)
		}
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestHookOnce_ReentrantDispatch(t *testing.T) {
	h := hookable.New()
	ctx := context.Background()

	calls := 0
	h.HookOnce("app:ready", func(ctx context.Context, _ ...any) (any, error) {
		calls++
		// Re-dispatch the same name from inside the hook.
		return h.CallHook(ctx, "app:ready")
	})

	if _, err := h.CallHook(ctx, "app:ready"); err != nil {
		t.Fatalf("CallHook: %v", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1 even under re-entrant dispatch", calls)
	}
}

func TestHookOnce_RemoveBeforeFire(t *testing.T) {
	h := hookable.New()
	calls := 0
	remove := h.HookOnce("app:ready", counter(&calls))
	remove()

	if _, err := h.CallHook(context.Background(), "app:ready"); err != nil {
		t.Fatalf("CallHook: %v", err)
	}
	if calls != 0 {
		t.Errorf("calls = %d, want 0", calls)
	}
}

func TestRemoveHook_ByFunction(t *testing.T) {
	h := hookable.New()
	calls := 0
	fn := counter(&calls)
	h.Hook("app:ready", fn)
	h.RemoveHook("app:ready", fn)

	if _, err := h.CallHook(context.Background(), "app:ready"); err != nil {
		t.Fatalf("CallHook: %v", err)
	}
	if calls != 0 {
		t.Errorf("calls = %d, want 0 after RemoveHook", calls)
	}
}

func TestRemoveHook_SameLiteralClosuresRemoveFirstMatch(t *testing.T) {
	h := hookable.New()

	// Closures from the same function literal share a code pointer, so
	// removal by function matches the first registration under the
	// name, whichever instance was passed.
	callsA, callsB := 0, 0
	fnA := counter(&callsA)
	fnB := counter(&callsB)
	h.Hook("app:ready", fnA)
	h.Hook("app:ready", fnB)

	h.RemoveHook("app:ready", fnB)

	if _, err := h.CallHook(context.Background(), "app:ready"); err != nil {
		t.Fatalf("CallHook: %v", err)
	}
	if callsA != 0 || callsB != 1 {
		t.Errorf("calls = (%d, %d), want (0, 1): first matching entry removed", callsA, callsB)
	}
}

func TestRemoveHook_UnknownIsNoOp(t *testing.T) {
	h := hookable.New()
	h.RemoveHook("never-registered", counter(new(int))) // must not panic
}

func TestRemoveHook_LiteralNameNoAliasResolution(t *testing.T) {
	h := hookable.New()
	if err := h.Deprecate("old", "new"); err != nil {
		t.Fatalf("Deprecate: %v", err)
	}

	calls := 0
	fn := counter(&calls)
	h.Hook("old", fn) // stored under "new" via resolution

	// Removal is keyed on the literal name, so removing via "old"
	// must not find the hook stored under "new".
	h.RemoveHook("old", fn)
	if _, err := h.CallHook(context.Background(), "new"); err != nil {
		t.Fatalf("CallHook: %v", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1 (RemoveHook must not resolve aliases)", calls)
	}

	h.RemoveHook("new", fn)
	if _, err := h.CallHook(context.Background(), "new"); err != nil {
		t.Fatalf("CallHook: %v", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1 after literal removal", calls)
	}
}

func TestHook_MultipleRegistriesAreIndependent(t *testing.T) {
	h1 := hookable.New()
	h2 := hookable.New()

	calls1, calls2 := 0, 0
	h1.Hook("app:ready", counter(&calls1))
	h2.Hook("app:ready", counter(&calls2))

	if _, err := h1.CallHook(context.Background(), "app:ready"); err != nil {
		t.Fatalf("CallHook: %v", err)
	}
	if calls1 != 1 || calls2 != 0 {
		t.Errorf("calls = (%d, %d), want (1, 0)", calls1, calls2)
	}
}
