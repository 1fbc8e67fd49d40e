package testkit

import "testing"

var renameFn = func(from, to string) string { return from + "->" + to }

func TestSwap_FunctionAndRestore(t *testing.T) {
	// run swap in a subtest so Cleanup runs before we validate restoration
	t.Run("swap-in-subtest", func(t *testing.T) {
		Swap(t, &renameFn, func(_, _ string) string { return "swapped" })
		if got := renameFn("a", "b"); got != "swapped" {
			t.Fatalf("swap did not take effect, got %q", got)
		}
	})

	if got := renameFn("a", "b"); got != "a->b" {
		t.Fatalf("swap did not restore original, got %q", got)
	}
}
