//go:build go1.18

package cache

import (
	"errors"
	"strings"
	"testing"
)

// Fuzz basic Set/Get/Remove semantics under arbitrary string inputs.
// Guards against panics and ensures core invariants hold.
// NOTE: We cap key/value lengths to avoid pathological memory usage
// during fuzzing (this does not weaken the invariants we check).
func FuzzCache_SetGetRemove(f *testing.F) {
	// Seed corpus: empty, ASCII, Unicode, long strings.
	f.Add("", "")
	f.Add("a", "1")
	f.Add("b", "2")
	f.Add("αβγ", "δ")
	f.Add("emoji🙂", "🙂🙂")
	f.Add("long", strings.Repeat("x", 1024))

	f.Fuzz(func(t *testing.T, k, v string) {
		// Cap lengths to keep memory bounded during fuzzing.
		const limit = 1 << 12 // 4096
		if len(k) > limit {
			k = k[:limit]
		}
		if len(v) > limit {
			v = v[:limit]
		}

		c := New[string, string](Options[string, string]{Capacity: 16})

		// Set -> Get must return the same value.
		if err := c.Set(k, v); err != nil {
			t.Fatalf("Set: %v", err)
		}
		got, err := c.Get(k)
		if err != nil || *got != v {
			t.Fatalf("after Set/Get: want %q, got %v err=%v", v, got, err)
		}

		// Overwrite must replace in place without growing the cache.
		if err := c.Set(k, v+"x"); err != nil {
			t.Fatalf("Set overwrite: %v", err)
		}
		if c.Len() != 1 {
			t.Fatalf("Len=%d after overwrite, want 1", c.Len())
		}

		// Remove must return the current value exactly once.
		rv, err := c.Remove(k)
		if err != nil || rv != v+"x" {
			t.Fatalf("Remove: v=%q err=%v", rv, err)
		}
		if _, err := c.Get(k); !errors.Is(err, ErrCacheMiss) {
			t.Fatalf("key must miss after Remove, err=%v", err)
		}
		if _, err := c.Remove(k); !errors.Is(err, ErrCacheMiss) {
			t.Fatalf("second Remove must miss, err=%v", err)
		}

		// After removal, Set must succeed again.
		if err := c.Set(k, v); err != nil {
			t.Fatalf("Set after Remove: %v", err)
		}
	})
}
