// ABOUTME: Tests for the toggle id allocator
// ABOUTME: Verifies uniqueness, monotonic counting, and concurrent safety

package render

import (
	"strings"
	"sync"
	"testing"
)

func TestIDAllocator_Unique(t *testing.T) {
	ids := NewIDAllocator("toggle")

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := ids.Next()
		if seen[id] {
			t.Fatalf("id %q returned twice", id)
		}
		seen[id] = true
		if !strings.HasPrefix(id, "toggle") {
			t.Fatalf("id %q missing prefix", id)
		}
	}

	if got := ids.Allocated(); got != 1000 {
		t.Errorf("Allocated() = %d, want 1000", got)
	}
}

func TestIDAllocator_Concurrent(t *testing.T) {
	ids := NewIDAllocator("t")

	const workers = 8
	const perWorker = 250

	results := make([][]string, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				results[w] = append(results[w], ids.Next())
			}
		}(w)
	}
	wg.Wait()

	seen := make(map[string]bool)
	for _, batch := range results {
		for _, id := range batch {
			if seen[id] {
				t.Fatalf("id %q returned twice across goroutines", id)
			}
			seen[id] = true
		}
	}
	if len(seen) != workers*perWorker {
		t.Errorf("got %d distinct ids, want %d", len(seen), workers*perWorker)
	}
}
