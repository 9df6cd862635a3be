//go:build test

package suggest

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
)

var leakPatterns = [][]string{
	{"a", "ab", "abc", "abcd", "abcde"},
	{"h", "he", "hel", "hell", "hello"},
	{"w", "wo", "wor", "worl", "world"},
	{"p", "pr", "pro", "prog", "progr", "progra", "program"},
	{"t", "th", "the", "ther", "there"},
}

func leakFixture() *Completer {
	c := NewCompleter(DefaultLimits(), 256)
	for _, pattern := range leakPatterns {
		word := pattern[len(pattern)-1]
		for i := 0; i < 26; i++ {
			c.AddWord(word + string(rune('a'+i)))
		}
		c.AddWord(word)
	}
	return c
}

func TestMemoryLeakBasic(t *testing.T) {
	for _, iterations := range []int{100, 500, 1000} {
		t.Run(fmt.Sprintf("iterations_%d", iterations), func(t *testing.T) {
			c := leakFixture()

			var baseline runtime.MemStats
			runtime.GC()
			runtime.ReadMemStats(&baseline)
			baselineGoroutines := runtime.NumGoroutine()

			totalOps := 0
			for i := 0; i < iterations; i++ {
				for _, pattern := range leakPatterns {
					for _, prefix := range pattern {
						c.Query(prefix, 10)
						totalOps++
					}
				}
			}

			var final runtime.MemStats
			runtime.GC()
			runtime.ReadMemStats(&final)

			memDelta := int64(final.Alloc - baseline.Alloc)
			memPerOp := float64(memDelta) / float64(totalOps)
			goroutineDelta := runtime.NumGoroutine() - baselineGoroutines

			t.Logf("iterations=%d ops=%d mem_delta=%d bytes mem_per_op=%.2f goroutine_delta=%d",
				iterations, totalOps, memDelta, memPerOp, goroutineDelta)

			if memPerOp > 1000 {
				t.Errorf("excessive memory usage per operation: %.2f bytes", memPerOp)
			}
			if goroutineDelta > 2 {
				t.Errorf("goroutine leak detected: %d goroutines leaked", goroutineDelta)
			}
		})
	}
}

func TestMemoryLeakConcurrent(t *testing.T) {
	for _, workers := range []int{1, 2, 4, 8} {
		t.Run(fmt.Sprintf("workers_%d", workers), func(t *testing.T) {
			c := leakFixture()

			var baseline runtime.MemStats
			runtime.GC()
			runtime.ReadMemStats(&baseline)

			var totalOps atomic.Int64
			var wg sync.WaitGroup
			for w := 0; w < workers; w++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					for iter := 0; iter < 1000/workers; iter++ {
						for _, pattern := range leakPatterns {
							for _, prefix := range pattern {
								c.Complete(prefix, 10)
								totalOps.Add(1)
							}
						}
					}
				}()
			}
			wg.Wait()

			var final runtime.MemStats
			runtime.GC()
			runtime.ReadMemStats(&final)

			memDelta := int64(final.Alloc - baseline.Alloc)
			memPerOp := float64(memDelta) / float64(totalOps.Load())
			t.Logf("workers=%d ops=%d mem_delta=%d bytes mem_per_op=%.2f",
				workers, totalOps.Load(), memDelta, memPerOp)

			if memPerOp > 1000 {
				t.Errorf("excessive memory usage per operation: %.2f bytes", memPerOp)
			}
		})
	}
}
