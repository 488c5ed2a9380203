package md2blog

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
)

func TestDefaultPoolSize(t *testing.T) {
	t.Parallel()

	n := DefaultPoolSize()
	if n < MinPoolSize || n > MaxPoolSize {
		t.Errorf("DefaultPoolSize() = %d, want within [%d, %d]", n, MinPoolSize, MaxPoolSize)
	}
}

func TestRendererPool_AcquireRelease(t *testing.T) {
	t.Parallel()

	pool := NewRendererPool(2)

	r1, err := pool.Acquire()
	if err != nil {
		t.Fatalf("Acquire() error: %v", err)
	}
	if r1 == nil {
		t.Fatal("Acquire() returned nil renderer")
	}

	r2, err := pool.Acquire()
	if err != nil {
		t.Fatalf("Acquire() error: %v", err)
	}

	pool.Release(r1)
	pool.Release(r2)

	// Released renderers come back on later acquires
	r3, err := pool.Acquire()
	if err != nil {
		t.Fatalf("Acquire() after Release error: %v", err)
	}
	if r3 != r1 && r3 != r2 {
		t.Error("Acquire() should reuse a released renderer")
	}
	pool.Release(r3)
}

func TestRendererPool_SizeClamped(t *testing.T) {
	t.Parallel()

	pool := NewRendererPool(0)
	r, err := pool.Acquire()
	if err != nil {
		t.Fatalf("Acquire() error: %v", err)
	}
	pool.Release(r)
}

func TestRendererPool_ConstructionErrorFreesSlot(t *testing.T) {
	t.Parallel()

	pool := NewRendererPool(1, WithChromaStyle("not-a-style"))

	if _, err := pool.Acquire(); err == nil {
		t.Fatal("Acquire() should surface renderer construction error")
	}

	// The failed slot must be reusable; otherwise this would block forever.
	if _, err := pool.Acquire(); err == nil {
		t.Fatal("Acquire() should fail again with the same bad options")
	}
}

func TestRendererPool_ReleaseNil(t *testing.T) {
	t.Parallel()

	pool := NewRendererPool(1)
	pool.Release(nil) // must not panic or consume capacity

	r, err := pool.Acquire()
	if err != nil {
		t.Fatalf("Acquire() error: %v", err)
	}
	pool.Release(r)
}

func TestRendererPool_ParallelBatch(t *testing.T) {
	t.Parallel()

	pool := NewRendererPool(4)
	ctx := context.Background()

	var wg sync.WaitGroup
	errCh := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			r, err := pool.Acquire()
			if err != nil {
				errCh <- err
				return
			}
			defer pool.Release(r)

			result, err := r.Render(ctx, Input{Markdown: samplePost})
			if err != nil {
				errCh <- err
				return
			}
			if !strings.Contains(string(result.HTML), `href="#getting-started"`) {
				errCh <- errors.New("rendered page missing heading anchor")
			}
		}()
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		t.Errorf("batch render: %v", err)
	}
}
