package md2blog

import (
	"runtime"
	"sync"
)

// Pool sizing constants.
const (
	// MinPoolSize ensures at least one renderer is available.
	MinPoolSize = 1

	// MaxPoolSize caps renderer instances; construction cost (asset
	// loading, highlight CSS generation) stops paying off beyond this.
	MaxPoolSize = 16

	// cpuDivisor leaves headroom for the writer goroutines of a batch run.
	cpuDivisor = 2
)

// DefaultPoolSize returns a pool size derived from the CPU count,
// clamped to [MinPoolSize, MaxPoolSize].
func DefaultPoolSize() int {
	n := runtime.NumCPU() / cpuDivisor
	if n < MinPoolSize {
		return MinPoolSize
	}
	if n > MaxPoolSize {
		return MaxPoolSize
	}
	return n
}

// RendererPool manages a set of Renderer instances for parallel batch
// rendering. Renderers are created lazily on first acquire so a pool is
// cheap to construct even when most capacity goes unused.
type RendererPool struct {
	size    int
	opts    []Option
	sem     chan *Renderer
	mu      sync.Mutex
	created int
}

// NewRendererPool creates a pool with capacity for n Renderer instances,
// each configured with opts. Renderers are created lazily when acquired.
func NewRendererPool(n int, opts ...Option) *RendererPool {
	if n < MinPoolSize {
		n = MinPoolSize
	}

	return &RendererPool{
		size: n,
		opts: opts,
		sem:  make(chan *Renderer, n),
	}
}

// Acquire gets a renderer from the pool, creating one if capacity
// allows. Blocks if all renderers are in use. Returns an error only
// when constructing a new renderer fails; a failed construction frees
// its capacity slot for a later attempt.
func (p *RendererPool) Acquire() (*Renderer, error) {
	// Try to get an existing renderer (non-blocking)
	select {
	case r := <-p.sem:
		return r, nil
	default:
	}

	// Check if we can create a new renderer
	p.mu.Lock()
	if p.created < p.size {
		p.created++
		p.mu.Unlock()

		// Create the renderer outside the lock
		r, err := NewRenderer(p.opts...)
		if err != nil {
			p.mu.Lock()
			p.created--
			p.mu.Unlock()
			return nil, err
		}
		return r, nil
	}
	p.mu.Unlock()

	// All renderers created, wait for one to be released
	return <-p.sem, nil
}

// Size returns the pool capacity.
func (p *RendererPool) Size() int {
	return p.size
}

// Release returns a renderer to the pool.
func (p *RendererPool) Release(r *Renderer) {
	if r == nil {
		return
	}
	p.sem <- r
}
