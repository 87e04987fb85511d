package catalog

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/dailyharvest/storefront/internal/platform/timeouts"
)

// State is the loading state of a visitor's catalog.
type State int

const (
	// StateIdle means no load has started.
	StateIdle State = iota
	// StateLoading means a load is in flight.
	StateLoading
	// StateReady means products (possibly partial) are available.
	StateReady
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	default:
		return "idle"
	}
}

// View is a point-in-time copy of a Holder.
type View struct {
	State    State
	Products []Product
	Failures []Failure
}

// Holder keeps one visitor's catalog and the reviews they added to it.
type Holder struct {
	mu         sync.Mutex
	state      State
	generation uint64
	products   []Product
	failures   []Failure
	done       chan struct{}
	cancel     context.CancelFunc
}

// NewHolder returns an idle holder.
func NewHolder() *Holder {
	return &Holder{}
}

// Ensure starts a background load through src when the holder is idle and
// waits up to wait for it to finish. It returns whatever state is current
// when the wait ends.
func (h *Holder) Ensure(src Source, names []string, wait time.Duration) View {
	ctx, done, gen, started := h.begin()
	if started {
		go h.run(ctx, src, names, gen)
	}
	if done != nil && wait > 0 {
		timer := time.NewTimer(wait)
		select {
		case <-done:
		case <-timer.C:
		}
		timer.Stop()
	}
	return h.View()
}

func (h *Holder) begin() (context.Context, <-chan struct{}, uint64, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	switch h.state {
	case StateReady:
		return nil, nil, h.generation, false
	case StateLoading:
		return nil, h.done, h.generation, false
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeouts.CatalogLoad)
	h.generation++
	h.state = StateLoading
	h.done = make(chan struct{})
	h.cancel = cancel
	return ctx, h.done, h.generation, true
}

func (h *Holder) run(ctx context.Context, src Source, names []string, gen uint64) {
	if src == nil {
		h.finish(gen, Result{}, nil)
		return
	}
	result, err := src.Load(ctx, names)
	if err != nil {
		log.Printf("catalog load aborted err=%v", err)
	}
	h.finish(gen, result, err)
}

// finish stores a load outcome unless the holder moved on to another
// generation while the load was running.
func (h *Holder) finish(gen uint64, result Result, err error) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if gen != h.generation || h.state != StateLoading {
		return false
	}
	h.stopLocked()
	if err != nil {
		h.state = StateIdle
	} else {
		h.state = StateReady
		h.products = result.Products
		h.failures = result.Failures
	}
	close(h.done)
	h.done = nil
	return true
}

func (h *Holder) stopLocked() {
	if h.cancel != nil {
		h.cancel()
		h.cancel = nil
	}
}

// Reset forgets products and reviews. An in-flight load is cancelled and
// its result discarded.
func (h *Holder) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.generation++
	h.stopLocked()
	if h.done != nil {
		close(h.done)
		h.done = nil
	}
	h.state = StateIdle
	h.products = nil
	h.failures = nil
}

// View returns a copy of the current state.
func (h *Holder) View() View {
	h.mu.Lock()
	defer h.mu.Unlock()
	view := View{State: h.state}
	if h.products != nil {
		view.Products = append([]Product(nil), h.products...)
	}
	if h.failures != nil {
		view.Failures = append([]Failure(nil), h.failures...)
	}
	return view
}

// Product returns the product with key.
func (h *Holder) Product(key string) (Product, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	idx := h.indexLocked(key)
	if idx < 0 {
		return Product{}, false
	}
	return h.products[idx], true
}

// SubmitReview prepends a review to the product with key. The catalog slice
// is replaced rather than edited so earlier views keep their contents.
func (h *Holder) SubmitReview(key, author, comment string, now time.Time) (Product, error) {
	review, err := NewReview(author, comment, now)
	if err != nil {
		return Product{}, err
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	idx := h.indexLocked(key)
	if idx < 0 {
		return Product{}, ErrProductNotFound
	}
	updated := h.products[idx].WithReview(review)
	next := make([]Product, len(h.products))
	copy(next, h.products)
	next[idx] = updated
	h.products = next
	return updated, nil
}

func (h *Holder) indexLocked(key string) int {
	if key == "" {
		return -1
	}
	for i, p := range h.products {
		if p.Key() == key {
			return i
		}
	}
	return -1
}
