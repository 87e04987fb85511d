package cart

import (
	"errors"
	"fmt"
	"sync"

	"github.com/dailyharvest/storefront/internal/storefront/money"
)

// ErrInvalidTransition is returned when a checkout step is out of order.
var ErrInvalidTransition = errors.New("invalid checkout transition")

// Phase is a checkout flow state.
type Phase int

const (
	// PhaseBrowsing is the resting state.
	PhaseBrowsing Phase = iota
	// PhaseConfirmPending shows the confirmation dialog.
	PhaseConfirmPending
	// PhaseProcessed shows the confirmed order.
	PhaseProcessed
)

func (p Phase) String() string {
	switch p {
	case PhaseConfirmPending:
		return "confirm_pending"
	case PhaseProcessed:
		return "processed"
	default:
		return "browsing"
	}
}

// Snapshot is the flow state together with the confirmed order, if any.
type Snapshot struct {
	Phase Phase
	Order []Item
}

// Total of the confirmed order.
func (s Snapshot) Total() float64 {
	return money.Round(money.CalculateTotal(s.Order))
}

// Flow is a visitor's checkout state machine.
type Flow struct {
	mu    sync.Mutex
	phase Phase
	order []Item
}

// NewFlow returns a flow in PhaseBrowsing.
func NewFlow() *Flow {
	return &Flow{}
}

// Request opens the confirmation dialog. Repeating it while pending is a
// no-op.
func (f *Flow) Request() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch f.phase {
	case PhaseBrowsing, PhaseConfirmPending:
		f.phase = PhaseConfirmPending
		return nil
	}
	return transitionError(f.phase, PhaseConfirmPending)
}

// Confirm snapshots store, clears it, and moves to PhaseProcessed.
func (f *Flow) Confirm(store *Store) error {
	if store == nil {
		return fmt.Errorf("confirm checkout: %w", ErrNoProvider)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.phase != PhaseConfirmPending {
		return transitionError(f.phase, PhaseProcessed)
	}
	f.order = store.Items()
	store.Clear()
	f.phase = PhaseProcessed
	return nil
}

// Cancel dismisses the confirmation dialog without touching the cart.
func (f *Flow) Cancel() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.phase != PhaseConfirmPending {
		return transitionError(f.phase, PhaseBrowsing)
	}
	f.phase = PhaseBrowsing
	return nil
}

// Acknowledge returns a processed flow to browsing and forgets the order.
// It returns the snapshot that was acknowledged.
func (f *Flow) Acknowledge() (Snapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.phase != PhaseProcessed {
		return Snapshot{}, transitionError(f.phase, PhaseBrowsing)
	}
	snap := Snapshot{Phase: f.phase, Order: f.order}
	f.phase = PhaseBrowsing
	f.order = nil
	return snap, nil
}

// Snapshot returns the current state.
func (f *Flow) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return Snapshot{Phase: f.phase, Order: append([]Item(nil), f.order...)}
}

func transitionError(from, to Phase) error {
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
}
