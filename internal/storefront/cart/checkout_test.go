package cart

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func twoItemStore() *Store {
	s := NewStore()
	s.Add(apple)
	s.Add(grapes)
	s.Add(grapes)
	return s
}

func TestFlowConfirmSnapshotsAndClears(t *testing.T) {
	t.Parallel()

	store := twoItemStore()
	before := store.Items()
	flow := NewFlow()

	if err := flow.Request(); err != nil {
		t.Fatalf("Request() error = %v", err)
	}
	if got := flow.Snapshot().Phase; got != PhaseConfirmPending {
		t.Fatalf("phase = %v, want confirm_pending", got)
	}
	if err := flow.Confirm(store); err != nil {
		t.Fatalf("Confirm() error = %v", err)
	}

	if len(store.Items()) != 0 {
		t.Fatalf("store not cleared: %#v", store.Items())
	}
	snap := flow.Snapshot()
	if snap.Phase != PhaseProcessed {
		t.Fatalf("phase = %v, want processed", snap.Phase)
	}
	if diff := cmp.Diff(before, snap.Order); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
	if got := snap.Total(); got != 9.97 {
		t.Fatalf("Total() = %v, want 9.97", got)
	}

	acked, err := flow.Acknowledge()
	if err != nil {
		t.Fatalf("Acknowledge() error = %v", err)
	}
	if len(acked.Order) != 2 {
		t.Fatalf("acknowledged order = %#v", acked.Order)
	}
	if got := flow.Snapshot(); got.Phase != PhaseBrowsing || len(got.Order) != 0 {
		t.Fatalf("after acknowledge = %#v", got)
	}
}

func TestFlowCancelLeavesCartUntouched(t *testing.T) {
	t.Parallel()

	store := twoItemStore()
	before := store.Items()
	flow := NewFlow()

	if err := flow.Request(); err != nil {
		t.Fatalf("Request() error = %v", err)
	}
	if err := flow.Cancel(); err != nil {
		t.Fatalf("Cancel() error = %v", err)
	}
	if got := flow.Snapshot().Phase; got != PhaseBrowsing {
		t.Fatalf("phase = %v, want browsing", got)
	}
	if diff := cmp.Diff(before, store.Items()); diff != "" {
		t.Fatalf("cart changed on cancel (-want +got):\n%s", diff)
	}
}

func TestFlowRejectsOutOfOrderSteps(t *testing.T) {
	t.Parallel()

	store := twoItemStore()
	flow := NewFlow()

	if err := flow.Confirm(store); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("Confirm() from browsing error = %v", err)
	}
	if store.Len() != 2 {
		t.Fatal("rejected confirm must not clear the cart")
	}
	if err := flow.Cancel(); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("Cancel() from browsing error = %v", err)
	}
	if _, err := flow.Acknowledge(); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("Acknowledge() from browsing error = %v", err)
	}

	if err := flow.Request(); err != nil {
		t.Fatalf("Request() error = %v", err)
	}
	if err := flow.Request(); err != nil {
		t.Fatalf("repeat Request() error = %v", err)
	}
	if err := flow.Confirm(nil); !errors.Is(err, ErrNoProvider) {
		t.Fatalf("Confirm(nil) error = %v", err)
	}
	if err := flow.Confirm(store); err != nil {
		t.Fatalf("Confirm() error = %v", err)
	}
	if err := flow.Request(); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("Request() while processed error = %v", err)
	}
}
