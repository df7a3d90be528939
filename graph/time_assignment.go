// File: time_assignment.go
// Role: TimeAssignment — the map from (Node, Contract) to a payment time,
// the solver's second required input alongside Graph and equilibrium time.
package graph

import (
	"math"
	"sync"

	"github.com/finlib/debtcut/contract"
)

type taKey struct {
	node     string
	contract string
}

// TimeAssignment maps (Node, Contract) pairs to the real-valued time at
// which that contract's cut is applied. It caches the maximum time seen
// across all entries.
//
// The zero value is not valid; use NewTimeAssignment.
type TimeAssignment struct {
	mu      sync.RWMutex
	entries map[taKey]float64
	nodes   map[string]struct{} // nodes with at least one entry, including dummy ones
	maxTime float64
	hasAny  bool
}

// NewTimeAssignment constructs an empty TimeAssignment.
func NewTimeAssignment() *TimeAssignment {
	return &TimeAssignment{
		entries: make(map[taKey]float64),
		nodes:   make(map[string]struct{}),
	}
}

// Put records the payment time for (node, c). Returns ErrInvalidArgument if
// node is nil or t is NaN/infinite.
func (ta *TimeAssignment) Put(node *Node, c contract.Contract, t float64) error {
	if node == nil || math.IsNaN(t) || math.IsInf(t, 0) {
		return ErrInvalidArgument
	}

	ta.mu.Lock()
	defer ta.mu.Unlock()

	ta.entries[taKey{node.name, c.Name()}] = t
	ta.nodes[node.name] = struct{}{}
	if !ta.hasAny || t > ta.maxTime {
		ta.maxTime = t
		ta.hasAny = true
	}

	return nil
}

// EnsureNode records node's presence in the assignment without attaching a
// time entry, so a node with no incoming contracts can still be marked
// present via a dummy entry.
func (ta *TimeAssignment) EnsureNode(node *Node) error {
	if node == nil {
		return ErrInvalidArgument
	}
	ta.mu.Lock()
	defer ta.mu.Unlock()
	ta.nodes[node.name] = struct{}{}

	return nil
}

// Get returns the payment time for (node, c). Returns ErrInvalidState if no
// entry exists.
func (ta *TimeAssignment) Get(node *Node, c contract.Contract) (float64, error) {
	if node == nil {
		return 0, ErrInvalidArgument
	}
	ta.mu.RLock()
	defer ta.mu.RUnlock()

	t, ok := ta.entries[taKey{node.name, c.Name()}]
	if !ok {
		return 0, ErrInvalidState
	}
	return t, nil
}

// HasNode reports whether name has at least one entry, or was registered
// via EnsureNode.
func (ta *TimeAssignment) HasNode(name string) bool {
	ta.mu.RLock()
	defer ta.mu.RUnlock()
	_, ok := ta.nodes[name]
	return ok
}

// GetMaximumTimestamp returns the maximum payment time across all entries
// (0 if none were ever recorded).
func (ta *TimeAssignment) GetMaximumTimestamp() float64 {
	ta.mu.RLock()
	defer ta.mu.RUnlock()
	return ta.maxTime
}
