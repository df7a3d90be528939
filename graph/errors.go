// File: errors.go
// Role: sentinel errors for the graph package.
package graph

import "errors"

var (
	// ErrInvalidArgument indicates a nil reference, empty name, or
	// out-of-range numeric argument.
	ErrInvalidArgument = errors.New("graph: invalid argument")

	// ErrInvalidState indicates an operation was attempted on a Node without
	// an owner Graph, across two different Graphs, or on a Graph without an
	// installed debt-cut Finder.
	ErrInvalidState = errors.New("graph: invalid state")

	// ErrNodeNotFound indicates a lookup referenced a node name absent from
	// the Graph.
	ErrNodeNotFound = errors.New("graph: node not found")
)
