// Package contract defines Contract, a time-valued loan instrument with two
// variants (periodic compounding and continuous compounding).
//
// A Contract is an immutable value: the timestamp shift the solver applies
// while loading its equilibrium matrix is made on its own copies (see the
// solver package), never on the caller's contracts. Two variants share one concrete type
// distinguished by a tag, following the sum-type-via-tag-dispatch shape the
// rest of this module uses for small closed variant sets.
//
//	c, err := contract.NewContinuous("loan-1", 1000, 0.1, 0)
//	v, err := c.Evaluate(2.5) // value at duration 2.5 from origin
package contract
