// Package linkedqueue provides an unbounded generic FIFO queue backed
// by a singly-linked chain of nodes.
package linkedqueue

type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
