// Package nonce provides the strictly increasing value every signed CEX.IO
// request must carry. The exchange rejects a reused or stale nonce, so one
// Nonce instance is shared by all requests made with a credential set.
package nonce

import (
	"strconv"
	"sync"
)

// Nonce holds the current nonce value behind a mutex so concurrent signed
// requests never observe the same value.
type Nonce struct {
	n int64
	m sync.Mutex
}

// Get retrieves the current nonce value.
func (n *Nonce) Get() Value {
	n.m.Lock()
	defer n.m.Unlock()
	return Value(n.n)
}

// GetInc increments and returns the nonce value.
func (n *Nonce) GetInc() Value {
	n.m.Lock()
	defer n.m.Unlock()
	n.n++
	return Value(n.n)
}

// Set overwrites the nonce value.
func (n *Nonce) Set(val int64) {
	n.m.Lock()
	n.n = val
	n.m.Unlock()
}

// String returns a string version of the current nonce.
func (n *Nonce) String() string {
	return n.Get().String()
}

// Value is a single issued nonce.
type Value int64

// String formats the value the way the exchange expects it on the wire.
func (v Value) String() string {
	return strconv.FormatInt(int64(v), 10)
}
