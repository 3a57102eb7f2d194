package chain

import (
	"sync"
)

// Pool holds the transactions waiting to be sealed into the next block. It is
// safe for concurrent use.
type Pool struct {
	mu      sync.Mutex
	pending []Transaction
}

// NewPool returns an empty transaction pool.
func NewPool() *Pool {
	return &Pool{}
}

// Add appends the transaction to the pool.
func (p *Pool) Add(tx Transaction) {
	p.mu.Lock()
	p.pending = append(p.pending, tx)
	p.mu.Unlock()
}

// DrainAll returns every pending transaction in submission order and empties
// the pool. The returned slice is never nil.
func (p *Pool) DrainAll() []Transaction {
	p.mu.Lock()
	txs := p.pending
	p.pending = nil
	p.mu.Unlock()
	if txs == nil {
		txs = []Transaction{}
	}
	return txs
}

// Len returns the number of pending transactions.
func (p *Pool) Len() int {
	p.mu.Lock()
	n := len(p.pending)
	p.mu.Unlock()
	return n
}
