package chain

import (
	"fmt"

	"chainspace.io/ledger/pow"
)

// ValidationError describes the first block at which a candidate chain was
// found to be invalid.
type ValidationError struct {
	Position int
	Reason   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("chain: block at position %d is invalid: %s", e.Position, e.Reason)
}

// Check walks the candidate chain and returns a *ValidationError for the
// first block whose previous hash or proof does not match its predecessor.
// Positions are 1-based. An empty chain is invalid; a lone genesis block is
// valid.
func Check(blocks []*Block) error {
	if len(blocks) == 0 {
		return &ValidationError{Position: 0, Reason: "chain is empty"}
	}
	prev := blocks[0]
	if prev == nil {
		return &ValidationError{Position: 1, Reason: "missing block"}
	}
	for i := 1; i < len(blocks); i++ {
		block := blocks[i]
		if block == nil {
			return &ValidationError{Position: i + 1, Reason: "missing block"}
		}
		if block.PreviousHash != Digest(prev) {
			return &ValidationError{Position: i + 1, Reason: "previous hash does not match"}
		}
		if !pow.Verify(prev.Proof, block.Proof) {
			return &ValidationError{Position: i + 1, Reason: "proof of work does not verify"}
		}
		prev = block
	}
	return nil
}

// Valid reports whether the candidate chain is hash-linked and every proof
// solves the puzzle for its predecessor's proof.
func Valid(blocks []*Block) bool {
	return Check(blocks) == nil
}
