// Package pow implements the proof-of-work puzzle that binds every block to
// its predecessor's proof.
//
// A candidate proof p solves the puzzle for a previous proof q when the
// hex-encoded SHA-256 digest of the decimal strings of q and p, concatenated,
// begins with Difficulty '0' characters.
package pow // import "chainspace.io/ledger/pow"

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strconv"
)

// Difficulty is the number of leading '0' hex characters a solution digest
// must have.
const Difficulty = 4

// checkEvery is how many candidates are tried between context checks.
const checkEvery = 1 << 10

// Error values.
var (
	ErrInvalidDifficulty = errors.New("pow: difficulty must be between 1 and 64")
)

var std = Puzzle{difficulty: Difficulty}

// Puzzle is the proof-of-work puzzle at a fixed difficulty.
type Puzzle struct {
	difficulty int
}

// NewPuzzle returns a puzzle for the given difficulty.
func NewPuzzle(difficulty int) (Puzzle, error) {
	if difficulty < 1 || difficulty > sha256.Size*2 {
		return Puzzle{}, ErrInvalidDifficulty
	}
	return Puzzle{difficulty: difficulty}, nil
}

// Difficulty returns the number of leading zeros required by the puzzle.
func (p Puzzle) Difficulty() int {
	return p.difficulty
}

// Solve returns the smallest non-negative proof that satisfies Verify for
// the given last proof. The search is unbounded; ctx is only consulted
// between candidates, and its error is returned if it is cancelled first.
func (p Puzzle) Solve(ctx context.Context, lastProof int64) (int64, error) {
	buf := make([]byte, 0, 40)
	buf = strconv.AppendInt(buf, lastProof, 10)
	prefix := len(buf)
	for proof := int64(0); ; proof++ {
		if proof%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
		}
		buf = strconv.AppendInt(buf[:prefix], proof, 10)
		if p.check(buf) {
			return proof, nil
		}
	}
}

// Verify reports whether proof solves the puzzle for lastProof.
func (p Puzzle) Verify(lastProof, proof int64) bool {
	buf := make([]byte, 0, 40)
	buf = strconv.AppendInt(buf, lastProof, 10)
	buf = strconv.AppendInt(buf, proof, 10)
	return p.check(buf)
}

func (p Puzzle) check(guess []byte) bool {
	sum := sha256.Sum256(guess)
	var digest [sha256.Size * 2]byte
	hex.Encode(digest[:], sum[:])
	for i := 0; i < p.difficulty; i++ {
		if digest[i] != '0' {
			return false
		}
	}
	return true
}

// Solve runs the standard puzzle at Difficulty.
func Solve(ctx context.Context, lastProof int64) (int64, error) {
	return std.Solve(ctx, lastProof)
}

// Verify checks proof against lastProof at Difficulty.
func Verify(lastProof, proof int64) bool {
	return std.Verify(lastProof, proof)
}
