package chain

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

// NOTE: the block is round-tripped through a generic map so that keys are
// sorted at every level and numbers keep their literal text. A block decoded
// from a peer's JSON therefore hashes exactly as it did on the peer.
var canonicalJSON = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	UseNumber:              true,
	ValidateJsonRawMessage: true,
}.Froze()

// Canonical returns the canonical serialisation of the block that is used for
// hashing.
func Canonical(b *Block) ([]byte, error) {
	raw, err := canonicalJSON.Marshal(b)
	if err != nil {
		return nil, err
	}
	var generic interface{}
	if err := canonicalJSON.Unmarshal(raw, &generic); err != nil {
		return nil, err
	}
	return canonicalJSON.Marshal(generic)
}

// Digest returns the hex-encoded SHA-256 hash of the block's canonical form.
// It panics if the block cannot be encoded, which can only happen if an
// amount is not a finite number.
func Digest(b *Block) string {
	data, err := Canonical(b)
	if err != nil {
		panic(fmt.Errorf("chain: unable to encode block %d: %s", b.Index, err))
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
