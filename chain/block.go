// Package chain implements the hash-linked block chain: the block and
// transaction data model, the canonical block digest, the pending transaction
// pool and the validation of candidate chains.
package chain // import "chainspace.io/ledger/chain"

import (
	"errors"
	"time"
)

// Constants for the genesis block. They carry no cryptographic meaning.
const (
	GenesisPreviousHash = "1"
	GenesisProof        = 100
)

// Constants for the reward transaction added to every mined block.
const (
	RewardAmount = 1
	RewardSender = "0"
)

// Error values.
var (
	ErrEmptyChain = errors.New("chain: attempted to access the last block of an empty chain")
)

// Transaction represents a transfer of some amount between two parties. It
// carries no signature and is never validated.
type Transaction struct {
	Sender    string  `json:"sender"`
	Recipient string  `json:"recipient"`
	Amount    float64 `json:"amount"`
}

// Block is an immutable record of the transactions sealed at a given height,
// linked to its predecessor by PreviousHash.
type Block struct {
	Index        int           `json:"index"`
	Timestamp    time.Time     `json:"timestamp"`
	Transactions []Transaction `json:"transactions"`
	Proof        int64         `json:"proof"`
	PreviousHash string        `json:"previous_hash"`
}

// Reward returns the transaction crediting the given miner for a new block.
func Reward(miner string) Transaction {
	return Transaction{
		Sender:    RewardSender,
		Recipient: miner,
		Amount:    RewardAmount,
	}
}

// Export is the serialisable view of a chain as served to clients and peers.
type Export struct {
	Chain  []*Block `json:"chain"`
	Length int      `json:"length"`
}
