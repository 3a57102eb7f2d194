package api

import (
	"chainspace.io/ledger/chain"
)

// Transaction is the body of a transaction submission. Fields are pointers
// so that missing values can be told apart from zero values.
type Transaction struct {
	Sender    *string  `json:"sender"`
	Recipient *string  `json:"recipient"`
	Amount    *float64 `json:"amount"`
}

// MineResponse describes a newly mined block
type MineResponse struct {
	Message      string              `json:"message"`
	Index        int                 `json:"index"`
	Transactions []chain.Transaction `json:"transactions"`
	Proof        int64               `json:"proof"`
	PreviousHash string              `json:"previous_hash"`
}

// MessageResponse ...
type MessageResponse struct {
	Message string `json:"message"`
}

// ChainResponse contains the full chain and its length
type ChainResponse struct {
	Chain  []*chain.Block `json:"chain"`
	Length int            `json:"length"`
}

// RegisterNodesRequest lists the peer addresses to register
type RegisterNodesRequest struct {
	Nodes []string `json:"nodes"`
}

// RegisterNodesResponse lists every peer known after registration
type RegisterNodesResponse struct {
	Message    string   `json:"message"`
	TotalNodes []string `json:"total_nodes"`
}

// ResolveResponse reports the outcome of a consensus round. NewChain is set
// when the local chain was replaced, Chain otherwise.
type ResolveResponse struct {
	Message  string         `json:"message"`
	NewChain []*chain.Block `json:"new_chain,omitempty"`
	Chain    []*chain.Block `json:"chain,omitempty"`
}

// Error ...
type Error struct {
	Error string `json:"error"`
}
