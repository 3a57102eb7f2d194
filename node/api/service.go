// Package api implements the HTTP controller and service for the ledger
// node's endpoints.
package api // import "chainspace.io/ledger/node/api"

import (
	"context"
	"fmt"
	"net/http"

	"chainspace.io/ledger/chain"
	"chainspace.io/ledger/consensus"
	"chainspace.io/ledger/log"
	"chainspace.io/ledger/log/fld"
	"chainspace.io/ledger/network"

	"github.com/pkg/errors"
)

// Error values.
var (
	ErrMalformedTransaction = errors.New("api: missing values, sender, recipient and amount are required")
	ErrNoNodes              = errors.New("api: please supply a valid list of nodes")
)

// Ledger is the node state the API operates on.
type Ledger interface {
	ExportChain() chain.Export
	ID() string
	MineNextBlock(ctx context.Context, miner string) (*chain.Block, error)
	Peers() []string
	RegisterPeer(address string) error
	RunConsensus(ctx context.Context) consensus.Result
	SubmitTransaction(sender string, recipient string, amount float64) int
}

// Service is the ledger API service. Every method returns the HTTP status to
// answer with alongside its result.
type Service interface {
	Chain() (*ChainResponse, int, error)
	Mine(ctx context.Context) (*MineResponse, int, error)
	NewTransaction(tx *Transaction) (*MessageResponse, int, error)
	RegisterNodes(req *RegisterNodesRequest) (*RegisterNodesResponse, int, error)
	Resolve(ctx context.Context) (*ResolveResponse, int, error)
}

type service struct {
	ledger Ledger
}

// NewService returns a Service operating on the given ledger.
func NewService(ledger Ledger) Service {
	return &service{ledger: ledger}
}

func (srv *service) Chain() (*ChainResponse, int, error) {
	exp := srv.ledger.ExportChain()
	return &ChainResponse{Chain: exp.Chain, Length: exp.Length}, http.StatusOK, nil
}

func (srv *service) Mine(ctx context.Context) (*MineResponse, int, error) {
	block, err := srv.ledger.MineNextBlock(ctx, srv.ledger.ID())
	if err != nil {
		log.Error("Unable to mine block", fld.Err(err))
		return nil, http.StatusServiceUnavailable, err
	}
	return &MineResponse{
		Message:      "New Block Forged",
		Index:        block.Index,
		Transactions: block.Transactions,
		Proof:        block.Proof,
		PreviousHash: block.PreviousHash,
	}, http.StatusOK, nil
}

func (srv *service) NewTransaction(tx *Transaction) (*MessageResponse, int, error) {
	if tx == nil || tx.Sender == nil || tx.Recipient == nil || tx.Amount == nil {
		return nil, http.StatusBadRequest, ErrMalformedTransaction
	}
	idx := srv.ledger.SubmitTransaction(*tx.Sender, *tx.Recipient, *tx.Amount)
	return &MessageResponse{
		Message: fmt.Sprintf("Transaction will be added to Block %d", idx),
	}, http.StatusCreated, nil
}

// RegisterNodes validates every address before registering any of them, so a
// request with a bad address leaves the peer set unchanged.
func (srv *service) RegisterNodes(req *RegisterNodesRequest) (*RegisterNodesResponse, int, error) {
	if req == nil || len(req.Nodes) == 0 {
		return nil, http.StatusBadRequest, ErrNoNodes
	}
	for _, addr := range req.Nodes {
		if _, err := network.Normalize(addr); err != nil {
			return nil, http.StatusBadRequest, err
		}
	}
	for _, addr := range req.Nodes {
		if err := srv.ledger.RegisterPeer(addr); err != nil {
			return nil, http.StatusBadRequest, err
		}
	}
	return &RegisterNodesResponse{
		Message:    "New nodes have been added",
		TotalNodes: srv.ledger.Peers(),
	}, http.StatusCreated, nil
}

func (srv *service) Resolve(ctx context.Context) (*ResolveResponse, int, error) {
	res := srv.ledger.RunConsensus(ctx)
	if res.Replaced {
		return &ResolveResponse{
			Message:  "Our chain was replaced",
			NewChain: res.Chain,
		}, http.StatusOK, nil
	}
	return &ResolveResponse{
		Message: "Our chain is authoritative",
		Chain:   res.Chain,
	}, http.StatusOK, nil
}
