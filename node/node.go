// Package node ties the chain, the transaction pool, the peer set and the
// consensus rule together into a running ledger node.
package node // import "chainspace.io/ledger/node"

import (
	"context"
	"sync"
	"time"

	"chainspace.io/ledger/chain"
	"chainspace.io/ledger/consensus"
	"chainspace.io/ledger/log"
	"chainspace.io/ledger/log/fld"
	"chainspace.io/ledger/network"
	"chainspace.io/ledger/pow"
)

// State is the in-memory state of a ledger node. All of its methods are safe
// for concurrent use.
//
// The chain is guarded by mu. Proof-of-work and peer fetches run without
// holding it.
type State struct {
	mu      sync.Mutex
	chain   *chain.Chain
	fetcher consensus.Fetcher
	id      string
	peers   *network.PeerSet
	pool    *chain.Pool
}

// New returns a node holding a fresh genesis chain. The fetcher is used to
// retrieve peer chains during consensus.
func New(id string, fetcher consensus.Fetcher) *State {
	pool := chain.NewPool()
	return &State{
		chain:   chain.New(pool),
		fetcher: fetcher,
		id:      id,
		peers:   network.NewPeerSet(),
		pool:    pool,
	}
}

// ID returns the node's identifier, which is credited as the miner of the
// blocks it seals.
func (s *State) ID() string {
	return s.id
}

// ExportChain returns a snapshot of the chain.
func (s *State) ExportChain() chain.Export {
	s.mu.Lock()
	blocks := s.chain.Blocks()
	s.mu.Unlock()
	return chain.Export{Chain: blocks, Length: len(blocks)}
}

// MineNextBlock solves the proof-of-work puzzle for the current tip, credits
// the miner with the reward transaction and seals the pending transactions
// into a new block. If the tip changes while the puzzle is being solved, the
// solve starts again from the new tip. A cancelled ctx aborts mining and
// leaves the chain and the pool untouched.
func (s *State) MineNextBlock(ctx context.Context, miner string) (*chain.Block, error) {
	if miner == "" {
		miner = s.id
	}
	for {
		s.mu.Lock()
		last := s.chain.Last()
		s.mu.Unlock()
		digest := chain.Digest(last)

		start := time.Now()
		proof, err := pow.Solve(ctx, last.Proof)
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		if s.chain.Last() != last {
			s.mu.Unlock()
			log.Info("Chain tip moved while mining, restarting", fld.BlockIndex(last.Index+1))
			continue
		}
		s.pool.Add(chain.Reward(miner))
		block := s.chain.SealBlock(proof, digest)
		s.mu.Unlock()

		log.Info("Mined block",
			fld.BlockIndex(block.Index), fld.Proof(proof), fld.Miner(miner),
			fld.Transactions(len(block.Transactions)), fld.TimeTaken(time.Since(start)))
		return block, nil
	}
}

// Peers returns the registered peer addresses in sorted order.
func (s *State) Peers() []string {
	return s.peers.Addresses()
}

// RegisterPeer adds the normalized address to the peer set. Registering the
// same peer twice has no effect.
func (s *State) RegisterPeer(address string) error {
	addr, err := s.peers.Register(address)
	if err != nil {
		return err
	}
	if log.AtDebug() {
		log.Debug("Registered peer", fld.Peer(addr), fld.PeerCount(s.peers.Len()))
	}
	return nil
}

// RunConsensus fetches the chains of all registered peers and replaces the
// local chain with the longest valid one, if it is strictly longer. The
// returned result carries the chain the node holds afterwards.
func (s *State) RunConsensus(ctx context.Context) consensus.Result {
	s.mu.Lock()
	local := s.chain.Blocks()
	s.mu.Unlock()

	res := consensus.Resolve(ctx, local, s.peers.Addresses(), s.fetcher)
	if !res.Replaced {
		return res
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if len(res.Chain) <= s.chain.Len() {
		log.Info("Local chain grew during resolution, keeping it",
			fld.Length(s.chain.Len()), log.Int("candidate.length", len(res.Chain)))
		return consensus.Result{Chain: s.chain.Blocks()}
	}
	s.chain.Replace(res.Chain)
	log.Info("Replaced local chain", fld.Length(len(res.Chain)))
	return res
}

// SubmitTransaction adds a transaction to the pool and returns the index of
// the block it is expected to be sealed into.
func (s *State) SubmitTransaction(sender string, recipient string, amount float64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pool.Add(chain.Transaction{
		Sender:    sender,
		Recipient: recipient,
		Amount:    amount,
	})
	return s.chain.Last().Index + 1
}
