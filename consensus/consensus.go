// Package consensus implements the longest-valid-chain rule used to reconcile
// a node's chain with the chains of its peers.
package consensus // import "chainspace.io/ledger/consensus"

import (
	"context"
	"sort"
	"time"

	"chainspace.io/ledger/chain"
	"chainspace.io/ledger/log"
	"chainspace.io/ledger/log/fld"

	"golang.org/x/sync/errgroup"
)

// Response is a peer's view of its chain.
type Response struct {
	Chain  []*chain.Block `json:"chain"`
	Length int           `json:"length"`
}

// Fetcher retrieves the chain held by the peer at the given address. Any
// error is taken to mean the peer is absent for this round.
type Fetcher interface {
	FetchChain(ctx context.Context, address string) (*Response, error)
}

// Result is the outcome of a resolution round.
type Result struct {
	Chain    []*chain.Block
	Replaced bool
}

// Resolve fetches the chains of all peers and returns the longest valid one.
// A peer's chain is only adopted if it is strictly longer than the best seen
// so far, so peers with chains of equal length never displace the local one.
// Unreachable peers and invalid responses are logged and skipped.
//
// Resolve doesn't modify local; it is up to the caller to install the
// returned chain when Replaced is set.
func Resolve(ctx context.Context, local []*chain.Block, peers []string, fetcher Fetcher) Result {
	addrs := make([]string, len(peers))
	copy(addrs, peers)
	sort.Strings(addrs)

	responses := make([]*Response, len(addrs))
	g, gctx := errgroup.WithContext(ctx)
	for idx, addr := range addrs {
		idx, addr := idx, addr
		g.Go(func() error {
			start := time.Now()
			resp, err := fetcher.FetchChain(gctx, addr)
			if err != nil {
				log.Warn("Skipping peer during chain resolution", fld.Peer(addr), fld.Err(err))
				return nil
			}
			if log.AtDebug() {
				log.Debug("Fetched peer chain", fld.Peer(addr), fld.Length(resp.Length), fld.TimeTaken(time.Since(start)))
			}
			responses[idx] = resp
			return nil
		})
	}
	g.Wait()

	best := local
	bestLength := len(local)
	replaced := false
	for idx, resp := range responses {
		if resp == nil || resp.Length <= bestLength {
			continue
		}
		addr := addrs[idx]
		if resp.Length != len(resp.Chain) {
			log.Warn("Peer reported a length that doesn't match its chain",
				fld.Peer(addr), fld.Length(resp.Length), log.Int("blocks", len(resp.Chain)))
			continue
		}
		if err := chain.Check(resp.Chain); err != nil {
			log.Warn("Peer offered an invalid chain", fld.Peer(addr), fld.Err(err))
			continue
		}
		best, bestLength, replaced = resp.Chain, resp.Length, true
	}

	if replaced {
		log.Info("Found a longer valid chain", fld.Length(bestLength), log.Int("local.length", len(local)))
	}
	return Result{Chain: best, Replaced: replaced}
}
