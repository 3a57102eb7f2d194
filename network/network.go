// Package network keeps track of a node's peers and fetches their chains over
// HTTP.
package network // import "chainspace.io/ledger/network"

import (
	"net/url"
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// Error values.
var (
	ErrInvalidPeerAddress  = errors.New("network: invalid peer address")
	ErrPeerResponseInvalid = errors.New("network: invalid response from peer")
	ErrPeerUnreachable     = errors.New("network: peer unreachable")
)

// Normalize returns the canonical form of a peer address. Addresses with a
// scheme are reduced to scheme://host; anything else is kept as a bare
// host[:port] path.
func Normalize(address string) (string, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return "", errors.Wrap(ErrInvalidPeerAddress, "empty address")
	}
	if strings.Contains(address, "://") {
		u, err := url.Parse(address)
		if err != nil {
			return "", errors.Wrapf(ErrInvalidPeerAddress, "%q: %s", address, err)
		}
		if u.Scheme == "" || u.Host == "" {
			return "", errors.Wrapf(ErrInvalidPeerAddress, "%q has no host", address)
		}
		return u.Scheme + "://" + u.Host, nil
	}
	if strings.ContainsAny(address, " \t\r\n") {
		return "", errors.Wrapf(ErrInvalidPeerAddress, "%q contains whitespace", address)
	}
	if _, err := url.Parse("//" + address); err != nil {
		return "", errors.Wrapf(ErrInvalidPeerAddress, "%q: %s", address, err)
	}
	path := strings.TrimRight(address, "/")
	if path == "" {
		return "", errors.Wrapf(ErrInvalidPeerAddress, "%q has no host", address)
	}
	return path, nil
}

// URL returns the URL for the given path on a normalized peer address. Bare
// addresses are assumed to speak plain HTTP.
func URL(address string, path string) string {
	if !strings.Contains(address, "://") {
		address = "http://" + address
	}
	return address + "/" + strings.TrimLeft(path, "/")
}

// PeerSet is the deduplicated set of peers a node reconciles its chain with.
// It is safe for concurrent use.
type PeerSet struct {
	mu    sync.RWMutex
	peers map[string]struct{}
}

// NewPeerSet returns an empty peer set.
func NewPeerSet() *PeerSet {
	return &PeerSet{
		peers: map[string]struct{}{},
	}
}

// Addresses returns the registered peers in sorted order.
func (p *PeerSet) Addresses() []string {
	p.mu.RLock()
	addrs := make([]string, 0, len(p.peers))
	for addr := range p.peers {
		addrs = append(addrs, addr)
	}
	p.mu.RUnlock()
	sort.Strings(addrs)
	return addrs
}

// Len returns the number of registered peers.
func (p *PeerSet) Len() int {
	p.mu.RLock()
	n := len(p.peers)
	p.mu.RUnlock()
	return n
}

// Register normalizes the address and adds it to the set, returning the
// normalized form.
func (p *PeerSet) Register(address string) (string, error) {
	addr, err := Normalize(address)
	if err != nil {
		return "", err
	}
	p.mu.Lock()
	p.peers[addr] = struct{}{}
	p.mu.Unlock()
	return addr, nil
}
