package node

import (
	"context"
	"strings"

	"chainspace.io/ledger/config"
	"chainspace.io/ledger/log"
	"chainspace.io/ledger/log/fld"
	"chainspace.io/ledger/network"
	"chainspace.io/ledger/rest"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Server represents a running ledger node.
type Server struct {
	rest  *rest.Service
	state *State
}

// NewID returns a random node identifier: a version 4 UUID without dashes.
func NewID() string {
	return strings.Replace(uuid.New().String(), "-", "", -1)
}

// Run initialises a node with the given config and starts serving its HTTP
// API in the background.
func Run(cfg *config.Node) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	id := cfg.ID
	if id == "" {
		id = NewID()
	}

	client := network.NewClient(&network.ClientConfig{
		MaxPayload: int64(cfg.HTTP.MaxPayload),
		Timeout:    cfg.Consensus.FetchTimeout,
	})
	state := New(id, client)
	for _, peer := range cfg.Peers {
		if err := state.RegisterPeer(peer); err != nil {
			return nil, errors.Wrap(err, "node: unable to register configured peer")
		}
	}

	srv := rest.New(&rest.Config{
		Ledger:     state,
		MaxPayload: cfg.HTTP.MaxPayload,
		Port:       cfg.HTTP.Port,
	})
	if err := srv.Start(); err != nil {
		return nil, err
	}

	log.Info("Ledger node is now running",
		fld.NodeID(id), fld.Port(cfg.HTTP.Port), fld.PeerCount(len(state.Peers())))
	return &Server{
		rest:  srv,
		state: state,
	}, nil
}

// Shutdown stops the HTTP API, waiting for in-flight requests until ctx is
// done.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.rest.Shutdown(ctx)
}

// State returns the node's ledger state.
func (s *Server) State() *State {
	return s.state
}
