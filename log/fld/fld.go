// Package fld provides field constructors with preset key names.
package fld

import (
	"time"

	"chainspace.io/ledger/log"
)

// Address log field.
func Address(value string) log.Field {
	return log.String("address", value)
}

// BlockIndex log field.
func BlockIndex(value int) log.Field {
	return log.Int("block.index", value)
}

// Digest log field.
func Digest(value string) log.Field {
	return log.String("block.hash", value)
}

// Err log field.
func Err(value error) log.Field {
	return log.Err(value)
}

// Length log field.
func Length(value int) log.Field {
	return log.Int("chain.length", value)
}

// Miner log field.
func Miner(value string) log.Field {
	return log.String("miner", value)
}

// NodeID log field.
func NodeID(value string) log.Field {
	return log.String("node.id", value)
}

// Path log field.
func Path(value string) log.Field {
	return log.String("path", value)
}

// Peer log field.
func Peer(value string) log.Field {
	return log.String("peer", value)
}

// PeerCount log field.
func PeerCount(value int) log.Field {
	return log.Int("peer.count", value)
}

// Port log field.
func Port(value int) log.Field {
	return log.Int("port", value)
}

// Proof log field.
func Proof(value int64) log.Field {
	return log.Int64("proof", value)
}

// TimeTaken log field.
func TimeTaken(value time.Duration) log.Field {
	return log.Duration("time.taken", value)
}

// Transactions log field.
func Transactions(value int) log.Field {
	return log.Int("transactions", value)
}
