// Package freeport finds unused TCP ports for a node's HTTP API.
package freeport // import "chainspace.io/ledger/freeport"

import (
	"net"
	"strconv"
)

// TCP returns a port on the given host that nothing is listening on at the
// time of the call.
func TCP(host string) (int, error) {
	l, err := net.Listen("tcp", net.JoinHostPort(host, "0"))
	if err != nil {
		return 0, err
	}
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port, nil
}

// Available reports whether the port can be bound on the given host.
func Available(host string, port int) bool {
	l, err := net.Listen("tcp", net.JoinHostPort(host, strconv.Itoa(port)))
	if err != nil {
		return false
	}
	l.Close()
	return true
}
