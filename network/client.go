package network

import (
	"context"
	"io"
	"net/http"
	"time"

	"chainspace.io/ledger/consensus"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"golang.org/x/net/context/ctxhttp"
)

// DefaultTimeout bounds a single chain fetch when no timeout is configured.
const DefaultTimeout = 5 * time.Second

const chainPath = "chain"

// Client fetches chains from peers over HTTP. It implements
// consensus.Fetcher.
type Client struct {
	http       *http.Client
	maxPayload int64
	timeout    time.Duration
}

// ClientConfig holds the settings for a Client.
type ClientConfig struct {
	MaxPayload int64
	Timeout    time.Duration
}

// NewClient returns a client with the given settings. Zero values fall back to
// DefaultTimeout and an unlimited payload.
func NewClient(cfg *ClientConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		http:       &http.Client{Timeout: timeout},
		maxPayload: cfg.MaxPayload,
		timeout:    timeout,
	}
}

// FetchChain retrieves the chain served at <address>/chain. Transport
// failures are reported as ErrPeerUnreachable and bad answers as
// ErrPeerResponseInvalid; use errors.Cause to tell them apart.
func (c *Client) FetchChain(ctx context.Context, address string) (*consensus.Response, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	resp, err := ctxhttp.Get(ctx, c.http, URL(address, chainPath))
	if err != nil {
		return nil, errors.Wrapf(ErrPeerUnreachable, "%s: %s", address, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Wrapf(ErrPeerResponseInvalid, "%s answered with http status %d", address, resp.StatusCode)
	}
	var body io.Reader = resp.Body
	if c.maxPayload > 0 {
		body = io.LimitReader(resp.Body, c.maxPayload)
	}
	out := &consensus.Response{}
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.NewDecoder(body).Decode(out); err != nil {
		return nil, errors.Wrapf(ErrPeerResponseInvalid, "%s: unable to decode chain: %s", address, err)
	}
	return out, nil
}
