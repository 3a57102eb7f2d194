package main

import (
	"context"
	"os"
	"strconv"
	"time"

	"chainspace.io/ledger/chain"
	"chainspace.io/ledger/network"

	"github.com/pterm/pterm"
)

func shorten(digest string) string {
	if len(digest) <= 16 {
		return digest
	}
	return digest[:16] + "…"
}

func cmdInspect(args []string, usage string) {
	opts := newOpts("inspect PEER_ADDRESS [OPTIONS]", usage)
	timeout := opts.Flags("-t", "--timeout").Label("DURATION").Duration("how long to wait for the node [5s]")
	params := opts.Parse(args)
	if len(params) != 1 {
		opts.PrintUsage()
		os.Exit(1)
	}

	addr, err := network.Normalize(params[0])
	if err != nil {
		pterm.Error.Printfln("Invalid address: %s", err)
		os.Exit(1)
	}

	spinner, _ := pterm.DefaultSpinner.Start("Fetching chain from " + addr)
	client := network.NewClient(&network.ClientConfig{Timeout: *timeout})
	resp, err := client.FetchChain(context.Background(), addr)
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		pterm.Error.Printfln("Unable to fetch chain: %s", err)
		os.Exit(1)
	}

	data := pterm.TableData{{"Index", "Timestamp", "Transactions", "Proof", "Hash", "Previous Hash"}}
	for _, block := range resp.Chain {
		if block == nil {
			continue
		}
		data = append(data, []string{
			strconv.Itoa(block.Index),
			block.Timestamp.Format(time.RFC3339),
			strconv.Itoa(len(block.Transactions)),
			strconv.FormatInt(block.Proof, 10),
			shorten(chain.Digest(block)),
			shorten(block.PreviousHash),
		})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		pterm.Error.Printfln("Unable to render chain: %s", err)
		os.Exit(1)
	}

	if resp.Length != len(resp.Chain) {
		pterm.Error.Printfln("Node reports a length of %d but served %d blocks", resp.Length, len(resp.Chain))
		os.Exit(1)
	}
	if err := chain.Check(resp.Chain); err != nil {
		pterm.Error.Printfln("Chain of %d blocks is invalid: %s", len(resp.Chain), err)
		os.Exit(1)
	}
	pterm.Success.Printfln("Chain of %d blocks is valid", len(resp.Chain))
}
