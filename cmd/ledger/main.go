package main

import (
	"github.com/tav/golly/optparse"
)

func main() {
	cmds := map[string]func([]string, string){
		"init":    cmdInit,
		"inspect": cmdInspect,
		"run":     cmdRun,
	}
	info := map[string]string{
		"init":    "create the config for a new ledger node",
		"inspect": "fetch and verify the chain held by a node",
		"run":     "run the ledger node",
	}
	optparse.Commands("ledger", "0.1.0", cmds, info)
}
