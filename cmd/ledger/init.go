package main

import (
	"chainspace.io/ledger/config"
	"chainspace.io/ledger/freeport"
	"chainspace.io/ledger/log"
	"chainspace.io/ledger/log/fld"
	"chainspace.io/ledger/node"

	"github.com/tav/golly/fsutil"
)

func cmdInit(args []string, usage string) {
	opts := newOpts("init [OPTIONS]", usage)
	configRoot := opts.Flags("-c", "--config-root").Label("PATH").String("path to the ledger root directory [$HOME/.ledger]", defaultRootDir())
	port := opts.Flags("-p", "--port").Label("PORT").Int("port the node's HTTP API listens on, 0 picks a free one [5000]")
	peers := opts.Flags("--peer").Label("ADDR").String("address of a peer to reconcile with")
	opts.Parse(args)

	initConsoleLog("", log.InfoLevel)

	path := configPath(*configRoot)
	if exists, _ := fsutil.Exists(path); exists {
		log.Fatal("A node config already exists", fld.Path(path))
	}
	if err := ensureRootDir(*configRoot); err != nil {
		log.Fatal("Unable to create the ledger root directory", fld.Path(*configRoot), fld.Err(err))
	}

	cfg := config.Default()
	cfg.ID = node.NewID()
	cfg.HTTP.Port = *port
	if cfg.HTTP.Port == 0 {
		free, err := freeport.TCP("")
		if err != nil {
			log.Fatal("Unable to find a free port", fld.Err(err))
		}
		cfg.HTTP.Port = free
	} else if !freeport.Available("", cfg.HTTP.Port) {
		log.Warn("Port is currently in use", fld.Port(cfg.HTTP.Port))
	}
	if *peers != "" {
		cfg.Peers = []string{*peers}
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid node config", fld.Err(err))
	}
	if err := config.WriteNode(path, cfg); err != nil {
		log.Fatal("Could not write node.yaml", fld.Path(path), fld.Err(err))
	}
	log.Info("Created node config", fld.NodeID(cfg.ID), fld.Path(path))
}
