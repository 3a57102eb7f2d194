package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chainspace.io/ledger/config"
	"chainspace.io/ledger/log"
	"chainspace.io/ledger/log/fld"
	"chainspace.io/ledger/node"

	"github.com/tav/golly/fsutil"
	"github.com/tav/golly/process"
)

const shutdownTimeout = 10 * time.Second

func cmdRun(args []string, usage string) {
	opts := newOpts("run [OPTIONS]", usage)
	configRoot := opts.Flags("-c", "--config-root").Label("PATH").String("path to the ledger root directory [$HOME/.ledger]", defaultRootDir())
	consoleLog := opts.Flags("--console-log").Label("LEVEL").String("set the minimum console log level")
	opts.Parse(args)

	path := configPath(*configRoot)
	cfg := config.Default()
	exists, err := fsutil.Exists(path)
	if err != nil {
		exitf("Unable to access %s: %s", path, err)
	}
	if exists {
		if cfg, err = config.LoadNode(path); err != nil {
			exitf("Could not load node.yaml: %s", err)
		}
	}
	if err = cfg.ApplyEnv(os.Getenv); err != nil {
		exitf("Invalid environment: %s", err)
	}

	initConsoleLog(*consoleLog, cfg.Logging.Console)
	if cfg.Logging.FilePath != "" {
		if err = log.InitFileLogger(cfg.Logging.FilePath, cfg.Logging.File, cfg.Logging.FileFormat); err != nil {
			log.Fatal("Unable to initialise the file logger", fld.Path(cfg.Logging.FilePath), fld.Err(err))
		}
	}
	if !exists {
		log.Info("No node config found, running with defaults", fld.Path(path))
	}

	srv, err := node.Run(cfg)
	if err != nil {
		log.Fatal("Could not start node", fld.Err(err))
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigs
	log.Info("Shutting down", log.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Unclean shutdown of the http server", fld.Err(err))
		process.Exit(1)
	}
	process.Exit(0)
}
