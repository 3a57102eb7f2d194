package main

import (
	"os"
	"path/filepath"

	"chainspace.io/ledger/log"

	"github.com/pterm/pterm"
	"github.com/tav/golly/optparse"
	"github.com/tav/golly/process"
)

const (
	dirPerms = 0700
)

func configPath(root string) string {
	return filepath.Join(root, "node.yaml")
}

func defaultRootDir() string {
	return os.ExpandEnv("$HOME/.ledger")
}

func ensureRootDir(path string) error {
	return os.MkdirAll(path, dirPerms)
}

// exitf reports a failure that happens before logging is set up and exits.
func exitf(format string, args ...interface{}) {
	pterm.Error.Printfln(format, args...)
	process.Exit(1)
}

// initConsoleLog sets up console logging at the level named by raw, falling
// back to def when raw is empty.
func initConsoleLog(raw string, def log.Level) {
	lvl := def
	if raw != "" {
		var err error
		if lvl, err = log.ParseLevel(raw); err != nil {
			exitf("Unknown --console-log level: %s", raw)
		}
	}
	if err := log.InitConsoleLogger(lvl); err != nil {
		exitf("Unable to initialise the console logger: %s", err)
	}
}

func newOpts(command string, usage string) *optparse.Parser {
	return optparse.New("Usage: ledger " + command + "\n\n  " + usage + "\n")
}
