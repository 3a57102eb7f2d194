package log

import (
	"bufio"
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func withFreshRoot(t *testing.T) {
	prevRoot, prevReady := root, ready
	t.Cleanup(func() {
		root, ready = prevRoot, prevReady
	})
	root, ready = root.WithOptions(), false
}

func tempLogPath(t *testing.T) string {
	dir, err := ioutil.TempDir("", "ledger-log")
	if err != nil {
		t.Fatalf("unable to create temp dir: %s", err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })
	return filepath.Join(dir, "node.log")
}

func TestInitFileLoggerJSON(t *testing.T) {
	withFreshRoot(t)
	path := tempLogPath(t)
	if err := InitFileLogger(path, InfoLevel, JSONFormat); err != nil {
		t.Fatalf("unable to initialise file logger: %s", err)
	}
	Debug("below the threshold")
	Info("Mined block", Int("block.index", 7), String("miner", "node-a"))
	root.Sync()

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("unable to open log file: %s", err)
	}
	defer f.Close()
	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if len(lines) != 1 {
		t.Fatalf("expected a single entry, got %d: %q", len(lines), lines)
	}
	entry := map[string]interface{}{}
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("entry is not JSON: %s", err)
	}
	if entry["msg"] != "Mined block" || entry["level"] != "info" {
		t.Errorf("unexpected entry: %v", entry)
	}
	if entry["block.index"] != float64(7) || entry["miner"] != "node-a" {
		t.Errorf("fields missing from entry: %v", entry)
	}
	if _, ok := entry["ts"]; !ok {
		t.Errorf("entry has no timestamp: %v", entry)
	}
}

func TestInitFileLoggerConsole(t *testing.T) {
	withFreshRoot(t)
	path := tempLogPath(t)
	if err := InitFileLogger(path, WarnLevel, ConsoleFormat); err != nil {
		t.Fatalf("unable to initialise file logger: %s", err)
	}
	Info("dropped")
	Warn("Skipping peer", String("peer", "node2:5000"))
	root.Sync()

	data, err := ioutil.ReadFile(path)
	if err != nil {
		t.Fatalf("unable to read log file: %s", err)
	}
	out := string(data)
	if strings.Contains(out, "dropped") {
		t.Errorf("entry below WarnLevel was written: %q", out)
	}
	if !strings.Contains(out, "WARN") || !strings.Contains(out, "Skipping peer") || !strings.Contains(out, "node2:5000") {
		t.Errorf("unexpected console output: %q", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("file output should not be colourised: %q", out)
	}
}

func TestParseFormat(t *testing.T) {
	for raw, want := range map[string]Format{"": JSONFormat, "json": JSONFormat, "Console": ConsoleFormat} {
		got, err := ParseFormat(raw)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %q, %v; want %q", raw, got, err, want)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Errorf("expected an error parsing an unknown format")
	}
}
