// Package config defines the YAML configuration of a ledger node.
package config // import "chainspace.io/ledger/config"

// NOTE: The order of some of the struct fields is not alphabetical so as to
// generate a more pleasing ordering when serialised to YAML.
import (
	"io/ioutil"
	"strconv"
	"strings"
	"time"

	"chainspace.io/ledger/log"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Default values applied by LoadNode and Default.
const (
	DefaultFetchTimeout = 5 * time.Second
	DefaultMaxPayload   = 32 * MB
	DefaultPort         = 5000
)

// Error values.
var (
	ErrInvalidFetchTimeout = errors.New("config: consensus fetch timeout must be positive")
	ErrInvalidPort         = errors.New("config: http port must be between 1 and 65535")
)

// Consensus represents the configuration for chain resolution against peers.
type Consensus struct {
	FetchTimeout time.Duration `yaml:"fetch.timeout"`
}

// HTTP represents the configuration of the node's HTTP server.
type HTTP struct {
	Port       int
	MaxPayload ByteSize `yaml:"max.payload"`
}

// Logging represents the configuration for the node's log output. The File
// settings are only used when FilePath is set; files default to JSON.
type Logging struct {
	Console    log.Level
	File       log.Level  `yaml:",omitempty"`
	FileFormat log.Format `yaml:"file.format,omitempty"`
	FilePath   string     `yaml:"file.path,omitempty"`
}

// Node represents the configuration of an individual ledger node.
type Node struct {
	ID        string `yaml:",omitempty"`
	HTTP      *HTTP
	Peers     []string `yaml:",omitempty"`
	Consensus *Consensus
	Logging   *Logging
}

// Default returns a node config populated with the default values.
func Default() *Node {
	cfg := &Node{}
	cfg.setDefaults()
	return cfg
}

// ApplyEnv overrides the port and peers with the values of the PORT and
// PEERS variables as returned by getenv. PEERS is a comma-separated list.
func (n *Node) ApplyEnv(getenv func(string) string) error {
	n.setDefaults()
	if raw := strings.TrimSpace(getenv("PORT")); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil {
			return errors.Wrapf(ErrInvalidPort, "unable to parse PORT %q", raw)
		}
		n.HTTP.Port = port
	}
	if raw := getenv("PEERS"); raw != "" {
		for _, peer := range strings.Split(raw, ",") {
			if peer = strings.TrimSpace(peer); peer != "" {
				n.Peers = append(n.Peers, peer)
			}
		}
	}
	return nil
}

// Validate checks the config for values the node cannot run with.
func (n *Node) Validate() error {
	n.setDefaults()
	if n.HTTP.Port < 1 || n.HTTP.Port > 65535 {
		return errors.Wrapf(ErrInvalidPort, "got %d", n.HTTP.Port)
	}
	if n.Consensus.FetchTimeout <= 0 {
		return errors.Wrapf(ErrInvalidFetchTimeout, "got %s", n.Consensus.FetchTimeout)
	}
	return nil
}

func (n *Node) setDefaults() {
	if n.HTTP == nil {
		n.HTTP = &HTTP{}
	}
	if n.HTTP.Port == 0 {
		n.HTTP.Port = DefaultPort
	}
	if n.HTTP.MaxPayload == 0 {
		n.HTTP.MaxPayload = DefaultMaxPayload
	}
	if n.Consensus == nil {
		n.Consensus = &Consensus{}
	}
	if n.Consensus.FetchTimeout == 0 {
		n.Consensus.FetchTimeout = DefaultFetchTimeout
	}
	if n.Logging == nil {
		n.Logging = &Logging{Console: log.InfoLevel}
	}
	if n.Logging.FilePath != "" && n.Logging.FileFormat == "" {
		n.Logging.FileFormat = log.JSONFormat
	}
}

// LoadNode will read the YAML file at the given path and return the
// corresponding Node config with defaults filled in.
func LoadNode(path string) (*Node, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := &Node{}
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "config: unable to decode %s", path)
	}
	cfg.setDefaults()
	return cfg, nil
}

// WriteNode encodes the config as YAML and writes it to the given path.
func WriteNode(path string, cfg *Node) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return ioutil.WriteFile(path, data, 0600)
}
