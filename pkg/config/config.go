// Package config loads and validates the YAML run configuration: the
// ordered list of servers and, per server, the ordered set of checks.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hostpatrol/hostpatrol/pkg/check"
)

// DefaultSSHPort is used when a server omits the port.
const DefaultSSHPort = 22

// Config is the root configuration for one run.
type Config struct {
	// Servers in declaration order. Report order follows this order.
	Servers []Server `yaml:"servers"`
}

// Server describes one monitored host and its checks.
type Server struct {
	// Name is the human-readable label used in reports.
	Name string `yaml:"name"`

	// Host is the hostname or IP address.
	Host string `yaml:"host"`

	// Port is the SSH port. Defaults to 22.
	Port int `yaml:"port"`

	// User is the SSH login.
	User string `yaml:"user"`

	// PrivateKey is the path to the SSH private key.
	PrivateKey string `yaml:"private_key"`

	// Checks in declaration order.
	Checks CheckList `yaml:"checks"`
}

// Load reads configuration from a file path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse parses configuration from YAML bytes and applies defaults.
// Validation is separate; call Validate before using the result.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode YAML: %w", err)
	}
	cfg.Defaults()
	return &cfg, nil
}

// Defaults applies default values to the configuration.
func (c *Config) Defaults() {
	for i := range c.Servers {
		if c.Servers[i].Port == 0 {
			c.Servers[i].Port = DefaultSSHPort
		}
	}
}

// Validate checks the configuration for errors. All check parameters
// are validated here, before any session is opened.
func (c *Config) Validate() error {
	if len(c.Servers) == 0 {
		return fmt.Errorf("configuration must list at least one server")
	}

	seen := make(map[string]bool, len(c.Servers))
	for _, srv := range c.Servers {
		if srv.Name == "" {
			return fmt.Errorf("server must have a name")
		}
		if seen[srv.Name] {
			return fmt.Errorf("duplicate server name: %s", srv.Name)
		}
		seen[srv.Name] = true

		if srv.Host == "" {
			return fmt.Errorf("server %q must have a host", srv.Name)
		}
		if srv.User == "" {
			return fmt.Errorf("server %q must have a user", srv.Name)
		}
		if srv.PrivateKey == "" {
			return fmt.Errorf("server %q must have a private_key", srv.Name)
		}
		if srv.Port < 1 || srv.Port > 65535 {
			return fmt.Errorf("server %q has invalid port %d", srv.Name, srv.Port)
		}

		for _, chk := range srv.Checks {
			if err := chk.Validate(); err != nil {
				return fmt.Errorf("server %q: %w", srv.Name, err)
			}
		}
	}

	return nil
}

// CheckList is the ordered set of checks for one server. YAML maps
// lose ordering when decoded into Go maps, so decoding walks the
// mapping node directly to keep declaration order.
type CheckList []check.Check

// kinds maps configuration keys to check constructors.
var kinds = map[string]func() check.Check{
	check.KindPing:        func() check.Check { return &check.Ping{} },
	check.KindLoad:        func() check.Check { return &check.Load{} },
	check.KindSubfolders:  func() check.Check { return &check.Subfolders{} },
	check.KindCustom:      func() check.Check { return &check.CustomCommand{} },
	check.KindOldDirs:     func() check.Check { return &check.OldDirectories{} },
	check.KindTemperature: func() check.Check { return &check.Temperature{} },
	check.KindFileAge:     func() check.Check { return &check.FileAge{} },
}

// shorthands decode the compact form where a bare scalar or sequence
// stands in for the variant's primary parameter, e.g. "load: 5" or
// "ping: [/health]".
var shorthands = map[string]func(node *yaml.Node) (check.Check, error){
	check.KindPing: func(n *yaml.Node) (check.Check, error) {
		c := &check.Ping{}
		return c, n.Decode(&c.URLs)
	},
	check.KindLoad: func(n *yaml.Node) (check.Check, error) {
		c := &check.Load{}
		return c, n.Decode(&c.Interval)
	},
	check.KindSubfolders: func(n *yaml.Node) (check.Check, error) {
		c := &check.Subfolders{}
		return c, n.Decode(&c.Paths)
	},
	check.KindCustom: func(n *yaml.Node) (check.Check, error) {
		c := &check.CustomCommand{}
		return c, n.Decode(&c.Cmd)
	},
	check.KindTemperature: func(n *yaml.Node) (check.Check, error) {
		c := &check.Temperature{}
		return c, n.Decode(&c.Sensor)
	},
}

// UnmarshalYAML decodes a mapping of check name to parameters,
// preserving document order. Unknown check names are configuration
// errors.
func (l *CheckList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("checks must be a mapping of check name to parameters")
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode := node.Content[i]
		valNode := node.Content[i+1]

		factory, ok := kinds[keyNode.Value]
		if !ok {
			return fmt.Errorf("unknown check: %s", keyNode.Value)
		}

		var chk check.Check
		var err error
		if valNode.Kind != yaml.MappingNode {
			shorthand, ok := shorthands[keyNode.Value]
			if !ok {
				return fmt.Errorf("check %q requires a parameter mapping", keyNode.Value)
			}
			chk, err = shorthand(valNode)
		} else {
			chk = factory()
			err = valNode.Decode(chk)
		}
		if err != nil {
			return fmt.Errorf("failed to parse check %q: %w", keyNode.Value, err)
		}
		*l = append(*l, chk)
	}

	return nil
}
