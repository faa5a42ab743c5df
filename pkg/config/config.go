package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Build information, injected at link time.
var (
	Version   = "dev"
	Commit    = ""
	BuildTime = ""
)

func VersionString() string {
	return fmt.Sprintf("%s-%s-%s", Version, BuildTime, Commit)
}

// Config is the optional tool configuration. It selects the bus adapter and
// allows overriding board addresses for boards moved off their factory
// default with the solder jumper.
type Config struct {
	// mcp2221, generic, nanopi or raspi
	Adapter string `yaml:"adapter"`
	// bus device path for the generic adapter
	Device string `yaml:"device"`
	// bus number for the nanopi and raspi adapters
	Bus int `yaml:"bus"`
	// board name to 7-bit address overrides
	Addresses map[string]byte `yaml:"addresses"`
}

func Default() Config {
	return Config{
		Adapter: "mcp2221",
		Device:  "/dev/i2c-1",
		Bus:     2,
	}
}

func Load(path string) (Config, error) {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("could not read config file %s: %w", path, err)
	}
	err = yaml.Unmarshal(raw, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("could not parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// Address returns the configured address for a board or the factory default
// when no override is present.
func (c Config) Address(board string, fallback byte) byte {
	if addr, ok := c.Addresses[board]; ok {
		return addr
	}
	return fallback
}
