package config

import (
	"fmt"
	"os"
	"time"

	"github.com/PlakarLabs/defendertest/names"
	"github.com/PlakarLabs/defendertest/plan"
	"gopkg.in/yaml.v2"
)

const ENV_CONFIG = "DEFENDERTEST_CONFIG"

// Configuration holds the defaults of the generate subcommand. Flags given on
// the command line take precedence.
type Configuration struct {
	Path        string `yaml:"path"`
	TotalInodes uint64 `yaml:"total_inodes"`
	Depth       uint64 `yaml:"depth"`
	Names       string `yaml:"names"`
	Seed        int64  `yaml:"seed"`
	Pace        string `yaml:"pace"`
}

func Default() *Configuration {
	return &Configuration{
		TotalInodes: plan.DefaultTotalInodes,
		Depth:       plan.DefaultDepth,
		Names:       names.StrategyUUID,
		Pace:        "0s",
	}
}

// Load reads filePath over the defaults. Unknown keys are rejected.
func Load(filePath string) (*Configuration, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	config := Default()
	if err := yaml.UnmarshalStrict(data, config); err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}
	return config, nil
}

func (c *Configuration) Validate() error {
	if _, err := c.PaceDuration(); err != nil {
		return err
	}
	return names.ValidateStrategy(c.Names)
}

func (c *Configuration) PaceDuration() (time.Duration, error) {
	if c.Pace == "" {
		return 0, nil
	}
	pace, err := time.ParseDuration(c.Pace)
	if err != nil {
		return 0, fmt.Errorf("invalid pace: %w", err)
	}
	if pace < 0 {
		return 0, fmt.Errorf("invalid pace: %s is negative", c.Pace)
	}
	return pace, nil
}

func (c *Configuration) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
