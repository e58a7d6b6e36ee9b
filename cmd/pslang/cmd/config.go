package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-yaml"
)

// fileConfig mirrors the run command's flags so a --config file can
// pre-seed their defaults; any flag the user passes explicitly still wins.
type fileConfig struct {
	MemLimit int    `yaml:"mem-limit"`
	Timeout  string `yaml:"timeout"`
	Trace    bool   `yaml:"trace"`
	Dump     bool   `yaml:"dump"`
	JSON     bool   `yaml:"json"`
	Tee      string `yaml:"tee"`
}

func loadConfig(path string) (fileConfig, error) {
	var fc fileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return fc, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fc, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return fc, nil
}

func (fc fileConfig) timeout() (time.Duration, error) {
	if fc.Timeout == "" {
		return 0, nil
	}
	return time.ParseDuration(fc.Timeout)
}
