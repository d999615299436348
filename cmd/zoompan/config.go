package main

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/opd-ai/zoompan"
)

// FileConfig is the YAML configuration accepted by -config.
//
//	size: 1280x720
//	pix_fmt: yuv420p
//	rate: 30000/1001
//	options:
//	  zoom: min(zoom+0.0015, 1.5)
//	  x: 0.5
//	  fillcolor: black
type FileConfig struct {
	Size    string            `yaml:"size"`
	PixFmt  string            `yaml:"pix_fmt"`
	Rate    string            `yaml:"rate"`
	Frames  int               `yaml:"frames"`
	Options map[string]string `yaml:"options"`
}

// loadFileConfig reads and decodes a YAML configuration file.
func loadFileConfig(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return &fc, nil
}

// apply sets every option of the file on opts in key order.
func (fc *FileConfig) apply(opts *zoompan.Options) error {
	keys := make([]string, 0, len(fc.Options))
	for k := range fc.Options {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := opts.Set(k, fc.Options[k]); err != nil {
			return fmt.Errorf("config option %s: %w", k, err)
		}
	}
	return nil
}

// mergeInto fills stream settings the command line left at their defaults.
func (fc *FileConfig) mergeInto(config *CLIConfig, set map[string]bool) {
	if fc.Size != "" && !set["s"] {
		config.size = fc.Size
	}
	if fc.PixFmt != "" && !set["pix_fmt"] {
		config.pixFmt = fc.PixFmt
	}
	if fc.Rate != "" && !set["r"] {
		config.rate = fc.Rate
	}
	if fc.Frames != 0 && !set["frames"] {
		config.frames = fc.Frames
	}
}
