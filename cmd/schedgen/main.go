// Package main provides schedgen, which writes zoompan trajectory files
// from a few keyframes.
//
// Each -key flag pins x, y and zoom at a frame index; frames in between are
// interpolated linearly and frames past the last key hold its value.
//
//	schedgen -o path.bin -frames 250 -key 0:0.5,0.5,1 -key 249:0.3,0.4,3
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/zoompan/schedule"
)

// keyList collects repeated -key flags.
type keyList []schedule.Keyframe

func (k *keyList) String() string {
	parts := make([]string, len(*k))
	for i, kf := range *k {
		parts[i] = fmt.Sprintf("%d:%g,%g,%g", kf.Frame, kf.X, kf.Y, kf.Zoom)
	}
	return strings.Join(parts, " ")
}

func (k *keyList) Set(s string) error {
	kf, err := schedule.ParseKeyframe(s)
	if err != nil {
		return err
	}
	*k = append(*k, kf)
	return nil
}

// CLI configuration
type CLIConfig struct {
	output string
	frames int
	keys   keyList
}

// parseCLIFlags parses command-line arguments and returns the configuration.
func parseCLIFlags(args []string) (*CLIConfig, error) {
	config := &CLIConfig{}
	fs := flag.NewFlagSet("schedgen", flag.ContinueOnError)
	fs.StringVar(&config.output, "o", "", "Output trajectory file")
	fs.IntVar(&config.frames, "frames", 0, "Number of frames to generate")
	fs.Var(&config.keys, "key", "Keyframe frame:x,y,zoom (repeatable)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return config, nil
}

// validateCLIConfig validates the CLI configuration.
func validateCLIConfig(config *CLIConfig) error {
	if config.output == "" {
		return fmt.Errorf("output path is required (-o)")
	}
	if config.frames <= 0 {
		return fmt.Errorf("frame count must be positive")
	}
	if len(config.keys) == 0 {
		return fmt.Errorf("at least one -key is required")
	}
	return nil
}

// generate expands the keyframes and writes the trajectory file.
func generate(config *CLIConfig) error {
	triples := schedule.Interpolate(config.keys, config.frames)
	if err := schedule.Save(config.output, triples); err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"function":  "generate",
		"output":    config.output,
		"frames":    config.frames,
		"keyframes": len(config.keys),
	}).Info("Wrote trajectory")
	return nil
}

func main() {
	config, err := parseCLIFlags(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}
	if err := validateCLIConfig(config); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}
	if err := generate(config); err != nil {
		fmt.Fprintf(os.Stderr, "schedgen failed: %v\n", err)
		os.Exit(1)
	}
}
