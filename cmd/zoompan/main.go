// Package main provides a command-line front end for the zoompan filter.
//
// It reads tightly packed raw frames of a fixed geometry, renders each one
// through a Filter and writes the raw output frames.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/zoompan"
	"github.com/opd-ai/zoompan/frame"
)

// CLI configuration
type CLIConfig struct {
	input      string
	output     string
	size       string
	pixFmt     string
	rate       string
	opts       string
	configFile string
	logLevel   string
	frames     int
	help       bool

	file *FileConfig
}

// parseCLIFlags parses command-line arguments and returns the configuration.
func parseCLIFlags(args []string) (*CLIConfig, error) {
	config := &CLIConfig{}
	fs := flag.NewFlagSet("zoompan", flag.ContinueOnError)

	// Streams
	fs.StringVar(&config.input, "i", "-", "Input raw video file (- for stdin)")
	fs.StringVar(&config.output, "o", "-", "Output raw video file (- for stdout)")

	// Input geometry
	fs.StringVar(&config.size, "s", "", "Input frame size WxH")
	fs.StringVar(&config.pixFmt, "pix_fmt", "yuv420p", "Input pixel format")
	fs.StringVar(&config.rate, "r", "25", "Input frame rate, N or N/D")

	// Filter configuration
	fs.StringVar(&config.opts, "opts", "", "Filter options, key=value:key=value")
	fs.StringVar(&config.configFile, "config", "", "YAML configuration file")
	fs.IntVar(&config.frames, "frames", 0, "Stop after this many frames (0 for all)")

	// Logging
	fs.StringVar(&config.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	fs.BoolVar(&config.help, "help", false, "Show help message")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if config.configFile != "" {
		fc, err := loadFileConfig(config.configFile)
		if err != nil {
			return nil, err
		}
		set := map[string]bool{}
		fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
		fc.mergeInto(config, set)
		config.file = fc
	}
	return config, nil
}

// printUsage prints the usage information.
func printUsage() {
	fmt.Println("zoompan: zoom and pan raw video frames")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  %s -s WxH [options] < in.yuv > out.yuv\n", os.Args[0])
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Printf("  # Slow zoom into the centre\n")
	fmt.Printf("  %s -s 1280x720 -opts \"zoom='min(zoom+0.0015,1.5)'\" -i in.yuv -o out.yuv\n", os.Args[0])
	fmt.Println()
	fmt.Printf("  # Follow a precomputed trajectory at a fixed output size\n")
	fmt.Printf("  %s -s 1920x1080 -opts schedule=path.bin:width=640:height=360 -i in.yuv -o out.yuv\n", os.Args[0])
	fmt.Println()
	fmt.Println("Formats:", strings.Join(frame.FormatNames(), " "))
}

// validateCLIConfig validates the CLI configuration.
func validateCLIConfig(config *CLIConfig) error {
	if config.size == "" {
		return fmt.Errorf("input size is required (-s WxH)")
	}
	if _, _, err := parseSize(config.size); err != nil {
		return err
	}
	if _, err := frame.LookupFormat(config.pixFmt); err != nil {
		return err
	}
	if _, err := parseRate(config.rate); err != nil {
		return err
	}
	if config.frames < 0 {
		return fmt.Errorf("frame count cannot be negative")
	}
	if _, err := logrus.ParseLevel(config.logLevel); err != nil {
		return err
	}
	return nil
}

// parseSize parses "WxH".
func parseSize(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("invalid size %q: expected WxH", s)
	}
	w, errW := strconv.Atoi(ws)
	h, errH := strconv.Atoi(hs)
	if errW != nil || errH != nil || w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("invalid size %q: expected positive WxH", s)
	}
	return w, h, nil
}

// parseRate parses "N" or "N/D" and returns the matching time base.
func parseRate(s string) (frame.Rational, error) {
	num, den := s, "1"
	if n, d, ok := strings.Cut(s, "/"); ok {
		num, den = n, d
	}
	n, errN := strconv.Atoi(strings.TrimSpace(num))
	d, errD := strconv.Atoi(strings.TrimSpace(den))
	if errN != nil || errD != nil || n <= 0 || d <= 0 {
		return frame.Rational{}, fmt.Errorf("invalid frame rate %q", s)
	}
	return frame.Rational{Num: d, Den: n}, nil
}

// buildOptions layers the config file and the -opts string over the
// defaults.
func buildOptions(config *CLIConfig) (zoompan.Options, error) {
	opts := zoompan.DefaultOptions()
	if config.file != nil {
		if err := config.file.apply(&opts); err != nil {
			return opts, err
		}
	}
	if err := opts.Apply(config.opts); err != nil {
		return opts, err
	}
	return opts, nil
}

// setupSignalHandling cancels the context on interrupt.
func setupSignalHandling(cancel context.CancelFunc, logger *logrus.Entry) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt)

	go func() {
		sig := <-sigChan
		logger.WithField("signal", sig.String()).Warn("Received signal, stopping")
		cancel()
	}()
}

func openStreams(config *CLIConfig) (io.ReadCloser, io.WriteCloser, error) {
	var in io.ReadCloser = os.Stdin
	var out io.WriteCloser = os.Stdout
	if config.input != "-" {
		f, err := os.Open(config.input)
		if err != nil {
			return nil, nil, err
		}
		in = f
	}
	if config.output != "-" {
		f, err := os.Create(config.output)
		if err != nil {
			in.Close()
			return nil, nil, err
		}
		out = f
	}
	return in, out, nil
}

// main is the entry point for the zoompan command.
func main() {
	cliConfig, err := parseCLIFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	if cliConfig.help {
		printUsage()
		os.Exit(0)
	}
	if err := validateCLIConfig(cliConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		fmt.Fprintf(os.Stderr, "Use -help for usage information.\n")
		os.Exit(1)
	}

	level, _ := logrus.ParseLevel(cliConfig.logLevel)
	logrus.SetLevel(level)
	logrus.SetOutput(os.Stderr)
	logger := logrus.WithField("command", "zoompan")

	opts, err := buildOptions(cliConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid filter options: %v\n", err)
		os.Exit(1)
	}

	in, out, err := openStreams(cliConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open streams: %v\n", err)
		os.Exit(1)
	}
	defer in.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	setupSignalHandling(cancel, logger)

	stats, err := run(ctx, cliConfig, opts, in, out, logger)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	logger.WithFields(logrus.Fields{
		"frames_processed": stats.FramesProcessed,
		"frames_dropped":   stats.FramesDropped,
		"clamp_warnings":   stats.ClampWarnings,
		"schedule_repeats": stats.ScheduleRepeats,
	}).Info("Finished")
	if err != nil {
		fmt.Fprintf(os.Stderr, "zoompan failed: %v\n", err)
		os.Exit(1)
	}
}
