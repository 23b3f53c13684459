// fen2pgn rebuilds PGN games from logs of FEN snapshots, one position per
// line, as written by a game session.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/jrosengarden/Claude-Chess-sub000/internal/config"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("fen2pgn version %s\n", programVersion)
		os.Exit(0)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *printConfig {
		if err := cfg.WriteYAML(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	var closers []io.Closer
	closers = append(closers, setupLogFile(cfg)...)
	closers = append(closers, setupOutputFile(cfg)...)
	closers = append(closers, setupDuplicateFile(cfg)...)
	defer func() {
		for _, c := range closers {
			c.Close() //nolint:errcheck,gosec // G104: cleanup on exit
		}
	}()

	items, err := collectInputs(flag.Args(), os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	stats, err := NewProcessor(cfg).Run(items)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		os.Exit(1)
	}

	reportStatistics(cfg, stats)
	if stats.Failed > 0 {
		os.Exit(1)
	}
}

// loadConfig builds the configuration: defaults, then the YAML file, then
// the flags given on the command line.
func loadConfig() (*config.Config, error) {
	cfg := config.NewConfig()
	if *configFile != "" {
		if err := cfg.LoadFile(*configFile); err != nil {
			return nil, err
		}
	}
	if err := applyFlags(cfg, setFlags()); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) []io.Closer {
	if *logFile == "" {
		return nil
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
	return []io.Closer{file}
}

// setupOutputFile configures the output file from the flags or, failing
// that, the configuration file.
func setupOutputFile(cfg *config.Config) []io.Closer {
	name := cfg.OutputFilename
	if *outputFile != "" {
		name = *outputFile
	}
	if name == "" {
		return nil
	}

	var file *os.File
	var err error
	if *appendOutput {
		file, err = os.OpenFile(name, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(name)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", name, err)
		os.Exit(1)
	}
	cfg.OutputFilename = name
	cfg.OutputFile = file
	return []io.Closer{file}
}

// setupDuplicateFile configures the duplicate output file.
func setupDuplicateFile(cfg *config.Config) []io.Closer {
	if *duplicateFile == "" {
		return nil
	}
	file, err := os.Create(*duplicateFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating duplicate file %s: %v\n", *duplicateFile, err)
		os.Exit(1)
	}
	cfg.Duplicate.DuplicateFile = file
	return []io.Closer{file}
}

// reportStatistics writes the run summary to the log.
func reportStatistics(cfg *config.Config, s Stats) {
	cfg.Logf(1, "%d game(s) output from %d log(s).\n", s.Output, s.Logs)
	if s.Duplicates > 0 {
		cfg.Logf(1, "%d duplicate(s).\n", s.Duplicates)
	}
	if s.Filtered > 0 {
		cfg.Logf(1, "%d game(s) filtered out.\n", s.Filtered)
	}
	if s.Skipped > 0 {
		cfg.Logf(1, "%d transition(s) could not be resolved.\n", s.Skipped)
	}
	if s.Failed > 0 {
		cfg.Logf(1, "%d log(s) failed.\n", s.Failed)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: fen2pgn [options] [fen-log-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Rebuilds PGN games from logs of FEN positions, one per line.\n")
	fmt.Fprintf(os.Stderr, "With no files, or \"-\", the log is read from standard input.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nMove notation (-W):\n")
	fmt.Fprintf(os.Stderr, "  san    Standard Algebraic Notation (default)\n")
	fmt.Fprintf(os.Stderr, "  lalg   Long algebraic (e2e4)\n")
}
