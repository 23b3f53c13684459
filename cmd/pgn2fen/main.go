// pgn2fen plays the games in PGN files and writes the position after every
// move as a FEN log, one position per line, the form fen2pgn reads back.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jrosengarden/Claude-Chess-sub000/internal/config"
)

const programVersion = "0.1.0"

var (
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	splitDir   = flag.String("split", "", "Write each game's log to its own file in this directory")
	moveText   = flag.String("moves", "", "Movetext to convert instead of files, e.g. \"1. e4 e5 2. Nf3\"")
	logFile    = flag.String("l", "", "Write diagnostics to log file")
	verbosity  = flag.Int("v", 1, "Verbosity: 0 silent, 1 summary, 2 every game")
	silent     = flag.Bool("s", false, "Silent mode (same as -v 0)")
	help       = flag.Bool("h", false, "Show help")
	version    = flag.Bool("version", false, "Show version")
)

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}
	if *version {
		fmt.Printf("pgn2fen version %s\n", programVersion)
		os.Exit(0)
	}

	os.Exit(run())
}

func run() int {
	out, log := io.Writer(os.Stdout), io.Writer(os.Stderr)
	if *outputFile != "" {
		file, err := os.Create(*outputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
			return 1
		}
		defer file.Close() //nolint:errcheck // written through io.WriteString, which reports errors
		out = file
	}
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			return 1
		}
		defer file.Close() //nolint:errcheck // diagnostics only
		log = file
	}

	level := *verbosity
	if *silent {
		level = 0
	}
	cfg := config.NewConfigBuilder().
		WithOutput(out).
		WithLog(log).
		WithVerbosity(level).
		Build()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if *splitDir != "" {
		if err := os.MkdirAll(*splitDir, 0755); err != nil { //nolint:gosec // G301: output directory
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}

	conv := NewConverter(cfg, *splitDir)
	if err := convertInputs(conv, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	stats := conv.Stats()
	cfg.Logf(1, "%d game(s), %d position(s) written.\n", stats.Games, stats.Positions)
	if stats.Failed > 0 {
		cfg.Logf(1, "%d game(s) stopped at a move that could not be played.\n", stats.Failed)
		return 1
	}
	return 0
}

// convertInputs converts the -moves text, else the named files, else stdin.
func convertInputs(conv *Converter, files []string) error {
	if *moveText != "" {
		return conv.Convert(strings.NewReader(*moveText), "moves")
	}
	if len(files) == 0 {
		return conv.Convert(os.Stdin, "stdin")
	}
	for _, name := range files {
		if name == "-" {
			if err := conv.Convert(os.Stdin, "stdin"); err != nil {
				return err
			}
			continue
		}
		file, err := os.Open(name) //nolint:gosec // G304: user-named input
		if err != nil {
			return err
		}
		err = conv.Convert(file, name)
		file.Close() //nolint:errcheck,gosec // read-only
		if err != nil {
			return err
		}
	}
	return nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: pgn2fen [options] [pgn-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Plays PGN games and writes the FEN of the start position and of every\n")
	fmt.Fprintf(os.Stderr, "position after it, one per line. Games sharing an output are separated\n")
	fmt.Fprintf(os.Stderr, "by a blank line. With no files, or \"-\", PGN is read from standard input.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
