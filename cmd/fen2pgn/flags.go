// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/jrosengarden/Claude-Chess-sub000/internal/config"
)

var (
	// Configuration file
	configFile  = flag.String("c", "", "YAML configuration file (flags override it)")
	printConfig = flag.Bool("print-config", false, "Print the effective configuration as YAML and exit")

	// Output options
	outputFile    = flag.String("o", "", "Output file (default: stdout)")
	appendOutput  = flag.Bool("a", false, "Append to output file instead of overwrite")
	sevenTagOnly  = flag.Bool("7", false, "Output only the seven tag roster")
	noTags        = flag.Bool("notags", false, "Don't output any tags")
	lineLength    = flag.Uint("w", 80, "Maximum line length")
	outputFormat  = flag.String("W", "san", "Move notation: san, lalg")
	jsonOutput    = flag.Bool("J", false, "Output in JSON format")
	noResults     = flag.Bool("noresults", false, "Don't output results")
	noChecks      = flag.Bool("nochecks", false, "Strip check and mate markers")
	noMoveNumbers = flag.Bool("nomovenumbers", false, "Don't output move numbers")

	// Headers
	eventTag = flag.String("event", "", "Event tag")
	siteTag  = flag.String("site", "", "Site tag")
	roundTag = flag.String("round", "", "Round tag")
	whiteTag = flag.String("white", "", "White player")
	blackTag = flag.String("black", "", "Black player")
	dateTag  = flag.String("date", "", "Date tag, YYYY.MM.DD (default: today)")

	// Duplicate detection
	suppressDuplicates = flag.Bool("D", false, "Suppress games ending in a position already output")
	duplicateFile      = flag.String("d", "", "Output duplicates to this file")
	exactDuplicates    = flag.Bool("exact", false, "Duplicates must also have the same number of moves")

	// Ply bounds
	minPly = flag.Uint("minply", 0, "Minimum ply count")
	maxPly = flag.Uint("maxply", 0, "Maximum ply count (0 = no limit)")

	// Ending and feature filters
	checkmateFilter      = flag.Bool("checkmate", false, "Only output games ending in checkmate")
	stalemateFilter      = flag.Bool("stalemate", false, "Only output games ending in stalemate")
	underpromotionFilter = flag.Bool("underpromotion", false, "Games with underpromotion")
	repetitionFilter     = flag.Bool("repetition", false, "Games with 3-fold repetition")
	fiftyMoveFilter      = flag.Bool("fifty", false, "Games reaching the 50-move rule")
	strictMode           = flag.Bool("strict", false, "Drop logs with unresolved transitions")

	// Annotations
	addPlyCount    = flag.Bool("plycount", false, "Add PlyCount tag")
	addFENComments = flag.Bool("fencomments", false, "Add FEN comment after each move")
	addHashcodeTag = flag.Bool("addhashcode", false, "Add HashCode tag")
	finalFEN       = flag.Bool("finalfen", false, "Include the final position in JSON output")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	verbosity = flag.Int("v", 1, "Verbosity: 0 silent, 1 summary, 2 every skipped transition")
	quiet     = flag.Bool("s", false, "Silent mode (same as -v 0)")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
	workers = flag.Int("workers", 0, "Number of logs converted in parallel (0 = number of CPUs)")
)

// applyFlags copies the flags given on the command line into cfg. Flags
// left at their defaults do not override values loaded from a
// configuration file.
func applyFlags(cfg *config.Config, set map[string]bool) error {
	if err := applyOutputFlags(cfg, set); err != nil {
		return err
	}
	applyHeaderFlags(cfg, set)
	applyDuplicateFlags(cfg, set)
	applyFilterFlags(cfg, set)
	applyAnnotationFlags(cfg, set)

	if set["v"] {
		cfg.Verbosity = *verbosity
	}
	if *quiet {
		cfg.Verbosity = 0
	}
	if set["workers"] && *workers > 0 {
		cfg.Workers = *workers
	}
	return nil
}

// applyOutputFlags configures notation, layout and tag output.
func applyOutputFlags(cfg *config.Config, set map[string]bool) error {
	switch {
	case *noTags:
		cfg.Output.TagFormat = config.NoTags
	case *sevenTagOnly:
		cfg.Output.TagFormat = config.SevenTagRoster
	}

	if set["W"] {
		format, err := config.ParseOutputFormat(*outputFormat)
		if err != nil {
			return err
		}
		cfg.Output.Format = format
	}
	if set["w"] {
		cfg.Output.MaxLineLength = *lineLength
	}
	if set["J"] {
		cfg.Output.JSONFormat = *jsonOutput
	}
	if *noResults {
		cfg.Output.KeepResults = false
	}
	if *noChecks {
		cfg.Output.KeepChecks = false
	}
	if *noMoveNumbers {
		cfg.Output.KeepMoveNumbers = false
	}
	return nil
}

// applyHeaderFlags sets the tag roster values.
func applyHeaderFlags(cfg *config.Config, set map[string]bool) {
	h := cfg.Headers
	for name, dst := range map[string]*string{
		"event": &h.Event,
		"site":  &h.Site,
		"round": &h.Round,
		"white": &h.White,
		"black": &h.Black,
		"date":  &h.Date,
	} {
		if set[name] {
			*dst = flag.Lookup(name).Value.String()
		}
	}
}

// applyDuplicateFlags configures duplicate detection settings.
func applyDuplicateFlags(cfg *config.Config, set map[string]bool) {
	if set["D"] {
		cfg.Duplicate.Suppress = *suppressDuplicates
	}
	if set["exact"] {
		cfg.Duplicate.ExactMatch = *exactDuplicates
	}
}

// applyFilterFlags configures game filter settings.
func applyFilterFlags(cfg *config.Config, set map[string]bool) {
	f := cfg.Filter
	if set["minply"] || set["maxply"] {
		f.CheckPlyBounds = true
		f.LowerPlyBound = *minPly
		f.UpperPlyBound = *maxPly
		if f.UpperPlyBound == 0 {
			f.UpperPlyBound = ^uint(0)
		}
	}
	if set["checkmate"] {
		f.MatchCheckmate = *checkmateFilter
	}
	if set["stalemate"] {
		f.MatchStalemate = *stalemateFilter
	}
	if set["underpromotion"] {
		f.MatchUnderpromotion = *underpromotionFilter
	}
	if set["repetition"] {
		f.CheckRepetition = *repetitionFilter
	}
	if set["fifty"] {
		f.CheckFiftyMoveRule = *fiftyMoveFilter
	}
	if set["strict"] {
		f.KeepBrokenGames = !*strictMode
	}
}

// applyAnnotationFlags configures the tags and comments added to games.
func applyAnnotationFlags(cfg *config.Config, set map[string]bool) {
	a := cfg.Annotation
	if set["plycount"] {
		a.AddPlyCount = *addPlyCount
	}
	if set["fencomments"] {
		a.AddFENComments = *addFENComments
	}
	if set["addhashcode"] {
		a.AddHashTag = *addHashcodeTag
	}
	if set["finalfen"] {
		a.OutputFEN = *finalFEN
	}
}

// setFlags returns the names of the flags given on the command line.
func setFlags() map[string]bool {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	return set
}
