package main

import (
	"flag"
	"testing"

	"github.com/jrosengarden/Claude-Chess-sub000/internal/config"
	"github.com/jrosengarden/Claude-Chess-sub000/internal/errors"
	"github.com/jrosengarden/Claude-Chess-sub000/internal/testutil"
)

// setFlag sets a command-line flag for the duration of the test.
func setFlag(t *testing.T, name, value string) {
	t.Helper()
	f := flag.Lookup(name)
	if f == nil {
		t.Fatalf("no flag %q", name)
	}
	old := f.Value.String()
	if err := f.Value.Set(value); err != nil {
		t.Fatalf("setting -%s=%s: %v", name, value, err)
	}
	t.Cleanup(func() {
		f.Value.Set(old) //nolint:errcheck // restoring a value the flag produced
	})
}

// withFlags sets the given flags and returns the set map applyFlags expects.
func withFlags(t *testing.T, values map[string]string) map[string]bool {
	t.Helper()
	set := make(map[string]bool, len(values))
	for name, value := range values {
		setFlag(t, name, value)
		set[name] = true
	}
	return set
}

func TestApplyFlags_Defaults(t *testing.T) {
	cfg := config.NewConfig()
	want := config.NewConfig()

	testutil.AssertNoError(t, applyFlags(cfg, map[string]bool{}), "applyFlags")
	testutil.AssertDiff(t, want.Output, cfg.Output)
	testutil.AssertDiff(t, want.Headers, cfg.Headers)
	testutil.AssertDiff(t, want.Filter, cfg.Filter)
	testutil.AssertDiff(t, want.Annotation, cfg.Annotation)
	testutil.AssertEqual(t, cfg.Verbosity, 1)
}

func TestApplyFlags_KeepsFileValues(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Headers.White = "From File"
	cfg.Output.MaxLineLength = 120

	testutil.AssertNoError(t, applyFlags(cfg, map[string]bool{}), "applyFlags")
	testutil.AssertEqual(t, cfg.Headers.White, "From File")
	testutil.AssertEqual(t, cfg.Output.MaxLineLength, uint(120))
}

func TestApplyFlags_Output(t *testing.T) {
	set := withFlags(t, map[string]string{
		"W":             "lalg",
		"w":             "60",
		"J":             "true",
		"7":             "true",
		"nochecks":      "true",
		"nomovenumbers": "true",
	})
	cfg := config.NewConfig()

	testutil.AssertNoError(t, applyFlags(cfg, set), "applyFlags")
	testutil.AssertEqual(t, cfg.Output.Format, config.LALG)
	testutil.AssertEqual(t, cfg.Output.MaxLineLength, uint(60))
	testutil.AssertTrue(t, cfg.Output.JSONFormat, "JSON")
	testutil.AssertEqual(t, cfg.Output.TagFormat, config.SevenTagRoster)
	testutil.AssertFalse(t, cfg.Output.KeepChecks, "checks")
	testutil.AssertFalse(t, cfg.Output.KeepMoveNumbers, "move numbers")
	testutil.AssertTrue(t, cfg.Output.KeepResults, "results")
}

func TestApplyFlags_BadFormat(t *testing.T) {
	set := withFlags(t, map[string]string{"W": "figurine"})
	err := applyFlags(config.NewConfig(), set)
	testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)
}

func TestApplyFlags_Headers(t *testing.T) {
	set := withFlags(t, map[string]string{
		"event": "Club Night",
		"white": "Alice",
		"date":  "2025.06.01",
	})
	cfg := config.NewConfig()

	testutil.AssertNoError(t, applyFlags(cfg, set), "applyFlags")
	testutil.AssertEqual(t, cfg.Headers.Event, "Club Night")
	testutil.AssertEqual(t, cfg.Headers.White, "Alice")
	testutil.AssertEqual(t, cfg.Headers.Date, "2025.06.01")
	testutil.AssertEqual(t, cfg.Headers.Black, "AI")
}

func TestApplyFlags_Filters(t *testing.T) {
	set := withFlags(t, map[string]string{
		"minply":    "10",
		"checkmate": "true",
		"strict":    "true",
		"D":         "true",
		"exact":     "true",
		"plycount":  "true",
		"v":         "2",
		"workers":   "3",
	})
	cfg := config.NewConfig()

	testutil.AssertNoError(t, applyFlags(cfg, set), "applyFlags")
	testutil.AssertTrue(t, cfg.Filter.CheckPlyBounds, "ply bounds")
	testutil.AssertEqual(t, cfg.Filter.LowerPlyBound, uint(10))
	testutil.AssertEqual(t, cfg.Filter.UpperPlyBound, ^uint(0))
	testutil.AssertTrue(t, cfg.Filter.MatchCheckmate, "checkmate")
	testutil.AssertFalse(t, cfg.Filter.KeepBrokenGames, "strict")
	testutil.AssertTrue(t, cfg.Duplicate.Suppress, "suppress")
	testutil.AssertTrue(t, cfg.Duplicate.ExactMatch, "exact")
	testutil.AssertTrue(t, cfg.Annotation.AddPlyCount, "ply count")
	testutil.AssertEqual(t, cfg.Verbosity, 2)
	testutil.AssertEqual(t, cfg.Workers, 3)
	testutil.AssertNoError(t, cfg.Validate(), "Validate")
}

func TestApplyFlags_Quiet(t *testing.T) {
	set := withFlags(t, map[string]string{"s": "true", "v": "2"})
	cfg := config.NewConfig()

	testutil.AssertNoError(t, applyFlags(cfg, set), "applyFlags")
	testutil.AssertEqual(t, cfg.Verbosity, 0)
}
