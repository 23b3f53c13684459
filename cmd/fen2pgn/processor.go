// processor.go - Log conversion and output
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/jrosengarden/Claude-Chess-sub000/internal/chess"
	"github.com/jrosengarden/Claude-Chess-sub000/internal/config"
	"github.com/jrosengarden/Claude-Chess-sub000/internal/errors"
	"github.com/jrosengarden/Claude-Chess-sub000/internal/hashing"
	"github.com/jrosengarden/Claude-Chess-sub000/internal/notation"
	"github.com/jrosengarden/Claude-Chess-sub000/internal/output"
	"github.com/jrosengarden/Claude-Chess-sub000/internal/worker"
)

// maxBufferSize caps the pool's channel buffers.
const maxBufferSize = 100

// Stats counts what happened to the logs of one run.
type Stats struct {
	Logs       int // logs read
	Output     int // games written
	Duplicates int // games ending in a position already written
	Filtered   int // games rejected by the filters
	Failed     int // logs that could not be read or held no position
	Skipped    int // unresolved transitions over all logs
}

// Processor converts FEN logs to games and writes them.
type Processor struct {
	cfg      *config.Config
	detector *hashing.DuplicateDetector
	now      func() time.Time
}

// NewProcessor creates a processor for cfg. Duplicate detection is on
// when duplicates are suppressed or collected in a file.
func NewProcessor(cfg *config.Config) *Processor {
	p := &Processor{cfg: cfg, now: time.Now}
	if cfg.Duplicate.Suppress || cfg.Duplicate.DuplicateFile != nil {
		p.detector = hashing.NewDuplicateDetector(cfg.Duplicate.ExactMatch)
	}
	return p
}

// Run converts the logs on the worker pool and writes the games to
// cfg.OutputFile in input order.
//
// Conversion runs in parallel but results are consumed by this goroutine
// alone, so the duplicate detector and the writers need no locking.
func (p *Processor) Run(items []worker.WorkItem) (Stats, error) {
	cfg := p.cfg
	out := output.NewGameWriter(cfg.OutputFile, cfg)
	var dups output.GameWriter
	if cfg.Duplicate.DuplicateFile != nil {
		dups = output.NewGameWriter(cfg.Duplicate.DuplicateFile, cfg)
	}

	bufferSize := len(items)
	if bufferSize > maxBufferSize {
		bufferSize = maxBufferSize
	}
	pool := worker.NewPool(p.convert, worker.WithWorkers(cfg.Workers), worker.WithBufferSize(bufferSize))
	pool.Start()

	go func() {
		for i, item := range items {
			item.Index = i
			pool.Submit(item)
		}
		pool.Close()
	}()

	var stats Stats
	var writeErr error
	keep := func(err error) {
		if err != nil && writeErr == nil {
			writeErr = err
		}
	}

	worker.InOrder(pool.Results(), func(r worker.ProcessResult) {
		stats.Logs++
		stats.Skipped += len(r.Skipped)
		for _, err := range r.Skipped {
			cfg.Logf(2, "%v\n", err)
		}

		switch {
		case r.Error != nil:
			stats.Failed++
			cfg.Logf(1, "%s: %v\n", r.Source, r.Error)
		case !r.ShouldOutput:
			stats.Filtered++
			cfg.Logf(2, "%s: filtered out: %s\n", r.Source, r.Reason)
		case p.detector != nil && p.detector.CheckAndAdd(r.Game, r.Final):
			stats.Duplicates++
			cfg.Logf(2, "%s: duplicate\n", r.Source)
			if dups != nil {
				keep(dups.WriteGame(r.Game))
			}
		default:
			stats.Output++
			keep(out.WriteGame(r.Game))
		}
	})

	keep(out.Close())
	if dups != nil {
		keep(dups.Close())
	}
	return stats, writeErr
}

// convert reconstructs one log and applies the filters. It runs on a
// worker goroutine and touches nothing shared.
func (p *Processor) convert(item worker.WorkItem) worker.ProcessResult {
	result := worker.ProcessResult{Source: item.Source, Index: item.Index}

	lines := item.Lines
	if lines == nil {
		var err error
		if lines, err = readLines(item.Source); err != nil {
			result.Error = err
			return result
		}
	}

	res, err := notation.Reconstruct(lines, p.options(item.Source)...)
	if err != nil {
		result.Error = err
		return result
	}
	if res.Final == nil {
		result.Skipped = res.Skipped
		result.Error = errors.ErrEmptyLog
		return result
	}
	result.Game = res.Game
	result.Final = res.Final
	result.Skipped = res.Skipped

	result.ShouldOutput, result.Reason = applyFilters(res, p.cfg.Filter)
	if result.ShouldOutput {
		addAnnotations(res.Game, res.Final, p.cfg.Annotation)
	}
	return result
}

// options maps the configured headers onto reconstruction options.
func (p *Processor) options(source string) []notation.Option {
	h := p.cfg.Headers
	opts := []notation.Option{
		notation.WithSource(source),
		notation.WithNow(p.now),
		notation.WithTag(chess.EventTag, h.Event),
		notation.WithTag(chess.SiteTag, h.Site),
		notation.WithTag(chess.RoundTag, h.Round),
		notation.WithTag(chess.WhiteTag, h.White),
		notation.WithTag(chess.BlackTag, h.Black),
	}
	if h.Date != "" {
		opts = append(opts, notation.WithTag(chess.DateTag, h.Date))
	}
	return opts
}

// addAnnotations adds the requested tags to a game that will be written.
func addAnnotations(game *chess.Game, final *chess.Position, a *config.AnnotationConfig) {
	if a.AddPlyCount {
		game.SetTag(chess.PlyCountTag, strconv.Itoa(game.PlyCount()))
	}
	if a.AddHashTag {
		game.SetTag(chess.HashCodeTag, fmt.Sprintf("%016x", hashing.Key(final)))
	}
}

// readLines reads a FEN log file.
func readLines(path string) ([]string, error) {
	f, err := os.Open(path) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return scanLines(f, path)
}

func scanLines(r io.Reader, name string) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading %s", name)
	}
	return lines, nil
}

// collectInputs turns the command-line arguments into work items. No
// arguments, or "-", means standard input.
func collectInputs(args []string, stdin io.Reader) ([]worker.WorkItem, error) {
	if len(args) == 0 {
		args = []string{"-"}
	}

	items := make([]worker.WorkItem, 0, len(args))
	for _, arg := range args {
		if arg != "-" {
			items = append(items, worker.WorkItem{Source: arg})
			continue
		}
		lines, err := scanLines(stdin, "stdin")
		if err != nil {
			return nil, err
		}
		if lines == nil {
			lines = []string{}
		}
		items = append(items, worker.WorkItem{Source: "stdin", Lines: lines})
	}
	return items, nil
}
