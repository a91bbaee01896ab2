// Copyright 2013 Travis Keep. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file or
// at http://opensource.org/licenses/BSD-3-Clause.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/coregx/coregex"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

var errBatchProblems = errors.New("batch: some queries failed or did not match")

// batchLine is a query, optionally followed by its expected position and a
// comment.
var batchLine = coregex.MustCompile(`^\s*(\d+)(?:\s+(\d+))?\s*(?:#.*)?$`)

type batchEntry struct {
	line     int
	query    string
	expected *int64
}

type batchResult struct {
	Line     int    `json:"line" yaml:"line"`
	Query    string `json:"query" yaml:"query"`
	Position int64  `json:"position" yaml:"position"`
	Expected *int64 `json:"expected,omitempty" yaml:"expected,omitempty"`
	Error    string `json:"error,omitempty" yaml:"error,omitempty"`
}

func (r batchResult) mismatched() bool {
	return r.Error == "" && r.Expected != nil && *r.Expected != r.Position
}

func (a *app) batchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch FILE",
		Short: "Find every query listed in FILE, one per line; - reads stdin",
		Long: `Each line of FILE holds a digit string, optionally followed by the
position it is expected at. Blank lines and text after # are ignored.
Files ending in .gz, .zst or .lz4 are decompressed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.openBatch(args[0])
			if err != nil {
				return err
			}
			defer r.Close()
			entries, err := parseBatch(r)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			return a.runBatch(cmd, entries)
		},
	}
	cmd.Flags().Int("workers", 0, "number of queries evaluated at once (default GOMAXPROCS)")
	cmd.Flags().Float64("rate", 0, "maximum queries started per second, 0 for no limit")
	bindFlag(a.config, "batch.workers", cmd.Flags(), "workers")
	bindFlag(a.config, "batch.rate", cmd.Flags(), "rate")
	return cmd
}

func (a *app) runBatch(cmd *cobra.Command, entries []batchEntry) error {
	start := time.Now()
	results := make([]batchResult, len(entries))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(max(a.config.GetInt("batch.workers"), 1))
	limiter := rate.NewLimiter(rate.Inf, 1)
	if qps := a.config.GetFloat64("batch.rate"); qps > 0 {
		limiter = rate.NewLimiter(rate.Limit(qps), 1)
	}
	for i, entry := range entries {
		g.Go(func() error {
			if err := limiter.Wait(ctx); err != nil {
				return err
			}
			queryStart := time.Now()
			pos, err := a.finder.Find(entry.query)
			a.logger.LogFind(ctx, entry.query, pos, time.Since(queryStart), err)
			results[i] = batchResult{
				Line:     entry.line,
				Query:    entry.query,
				Position: pos,
				Expected: entry.expected,
			}
			if err != nil {
				results[i].Error = err.Error()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var mismatched, failed int
	for _, r := range results {
		switch {
		case r.Error != "":
			failed++
		case r.mismatched():
			mismatched++
		}
	}
	a.logger.LogBatch(cmd.Context(), len(results), mismatched, failed, time.Since(start))

	err := a.printer.emit(results, func(w io.Writer) error {
		for _, r := range results {
			if _, err := fmt.Fprintf(w, "%d %s %s\n", r.Line, r.Query, a.batchStatus(r)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	if mismatched > 0 || failed > 0 {
		return fmt.Errorf("%w: %d mismatched, %d failed", errBatchProblems, mismatched, failed)
	}
	return nil
}

func (a *app) batchStatus(r batchResult) string {
	switch {
	case r.Error != "":
		return "error: " + r.Error
	case r.mismatched():
		return fmt.Sprintf("%s want %s", a.printer.formatInt(r.Position), a.printer.formatInt(*r.Expected))
	case r.Expected != nil:
		return a.printer.formatInt(r.Position) + " ok"
	}
	return a.printer.formatInt(r.Position)
}

func parseBatch(r io.Reader) ([]batchEntry, error) {
	var entries []batchEntry
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		m := batchLine.FindStringSubmatch(text)
		if m == nil {
			return nil, fmt.Errorf("line %d: malformed entry %q", line, text)
		}
		entry := batchEntry{line: line, query: m[1]}
		if m[2] != "" {
			expected, err := strconv.ParseInt(m[2], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: expected position: %w", line, err)
			}
			entry.expected = &expected
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// openBatch opens name for reading, decompressing by extension.
func (a *app) openBatch(name string) (io.ReadCloser, error) {
	var f io.ReadCloser
	if name == "-" {
		f = io.NopCloser(a.stdin)
	} else {
		file, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		f = file
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".gz":
		zr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		return &stackedReader{Reader: zr, closers: []io.Closer{zr, f}}, nil
	case ".zst":
		dec, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		zr := dec.IOReadCloser()
		return &stackedReader{Reader: zr, closers: []io.Closer{zr, f}}, nil
	case ".lz4":
		return &stackedReader{Reader: lz4.NewReader(f), closers: []io.Closer{f}}, nil
	}
	return f, nil
}

// stackedReader reads from a decompressor and closes it along with the
// file underneath.
type stackedReader struct {
	io.Reader
	closers []io.Closer
}

func (s *stackedReader) Close() error {
	var errs []error
	for _, c := range s.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}
