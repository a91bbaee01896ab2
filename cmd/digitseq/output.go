// Copyright 2013 Travis Keep. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file or
// at http://opensource.org/licenses/BSD-3-Clause.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// printer writes command results as text, JSON or YAML.
type printer struct {
	w      io.Writer
	format string
	number *message.Printer
}

func newPrinter(w io.Writer, format string, group bool) (*printer, error) {
	format = strings.ToLower(format)
	switch format {
	case "text", "json", "yaml":
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
	p := &printer{w: w, format: format}
	if group {
		p.number = message.NewPrinter(message.MatchLanguage("en"))
	}
	return p, nil
}

// formatInt renders n for text output, with thousands separators when
// grouping is on.
func (p *printer) formatInt(n int64) string {
	if p.number != nil {
		return p.number.Sprintf("%d", n)
	}
	return strconv.FormatInt(n, 10)
}

// emit writes v as JSON or YAML, or calls text for text output.
func (p *printer) emit(v any, text func(w io.Writer) error) error {
	switch p.format {
	case "json":
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(p.w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return text(p.w)
}
