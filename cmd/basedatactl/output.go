package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
)

const (
	formatTable = "table"
	formatJSON  = "json"

	timeLayout = "2006-01-02 15:04:05"
)

type printer struct {
	w    io.Writer
	json bool
}

func newPrinter(w io.Writer, format string) (*printer, error) {
	switch format {
	case formatTable:
		return &printer{w: w}, nil
	case formatJSON:
		return &printer{w: w, json: true}, nil
	default:
		return nil, fmt.Errorf("invalid format: %s (valid values: table, json)", format)
	}
}

// print renders rows under header, or encodes v when the format is json.
func (p *printer) print(v any, header table.Row, rows []table.Row) error {
	if p.json {
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}

	t := table.NewWriter()
	t.SetOutputMirror(p.w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(header)
	t.AppendRows(rows)
	t.Render()
	return nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format(timeLayout)
}
