package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// tableSection is one block of a table rendering.
type tableSection struct {
	header []string
	rows   [][]string
}

// tabular results can be printed as aligned text tables.
type tabular interface {
	sections() []tableSection
}

// writeResult encodes v in the requested output format.
func writeResult(w io.Writer, format string, v tabular) error {
	switch strings.ToLower(format) {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			_ = enc.Close()
			return err
		}
		return enc.Close()
	default:
		return writeTable(w, v.sections())
	}
}

func writeTable(w io.Writer, sections []tableSection) error {
	tw := tabwriter.NewWriter(w, 0, 0, tablePadding, ' ', tabwriter.AlignRight)
	for i, s := range sections {
		if i > 0 {
			if _, err := fmt.Fprintln(tw); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(tw, strings.Join(s.header, "\t")+"\t"); err != nil {
			return err
		}
		for _, row := range s.rows {
			if _, err := fmt.Fprintln(tw, strings.Join(row, "\t")+"\t"); err != nil {
				return err
			}
		}
	}
	return tw.Flush()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

func formatRow(values []float64) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = formatFloat(v)
	}
	return out
}
