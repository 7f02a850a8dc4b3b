package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	json "github.com/KevinWang15/go-json5"
	sigkernel "github.com/tphakala/go-sigkernel"
)

var errInvalidInput = errors.New("invalid input")

// parseFloatList parses a comma or whitespace separated list of numbers.
func parseFloatList(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: empty list", errInvalidInput)
	}
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: element %d: %w", errInvalidInput, i, err)
		}
		out[i] = v
	}
	return out, nil
}

// convolveInput is the document read by convolve --input. Signal and
// kernel are either flat arrays (1D) or arrays of equal-length rows (2D).
type convolveInput struct {
	Signal any `json:"signal"`
	Kernel any `json:"kernel"`
}

// decodeConvolveInput parses a JSON5 document holding a signal and a kernel.
func decodeConvolveInput(data []byte) (signal, kernel *sigkernel.Array, err error) {
	var in convolveInput
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", errInvalidInput, err)
	}
	if signal, err = toArray(in.Signal); err != nil {
		return nil, nil, fmt.Errorf("signal: %w", err)
	}
	if kernel, err = toArray(in.Kernel); err != nil {
		return nil, nil, fmt.Errorf("kernel: %w", err)
	}
	return signal, kernel, nil
}

// readConvolveInput loads and decodes a JSON5 input file.
func readConvolveInput(path string) (signal, kernel *sigkernel.Array, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read input file: %w", err)
	}
	return decodeConvolveInput(data)
}

// toArray converts a decoded JSON value into a 1D or 2D array.
func toArray(v any) (*sigkernel.Array, error) {
	items, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected an array, got %T", errInvalidInput, v)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: empty array", sigkernel.ErrEmptyInput)
	}

	if _, nested := items[0].([]any); !nested {
		row, err := toFloats(items)
		if err != nil {
			return nil, err
		}
		return sigkernel.Vector(row), nil
	}

	var data []float64
	cols := -1
	for i, item := range items {
		inner, ok := item.([]any)
		if !ok {
			return nil, fmt.Errorf("%w: row %d is not an array", errInvalidInput, i)
		}
		row, err := toFloats(inner)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		if cols >= 0 && len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d values, expected %d", errInvalidInput, i, len(row), cols)
		}
		cols = len(row)
		data = append(data, row...)
	}
	return sigkernel.NewArray([]int{len(items), cols}, data)
}

func toFloats(items []any) ([]float64, error) {
	out := make([]float64, len(items))
	for i, item := range items {
		f, ok := item.(float64)
		if !ok {
			return nil, fmt.Errorf("%w: element %d is %T, not a number", errInvalidInput, i, item)
		}
		out[i] = f
	}
	return out, nil
}
