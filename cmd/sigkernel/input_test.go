package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sigkernel "github.com/tphakala/go-sigkernel"
)

func TestParseFloatList(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    []float64
		wantErr bool
	}{
		{"commas", "1,2,3", []float64{1, 2, 3}, false},
		{"spaces", "0 1 0.5", []float64{0, 1, 0.5}, false},
		{"mixed", " -1.5, 2e-1 ,\t3 ", []float64{-1.5, 0.2, 3}, false},
		{"single", "4", []float64{4}, false},
		{"empty", "", nil, true},
		{"only separators", " , ,", nil, true},
		{"not a number", "1,x,3", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseFloatList(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, errInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.InDeltaSlice(t, tt.want, got, 1e-15)
		})
	}
}

func TestDecodeConvolveInput_1D(t *testing.T) {
	signal, kernel, err := decodeConvolveInput([]byte(`{"signal": [1, 2, 3], "kernel": [0, 1, 0.5]}`))
	require.NoError(t, err)
	assert.Equal(t, []int{3}, signal.Shape)
	assert.Equal(t, []float64{1, 2, 3}, signal.Data)
	assert.Equal(t, []int{3}, kernel.Shape)
	assert.Equal(t, []float64{0, 1, 0.5}, kernel.Data)
}

func TestDecodeConvolveInput_2DJSON5(t *testing.T) {
	doc := `{
  // a 2x3 image
  signal: [[1, 2, 3], [4, 5, 6]],
  kernel: [[1, 0], [0, -1]]
}`
	signal, kernel, err := decodeConvolveInput([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, signal.Shape)
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, signal.Data)
	assert.Equal(t, []int{2, 2}, kernel.Shape)
	assert.Equal(t, []float64{1, 0, 0, -1}, kernel.Data)
}

func TestDecodeConvolveInput_Errors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr error
	}{
		{"malformed", `{"signal": [1, 2`, errInvalidInput},
		{"missing kernel", `{"signal": [1, 2]}`, errInvalidInput},
		{"scalar signal", `{"signal": 3, "kernel": [1]}`, errInvalidInput},
		{"empty kernel", `{"signal": [1, 2], "kernel": []}`, sigkernel.ErrEmptyInput},
		{"ragged rows", `{"signal": [[1, 2], [3]], "kernel": [[1]]}`, errInvalidInput},
		{"string element", `{"signal": [1, "2"], "kernel": [1]}`, errInvalidInput},
		{"mixed nesting", `{"signal": [[1, 2], 3], "kernel": [[1]]}`, errInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := decodeConvolveInput([]byte(tt.doc))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestReadConvolveInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pair.json5")
	require.NoError(t, os.WriteFile(path, []byte(`{"signal": [1, 2, 3], "kernel": [1]}`), 0o644))

	signal, kernel, err := readConvolveInput(path)
	require.NoError(t, err)
	assert.Equal(t, 3, signal.Size())
	assert.Equal(t, 1, kernel.Size())

	_, _, err = readConvolveInput(filepath.Join(t.TempDir(), "missing.json5"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read input file")
}
