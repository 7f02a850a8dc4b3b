package engine

import (
	"github.com/tphakala/go-sigkernel/internal/simdops"
)

// Grid is a dense row-major 2D array.
type Grid[F simdops.Float] struct {
	Rows, Cols int
	Data       []F
}

// NewGrid allocates a zeroed rows×cols grid.
func NewGrid[F simdops.Float](rows, cols int) *Grid[F] {
	return &Grid[F]{Rows: rows, Cols: cols, Data: make([]F, rows*cols)}
}

// Row returns row r as a slice aliasing the grid data.
func (g *Grid[F]) Row(r int) []F {
	return g.Data[r*g.Cols : (r+1)*g.Cols]
}

// At returns the element at (r, c).
func (g *Grid[F]) At(r, c int) F {
	return g.Data[r*g.Cols+c]
}

// Set stores v at (r, c).
func (g *Grid[F]) Set(r, c int, v F) {
	g.Data[r*g.Cols+c] = v
}

// embed copies g into a zero grid of size rows×cols with its top-left corner at (top, left).
func (g *Grid[F]) embed(rows, cols, top, left int) *Grid[F] {
	out := NewGrid[F](rows, cols)
	for r := range g.Rows {
		copy(out.Row(top + r)[left:], g.Row(r))
	}
	return out
}

// Flip returns the grid reversed on both axes.
func (g *Grid[F]) Flip() *Grid[F] {
	out := NewGrid[F](g.Rows, g.Cols)
	n := len(g.Data)
	for i, v := range g.Data {
		out.Data[n-1-i] = v
	}
	return out
}

// windowSum returns Σ src[top+a][left+b] * k[a][b].
func windowSum[F simdops.Float](ops *simdops.Ops[F], src, k *Grid[F], top, left int) F {
	var sum F
	for a := range k.Rows {
		row := src.Row(top + a)
		sum += ops.Dot(row[left:left+k.Cols], k.Row(a))
	}
	return sum
}

// Full2D computes the strided full 2D convolution
//
//	out[i,j] = Σ_{a,b} image[i*step - a, j*step - b] * kernel[a,b]
//
// with out-of-image terms treated as zero. The output is
// ceil((H+2p+kh-1)/step) × ceil((W+2p+kw-1)/step); padding only extends the extent,
// matching Full1D on each axis.
func Full2D[F simdops.Float](image, kernel *Grid[F], step, padding int) *Grid[F] {
	kh, kw := kernel.Rows, kernel.Cols
	outH := FullLength(image.Rows, kh, step, padding)
	outW := FullLength(image.Cols, kw, step, padding)
	out := NewGrid[F](outH, outW)
	if outH <= 0 || outW <= 0 {
		return out
	}

	// Shift the image by (kh-1, kw-1) so every window index is non-negative and
	// size the buffer so every strided window fits.
	extH := max((outH-1)*step+kh, image.Rows+kh-1)
	extW := max((outW-1)*step+kw, image.Cols+kw-1)
	ext := image.embed(extH, extW, kh-1, kw-1)
	flipped := kernel.Flip()

	ops := simdops.For[F]()
	for i := range outH {
		for j := range outW {
			out.Set(i, j, windowSum(ops, ext, flipped, i*step, j*step))
		}
	}
	return out
}

// Valid2D computes the strided valid 2D convolution over the zero-padded image.
func Valid2D[F simdops.Float](image, kernel *Grid[F], step, padding int) (*Grid[F], error) {
	kh, kw := kernel.Rows, kernel.Cols
	outH := ValidLength(image.Rows, kh, step, padding)
	outW := ValidLength(image.Cols, kw, step, padding)
	if outH <= 0 || outW <= 0 {
		return nil, ErrKernelTooLarge
	}

	padded := image.embed(image.Rows+2*padding, image.Cols+2*padding, padding, padding)
	flipped := kernel.Flip()
	out := NewGrid[F](outH, outW)

	ops := simdops.For[F]()
	for i := range outH {
		for j := range outW {
			out.Set(i, j, windowSum(ops, padded, flipped, i*step, j*step))
		}
	}
	return out, nil
}

// StridedCorrelate2D slides the unflipped kernel over the zero-padded image with
// the given stride. The output is floor((H+2p-kh)/stride)+1 on each axis.
func StridedCorrelate2D[F simdops.Float](image, kernel *Grid[F], stride, padding int) (*Grid[F], error) {
	h, w := image.Rows+2*padding, image.Cols+2*padding
	if h < kernel.Rows || w < kernel.Cols {
		return nil, ErrKernelTooLarge
	}

	outH := (h-kernel.Rows)/stride + 1
	outW := (w-kernel.Cols)/stride + 1
	padded := image.embed(h, w, padding, padding)
	out := NewGrid[F](outH, outW)

	ops := simdops.For[F]()
	for i := range outH {
		for j := range outW {
			out.Set(i, j, windowSum(ops, padded, kernel, i*stride, j*stride))
		}
	}
	return out, nil
}
