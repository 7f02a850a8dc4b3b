package sigkernel

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Array is a dense row-major array of one or two dimensions. It lets
// Convolve accept signals and kernels whose dimensionality is only known at
// run time.
type Array struct {
	Shape []int
	Data  []float64
}

// NewArray checks that data holds exactly the number of elements shape
// describes.
func NewArray(shape []int, data []float64) (*Array, error) {
	size := 1
	for _, d := range shape {
		if d < 0 {
			return nil, fmt.Errorf("%w: negative dimension in shape %v", ErrInvalidShape, shape)
		}
		size *= d
	}
	if size != len(data) {
		return nil, fmt.Errorf("%w: shape %v needs %d elements, got %d", ErrInvalidShape, shape, size, len(data))
	}
	return &Array{Shape: append([]int(nil), shape...), Data: data}, nil
}

// Vector wraps a 1D signal.
func Vector(data []float64) *Array {
	return &Array{Shape: []int{len(data)}, Data: data}
}

// FromDense copies a matrix into a 2D array.
func FromDense(m mat.Matrix) *Array {
	r, c := m.Dims()
	data := make([]float64, 0, r*c)
	for i := range r {
		for j := range c {
			data = append(data, m.At(i, j))
		}
	}
	return &Array{Shape: []int{r, c}, Data: data}
}

// NDim returns the number of dimensions.
func (a *Array) NDim() int {
	return len(a.Shape)
}

// Size returns the number of elements.
func (a *Array) Size() int {
	return len(a.Data)
}

// Dense returns a 2D array as a matrix sharing its data.
func (a *Array) Dense() (*mat.Dense, error) {
	if a.NDim() != 2 {
		return nil, fmt.Errorf("%w: %d-D array is not a matrix", ErrUnsupportedDimension, a.NDim())
	}
	if a.Shape[0] == 0 || a.Shape[1] == 0 {
		return nil, fmt.Errorf("%w: shape %v", ErrEmptyInput, a.Shape)
	}
	return mat.NewDense(a.Shape[0], a.Shape[1], a.Data), nil
}
