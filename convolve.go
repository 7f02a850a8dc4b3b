package sigkernel

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tphakala/go-sigkernel/internal/engine"
	"gonum.org/v1/gonum/mat"
)

// Mode selects which output positions a convolution computes.
type Mode string

const (
	// ModeFull computes every position where signal and kernel overlap at all.
	ModeFull Mode = "full"

	// ModeValid computes only positions where the kernel lies entirely
	// inside the padded signal.
	ModeValid Mode = "valid"
)

// Common errors returned by the package.
var (
	// ErrDimensionMismatch indicates signal and kernel differ in dimensionality.
	ErrDimensionMismatch = errors.New("signal and kernel dimensions differ")

	// ErrUnsupportedDimension indicates an array that is neither 1D nor 2D.
	ErrUnsupportedDimension = errors.New("unsupported number of dimensions")

	// ErrUnsupportedMode indicates a mode other than full or valid.
	ErrUnsupportedMode = errors.New("unsupported convolution mode")

	// ErrInvalidStep indicates a step below 1.
	ErrInvalidStep = errors.New("step must be at least 1")

	// ErrInvalidPadding indicates negative padding.
	ErrInvalidPadding = errors.New("padding must be non-negative")

	// ErrInvalidShape indicates an array whose shape and data disagree.
	ErrInvalidShape = errors.New("invalid array shape")

	// ErrEmptyInput indicates a missing or zero-length signal, kernel or image.
	ErrEmptyInput = errors.New("empty input")

	// ErrKernelTooLarge indicates a valid-mode or strided geometry with no
	// output positions.
	ErrKernelTooLarge = engine.ErrKernelTooLarge

	// ErrInvalidRatio indicates an interpolation ratio that is not a whole
	// number of at least 1.
	ErrInvalidRatio = errors.New("invalid interpolation ratio")

	// ErrLengthMismatch indicates x and y measurements of different lengths.
	ErrLengthMismatch = errors.New("measurement lengths differ")

	// ErrTooFewSamples indicates fewer than two measurements, so the sample
	// spacing cannot be inferred.
	ErrTooFewSamples = errors.New("at least two samples are required")

	// ErrNonUniformSpacing indicates measurements that are not evenly spaced.
	ErrNonUniformSpacing = errors.New("measurements are not uniformly spaced")

	// ErrEvenKernelSize indicates an even size where a centred kernel needs
	// an odd one.
	ErrEvenKernelSize = errors.New("kernel size must be odd")

	// ErrInvalidWidth indicates a non-positive kernel width or sigma.
	ErrInvalidWidth = errors.New("kernel width must be positive")

	// ErrInvalidKernelSize indicates a non-positive kernel or window size.
	ErrInvalidKernelSize = errors.New("invalid kernel size")

	// ErrInvalidFilter indicates low-pass design parameters that cannot be met.
	ErrInvalidFilter = errors.New("invalid filter parameters")

	// ErrUnknownKernel indicates a kernel name that is not registered.
	ErrUnknownKernel = errors.New("unknown kernel")

	// ErrInvalidChannels indicates RGB channels that are missing or differ in shape.
	ErrInvalidChannels = errors.New("invalid image channels")
)

// ParseMode converts "full" or "valid" (case-insensitive) to a Mode.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeFull, ModeValid:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedMode, s)
	}
}

// Config holds convolution parameters.
type Config struct {
	// Step is the spacing between computed output positions (stride).
	// Must be at least 1.
	Step int

	// Padding is the number of zeros added to both ends of every axis.
	Padding int

	// Mode selects full or valid convolution.
	Mode Mode
}

// DefaultConfig returns step 1, no padding, full mode.
func DefaultConfig() *Config {
	return &Config{Step: defaultStep, Padding: defaultPadding, Mode: ModeFull}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Step < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidStep, c.Step)
	}
	if c.Padding < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidPadding, c.Padding)
	}
	if c.Mode != ModeFull && c.Mode != ModeValid {
		return fmt.Errorf("%w: %q", ErrUnsupportedMode, c.Mode)
	}
	return nil
}

func resolveConfig(cfg *Config) (*Config, error) {
	if cfg == nil {
		return DefaultConfig(), nil
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// OutputLength returns the number of samples a convolution of an n-sample
// signal with an m-tap kernel produces along one axis. For valid mode a
// result of zero or less means the kernel does not fit. A nil config means
// DefaultConfig.
func OutputLength(n, m int, cfg *Config) (int, error) {
	cfg, err := resolveConfig(cfg)
	if err != nil {
		return 0, err
	}
	if cfg.Mode == ModeValid {
		return engine.ValidLength(n, m, cfg.Step, cfg.Padding), nil
	}
	return engine.FullLength(n, m, cfg.Step, cfg.Padding), nil
}

// Convolve convolves a 1D or 2D signal with a kernel of the same
// dimensionality. A nil config means DefaultConfig.
//
// The result has the signal's dimensionality. See the package
// documentation for the boundary policy of each mode.
func Convolve(signal, kernel *Array, cfg *Config) (*Array, error) {
	if signal == nil || kernel == nil {
		return nil, fmt.Errorf("%w: nil signal or kernel", ErrEmptyInput)
	}
	cfg, err := resolveConfig(cfg)
	if err != nil {
		return nil, err
	}
	if signal.NDim() != kernel.NDim() {
		return nil, fmt.Errorf("%w: signal is %d-D, kernel is %d-D",
			ErrDimensionMismatch, signal.NDim(), kernel.NDim())
	}

	switch signal.NDim() {
	case 1:
		out, err := Convolve1D(signal.Data, kernel.Data, cfg)
		if err != nil {
			return nil, err
		}
		return Vector(out), nil

	case 2:
		img, err := signal.Dense()
		if err != nil {
			return nil, err
		}
		k, err := kernel.Dense()
		if err != nil {
			return nil, err
		}
		out, err := Convolve2D(img, k, cfg)
		if err != nil {
			return nil, err
		}
		return FromDense(out), nil

	default:
		return nil, fmt.Errorf("%w: %d-D", ErrUnsupportedDimension, signal.NDim())
	}
}

// Convolve1D convolves a 1D signal with a kernel. A nil config means
// DefaultConfig.
func Convolve1D(signal, kernel []float64, cfg *Config) ([]float64, error) {
	return convolve1D(signal, kernel, cfg)
}

// Convolve1DFloat32 is like Convolve1D but for float32 samples.
func Convolve1DFloat32(signal, kernel []float32, cfg *Config) ([]float32, error) {
	return convolve1D(signal, kernel, cfg)
}

func convolve1D[F float32 | float64](signal, kernel []F, cfg *Config) ([]F, error) {
	cfg, err := resolveConfig(cfg)
	if err != nil {
		return nil, err
	}
	if len(signal) == 0 || len(kernel) == 0 {
		return nil, fmt.Errorf("%w: signal has %d samples, kernel has %d", ErrEmptyInput, len(signal), len(kernel))
	}

	if cfg.Mode == ModeValid {
		out, err := engine.Valid1D(signal, kernel, cfg.Step, cfg.Padding)
		if err != nil {
			return nil, fmt.Errorf("%w: %d-tap kernel, %d samples, padding %d",
				err, len(kernel), len(signal), cfg.Padding)
		}
		return out, nil
	}
	return engine.Full1D(signal, kernel, cfg.Step, cfg.Padding), nil
}

// Convolve2D convolves an image with a 2D kernel (true convolution, the
// kernel is flipped on both axes). A nil config means DefaultConfig.
func Convolve2D(image, kernel mat.Matrix, cfg *Config) (*mat.Dense, error) {
	cfg, err := resolveConfig(cfg)
	if err != nil {
		return nil, err
	}
	img, err := toGrid(image)
	if err != nil {
		return nil, err
	}
	k, err := toGrid(kernel)
	if err != nil {
		return nil, err
	}

	if cfg.Mode == ModeValid {
		out, err := engine.Valid2D(img, k, cfg.Step, cfg.Padding)
		if err != nil {
			return nil, fmt.Errorf("%w: %dx%d kernel, %dx%d image, padding %d",
				err, k.Rows, k.Cols, img.Rows, img.Cols, cfg.Padding)
		}
		return fromGrid(out), nil
	}
	return fromGrid(engine.Full2D(img, k, cfg.Step, cfg.Padding)), nil
}

// toGrid copies a matrix into the engine's row-major layout.
func toGrid(m mat.Matrix) (*engine.Grid[float64], error) {
	if m == nil {
		return nil, fmt.Errorf("%w: nil matrix", ErrEmptyInput)
	}
	r, c := m.Dims()
	if r == 0 || c == 0 {
		return nil, fmt.Errorf("%w: %dx%d matrix", ErrEmptyInput, r, c)
	}
	g := engine.NewGrid[float64](r, c)
	for i := range r {
		mat.Row(g.Row(i), i, m)
	}
	return g, nil
}

func fromGrid(g *engine.Grid[float64]) *mat.Dense {
	return mat.NewDense(g.Rows, g.Cols, g.Data)
}
