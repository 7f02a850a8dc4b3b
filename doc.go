// Package sigkernel provides discrete convolution and kernel-based
// interpolation for 1D signals and 2D images in pure Go.
//
// # Features
//
//   - Full and valid convolution in 1D and 2D with stride and zero padding
//   - Strided cross-correlation, box and Gaussian blur kernels, and pooling
//     downsamplers for images
//   - An interpolation kernel library (sample-and-hold, nearest neighbour,
//     linear, windowed sinc, Keys bicubic, Lanczos, Kaiser-windowed sinc) in
//     1D and 2D form
//   - Convolution- and product-based interpolation of series and images,
//     including a Dirac-comb upsampler
//   - SIMD-accelerated dot products via github.com/tphakala/simd and an FFT
//     path for long kernels
//
// # Quick Start
//
// Convolve two sequences:
//
//	out, err := sigkernel.Convolve1D([]float64{1, 2, 3}, []float64{0, 1, 0.5}, nil)
//	// out == [0 1 2.5 4 1.5]
//
// Configure step, padding and mode:
//
//	cfg := &sigkernel.Config{Step: 2, Padding: 1, Mode: sigkernel.ModeValid}
//	out, err := sigkernel.Convolve2D(image, kernel, cfg)
//
// Upsample an image by 4 with the Keys kernel:
//
//	big, err := sigkernel.ImageInterpolate1D(image, sigkernel.Keys, 4)
//
// # Boundary policy
//
// Full mode evaluates out[n] = Σ_k x[n·step - k]·k[k] with every term that
// falls outside the signal treated as zero. Padding never changes the value
// of a full-mode output sample; it only extends the output to
// ceil((N + 2p + M - 1) / step) samples. 2D full mode applies the same rule
// on each axis. Valid mode slides the reversed (in 2D, flipped) kernel over
// the zero-padded signal and yields ceil((N + 2p - M + 1) / step) samples;
// a non-positive extent is [ErrKernelTooLarge].
//
// # Thread Safety
//
// Every function is a pure function of its arguments and may be called
// concurrently. Inputs are never modified.
package sigkernel
