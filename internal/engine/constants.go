package engine

const (
	// Kernels at least this long are correlated through the FFT; the
	// direct sliding dot product wins below it.
	minKernelForFFT = 400

	// Smallest overlap-save FFT length.
	minFFTLength = 512

	// The FFT spans at least this many kernel lengths.
	fftKernelMultiple = 2

	// A real FFT of length n has n/2+1 distinct bins.
	realSpectrumDivisor = 2

	// Centred slices of a full convolution start at (length - 1)/2 of the
	// shorter operand, or of the kernel for Centered1D.
	sameCenterDivisor = 2
)
