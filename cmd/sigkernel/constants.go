package main

const (
	defaultKernelSize     = 9
	defaultResponsePoints = 512
	defaultUpsampleRatio  = 2

	// Product upsampling works on blocks of input samples, each widened by
	// margin samples on both sides.
	defaultBlockSize   = 256
	defaultBlockMargin = 16

	// Width of the [-1, 1] grid kernels are sampled on.
	kernelGridSpan = 2.0

	// Sample format constants
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32

	maxInt16 = 32767.0
	maxInt24 = 8388607.0
	maxInt32 = 2147483647.0

	wavPCMFormat = 1

	minUpsampleArgs = 2
	tablePadding    = 2
)
