package sigkernel

// Convolution defaults
const (
	defaultStep    = 1
	defaultPadding = 0
)

// Kernel shape parameters
const (
	defaultKeysAlpha = -0.5 // Catmull-Rom member of the Keys family
	keysInnerLimit   = 1.0  // Keys cubic switches pieces at |x| = 1
	keysOuterLimit   = 2.0  // and is zero from |x| = 2
	halfDivisor      = 2.0
)

// Kernel sampling grid used by the Dirac upsampler and the CLI
const (
	kernelGridStart = -1.0
	kernelGridEnd   = 1.0
)

// Channel count of an RGB image
const rgbChannels = 3

// Frequency response
const defaultResponsePoints = 512

// Relative tolerance when checking that measurement spacing is uniform
const spacingTolerance = 1e-9
