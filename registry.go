package sigkernel

import (
	"fmt"
	"slices"
	"strings"
)

// Kernel names accepted by KernelByName and Kernel2DByName.
const (
	KernelSampleHold = "sample-hold"
	KernelNearest    = "nearest"
	KernelLinear     = "linear"
	KernelSinc       = "sinc"
	KernelKeys       = "keys"
	KernelLanczos    = "lanczos"
	KernelKaiserSinc = "kaiser-sinc"
)

// Parameters of the named lanczos and kaiser-sinc kernels.
const (
	namedLanczosLobes    = 3.0
	namedKaiserSincAlpha = 4.0
	namedKaiserSincBeta  = 5.0
)

type namedKernel struct {
	k1 Kernel
	k2 Kernel2D
}

var kernelRegistry = map[string]namedKernel{
	KernelSampleHold: {SampleHold, SampleHold2D},
	KernelNearest:    {NearestNeighbor, NearestNeighbor2D},
	KernelLinear:     {Linear, Linear2D},
	KernelSinc:       {Sinc, Sinc2D},
	KernelKeys:       {Keys, Keys2D},
	KernelLanczos:    {Lanczos(namedLanczosLobes), Lanczos2D(namedLanczosLobes)},
	KernelKaiserSinc: {
		KaiserSinc(namedKaiserSincAlpha, namedKaiserSincBeta),
		KaiserSinc2D(namedKaiserSincAlpha, namedKaiserSincBeta),
	},
}

func lookupKernel(name string) (namedKernel, error) {
	nk, ok := kernelRegistry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return namedKernel{}, fmt.Errorf("%w: %q (known: %s)", ErrUnknownKernel, name, strings.Join(KernelNames(), ", "))
	}
	return nk, nil
}

// KernelByName returns the 1D kernel registered under name.
func KernelByName(name string) (Kernel, error) {
	nk, err := lookupKernel(name)
	if err != nil {
		return nil, err
	}
	return nk.k1, nil
}

// Kernel2DByName returns the 2D kernel registered under name.
func Kernel2DByName(name string) (Kernel2D, error) {
	nk, err := lookupKernel(name)
	if err != nil {
		return nil, err
	}
	return nk.k2, nil
}

// KernelNames lists the registered kernel names in sorted order.
func KernelNames() []string {
	names := make([]string, 0, len(kernelRegistry))
	for name := range kernelRegistry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
