package sigkernel

import (
	"fmt"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

// RGB is a colour image held as three equally sized channels.
type RGB struct {
	R, G, B *mat.Dense
}

// Channels returns the channels in R, G, B order.
func (img *RGB) Channels() [rgbChannels]*mat.Dense {
	return [rgbChannels]*mat.Dense{img.R, img.G, img.B}
}

// Dims returns the shared channel size.
func (img *RGB) Dims() (int, int) {
	return img.R.Dims()
}

// Validate checks that all three channels are present and agree in shape.
func (img *RGB) Validate() error {
	if img == nil || img.R == nil || img.G == nil || img.B == nil {
		return fmt.Errorf("%w: missing channel", ErrInvalidChannels)
	}
	h, w := img.R.Dims()
	for i, ch := range img.Channels() {
		if r, c := ch.Dims(); r != h || c != w {
			return fmt.Errorf("%w: channel %d is %dx%d, expected %dx%d", ErrInvalidChannels, i, r, c, h, w)
		}
	}
	return nil
}

// ApplyRGB runs fn on each channel concurrently and restacks the results.
// The first channel error is returned.
func ApplyRGB(img *RGB, fn func(channel *mat.Dense) (*mat.Dense, error)) (*RGB, error) {
	if err := img.Validate(); err != nil {
		return nil, err
	}

	var out [rgbChannels]*mat.Dense
	var g errgroup.Group
	for i, ch := range img.Channels() {
		g.Go(func() error {
			res, err := fn(ch)
			if err != nil {
				return fmt.Errorf("channel %d: %w", i, err)
			}
			out[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &RGB{R: out[0], G: out[1], B: out[2]}, nil
}

// ImageInterpolator upsamples one channel by an integer ratio.
// ImageInterpolate1D is one.
type ImageInterpolator func(image mat.Matrix, kernel Kernel, ratio int) (*mat.Dense, error)

// RGBImageInterpolate applies interpolate to every channel. A nil
// interpolate selects ImageInterpolate1D.
func RGBImageInterpolate(img *RGB, kernel Kernel, ratio int, interpolate ImageInterpolator) (*RGB, error) {
	if interpolate == nil {
		interpolate = ImageInterpolate1D
	}
	return ApplyRGB(img, func(ch *mat.Dense) (*mat.Dense, error) {
		return interpolate(ch, kernel, ratio)
	})
}

// RGBImageInterpolate2D applies ImageInterpolate2D to every channel. It is
// separate from RGBImageInterpolate because 2D kernels take points.
func RGBImageInterpolate2D(img *RGB, kernel Kernel2D, ratio int, eps float64) (*RGB, error) {
	return ApplyRGB(img, func(ch *mat.Dense) (*mat.Dense, error) {
		return ImageInterpolate2D(ch, kernel, ratio, eps)
	})
}

// RGBDownsample applies Downsample to every channel.
func RGBDownsample(img *RGB, size int) (*RGB, error) {
	return ApplyRGB(img, func(ch *mat.Dense) (*mat.Dense, error) {
		return Downsample(ch, size)
	})
}
