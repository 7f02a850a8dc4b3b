package main

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/viper"
	sigkernel "github.com/tphakala/go-sigkernel"
)

// Output formats understood by --output.
const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

// Upsampling methods understood by upsample --method.
const (
	methodDirac   = "dirac"
	methodProduct = "product"
)

var errInvalidSetting = errors.New("invalid setting")

// Settings is the merged view of flags, environment and config file.
type Settings struct {
	Verbose  bool             `mapstructure:"verbose"`
	Convolve ConvolveSettings `mapstructure:"convolve"`
	Kernel   KernelSettings   `mapstructure:"kernel"`
	Upsample UpsampleSettings `mapstructure:"upsample"`
}

// ConvolveSettings drives the convolve command.
type ConvolveSettings struct {
	Signal  string `mapstructure:"signal"`
	Kernel  string `mapstructure:"kernel"`
	Input   string `mapstructure:"input"`
	Mode    string `mapstructure:"mode"`
	Step    int    `mapstructure:"step"`
	Padding int    `mapstructure:"padding"`
	Output  string `mapstructure:"output"`
}

// KernelSettings drives the kernel command.
type KernelSettings struct {
	Name     string  `mapstructure:"name"`
	Size     int     `mapstructure:"size"`
	Width    float64 `mapstructure:"width"`
	Response bool    `mapstructure:"response"`
	Points   int     `mapstructure:"points"`
	List     bool    `mapstructure:"list"`
	Output   string  `mapstructure:"output"`
}

// UpsampleSettings drives the upsample command.
type UpsampleSettings struct {
	Ratio       int     `mapstructure:"ratio"`
	Kernel      string  `mapstructure:"kernel"`
	Method      string  `mapstructure:"method"`
	KernelSize  int     `mapstructure:"kernel_size"`
	KernelWidth float64 `mapstructure:"kernel_width"`
	BlockSize   int     `mapstructure:"block_size"`
	Margin      int     `mapstructure:"margin"`
}

// setDefaults registers default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("verbose", false)

	v.SetDefault("convolve.mode", string(sigkernel.ModeFull))
	v.SetDefault("convolve.step", 1)
	v.SetDefault("convolve.padding", 0)
	v.SetDefault("convolve.output", formatTable)

	v.SetDefault("kernel.name", sigkernel.KernelKeys)
	v.SetDefault("kernel.size", defaultKernelSize)
	v.SetDefault("kernel.width", 1.0)
	v.SetDefault("kernel.points", defaultResponsePoints)
	v.SetDefault("kernel.output", formatTable)

	v.SetDefault("upsample.ratio", defaultUpsampleRatio)
	v.SetDefault("upsample.kernel", sigkernel.KernelLinear)
	v.SetDefault("upsample.method", methodDirac)
	v.SetDefault("upsample.kernel_size", defaultKernelSize)
	v.SetDefault("upsample.kernel_width", 0.0)
	v.SetDefault("upsample.block_size", defaultBlockSize)
	v.SetDefault("upsample.margin", defaultBlockMargin)
}

// loadSettings unmarshals the current viper state.
func loadSettings(v *viper.Viper) (*Settings, error) {
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}
	return &s, nil
}

func checkOutput(format string) error {
	if !slices.Contains([]string{formatTable, formatJSON, formatYAML}, strings.ToLower(format)) {
		return fmt.Errorf("%w: output %q (want table, json or yaml)", errInvalidSetting, format)
	}
	return nil
}

// Config converts the settings into a convolution config.
func (c *ConvolveSettings) Config() (*sigkernel.Config, error) {
	mode, err := sigkernel.ParseMode(c.Mode)
	if err != nil {
		return nil, err
	}
	cfg := &sigkernel.Config{Step: c.Step, Padding: c.Padding, Mode: mode}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the convolve settings.
func (c *ConvolveSettings) Validate() error {
	if c.Input == "" && (c.Signal == "" || c.Kernel == "") {
		return fmt.Errorf("%w: need --input or both --signal and --kernel", errInvalidSetting)
	}
	if c.Input != "" && (c.Signal != "" || c.Kernel != "") {
		return fmt.Errorf("%w: --input cannot be combined with --signal/--kernel", errInvalidSetting)
	}
	if _, err := c.Config(); err != nil {
		return err
	}
	return checkOutput(c.Output)
}

// Validate checks the kernel settings.
func (k *KernelSettings) Validate() error {
	if k.List {
		return checkOutput(k.Output)
	}
	if _, err := sigkernel.KernelByName(k.Name); err != nil {
		return err
	}
	if k.Size < 1 {
		return fmt.Errorf("%w: %d", sigkernel.ErrInvalidKernelSize, k.Size)
	}
	if k.Width <= 0 {
		return fmt.Errorf("%w: %g", sigkernel.ErrInvalidWidth, k.Width)
	}
	if k.Response && k.Points < 1 {
		return fmt.Errorf("%w: points must be positive, got %d", errInvalidSetting, k.Points)
	}
	return checkOutput(k.Output)
}

// Validate checks the upsample settings.
func (u *UpsampleSettings) Validate() error {
	if u.Ratio < 1 {
		return fmt.Errorf("%w: %d", sigkernel.ErrInvalidRatio, u.Ratio)
	}
	if _, err := sigkernel.KernelByName(u.Kernel); err != nil {
		return err
	}
	switch strings.ToLower(u.Method) {
	case methodDirac:
		if u.KernelSize < 1 || u.KernelSize%2 == 0 {
			return fmt.Errorf("%w: kernel size %d must be odd and positive", sigkernel.ErrEvenKernelSize, u.KernelSize)
		}
		if u.KernelWidth < 0 {
			return fmt.Errorf("%w: %g", sigkernel.ErrInvalidWidth, u.KernelWidth)
		}
	case methodProduct:
		if u.BlockSize < 1 || u.Margin < 0 {
			return fmt.Errorf("%w: block size %d, margin %d", errInvalidSetting, u.BlockSize, u.Margin)
		}
	default:
		return fmt.Errorf("%w: method %q (want dirac or product)", errInvalidSetting, u.Method)
	}
	return nil
}

// diracWidth returns the kernel width for Dirac upsampling. Zero selects the
// width at which one kernel unit spans ratio output samples.
func (u *UpsampleSettings) diracWidth() float64 {
	switch {
	case u.KernelWidth > 0:
		return u.KernelWidth
	case u.KernelSize < 2:
		return 1
	default:
		return float64(u.Ratio) * kernelGridSpan / float64(u.KernelSize-1)
	}
}
