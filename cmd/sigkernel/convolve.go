package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	sigkernel "github.com/tphakala/go-sigkernel"
	"go.uber.org/zap"
)

var convolveCmd = &cobra.Command{
	Use:   "convolve",
	Short: "Convolve a 1D or 2D signal with a kernel",
	Long: `Convolve a signal with a kernel in full or valid mode.

The signal and kernel come either from --signal/--kernel as comma separated
lists (1D) or from a JSON5 file given with --input:

  {
    signal: [[1, 2, 3], [4, 5, 6]],  // rows of a 2D image
    kernel: [[1, 0], [0, -1]],
  }`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		settings, err := loadSettings(viper.GetViper())
		if err != nil {
			return err
		}
		return runConvolve(cmd, &settings.Convolve)
	},
}

func init() {
	f := convolveCmd.Flags()
	f.String("signal", "", "comma separated 1D signal")
	f.String("kernel", "", "comma separated 1D kernel")
	f.StringP("input", "i", "", "JSON5 file holding signal and kernel arrays")
	f.String("mode", string(sigkernel.ModeFull), "boundary mode (full, valid)")
	f.Int("step", 1, "output stride")
	f.Int("padding", 0, "zero padding added to each end of every axis")
	f.StringP("output", "o", formatTable, "output format (table, json, yaml)")
}

// convolveResult is the printed outcome of a convolution.
type convolveResult struct {
	Mode    string      `json:"mode" yaml:"mode"`
	Step    int         `json:"step" yaml:"step"`
	Padding int         `json:"padding" yaml:"padding"`
	Shape   []int       `json:"shape" yaml:"shape"`
	Rows    [][]float64 `json:"rows" yaml:"rows"`
}

func (r *convolveResult) sections() []tableSection {
	cols := 0
	if len(r.Rows) > 0 {
		cols = len(r.Rows[0])
	}
	header := make([]string, cols+1)
	header[0] = "row"
	for j := range cols {
		header[j+1] = strconv.Itoa(j)
	}
	rows := make([][]string, len(r.Rows))
	for i, row := range r.Rows {
		rows[i] = append([]string{strconv.Itoa(i)}, formatRow(row)...)
	}
	return []tableSection{{header: header, rows: rows}}
}

func runConvolve(cmd *cobra.Command, s *ConvolveSettings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	cfg, err := s.Config()
	if err != nil {
		return err
	}

	signal, kernel, err := convolveOperands(s)
	if err != nil {
		return err
	}

	logger.Debug("convolving",
		zap.Ints("signal_shape", signal.Shape),
		zap.Ints("kernel_shape", kernel.Shape),
		zap.String("mode", string(cfg.Mode)),
		zap.Int("step", cfg.Step),
		zap.Int("padding", cfg.Padding),
	)

	out, err := sigkernel.Convolve(signal, kernel, cfg)
	if err != nil {
		return fmt.Errorf("convolution failed: %w", err)
	}

	return writeResult(cmd.OutOrStdout(), s.Output, newConvolveResult(out, cfg))
}

func convolveOperands(s *ConvolveSettings) (signal, kernel *sigkernel.Array, err error) {
	if s.Input != "" {
		return readConvolveInput(s.Input)
	}
	x, err := parseFloatList(s.Signal)
	if err != nil {
		return nil, nil, fmt.Errorf("signal: %w", err)
	}
	k, err := parseFloatList(s.Kernel)
	if err != nil {
		return nil, nil, fmt.Errorf("kernel: %w", err)
	}
	return sigkernel.Vector(x), sigkernel.Vector(k), nil
}

func newConvolveResult(out *sigkernel.Array, cfg *sigkernel.Config) *convolveResult {
	res := &convolveResult{
		Mode:    string(cfg.Mode),
		Step:    cfg.Step,
		Padding: cfg.Padding,
		Shape:   out.Shape,
	}
	if out.NDim() == 1 {
		res.Rows = [][]float64{out.Data}
		return res
	}
	cols := out.Shape[1]
	for i := range out.Shape[0] {
		res.Rows = append(res.Rows, out.Data[i*cols:(i+1)*cols])
	}
	return res
}
