package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	sigkernel "github.com/tphakala/go-sigkernel"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
)

var kernelCmd = &cobra.Command{
	Use:   "kernel",
	Short: "Sample a named kernel and optionally its frequency response",
	Long: `Sample a named interpolation kernel at --size evenly spaced points on
[-1, 1] for the given --width. With --response the sampled taps are also
analysed in frequency. Use --list to print the available kernel names.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		settings, err := loadSettings(viper.GetViper())
		if err != nil {
			return err
		}
		return runKernel(cmd, &settings.Kernel)
	},
}

func init() {
	f := kernelCmd.Flags()
	f.String("name", sigkernel.KernelKeys, "kernel name")
	f.Int("size", defaultKernelSize, "number of taps sampled on [-1, 1]")
	f.Float64("width", 1, "kernel width")
	f.Bool("response", false, "also print the frequency response of the taps")
	f.Int("points", defaultResponsePoints, "frequency response points")
	f.Bool("list", false, "list kernel names and exit")
	f.StringP("output", "o", formatTable, "output format (table, json, yaml)")
}

type kernelList struct {
	Kernels []string `json:"kernels" yaml:"kernels"`
}

func (l *kernelList) sections() []tableSection {
	rows := make([][]string, len(l.Kernels))
	for i, name := range l.Kernels {
		rows[i] = []string{name}
	}
	return []tableSection{{header: []string{"kernel"}, rows: rows}}
}

type responseResult struct {
	Frequencies []float64 `json:"frequencies" yaml:"frequencies"`
	MagnitudeDB []float64 `json:"magnitude_db" yaml:"magnitude_db"`
	Phase       []float64 `json:"phase" yaml:"phase"`
}

// kernelResult holds the sampled taps and, optionally, their response.
type kernelResult struct {
	Name     string          `json:"name" yaml:"name"`
	Width    float64         `json:"width" yaml:"width"`
	X        []float64       `json:"x" yaml:"x"`
	Taps     []float64       `json:"taps" yaml:"taps"`
	Sum      float64         `json:"sum" yaml:"sum"`
	Response *responseResult `json:"response,omitempty" yaml:"response,omitempty"`
}

func (r *kernelResult) sections() []tableSection {
	taps := tableSection{header: []string{"x", r.Name}}
	for i := range r.X {
		taps.rows = append(taps.rows, []string{formatFloat(r.X[i]), formatFloat(r.Taps[i])})
	}
	taps.rows = append(taps.rows, []string{"sum", formatFloat(r.Sum)})
	if r.Response == nil {
		return []tableSection{taps}
	}

	resp := tableSection{header: []string{"frequency", "magnitude_db", "phase"}}
	for i := range r.Response.Frequencies {
		resp.rows = append(resp.rows, formatRow([]float64{
			r.Response.Frequencies[i], r.Response.MagnitudeDB[i], r.Response.Phase[i],
		}))
	}
	return []tableSection{taps, resp}
}

func runKernel(cmd *cobra.Command, s *KernelSettings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if s.List {
		return writeResult(cmd.OutOrStdout(), s.Output, &kernelList{Kernels: sigkernel.KernelNames()})
	}

	res, err := sampleKernel(s)
	if err != nil {
		return err
	}
	logger.Debug("sampled kernel",
		zap.String("name", res.Name),
		zap.Int("taps", len(res.Taps)),
		zap.Float64("sum", res.Sum),
	)
	return writeResult(cmd.OutOrStdout(), s.Output, res)
}

// sampleKernel evaluates the named kernel on its [-1, 1] grid.
func sampleKernel(s *KernelSettings) (*kernelResult, error) {
	kernel, err := sigkernel.KernelByName(s.Name)
	if err != nil {
		return nil, err
	}
	taps, err := sigkernel.KernelSamples(kernel, s.Size, s.Width)
	if err != nil {
		return nil, fmt.Errorf("failed to sample %s: %w", s.Name, err)
	}

	x := []float64{0}
	if s.Size > 1 {
		x = floats.Span(make([]float64, s.Size), -1, 1)
	}
	res := &kernelResult{
		Name:  s.Name,
		Width: s.Width,
		X:     x,
		Taps:  taps,
		Sum:   floats.Sum(taps),
	}

	if s.Response {
		resp, err := sigkernel.FrequencyResponse(taps, s.Points)
		if err != nil {
			return nil, fmt.Errorf("frequency response: %w", err)
		}
		res.Response = &responseResult{
			Frequencies: resp.Frequencies,
			MagnitudeDB: resp.MagnitudeDB,
			Phase:       resp.Phase,
		}
	}
	return res, nil
}
