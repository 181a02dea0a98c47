package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tfce/config"
	"github.com/katalvlaran/tfce/tfce"
)

type runFlags struct {
	configPath string
	outputPath string
	format     string
	workers    int
}

// Result is the document written by the run command.
type Result struct {
	Exponents [2]float64      `yaml:"exponents" json:"exponents"`
	Summary   []ColumnSummary `yaml:"summary" json:"summary"`
	Columns   [][]float64     `yaml:"columns" json:"columns"`
}

// ColumnSummary describes one enhanced column.
type ColumnSummary struct {
	Column   int     `yaml:"column" json:"column"`
	Min      float64 `yaml:"min" json:"min"`
	Max      float64 `yaml:"max" json:"max"`
	Positive int     `yaml:"positive" json:"positive"`
	Negative int     `yaml:"negative" json:"negative"`
}

func newRunCmd(root *rootFlags) *cobra.Command {
	flags := &runFlags{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Enhance every column of a job and write the result",
		RunE: func(cmd *cobra.Command, args []string) error {
			// The result is rendered in memory; a failed run never touches
			// an existing output file.
			var buf bytes.Buffer
			if err := runJob(cmd.Context(), root, flags, &buf); err != nil {
				return err
			}
			if flags.outputPath == "" {
				_, err := cmd.OutOrStdout().Write(buf.Bytes())
				return err
			}
			return replaceFile(flags.outputPath, buf.Bytes())
		},
	}
	cmd.Flags().StringVarP(&flags.configPath, "config", "c", "job.yaml", "job file")
	cmd.Flags().StringVarP(&flags.outputPath, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&flags.format, "format", "yaml", "output format: yaml or json")
	cmd.Flags().IntVar(&flags.workers, "workers", 0, "worker count, overrides the job (0 keeps it)")

	return cmd
}

func runJob(ctx context.Context, root *rootFlags, flags *runFlags, out io.Writer) error {
	log := root.logger
	if flags.format != "yaml" && flags.format != "json" {
		return fmt.Errorf("invalid --format %q: want yaml or json", flags.format)
	}
	if flags.workers < 0 {
		return fmt.Errorf("invalid --workers %d: must be non-negative", flags.workers)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	// 1) Load the job and build its domain.
	job, err := config.Load(flags.configPath)
	if err != nil {
		return err
	}
	src, err := job.Source()
	if err != nil {
		return err
	}
	weights, err := job.ExtentWeights(src)
	if err != nil {
		return err
	}
	mask, err := job.Mask(src.Len())
	if err != nil {
		return err
	}
	e, h := job.ExponentValues()

	opts := []tfce.Option{
		tfce.WithExponents(e, h),
		tfce.WithROI(mask),
		tfce.WithLogger(log),
	}
	workers := job.Workers
	if flags.workers > 0 {
		workers = flags.workers
	}
	if workers > 0 {
		opts = append(opts, tfce.WithWorkers(workers))
	}
	reg := prometheus.NewRegistry()
	opts = append(opts, tfce.WithMetrics(tfce.NewMetrics(reg)))

	log.Info().
		Str("domain", job.Domain.Kind).
		Int("elements", src.Len()).
		Int("columns", len(job.Columns)).
		Float64("E", e).
		Float64("H", h).
		Msg("job loaded")

	// 2) Enhance all columns.
	start := time.Now()
	columns, err := tfce.EnhanceColumns(ctx, job.Columns, src, weights, opts...)
	if err != nil {
		return err
	}
	logMetrics(root, reg, time.Since(start))

	// 3) Summarize and write.
	res := Result{Exponents: [2]float64{e, h}, Columns: columns}
	for i, col := range columns {
		res.Summary = append(res.Summary, summarize(i, col))
	}

	return writeResult(out, flags.format, res)
}

func summarize(i int, col []float64) ColumnSummary {
	s := ColumnSummary{Column: i}
	if len(col) == 0 {
		return s
	}
	s.Min, s.Max = floats.Min(col), floats.Max(col)
	for _, v := range col {
		switch {
		case v > 0:
			s.Positive++
		case v < 0:
			s.Negative++
		}
	}

	return s
}

func writeResult(w io.Writer, format string, res Result) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(res); err != nil {
		return err
	}

	return enc.Close()
}

// replaceFile writes data to a temporary file next to path and renames it
// over path once the write and close have succeeded.
func replaceFile(path string, data []byte) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(f.Name())
		}
	}()

	if _, err = f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("write output: %w", err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	if err = os.Rename(f.Name(), path); err != nil {
		return fmt.Errorf("replace output: %w", err)
	}

	return nil
}

// logMetrics reports the collected counters at debug level.
func logMetrics(root *rootFlags, reg *prometheus.Registry, elapsed time.Duration) {
	families, err := reg.Gather()
	if err != nil {
		root.logger.Warn().Err(err).Msg("gather metrics")
		return
	}
	ev := root.logger.Debug().Dur("elapsed", elapsed)
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			if c := m.GetCounter(); c != nil {
				ev = ev.Float64(mf.GetName(), c.GetValue())
			}
		}
	}
	ev.Msg("run metrics")
}
