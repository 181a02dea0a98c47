package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tfce/adjacency"
	"github.com/katalvlaran/tfce/config"
	"github.com/katalvlaran/tfce/tfce"
)

func newValidateCmd(root *rootFlags) *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a job file, its domain and its inputs without enhancing",
		RunE: func(cmd *cobra.Command, args []string) error {
			job, err := config.Load(configPath)
			if err != nil {
				return err
			}
			src, err := job.Source()
			if err != nil {
				return err
			}
			if err := adjacency.Validate(src); err != nil {
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
			if _, err := tfce.NewEngine(src, weights, tfce.WithExponents(e, h), tfce.WithROI(mask)); err != nil {
				return err
			}
			for i, col := range job.Columns {
				if len(col) != src.Len() {
					return fmt.Errorf("column %d has %d values for %d elements", i, len(col), src.Len())
				}
			}
			root.logger.Info().
				Str("domain", job.Domain.Kind).
				Int("elements", src.Len()).
				Int("columns", len(job.Columns)).
				Msg("job is valid")
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "job.yaml", "job file")

	return cmd
}
