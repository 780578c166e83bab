package main

import (
	"github.com/spf13/cobra"

	"github.com/YuminosukeSato/linefit/linear"
	"github.com/YuminosukeSato/linefit/pkg/log"
)

func newEvalCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Evaluate a given line y = slope*x + intercept against a CSV file",
		Args:  cobra.NoArgs,
	}
	cmd.RunE = a.run(a.eval)

	flags := cmd.Flags()
	flags.StringP("input", "i", "", "CSV file with x,y columns (\"-\" reads stdin)")
	flags.Float64P("slope", "m", 0, "slope of the line")
	flags.Float64P("intercept", "b", 0, "intercept of the line")
	return cmd
}

func (a *app) eval(cmd *cobra.Command) error {
	slope, _ := cmd.Flags().GetFloat64("slope")
	intercept, _ := cmd.Flags().GetFloat64("intercept")

	d, err := loadDataset(cmd, a.conf.Input)
	if err != nil {
		return err
	}

	line := func(x float64) float64 { return slope*x + intercept }

	se := linear.SquaredError(d, line)
	report, err := evaluate(d, line)
	if err != nil {
		return err
	}

	a.logger.Info("Line evaluated",
		log.OperationKey, log.OperationEval,
		log.SourceKey, a.conf.Input,
		log.SamplesKey, d.Len(),
		log.SlopeKey, slope,
		log.InterceptKey, intercept,
		log.LossKey, report.MSE,
	)

	return renderTable(cmd.OutOrStdout(), [][]string{
		{"squared error", formatFloat(se)},
		{"mean squared error", formatFloat(report.MSE)},
		{"root mean squared error", formatFloat(report.RMSE)},
		{"mean absolute error", formatFloat(report.MAE)},
		{"r2", formatFloat(report.R2)},
	})
}
