package main

import (
	"io"
	"os"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/linefit/chart"
	"github.com/YuminosukeSato/linefit/dataset"
	"github.com/YuminosukeSato/linefit/linear"
	"github.com/YuminosukeSato/linefit/metrics"
	"github.com/YuminosukeSato/linefit/pkg/errors"
	"github.com/YuminosukeSato/linefit/pkg/log"
)

func newTrainCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "train",
		Short: "Fit a line to a CSV file of x,y pairs",
		Args:  cobra.NoArgs,
	}
	cmd.RunE = a.run(a.train)

	flags := cmd.Flags()
	flags.StringP("input", "i", "", "CSV file with x,y columns (\"-\" reads stdin)")
	flags.IntP("epochs", "e", 1000, "number of gradient descent steps")
	flags.Float64P("learning-rate", "r", 0.0001, "learning rate")
	flags.BoolP("verbose", "v", false, "print the line after every epoch")
	flags.Int("progress-every", 1, "with --verbose, print only every n-th epoch")
	flags.Bool("progress-bar", false, "show a progress bar on stderr")
	flags.String("plot", "", "save a chart of the data and the fitted line (.png, .svg, .pdf)")
	return cmd
}

func (a *app) train(cmd *cobra.Command) error {
	conf := a.conf
	out := cmd.OutOrStdout()

	var sinks []linear.ProgressFunc
	if conf.Verbose {
		sinks = append(sinks, linear.EveryN(conf.ProgressEvery, linear.PrintProgress(out)))
	}
	if conf.ProgressBar {
		sinks = append(sinks, linear.BarProgress(conf.Epochs, cmd.ErrOrStderr()))
	}
	if a.logger.Enabled(cmd.Context(), log.LevelDebug) {
		sinks = append(sinks, linear.EveryN(conf.ProgressEvery, linear.LogProgress(a.logger)))
	}

	d, err := loadDataset(cmd, conf.Input, dataset.WithVerbose(len(sinks) > 0))
	if err != nil {
		return err
	}

	logger := a.logger.With(log.OperationKey, log.OperationTrain, log.SourceKey, conf.Input)
	logger.Info("Training started",
		log.SamplesKey, d.Len(),
		log.EpochsKey, conf.Epochs,
		log.LearningRateKey, conf.LearningRate,
	)

	start := time.Now()
	slope, intercept, err := linear.Regression(d, conf.Epochs, conf.LearningRate,
		linear.WithProgress(linear.MultiProgress(sinks...)))
	if err != nil {
		return err
	}
	logger.Info("Training finished",
		log.SlopeKey, slope,
		log.InterceptKey, intercept,
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)

	diverged := errors.CheckNumericalStability("linear.Regression", []float64{slope, intercept}, conf.Epochs) != nil
	if diverged {
		errors.Warn(errors.NewDivergenceWarning(conf.Epochs, conf.LearningRate, slope, intercept))
	}

	line := func(x float64) float64 { return slope*x + intercept }
	se := linear.SquaredError(d, line)
	mse, err := linear.MeanSquaredError(d, line)
	if err != nil {
		return err
	}
	rows := [][]string{
		{"slope", formatFloat(slope)},
		{"intercept", formatFloat(intercept)},
		{"squared error", formatFloat(se)},
		{"mean squared error", formatFloat(mse)},
	}
	if !diverged {
		report, err := evaluate(d, line)
		if err != nil {
			return err
		}
		rows = append(rows, []string{"r2", formatFloat(report.R2)})
		logger.Info("Training evaluated", log.LossKey, mse, log.SquaredErrorKey, se, log.R2ScoreKey, report.R2)
	}
	if err := renderTable(out, rows); err != nil {
		return err
	}

	if conf.Plot != "" {
		if diverged {
			logger.Warn("Chart skipped", log.ErrorCodeKey, log.ErrorDivergence,
				log.SuggestionKey, "lower the learning rate")
			return nil
		}
		if err := chart.SaveFit(conf.Plot, d, slope, intercept); err != nil {
			return err
		}
		logger.Info("Chart saved", "path", conf.Plot)
	}
	return nil
}

// loadDataset reads the CSV at path, or stdin when path is "-".
func loadDataset(cmd *cobra.Command, path string, opts ...dataset.Option) (*dataset.Dataset, error) {
	if path == "" {
		return nil, errors.NewValidationError("input", "is required", path)
	}
	if path == "-" {
		return dataset.LoadCSV(cmd.InOrStdin(), opts...)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	d, err := dataset.LoadCSV(f, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	return d, nil
}

// evaluate compares the observations of d against line.
func evaluate(d *dataset.Dataset, line func(float64) float64) (metrics.Report, error) {
	yTrue := mat.NewVecDense(d.Len(), append([]float64(nil), d.Y...))
	yPred := mat.NewVecDense(d.Len(), lo.Map(d.X, func(x float64, _ int) float64 {
		return line(x)
	}))
	return metrics.Evaluate(yTrue, yPred)
}

func renderTable(w io.Writer, rows [][]string) error {
	table := tablewriter.NewWriter(w)
	table.Header("Metric", "Value")
	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return errors.Wrap(err, "render table")
		}
	}
	return table.Render()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
