// Package linefit fits a straight line y = slope*x + intercept to a set of
// (x, y) observations by batch gradient descent on the mean squared error.
//
// # Installation
//
//	go get github.com/YuminosukeSato/linefit
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/linefit/dataset"
//	    "github.com/YuminosukeSato/linefit/linear"
//	)
//
//	func main() {
//	    d, err := dataset.New([]float64{1, 2, 3, 4}, []float64{3, 5, 7, 9})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    slope, intercept, err := linear.Regression(d, 10000, 0.01)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Printf("y = %vx + %v\n", slope, intercept)
//	}
//
// Setting the dataset's Verbose flag reports the line after every epoch:
//
//	d, _ := dataset.New(xs, ys, dataset.WithVerbose(true))
//	linear.Regression(d, 1000, 0.0001) // prints "Epoch: 0\ny = ...x + ...\n" to stdout
//
// Any ProgressFunc can take the place of stdout:
//
//	var history []linear.Progress
//	linear.Regression(d, 1000, 0.0001, linear.WithProgress(linear.RecordProgress(&history)))
//
// # Packages
//
//   - dataset: observations and CSV loading
//   - linear: loss functions, the gradient descent step, Regression and GDRegressor
//   - metrics: MSE, RMSE, MAE and R² over gonum vectors
//   - chart: scatter plot of the data with the fitted line
//   - config: viper/validator backed configuration for the CLI
//   - core/model: estimator interfaces and fitted-state tracking
//   - core/parallel: parallel loops used by prediction
//   - pkg/errors: error types with stack traces and warnings
//   - pkg/log: structured logging on slog and zerolog
//
// # Command Line
//
// cmd/linefit wraps the library:
//
//	linefit train -i data.csv -e 100000 -r 0.001 --plot fit.png
//	linefit eval -i data.csv --slope 3 --intercept 4
//
// # Error Handling
//
// Errors carry stack traces from github.com/cockroachdb/errors:
//
//	d, err := dataset.New(xs, ys)
//	if errors.Is(err, errors.ErrEmptyData) {
//	    // no observations
//	}
//
// A learning rate that is too large makes the line diverge to NaN or Inf.
// Regression does not treat this as an error; check the result with
// errors.CheckNumericalStability.
package linefit
