package linear

import (
	"os"

	"github.com/YuminosukeSato/linefit/dataset"
	"github.com/YuminosukeSato/linefit/pkg/errors"
)

type trainer struct {
	progress ProgressFunc
}

// Regression は (0, 0) から始めて GradientDescent を epochs 回適用し、
// 最終的な (slope, intercept) を返す。
//
// d.Verbose が true の場合は各エポックの更新後に進捗を通知する。通知先は
// WithProgress で差し替えられ、既定では標準出力に書き出す。通知の有無は結果に影響しない。
//
// 収束判定や発散の検出は行わない。学習率が大きすぎる場合は NaN や Inf がそのまま返る。
// 同じ Dataset を複数の goroutine から同時に学習させることはできない。
func Regression(d *dataset.Dataset, epochs int, learningRate float64, opts ...Option) (slope, intercept float64, err error) {
	const op = "linear.Regression"

	if err := d.Validate(); err != nil {
		return 0, 0, errors.Wrap(err, op)
	}
	if epochs < 0 {
		return 0, 0, errors.NewValidationError("epochs", "must be non-negative", epochs)
	}

	t := &trainer{}
	for _, opt := range opts {
		opt(t)
	}

	var sink ProgressFunc
	if d.Verbose {
		sink = t.progress
		if sink == nil {
			sink = PrintProgress(os.Stdout)
		}
	}

	for epoch := 0; epoch < epochs; epoch++ {
		slope, intercept = GradientDescent(d, slope, intercept, learningRate)
		if sink != nil {
			sink(Progress{Epoch: epoch, Slope: slope, Intercept: intercept})
		}
	}

	return slope, intercept, nil
}
