package linear

// Option は Regression の動作を設定する
type Option func(*trainer)

// WithProgress は Dataset.Verbose が true のときに呼ばれる進捗通知先を設定する。
// nil を渡すと標準出力への表示に戻る。
func WithProgress(sink ProgressFunc) Option {
	return func(t *trainer) {
		t.progress = sink
	}
}

// RegressorOption は GDRegressor を設定する
type RegressorOption func(*GDRegressor)

// WithEpochs sets the number of gradient steps Fit runs.
func WithEpochs(epochs int) RegressorOption {
	return func(r *GDRegressor) {
		r.epochs = epochs
	}
}

// WithLearningRate sets the step size used by Fit.
func WithLearningRate(lr float64) RegressorOption {
	return func(r *GDRegressor) {
		r.learningRate = lr
	}
}

// WithProgressSink reports every epoch of Fit to sink.
func WithProgressSink(sink ProgressFunc) RegressorOption {
	return func(r *GDRegressor) {
		r.progress = sink
	}
}
