package linear

import (
	"github.com/YuminosukeSato/linefit/core/model"
	"github.com/YuminosukeSato/linefit/core/parallel"
	"github.com/YuminosukeSato/linefit/dataset"
	"github.com/YuminosukeSato/linefit/metrics"
	"github.com/YuminosukeSato/linefit/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

const (
	// DefaultEpochs は GDRegressor の既定のエポック数
	DefaultEpochs = 1000
	// DefaultLearningRate は GDRegressor の既定の学習率
	DefaultLearningRate = 0.0001

	// 予測を並列化する行数の閾値（この値以下の行数では逐次処理を使用）
	parallelThreshold = 1000
)

var (
	_ model.Regressor       = (*GDRegressor)(nil)
	_ model.LineModel       = (*GDRegressor)(nil)
	_ model.ParameterGetter = (*GDRegressor)(nil)
)

// GDRegressor は Regression を gonum の行列インターフェースで扱うための推定器。
// X は1列（説明変数1つ）の行列、y は1列の行列を受け付ける。
type GDRegressor struct {
	state *model.StateManager

	epochs       int
	learningRate float64
	progress     ProgressFunc

	slope     float64
	intercept float64
}

// NewGDRegressor は新しい GDRegressor を作成する
func NewGDRegressor(opts ...RegressorOption) *GDRegressor {
	r := &GDRegressor{
		state:        model.NewStateManager(),
		epochs:       DefaultEpochs,
		learningRate: DefaultLearningRate,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Fit はモデルを訓練データで学習させる
func (r *GDRegressor) Fit(X, y mat.Matrix) (err error) {
	defer errors.Recover(&err, "GDRegressor.Fit")

	rows, cols := X.Dims()
	ry, cy := y.Dims()

	if rows == 0 || cols == 0 {
		return errors.NewModelError("GDRegressor.Fit", "empty data", errors.ErrEmptyData)
	}
	if cols != 1 {
		return errors.NewDimensionError("GDRegressor.Fit", 1, cols, 1)
	}
	if ry != rows {
		return errors.NewDimensionError("GDRegressor.Fit", rows, ry, 0)
	}
	if cy != 1 {
		return errors.NewValueError("GDRegressor.Fit", "y must be a column vector")
	}

	d, err := dataset.New(mat.Col(nil, 0, X), mat.Col(nil, 0, y),
		dataset.WithVerbose(r.progress != nil))
	if err != nil {
		return err
	}

	slope, intercept, err := Regression(d, r.epochs, r.learningRate, WithProgress(r.progress))
	if err != nil {
		return err
	}

	r.state.Reset()
	r.slope, r.intercept = slope, intercept
	r.state.SetDimensions(cols, rows)
	r.state.SetFitted()

	return nil
}

// Predict は入力データに対する予測 slope*x + intercept を返す
func (r *GDRegressor) Predict(X mat.Matrix) (mat.Matrix, error) {
	if err := r.state.RequireFitted("GDRegressor", "Predict"); err != nil {
		return nil, err
	}

	rows, cols := X.Dims()
	if rows == 0 {
		return nil, errors.NewModelError("GDRegressor.Predict", "empty data", errors.ErrEmptyData)
	}
	if cols != 1 {
		return nil, errors.NewDimensionError("GDRegressor.Predict", 1, cols, 1)
	}

	slope, intercept := r.slope, r.intercept
	predictions := make([]float64, rows)
	parallel.Apply(predictions, mat.Col(nil, 0, X), parallelThreshold, func(x float64) float64 {
		return slope*x + intercept
	})

	return mat.NewDense(rows, 1, predictions), nil
}

// Score はモデルの決定係数（R²）を計算する
func (r *GDRegressor) Score(X, y mat.Matrix) (float64, error) {
	if err := r.state.RequireFitted("GDRegressor", "Score"); err != nil {
		return 0, err
	}

	yPred, err := r.Predict(X)
	if err != nil {
		return 0, err
	}

	ry, cy := y.Dims()
	if cy != 1 {
		return 0, errors.NewValueError("GDRegressor.Score", "y must be a column vector")
	}
	yTrue := mat.NewVecDense(ry, mat.Col(nil, 0, y))
	predRows, _ := yPred.Dims()
	return metrics.R2Score(yTrue, mat.NewVecDense(predRows, mat.Col(nil, 0, yPred)))
}

// Slope は学習された傾きを返す
func (r *GDRegressor) Slope() float64 {
	if !r.state.IsFitted() {
		return 0
	}
	return r.slope
}

// Intercept は学習された切片を返す
func (r *GDRegressor) Intercept() float64 {
	if !r.state.IsFitted() {
		return 0
	}
	return r.intercept
}

// GetParams はハイパーパラメータを返す
func (r *GDRegressor) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"epochs":        r.epochs,
		"learning_rate": r.learningRate,
	}
}
