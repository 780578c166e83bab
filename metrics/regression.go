// Package metrics は回帰の評価指標を計算する
package metrics

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/linefit/pkg/errors"
)

// checkPair は yTrue と yPred が空でなく同じ長さであることを確認する
func checkPair(op string, yTrue, yPred *mat.VecDense) (int, error) {
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewValueError(op, "empty vector")
	}
	if yPred.Len() != n {
		return 0, errors.NewDimensionError(op, n, yPred.Len(), 0)
	}
	return n, nil
}

// MSE は平均二乗誤差（Mean Squared Error）を計算する
func MSE(yTrue, yPred *mat.VecDense) (float64, error) {
	n, err := checkPair("MSE", yTrue, yPred)
	if err != nil {
		return 0, err
	}

	// MSE = (1/n) * Σ(yTrue - yPred)²
	var sum float64
	for i := 0; i < n; i++ {
		diff := yTrue.AtVec(i) - yPred.AtVec(i)
		sum += diff * diff
	}
	return sum / float64(n), nil
}

// RMSE は平方根平均二乗誤差（Root Mean Squared Error）を計算する
func RMSE(yTrue, yPred *mat.VecDense) (float64, error) {
	mse, err := MSE(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(mse), nil
}

// MAE は平均絶対誤差（Mean Absolute Error）を計算する
func MAE(yTrue, yPred *mat.VecDense) (float64, error) {
	n, err := checkPair("MAE", yTrue, yPred)
	if err != nil {
		return 0, err
	}

	var sum float64
	for i := 0; i < n; i++ {
		sum += math.Abs(yTrue.AtVec(i) - yPred.AtVec(i))
	}
	return sum / float64(n), nil
}

// R2Score は決定係数（R²）を計算する。
// yTrue に分散がない場合は定義できないため *errors.ValueError を返す。
func R2Score(yTrue, yPred *mat.VecDense) (float64, error) {
	n, err := checkPair("R2Score", yTrue, yPred)
	if err != nil {
		return 0, err
	}

	var yMean float64
	for i := 0; i < n; i++ {
		yMean += yTrue.AtVec(i)
	}
	yMean /= float64(n)

	// 全変動（TSS）と残差変動（RSS）
	var tss, rss float64
	for i := 0; i < n; i++ {
		yTrueVal := yTrue.AtVec(i)
		yPredVal := yPred.AtVec(i)

		tss += (yTrueVal - yMean) * (yTrueVal - yMean)
		rss += (yTrueVal - yPredVal) * (yTrueVal - yPredVal)
	}

	if tss == 0 {
		return 0, errors.NewValueError("R2Score", "total sum of squares is zero (no variance in yTrue)")
	}

	// R² = 1 - RSS/TSS
	return 1 - rss/tss, nil
}

// Report は直線の当てはまりをまとめた評価結果
type Report struct {
	MSE  float64
	RMSE float64
	MAE  float64
	R2   float64 // yTrue に分散がない場合は NaN
}

// Evaluate は MSE, RMSE, MAE, R² をまとめて計算する。
//
// R² が定義できない場合はエラーにせず UndefinedMetricWarning を通知し、R2 を NaN にする。
func Evaluate(yTrue, yPred *mat.VecDense) (Report, error) {
	var report Report
	var err error

	if report.MSE, err = MSE(yTrue, yPred); err != nil {
		return Report{}, err
	}
	report.RMSE = math.Sqrt(report.MSE)
	if report.MAE, err = MAE(yTrue, yPred); err != nil {
		return Report{}, err
	}

	report.R2, err = R2Score(yTrue, yPred)
	if err != nil {
		var valErr *errors.ValueError
		if !errors.As(err, &valErr) {
			return Report{}, err
		}
		report.R2 = math.NaN()
		errors.Warn(errors.NewUndefinedMetricWarning("r2_score", "yTrue has no variance", report.R2))
	}
	return report, nil
}
