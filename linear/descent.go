package linear

import "github.com/YuminosukeSato/linefit/dataset"

// GradientDescent は平均二乗誤差の勾配に沿って (slope, intercept) を1ステップ更新する。
//
// 勾配は
//
//	∂/∂slope     = Σ -(2/n) * x_i * (y_i - (slope*x_i + intercept))
//	∂/∂intercept = Σ -(2/n) * (y_i - (slope*x_i + intercept))
//
// で、全観測値について合計してから learningRate を掛ける。
// データの妥当性は検査しない。空のデータではパラメータはそのまま返る。
func GradientDescent(d *dataset.Dataset, slope, intercept, learningRate float64) (float64, float64) {
	n := float64(len(d.X))
	pairs := min(len(d.X), len(d.Y))

	// float64(...) の変換で積を丸め、FMA による結果の揺れを防ぐ
	var slopeGradient, interceptGradient float64
	for i := 0; i < pairs; i++ {
		x, y := d.X[i], d.Y[i]
		residual := y - (float64(slope*x) + intercept)
		slopeGradient += float64(float64(-(2/n)*x) * residual)
		interceptGradient += float64(-(2 / n) * residual)
	}

	return slope - float64(slopeGradient*learningRate), intercept - float64(interceptGradient*learningRate)
}
