// Package linear fits y = slope*x + intercept to a dataset by batch gradient
// descent on the mean squared error.
package linear

import (
	"github.com/YuminosukeSato/linefit/dataset"
	"github.com/YuminosukeSato/linefit/pkg/errors"
)

// SquaredError は予測関数 f による二乗誤差の総和 Σ(y_i - f(x_i))² を返す。
//
// 加算は index 順に逐次行うため、同じ入力に対して常に同じビット列の結果になる。
// X と Y の長さが異なる場合は短い方に合わせて対応付ける。空のデータでは 0 を返す。
func SquaredError(d *dataset.Dataset, f func(float64) float64) float64 {
	n := min(len(d.X), len(d.Y))

	var sum float64
	for i := 0; i < n; i++ {
		delta := d.Y[i] - f(d.X[i])
		sum += float64(delta * delta)
	}
	return sum
}

// MeanSquaredError は SquaredError を観測値の数で割った平均二乗誤差を返す。
// 空のデータと長さの不一致はエラーにする。
func MeanSquaredError(d *dataset.Dataset, f func(float64) float64) (float64, error) {
	if err := d.Validate(); err != nil {
		return 0, errors.Wrap(err, "linear.MeanSquaredError")
	}
	return SquaredError(d, f) / float64(d.Len()), nil
}
