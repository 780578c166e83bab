// Package dataset holds paired (x, y) observations for single-predictor
// regression.
package dataset

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/linefit/pkg/errors"
)

// Dataset は index で対応付けられた観測値 (X[i], Y[i]) の組を保持する。
//
// フィールドは公開されており、呼び出し側は学習の前にサンプルを直接書き換えてよい。
// 学習中の書き換えや、同じ Dataset を複数の goroutine から同時に使うことは想定していない。
type Dataset struct {
	X       []float64 // 説明変数
	Y       []float64 // 目的変数、X と同じ長さ
	Verbose bool      // true のとき学習の各エポックで進捗を通知する
}

// Option は Dataset の設定を変更する
type Option func(*Dataset)

// WithVerbose は進捗通知の有無を設定する
func WithVerbose(verbose bool) Option {
	return func(d *Dataset) {
		d.Verbose = verbose
	}
}

// New は x と y のコピーから Dataset を作成する。
// 空のデータや長さの不一致は作成時点でエラーにする。
func New(x, y []float64, opts ...Option) (*Dataset, error) {
	d := &Dataset{
		X: append([]float64(nil), x...),
		Y: append([]float64(nil), y...),
	}
	for _, opt := range opts {
		opt(d)
	}
	if err := d.validate("dataset.New"); err != nil {
		return nil, err
	}
	return d, nil
}

// FromVectors は gonum のベクトルから Dataset を作成する
func FromVectors(x, y mat.Vector, opts ...Option) (*Dataset, error) {
	xs := make([]float64, x.Len())
	for i := range xs {
		xs[i] = x.AtVec(i)
	}
	ys := make([]float64, y.Len())
	for i := range ys {
		ys[i] = y.AtVec(i)
	}
	return New(xs, ys, opts...)
}

// Len は観測値の数を返す
func (d *Dataset) Len() int {
	return len(d.X)
}

// Validate は X と Y が空でなく同じ長さであることを確認する
func (d *Dataset) Validate() error {
	return d.validate("Dataset.Validate")
}

func (d *Dataset) validate(op string) error {
	if len(d.X) == 0 && len(d.Y) == 0 {
		return errors.Wrapf(errors.ErrEmptyData, "%s", op)
	}
	if len(d.X) != len(d.Y) {
		return errors.NewDimensionError(op, len(d.X), len(d.Y), 0)
	}
	return nil
}

// Vectors は X と Y を gonum のベクトルとして返す。
// 返されたベクトルは Dataset のスライスを共有しない。
func (d *Dataset) Vectors() (x, y *mat.VecDense) {
	x = mat.NewVecDense(len(d.X), append([]float64(nil), d.X...))
	y = mat.NewVecDense(len(d.Y), append([]float64(nil), d.Y...))
	return x, y
}
