package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/YuminosukeSato/linefit/pkg/errors"
)

// LoadCSV は "x,y" の2列からなるCSVを読み込む。
//
// 1行目が数値として解釈できない場合はヘッダーとして読み飛ばす。
// 空行と '#' で始まる行は無視する。
func LoadCSV(r io.Reader, opts ...Option) (*Dataset, error) {
	const op = "dataset.LoadCSV"

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	var xs, ys []float64
	first := true
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, op)
		}
		line, _ := reader.FieldPos(0)

		record = lo.Map(record, func(field string, _ int) string {
			return strings.TrimSpace(field)
		})
		if len(record) != 2 {
			return nil, errors.NewValueError(op, fmt.Sprintf("line %d: expected 2 columns, got %d", line, len(record)))
		}

		x, errX := strconv.ParseFloat(record[0], 64)
		y, errY := strconv.ParseFloat(record[1], 64)
		if first && errX != nil && errY != nil {
			// ヘッダー行
			first = false
			continue
		}
		first = false

		if errX != nil {
			return nil, errors.NewValueError(op, fmt.Sprintf("line %d: invalid x value %q", line, record[0]))
		}
		if errY != nil {
			return nil, errors.NewValueError(op, fmt.Sprintf("line %d: invalid y value %q", line, record[1]))
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}

	return New(xs, ys, opts...)
}
