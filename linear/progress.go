package linear

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/YuminosukeSato/linefit/pkg/log"
)

// Progress は1エポック終了時点の学習状態
type Progress struct {
	Epoch     int // 0 始まり
	Slope     float64
	Intercept float64
}

// ProgressFunc は学習の進捗を受け取る。学習と同じ goroutine から同期的に呼ばれる。
type ProgressFunc func(Progress)

// PrintProgress は進捗を
//
//	Epoch: 3
//	y = 0.25x + 0.125
//
// の形式で w に書き出す。
func PrintProgress(w io.Writer) ProgressFunc {
	return func(p Progress) {
		fmt.Fprintf(w, "Epoch: %d\ny = %sx + %s\n", p.Epoch, formatCoef(p.Slope), formatCoef(p.Intercept))
	}
}

// formatCoef は指数表記を使わず、値を一意に表す最短の10進表記を返す。
func formatCoef(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// LogProgress は進捗を Debug レベルの構造化ログとして出力する。
func LogProgress(logger log.Logger) ProgressFunc {
	return func(p Progress) {
		logger.Debug("Epoch completed",
			log.EpochKey, p.Epoch,
			log.SlopeKey, p.Slope,
			log.InterceptKey, p.Intercept,
		)
	}
}

// RecordProgress appends every record to history.
func RecordProgress(history *[]Progress) ProgressFunc {
	return func(p Progress) {
		*history = append(*history, p)
	}
}

// BarProgress は total エポック分のプログレスバーを w に描画する。
func BarProgress(total int, w io.Writer) ProgressFunc {
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("training"),
		progressbar.OptionShowCount(),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(w)
		}),
	)
	return func(Progress) {
		_ = bar.Add(1)
	}
}

// MultiProgress forwards each record to every sink in order. nil sinks are
// skipped.
func MultiProgress(sinks ...ProgressFunc) ProgressFunc {
	return func(p Progress) {
		for _, sink := range sinks {
			if sink != nil {
				sink(p)
			}
		}
	}
}

// EveryN は epoch が n の倍数のときだけ sink に転送する。n <= 1 ならすべて転送する。
func EveryN(n int, sink ProgressFunc) ProgressFunc {
	if n <= 1 {
		return sink
	}
	return func(p Progress) {
		if p.Epoch%n == 0 {
			sink(p)
		}
	}
}
