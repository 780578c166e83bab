// Package parallel は行単位の独立した処理を CPU コアに分配する。
package parallel

import (
	"runtime"
	"sync"
)

// Workers は n 件の処理に使うゴルーチン数を返す（GOMAXPROCS と n の小さい方）
func Workers(n int) int {
	w := runtime.GOMAXPROCS(0)
	if w > n {
		w = n
	}
	return w
}

// For は [0, n) を Workers(n) 個の連続したチャンクに分け、チャンクごとに fn を並列に呼ぶ。
// n が threshold 以下のときは fn(0, n) を呼び出し側のゴルーチンで一度だけ実行する。
// fn は自分の範囲の外に書き込んではならない。
func For(n, threshold int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if n <= threshold {
		fn(0, n)
		return
	}

	workers := Workers(n)
	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}

// Apply は dst[i] = f(src[i]) を For で計算する。
// 各要素は独立に計算されるため、結果は逐次処理と同じになる。
func Apply(dst, src []float64, threshold int, f func(float64) float64) {
	n := min(len(dst), len(src))
	For(n, threshold, func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = f(src[i])
		}
	})
}
