package linear

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/YuminosukeSato/linefit/dataset"
	"github.com/YuminosukeSato/linefit/pkg/log"
)

func TestPrintProgress(t *testing.T) {
	d := newDataset(t, []float64{1}, []float64{1}, dataset.WithVerbose(true))

	var buf bytes.Buffer
	if _, _, err := Regression(d, 2, 0.25, WithProgress(PrintProgress(&buf))); err != nil {
		t.Fatal(err)
	}

	want := "Epoch: 0\ny = 0.5x + 0.5\nEpoch: 1\ny = 0.5x + 0.5\n"
	if buf.String() != want {
		t.Errorf("PrintProgress() wrote %q, want %q", buf.String(), want)
	}
}

func TestPrintProgressFixedNotation(t *testing.T) {
	tests := []struct {
		p    Progress
		want string
	}{
		{Progress{Epoch: 0, Slope: 2.32e-05, Intercept: 4e-06}, "Epoch: 0\ny = 0.0000232x + 0.000004\n"},
		{Progress{Epoch: 7, Slope: 1e21, Intercept: -3}, "Epoch: 7\ny = 1000000000000000000000x + -3\n"},
		{Progress{Epoch: 9, Slope: math.NaN(), Intercept: math.Inf(1)}, "Epoch: 9\ny = NaNx + +Inf\n"},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		PrintProgress(&buf)(tt.p)
		if buf.String() != tt.want {
			t.Errorf("PrintProgress(%+v) wrote %q, want %q", tt.p, buf.String(), tt.want)
		}
	}
}

func TestLogProgress(t *testing.T) {
	logger, _ := log.NewTestLogger(log.LevelDebug)
	sink := LogProgress(logger)

	sink(Progress{Epoch: 3, Slope: 1.5, Intercept: -0.25})

	if !logger.ContainsMessage("Epoch completed") {
		t.Error("expected an epoch record")
	}
	if !logger.ContainsField(log.EpochKey, float64(3)) {
		t.Errorf("expected %s=3", log.EpochKey)
	}
	if !logger.ContainsField(log.SlopeKey, 1.5) {
		t.Errorf("expected %s=1.5", log.SlopeKey)
	}
	if !logger.ContainsField(log.InterceptKey, -0.25) {
		t.Errorf("expected %s=-0.25", log.InterceptKey)
	}
}

func TestLogProgressRespectsLevel(t *testing.T) {
	logger, buf := log.NewTestLogger(log.LevelInfo)
	LogProgress(logger)(Progress{Epoch: 0})

	if buf.Len() != 0 {
		t.Errorf("debug progress should be filtered at info level, got %q", buf.String())
	}
}

func TestEveryN(t *testing.T) {
	tests := []struct {
		n    int
		want []int
	}{
		{n: 0, want: []int{0, 1, 2, 3, 4, 5, 6}},
		{n: 1, want: []int{0, 1, 2, 3, 4, 5, 6}},
		{n: 3, want: []int{0, 3, 6}},
		{n: 10, want: []int{0}},
	}

	for _, tt := range tests {
		var history []Progress
		sink := EveryN(tt.n, RecordProgress(&history))
		for epoch := 0; epoch < 7; epoch++ {
			sink(Progress{Epoch: epoch})
		}

		if len(history) != len(tt.want) {
			t.Errorf("EveryN(%d) forwarded %d records, want %d", tt.n, len(history), len(tt.want))
			continue
		}
		for i, p := range history {
			if p.Epoch != tt.want[i] {
				t.Errorf("EveryN(%d) record %d has epoch %d, want %d", tt.n, i, p.Epoch, tt.want[i])
			}
		}
	}
}

func TestMultiProgress(t *testing.T) {
	var first, second []Progress
	sink := MultiProgress(RecordProgress(&first), nil, RecordProgress(&second))

	sink(Progress{Epoch: 0, Slope: 1})
	sink(Progress{Epoch: 1, Slope: 2})

	if len(first) != 2 || len(second) != 2 {
		t.Fatalf("expected both sinks to receive 2 records, got %d and %d", len(first), len(second))
	}
	if second[1].Slope != 2 {
		t.Errorf("second sink got %+v", second[1])
	}
}

func TestBarProgress(t *testing.T) {
	const epochs = 20
	d := newDataset(t, []float64{1, 2, 3}, []float64{2, 4, 6}, dataset.WithVerbose(true))

	var buf bytes.Buffer
	if _, _, err := Regression(d, epochs, 0.01, WithProgress(BarProgress(epochs, &buf))); err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(buf.String(), "training") {
		t.Errorf("progress bar output missing description: %q", buf.String())
	}
}
