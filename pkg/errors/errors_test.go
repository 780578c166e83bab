package errors

import (
	"fmt"
	"math"
	"strings"
	"testing"
)

func TestNewModelError(t *testing.T) {
	tests := []struct {
		name    string
		op      string
		kind    string
		err     error
		wantMsg string
	}{
		{
			name:    "with original error",
			op:      "Fit",
			kind:    "invalid input",
			err:     fmt.Errorf("test error"),
			wantMsg: "linefit: Fit: invalid input: test error",
		},
		{
			name:    "without original error",
			op:      "Predict",
			kind:    "not fitted",
			err:     nil,
			wantMsg: "linefit: Predict: not fitted",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewModelError(tt.op, tt.kind, tt.err)

			if err.Error() != tt.wantMsg {
				t.Errorf("Error() = %v, want %v", err.Error(), tt.wantMsg)
			}

			// スタックトレースの存在確認
			formatted := fmt.Sprintf("%+v", err)
			if !strings.Contains(formatted, "errors_test.go") {
				t.Error("Expected stack trace to contain test file name")
			}

			var modelErr *ModelError
			if !As(err, &modelErr) {
				t.Error("Error should be castable to *ModelError")
			}
		})
	}
}

func TestNewDimensionError(t *testing.T) {
	err := NewDimensionError("dataset.New", 5, 4, 0)

	want := "linefit: dataset.New: dimension mismatch on axis 0 (rows). Expected 5, got 4"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var dimErr *DimensionError
	if !As(err, &dimErr) {
		t.Fatal("Error should be castable to *DimensionError")
	}
	if dimErr.Expected != 5 || dimErr.Got != 4 {
		t.Errorf("unexpected fields: %+v", dimErr)
	}

	featErr := NewDimensionError("GDRegressor.Fit", 1, 3, 1)
	if !strings.Contains(featErr.Error(), "(features)") {
		t.Errorf("axis 1 should be reported as features: %v", featErr)
	}
}

func TestNewNotFittedError(t *testing.T) {
	err := NewNotFittedError("GDRegressor", "Predict")

	want := "linefit: GDRegressor: this model is not fitted yet. Call Fit() before using Predict()"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var notFittedErr *NotFittedError
	if !As(err, &notFittedErr) {
		t.Error("Error should be castable to *NotFittedError")
	}
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("epochs", "must be non-negative", -3)

	want := "linefit: validation failed for parameter 'epochs': must be non-negative (got: -3)"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var valErr *ValidationError
	if !As(err, &valErr) {
		t.Fatal("Error should be castable to *ValidationError")
	}
	if valErr.ParamName != "epochs" {
		t.Errorf("ParamName = %q, want epochs", valErr.ParamName)
	}
}

func TestNewValueError(t *testing.T) {
	tests := []struct {
		name    string
		op      string
		message string
		wantMsg string
	}{
		{
			name:    "csv parse failure",
			op:      "dataset.LoadCSV",
			message: `line 3: invalid x value "abc"`,
			wantMsg: `linefit: dataset.LoadCSV: line 3: invalid x value "abc"`,
		},
		{
			name:    "column count",
			op:      "dataset.LoadCSV",
			message: "line 1: expected 2 columns, got 3",
			wantMsg: "linefit: dataset.LoadCSV: line 1: expected 2 columns, got 3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewValueError(tt.op, tt.message)

			if err.Error() != tt.wantMsg {
				t.Errorf("Error() = %v, want %v", err.Error(), tt.wantMsg)
			}

			var valErr *ValueError
			if !As(err, &valErr) {
				t.Error("Error should be castable to *ValueError")
			}
		})
	}
}

func TestNewDivergenceWarning(t *testing.T) {
	warn := NewDivergenceWarning(100, 0.5, math.Inf(1), math.NaN())

	msg := warn.Error()
	for _, part := range []string{"100 epochs", "learning rate 0.5", "slope=+Inf", "intercept=NaN"} {
		if !strings.Contains(msg, part) {
			t.Errorf("warning %q should contain %q", msg, part)
		}
	}

	var divWarn *DivergenceWarning
	if !As(warn, &divWarn) {
		t.Error("Warning should be castable to *DivergenceWarning")
	}
}

func TestWarnUsesHandlers(t *testing.T) {
	var got []error
	SetWarningHandler(func(w error) { got = append(got, w) })
	defer SetWarningHandler(func(w error) {})

	Warn(NewUndefinedMetricWarning("r2_score", "constant y", 0))
	if len(got) != 1 {
		t.Fatalf("expected 1 warning through handler, got %d", len(got))
	}

	// zerolog関数が設定されていればそちらが優先される
	var viaZerolog int
	SetZerologWarnFunc(func(w error) { viaZerolog++ })
	defer SetZerologWarnFunc(nil)

	Warn(NewDivergenceWarning(1, 1, math.NaN(), 0))
	if viaZerolog != 1 || len(got) != 1 {
		t.Errorf("expected zerolog func to take precedence (zerolog=%d, handler=%d)", viaZerolog, len(got))
	}
}

func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrEmptyData, "in %s: expected %d, got %d", "Regression", 10, 0)

	if !Is(wrapped, ErrEmptyData) {
		t.Error("Expected Is(wrapped, ErrEmptyData) to be true")
	}

	expectedMsg := "in Regression: expected 10, got 0"
	if !strings.Contains(wrapped.Error(), expectedMsg) {
		t.Errorf("Expected wrapped error to contain %q", expectedMsg)
	}
}

func TestErrorChaining(t *testing.T) {
	err1 := fmt.Errorf("base error")
	err2 := Wrap(err1, "wrapped once")
	err3 := NewModelError("Operation", "failed", err2)

	if !strings.Contains(err3.Error(), "base error") {
		t.Error("Expected error chain to contain base error")
	}

	formatted := fmt.Sprintf("%+v", err3)
	if !strings.Contains(formatted, "errors_test.go") {
		t.Error("Expected detailed error to contain stack trace")
	}
}
