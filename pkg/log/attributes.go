// Package log defines standard attribute keys for training and evaluation logs.
//
// Using these keys everywhere keeps log records from the trainer, the
// estimator facade and the CLI filterable by the same field names. Keys
// follow a dotted naming convention (e.g. "training.epoch", "data.samples").

package log

// Model and operation context.
const (
	// ModelNameKey identifies the estimator type, e.g. "GDRegressor".
	ModelNameKey = "model.name"

	// OperationKey specifies the operation being performed.
	// Standard values: "fit", "predict", "score", "train", "eval"
	OperationKey = "ml.operation"

	// ComponentKey identifies which package is logging, e.g. "linear", "cli".
	ComponentKey = "ml.component"

	// PhaseKey indicates the phase of the model lifecycle.
	PhaseKey = "ml.phase"
)

// Fitted line parameters.
const (
	// SlopeKey records the current slope m of y = m·x + b.
	SlopeKey = "model.slope"

	// InterceptKey records the current intercept b of y = m·x + b.
	InterceptKey = "model.intercept"
)

// Data shape.
const (
	// SamplesKey indicates the number of (x, y) observations.
	SamplesKey = "data.samples"

	// SourceKey records where the observations came from (a file path or "-").
	SourceKey = "data.source"
)

// Training and evaluation metrics.
const (
	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"

	// LossKey records a loss value such as the mean squared error.
	LossKey = "metrics.loss"

	// SquaredErrorKey records the sum of squared errors.
	SquaredErrorKey = "metrics.squared_error"

	// R2ScoreKey records the coefficient of determination.
	R2ScoreKey = "metrics.r2_score"

	// EpochKey records the 0-based epoch index during training.
	EpochKey = "training.epoch"

	// EpochsKey records the total number of epochs requested.
	EpochsKey = "training.epochs"
)

// Hyperparameters.
const (
	// LearningRateKey records the fixed learning rate.
	LearningRateKey = "hyperparams.learning_rate"
)

// Error context.
const (
	// ErrorCodeKey provides a structured error code for programmatic handling.
	ErrorCodeKey = "error.code"

	// ErrorTypeKey categorizes the type of error encountered.
	ErrorTypeKey = "error.type"

	// SuggestionKey provides a hint for resolving the issue.
	SuggestionKey = "error.suggestion"
)

// Standard attribute values.
const (
	OperationFit     = "fit"
	OperationPredict = "predict"
	OperationScore   = "score"
	OperationTrain   = "train"
	OperationEval    = "eval"

	PhaseTraining   = "training"
	PhaseEvaluation = "evaluation"

	ErrorNotFitted         = "NOT_FITTED"
	ErrorDimensionMismatch = "DIMENSION_MISMATCH"
	ErrorEmptyData         = "EMPTY_DATA"
	ErrorInvalidInput      = "INVALID_INPUT"
	ErrorDivergence        = "DIVERGENCE"
)
