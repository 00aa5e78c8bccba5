package hist

import "errors"

var (
	// ErrInvalidWeight indicates a negative, NaN or infinite weight.
	ErrInvalidWeight = errors.New("hist: weight must be finite and non-negative")

	// ErrLengthMismatch indicates parallel observation and weight slices of different length.
	ErrLengthMismatch = errors.New("hist: observations and weights differ in length")

	// ErrInvalidScale indicates a negative, NaN or infinite scale factor.
	ErrInvalidScale = errors.New("hist: scale factor must be finite and non-negative")

	// ErrIndexOutOfRange indicates an index or slice bound outside the sample.
	ErrIndexOutOfRange = errors.New("hist: index out of range")

	// ErrZeroTotalWeight indicates a normalization over zero total weight.
	ErrZeroTotalWeight = errors.New("hist: total weight is zero")

	// ErrNilClassifier indicates a histogram was created without a classifier.
	ErrNilClassifier = errors.New("hist: classifier is nil")

	// ErrClassify wraps a classifier failure; nothing was recorded.
	ErrClassify = errors.New("hist: classification failed")
)
