package grid

import "errors"

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrUnknownSymbol indicates a cell symbol outside {R, C, X, .}.
	ErrUnknownSymbol = errors.New("grid: unknown cell symbol")
	// ErrNotFound indicates the requested cell kind is absent.
	ErrNotFound = errors.New("grid: cell kind not found")
	// ErrDuplicateSymbol indicates the requested cell kind occurs more than once.
	ErrDuplicateSymbol = errors.New("grid: cell kind is not unique")
)
