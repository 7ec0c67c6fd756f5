package triplex

import "errors"

// Sentinel errors returned by Search and Align. Wrap with fmt.Errorf("...: %w", err)
// at call sites that need to attach position or parameter context.
var (
	// ErrBadInput is returned when seq contains a byte outside the 128-entry
	// ASCII table this package understands (the four bases or the twelve
	// IUPAC ambiguity codes, '-' among them).
	ErrBadInput = errors.New("triplex: unsupported byte in input sequence")

	// ErrBadParameters is returned by NewParams, NewPenalization and NewConfig
	// when a combination can never yield a meaningful search (min_loop >
	// max_loop, min_len > max_len, a zero insertion penalty, ...), and by
	// Search and Align for a triplex type outside 0..NumTypes-1.
	ErrBadParameters = errors.New("triplex: invalid parameter combination")

	// ErrOutOfMemory is returned by Align when the n*n rule matrix its
	// traceback needs would exceed a sane ceiling for the given substring.
	ErrOutOfMemory = errors.New("triplex: alignment matrix too large to allocate")
)
