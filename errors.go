// errors.go
//
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

// This file declares the error kinds raised by the compiler pipeline.

package dafsa

import (
	"fmt"

	errorutil "github.com/projectdiscovery/utils/errors"
)

// Sentinel errors for the pipeline's failure kinds. Every error the core
// returns wraps one of these via errors.Is, so callers can branch on kind
// without parsing messages.
var (
	// ErrEmptyInput is returned when the word list is empty.
	ErrEmptyInput = errorutil.NewWithTag("dafsa", "the word list must not be empty")
	// ErrBadCharacter is returned when an input byte falls outside (0x1F, 0x80).
	ErrBadCharacter = errorutil.NewWithTag("dafsa", "words must consist of printable 7-bit ASCII characters")
	// ErrOffsetOverflow is returned when a computed inter-node distance
	// would require 4 or more bytes to encode.
	ErrOffsetOverflow = errorutil.NewWithTag("dafsa", "offset distance exceeds the 21-bit encoding")
)

// wordError reports ErrBadCharacter with the offending word and byte for
// easier diagnosis, while still satisfying errors.Is(err, ErrBadCharacter).
func wordError(word string, b byte) error {
	return fmt.Errorf("%w: %q contains disallowed byte 0x%02X", ErrBadCharacter, word, b)
}
