package cfg

import (
	"fmt"

	"github.com/d3ck-org/d3ck-cfg/internal/infra/confloader"
)

// ErrUnknownEncoding is returned by Load when the configured encoding
// name is not known.
var ErrUnknownEncoding = confloader.ErrUnknownEncoding

// ParseError reports a located configuration file that could not be
// read or parsed. It aborts the Load that produced it.
type ParseError struct {
	File string // Path of the offending file
	Err  error  // Underlying read or parse failure
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s failed: %v", e.File, e.Err)
}

// Unwrap returns the underlying error for errors.Unwrap() support.
func (e *ParseError) Unwrap() error {
	return e.Err
}
