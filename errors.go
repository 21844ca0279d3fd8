package guitree

import (
	"errors"

	"github.com/pthm/guitree/lib/encoding"
)

// Sentinel errors for tree operations.
var (
	ErrRoutingConflict = errors.New("guitree: node declares both handlers and actions")
	ErrBadStructure    = errors.New("guitree: malformed structure description")
	ErrInvalidBlob     = errors.New("guitree: metadata blob is not decodable")
)

// IsRoutingConflict checks if err is a handler/action conflict.
func IsRoutingConflict(err error) bool {
	return errors.Is(err, ErrRoutingConflict)
}

// IsBadStructure checks if err came from structure validation.
func IsBadStructure(err error) bool {
	return errors.Is(err, ErrBadStructure)
}

// wrapBlobError maps encoding package errors to guitree sentinel errors.
func wrapBlobError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, encoding.ErrInvalidFormat) {
		return errors.Join(ErrInvalidBlob, err)
	}
	return err
}
