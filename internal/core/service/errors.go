package service

import (
	"errors"
	"fmt"

	"github.com/Hunnisme/NT106-Projects/internal/core/domain"
)

var clientKinds = []error{
	domain.ErrInvalidInput,
	domain.ErrNotFound,
	domain.ErrForbidden,
	domain.ErrNoOp,
	domain.ErrConflict,
	domain.ErrInvalidCredentials,
}

// wrap adds operation context to storage failures. Domain errors pass through
// untouched so their message reaches the client as-is.
func wrap(op string, err error) error {
	for _, kind := range clientKinds {
		if errors.Is(err, kind) {
			return err
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
