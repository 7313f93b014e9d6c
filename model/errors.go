package model

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrInvariantViolation marks lookups into state the caller guaranteed to
// exist. It indicates corrupt input, not a runtime condition.
var ErrInvariantViolation = errors.New("core invariant violation")

type InvariantViolation struct {
	What string
	Key  string
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("%v: missing %s %q", ErrInvariantViolation, e.What, e.Key)
}

func (e *InvariantViolation) Is(target error) bool {
	return target == ErrInvariantViolation
}

func Missing(what, key string) error {
	return errors.WithStack(&InvariantViolation{What: what, Key: key})
}
