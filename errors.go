package kdtree

import (
	"github.com/pkg/errors"
)

// ErrInvalidInput is returned when a point or rectangle argument is malformed.
// Returned errors wrap it; test with errors.Cause(err) == ErrInvalidInput.
var ErrInvalidInput = errors.New("invalid input")

func invalidPoint(op string, p Point) error {
	return errors.Wrapf(ErrInvalidInput, "%s: malformed point %v", op, p)
}

func invalidRect(op string, r Rect) error {
	return errors.Wrapf(ErrInvalidInput, "%s: malformed rectangle %v", op, r)
}
