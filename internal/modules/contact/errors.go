package contact

import (
	"errors"
	"fmt"
)

var ErrValidation = errors.New("validation failed")

func validationError(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}
