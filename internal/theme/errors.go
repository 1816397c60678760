package theme

import (
	"errors"
	"fmt"
)

// Theme errors.
var (
	ErrMissingKey      = errors.New("missing color key")
	ErrUnknownColorKey = errors.New("unknown color key")
	ErrInvalidColor    = errors.New("invalid color")
	ErrInvalidMode     = errors.New("invalid mode")
)

// MissingKeyError reports a role absent from a palette.
type MissingKeyError struct {
	Mode Mode
	Key  ColorKey
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("%s palette: %s: %s", e.Mode, ErrMissingKey, e.Key)
}

// Is makes errors.Is(err, ErrMissingKey) match.
func (e *MissingKeyError) Is(target error) bool {
	return target == ErrMissingKey
}
