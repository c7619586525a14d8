package storm

import (
	"errors"
	"fmt"
)

// Sentinel error kinds for track assembly. Callers match with errors.Is;
// both grid errors also match ErrInvalidTimeGrid.
var (
	ErrInvalidTimeGrid       = errors.New("invalid time grid")
	ErrTimeGridTooShort      = fmt.Errorf("%w: fewer than 2 points", ErrInvalidTimeGrid)
	ErrTimeGridNotIncreasing = fmt.Errorf("%w: not strictly increasing", ErrInvalidTimeGrid)
	ErrNegativeIntensity     = errors.New("negative max wind speed")
)
