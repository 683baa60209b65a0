package fractal

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParameters is returned (wrapped) for every malformed render request.
// No pixel buffer is produced when it is returned.
var ErrInvalidParameters = errors.New("invalid parameters")

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidParameters}, args...)...)
}

func finite(v ...float64) bool {
	for _, f := range v {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}
