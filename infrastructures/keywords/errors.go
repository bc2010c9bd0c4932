package keywords

import (
	"github.com/pkg/errors"
)

// ErrEmptyInput is returned when extraction receives no text to work with.
var ErrEmptyInput = errors.New("empty input text")

// MaxInputLength bounds the text accepted by extraction routines. Longer
// input is truncated rather than rejected.
const MaxInputLength = 100000
