package maybe

import (
	"errors"

	"github.com/oliverbestmann/maybe/internal/assert"
)

var ErrInvalidConstruction = errors.New("invalid Maybe constructor")

// ErrSourceClosed rejects a channel backed Source that was closed without a value.
var ErrSourceClosed = errors.New("source closed without a value")

// NotAFunctionError is the panic value raised by Map, Chain and Either
// when a callback is not a function. Param names the offending parameter.
type NotAFunctionError = assert.NotAFunctionError

// ArgumentError is the panic value raised by Either when the branch taken
// cannot accept its arguments.
type ArgumentError = assert.ArgumentError
