package character

import "errors"

// ErrUnknownClass is returned when an operation needs class content for a
// character whose class the registry does not define.
var ErrUnknownClass = errors.New("unknown class")

// ErrNilSource is returned when a roll is attempted without a dice roller.
var ErrNilSource = errors.New("nil dice roller")
