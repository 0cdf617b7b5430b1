package matching

import "errors"

// Sentinel errors for the rejections the engine itself recognises. Wrap with
// fmt.Errorf("%w: id %d", ErrX, id) so callers can both errors.Is against the
// sentinel and read the offending id out of the message.
var (
	ErrDuplicateOrderID = errors.New("matching: order id already live")
	ErrInvalidQuantity  = errors.New("matching: quantity must be greater than zero")
	ErrInvalidPrice     = errors.New("matching: limit price must be greater than zero")
)
