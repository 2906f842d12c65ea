package screen

import "errors"

// Widget draw failures. All are local to a single call: the failing widget
// aborts without touching the controller state, but pixels drawn before the
// failure are not rolled back.
var (
	// ErrTextTooLong reports text that cannot fit the screen at the
	// requested scale. Text is never silently truncated.
	ErrTextTooLong = errors.New("screen: text too long")

	// ErrTooManyLines reports a subtitle with more than two lines.
	ErrTooManyLines = errors.New("screen: too many subtitle lines")

	// ErrInvalidRange reports bounds that leave no drawable range, such as
	// a gauge with minimum equal to maximum.
	ErrInvalidRange = errors.New("screen: invalid range")

	// ErrIndexOutOfRange reports a menu selection outside the item list.
	ErrIndexOutOfRange = errors.New("screen: index out of range")

	// ErrUnknownExpression reports a face expression with no bitmap. There
	// is no fallback face.
	ErrUnknownExpression = errors.New("screen: unknown expression")
)
