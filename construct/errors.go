package construct

import "strconv"

// MissingFieldError is returned by NewCarStrict when a required input field
// with no documented default is absent.
type MissingFieldError struct{ Field string }

// Error implements the error interface.
func (e MissingFieldError) Error() string {
	// Example: construct: missing required field "Model"
	return "construct: missing required field " + strconv.Quote(e.Field)
}
