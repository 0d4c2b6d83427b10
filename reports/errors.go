package reports

import "errors"

// ErrEntityNotFound is returned when the case or volunteer does not exist, or
// when the volunteer is not assigned to the case. Callers should treat it as
// "nothing to report" rather than a broken report setup.
var ErrEntityNotFound = errors.New("entity not found")
