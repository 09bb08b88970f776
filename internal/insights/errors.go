package insights

import "fmt"

// ErrInvalidStructure is returned when the raw response is missing the skill
// distribution or the category collection entirely.
var ErrInvalidStructure = fmt.Errorf("invalid response structure")

// IncompleteError is returned when a required category key is absent from the
// raw response.
type IncompleteError struct {
	Missing string
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("incomplete response: missing required category %q", e.Missing)
}
