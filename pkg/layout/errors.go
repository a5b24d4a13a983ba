package layout

import "fmt"

// ValidationError reports a fragment whose required geometry is missing or corrupt.
// Input carrying such a fragment is treated as broken as a whole.
type ValidationError struct {
	Page   int    // 1-based page number, 0 if unknown
	Index  int    // position of the fragment inside its page
	Field  string // attribute name, e.g. "X" or "HEIGHT"
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Page > 0 {
		return fmt.Sprintf("invalid fragment %d on page %d: %s: %s", e.Index, e.Page, e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid fragment %d: %s: %s", e.Index, e.Field, e.Reason)
}
