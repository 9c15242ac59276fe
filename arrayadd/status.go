package arrayadd

import "fmt"

// Status is the result code returned by the exercise entry points.
type Status uint16

const (
	// StatusOK means the operation ran, or every element matched.
	StatusOK Status = iota
	// StatusMismatch means the comparator found an element that differs.
	StatusMismatch
	// StatusUnsupported means the requested vector kernel is not available
	// on this CPU or in this build; no output was written.
	StatusUnsupported

	statusCount // sentinel for validation
)

var statusNames = [statusCount]string{
	"OK", "Mismatch", "Unsupported",
}

// String returns the name of the status.
func (s Status) String() string {
	if s < statusCount {
		return statusNames[s]
	}
	return fmt.Sprintf("Status(%d)", uint16(s))
}
