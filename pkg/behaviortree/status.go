package behaviortree

import "fmt"

// Status is the result of evaluating a node.
//
// The set of values is closed: Success, Running and Fail. Failure is an
// ordinary result, not an error.
type Status uint8

const (
	// Success reports that the node completed and its goal holds.
	Success Status = iota
	// Running reports that the node has not finished yet and should be
	// evaluated again on a later tick.
	Running
	// Fail reports that the node completed without achieving its goal.
	Fail
)

// String returns the lower-case status name.
func (s Status) String() string {
	switch s {
	case Success:
		return "success"
	case Running:
		return "running"
	case Fail:
		return "fail"
	default:
		return fmt.Sprintf("status(%d)", uint8(s))
	}
}

// Valid reports whether s is one of the three defined statuses.
func (s Status) Valid() bool {
	return s <= Fail
}

// ParseStatus converts a name produced by String back into a Status.
func ParseStatus(name string) (Status, error) {
	switch name {
	case "success":
		return Success, nil
	case "running":
		return Running, nil
	case "fail":
		return Fail, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidStatus, name)
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, &InvalidStatusError{Status: s}
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
