package history

import (
	"encoding/json"
	"time"
)

// Version is the current record format version.
const Version = 1

// Record is the outcome of one tick.
type Record struct {
	Version   int           `json:"version"`
	Tree      string        `json:"tree"`
	TickID    string        `json:"tick_id"`
	Sequence  int           `json:"sequence"`
	Status    string        `json:"status,omitempty"`
	Duration  time.Duration `json:"duration_ns"`
	Error     string        `json:"error,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
}

// New creates a record for a tick that finished now.
// status is empty when the tick ended with an error before producing one.
func New(tree, tickID, status string, duration time.Duration) Record {
	return Record{
		Version:   Version,
		Tree:      tree,
		TickID:    tickID,
		Status:    status,
		Duration:  duration,
		Timestamp: time.Now().UTC(),
	}
}

// WithError sets the error message for a tick that ended with an error.
func (r Record) WithError(err error) Record {
	if err != nil {
		r.Error = err.Error()
	}
	return r
}

// Marshal serializes a record to JSON.
func (r Record) Marshal() ([]byte, error) {
	return json.Marshal(r)
}

// Unmarshal deserializes a record from JSON.
func Unmarshal(data []byte) (Record, error) {
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return Record{}, err
	}
	return r, nil
}
