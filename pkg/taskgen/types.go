package taskgen

import "fmt"

// RequestType is the category of an ATM service task.
type RequestType string

const (
	Standard       RequestType = "STANDARD"
	Priority       RequestType = "PRIORITY"
	FailureRestart RequestType = "FAILURE_RESTART"
	SignalLow      RequestType = "SIGNAL_LOW"
)

// FallbackRequestType is assigned to every position the category pool
// does not cover after per-category counts are floored.
const FallbackRequestType = Standard

// RequestTypes lists the closed set of categories.
var RequestTypes = []RequestType{Standard, Priority, FailureRestart, SignalLow}

// Valid reports whether t is one of the known request types.
func (t RequestType) Valid() bool {
	switch t {
	case Standard, Priority, FailureRestart, SignalLow:
		return true
	}
	return false
}

func (t RequestType) String() string {
	return string(t)
}

// ParseRequestType maps a literal back to its RequestType.
func ParseRequestType(s string) (RequestType, error) {
	t := RequestType(s)
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownRequestType, s)
	}
	return t, nil
}

// Bounds shared by region and atmId.
const (
	MinID = 1
	MaxID = 9999
)

// Task is a single ATM service request as consumed by the ATM service.
type Task struct {
	Region      int         `json:"region"`
	RequestType RequestType `json:"requestType"`
	AtmID       int         `json:"atmId"`
}

// Validate checks the record invariants.
func (t Task) Validate() error {
	if t.Region < MinID || t.Region > MaxID {
		return fmt.Errorf("region %d out of range [%d, %d]", t.Region, MinID, MaxID)
	}
	if !t.RequestType.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownRequestType, t.RequestType)
	}
	if t.AtmID < MinID || t.AtmID > MaxID {
		return fmt.Errorf("atmId %d out of range [%d, %d]", t.AtmID, MinID, MaxID)
	}
	return nil
}
