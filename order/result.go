package order

import "fmt"

// Status is the outcome of a submission. StatusDone is the single success
// value; anything else is a failure.
type Status int

const (
	StatusDone Status = iota
	StatusRejected
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusDone:
		return "DONE"
	case StatusRejected:
		return "REJECTED"
	case StatusFailed:
		return "FAILED"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Code carries the failure detail alongside a non-DONE status. It replaces
// the ambient "last error" query some platforms expose: the detail travels
// in the result instead of a call-sequence-dependent global.
type Code int

const (
	CodeNone Code = iota
	CodeInvalidVolume
	CodeUnknownSide
	CodeUnknownInstrument
	CodeNoPrice
	CodeRejected
	CodePositionNotFound
)

func (c Code) String() string {
	switch c {
	case CodeNone:
		return "none"
	case CodeInvalidVolume:
		return "invalid volume"
	case CodeUnknownSide:
		return "unknown side"
	case CodeUnknownInstrument:
		return "unknown instrument"
	case CodeNoPrice:
		return "no price"
	case CodeRejected:
		return "rejected by venue"
	case CodePositionNotFound:
		return "position not found"
	}
	return fmt.Sprintf("Code(%d)", int(c))
}

// Result is what the venue hands back for a submitted Request. Ticket is
// only meaningful when Status is StatusDone.
type Result struct {
	Status Status
	Ticket int64
	Code   Code
}

// Check classifies a result: the ticket and true on success, zero and
// false otherwise. On failure the detail stays available in Status and Code.
func (r Result) Check() (int64, bool) {
	if r.Status == StatusDone {
		return r.Ticket, true
	}
	return 0, false
}

// Rejected builds a failure result with the given detail code.
func Rejected(code Code) Result {
	return Result{Status: StatusRejected, Code: code}
}
