// journal/journal.go
package journal

import "time"

// SubmissionRecord captures one order submission and the venue's answer,
// whether or not it succeeded.
type SubmissionRecord struct {
	ID         string // ULID, time-sortable
	Ticket     int64  // 0 unless the submission filled
	Instrument string
	Side       string
	Volume     float64
	Price      float64
	StopLoss   float64
	TakeProfit float64
	Comment    string
	Status     string
	Code       int
	Time       time.Time
}

// CloseRecord captures a position leaving the book: a protective level
// fired or the position was closed by hand.
type CloseRecord struct {
	ID         string
	Ticket     int64
	Instrument string
	ClosePrice float64
	Profit     float64
	Reason     string
	Time       time.Time
}

type Journal interface {
	RecordSubmission(SubmissionRecord) error
	RecordClose(CloseRecord) error
	Close() error
}

// Nop discards everything. Used when journaling is disabled.
type Nop struct{}

func (Nop) RecordSubmission(SubmissionRecord) error { return nil }
func (Nop) RecordClose(CloseRecord) error           { return nil }
func (Nop) Close() error                            { return nil }
