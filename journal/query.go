package journal

import (
	"database/sql"
	"fmt"
)

const submissionCols = `id, ticket, instrument, side, volume, price, stop_loss, take_profit, comment, status, code, time`

// GetSubmission returns the submission that produced the given ticket.
func (j *SQLite) GetSubmission(ticket int64) (SubmissionRecord, error) {
	row := j.db.QueryRow(`
		SELECT `+submissionCols+`
		FROM submissions
		WHERE ticket = ?`, ticket)

	rec, err := scanSubmission(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return SubmissionRecord{}, fmt.Errorf("submission for ticket %d not found", ticket)
		}
		return SubmissionRecord{}, err
	}
	return rec, nil
}

// ListSubmissions returns the most recent submissions, newest first.
// IDs are ULIDs so ordering by id orders by time.
func (j *SQLite) ListSubmissions(limit int) ([]SubmissionRecord, error) {
	rows, err := j.db.Query(`
		SELECT `+submissionCols+`
		FROM submissions
		ORDER BY id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SubmissionRecord
	for rows.Next() {
		rec, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListClosesByTicket returns close records for a ticket, oldest first.
func (j *SQLite) ListClosesByTicket(ticket int64) ([]CloseRecord, error) {
	rows, err := j.db.Query(`
		SELECT id, ticket, instrument, close_price, profit, reason, time
		FROM closes
		WHERE ticket = ?
		ORDER BY id ASC`, ticket)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []CloseRecord
	for rows.Next() {
		var rec CloseRecord
		if err := rows.Scan(
			&rec.ID,
			&rec.Ticket,
			&rec.Instrument,
			&rec.ClosePrice,
			&rec.Profit,
			&rec.Reason,
			&rec.Time,
		); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSubmission(s scanner) (SubmissionRecord, error) {
	var rec SubmissionRecord
	err := s.Scan(
		&rec.ID,
		&rec.Ticket,
		&rec.Instrument,
		&rec.Side,
		&rec.Volume,
		&rec.Price,
		&rec.StopLoss,
		&rec.TakeProfit,
		&rec.Comment,
		&rec.Status,
		&rec.Code,
		&rec.Time,
	)
	return rec, err
}
