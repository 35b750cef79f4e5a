package journal

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		return nil, err
	}

	return &SQLite{db: db}, nil
}

func (j *SQLite) RecordSubmission(s SubmissionRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO submissions
		(id, ticket, instrument, side, volume, price, stop_loss, take_profit, comment, status, code, time)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.Ticket, s.Instrument, s.Side, s.Volume, s.Price,
		s.StopLoss, s.TakeProfit, s.Comment, s.Status, s.Code, s.Time,
	)
	return err
}

func (j *SQLite) RecordClose(c CloseRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO closes
		(id, ticket, instrument, close_price, profit, reason, time)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.Ticket, c.Instrument, c.ClosePrice, c.Profit, c.Reason, c.Time,
	)
	return err
}

func (j *SQLite) Close() error {
	return j.db.Close()
}
