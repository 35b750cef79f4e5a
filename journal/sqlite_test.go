package journal

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"

	"github.com/rustyeddy/orderdesk/internal/id"
)

func newTestSQLite(t *testing.T) (*SQLite, string) {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")

	j, err := NewSQLite(path)
	assert.NoError(t, err)

	return j, path
}

func TestSQLiteSchemaCreated(t *testing.T) {
	t.Parallel()

	j, path := newTestSQLite(t)
	assert.NoError(t, j.Close())

	db, err := sql.Open("sqlite3", path)
	assert.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	rows, err := db.Query(`SELECT name FROM sqlite_master WHERE type='table' AND name IN ('submissions','closes')`)
	assert.NoError(t, err)
	defer rows.Close()

	found := map[string]bool{}
	for rows.Next() {
		var name string
		assert.NoError(t, rows.Scan(&name))
		found[name] = true
	}
	assert.NoError(t, rows.Err())

	assert.True(t, found["submissions"])
	assert.True(t, found["closes"])
}

func TestSQLiteRecordSubmission(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	t.Cleanup(func() { _ = j.Close() })

	when := time.Date(2025, 3, 4, 10, 30, 0, 0, time.UTC)

	rec := SubmissionRecord{
		ID:         id.New(),
		Ticket:     1001,
		Instrument: "EUR_USD",
		Side:       "BUY",
		Volume:     0.5,
		Price:      1.0851,
		StopLoss:   1.0800,
		TakeProfit: 1.0950,
		Comment:    "breakout",
		Status:     "DONE",
		Code:       0,
		Time:       when,
	}
	assert.NoError(t, j.RecordSubmission(rec))

	got, err := j.GetSubmission(1001)
	assert.NoError(t, err)
	assert.Equal(t, rec.ID, got.ID)
	assert.Equal(t, rec.Instrument, got.Instrument)
	assert.Equal(t, rec.Side, got.Side)
	assert.Equal(t, rec.Volume, got.Volume)
	assert.Equal(t, rec.Status, got.Status)
	assert.True(t, got.Time.Equal(when))
}

func TestSQLiteGetSubmissionMissing(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	t.Cleanup(func() { _ = j.Close() })

	_, err := j.GetSubmission(9999)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestSQLiteListSubmissionsNewestFirst(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	t.Cleanup(func() { _ = j.Close() })

	for i := 0; i < 3; i++ {
		rec := SubmissionRecord{
			ID:         id.New(),
			Ticket:     int64(1001 + i),
			Instrument: "EUR_USD",
			Side:       "BUY",
			Volume:     1,
			Status:     "DONE",
			Time:       time.Now().UTC(),
		}
		assert.NoError(t, j.RecordSubmission(rec))
	}

	recs, err := j.ListSubmissions(2)
	assert.NoError(t, err)
	assert.Len(t, recs, 2)
	assert.Equal(t, int64(1003), recs[0].Ticket)
	assert.Equal(t, int64(1002), recs[1].Ticket)
}

func TestSQLiteRecordClose(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	t.Cleanup(func() { _ = j.Close() })

	rec := CloseRecord{
		ID:         id.New(),
		Ticket:     1001,
		Instrument: "EUR_USD",
		ClosePrice: 1.0800,
		Profit:     -25.5,
		Reason:     "StopLoss",
		Time:       time.Now().UTC(),
	}
	assert.NoError(t, j.RecordClose(rec))

	closes, err := j.ListClosesByTicket(1001)
	assert.NoError(t, err)
	assert.Len(t, closes, 1)
	assert.Equal(t, "StopLoss", closes[0].Reason)
	assert.Equal(t, -25.5, closes[0].Profit)
}
