// journal/schema.go
package journal

const Schema = `
CREATE TABLE IF NOT EXISTS submissions (
	id TEXT PRIMARY KEY,
	ticket INTEGER NOT NULL,
	instrument TEXT NOT NULL,
	side TEXT NOT NULL,
	volume REAL NOT NULL,
	price REAL NOT NULL,
	stop_loss REAL NOT NULL,
	take_profit REAL NOT NULL,
	comment TEXT NOT NULL,
	status TEXT NOT NULL,
	code INTEGER NOT NULL,
	time DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS closes (
	id TEXT PRIMARY KEY,
	ticket INTEGER NOT NULL,
	instrument TEXT NOT NULL,
	close_price REAL NOT NULL,
	profit REAL NOT NULL,
	reason TEXT NOT NULL,
	time DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_submissions_ticket ON submissions(ticket);
CREATE INDEX IF NOT EXISTS idx_closes_ticket ON closes(ticket);
`
