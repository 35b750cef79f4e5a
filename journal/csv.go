package journal

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"
)

type CSVJournal struct {
	subs   *csv.Writer
	closes *csv.Writer
	sf, cf *os.File
}

func NewCSV(submissionsPath, closesPath string) (*CSVJournal, error) {
	sf, err := os.Create(submissionsPath)
	if err != nil {
		return nil, err
	}
	cf, err := os.Create(closesPath)
	if err != nil {
		sf.Close()
		return nil, err
	}

	sw := csv.NewWriter(sf)
	cw := csv.NewWriter(cf)

	if err := sw.Write([]string{"id", "ticket", "instrument", "side", "volume", "price", "stop_loss", "take_profit", "comment", "status", "code", "time"}); err != nil {
		return nil, err
	}
	if err := cw.Write([]string{"id", "ticket", "instrument", "close_price", "profit", "reason", "time"}); err != nil {
		return nil, err
	}

	sw.Flush()
	if err := sw.Error(); err != nil {
		return nil, err
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return nil, err
	}

	return &CSVJournal{sw, cw, sf, cf}, nil
}

func (j *CSVJournal) RecordSubmission(s SubmissionRecord) error {
	err := j.subs.Write([]string{
		s.ID,
		strconv.FormatInt(s.Ticket, 10),
		s.Instrument,
		s.Side,
		f(s.Volume),
		f(s.Price),
		f(s.StopLoss),
		f(s.TakeProfit),
		s.Comment,
		s.Status,
		strconv.Itoa(s.Code),
		s.Time.Format(time.RFC3339),
	})
	if err != nil {
		return err
	}

	j.subs.Flush()
	return j.subs.Error()
}

func (j *CSVJournal) RecordClose(c CloseRecord) error {
	err := j.closes.Write([]string{
		c.ID,
		strconv.FormatInt(c.Ticket, 10),
		c.Instrument,
		f(c.ClosePrice),
		f(c.Profit),
		c.Reason,
		c.Time.Format(time.RFC3339),
	})
	if err != nil {
		return err
	}

	j.closes.Flush()
	return j.closes.Error()
}

func (j *CSVJournal) Close() error {
	j.subs.Flush()
	if err := j.subs.Error(); err != nil {
		return err
	}
	j.closes.Flush()
	if err := j.closes.Error(); err != nil {
		return err
	}

	if err := j.sf.Close(); err != nil {
		return err
	}
	if err := j.cf.Close(); err != nil {
		return err
	}
	return nil
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
