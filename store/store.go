// Package store is a small key/value text-file capability: open a named
// file for reading or writing, move one record at a time, close. Records
// are CSV rows of exactly two fields.
package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
)

// Mode selects how a store file is opened.
type Mode int

const (
	Read Mode = iota
	Write
)

var (
	ErrClosed    = errors.New("store: file closed")
	ErrWrongMode = errors.New("store: wrong mode for operation")
)

type File struct {
	name   string
	mode   Mode
	f      *os.File
	r      *csv.Reader
	w      *csv.Writer
	closed bool
}

// Open opens the named store file. Write truncates, Read expects the file
// to exist. On failure the error is returned immediately and there is no
// handle to release.
func Open(name string, mode Mode) (*File, error) {
	var (
		f   *os.File
		err error
	)

	switch mode {
	case Read:
		f, err = os.Open(name)
	case Write:
		f, err = os.Create(name)
	default:
		return nil, fmt.Errorf("store: unknown mode %d", mode)
	}
	if err != nil {
		return nil, fmt.Errorf("open store %q: %w", name, err)
	}

	s := &File{name: name, mode: mode, f: f}
	switch mode {
	case Read:
		s.r = csv.NewReader(f)
		s.r.FieldsPerRecord = 2
	case Write:
		s.w = csv.NewWriter(f)
	}
	return s, nil
}

// WriteRecord appends one key/value record and flushes it to the file.
func (s *File) WriteRecord(key, value string) error {
	if s.closed {
		return ErrClosed
	}
	if s.mode != Write {
		return ErrWrongMode
	}

	if err := s.w.Write([]string{key, value}); err != nil {
		return fmt.Errorf("write store %q: %w", s.name, err)
	}
	s.w.Flush()
	if err := s.w.Error(); err != nil {
		return fmt.Errorf("write store %q: %w", s.name, err)
	}
	return nil
}

// ReadRecord reads the next key/value record. io.EOF signals the end of
// the file.
func (s *File) ReadRecord() (key, value string, err error) {
	if s.closed {
		return "", "", ErrClosed
	}
	if s.mode != Read {
		return "", "", ErrWrongMode
	}

	rec, err := s.r.Read()
	if err != nil {
		return "", "", err
	}
	return rec[0], rec[1], nil
}

// Close releases the file handle. Safe to call once per open on every
// path; WriteRecord flushes eagerly so Close has nothing left to lose.
func (s *File) Close() error {
	if s.closed {
		return ErrClosed
	}
	s.closed = true

	if s.w != nil {
		s.w.Flush()
		if err := s.w.Error(); err != nil {
			s.f.Close()
			return fmt.Errorf("close store %q: %w", s.name, err)
		}
	}
	if err := s.f.Close(); err != nil {
		return fmt.Errorf("close store %q: %w", s.name, err)
	}
	return nil
}
