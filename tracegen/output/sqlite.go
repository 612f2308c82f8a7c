// Copyright 2025 Sonic Labs
// This file is part of Aida Testing Infrastructure for Sonic
//
// Aida is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Aida is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Aida. If not, see <http://www.gnu.org/licenses/>.

package output

import (
	"github.com/0xsoniclabs/aida-tracegen/tracegen/request"
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	// registers the sqlite3 driver
	_ "github.com/mattn/go-sqlite3"
)

const (
	// bufferSize is the number of requests inserted per transaction
	bufferSize = 1000

	createRequestsSQL = `
PRAGMA journal_mode = MEMORY;
CREATE TABLE IF NOT EXISTS requests (
	"run_id" TEXT,
	"seq" INTEGER,
	"write" INTEGER,
	"size" INTEGER,
	"offset" INTEGER
);
`
	insertRequestSQL = `
INSERT INTO requests (
	"run_id", "seq", "write", "size", "offset"
) VALUES (
	?, ?, ?, ?, ?
)
`
)

// SQLiteWriter stores requests in the requests table of a sqlite3
// database. All requests of one writer share a run id.
type SQLiteWriter struct {
	db     *sqlx.DB
	stmt   *sqlx.Stmt
	runID  string
	seq    int64             // sequence number of the next request
	buffer []request.Request // requests not yet inserted
	err    error             // first failed flush; the writer is unusable afterwards
}

// NewSQLiteWriter opens (or creates) a sqlite3 database and prepares it
// for a new run.
func NewSQLiteWriter(dbFile string) (*SQLiteWriter, error) {
	db, err := sqlx.Open("sqlite3", dbFile)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open database %v", dbFile)
	}
	w, err := newSQLiteWriter(db, uuid.NewString())
	if err != nil {
		return nil, errors.CombineErrors(err, db.Close())
	}
	return w, nil
}

func newSQLiteWriter(db *sqlx.DB, runID string) (*SQLiteWriter, error) {
	if _, err := db.Exec(createRequestsSQL); err != nil {
		return nil, errors.Wrap(err, "failed to create requests table")
	}
	stmt, err := db.Preparex(insertRequestSQL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to prepare insert statement")
	}
	return &SQLiteWriter{
		db:     db,
		stmt:   stmt,
		runID:  runID,
		buffer: make([]request.Request, 0, bufferSize),
	}, nil
}

// RunID returns the identifier stored with every request of this writer.
func (w *SQLiteWriter) RunID() string {
	return w.runID
}

func (w *SQLiteWriter) Write(req request.Request) error {
	if w.err != nil {
		return w.err
	}
	w.buffer = append(w.buffer, req)
	if len(w.buffer) == cap(w.buffer) {
		if err := w.Flush(); err != nil {
			return errors.Wrap(err, "unable to flush requests")
		}
	}
	return nil
}

// Flush inserts all buffered requests in a single transaction. A failed
// flush discards the buffer and is reported by all later calls.
func (w *SQLiteWriter) Flush() error {
	if w.err != nil {
		return w.err
	}
	if len(w.buffer) == 0 {
		return nil
	}
	if err := w.insert(); err != nil {
		w.err = err
		w.buffer = w.buffer[:0]
		return err
	}
	return nil
}

func (w *SQLiteWriter) insert() error {
	tx, err := w.db.Beginx()
	if err != nil {
		return err
	}
	stmt := tx.Stmtx(w.stmt)
	seq := w.seq
	for _, req := range w.buffer {
		write := int64(0)
		if req.Write {
			write = 1
		}
		if _, err := stmt.Exec(w.runID, seq, write, req.Size, req.Offset); err != nil {
			return errors.CombineErrors(err, tx.Rollback())
		}
		seq++
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	w.seq = seq
	w.buffer = w.buffer[:0]
	return nil
}

// Close flushes pending requests and closes the database.
func (w *SQLiteWriter) Close() error {
	err := w.Flush()
	err = errors.CombineErrors(err, w.stmt.Close())
	return errors.CombineErrors(err, w.db.Close())
}
