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

// Package output provides sinks for generated requests.
package output

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/0xsoniclabs/aida-tracegen/tracegen/request"
	"github.com/cockroachdb/errors"
	"github.com/klauspost/compress/gzip"
)

// Writer consumes the requests of a trace in order.
//
//go:generate mockgen -source writer.go -destination writer_mock.go -package output
type Writer interface {
	Write(req request.Request) error
	Close() error
}

// Writers forwards every request to all of its writers.
type Writers []Writer

func (ws Writers) Write(req request.Request) error {
	for _, w := range ws {
		if err := w.Write(req); err != nil {
			return err
		}
	}
	return nil
}

// Close closes all writers, even if some of them fail.
func (ws Writers) Close() error {
	var err error
	for _, w := range ws {
		err = errors.CombineErrors(err, w.Close())
	}
	return err
}

// textWriter writes one request per line.
type textWriter struct {
	buffer  *bufio.Writer
	closers []io.Closer // closed in order after the buffer is flushed
}

// NewTextWriter writes requests to w. Closing the writer flushes
// pending output but leaves w open.
func NewTextWriter(w io.Writer) Writer {
	return &textWriter{buffer: bufio.NewWriter(w)}
}

// NewFileWriter creates a new trace file. Files with a .gz suffix are
// gzip compressed. Existing files are not overwritten.
func NewFileWriter(filename string) (Writer, error) {
	_, err := os.Stat(filename)
	if err == nil {
		return nil, errors.Newf("file %s already exists", filename)
	}

	file, err := os.Create(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot create trace file %s", filename)
	}
	if !strings.HasSuffix(filename, ".gz") {
		return &textWriter{
			buffer:  bufio.NewWriter(file),
			closers: []io.Closer{file},
		}, nil
	}
	gzipWriter := gzip.NewWriter(file)
	return &textWriter{
		buffer:  bufio.NewWriter(gzipWriter),
		closers: []io.Closer{gzipWriter, file},
	}, nil
}

func (w *textWriter) Write(req request.Request) error {
	if _, err := w.buffer.WriteString(req.String()); err != nil {
		return errors.Wrap(err, "error writing request to buffer")
	}
	if err := w.buffer.WriteByte('\n'); err != nil {
		return errors.Wrap(err, "error writing request to buffer")
	}
	return nil
}

func (w *textWriter) Close() error {
	err := w.buffer.Flush()
	for _, c := range w.closers {
		err = errors.CombineErrors(err, c.Close())
	}
	return err
}
