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

package analysis

import (
	"bufio"
	"io"
	"iter"

	"github.com/0xsoniclabs/aida-tracegen/tracegen/request"
	"github.com/cockroachdb/errors"
	"github.com/klauspost/compress/gzip"
)

// gzipMagic are the first bytes of every gzip stream.
var gzipMagic = []byte{0x1f, 0x8b}

// ReadTrace returns the block addresses of a trace in the request line
// format. Compressed traces are detected by their gzip header. The
// sequence stops after the first error.
func ReadTrace(r io.Reader, blockSize int64) iter.Seq2[int64, error] {
	return func(yield func(int64, error) bool) {
		if blockSize <= 0 {
			yield(0, errors.Newf("block size (%d) must be positive", blockSize))
			return
		}
		buffered := bufio.NewReader(r)
		var in io.Reader = buffered
		if magic, err := buffered.Peek(len(gzipMagic)); err == nil && string(magic) == string(gzipMagic) {
			gzipReader, err := gzip.NewReader(buffered)
			if err != nil {
				yield(0, errors.Wrap(err, "could not create gzip reader for trace"))
				return
			}
			defer gzipReader.Close()
			in = gzipReader
		}

		scanner := bufio.NewScanner(in)
		line := 0
		for scanner.Scan() {
			line++
			if len(scanner.Bytes()) == 0 {
				continue
			}
			req, err := request.Parse(scanner.Text())
			if err != nil {
				yield(0, errors.Wrapf(err, "line %d", line))
				return
			}
			if !yield(req.Block(blockSize), nil) {
				return
			}
		}
		if err := scanner.Err(); err != nil {
			yield(0, errors.Wrap(err, "cannot read trace"))
		}
	}
}
