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

// Package request turns block addresses into storage requests.
package request

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/0xsoniclabs/aida-tracegen/tracegen"
	"github.com/0xsoniclabs/aida-tracegen/tracegen/distribution"
	"github.com/cockroachdb/errors"
	"golang.org/x/exp/rand"
)

// Request is a single storage access. Size and Offset are in bytes.
type Request struct {
	Write  bool
	Size   int64
	Offset int64
}

// String renders the request as "<write> <size> <offset>" where write is 0 or 1.
func (r Request) String() string {
	w := 0
	if r.Write {
		w = 1
	}
	return fmt.Sprintf("%d %d %d", w, r.Size, r.Offset)
}

// Block returns the block address of the request.
func (r Request) Block(blockSize int64) int64 {
	return r.Offset / blockSize
}

// Parse reads a request from its textual representation.
func Parse(line string) (Request, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return Request{}, errors.Newf("malformed request %q; expected 3 fields, got %d", line, len(fields))
	}
	var r Request
	switch fields[0] {
	case "0":
	case "1":
		r.Write = true
	default:
		return Request{}, errors.Newf("malformed request %q; invalid write flag %q", line, fields[0])
	}
	var err error
	if r.Size, err = strconv.ParseInt(fields[1], 10, 64); err != nil || r.Size <= 0 {
		return Request{}, errors.Newf("malformed request %q; invalid size %q", line, fields[1])
	}
	if r.Offset, err = strconv.ParseInt(fields[2], 10, 64); err != nil || r.Offset < 0 {
		return Request{}, errors.Newf("malformed request %q; invalid offset %q", line, fields[2])
	}
	return r, nil
}

// Annotator decides direction and size of the request issued for each
// address. The read flag is drawn before the size.
type Annotator struct {
	sizes        distribution.Sampler
	readFraction float64
	blockSize    int64
	rg           *rand.Rand
}

// NewAnnotator creates an annotator issuing reads with the given
// probability and sizes (in blocks) drawn from sizes.
func NewAnnotator(sizes distribution.Sampler, readFraction float64, blockSize int64, rg *rand.Rand) (*Annotator, error) {
	if sizes == nil {
		return nil, tracegen.ConfigErrorf("no size distribution given")
	}
	if math.IsNaN(readFraction) || readFraction < 0 || readFraction > 1 {
		return nil, tracegen.ConfigErrorf("read fraction (%v) is not in [0,1]", readFraction)
	}
	if blockSize <= 0 {
		return nil, tracegen.ConfigErrorf("block size (%d) must be positive", blockSize)
	}
	return &Annotator{
		sizes:        sizes,
		readFraction: readFraction,
		blockSize:    blockSize,
		rg:           rg,
	}, nil
}

// BlockSize returns the block size in bytes.
func (a *Annotator) BlockSize() int64 {
	return a.blockSize
}

// Annotate creates the request for a block address.
func (a *Annotator) Annotate(addr int64) Request {
	read := a.rg.Float64() < a.readFraction
	size := a.sizes.Sample(a.rg)
	return Request{
		Write:  !read,
		Size:   size * a.blockSize,
		Offset: addr * a.blockSize,
	}
}
