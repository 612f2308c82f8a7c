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

package tracegen

import (
	"github.com/cockroachdb/errors"
)

// ErrorKind distinguishes the two failure categories of the trace engine.
type ErrorKind int

const (
	// KindUnknown is any error not raised by the engine itself (e.g. I/O).
	KindUnknown ErrorKind = iota
	// KindConfiguration marks malformed distribution specs and invalid parameters.
	KindConfiguration
	// KindInvariant marks a sampled value outside of its required range.
	KindInvariant
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration error"
	case KindInvariant:
		return "invariant violation"
	default:
		return "unknown error"
	}
}

var (
	// ErrConfiguration is the mark of all configuration errors.
	ErrConfiguration = errors.New("configuration error")
	// ErrInvariantViolation is the mark of all invariant violations.
	ErrInvariantViolation = errors.New("invariant violation")
)

// ConfigErrorf creates a new error marked as configuration error.
func ConfigErrorf(format string, args ...any) error {
	return errors.Mark(errors.NewWithDepthf(1, format, args...), ErrConfiguration)
}

// InvariantErrorf creates a new error marked as invariant violation.
func InvariantErrorf(format string, args ...any) error {
	return errors.Mark(errors.NewWithDepthf(1, format, args...), ErrInvariantViolation)
}

// WrapConfig marks an existing error as configuration error and adds context.
func WrapConfig(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return errors.Mark(errors.WrapWithDepthf(1, err, format, args...), ErrConfiguration)
}

// KindOf returns the category of the given error.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrConfiguration):
		return KindConfiguration
	case errors.Is(err, ErrInvariantViolation):
		return KindInvariant
	default:
		return KindUnknown
	}
}
