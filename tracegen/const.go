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

// PopularityScale is the fixed-point scale of quantized popularity weights.
const PopularityScale = 10000.0

// WeightTolerance is the accepted deviation of a normalized weight vector from one.
const WeightTolerance = 1e-9

// Default values of the generator tools.
const (
	DefaultSeed      = 42
	DefaultBlockSize = 4096
	DefaultIRD       = "b"
	DefaultIRM       = "zipf:1.2,20"
	DefaultSizes     = "1:1"
)
