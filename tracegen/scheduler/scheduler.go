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

package scheduler

import "container/heap"

// Entry is a tracked address together with the distance at which it is
// due to be referenced next.
type Entry struct {
	Due     int64 // distance until the next reference
	Address int64 // tracked address
	Group   int   // group of the address (zero for a single stream)
}

// entries implements heap.Interface as a min-heap on Due.
type entries []Entry

func (h entries) Len() int           { return len(h) }
func (h entries) Less(i, j int) bool { return h[i].Due < h[j].Due }
func (h entries) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *entries) Push(x any) {
	*h = append(*h, x.(Entry))
}

func (h *entries) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]
	return e
}

// Scheduler is a min-priority queue of entries keyed by their due distance.
// Entries with equal due distances are popped in arbitrary order.
type Scheduler struct {
	heap entries
}

// New creates a scheduler owning the given entries. The heap is built in
// linear time.
func New(initial []Entry) *Scheduler {
	s := &Scheduler{heap: entries(initial)}
	heap.Init(&s.heap)
	return s
}

// Len returns the number of tracked entries.
func (s *Scheduler) Len() int {
	return s.heap.Len()
}

// Peek returns the entry with the smallest due distance without removing it.
func (s *Scheduler) Peek() (Entry, bool) {
	if s.heap.Len() == 0 {
		return Entry{}, false
	}
	return s.heap[0], true
}

// Pop removes and returns the entry with the smallest due distance.
// Pop panics if the scheduler is empty.
func (s *Scheduler) Pop() Entry {
	if s.heap.Len() == 0 {
		panic("scheduler: pop from empty scheduler")
	}
	return heap.Pop(&s.heap).(Entry)
}

// Push inserts an entry.
func (s *Scheduler) Push(e Entry) {
	heap.Push(&s.heap, e)
}
