// Copyright 2021 Optakt Labs OÜ
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package operation

// Sequence is an ordered list of operations that only grows by appending.
// It is owned by a single transaction and is not safe for concurrent use.
type Sequence struct {
	ops []Operation
}

// NewSequence creates a sequence holding copies of the given operations.
func NewSequence(ops ...Operation) *Sequence {
	s := Sequence{
		ops: make([]Operation, 0, len(ops)),
	}
	for _, op := range ops {
		s.ops = append(s.ops, Copy(op))
	}
	return &s
}

// Append adds a copy of the operation at the end of the sequence.
func (s *Sequence) Append(op Operation) *Sequence {
	s.ops = append(s.ops, Copy(op))
	return s
}

// Extend appends copies of all operations of the other sequence.
func (s *Sequence) Extend(other *Sequence) *Sequence {
	if other == nil {
		return s
	}
	// Snapshot first, so that extending a sequence with itself terminates.
	ops := other.Operations()
	s.ops = append(s.ops, ops...)
	return s
}

// Operations returns a deep copy of the operations, which the caller can
// modify freely.
func (s *Sequence) Operations() []Operation {
	ops := make([]Operation, 0, len(s.ops))
	for _, op := range s.ops {
		ops = append(ops, Copy(op))
	}
	return ops
}

// Len returns the number of operations in the sequence.
func (s *Sequence) Len() int {
	return len(s.ops)
}

// Copy returns an independent deep copy of the sequence.
func (s *Sequence) Copy() *Sequence {
	return NewSequence(s.ops...)
}
