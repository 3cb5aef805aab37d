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

package metrics

import (
	"context"

	"github.com/optakt/near-batch/backend/wallet"
	"github.com/optakt/near-batch/outcome"
	"github.com/optakt/near-batch/transactor"
)

// Submitter wraps a submitter and records the duration and result of every
// submission.
type Submitter struct {
	submit transactor.Submitter
	time   *Time
}

// NewSubmitter wraps the given submitter.
func NewSubmitter(submit transactor.Submitter, time *Time) *Submitter {
	s := Submitter{
		submit: submit,
		time:   time,
	}
	return &s
}

func (s *Submitter) Transaction(ctx context.Context, tx wallet.Transaction) (out outcome.Outcome, err error) {
	done := s.time.Duration("transaction")
	defer func() { done(err) }()
	return s.submit.Transaction(ctx, tx)
}

// BatchSubmitter wraps a batch submitter and records the duration and result
// of both single and batch submissions.
type BatchSubmitter struct {
	*Submitter
	batch transactor.BatchSubmitter
}

// NewBatchSubmitter wraps the given batch submitter.
func NewBatchSubmitter(batch transactor.BatchSubmitter, time *Time) *BatchSubmitter {
	b := BatchSubmitter{
		Submitter: NewSubmitter(batch, time),
		batch:     batch,
	}
	return &b
}

func (b *BatchSubmitter) Transactions(ctx context.Context, txs []wallet.Transaction) (outs []outcome.Outcome, err error) {
	done := b.time.Duration("transactions")
	defer func() { done(err) }()
	return b.batch.Transactions(ctx, txs)
}

// Wrap returns the matching decorator for the submitter, so that batch
// support is preserved when the wrapped submitter has it.
func Wrap(submit transactor.Submitter, time *Time) transactor.Submitter {
	batch, ok := submit.(transactor.BatchSubmitter)
	if ok {
		return NewBatchSubmitter(batch, time)
	}
	return NewSubmitter(submit, time)
}
