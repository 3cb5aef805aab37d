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

package mocks

import (
	"context"
	"testing"

	"github.com/optakt/near-batch/backend/wallet"
	"github.com/optakt/near-batch/outcome"
)

type Submitter struct {
	TransactionFunc func(ctx context.Context, tx wallet.Transaction) (outcome.Outcome, error)
}

func BaselineSubmitter(t *testing.T) *Submitter {
	t.Helper()

	s := Submitter{
		TransactionFunc: func(context.Context, wallet.Transaction) (outcome.Outcome, error) {
			return GenericOutcome("ok"), nil
		},
	}

	return &s
}

func (s *Submitter) Transaction(ctx context.Context, tx wallet.Transaction) (outcome.Outcome, error) {
	return s.TransactionFunc(ctx, tx)
}

type BatchSubmitter struct {
	Submitter
	TransactionsFunc func(ctx context.Context, txs []wallet.Transaction) ([]outcome.Outcome, error)
}

func BaselineBatchSubmitter(t *testing.T) *BatchSubmitter {
	t.Helper()

	b := BatchSubmitter{
		Submitter: *BaselineSubmitter(t),
		TransactionsFunc: func(_ context.Context, txs []wallet.Transaction) ([]outcome.Outcome, error) {
			outcomes := make([]outcome.Outcome, 0, len(txs))
			for range txs {
				outcomes = append(outcomes, GenericOutcome("ok"))
			}
			return outcomes, nil
		},
	}

	return &b
}

func (b *BatchSubmitter) Transactions(ctx context.Context, txs []wallet.Transaction) ([]outcome.Outcome, error) {
	return b.TransactionsFunc(ctx, txs)
}
