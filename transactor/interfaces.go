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

package transactor

import (
	"context"

	"github.com/optakt/near-batch/backend/wallet"
	"github.com/optakt/near-batch/models/view"
	"github.com/optakt/near-batch/outcome"
)

// Submitter signs, broadcasts and waits for a single transaction. It should
// return an error wrapping near.ErrPending when the transaction was handed
// over to an external confirmation step and no outcome is available yet.
type Submitter interface {
	Transaction(ctx context.Context, tx wallet.Transaction) (outcome.Outcome, error)
}

// BatchSubmitter is implemented by submitters that accept all transactions of
// a batch at once. They must still execute them one after the other.
type BatchSubmitter interface {
	Submitter
	Transactions(ctx context.Context, txs []wallet.Transaction) ([]outcome.Outcome, error)
}

// Querier runs read-only contract calls.
type Querier interface {
	View(ctx context.Context, req view.Request) ([]byte, error)
}

// Fetcher looks up the outcome of a transaction that was already broadcast.
type Fetcher interface {
	Status(ctx context.Context, hash string, signerID string) (outcome.Outcome, error)
}

// Validator checks the shape of view requests.
type Validator interface {
	Request(req view.Request) error
}
