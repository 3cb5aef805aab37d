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

package rest

import (
	"context"

	"github.com/optakt/near-batch/backend/wallet"
	"github.com/optakt/near-batch/outcome"
	"github.com/optakt/near-batch/transactor"
)

// Transactor runs read-only contract calls and looks up the outcomes of
// broadcast transactions.
type Transactor interface {
	View(ctx context.Context, contractID string, methodName string, args interface{}, value interface{}, options ...func(*transactor.ViewConfig)) error
	Await(ctx context.Context, hash string, signerID string) (outcome.Outcome, error)
}

// Validator checks the accounts of incoming transactions.
type Validator interface {
	Transactions(txs []wallet.Transaction) error
}
