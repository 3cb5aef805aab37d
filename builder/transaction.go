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

package builder

import (
	"github.com/optakt/near-batch/models/operation"
)

// Transaction is a receiver account with the ordered operations to apply to
// it. SignerID is empty when the submitting backend picks the signer.
type Transaction struct {
	SignerID   string
	ReceiverID string
	Operations *operation.Sequence
}

// WithSigner binds a transaction to an explicit signer account.
func WithSigner(signerID string) func(*Transaction) {
	return func(tx *Transaction) {
		tx.SignerID = signerID
	}
}

// Copy returns a copy of the transaction with its own operation sequence.
func (t Transaction) Copy() Transaction {
	if t.Operations == nil {
		t.Operations = operation.NewSequence()
		return t
	}
	t.Operations = t.Operations.Copy()
	return t
}
