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
	"fmt"

	"github.com/optakt/near-batch/codec"
	"github.com/optakt/near-batch/failure"
	"github.com/optakt/near-batch/models/operation"
)

// Builder accumulates one or more transactions through chained calls. Batch
// starts a new transaction, and every operation method appends to the most
// recently started one.
//
// Operation methods return the builder itself so calls can be chained. When
// one of them fails, the error is kept and returned by Err, and the builder
// ignores all further changes. A Builder is owned by a single caller and is
// not safe for concurrent use.
type Builder struct {
	transactions []Transaction
	err          error
}

// New creates an empty builder. It accepts no operation until Batch is called.
func New() *Builder {
	b := Builder{}
	return &b
}

// Batch creates a builder with a single empty transaction for the receiver.
func Batch(receiverID string, options ...func(*Transaction)) *Builder {
	return New().Batch(receiverID, options...)
}

// FromTransactions creates a builder holding copies of the given transactions.
func FromTransactions(txs []Transaction) *Builder {
	b := New()
	for _, tx := range txs {
		b.transactions = append(b.transactions, tx.Copy())
	}
	return b
}

// Batch starts a new, empty transaction for the receiver. It becomes the
// current transaction.
func (b *Builder) Batch(receiverID string, options ...func(*Transaction)) *Builder {
	if b.err != nil {
		return b
	}

	tx := Transaction{
		ReceiverID: receiverID,
		Operations: operation.NewSequence(),
	}
	for _, option := range options {
		option(&tx)
	}

	b.transactions = append(b.transactions, tx)

	return b
}

func (b *Builder) CreateAccount() *Builder {
	return b.add(operation.CreateAccount{})
}

func (b *Builder) DeleteAccount(beneficiaryID string) *Builder {
	return b.add(operation.DeleteAccount{BeneficiaryID: beneficiaryID})
}

func (b *Builder) AddKey(publicKey string, accessKey operation.AccessKey) *Builder {
	return b.add(operation.AddKey{PublicKey: publicKey, AccessKey: accessKey})
}

func (b *Builder) DeleteKey(publicKey string) *Builder {
	return b.add(operation.DeleteKey{PublicKey: publicKey})
}

func (b *Builder) DeployContract(code []byte) *Builder {
	return b.add(operation.DeployContract{Code: code})
}

func (b *Builder) Stake(amount string, publicKey string) *Builder {
	return b.add(operation.Stake{Amount: amount, PublicKey: publicKey})
}

func (b *Builder) Transfer(amount string) *Builder {
	return b.add(operation.Transfer{Amount: amount})
}

// FunctionCall appends a contract method call. Raw bytes are used as
// arguments unchanged; any other value is serialized with the configured
// encoder. Deposit and gas default to DefaultDeposit and DefaultGas.
func (b *Builder) FunctionCall(methodName string, args interface{}, options ...func(*CallConfig)) *Builder {
	if b.err != nil {
		return b
	}
	if len(b.transactions) == 0 {
		b.err = noCurrentTransaction(operation.TypeFunctionCall)
		return b
	}

	cfg := DefaultCallConfig
	for _, option := range options {
		option(&cfg)
	}

	data, err := codec.Serialize(cfg.Encoder, args)
	if err != nil {
		b.err = fmt.Errorf("could not serialize arguments (method: %s): %w", methodName, err)
		return b
	}

	op := operation.FunctionCall{
		MethodName: methodName,
		Args:       data,
		Deposit:    cfg.Deposit,
		Gas:        cfg.Gas,
	}

	return b.add(op)
}

// Extend appends copies of all transactions of the other builder. The last
// of them becomes the current transaction.
func (b *Builder) Extend(other *Builder) *Builder {
	if b.err != nil || other == nil {
		return b
	}
	if other.err != nil {
		b.err = fmt.Errorf("could not extend with failed builder: %w", other.err)
		return b
	}

	b.transactions = append(b.transactions, other.ToTransactions()...)

	return b
}

// ToTransactions returns a deep copy of the transactions in the order they
// were started.
func (b *Builder) ToTransactions() []Transaction {
	txs := make([]Transaction, 0, len(b.transactions))
	for _, tx := range b.transactions {
		txs = append(txs, tx.Copy())
	}
	return txs
}

// Len returns the number of transactions.
func (b *Builder) Len() int {
	return len(b.transactions)
}

// CurrentLen returns the number of operations of the current transaction, or
// zero if there is none.
func (b *Builder) CurrentLen() int {
	if len(b.transactions) == 0 {
		return 0
	}
	return b.transactions[len(b.transactions)-1].Operations.Len()
}

// Err returns the first error encountered while building.
func (b *Builder) Err() error {
	return b.err
}

func (b *Builder) add(op operation.Operation) *Builder {
	if b.err != nil {
		return b
	}
	if len(b.transactions) == 0 {
		b.err = noCurrentTransaction(op.Type())
		return b
	}

	current := b.transactions[len(b.transactions)-1]
	current.Operations.Append(op)

	return b
}

func noCurrentTransaction(opType string) error {
	return failure.MultiTransaction{
		Description: failure.NewDescription("operation added before any transaction was started"),
		Operation:   opType,
	}
}
