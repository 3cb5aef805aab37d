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

package wallet

import (
	"fmt"

	"github.com/optakt/near-batch/builder"
	"github.com/optakt/near-batch/failure"
	"github.com/optakt/near-batch/models/operation"
)

// Transactions maps the builder transactions to wallet transactions, keeping
// their order and the order of their operations.
func Transactions(txs []builder.Transaction) ([]Transaction, error) {

	out := make([]Transaction, 0, len(txs))
	for index, tx := range txs {

		var ops []operation.Operation
		if tx.Operations != nil {
			ops = tx.Operations.Operations()
		}

		actions := make([]Action, 0, len(ops))
		for _, op := range ops {
			action, err := FromOperation(op)
			if err != nil {
				return nil, fmt.Errorf("could not map transaction (index: %d): %w", index, err)
			}
			actions = append(actions, action)
		}

		wtx := Transaction{
			SignerID:   tx.SignerID,
			ReceiverID: tx.ReceiverID,
			Actions:    actions,
		}
		out = append(out, wtx)
	}

	return out, nil
}

// FromOperation maps a single operation to its wallet action.
func FromOperation(op operation.Operation) (Action, error) {

	switch o := op.(type) {

	case operation.CreateAccount:
		return Action{Type: o.Type()}, nil

	case operation.DeleteAccount:
		params := DeleteAccountParams{
			BeneficiaryID: o.BeneficiaryID,
		}
		return Action{Type: o.Type(), Params: params}, nil

	case operation.AddKey:
		params := AddKeyParams{
			PublicKey: o.PublicKey,
			AccessKey: fromAccessKey(o.AccessKey),
		}
		return Action{Type: o.Type(), Params: params}, nil

	case operation.DeleteKey:
		params := DeleteKeyParams{
			PublicKey: o.PublicKey,
		}
		return Action{Type: o.Type(), Params: params}, nil

	case operation.DeployContract:
		params := DeployContractParams{
			Code: o.Code,
		}
		return Action{Type: o.Type(), Params: params}, nil

	case operation.Stake:
		params := StakeParams{
			Stake:     o.Amount,
			PublicKey: o.PublicKey,
		}
		return Action{Type: o.Type(), Params: params}, nil

	case operation.FunctionCall:
		params := FunctionCallParams{
			MethodName: o.MethodName,
			Args:       o.Args,
			Gas:        o.Gas,
			Deposit:    o.Deposit,
		}
		return Action{Type: o.Type(), Params: params}, nil

	case operation.Transfer:
		params := TransferParams{
			Deposit: o.Amount,
		}
		return Action{Type: o.Type(), Params: params}, nil

	default:
		return Action{}, failure.UnknownOperation{
			Description: failure.NewDescription("operation has no wallet action"),
			Type:        fmt.Sprintf("%T", op),
		}
	}
}

// ToOperation maps a wallet action back to its operation.
func ToOperation(action Action) (operation.Operation, error) {

	switch p := action.Params.(type) {

	case nil:
		if action.Type != operation.TypeCreateAccount {
			break
		}
		return operation.CreateAccount{}, nil

	case DeleteAccountParams:
		return operation.DeleteAccount{BeneficiaryID: p.BeneficiaryID}, nil

	case AddKeyParams:
		return operation.AddKey{PublicKey: p.PublicKey, AccessKey: toAccessKey(p.AccessKey)}, nil

	case DeleteKeyParams:
		return operation.DeleteKey{PublicKey: p.PublicKey}, nil

	case DeployContractParams:
		return operation.DeployContract{Code: p.Code}, nil

	case StakeParams:
		return operation.Stake{Amount: p.Stake, PublicKey: p.PublicKey}, nil

	case FunctionCallParams:
		call := operation.FunctionCall{
			MethodName: p.MethodName,
			Args:       p.Args,
			Deposit:    p.Deposit,
			Gas:        p.Gas,
		}
		return call, nil

	case TransferParams:
		return operation.Transfer{Amount: p.Deposit}, nil
	}

	return nil, failure.UnknownOperation{
		Description: failure.NewDescription("wallet action has no operation",
			failure.WithString("params", fmt.Sprintf("%T", action.Params)),
		),
		Type: action.Type,
	}
}

// Parse rebuilds a builder from wallet transactions, applying the defaults of
// the builder to function calls without gas or deposit.
func Parse(txs []Transaction) (*builder.Builder, error) {

	out := make([]builder.Transaction, 0, len(txs))
	for index, tx := range txs {

		seq := operation.NewSequence()
		for _, action := range tx.Actions {
			op, err := ToOperation(action)
			if err != nil {
				return nil, fmt.Errorf("could not parse transaction (index: %d): %w", index, err)
			}
			call, ok := op.(operation.FunctionCall)
			if ok {
				op = withCallDefaults(call)
			}
			seq.Append(op)
		}

		btx := builder.Transaction{
			SignerID:   tx.SignerID,
			ReceiverID: tx.ReceiverID,
			Operations: seq,
		}
		out = append(out, btx)
	}

	return builder.FromTransactions(out), nil
}

func withCallDefaults(call operation.FunctionCall) operation.FunctionCall {
	if call.Gas == "" {
		call.Gas = builder.DefaultGas
	}
	if call.Deposit == "" {
		call.Deposit = builder.DefaultDeposit
	}
	if call.Args == nil {
		call.Args = []byte(`{}`)
	}
	return call
}

func fromAccessKey(key operation.AccessKey) AccessKey {
	out := AccessKey{
		Nonce: key.Nonce,
	}
	if key.Permission.FunctionCall != nil {
		permission := key.Permission.FunctionCall
		out.Permission.FunctionCall = &FunctionCallPermission{
			ReceiverID:  permission.ReceiverID,
			Allowance:   permission.Allowance,
			MethodNames: permission.MethodNames,
		}
	}
	return out
}

func toAccessKey(key AccessKey) operation.AccessKey {
	if key.Permission.FunctionCall == nil {
		out := operation.FullAccess()
		out.Nonce = key.Nonce
		return out
	}
	permission := key.Permission.FunctionCall
	out := operation.FunctionCallAccess(permission.ReceiverID, permission.Allowance, permission.MethodNames...)
	out.Nonce = key.Nonce
	return out
}
