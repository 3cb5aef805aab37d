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

package chain

import (
	"crypto/sha256"
	"fmt"

	"github.com/btcsuite/btcutil/base58"
	"github.com/near/borsh-go"

	"github.com/optakt/near-batch/builder"
	"github.com/optakt/near-batch/failure"
	"github.com/optakt/near-batch/models/operation"
)

// Header holds the signing context of a transaction that is not part of the
// builder representation.
type Header struct {
	PublicKey string
	Nonce     uint64
	BlockHash string
}

// Transaction converts a builder transaction into an unsigned chain
// transaction, validating keys, amounts and gas on the way.
func Transaction(tx builder.Transaction, header Header) (*RawTransaction, error) {

	if tx.SignerID == "" {
		return nil, fmt.Errorf("missing signer (receiver: %s)", tx.ReceiverID)
	}

	pk, err := ParsePublicKey(header.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("could not parse signer key: %w", err)
	}

	hash, err := ParseHash(header.BlockHash)
	if err != nil {
		return nil, fmt.Errorf("could not parse block hash: %w", err)
	}

	var ops []operation.Operation
	if tx.Operations != nil {
		ops = tx.Operations.Operations()
	}
	actions, err := Actions(ops)
	if err != nil {
		return nil, fmt.Errorf("could not convert operations: %w", err)
	}

	raw := RawTransaction{
		SignerID:   tx.SignerID,
		PublicKey:  pk,
		Nonce:      header.Nonce,
		ReceiverID: tx.ReceiverID,
		BlockHash:  hash,
		Actions:    actions,
	}

	return &raw, nil
}

// Encode serializes the raw transaction with Borsh.
func Encode(raw *RawTransaction) ([]byte, error) {
	data, err := borsh.Serialize(*raw)
	if err != nil {
		return nil, fmt.Errorf("could not serialize transaction: %w", err)
	}
	return data, nil
}

// Hash returns the base58 hash of the serialized transaction, which is the
// identifier of the transaction once signed.
func Hash(raw *RawTransaction) (string, error) {
	data, err := Encode(raw)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return base58.Encode(sum[:]), nil
}

// Actions converts the operations into chain actions, keeping their order.
func Actions(ops []operation.Operation) ([]Action, error) {
	actions := make([]Action, 0, len(ops))
	for index, op := range ops {
		action, err := FromOperation(op)
		if err != nil {
			return nil, fmt.Errorf("could not convert operation (index: %d): %w", index, err)
		}
		actions = append(actions, action)
	}
	return actions, nil
}

// FromOperation converts a single operation into its chain action.
func FromOperation(op operation.Operation) (Action, error) {

	switch o := op.(type) {

	case operation.CreateAccount:
		return Action{Enum: ActionCreateAccount}, nil

	case operation.DeployContract:
		return Action{Enum: ActionDeployContract, DeployContract: DeployContract{Code: o.Code}}, nil

	case operation.FunctionCall:
		gas, err := ParseGas(o.Gas)
		if err != nil {
			return Action{}, err
		}
		deposit, err := ParseAmount(o.Deposit)
		if err != nil {
			return Action{}, err
		}
		call := FunctionCall{
			MethodName: o.MethodName,
			Args:       o.Args,
			Gas:        gas,
			Deposit:    deposit,
		}
		return Action{Enum: ActionFunctionCall, FunctionCall: call}, nil

	case operation.Transfer:
		deposit, err := ParseAmount(o.Amount)
		if err != nil {
			return Action{}, err
		}
		return Action{Enum: ActionTransfer, Transfer: Transfer{Deposit: deposit}}, nil

	case operation.Stake:
		amount, err := ParseAmount(o.Amount)
		if err != nil {
			return Action{}, err
		}
		pk, err := ParsePublicKey(o.PublicKey)
		if err != nil {
			return Action{}, err
		}
		return Action{Enum: ActionStake, Stake: Stake{Stake: amount, PublicKey: pk}}, nil

	case operation.AddKey:
		pk, err := ParsePublicKey(o.PublicKey)
		if err != nil {
			return Action{}, err
		}
		key, err := accessKey(o.AccessKey)
		if err != nil {
			return Action{}, err
		}
		return Action{Enum: ActionAddKey, AddKey: AddKey{PublicKey: pk, AccessKey: key}}, nil

	case operation.DeleteKey:
		pk, err := ParsePublicKey(o.PublicKey)
		if err != nil {
			return Action{}, err
		}
		return Action{Enum: ActionDeleteKey, DeleteKey: DeleteKey{PublicKey: pk}}, nil

	case operation.DeleteAccount:
		return Action{Enum: ActionDeleteAccount, DeleteAccount: DeleteAccount{BeneficiaryID: o.BeneficiaryID}}, nil

	default:
		return Action{}, failure.UnknownOperation{
			Description: failure.NewDescription("operation has no chain action"),
			Type:        fmt.Sprintf("%T", op),
		}
	}
}

// maxMethodNameLength is the longest method name a function call access key
// can be restricted to.
const maxMethodNameLength = 256

func accessKey(key operation.AccessKey) (AccessKey, error) {

	var out AccessKey
	if key.Nonce != nil {
		out.Nonce = *key.Nonce
	}

	if key.IsFullAccess() {
		out.Permission.Enum = PermissionFullAccess
		return out, nil
	}

	permission := key.Permission.FunctionCall
	call := FunctionCallPermission{
		ReceiverID:  permission.ReceiverID,
		MethodNames: permission.MethodNames,
	}
	if call.MethodNames == nil {
		call.MethodNames = []string{}
	}
	for _, name := range call.MethodNames {
		if name == "" || len(name) > maxMethodNameLength {
			return AccessKey{}, failure.InvalidRequest{
				Description: failure.NewDescription("invalid method name in access key",
					failure.WithString("receiver", call.ReceiverID),
					failure.WithStrings("methods", call.MethodNames...),
				),
				Field: "MethodNames",
			}
		}
	}
	if permission.Allowance != "" {
		allowance, err := ParseAmount(permission.Allowance)
		if err != nil {
			return AccessKey{}, fmt.Errorf("could not parse allowance: %w", err)
		}
		call.Allowance = &allowance
	}

	out.Permission = AccessKeyPermission{
		Enum:         PermissionFunctionCall,
		FunctionCall: call,
	}

	return out, nil
}
