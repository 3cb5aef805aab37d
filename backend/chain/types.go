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
	"math/big"

	"github.com/near/borsh-go"
)

// Action is the Borsh enum of chain actions. Enum selects the member that is
// serialized, in the order of the fields below.
type Action struct {
	Enum           borsh.Enum `borsh_enum:"true"`
	CreateAccount  borsh.Enum
	DeployContract DeployContract
	FunctionCall   FunctionCall
	Transfer       Transfer
	Stake          Stake
	AddKey         AddKey
	DeleteKey      DeleteKey
	DeleteAccount  DeleteAccount
}

// Discriminants of the Action enum.
const (
	ActionCreateAccount borsh.Enum = iota
	ActionDeployContract
	ActionFunctionCall
	ActionTransfer
	ActionStake
	ActionAddKey
	ActionDeleteKey
	ActionDeleteAccount
)

type DeployContract struct {
	Code []byte
}

type FunctionCall struct {
	MethodName string
	Args       []byte
	Gas        uint64
	Deposit    big.Int // u128
}

type Transfer struct {
	Deposit big.Int // u128
}

type Stake struct {
	Stake     big.Int // u128
	PublicKey PublicKey
}

type AddKey struct {
	PublicKey PublicKey
	AccessKey AccessKey
}

type AccessKey struct {
	Nonce      uint64
	Permission AccessKeyPermission
}

// AccessKeyPermission is the Borsh enum of key permissions.
type AccessKeyPermission struct {
	Enum         borsh.Enum `borsh_enum:"true"`
	FunctionCall FunctionCallPermission
	FullAccess   borsh.Enum
}

// Discriminants of the AccessKeyPermission enum.
const (
	PermissionFunctionCall borsh.Enum = iota
	PermissionFullAccess
)

// FunctionCallPermission restricts a key to some methods of a receiver. A nil
// allowance is unlimited.
type FunctionCallPermission struct {
	Allowance   *big.Int
	ReceiverID  string
	MethodNames []string
}

type DeleteKey struct {
	PublicKey PublicKey
}

type DeleteAccount struct {
	BeneficiaryID string
}

// RawTransaction is an unsigned chain transaction.
type RawTransaction struct {
	SignerID   string
	PublicKey  PublicKey
	Nonce      uint64
	ReceiverID string
	BlockHash  [32]byte
	Actions    []Action
}

// PublicKey is a typed public key. Only ed25519 keys are supported.
type PublicKey struct {
	KeyType uint8
	Data    [32]byte
}

// KeyTypeED25519 is the key type of ed25519 public keys.
const KeyTypeED25519 = 0
