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

package chain_test

import (
	"strings"
	"testing"

	"github.com/btcsuite/btcutil/base58"
	"github.com/near/borsh-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/near-batch/backend/chain"
	"github.com/optakt/near-batch/builder"
	"github.com/optakt/near-batch/failure"
	"github.com/optakt/near-batch/models/operation"
	"github.com/optakt/near-batch/testing/mocks"
)

func TestFromOperation(t *testing.T) {
	tests := []struct {
		name string
		op   operation.Operation
		want borsh.Enum
	}{
		{name: "create account", op: operation.CreateAccount{}, want: chain.ActionCreateAccount},
		{name: "deploy contract", op: operation.DeployContract{Code: mocks.GenericBytes}, want: chain.ActionDeployContract},
		{name: "function call", op: operation.FunctionCall{MethodName: "get", Args: []byte(`{}`), Deposit: "0", Gas: builder.DefaultGas}, want: chain.ActionFunctionCall},
		{name: "transfer", op: operation.Transfer{Amount: "1"}, want: chain.ActionTransfer},
		{name: "stake", op: operation.Stake{Amount: "1", PublicKey: mocks.GenericPublicKey}, want: chain.ActionStake},
		{name: "add key", op: operation.AddKey{PublicKey: mocks.GenericPublicKey, AccessKey: operation.FullAccess()}, want: chain.ActionAddKey},
		{name: "delete key", op: operation.DeleteKey{PublicKey: mocks.GenericPublicKey}, want: chain.ActionDeleteKey},
		{name: "delete account", op: operation.DeleteAccount{BeneficiaryID: "bob.near"}, want: chain.ActionDeleteAccount},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			action, err := chain.FromOperation(test.op)
			require.NoError(t, err)
			assert.Equal(t, test.want, action.Enum)

			data, err := borsh.Serialize(action)
			require.NoError(t, err)
			require.NotEmpty(t, data)
			assert.Equal(t, byte(test.want), data[0])
		})
	}
}

func TestFromOperation_Encoding(t *testing.T) {
	t.Run("transfer", func(t *testing.T) {
		t.Parallel()

		action, err := chain.FromOperation(operation.Transfer{Amount: "1"})
		require.NoError(t, err)

		data, err := borsh.Serialize(action)

		require.NoError(t, err)
		want := make([]byte, 17)
		want[0] = 3
		want[1] = 1
		assert.Equal(t, want, data)
	})

	t.Run("create account", func(t *testing.T) {
		t.Parallel()

		action, err := chain.FromOperation(operation.CreateAccount{})
		require.NoError(t, err)

		data, err := borsh.Serialize(action)

		require.NoError(t, err)
		assert.Equal(t, []byte{0}, data)
	})

	t.Run("delete account", func(t *testing.T) {
		t.Parallel()

		action, err := chain.FromOperation(operation.DeleteAccount{BeneficiaryID: "ab"})
		require.NoError(t, err)

		data, err := borsh.Serialize(action)

		require.NoError(t, err)
		assert.Equal(t, []byte{7, 2, 0, 0, 0, 'a', 'b'}, data)
	})

	t.Run("full access key", func(t *testing.T) {
		t.Parallel()

		action, err := chain.FromOperation(operation.AddKey{
			PublicKey: mocks.GenericPublicKey,
			AccessKey: operation.FullAccess().WithNonce(2),
		})
		require.NoError(t, err)

		data, err := borsh.Serialize(action)

		require.NoError(t, err)
		require.Len(t, data, 1+1+32+8+1)
		assert.Equal(t, byte(chain.ActionAddKey), data[0])
		assert.Equal(t, byte(chain.KeyTypeED25519), data[1])
		assert.Equal(t, byte(1), data[2])
		assert.Equal(t, byte(2), data[34])
		assert.Equal(t, byte(chain.PermissionFullAccess), data[42])
	})
}

func TestFromOperation_AccessKey(t *testing.T) {
	t.Run("limited allowance", func(t *testing.T) {
		t.Parallel()

		op := operation.AddKey{
			PublicKey: mocks.GenericPublicKey,
			AccessKey: operation.FunctionCallAccess("token.near", "250", "ft_transfer"),
		}

		action, err := chain.FromOperation(op)

		require.NoError(t, err)
		permission := action.AddKey.AccessKey.Permission
		assert.Equal(t, chain.PermissionFunctionCall, permission.Enum)
		require.NotNil(t, permission.FunctionCall.Allowance)
		assert.Equal(t, "250", permission.FunctionCall.Allowance.String())
		assert.Equal(t, "token.near", permission.FunctionCall.ReceiverID)
		assert.Equal(t, []string{"ft_transfer"}, permission.FunctionCall.MethodNames)
	})

	t.Run("unlimited allowance", func(t *testing.T) {
		t.Parallel()

		op := operation.AddKey{
			PublicKey: mocks.GenericPublicKey,
			AccessKey: operation.FunctionCallAccess("token.near", ""),
		}

		action, err := chain.FromOperation(op)

		require.NoError(t, err)
		assert.Nil(t, action.AddKey.AccessKey.Permission.FunctionCall.Allowance)
		assert.Equal(t, []string{}, action.AddKey.AccessKey.Permission.FunctionCall.MethodNames)
	})

	t.Run("handles invalid allowance", func(t *testing.T) {
		t.Parallel()

		op := operation.AddKey{
			PublicKey: mocks.GenericPublicKey,
			AccessKey: operation.FunctionCallAccess("token.near", "lots"),
		}

		_, err := chain.FromOperation(op)

		assert.ErrorAs(t, err, &failure.InvalidAmount{})
	})
}

func TestFromOperation_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		op     operation.Operation
		target interface{}
	}{
		{name: "negative transfer", op: operation.Transfer{Amount: "-1"}, target: &failure.InvalidAmount{}},
		{name: "decimal transfer", op: operation.Transfer{Amount: "1.5"}, target: &failure.InvalidAmount{}},
		{name: "overflowing deposit", op: operation.FunctionCall{Deposit: "340282366920938463463374607431768211456", Gas: "1"}, target: &failure.InvalidAmount{}},
		{name: "invalid gas", op: operation.FunctionCall{Deposit: "0", Gas: "many"}, target: &failure.InvalidAmount{}},
		{name: "gas above limit", op: operation.FunctionCall{Deposit: "0", Gas: "300000000000001"}, target: &failure.InvalidAmount{}},
		{name: "empty access key method", op: operation.AddKey{PublicKey: mocks.GenericPublicKey, AccessKey: operation.FunctionCallAccess("c.near", "", "get", "")}, target: &failure.InvalidRequest{}},
		{name: "long access key method", op: operation.AddKey{PublicKey: mocks.GenericPublicKey, AccessKey: operation.FunctionCallAccess("c.near", "", strings.Repeat("m", 257))}, target: &failure.InvalidRequest{}},
		{name: "invalid stake key", op: operation.Stake{Amount: "1", PublicKey: "ed25519:short"}, target: &failure.InvalidKey{}},
		{name: "unsupported key type", op: operation.DeleteKey{PublicKey: "secp256k1:abc"}, target: &failure.InvalidKey{}},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			_, err := chain.FromOperation(test.op)

			assert.ErrorAs(t, err, test.target)
		})
	}
}

func TestParseGas(t *testing.T) {
	t.Run("accepts the limit", func(t *testing.T) {
		t.Parallel()

		got, err := chain.ParseGas("300000000000000")

		require.NoError(t, err)
		assert.Equal(t, chain.MaxGas, got)
	})

	t.Run("reports gas above the limit", func(t *testing.T) {
		t.Parallel()

		_, err := chain.ParseGas("300000000000001")

		var target failure.InvalidAmount
		require.ErrorAs(t, err, &target)
		assert.Equal(t, "gas exceeds limit (gas: 300000000000001, max: 300000000000000)", target.Description.String())
	})
}

func TestParseAmount(t *testing.T) {
	max := "340282366920938463463374607431768211455"

	got, err := chain.ParseAmount(max)

	require.NoError(t, err)
	assert.Equal(t, max, got.String())
}

func TestParsePublicKey(t *testing.T) {
	t.Run("with prefix", func(t *testing.T) {
		t.Parallel()

		pk, err := chain.ParsePublicKey(mocks.GenericPublicKey)

		require.NoError(t, err)
		assert.Equal(t, uint8(chain.KeyTypeED25519), pk.KeyType)
		assert.Equal(t, byte(1), pk.Data[0])
		assert.Equal(t, byte(32), pk.Data[31])
		assert.Equal(t, mocks.GenericPublicKey, pk.String())
	})

	t.Run("without prefix", func(t *testing.T) {
		t.Parallel()

		pk, err := chain.ParsePublicKey(mocks.GenericPublicKey[len("ed25519:"):])

		require.NoError(t, err)
		assert.Equal(t, mocks.GenericPublicKey, pk.String())
	})
}

func TestTransaction(t *testing.T) {
	header := chain.Header{
		PublicKey: mocks.GenericPublicKey,
		Nonce:     9,
		BlockHash: mocks.GenericHash,
	}

	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		b := builder.Batch("token.near", builder.WithSigner("alice.near")).
			FunctionCall("ft_transfer", map[string]string{"receiver_id": "bob.near", "amount": "1000000"}, builder.WithDeposit("1")).
			Transfer("5")
		require.NoError(t, b.Err())

		raw, err := chain.Transaction(b.ToTransactions()[0], header)

		require.NoError(t, err)
		assert.Equal(t, "alice.near", raw.SignerID)
		assert.Equal(t, "token.near", raw.ReceiverID)
		assert.Equal(t, uint64(9), raw.Nonce)
		assert.Equal(t, byte(0x2a), raw.BlockHash[0])
		require.Len(t, raw.Actions, 2)
		assert.Equal(t, chain.ActionFunctionCall, raw.Actions[0].Enum)
		assert.Equal(t, "1", raw.Actions[0].FunctionCall.Deposit.String())
		assert.Equal(t, uint64(30000000000000), raw.Actions[0].FunctionCall.Gas)
		assert.Equal(t, chain.ActionTransfer, raw.Actions[1].Enum)

		data, err := chain.Encode(raw)
		require.NoError(t, err)
		assert.NotEmpty(t, data)

		hash, err := chain.Hash(raw)
		require.NoError(t, err)
		assert.Len(t, base58.Decode(hash), 32)
	})

	t.Run("handles missing signer", func(t *testing.T) {
		t.Parallel()

		tx := builder.Batch("token.near").Transfer("1").ToTransactions()[0]

		_, err := chain.Transaction(tx, header)

		assert.Error(t, err)
	})

	t.Run("handles invalid block hash", func(t *testing.T) {
		t.Parallel()

		tx := builder.Batch("token.near", builder.WithSigner("alice.near")).ToTransactions()[0]
		invalid := header
		invalid.BlockHash = "0OIl"

		_, err := chain.Transaction(tx, invalid)

		assert.ErrorAs(t, err, &failure.InvalidKey{})
	})

	t.Run("handles invalid operation", func(t *testing.T) {
		t.Parallel()

		tx := builder.Batch("token.near", builder.WithSigner("alice.near")).Transfer("x").ToTransactions()[0]

		_, err := chain.Transaction(tx, header)

		assert.ErrorAs(t, err, &failure.InvalidAmount{})
	})
}
