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

package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/near-batch/builder"
	"github.com/optakt/near-batch/codec"
	"github.com/optakt/near-batch/failure"
	"github.com/optakt/near-batch/models/operation"
	"github.com/optakt/near-batch/testing/mocks"
)

func TestNew(t *testing.T) {
	b := builder.New()

	require.NotNil(t, b)
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, 0, b.CurrentLen())
	assert.Empty(t, b.ToTransactions())
	assert.NoError(t, b.Err())
}

func TestBatch(t *testing.T) {
	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		b := builder.Batch("token.near")

		require.NoError(t, b.Err())
		txs := b.ToTransactions()
		require.Len(t, txs, 1)
		assert.Equal(t, "token.near", txs[0].ReceiverID)
		assert.Empty(t, txs[0].SignerID)
		assert.Equal(t, 0, txs[0].Operations.Len())
	})

	t.Run("binds signer", func(t *testing.T) {
		t.Parallel()

		b := builder.Batch("token.near", builder.WithSigner("alice.near"))

		txs := b.ToTransactions()
		require.Len(t, txs, 1)
		assert.Equal(t, "alice.near", txs[0].SignerID)
	})
}

func TestBuilder_Order(t *testing.T) {
	b := builder.Batch("a.near").
		CreateAccount().
		Transfer("100").
		AddKey(mocks.GenericPublicKey, operation.FullAccess()).
		Batch("b.near", builder.WithSigner("a.near")).
		DeployContract(mocks.GenericBytes).
		Stake("5", mocks.GenericPublicKey).
		Batch("c.near").
		DeleteKey(mocks.GenericPublicKey).
		DeleteAccount("beneficiary.near")

	require.NoError(t, b.Err())
	assert.Equal(t, 3, b.Len())
	assert.Equal(t, 2, b.CurrentLen())

	txs := b.ToTransactions()
	require.Len(t, txs, 3)

	assert.Equal(t, "a.near", txs[0].ReceiverID)
	assert.Equal(t, []operation.Operation{
		operation.CreateAccount{},
		operation.Transfer{Amount: "100"},
		operation.AddKey{PublicKey: mocks.GenericPublicKey, AccessKey: operation.FullAccess()},
	}, txs[0].Operations.Operations())

	assert.Equal(t, "b.near", txs[1].ReceiverID)
	assert.Equal(t, "a.near", txs[1].SignerID)
	assert.Equal(t, []operation.Operation{
		operation.DeployContract{Code: mocks.GenericBytes},
		operation.Stake{Amount: "5", PublicKey: mocks.GenericPublicKey},
	}, txs[1].Operations.Operations())

	assert.Equal(t, "c.near", txs[2].ReceiverID)
	assert.Equal(t, []operation.Operation{
		operation.DeleteKey{PublicKey: mocks.GenericPublicKey},
		operation.DeleteAccount{BeneficiaryID: "beneficiary.near"},
	}, txs[2].Operations.Operations())
}

func TestBuilder_NoCurrentTransaction(t *testing.T) {
	mutators := map[string]func(*builder.Builder) *builder.Builder{
		"create account": func(b *builder.Builder) *builder.Builder { return b.CreateAccount() },
		"delete account": func(b *builder.Builder) *builder.Builder { return b.DeleteAccount("x.near") },
		"add key": func(b *builder.Builder) *builder.Builder {
			return b.AddKey(mocks.GenericPublicKey, operation.FullAccess())
		},
		"delete key":      func(b *builder.Builder) *builder.Builder { return b.DeleteKey(mocks.GenericPublicKey) },
		"deploy contract": func(b *builder.Builder) *builder.Builder { return b.DeployContract(mocks.GenericBytes) },
		"stake":           func(b *builder.Builder) *builder.Builder { return b.Stake("1", mocks.GenericPublicKey) },
		"transfer":        func(b *builder.Builder) *builder.Builder { return b.Transfer("1") },
		"function call":   func(b *builder.Builder) *builder.Builder { return b.FunctionCall("get", nil) },
	}

	for name, mutate := range mutators {
		mutate := mutate
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			b := builder.New()
			got := mutate(b)

			assert.Same(t, b, got)
			assert.ErrorAs(t, b.Err(), &failure.MultiTransaction{})
			assert.Equal(t, 0, b.Len())
			assert.Empty(t, b.ToTransactions())
		})
	}
}

func TestBuilder_StickyError(t *testing.T) {
	b := builder.New().
		Transfer("1").
		Batch("a.near").
		Transfer("2")

	assert.ErrorAs(t, b.Err(), &failure.MultiTransaction{})
	assert.Equal(t, 0, b.Len())
}

func TestBuilder_FunctionCall(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		t.Parallel()

		b := builder.Batch("counter.near").FunctionCall("increment", nil)

		require.NoError(t, b.Err())
		ops := b.ToTransactions()[0].Operations.Operations()
		require.Len(t, ops, 1)
		want := operation.FunctionCall{
			MethodName: "increment",
			Args:       []byte(`{}`),
			Deposit:    builder.DefaultDeposit,
			Gas:        builder.DefaultGas,
		}
		assert.Equal(t, want, ops[0])
	})

	t.Run("encodes structured arguments as JSON", func(t *testing.T) {
		t.Parallel()

		args := map[string]string{"receiver_id": "bob.near", "amount": "1000000"}
		b := builder.Batch("token.near").
			FunctionCall("ft_transfer", args, builder.WithDeposit("1"))

		require.NoError(t, b.Err())
		call := b.ToTransactions()[0].Operations.Operations()[0].(operation.FunctionCall)
		assert.JSONEq(t, `{"receiver_id":"bob.near","amount":"1000000"}`, string(call.Args))
		assert.Equal(t, "1", call.Deposit)
		assert.Equal(t, builder.DefaultGas, call.Gas)
	})

	t.Run("skips encoding of raw bytes", func(t *testing.T) {
		t.Parallel()

		enc := mocks.BaselineEncoder(t)
		enc.EncodeFunc = func(interface{}) ([]byte, error) {
			t.Fatal("encoder should not be called")
			return nil, nil
		}

		b := builder.Batch("c.near").
			FunctionCall("raw", mocks.GenericBytes, builder.WithEncoder(enc), builder.WithGas("10"))

		require.NoError(t, b.Err())
		call := b.ToTransactions()[0].Operations.Operations()[0].(operation.FunctionCall)
		assert.Equal(t, mocks.GenericBytes, call.Args)
		assert.Equal(t, "10", call.Gas)
	})

	t.Run("uses configured encoder", func(t *testing.T) {
		t.Parallel()

		b := builder.Batch("c.near").
			FunctionCall("set", struct{ Value uint32 }{Value: 1}, builder.WithEncoder(codec.Borsh{}))

		require.NoError(t, b.Err())
		call := b.ToTransactions()[0].Operations.Operations()[0].(operation.FunctionCall)
		assert.Equal(t, []byte{1, 0, 0, 0}, call.Args)
	})

	t.Run("handles encoder failure", func(t *testing.T) {
		t.Parallel()

		enc := mocks.BaselineEncoder(t)
		enc.EncodeFunc = func(interface{}) ([]byte, error) {
			return nil, mocks.GenericError
		}

		b := builder.Batch("c.near").FunctionCall("set", 1, builder.WithEncoder(enc))

		assert.ErrorIs(t, b.Err(), mocks.GenericError)
		assert.Equal(t, 0, b.CurrentLen())
	})
}

func TestBuilder_CopiesInputs(t *testing.T) {
	code := []byte{1, 2, 3}
	b := builder.Batch("c.near").DeployContract(code)
	code[0] = 9

	deploy := b.ToTransactions()[0].Operations.Operations()[0].(operation.DeployContract)
	assert.Equal(t, []byte{1, 2, 3}, deploy.Code)
}

func TestBuilder_ToTransactions(t *testing.T) {
	b := builder.Batch("a.near").Transfer("1")

	txs := b.ToTransactions()
	txs[0].Operations.Append(operation.Transfer{Amount: "2"})
	txs[0].ReceiverID = "changed.near"

	got := b.ToTransactions()
	assert.Equal(t, "a.near", got[0].ReceiverID)
	assert.Equal(t, 1, got[0].Operations.Len())
}

func TestBuilder_Extend(t *testing.T) {
	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		a := builder.Batch("a.near").Transfer("1")
		b := builder.Batch("b.near").Transfer("2").Batch("c.near").Transfer("3")

		a.Extend(b)
		b.Transfer("4")

		require.NoError(t, a.Err())
		txs := a.ToTransactions()
		require.Len(t, txs, 3)
		assert.Equal(t, "a.near", txs[0].ReceiverID)
		assert.Equal(t, "b.near", txs[1].ReceiverID)
		assert.Equal(t, "c.near", txs[2].ReceiverID)
		assert.Equal(t, 1, txs[2].Operations.Len())

		a.Transfer("5")
		assert.Equal(t, 2, a.CurrentLen())
		assert.Equal(t, 2, b.CurrentLen())
	})

	t.Run("is associative", func(t *testing.T) {
		t.Parallel()

		newA := func() *builder.Builder { return builder.Batch("a.near").Transfer("1") }
		newB := func() *builder.Builder { return builder.Batch("b.near").CreateAccount() }
		newC := func() *builder.Builder { return builder.Batch("c.near").DeleteKey(mocks.GenericPublicKey) }

		left := newA().Extend(newB()).Extend(newC())
		right := newA().Extend(newB().Extend(newC()))

		assert.Equal(t, left.ToTransactions(), right.ToTransactions())
	})

	t.Run("handles nil builder", func(t *testing.T) {
		t.Parallel()

		b := builder.Batch("a.near").Extend(nil)

		assert.NoError(t, b.Err())
		assert.Equal(t, 1, b.Len())
	})

	t.Run("propagates failed builder", func(t *testing.T) {
		t.Parallel()

		failed := builder.New().Transfer("1")
		b := builder.Batch("a.near").Extend(failed)

		assert.ErrorAs(t, b.Err(), &failure.MultiTransaction{})
		assert.Equal(t, 1, b.Len())
	})
}

func TestFromTransactions(t *testing.T) {
	txs := []builder.Transaction{
		{ReceiverID: "a.near", Operations: operation.NewSequence(operation.Transfer{Amount: "1"})},
		{ReceiverID: "b.near", SignerID: "a.near"},
	}

	b := builder.FromTransactions(txs)
	txs[0].Operations.Append(operation.Transfer{Amount: "2"})

	require.NoError(t, b.Err())
	got := b.ToTransactions()
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].Operations.Len())
	assert.Equal(t, "a.near", got[1].SignerID)
	assert.Equal(t, 0, got[1].Operations.Len())

	b.CreateAccount()
	assert.Equal(t, 1, b.CurrentLen())
}
